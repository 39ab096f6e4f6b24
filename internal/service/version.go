package service

import (
	"github.com/Acidburn0zzz/docsync/internal/utils"
	"github.com/Acidburn0zzz/docsync/models"
)

// Document version format embedded under models.DocumentVersionField:
// {spv: 1, id: <writer instance uuid>, v: <monotonic counter>}.
const versionSchemaVersion = float64(1)

// versionOf extracts the version sub-document embedded in doc, or nil when
// the document carries none.
func versionOf(doc models.Document) models.Document {
	if doc == nil {
		return nil
	}
	if version, ok := doc[models.DocumentVersionField].(map[string]any); ok {
		return version
	}
	return nil
}

// nextVersion returns the version succeeding prev: a fresh writer id on the
// first version, an incremented counter afterwards.
func nextVersion(gen *utils.UUIDGenerator, prev models.Document) models.Document {
	version := models.Document{
		"spv": versionSchemaVersion,
		"id":  gen.Generate(),
		"v":   float64(0),
	}
	if prev != nil {
		if id, ok := prev["id"].(string); ok {
			version["id"] = id
		}
		if counter, ok := prev["v"].(float64); ok {
			version["v"] = counter + 1
		}
	}
	return version
}

// withVersion returns a clone of doc carrying version as its embedded
// version field.
func withVersion(doc, version models.Document) models.Document {
	out := models.CloneDocument(doc)
	out[models.DocumentVersionField] = map[string]any(version)
	return out
}

// withoutVersion returns a clone of doc with the embedded version field
// stripped, the shape handed back to application code.
func withoutVersion(doc models.Document) models.Document {
	if doc == nil {
		return nil
	}
	out := models.CloneDocument(doc)
	delete(out, models.DocumentVersionField)
	return out
}

// versionConditionedQuery builds the optimistic-concurrency remote filter: it
// matches the document only while its remote version equals version. A nil
// version matches only a document that has never been versioned, so a write
// conditioned on "no version" fails observably once the remote side has one.
func versionConditionedQuery(id any, version models.Document) models.Document {
	query := models.Document{models.IDField: id}
	if version == nil {
		query[models.DocumentVersionField] = models.Document{"$exists": false}
	} else {
		query[models.DocumentVersionField] = map[string]any(version)
	}
	return query
}
