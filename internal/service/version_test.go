package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Acidburn0zzz/docsync/internal/utils"
	"github.com/Acidburn0zzz/docsync/models"
)

func TestNextVersion_FirstVersion(t *testing.T) {
	gen := utils.NewUUIDGenerator()

	version := nextVersion(gen, nil)
	assert.Equal(t, float64(1), version["spv"])
	assert.Equal(t, float64(0), version["v"])

	writerID, ok := version["id"].(string)
	require.True(t, ok)
	assert.NotEmpty(t, writerID)
}

func TestNextVersion_KeepsWriterAndIncrementsCounter(t *testing.T) {
	gen := utils.NewUUIDGenerator()

	first := nextVersion(gen, nil)
	second := nextVersion(gen, first)

	assert.Equal(t, first["id"], second["id"])
	assert.Equal(t, float64(1), second["v"])

	third := nextVersion(gen, second)
	assert.Equal(t, float64(2), third["v"])
}

func TestVersionOf(t *testing.T) {
	assert.Nil(t, versionOf(nil))
	assert.Nil(t, versionOf(models.Document{"_id": "d1"}))

	version := map[string]any{"spv": float64(1), "id": "w", "v": float64(3)}
	doc := models.Document{"_id": "d1", models.DocumentVersionField: version}
	assert.Equal(t, models.Document(version), versionOf(doc))
}

func TestWithVersion_DoesNotMutateOriginal(t *testing.T) {
	doc := models.Document{"_id": "d1", "qty": float64(3)}
	version := models.Document{"spv": float64(1), "id": "w", "v": float64(0)}

	stored := withVersion(doc, version)
	assert.Contains(t, stored, models.DocumentVersionField)
	assert.NotContains(t, doc, models.DocumentVersionField)
}

func TestWithoutVersion_StripsVersionField(t *testing.T) {
	assert.Nil(t, withoutVersion(nil))

	doc := models.Document{
		"_id":                       "d1",
		"qty":                       float64(3),
		models.DocumentVersionField: map[string]any{"v": float64(0)},
	}
	stripped := withoutVersion(doc)
	assert.Equal(t, models.Document{"_id": "d1", "qty": float64(3)}, stripped)
	assert.Contains(t, doc, models.DocumentVersionField)
}

func TestVersionConditionedQuery_UnversionedMatchesAbsenceOnly(t *testing.T) {
	query := versionConditionedQuery("d1", nil)
	assert.Equal(t, "d1", query[models.IDField])
	assert.Equal(t, models.Document{"$exists": false}, query[models.DocumentVersionField])
}

func TestVersionConditionedQuery_VersionedMatchesExactVersion(t *testing.T) {
	version := models.Document{"spv": float64(1), "id": "w", "v": float64(2)}
	query := versionConditionedQuery("d1", version)
	assert.Equal(t, map[string]any(version), query[models.DocumentVersionField])
}
