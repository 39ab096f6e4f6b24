// SPDX-License-Identifier: Apache-2.0

package models

import "slices"

// DocumentVersionField is the reserved internal field carrying the opaque
// per-document revision marker used for optimistic-concurrency conflict
// detection. It is excluded from diffing together with the identity field.
const DocumentVersionField = "__remote_sync_version"

// UpdateDescription describes the minimal field-level difference between two
// versions of a document: a flat mapping of dotted field paths to their new
// values, and an ordered list of dotted field paths that were removed.
// A path never appears in both sets.
type UpdateDescription struct {
	UpdatedFields Document `json:"updatedFields"`
	RemovedFields []string `json:"removedFields"`
}

// NewUpdateDescription builds an UpdateDescription, substituting empty
// collections for nil inputs so that the zero-ish value is always usable.
func NewUpdateDescription(updatedFields Document, removedFields []string) UpdateDescription {
	if updatedFields == nil {
		updatedFields = Document{}
	}
	if removedFields == nil {
		removedFields = []string{}
	}
	return UpdateDescription{UpdatedFields: updatedFields, RemovedFields: removedFields}
}

// EmptyUpdateDescription returns an UpdateDescription with no updated and no
// removed fields.
func EmptyUpdateDescription() UpdateDescription {
	return NewUpdateDescription(nil, nil)
}

// IsEmpty reports whether the description carries no changes at all.
func (u UpdateDescription) IsEmpty() bool {
	return len(u.UpdatedFields) == 0 && len(u.RemovedFields) == 0
}

// ToUpdateDocument converts the description into a single update specifier
// document containing a $set sub-document for updated fields and a $unset
// sub-document (each removed path mapped to true) for removed fields. Either
// key is omitted when its side of the description is empty.
func (u UpdateDescription) ToUpdateDocument() Document {
	update := Document{}
	if len(u.UpdatedFields) > 0 {
		update["$set"] = CloneDocument(u.UpdatedFields)
	}
	if len(u.RemovedFields) > 0 {
		unsets := Document{}
		for _, removed := range u.RemovedFields {
			unsets[removed] = true
		}
		update["$unset"] = unsets
	}
	return update
}

// DiffDocuments computes the update description that transforms before into
// after. Nested sub-documents are diffed recursively with their paths
// flattened using "." separators; arrays are compared as whole values, so any
// inequality (including a length change) replaces the entire array.
//
// The reserved identity field and the internal version field are excluded
// from comparison at every recursion depth, not only at the top level. That
// matches the historical behavior of the diff and is pinned by tests; a
// legitimately nested field that happens to share one of those names is
// therefore invisible to the diff.
func DiffDocuments(before, after Document) UpdateDescription {
	updatedFields := Document{}
	removedFields := make([]string, 0)
	diffDocuments(before, after, "", updatedFields, &removedFields)
	// Map iteration order is random; sort so the description is reproducible.
	slices.Sort(removedFields)
	return NewUpdateDescription(updatedFields, removedFields)
}

func diffDocuments(before, after Document, prefix string, updatedFields Document, removedFields *[]string) {
	for key, oldValue := range before {
		if key == IDField || key == DocumentVersionField {
			continue
		}

		path := key
		if prefix != "" {
			path = prefix + "." + key
		}

		newValue, exists := after[key]
		if !exists {
			*removedFields = append(*removedFields, path)
			continue
		}

		oldSub, oldIsDoc := oldValue.(map[string]any)
		newSub, newIsDoc := newValue.(map[string]any)
		if oldIsDoc && newIsDoc {
			diffDocuments(oldSub, newSub, path, updatedFields, removedFields)
			continue
		}

		if !ValuesEqual(oldValue, newValue) {
			updatedFields[path] = newValue
		}
	}

	for key, newValue := range after {
		if key == IDField || key == DocumentVersionField {
			continue
		}
		if _, exists := before[key]; exists {
			continue
		}

		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		updatedFields[path] = newValue
	}
}
