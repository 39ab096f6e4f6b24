// SPDX-License-Identifier: Apache-2.0

package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// applyUpdateDocument applies a {$set, $unset} update specifier to a copy of
// doc, mirroring what the remote side does with the update document.
func applyUpdateDocument(t *testing.T, doc Document, update Document) Document {
	t.Helper()
	out := CloneDocument(doc)

	if rawSet, ok := update["$set"]; ok {
		for path, value := range rawSet.(map[string]any) {
			setAtPath(out, path, value)
		}
	}
	if rawUnset, ok := update["$unset"]; ok {
		for path := range rawUnset.(map[string]any) {
			unsetAtPath(out, path)
		}
	}
	return out
}

func setAtPath(doc Document, path string, value any) {
	parts := strings.Split(path, ".")
	current := doc
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = Document{}
			current[part] = next
		}
		current = next
	}
	current[parts[len(parts)-1]] = value
}

func unsetAtPath(doc Document, path string) {
	parts := strings.Split(path, ".")
	current := doc
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			return
		}
		current = next
	}
	delete(current, parts[len(parts)-1])
}

// ── DiffDocuments ────────────────────────────────────────────────────────────

func TestDiffDocuments_ConcreteScenario(t *testing.T) {
	before := Document{"_id": 1.0, "a": 1.0, "b": Document{"c": 2.0, "d": 3.0}}
	after := Document{"_id": 1.0, "a": 5.0, "b": Document{"c": 2.0}, "e": 9.0}

	desc := DiffDocuments(before, after)

	assert.Equal(t, Document{"a": 5.0, "e": 9.0}, desc.UpdatedFields)
	assert.Equal(t, []string{"b.d"}, desc.RemovedFields)

	update := desc.ToUpdateDocument()
	require.Equal(t, Document{
		"$set":   Document{"a": 5.0, "e": 9.0},
		"$unset": Document{"b.d": true},
	}, update)
}

func TestDiffDocuments_Idempotence(t *testing.T) {
	doc := Document{
		"_id":  "x",
		"name": "alpha",
		"tags": []any{"a", "b"},
		"sub":  Document{"n": 1.0},
	}

	desc := DiffDocuments(doc, doc)

	assert.True(t, desc.IsEmpty())
	assert.Empty(t, desc.UpdatedFields)
	assert.Empty(t, desc.RemovedFields)
	assert.Equal(t, Document{}, desc.ToUpdateDocument())
}

func TestDiffDocuments_RoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		before Document
		after  Document
	}{
		{
			name:   "flat scalar change",
			before: Document{"a": 1.0, "b": "old"},
			after:  Document{"a": 1.0, "b": "new"},
		},
		{
			name:   "nested add and remove",
			before: Document{"sub": Document{"keep": true, "drop": 1.0}},
			after:  Document{"sub": Document{"keep": true, "added": "v"}},
		},
		{
			name:   "type change",
			before: Document{"v": "text"},
			after:  Document{"v": 42.0},
		},
		{
			name:   "whole document replaced by scalar",
			before: Document{"v": Document{"nested": 1.0}},
			after:  Document{"v": "flattened"},
		},
		{
			name:   "array replaced as a whole",
			before: Document{"arr": []any{1.0, 2.0, 3.0}},
			after:  Document{"arr": []any{1.0, 2.0}},
		},
		{
			name:   "deeply nested removal",
			before: Document{"a": Document{"b": Document{"c": 1.0, "d": 2.0}}},
			after:  Document{"a": Document{"b": Document{"c": 1.0}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc := DiffDocuments(tt.before, tt.after)
			got := applyUpdateDocument(t, tt.before, desc.ToUpdateDocument())
			assert.True(t, DocumentsEqual(tt.after, got),
				"applying diff to before must yield after; got %v", got)
		})
	}
}

func TestDiffDocuments_ArraysComparedAsWholeValues(t *testing.T) {
	before := Document{"arr": []any{Document{"x": 1.0}, Document{"x": 2.0}}}
	after := Document{"arr": []any{Document{"x": 1.0}, Document{"x": 3.0}}}

	desc := DiffDocuments(before, after)

	// No element-wise path like arr.1.x; the whole array is replaced.
	require.Len(t, desc.UpdatedFields, 1)
	assert.Equal(t, after["arr"], desc.UpdatedFields["arr"])
	assert.Empty(t, desc.RemovedFields)
}

func TestDiffDocuments_ReservedFieldsExcluded(t *testing.T) {
	before := Document{"_id": 1.0, DocumentVersionField: Document{"v": 1.0}, "a": 1.0}
	after := Document{"_id": 2.0, DocumentVersionField: Document{"v": 9.0}, "a": 1.0}

	desc := DiffDocuments(before, after)

	assert.True(t, desc.IsEmpty())
}

// Reserved names are excluded at every recursion depth, not only at the top
// level. This pins the historical behavior: a legitimately nested "_id" or
// version field is invisible to the diff.
func TestDiffDocuments_ReservedFieldsExcludedAtEveryDepth(t *testing.T) {
	before := Document{"sub": Document{"_id": "inner-old", DocumentVersionField: 1.0, "x": 1.0}}
	after := Document{"sub": Document{"_id": "inner-new", DocumentVersionField: 2.0, "x": 1.0}}

	desc := DiffDocuments(before, after)

	assert.True(t, desc.IsEmpty())
}

func TestDiffDocuments_RemovedFieldsSorted(t *testing.T) {
	before := Document{"z": 1.0, "a": 1.0, "m": Document{"q": 1.0, "b": 2.0}}
	after := Document{"m": Document{}}

	desc := DiffDocuments(before, after)

	assert.Equal(t, []string{"a", "m.b", "m.q", "z"}, desc.RemovedFields)
}

// ── ToUpdateDocument ─────────────────────────────────────────────────────────

func TestToUpdateDocument_EmptyDescription(t *testing.T) {
	update := EmptyUpdateDescription().ToUpdateDocument()

	_, hasSet := update["$set"]
	_, hasUnset := update["$unset"]
	assert.False(t, hasSet)
	assert.False(t, hasUnset)
	assert.Empty(t, update)
}

func TestToUpdateDocument_OnlyRemovedFields(t *testing.T) {
	desc := NewUpdateDescription(nil, []string{"gone", "also.gone"})

	update := desc.ToUpdateDocument()

	_, hasSet := update["$set"]
	assert.False(t, hasSet)
	assert.Equal(t, Document{"gone": true, "also.gone": true}, update["$unset"])
}
