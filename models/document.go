// SPDX-License-Identifier: Apache-2.0

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
)

// IDField is the reserved identity field present in every synchronized
// document.
const IDField = "_id"

// Document is the generic wire representation of a single record: a JSON-like
// tree of maps, slices and scalar values. Documents crossing the engine
// boundary are normalized (see Normalize) so that structural comparison with
// [Document.Equal] is well defined regardless of how the caller built the
// value.
type Document = map[string]any

// NormalizeValue runs a value through a JSON round trip so that all nested
// maps become map[string]any, all slices become []any and all numbers become
// float64. Diffing and equality checks rely on this canonical shape.
func NormalizeValue(value any) (any, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("normalize value: %w", err)
	}
	var out any
	if err = json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("normalize value: %w", err)
	}
	return out, nil
}

// NormalizeDocument normalizes doc into its canonical map[string]any shape.
// A nil document normalizes to nil.
func NormalizeDocument(doc Document) (Document, error) {
	if doc == nil {
		return nil, nil
	}
	normalized, err := NormalizeValue(doc)
	if err != nil {
		return nil, err
	}
	out, ok := normalized.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("normalize document: value is not an object")
	}
	return out, nil
}

// CloneDocument returns a deep copy of doc. The copy shares no mutable state
// with the original.
func CloneDocument(doc Document) Document {
	if doc == nil {
		return nil
	}
	return cloneValue(doc).(map[string]any)
}

func cloneValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, val := range v {
			out[key] = cloneValue(val)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, val := range v {
			out[i] = cloneValue(val)
		}
		return out
	default:
		return v
	}
}

// ValuesEqual reports deep structural equality between two normalized values.
func ValuesEqual(a, b any) bool {
	return reflect.DeepEqual(a, b)
}

// DocumentsEqual reports deep structural equality between two normalized
// documents.
func DocumentsEqual(a, b Document) bool {
	return reflect.DeepEqual(a, b)
}

// DocumentID extracts the reserved identity field from doc.
// Returns an error if the field is absent.
func DocumentID(doc Document) (any, error) {
	id, ok := doc[IDField]
	if !ok {
		return nil, fmt.Errorf("document has no %s field", IDField)
	}
	return id, nil
}

// DocumentKeyForID wraps a document identity as the canonical
// {_id: <id>} key document used in change events and remote filters.
func DocumentKeyForID(id any) Document {
	return Document{IDField: id}
}

// KeyForID renders a document identity as a deterministic string suitable
// for map keys and persisted storage filters. JSON object keys are emitted
// in sorted order by encoding/json, so the result is reproducible across
// restarts for identities of any shape.
func KeyForID(id any) (string, error) {
	buf := new(bytes.Buffer)
	enc := json.NewEncoder(buf)
	if err := enc.Encode(id); err != nil {
		return "", fmt.Errorf("encode document id: %w", err)
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}
