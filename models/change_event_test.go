// SPDX-License-Identifier: Apache-2.0

package models

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeRemoteEvent(t *testing.T, id any, op OperationType) ChangeEvent {
	t.Helper()
	event := ChangeEvent{
		ID:                Document{"resumeToken": fmt.Sprintf("tok-%v", id)},
		OperationType:     op,
		Namespace:         NewNamespace("app", "items"),
		DocumentKey:       DocumentKeyForID(id),
		UpdateDescription: EmptyUpdateDescription(),
	}
	if op != OperationTypeDelete {
		event.FullDocument = Document{"_id": id, "value": "v"}
	}
	return event
}

// ── wire round trip ──────────────────────────────────────────────────────────

func TestChangeEvent_WireRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		event ChangeEvent
	}{
		{
			name: "update with description",
			event: ChangeEvent{
				ID:            Document{"resumeToken": "abc"},
				OperationType: OperationTypeUpdate,
				FullDocument:  Document{"_id": "d1", "a": 2.0},
				Namespace:     NewNamespace("app", "items"),
				DocumentKey:   DocumentKeyForID("d1"),
				UpdateDescription: NewUpdateDescription(
					Document{"a": 2.0},
					[]string{"b"},
				),
				HasUncommittedWrites: true,
			},
		},
		{
			name: "insert without update description",
			event: ChangeEvent{
				ID:                Document{"resumeToken": "def"},
				OperationType:     OperationTypeInsert,
				FullDocument:      Document{"_id": "d2"},
				Namespace:         NewNamespace("app", "items"),
				DocumentKey:       DocumentKeyForID("d2"),
				UpdateDescription: EmptyUpdateDescription(),
			},
		},
		{
			name:  "delete without full document",
			event: makeRemoteEvent(t, "d3", OperationTypeDelete),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded, err := ChangeEventFromDocument(tt.event.ToDocument())
			require.NoError(t, err)
			assert.Equal(t, tt.event, decoded)
		})
	}
}

func TestChangeEventFromDocument_MissingUpdateDescriptionDecodesEmpty(t *testing.T) {
	doc := makeRemoteEvent(t, "d1", OperationTypeInsert).ToDocument()
	delete(doc, "updateDescription")

	decoded, err := ChangeEventFromDocument(doc)
	require.NoError(t, err)

	require.NotNil(t, decoded.UpdateDescription.UpdatedFields)
	require.NotNil(t, decoded.UpdateDescription.RemovedFields)
	assert.True(t, decoded.UpdateDescription.IsEmpty())
}

func TestChangeEventFromDocument_MissingWritePendingDefaultsFalse(t *testing.T) {
	doc := makeRemoteEvent(t, "d1", OperationTypeInsert).ToDocument()
	delete(doc, "writePending")

	decoded, err := ChangeEventFromDocument(doc)
	require.NoError(t, err)
	assert.False(t, decoded.HasUncommittedWrites)
}

func TestChangeEventFromDocument_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(Document)
	}{
		{name: "missing _id", mutate: func(d Document) { delete(d, "_id") }},
		{name: "missing operationType", mutate: func(d Document) { delete(d, "operationType") }},
		{name: "missing ns", mutate: func(d Document) { delete(d, "ns") }},
		{name: "missing documentKey", mutate: func(d Document) { delete(d, "documentKey") }},
		{name: "documentKey without _id", mutate: func(d Document) { d["documentKey"] = Document{} }},
		{name: "ns not a document", mutate: func(d Document) { d["ns"] = "app.items" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := makeRemoteEvent(t, "d1", OperationTypeInsert).ToDocument()
			tt.mutate(doc)

			_, err := ChangeEventFromDocument(doc)
			require.ErrorIs(t, err, ErrMalformedChangeEvent)
		})
	}
}

func TestChangeEventFromDocument_UnknownOperationType(t *testing.T) {
	doc := makeRemoteEvent(t, "d1", OperationTypeInsert).ToDocument()
	doc["operationType"] = "drop"

	decoded, err := ChangeEventFromDocument(doc)
	require.NoError(t, err)
	assert.Equal(t, OperationTypeUnknown, decoded.OperationType)
}

// ── batch decode dedup ───────────────────────────────────────────────────────

func TestDecodeChangeEvents_DedupKeepsLatestContentAtLatestPosition(t *testing.T) {
	eventA := makeRemoteEvent(t, "id1", OperationTypeInsert)
	eventB := makeRemoteEvent(t, "id2", OperationTypeInsert)
	eventC := makeRemoteEvent(t, "id1", OperationTypeUpdate)
	eventC.FullDocument = Document{"_id": "id1", "value": "latest"}

	events, malformed := DecodeChangeEvents([]Document{
		eventA.ToDocument(),
		eventB.ToDocument(),
		eventC.ToDocument(),
	})
	assert.False(t, malformed)

	// [A@id1, B@id2, C@id1] → [B@id2, C@id1]
	require.Len(t, events, 2)
	assert.Equal(t, eventB, events[0])
	assert.Equal(t, eventC, events[1])
}

func TestDecodeChangeEvents_MalformedEventSkippedAndReported(t *testing.T) {
	good := makeRemoteEvent(t, "id1", OperationTypeInsert)
	bad := makeRemoteEvent(t, "id2", OperationTypeInsert).ToDocument()
	delete(bad, "operationType")

	events, malformed := DecodeChangeEvents([]Document{good.ToDocument(), bad})

	assert.True(t, malformed)
	require.Len(t, events, 1)
	assert.Equal(t, good, events[0])
}

func TestDecodeChangeEvents_UnidentifiableEventSkippedAndReported(t *testing.T) {
	good := makeRemoteEvent(t, "id1", OperationTypeInsert)
	bad := makeRemoteEvent(t, "id2", OperationTypeInsert)
	bad.DocumentKey = Document{}
	bad.FullDocument = nil

	events, malformed := DecodeChangeEvents([]Document{bad.ToDocument(), good.ToDocument()})

	assert.True(t, malformed)
	require.Len(t, events, 1)
	assert.Equal(t, good, events[0])
}

// ── local event constructors ─────────────────────────────────────────────────

func TestChangeEventForLocalInsert(t *testing.T) {
	ns := NewNamespace("app", "items")
	doc := Document{"_id": "d1", "a": 1.0}

	event, err := ChangeEventForLocalInsert(ns, doc, true)
	require.NoError(t, err)

	assert.Empty(t, event.ID)
	assert.Equal(t, OperationTypeInsert, event.OperationType)
	assert.Equal(t, doc, event.FullDocument)
	assert.Equal(t, DocumentKeyForID("d1"), event.DocumentKey)
	assert.True(t, event.HasUncommittedWrites)

	// The constructor clones; mutating the source must not leak into the event.
	doc["a"] = 99.0
	assert.Equal(t, 1.0, event.FullDocument["a"])
}

func TestChangeEventForLocalInsert_NoID(t *testing.T) {
	_, err := ChangeEventForLocalInsert(NewNamespace("app", "items"), Document{"a": 1.0}, true)
	require.Error(t, err)
}

func TestChangeEventForLocalDelete(t *testing.T) {
	event := ChangeEventForLocalDelete(NewNamespace("app", "items"), "d9", false)

	assert.Equal(t, OperationTypeDelete, event.OperationType)
	assert.Nil(t, event.FullDocument)
	assert.Equal(t, DocumentKeyForID("d9"), event.DocumentKey)
	assert.False(t, event.HasUncommittedWrites)
}

// ── user transform ───────────────────────────────────────────────────────────

type testItem struct {
	ID    string
	Value string
}

func testItemCodec(doc Document) (testItem, error) {
	id, ok := doc["_id"].(string)
	if !ok {
		return testItem{}, fmt.Errorf("missing _id")
	}
	value, _ := doc["value"].(string)
	return testItem{ID: id, Value: value}, nil
}

func TestTransformChangeEventForUser(t *testing.T) {
	event := makeRemoteEvent(t, "d1", OperationTypeInsert)

	typed, err := TransformChangeEventForUser(event, testItemCodec)
	require.NoError(t, err)

	require.NotNil(t, typed.FullDocument)
	assert.Equal(t, testItem{ID: "d1", Value: "v"}, *typed.FullDocument)
	assert.Equal(t, event.ID, typed.ID)
	assert.Equal(t, event.DocumentKey, typed.DocumentKey)
	assert.Equal(t, event.UpdateDescription, typed.UpdateDescription)
}

func TestTransformChangeEventForUser_NoFullDocument(t *testing.T) {
	event := makeRemoteEvent(t, "d1", OperationTypeDelete)

	typed, err := TransformChangeEventForUser(event, testItemCodec)
	require.NoError(t, err)
	assert.Nil(t, typed.FullDocument)
}

func TestTransformChangeEventForUser_CodecError(t *testing.T) {
	event := makeRemoteEvent(t, "d1", OperationTypeInsert)
	event.FullDocument = Document{"value": "no id"}

	_, err := TransformChangeEventForUser(event, testItemCodec)
	require.Error(t, err)
}
