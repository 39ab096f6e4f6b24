// SPDX-License-Identifier: Apache-2.0

package models

import (
	"errors"
	"fmt"
)

// Wire field names for the change event document. These names are a
// compatibility contract with the remote change stream and must not change.
const (
	changeEventIDField            = "_id"
	changeEventOperationTypeField = "operationType"
	changeEventFullDocumentField  = "fullDocument"
	changeEventDocumentKeyField   = "documentKey"
	changeEventNamespaceField     = "ns"
	changeEventNamespaceDBField   = "db"
	changeEventNamespaceCollField = "coll"
	changeEventUpdateDescField    = "updateDescription"
	changeEventUpdatedFieldsField = "updatedFields"
	changeEventRemovedFieldsField = "removedFields"
	changeEventWritePendingField  = "writePending"
)

// ErrMalformedChangeEvent is returned (wrapped) when a wire document cannot
// be decoded into a ChangeEvent. Callers should treat the owning namespace's
// resume marker as invalid so the next pass refetches instead of silently
// missing the change.
var ErrMalformedChangeEvent = errors.New("malformed change event")

// ChangeEvent is the canonical, immutable record of a single document
// mutation, local or remote. Remote events carry an opaque resume marker in
// ID; locally generated events carry an empty one. Events are consumed by a
// sync pass and discarded, never mutated.
type ChangeEvent struct {
	// ID is the opaque resume marker identifying the event's position in the
	// remote change stream. Empty for locally generated events.
	ID Document

	OperationType OperationType

	// FullDocument is the post-image of the document. Nil for delete events.
	FullDocument Document

	Namespace Namespace

	// DocumentKey is the {_id: <id>} key document of the mutated document.
	DocumentKey Document

	UpdateDescription UpdateDescription

	// HasUncommittedWrites is true when the event was generated from a local
	// write that has not been acknowledged by the remote side yet.
	HasUncommittedWrites bool
}

// DocumentID returns the identity value carried in the event's DocumentKey.
func (e ChangeEvent) DocumentID() (any, error) {
	return DocumentID(e.DocumentKey)
}

// ToDocument encodes the event into its canonical wire document.
func (e ChangeEvent) ToDocument() Document {
	id := e.ID
	if id == nil {
		id = Document{}
	}

	doc := Document{
		changeEventIDField:            id,
		changeEventOperationTypeField: e.OperationType.ToRemote(),
		changeEventNamespaceField: Document{
			changeEventNamespaceDBField:   e.Namespace.Database,
			changeEventNamespaceCollField: e.Namespace.Collection,
		},
		changeEventDocumentKeyField:  CloneDocument(e.DocumentKey),
		changeEventWritePendingField: e.HasUncommittedWrites,
	}
	if e.FullDocument != nil {
		doc[changeEventFullDocumentField] = CloneDocument(e.FullDocument)
	}

	removed := make([]any, 0, len(e.UpdateDescription.RemovedFields))
	for _, field := range e.UpdateDescription.RemovedFields {
		removed = append(removed, field)
	}
	updated := e.UpdateDescription.UpdatedFields
	if updated == nil {
		updated = Document{}
	}
	doc[changeEventUpdateDescField] = Document{
		changeEventUpdatedFieldsField: CloneDocument(updated),
		changeEventRemovedFieldsField: removed,
	}

	return doc
}

// ChangeEventFromDocument decodes a single wire document into a ChangeEvent.
// A missing updateDescription decodes to an empty one, never to nil. Errors
// wrap [ErrMalformedChangeEvent].
func ChangeEventFromDocument(doc Document) (ChangeEvent, error) {
	for _, required := range []string{
		changeEventIDField,
		changeEventOperationTypeField,
		changeEventNamespaceField,
		changeEventDocumentKeyField,
	} {
		if _, ok := doc[required]; !ok {
			return ChangeEvent{}, fmt.Errorf("%w: missing %s", ErrMalformedChangeEvent, required)
		}
	}

	id, ok := doc[changeEventIDField].(map[string]any)
	if !ok {
		return ChangeEvent{}, fmt.Errorf("%w: %s is not a document", ErrMalformedChangeEvent, changeEventIDField)
	}

	opType, ok := doc[changeEventOperationTypeField].(string)
	if !ok {
		return ChangeEvent{}, fmt.Errorf("%w: %s is not a string", ErrMalformedChangeEvent, changeEventOperationTypeField)
	}

	nsDoc, ok := doc[changeEventNamespaceField].(map[string]any)
	if !ok {
		return ChangeEvent{}, fmt.Errorf("%w: %s is not a document", ErrMalformedChangeEvent, changeEventNamespaceField)
	}
	db, ok := nsDoc[changeEventNamespaceDBField].(string)
	if !ok {
		return ChangeEvent{}, fmt.Errorf("%w: ns.%s is not a string", ErrMalformedChangeEvent, changeEventNamespaceDBField)
	}
	coll, ok := nsDoc[changeEventNamespaceCollField].(string)
	if !ok {
		return ChangeEvent{}, fmt.Errorf("%w: ns.%s is not a string", ErrMalformedChangeEvent, changeEventNamespaceCollField)
	}

	documentKey, ok := doc[changeEventDocumentKeyField].(map[string]any)
	if !ok {
		return ChangeEvent{}, fmt.Errorf("%w: %s is not a document", ErrMalformedChangeEvent, changeEventDocumentKeyField)
	}
	if _, err := DocumentID(documentKey); err != nil {
		return ChangeEvent{}, fmt.Errorf("%w: %v", ErrMalformedChangeEvent, err)
	}

	updateDescription := EmptyUpdateDescription()
	if rawDesc, exists := doc[changeEventUpdateDescField]; exists {
		descDoc, descOK := rawDesc.(map[string]any)
		if !descOK {
			return ChangeEvent{}, fmt.Errorf("%w: %s is not a document", ErrMalformedChangeEvent, changeEventUpdateDescField)
		}

		updatedFields, updatedOK := descDoc[changeEventUpdatedFieldsField].(map[string]any)
		if !updatedOK {
			return ChangeEvent{}, fmt.Errorf("%w: missing %s.%s", ErrMalformedChangeEvent, changeEventUpdateDescField, changeEventUpdatedFieldsField)
		}
		rawRemoved, removedOK := descDoc[changeEventRemovedFieldsField].([]any)
		if !removedOK {
			return ChangeEvent{}, fmt.Errorf("%w: missing %s.%s", ErrMalformedChangeEvent, changeEventUpdateDescField, changeEventRemovedFieldsField)
		}
		removed := make([]string, 0, len(rawRemoved))
		for _, field := range rawRemoved {
			path, isString := field.(string)
			if !isString {
				return ChangeEvent{}, fmt.Errorf("%w: removed field is not a string", ErrMalformedChangeEvent)
			}
			removed = append(removed, path)
		}
		updateDescription = NewUpdateDescription(CloneDocument(updatedFields), removed)
	}

	var fullDocument Document
	if rawFull, exists := doc[changeEventFullDocumentField]; exists {
		// Non-document fullDocument values are dropped, matching the lenient
		// historical decode.
		if fullDoc, isDoc := rawFull.(map[string]any); isDoc {
			fullDocument = CloneDocument(fullDoc)
		}
	}

	writePending := false
	if rawPending, exists := doc[changeEventWritePendingField]; exists {
		pending, isBool := rawPending.(bool)
		if !isBool {
			return ChangeEvent{}, fmt.Errorf("%w: %s is not a bool", ErrMalformedChangeEvent, changeEventWritePendingField)
		}
		writePending = pending
	}

	return ChangeEvent{
		ID:                   CloneDocument(id),
		OperationType:        OperationTypeFromRemote(opType),
		FullDocument:         fullDocument,
		Namespace:            NewNamespace(db, coll),
		DocumentKey:          CloneDocument(documentKey),
		UpdateDescription:    updateDescription,
		HasUncommittedWrites: writePending,
	}, nil
}

// DecodeChangeEvents decodes a batch of wire documents leniently: a document
// that does not decode to a well-formed, identifiable event is skipped and
// reported via malformed, so a caller can invalidate its resume position
// instead of failing the whole batch. The well-formed remainder is
// deduplicated by document id: when an id occurs more than once, the earlier
// event is discarded and the latest occurrence's content is kept at the
// position of its last occurrence. The result therefore reflects "latest
// content, most-recent-occurrence position" per id.
func DecodeChangeEvents(raw []Document) (events []ChangeEvent, malformed bool) {
	type slot struct {
		event ChangeEvent
		key   string
	}

	ordered := make([]slot, 0, len(raw))
	position := make(map[string]int, len(raw))

	for _, doc := range raw {
		event, err := ChangeEventFromDocument(doc)
		if err != nil {
			malformed = true
			continue
		}
		id, err := event.DocumentID()
		if err != nil {
			malformed = true
			continue
		}
		key, err := KeyForID(id)
		if err != nil {
			malformed = true
			continue
		}

		if at, seen := position[key]; seen {
			// Drop the earlier occurrence; the new one takes the latest slot.
			ordered = append(ordered[:at], ordered[at+1:]...)
			for _, moved := range ordered[at:] {
				position[moved.key]--
			}
		}
		position[key] = len(ordered)
		ordered = append(ordered, slot{event: event, key: key})
	}

	events = make([]ChangeEvent, 0, len(ordered))
	for _, s := range ordered {
		events = append(events, s.event)
	}
	return events, malformed
}

// ChangeEventForLocalInsert builds the change event recorded when a document
// is inserted locally before the write reaches the remote side.
func ChangeEventForLocalInsert(namespace Namespace, document Document, writePending bool) (ChangeEvent, error) {
	id, err := DocumentID(document)
	if err != nil {
		return ChangeEvent{}, err
	}
	return ChangeEvent{
		ID:                   Document{},
		OperationType:        OperationTypeInsert,
		FullDocument:         CloneDocument(document),
		Namespace:            namespace,
		DocumentKey:          DocumentKeyForID(id),
		UpdateDescription:    EmptyUpdateDescription(),
		HasUncommittedWrites: writePending,
	}, nil
}

// ChangeEventForLocalUpdate builds the change event recorded when a document
// is updated locally. fullDocumentAfterUpdate is the post-image of the
// update.
func ChangeEventForLocalUpdate(namespace Namespace, documentID any, update UpdateDescription, fullDocumentAfterUpdate Document, writePending bool) ChangeEvent {
	return ChangeEvent{
		ID:                   Document{},
		OperationType:        OperationTypeUpdate,
		FullDocument:         CloneDocument(fullDocumentAfterUpdate),
		Namespace:            namespace,
		DocumentKey:          DocumentKeyForID(documentID),
		UpdateDescription:    update,
		HasUncommittedWrites: writePending,
	}
}

// ChangeEventForLocalReplace builds the change event recorded when a document
// is replaced wholesale locally.
func ChangeEventForLocalReplace(namespace Namespace, documentID any, document Document, writePending bool) ChangeEvent {
	return ChangeEvent{
		ID:                   Document{},
		OperationType:        OperationTypeReplace,
		FullDocument:         CloneDocument(document),
		Namespace:            namespace,
		DocumentKey:          DocumentKeyForID(documentID),
		UpdateDescription:    EmptyUpdateDescription(),
		HasUncommittedWrites: writePending,
	}
}

// ChangeEventForLocalDelete builds the change event recorded when a document
// is deleted locally.
func ChangeEventForLocalDelete(namespace Namespace, documentID any, writePending bool) ChangeEvent {
	return ChangeEvent{
		ID:                   Document{},
		OperationType:        OperationTypeDelete,
		Namespace:            namespace,
		DocumentKey:          DocumentKeyForID(documentID),
		UpdateDescription:    EmptyUpdateDescription(),
		HasUncommittedWrites: writePending,
	}
}

// DocumentCodec decodes a raw wire document into the application's configured
// document type. It is passed explicitly at the call site; there is no
// runtime codec registry.
type DocumentCodec[T any] func(Document) (T, error)

// TypedChangeEvent is a ChangeEvent whose full document has been decoded into
// the application's document type. FullDocument is nil when the underlying
// event carried none (deletes).
type TypedChangeEvent[T any] struct {
	ID                   Document
	OperationType        OperationType
	FullDocument         *T
	Namespace            Namespace
	DocumentKey          Document
	UpdateDescription    UpdateDescription
	HasUncommittedWrites bool
}

// TransformChangeEventForUser rebuilds event with its full document decoded
// through codec, leaving every other field unchanged. An event without a full
// document is passed through with a nil FullDocument.
func TransformChangeEventForUser[T any](event ChangeEvent, codec DocumentCodec[T]) (TypedChangeEvent[T], error) {
	typed := TypedChangeEvent[T]{
		ID:                   event.ID,
		OperationType:        event.OperationType,
		Namespace:            event.Namespace,
		DocumentKey:          event.DocumentKey,
		UpdateDescription:    event.UpdateDescription,
		HasUncommittedWrites: event.HasUncommittedWrites,
	}
	if event.FullDocument == nil {
		return typed, nil
	}

	decoded, err := codec(event.FullDocument)
	if err != nil {
		return TypedChangeEvent[T]{}, fmt.Errorf("decode full document: %w", err)
	}
	typed.FullDocument = &decoded
	return typed, nil
}
