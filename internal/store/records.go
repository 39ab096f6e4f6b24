package store

import (
	"encoding/json"
	"fmt"

	"github.com/Acidburn0zzz/docsync/models"
)

// SyncDocumentRecord is the persisted per-document sync state. One record
// exists per (namespace, document id) pair while the document is under sync
// control.
type SyncDocumentRecord struct {
	Namespace  models.Namespace
	DocumentID any

	// LastKnownVersion is the opaque remote revision marker used for
	// optimistic-concurrency checks. Nil when the document has never been
	// acknowledged by the remote side.
	LastKnownVersion models.Document

	// IsStale forces the next pass to refetch the document's authoritative
	// remote state instead of applying incremental events.
	IsStale bool

	// HasUncommittedWrites marks a local write not yet confirmed remotely.
	HasUncommittedWrites bool

	// UncommittedEvent is the wire encoding of the pending local change
	// event, kept only while HasUncommittedWrites is true so that a restart
	// can resume the push.
	UncommittedEvent models.Document
}

// SyncNamespaceRecord is the persisted namespace-level sync state: the change
// stream resume marker and its validity.
type SyncNamespaceRecord struct {
	Namespace models.Namespace

	// ResumeToken is the opaque change stream position marker. Nil when no
	// events have been consumed yet.
	ResumeToken models.Document

	// TokenValid is cleared when a malformed event forces a full refetch on
	// the next pass.
	TokenValid bool
}

// encodeJSONColumn serializes doc for storage in a nullable TEXT column.
// A nil document maps to SQL NULL.
func encodeJSONColumn(doc models.Document) (any, error) {
	if doc == nil {
		return nil, nil
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingRecord, err)
	}
	return string(raw), nil
}

// decodeJSONColumn restores a document from a nullable TEXT column. SQL NULL
// maps back to a nil document.
func decodeJSONColumn(raw *string) (models.Document, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	var doc models.Document
	if err := json.Unmarshal([]byte(*raw), &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodingRecord, err)
	}
	return doc, nil
}

// documentIDKey reduces id to the deterministic storage key used in the
// doc_id column, so that lookups are reproducible across restarts.
func documentIDKey(id any) (string, error) {
	key, err := models.KeyForID(id)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidDocumentID, err)
	}
	return key, nil
}

// encodeDocumentID serializes id for the doc_id_json column, from which the
// original id value is reconstructed on load.
func encodeDocumentID(id any) (string, error) {
	raw, err := json.Marshal(id)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidDocumentID, err)
	}
	return string(raw), nil
}

// decodeDocumentID restores a document id from its doc_id_json column value.
func decodeDocumentID(raw string) (any, error) {
	var id any
	if err := json.Unmarshal([]byte(raw), &id); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodingRecord, err)
	}
	return id, nil
}
