// Package service implements the synchronization core: per-document and
// per-namespace sync state, the serialized sync pass protocol, and the
// background job that drives passes.
package service

import (
	"context"

	"github.com/Acidburn0zzz/docsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ConflictResolver decides the outcome when a local pending write and a
// remote change collide on the same document.
//
// A non-nil returned document is the merged state: it is written locally and
// pushed to the remote side on the next pass. A nil document with a nil error
// means the document should be deleted on both sides. An error, or a returned
// document whose identity field is missing or different, marks the document
// stale and surfaces the conflict without corrupting local state.
type ConflictResolver interface {
	Resolve(documentID any, localEvent, remoteEvent models.ChangeEvent) (models.Document, error)
}

// ConflictResolverFunc adapts a plain function to [ConflictResolver].
type ConflictResolverFunc func(documentID any, localEvent, remoteEvent models.ChangeEvent) (models.Document, error)

// Resolve implements [ConflictResolver].
func (f ConflictResolverFunc) Resolve(documentID any, localEvent, remoteEvent models.ChangeEvent) (models.Document, error) {
	return f(documentID, localEvent, remoteEvent)
}

// EventFilter reports whether a remote change event should be applied. A nil
// filter keeps every event.
type EventFilter func(event models.ChangeEvent) bool

// Synchronizer is the public surface of the sync engine: local write
// operations that mark documents for push, sync-control management, and the
// pass runner the background job calls.
type Synchronizer interface {
	// ConfigureNamespace registers the conflict resolver and optional event
	// filter for ns. Must be called before documents in ns are synchronized.
	ConfigureNamespace(ns models.Namespace, resolver ConflictResolver, filter EventFilter)

	// SyncDocumentFromRemote places the document with the given id under sync
	// control and marks it stale so the next pass fetches its authoritative
	// remote state.
	SyncDocumentFromRemote(ctx context.Context, ns models.Namespace, id any) error

	// DesyncDocument removes the document from sync control and deletes its
	// local mirror.
	DesyncDocument(ctx context.Context, ns models.Namespace, id any) error

	// InsertOneAndSync writes doc locally, places it under sync control, and
	// queues a remote insert for the next pass. A missing identity field is
	// filled with a generated id. Returns the document's id.
	InsertOneAndSync(ctx context.Context, ns models.Namespace, doc models.Document) (any, error)

	// UpdateOneByID applies an update specifier ($set/$unset sub-documents)
	// to the synced document with the given id and queues the change for the
	// next pass.
	UpdateOneByID(ctx context.Context, ns models.Namespace, id any, update models.Document) error

	// ReplaceOneByID replaces the synced document's content with replacement
	// and queues the change for the next pass.
	ReplaceOneByID(ctx context.Context, ns models.Namespace, id any, replacement models.Document) error

	// DeleteOneByID deletes the synced document locally and queues the remote
	// delete for the next pass.
	DeleteOneByID(ctx context.Context, ns models.Namespace, id any) error

	// FindOneByID reads the local mirror of the synced document.
	FindOneByID(ctx context.Context, ns models.Namespace, id any) (models.Document, error)

	// DoSyncPass runs one reconciliation pass. Passes are serialized: a call
	// made while a pass is running coalesces into a single deferred re-run
	// and returns immediately with an empty result.
	DoSyncPass(ctx context.Context) (SyncPassResult, error)
}

// PassRunner is the subset of [Synchronizer] the background job drives.
type PassRunner interface {
	DoSyncPass(ctx context.Context) (SyncPassResult, error)
}

// RemoteCollection is the remote boundary the synchronizer consumes; it is
// satisfied by the adapter package's collection service.
type RemoteCollection interface {
	FindOne(ctx context.Context, ns models.Namespace, query models.Document) (models.Document, error)
	InsertOne(ctx context.Context, ns models.Namespace, document models.Document) (models.RemoteInsertOneResult, error)
	UpdateOne(ctx context.Context, ns models.Namespace, query, update models.Document, upsert bool) (models.RemoteUpdateResult, error)
	DeleteOne(ctx context.Context, ns models.Namespace, query models.Document) (models.RemoteDeleteResult, error)
	ChangeEventsSince(ctx context.Context, ns models.Namespace, resumeToken models.Document) ([]models.Document, error)
}
