// Package store persists the synchronized local documents and the sync
// metadata that drives pass planning.
//
// Three repositories share one SQLite database: [LocalDocumentRepository]
// holds the local mirror of every synchronized document,
// [SyncDocumentRepository] holds per-document sync records, and
// [SyncNamespaceRepository] holds namespace-level resume markers. A single
// document write plus its sync-record update is the unit of atomicity;
// [SyncStore.ApplySyncedChange] runs both inside one transaction.
package store

import (
	"context"

	"github.com/Acidburn0zzz/docsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// LocalDocumentRepository is the local mirror of synchronized collections.
// All reads observe fully applied writes only.
type LocalDocumentRepository interface {
	// FindOneByID returns the local document with the given id, or
	// [ErrDocumentNotFound].
	FindOneByID(ctx context.Context, ns models.Namespace, id any) (models.Document, error)

	// UpsertOne writes doc as the complete new state of the document with the
	// given id, inserting or replacing atomically.
	UpsertOne(ctx context.Context, ns models.Namespace, id any, doc models.Document) error

	// DeleteOneByID removes the local document with the given id. Deleting a
	// missing document is not an error.
	DeleteOneByID(ctx context.Context, ns models.Namespace, id any) error
}

// SyncDocumentRepository persists per-document sync records, addressed by the
// deterministic (namespace, document id) filter.
type SyncDocumentRepository interface {
	// GetSyncDocument returns the record for the given document, or
	// [ErrSyncDocumentNotFound].
	GetSyncDocument(ctx context.Context, ns models.Namespace, id any) (SyncDocumentRecord, error)

	// GetSyncDocuments returns every record in ns.
	GetSyncDocuments(ctx context.Context, ns models.Namespace) ([]SyncDocumentRecord, error)

	// GetAllSyncDocuments returns every record in the instance, used to
	// rebuild the in-memory sync config at startup.
	GetAllSyncDocuments(ctx context.Context) ([]SyncDocumentRecord, error)

	// UpsertSyncDocument durably writes record, inserting or replacing.
	UpsertSyncDocument(ctx context.Context, record SyncDocumentRecord) error

	// DeleteSyncDocument removes the record for the given document. Deleting
	// a missing record is not an error.
	DeleteSyncDocument(ctx context.Context, ns models.Namespace, id any) error
}

// SyncNamespaceRepository persists namespace-level sync state.
type SyncNamespaceRepository interface {
	// GetSyncNamespace returns the record for ns, or
	// [ErrSyncNamespaceNotFound].
	GetSyncNamespace(ctx context.Context, ns models.Namespace) (SyncNamespaceRecord, error)

	// GetAllSyncNamespaces returns every namespace record in the instance.
	GetAllSyncNamespaces(ctx context.Context) ([]SyncNamespaceRecord, error)

	// UpsertSyncNamespace durably writes record, inserting or replacing.
	UpsertSyncNamespace(ctx context.Context, record SyncNamespaceRecord) error
}

// SyncStore bundles the repositories with the combined atomic operations the
// synchronizer needs, so that a crash never separates a document write from
// its sync-record update.
type SyncStore interface {
	LocalDocumentRepository
	SyncDocumentRepository
	SyncNamespaceRepository

	// ApplySyncedChange atomically writes the local document and its sync
	// record in one transaction. A nil doc deletes the local document while
	// keeping the record, which is how a pending local delete is persisted.
	ApplySyncedChange(ctx context.Context, record SyncDocumentRecord, doc models.Document) error

	// RemoveSyncedDocument atomically deletes both the local document and its
	// sync record, ending sync control for the document.
	RemoveSyncedDocument(ctx context.Context, ns models.Namespace, id any) error
}
