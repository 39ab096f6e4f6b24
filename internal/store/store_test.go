package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Acidburn0zzz/docsync/internal/config"
	"github.com/Acidburn0zzz/docsync/internal/logger"
	"github.com/Acidburn0zzz/docsync/models"
)

// newTestStore opens a fresh migrated SQLite database in a temp directory.
func newTestStore(t *testing.T) SyncStore {
	t.Helper()

	db, err := NewConnectSQLite(
		context.Background(),
		config.ClientDB{DSN: filepath.Join(t.TempDir(), "docsync.db")},
		logger.Nop(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Migrate())

	return NewSyncStore(db, logger.Nop())
}

var storeNS = models.Namespace{Database: "appdb", Collection: "items"}

func TestLocalDocumentRepository_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	doc := models.Document{"_id": "d1", "qty": float64(3), "tags": []any{"a", "b"}}
	require.NoError(t, s.UpsertOne(ctx, storeNS, "d1", doc))

	got, err := s.FindOneByID(ctx, storeNS, "d1")
	require.NoError(t, err)
	assert.Equal(t, doc, got)

	// replace with new state
	doc["qty"] = float64(5)
	require.NoError(t, s.UpsertOne(ctx, storeNS, "d1", doc))

	got, err = s.FindOneByID(ctx, storeNS, "d1")
	require.NoError(t, err)
	assert.Equal(t, float64(5), got["qty"])

	require.NoError(t, s.DeleteOneByID(ctx, storeNS, "d1"))

	_, err = s.FindOneByID(ctx, storeNS, "d1")
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestLocalDocumentRepository_DeleteMissingIsNoop(t *testing.T) {
	s := newTestStore(t)

	assert.NoError(t, s.DeleteOneByID(context.Background(), storeNS, "ghost"))
}

func TestLocalDocumentRepository_NamespacesAreIsolated(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	other := models.Namespace{Database: "appdb", Collection: "orders"}
	require.NoError(t, s.UpsertOne(ctx, storeNS, "d1", models.Document{"_id": "d1"}))

	_, err := s.FindOneByID(ctx, other, "d1")
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestSyncDocumentRepository_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	record := SyncDocumentRecord{
		Namespace:            storeNS,
		DocumentID:           "d1",
		LastKnownVersion:     models.Document{"v": float64(2)},
		IsStale:              true,
		HasUncommittedWrites: true,
		UncommittedEvent:     models.Document{"operationType": "replace"},
	}
	require.NoError(t, s.UpsertSyncDocument(ctx, record))

	got, err := s.GetSyncDocument(ctx, storeNS, "d1")
	require.NoError(t, err)
	assert.Equal(t, record, got)

	// flags cleared on re-upsert
	record.IsStale = false
	record.HasUncommittedWrites = false
	record.UncommittedEvent = nil
	require.NoError(t, s.UpsertSyncDocument(ctx, record))

	got, err = s.GetSyncDocument(ctx, storeNS, "d1")
	require.NoError(t, err)
	assert.False(t, got.IsStale)
	assert.False(t, got.HasUncommittedWrites)
	assert.Nil(t, got.UncommittedEvent)

	require.NoError(t, s.DeleteSyncDocument(ctx, storeNS, "d1"))

	_, err = s.GetSyncDocument(ctx, storeNS, "d1")
	assert.ErrorIs(t, err, ErrSyncDocumentNotFound)
}

func TestSyncDocumentRepository_NumericIDSurvivesRestart(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	record := SyncDocumentRecord{Namespace: storeNS, DocumentID: float64(7)}
	require.NoError(t, s.UpsertSyncDocument(ctx, record))

	got, err := s.GetSyncDocument(ctx, storeNS, float64(7))
	require.NoError(t, err)
	assert.Equal(t, float64(7), got.DocumentID)
}

func TestSyncDocumentRepository_ListByNamespace(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	other := models.Namespace{Database: "appdb", Collection: "orders"}
	require.NoError(t, s.UpsertSyncDocument(ctx, SyncDocumentRecord{Namespace: storeNS, DocumentID: "a"}))
	require.NoError(t, s.UpsertSyncDocument(ctx, SyncDocumentRecord{Namespace: storeNS, DocumentID: "b"}))
	require.NoError(t, s.UpsertSyncDocument(ctx, SyncDocumentRecord{Namespace: other, DocumentID: "c"}))

	inNS, err := s.GetSyncDocuments(ctx, storeNS)
	require.NoError(t, err)
	assert.Len(t, inNS, 2)

	all, err := s.GetAllSyncDocuments(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestSyncNamespaceRepository_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.GetSyncNamespace(ctx, storeNS)
	assert.ErrorIs(t, err, ErrSyncNamespaceNotFound)

	record := SyncNamespaceRecord{
		Namespace:   storeNS,
		ResumeToken: models.Document{"ts": float64(10)},
		TokenValid:  true,
	}
	require.NoError(t, s.UpsertSyncNamespace(ctx, record))

	got, err := s.GetSyncNamespace(ctx, storeNS)
	require.NoError(t, err)
	assert.Equal(t, record, got)

	// invalidate the token after a malformed event
	record.TokenValid = false
	record.ResumeToken = nil
	require.NoError(t, s.UpsertSyncNamespace(ctx, record))

	got, err = s.GetSyncNamespace(ctx, storeNS)
	require.NoError(t, err)
	assert.False(t, got.TokenValid)
	assert.Nil(t, got.ResumeToken)

	all, err := s.GetAllSyncNamespaces(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSyncStore_ApplySyncedChange(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	record := SyncDocumentRecord{
		Namespace:        storeNS,
		DocumentID:       "d1",
		LastKnownVersion: models.Document{"v": float64(1)},
	}
	doc := models.Document{"_id": "d1", "qty": float64(1)}

	require.NoError(t, s.ApplySyncedChange(ctx, record, doc))

	gotDoc, err := s.FindOneByID(ctx, storeNS, "d1")
	require.NoError(t, err)
	assert.Equal(t, doc, gotDoc)

	gotRecord, err := s.GetSyncDocument(ctx, storeNS, "d1")
	require.NoError(t, err)
	assert.Equal(t, record, gotRecord)
}

func TestSyncStore_ApplySyncedChange_NilDocDeletesLocal(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.UpsertOne(ctx, storeNS, "d1", models.Document{"_id": "d1"}))

	record := SyncDocumentRecord{
		Namespace:            storeNS,
		DocumentID:           "d1",
		HasUncommittedWrites: true,
		UncommittedEvent:     models.Document{"operationType": "delete"},
	}
	require.NoError(t, s.ApplySyncedChange(ctx, record, nil))

	_, err := s.FindOneByID(ctx, storeNS, "d1")
	assert.ErrorIs(t, err, ErrDocumentNotFound)

	gotRecord, err := s.GetSyncDocument(ctx, storeNS, "d1")
	require.NoError(t, err)
	assert.True(t, gotRecord.HasUncommittedWrites)
}

func TestSyncStore_RemoveSyncedDocument(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.ApplySyncedChange(ctx,
		SyncDocumentRecord{Namespace: storeNS, DocumentID: "d1"},
		models.Document{"_id": "d1"},
	))

	require.NoError(t, s.RemoveSyncedDocument(ctx, storeNS, "d1"))

	_, err := s.FindOneByID(ctx, storeNS, "d1")
	assert.ErrorIs(t, err, ErrDocumentNotFound)

	_, err = s.GetSyncDocument(ctx, storeNS, "d1")
	assert.ErrorIs(t, err, ErrSyncDocumentNotFound)
}
