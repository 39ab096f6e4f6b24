package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Acidburn0zzz/docsync/internal/logger"
	"github.com/Acidburn0zzz/docsync/models"
)

// syncStore aggregates the three repositories over one SQLite connection and
// adds the combined transactional operations.
type syncStore struct {
	LocalDocumentRepository
	SyncDocumentRepository
	SyncNamespaceRepository

	db     *DB
	logger *logger.Logger
}

// NewSyncStore constructs the [SyncStore] aggregate over db.
func NewSyncStore(db *DB, log *logger.Logger) SyncStore {
	return &syncStore{
		LocalDocumentRepository: NewLocalDocumentRepository(db, log),
		SyncDocumentRepository:  NewSyncDocumentRepository(db, log),
		SyncNamespaceRepository: NewSyncNamespaceRepository(db, log),
		db:                      db,
		logger:                  log,
	}
}

// ApplySyncedChange writes the local document state and the sync record in a
// single transaction. A nil doc deletes the local document row while keeping
// the record, which is how a pending local delete survives a restart.
func (s *syncStore) ApplySyncedChange(ctx context.Context, record SyncDocumentRecord, doc models.Document) error {
	log := logger.FromContext(ctx)

	ns := record.Namespace
	idKey, err := documentIDKey(record.DocumentID)
	if err != nil {
		return err
	}

	var docQuery string
	var docArgs []any
	if doc == nil {
		docQuery, docArgs, err = buildDeleteDocumentQuery(ns, idKey)
	} else {
		var body []byte
		if body, err = json.Marshal(doc); err != nil {
			return fmt.Errorf("%w: %w", ErrEncodingRecord, err)
		}
		docQuery, docArgs, err = buildUpsertDocumentQuery(ns, idKey, string(body))
	}
	if err != nil {
		return err
	}

	recordQuery, recordArgs, err := buildUpsertSyncDocumentRow(record)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "syncStore.ApplySyncedChange").
			Str("namespace", ns.String()).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, docQuery, docArgs...); err != nil {
		log.Err(err).
			Str("func", "syncStore.ApplySyncedChange").
			Str("namespace", ns.String()).
			Msg("failed to write local document")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if _, err = tx.ExecContext(ctx, recordQuery, recordArgs...); err != nil {
		log.Err(err).
			Str("func", "syncStore.ApplySyncedChange").
			Str("namespace", ns.String()).
			Msg("failed to write sync document record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "syncStore.ApplySyncedChange").
			Str("namespace", ns.String()).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// RemoveSyncedDocument deletes both the local document row and its sync
// record in a single transaction, ending sync control for the document.
func (s *syncStore) RemoveSyncedDocument(ctx context.Context, ns models.Namespace, id any) error {
	log := logger.FromContext(ctx)

	idKey, err := documentIDKey(id)
	if err != nil {
		return err
	}

	docQuery, docArgs, err := buildDeleteDocumentQuery(ns, idKey)
	if err != nil {
		return err
	}
	recordQuery, recordArgs, err := buildDeleteSyncDocumentQuery(ns, idKey)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "syncStore.RemoveSyncedDocument").
			Str("namespace", ns.String()).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, docQuery, docArgs...); err != nil {
		log.Err(err).
			Str("func", "syncStore.RemoveSyncedDocument").
			Str("namespace", ns.String()).
			Msg("failed to delete local document")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if _, err = tx.ExecContext(ctx, recordQuery, recordArgs...); err != nil {
		log.Err(err).
			Str("func", "syncStore.RemoveSyncedDocument").
			Str("namespace", ns.String()).
			Msg("failed to delete sync document record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "syncStore.RemoveSyncedDocument").
			Str("namespace", ns.String()).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
