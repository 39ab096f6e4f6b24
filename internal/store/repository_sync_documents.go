package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Acidburn0zzz/docsync/internal/logger"
	"github.com/Acidburn0zzz/docsync/models"
)

// syncDocumentRepository is the SQLite-backed implementation of
// [SyncDocumentRepository]. One row per tracked document in the
// "sync_documents" table, addressed by the deterministic
// (namespace, document id) key.
type syncDocumentRepository struct {
	*DB
	logger *logger.Logger
}

// NewSyncDocumentRepository constructs a [SyncDocumentRepository] backed by
// the provided database connection and logger.
func NewSyncDocumentRepository(db *DB, logger *logger.Logger) SyncDocumentRepository {
	return &syncDocumentRepository{
		DB:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanSyncDocumentRecord(row rowScanner) (SyncDocumentRecord, error) {
	var (
		record  SyncDocumentRecord
		idJSON  string
		version *string
		pending *string
	)

	err := row.Scan(
		&record.Namespace.Database,
		&record.Namespace.Collection,
		new(string), // doc_id key, recomputed from doc_id_json when needed
		&idJSON,
		&version,
		&record.IsStale,
		&record.HasUncommittedWrites,
		&pending,
	)
	if err != nil {
		return SyncDocumentRecord{}, err
	}

	if record.DocumentID, err = decodeDocumentID(idJSON); err != nil {
		return SyncDocumentRecord{}, err
	}
	if record.LastKnownVersion, err = decodeJSONColumn(version); err != nil {
		return SyncDocumentRecord{}, err
	}
	if record.UncommittedEvent, err = decodeJSONColumn(pending); err != nil {
		return SyncDocumentRecord{}, err
	}

	return record, nil
}

// GetSyncDocument retrieves the sync record for the given document.
//
// Returns [ErrSyncDocumentNotFound] when the document is not under sync
// control.
func (s *syncDocumentRepository) GetSyncDocument(ctx context.Context, ns models.Namespace, id any) (SyncDocumentRecord, error) {
	log := logger.FromContext(ctx)

	idKey, err := documentIDKey(id)
	if err != nil {
		return SyncDocumentRecord{}, err
	}

	query, args, err := buildSelectSyncDocumentQuery(ns, idKey)
	if err != nil {
		log.Err(err).
			Str("func", "syncDocumentRepository.GetSyncDocument").
			Str("namespace", ns.String()).
			Msg("failed to build query")
		return SyncDocumentRecord{}, err
	}

	record, err := scanSyncDocumentRecord(s.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return SyncDocumentRecord{}, ErrSyncDocumentNotFound
		}
		if errors.Is(err, ErrDecodingRecord) {
			return SyncDocumentRecord{}, err
		}
		log.Err(err).
			Str("func", "syncDocumentRepository.GetSyncDocument").
			Str("namespace", ns.String()).
			Msg("failed to scan sync document record")
		return SyncDocumentRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return record, nil
}

// GetSyncDocuments retrieves every sync record in ns, ordered by document id
// key for reproducible pass ordering.
func (s *syncDocumentRepository) GetSyncDocuments(ctx context.Context, ns models.Namespace) ([]SyncDocumentRecord, error) {
	return s.selectSyncDocuments(ctx, ns)
}

// GetAllSyncDocuments retrieves every sync record in the instance.
func (s *syncDocumentRepository) GetAllSyncDocuments(ctx context.Context) ([]SyncDocumentRecord, error) {
	return s.selectSyncDocuments(ctx, models.Namespace{})
}

func (s *syncDocumentRepository) selectSyncDocuments(ctx context.Context, ns models.Namespace) ([]SyncDocumentRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSyncDocumentsQuery(ns)
	if err != nil {
		log.Err(err).
			Str("func", "syncDocumentRepository.selectSyncDocuments").
			Str("namespace", ns.String()).
			Msg("failed to build query")
		return nil, err
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "syncDocumentRepository.selectSyncDocuments").
			Str("namespace", ns.String()).
			Msg("failed to execute query for sync document records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]SyncDocumentRecord, 0, 16)

	for rows.Next() {
		record, scanErr := scanSyncDocumentRecord(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "syncDocumentRepository.selectSyncDocuments").
				Str("namespace", ns.String()).
				Msg("failed to scan sync document row")
			if errors.Is(scanErr, ErrDecodingRecord) {
				return nil, scanErr
			}
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		records = append(records, record)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "syncDocumentRepository.selectSyncDocuments").
			Str("namespace", ns.String()).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return records, nil
}

// UpsertSyncDocument durably writes record so that a crash immediately after
// the call observes the record on the next startup.
func (s *syncDocumentRepository) UpsertSyncDocument(ctx context.Context, record SyncDocumentRecord) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertSyncDocumentRow(record)
	if err != nil {
		log.Err(err).
			Str("func", "syncDocumentRepository.UpsertSyncDocument").
			Str("namespace", record.Namespace.String()).
			Msg("failed to build query")
		return err
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "syncDocumentRepository.UpsertSyncDocument").
			Str("namespace", record.Namespace.String()).
			Msg("failed to upsert sync document record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// buildUpsertSyncDocumentRow serializes record's JSON columns and builds the
// UPSERT statement for it.
func buildUpsertSyncDocumentRow(record SyncDocumentRecord) (string, []any, error) {
	idKey, err := documentIDKey(record.DocumentID)
	if err != nil {
		return "", nil, err
	}
	idJSON, err := encodeDocumentID(record.DocumentID)
	if err != nil {
		return "", nil, err
	}
	version, err := encodeJSONColumn(record.LastKnownVersion)
	if err != nil {
		return "", nil, err
	}
	pending, err := encodeJSONColumn(record.UncommittedEvent)
	if err != nil {
		return "", nil, err
	}

	return buildUpsertSyncDocumentQuery(record, idKey, idJSON, version, pending)
}

// DeleteSyncDocument removes the sync record for the given document. Removing
// a missing record is a no-op.
func (s *syncDocumentRepository) DeleteSyncDocument(ctx context.Context, ns models.Namespace, id any) error {
	log := logger.FromContext(ctx)

	idKey, err := documentIDKey(id)
	if err != nil {
		return err
	}

	query, args, err := buildDeleteSyncDocumentQuery(ns, idKey)
	if err != nil {
		log.Err(err).
			Str("func", "syncDocumentRepository.DeleteSyncDocument").
			Str("namespace", ns.String()).
			Msg("failed to build query")
		return err
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "syncDocumentRepository.DeleteSyncDocument").
			Str("namespace", ns.String()).
			Msg("failed to delete sync document record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
