package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Acidburn0zzz/docsync/internal/logger"
	"github.com/Acidburn0zzz/docsync/models"
)

// syncNamespaceRepository is the SQLite-backed implementation of
// [SyncNamespaceRepository]. One row per synchronized namespace in the
// "sync_namespaces" table.
type syncNamespaceRepository struct {
	*DB
	logger *logger.Logger
}

// NewSyncNamespaceRepository constructs a [SyncNamespaceRepository] backed by
// the provided database connection and logger.
func NewSyncNamespaceRepository(db *DB, logger *logger.Logger) SyncNamespaceRepository {
	return &syncNamespaceRepository{
		DB:     db,
		logger: logger,
	}
}

func scanSyncNamespaceRecord(row rowScanner) (SyncNamespaceRecord, error) {
	var (
		record SyncNamespaceRecord
		token  *string
	)

	err := row.Scan(
		&record.Namespace.Database,
		&record.Namespace.Collection,
		&token,
		&record.TokenValid,
	)
	if err != nil {
		return SyncNamespaceRecord{}, err
	}

	if record.ResumeToken, err = decodeJSONColumn(token); err != nil {
		return SyncNamespaceRecord{}, err
	}

	return record, nil
}

// GetSyncNamespace retrieves the namespace-level sync record for ns.
//
// Returns [ErrSyncNamespaceNotFound] when ns has never been synchronized.
func (s *syncNamespaceRepository) GetSyncNamespace(ctx context.Context, ns models.Namespace) (SyncNamespaceRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSyncNamespaceQuery(ns)
	if err != nil {
		log.Err(err).
			Str("func", "syncNamespaceRepository.GetSyncNamespace").
			Str("namespace", ns.String()).
			Msg("failed to build query")
		return SyncNamespaceRecord{}, err
	}

	record, err := scanSyncNamespaceRecord(s.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return SyncNamespaceRecord{}, ErrSyncNamespaceNotFound
		}
		if errors.Is(err, ErrDecodingRecord) {
			return SyncNamespaceRecord{}, err
		}
		log.Err(err).
			Str("func", "syncNamespaceRepository.GetSyncNamespace").
			Str("namespace", ns.String()).
			Msg("failed to scan sync namespace record")
		return SyncNamespaceRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return record, nil
}

// GetAllSyncNamespaces retrieves every namespace record in the instance.
func (s *syncNamespaceRepository) GetAllSyncNamespaces(ctx context.Context) ([]SyncNamespaceRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSyncNamespacesQuery()
	if err != nil {
		log.Err(err).
			Str("func", "syncNamespaceRepository.GetAllSyncNamespaces").
			Msg("failed to build query")
		return nil, err
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "syncNamespaceRepository.GetAllSyncNamespaces").
			Msg("failed to execute query for sync namespace records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]SyncNamespaceRecord, 0, 4)

	for rows.Next() {
		record, scanErr := scanSyncNamespaceRecord(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "syncNamespaceRepository.GetAllSyncNamespaces").
				Msg("failed to scan sync namespace row")
			if errors.Is(scanErr, ErrDecodingRecord) {
				return nil, scanErr
			}
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		records = append(records, record)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "syncNamespaceRepository.GetAllSyncNamespaces").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return records, nil
}

// UpsertSyncNamespace durably writes record, inserting or replacing.
func (s *syncNamespaceRepository) UpsertSyncNamespace(ctx context.Context, record SyncNamespaceRecord) error {
	log := logger.FromContext(ctx)

	token, err := encodeJSONColumn(record.ResumeToken)
	if err != nil {
		return err
	}

	query, args, err := buildUpsertSyncNamespaceQuery(record, token)
	if err != nil {
		log.Err(err).
			Str("func", "syncNamespaceRepository.UpsertSyncNamespace").
			Str("namespace", record.Namespace.String()).
			Msg("failed to build query")
		return err
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "syncNamespaceRepository.UpsertSyncNamespace").
			Str("namespace", record.Namespace.String()).
			Msg("failed to upsert sync namespace record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
