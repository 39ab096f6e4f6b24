package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Acidburn0zzz/docsync/internal/logger"
	"github.com/Acidburn0zzz/docsync/models"
)

// localDocumentRepository is the SQLite-backed implementation of
// [LocalDocumentRepository]. Each document is stored as one row in the
// "documents" table, keyed by namespace and the deterministic id key, with
// the full document body as JSON.
type localDocumentRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalDocumentRepository constructs a [LocalDocumentRepository] backed by
// the provided database connection and logger.
func NewLocalDocumentRepository(db *DB, logger *logger.Logger) LocalDocumentRepository {
	return &localDocumentRepository{
		DB:     db,
		logger: logger,
	}
}

// FindOneByID retrieves the local document with the given id.
//
// Returns [ErrDocumentNotFound] when no row matches.
func (l *localDocumentRepository) FindOneByID(ctx context.Context, ns models.Namespace, id any) (models.Document, error) {
	log := logger.FromContext(ctx)

	idKey, err := documentIDKey(id)
	if err != nil {
		return nil, err
	}

	query, args, err := buildSelectDocumentQuery(ns, idKey)
	if err != nil {
		log.Err(err).
			Str("func", "localDocumentRepository.FindOneByID").
			Str("namespace", ns.String()).
			Msg("failed to build query")
		return nil, err
	}

	var body string
	if err = l.DB.QueryRowContext(ctx, query, args...).Scan(&body); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDocumentNotFound
		}
		log.Err(err).
			Str("func", "localDocumentRepository.FindOneByID").
			Str("namespace", ns.String()).
			Msg("failed to execute document lookup")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var doc models.Document
	if err = json.Unmarshal([]byte(body), &doc); err != nil {
		log.Err(err).
			Str("func", "localDocumentRepository.FindOneByID").
			Str("namespace", ns.String()).
			Msg("failed to decode document body")
		return nil, fmt.Errorf("%w: %w", ErrDecodingRecord, err)
	}

	return doc, nil
}

// UpsertOne writes doc as the complete new state of the document with the
// given id. The single-row UPSERT gives readers atomic visibility of the
// whole document.
func (l *localDocumentRepository) UpsertOne(ctx context.Context, ns models.Namespace, id any, doc models.Document) error {
	log := logger.FromContext(ctx)

	idKey, err := documentIDKey(id)
	if err != nil {
		return err
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingRecord, err)
	}

	query, args, err := buildUpsertDocumentQuery(ns, idKey, string(body))
	if err != nil {
		log.Err(err).
			Str("func", "localDocumentRepository.UpsertOne").
			Str("namespace", ns.String()).
			Msg("failed to build query")
		return err
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "localDocumentRepository.UpsertOne").
			Str("namespace", ns.String()).
			Msg("failed to upsert document")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// DeleteOneByID removes the local document with the given id. Deleting a
// document that does not exist is a no-op.
func (l *localDocumentRepository) DeleteOneByID(ctx context.Context, ns models.Namespace, id any) error {
	log := logger.FromContext(ctx)

	idKey, err := documentIDKey(id)
	if err != nil {
		return err
	}

	query, args, err := buildDeleteDocumentQuery(ns, idKey)
	if err != nil {
		log.Err(err).
			Str("func", "localDocumentRepository.DeleteOneByID").
			Str("namespace", ns.String()).
			Msg("failed to build query")
		return err
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "localDocumentRepository.DeleteOneByID").
			Str("namespace", ns.String()).
			Msg("failed to delete document")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
