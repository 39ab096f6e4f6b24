package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/Acidburn0zzz/docsync/models"
)

// All queries use SQLite's default ? placeholders.
var queryBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

var (
	documentColumns     = []string{"db_name", "coll_name", "doc_id", "body"}
	syncDocumentColumns = []string{
		"db_name", "coll_name", "doc_id", "doc_id_json",
		"last_known_version", "is_stale", "has_uncommitted_writes", "uncommitted_event",
	}
	syncNamespaceColumns = []string{"db_name", "coll_name", "resume_token", "token_valid"}
)

func namespaceEq(ns models.Namespace) sq.Eq {
	return sq.Eq{"db_name": ns.Database, "coll_name": ns.Collection}
}

func documentKeyEq(ns models.Namespace, idKey string) sq.Eq {
	return sq.Eq{"db_name": ns.Database, "coll_name": ns.Collection, "doc_id": idKey}
}

func buildSelectDocumentQuery(ns models.Namespace, idKey string) (string, []any, error) {
	query, args, err := queryBuilder.
		Select("body").
		From("documents").
		Where(documentKeyEq(ns, idKey)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpsertDocumentQuery(ns models.Namespace, idKey, body string) (string, []any, error) {
	query, args, err := queryBuilder.
		Insert("documents").
		Columns(documentColumns...).
		Values(ns.Database, ns.Collection, idKey, body).
		Suffix(`ON CONFLICT (db_name, coll_name, doc_id) DO UPDATE
			SET body = excluded.body, updated_at = CURRENT_TIMESTAMP`).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteDocumentQuery(ns models.Namespace, idKey string) (string, []any, error) {
	query, args, err := queryBuilder.
		Delete("documents").
		Where(documentKeyEq(ns, idKey)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectSyncDocumentQuery(ns models.Namespace, idKey string) (string, []any, error) {
	query, args, err := queryBuilder.
		Select(syncDocumentColumns...).
		From("sync_documents").
		Where(documentKeyEq(ns, idKey)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildSelectSyncDocumentsQuery lists records in one namespace, or across the
// whole instance when ns is the zero value.
func buildSelectSyncDocumentsQuery(ns models.Namespace) (string, []any, error) {
	builder := queryBuilder.
		Select(syncDocumentColumns...).
		From("sync_documents").
		OrderBy("db_name", "coll_name", "doc_id")
	if !ns.IsZero() {
		builder = builder.Where(namespaceEq(ns))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpsertSyncDocumentQuery(record SyncDocumentRecord, idKey, idJSON string, version, pending any) (string, []any, error) {
	query, args, err := queryBuilder.
		Insert("sync_documents").
		Columns(syncDocumentColumns...).
		Values(
			record.Namespace.Database, record.Namespace.Collection, idKey, idJSON,
			version, record.IsStale, record.HasUncommittedWrites, pending,
		).
		Suffix(`ON CONFLICT (db_name, coll_name, doc_id) DO UPDATE SET
			doc_id_json = excluded.doc_id_json,
			last_known_version = excluded.last_known_version,
			is_stale = excluded.is_stale,
			has_uncommitted_writes = excluded.has_uncommitted_writes,
			uncommitted_event = excluded.uncommitted_event,
			updated_at = CURRENT_TIMESTAMP`).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteSyncDocumentQuery(ns models.Namespace, idKey string) (string, []any, error) {
	query, args, err := queryBuilder.
		Delete("sync_documents").
		Where(documentKeyEq(ns, idKey)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectSyncNamespaceQuery(ns models.Namespace) (string, []any, error) {
	query, args, err := queryBuilder.
		Select(syncNamespaceColumns...).
		From("sync_namespaces").
		Where(namespaceEq(ns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectSyncNamespacesQuery() (string, []any, error) {
	query, args, err := queryBuilder.
		Select(syncNamespaceColumns...).
		From("sync_namespaces").
		OrderBy("db_name", "coll_name").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpsertSyncNamespaceQuery(record SyncNamespaceRecord, token any) (string, []any, error) {
	query, args, err := queryBuilder.
		Insert("sync_namespaces").
		Columns(syncNamespaceColumns...).
		Values(record.Namespace.Database, record.Namespace.Collection, token, record.TokenValid).
		Suffix(`ON CONFLICT (db_name, coll_name) DO UPDATE SET
			resume_token = excluded.resume_token,
			token_valid = excluded.token_valid,
			updated_at = CURRENT_TIMESTAMP`).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
