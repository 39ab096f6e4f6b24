package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrDocumentNotFound is returned when a lookup targets a local document
	// that does not exist in the documents table.
	ErrDocumentNotFound = errors.New("local document not found")

	// ErrSyncDocumentNotFound is returned when a lookup targets a per-document
	// sync record (identified by namespace and document id) that is not under
	// sync control.
	ErrSyncDocumentNotFound = errors.New("sync document record not found")

	// ErrSyncNamespaceNotFound is returned when a namespace-level sync record
	// does not exist for the requested namespace.
	ErrSyncNamespaceNotFound = errors.New("sync namespace record not found")

	// ErrInvalidDocumentID is returned when a document id cannot be reduced to
	// a deterministic storage key, for example an id containing values that do
	// not survive JSON encoding.
	ErrInvalidDocumentID = errors.New("invalid document id")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied. The synchronizer treats every one of them as pass-fatal.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrEncodingRecord is returned when a document or sync record cannot be
	// serialized to its JSON column representation.
	ErrEncodingRecord = errors.New("failed to encode record")

	// ErrDecodingRecord is returned when a JSON column cannot be decoded back
	// into its in-memory representation.
	ErrDecodingRecord = errors.New("failed to decode record")
)

// IsFatal reports whether err is a low-level storage failure that must abort
// the remainder of the current sync pass.
func IsFatal(err error) bool {
	return errors.Is(err, ErrExecutingQuery) ||
		errors.Is(err, ErrExecutingStatement) ||
		errors.Is(err, ErrBeginningTransaction) ||
		errors.Is(err, ErrCommitingTransaction) ||
		errors.Is(err, ErrScanningRow) ||
		errors.Is(err, ErrScanningRows) ||
		errors.Is(err, ErrBuildingSQLQuery) ||
		errors.Is(err, ErrEncodingRecord) ||
		errors.Is(err, ErrDecodingRecord)
}
