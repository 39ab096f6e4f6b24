package service

import "errors"

// Sentinel errors surfaced by the synchronizer. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrResolverFailed is returned (inside a [DocumentError]) when a
	// namespace's conflict resolver returned an error. The document is marked
	// stale and the pass continues with other documents.
	ErrResolverFailed = errors.New("conflict resolver failed")

	// ErrInvalidResolution is returned when a resolver produced a document
	// that is missing the identity field or changes its value. Treated like a
	// resolver failure: document marked stale, conflict surfaced.
	ErrInvalidResolution = errors.New("conflict resolver returned invalid document")

	// ErrNamespaceNotConfigured is returned when an operation targets a
	// namespace that has no registered conflict resolver.
	ErrNamespaceNotConfigured = errors.New("namespace not configured for sync")

	// ErrDocumentNotSynced is returned when a local write targets a document
	// that is not under sync control.
	ErrDocumentNotSynced = errors.New("document not under sync control")

	// ErrDocumentAlreadySynced is returned by InsertOneAndSync when the
	// document id is already tracked in the namespace.
	ErrDocumentAlreadySynced = errors.New("document already under sync control")

	// ErrMissingDocumentID is returned when an inserted document carries a
	// nil identity field and one cannot be generated.
	ErrMissingDocumentID = errors.New("document has no identity field")
)
