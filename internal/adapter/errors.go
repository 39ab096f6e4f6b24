package adapter

import "errors"

// Sentinel errors mapped from transport-level failures. Callers match these
// with [errors.Is].
var (
	// ErrUnauthorized indicates the bearer token was missing, expired, or
	// rejected by the remote service.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrVersionConflict indicates a conditioned remote write observed a
	// newer remote revision. It is not a failure: the synchronizer routes it
	// to conflict resolution.
	ErrVersionConflict = errors.New("version conflict")

	// ErrTransientNetwork indicates a timeout, connection failure, or
	// server-side 5xx that is expected to succeed on a later attempt. The
	// synchronizer retries the affected document on the next pass.
	ErrTransientNetwork = errors.New("transient network error")

	// ErrBadRequest indicates the remote service rejected the call as
	// malformed. Retrying the identical call will not help.
	ErrBadRequest = errors.New("bad request")

	// ErrFunctionNotFound indicates the named server function does not exist
	// in the remote application.
	ErrFunctionNotFound = errors.New("remote function not found")
)

// IsTransient reports whether err represents a failure worth retrying on the
// next sync pass rather than escalating.
func IsTransient(err error) bool {
	return errors.Is(err, ErrTransientNetwork)
}
