// SPDX-License-Identifier: Apache-2.0

// Package adapter provides the transport boundary between the sync engine and
// the remote document service.
//
// The primary abstraction is [RemoteFunctionService], the opaque named-RPC
// layer used to call server functions with positional arguments. On top of it,
// [RemoteCollectionService] expresses the document operations the synchronizer
// needs (conditioned writes, authoritative reads, change-event fetches).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrVersionConflict] for 409, [ErrTransientNetwork]
// for timeouts and 5xx responses).
package adapter

import (
	"context"
	"time"

	"github.com/Acidburn0zzz/docsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// TokenSource supplies fresh bearer tokens for the remote service. It is the
// boundary to the external authentication collaborator; the engine never
// manages credentials itself.
type TokenSource interface {
	// RefreshToken returns a valid bearer token, performing whatever
	// re-authentication the auth collaborator requires.
	RefreshToken(ctx context.Context) (string, error)
}

// RemoteFunctionService is the generic remote-procedure boundary: a named
// server function invoked with positional arguments. Implementations are
// responsible for serialization, bearer-token management, timeouts, and
// mapping transport-level failures to the sentinel errors in this package.
type RemoteFunctionService interface {
	// SetToken stores the bearer token attached to all subsequent calls.
	SetToken(token string)

	// Token returns the bearer token currently stored, or "" if none is set.
	Token() string

	// CallFunction invokes the named server function with the given
	// positional arguments and decodes the response into result when result
	// is non-nil. The configured request timeout bounds the call.
	CallFunction(ctx context.Context, name string, args []any, result any) error

	// CallFunctionWithTimeout behaves like CallFunction with a per-call
	// timeout overriding the configured default.
	CallFunctionWithTimeout(ctx context.Context, name string, args []any, result any, timeout time.Duration) error
}

// RemoteCollectionService exposes the remote document operations the
// synchronizer consumes, all expressed over [RemoteFunctionService] with the
// positional-argument conventions of the wire contract.
type RemoteCollectionService interface {
	// FindOne fetches the current authoritative state of the single document
	// matching query, or nil when no document matches.
	FindOne(ctx context.Context, ns models.Namespace, query models.Document) (models.Document, error)

	// InsertOne inserts document into the remote collection.
	InsertOne(ctx context.Context, ns models.Namespace, document models.Document) (models.RemoteInsertOneResult, error)

	// UpdateOne applies update to the single document matching query.
	// With upsert=true a missing document is created.
	UpdateOne(ctx context.Context, ns models.Namespace, query, update models.Document, upsert bool) (models.RemoteUpdateResult, error)

	// DeleteOne removes the single document matching query.
	DeleteOne(ctx context.Context, ns models.Namespace, query models.Document) (models.RemoteDeleteResult, error)

	// ChangeEventsSince fetches the raw change-event wire documents recorded
	// for ns after the given resume marker. A nil resumeToken requests the
	// stream from its current tail.
	ChangeEventsSince(ctx context.Context, ns models.Namespace, resumeToken models.Document) ([]models.Document, error)
}
