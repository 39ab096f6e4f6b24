// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"fmt"

	"github.com/Acidburn0zzz/docsync/models"
)

// Server function names understood by the remote document service.
const (
	funcFindOne           = "findOne"
	funcInsertOne         = "insertOne"
	funcUpdateOne         = "updateOne"
	funcDeleteOne         = "deleteOne"
	funcChangeEventsSince = "changeEventsSince"
)

type remoteCollectionService struct {
	functions RemoteFunctionService
}

// NewRemoteCollectionService wraps a [RemoteFunctionService] with the
// document-level operations the synchronizer consumes. Every operation is a
// single named server function call carrying one arguments document.
func NewRemoteCollectionService(functions RemoteFunctionService) RemoteCollectionService {
	return &remoteCollectionService{functions: functions}
}

// collectionArgs builds the shared arguments document every collection
// function starts from.
func collectionArgs(ns models.Namespace) models.Document {
	return models.Document{
		"database":   ns.Database,
		"collection": ns.Collection,
	}
}

// FindOne implements [RemoteCollectionService]. A nil, nil return means no
// document matched the query.
func (r *remoteCollectionService) FindOne(ctx context.Context, ns models.Namespace, query models.Document) (models.Document, error) {
	args := collectionArgs(ns)
	args["query"] = query

	var doc models.Document
	if err := r.functions.CallFunction(ctx, funcFindOne, []any{args}, &doc); err != nil {
		return nil, fmt.Errorf("find one in %s: %w", ns, err)
	}
	if doc == nil {
		return nil, nil
	}
	return models.NormalizeDocument(doc)
}

// InsertOne implements [RemoteCollectionService].
func (r *remoteCollectionService) InsertOne(ctx context.Context, ns models.Namespace, document models.Document) (models.RemoteInsertOneResult, error) {
	args := collectionArgs(ns)
	args["document"] = document

	var result models.RemoteInsertOneResult
	if err := r.functions.CallFunction(ctx, funcInsertOne, []any{args}, &result); err != nil {
		return models.RemoteInsertOneResult{}, fmt.Errorf("insert one into %s: %w", ns, err)
	}
	return result, nil
}

// UpdateOne implements [RemoteCollectionService].
func (r *remoteCollectionService) UpdateOne(ctx context.Context, ns models.Namespace, query, update models.Document, upsert bool) (models.RemoteUpdateResult, error) {
	args := collectionArgs(ns)
	args["query"] = query
	args["update"] = update
	args["upsert"] = upsert

	var result models.RemoteUpdateResult
	if err := r.functions.CallFunction(ctx, funcUpdateOne, []any{args}, &result); err != nil {
		return models.RemoteUpdateResult{}, fmt.Errorf("update one in %s: %w", ns, err)
	}
	return result, nil
}

// DeleteOne implements [RemoteCollectionService].
func (r *remoteCollectionService) DeleteOne(ctx context.Context, ns models.Namespace, query models.Document) (models.RemoteDeleteResult, error) {
	args := collectionArgs(ns)
	args["query"] = query

	var result models.RemoteDeleteResult
	if err := r.functions.CallFunction(ctx, funcDeleteOne, []any{args}, &result); err != nil {
		return models.RemoteDeleteResult{}, fmt.Errorf("delete one from %s: %w", ns, err)
	}
	return result, nil
}

// ChangeEventsSince implements [RemoteCollectionService]. The returned
// documents are raw wire events; decoding and deduplication happen in
// [models.DecodeChangeEvents].
func (r *remoteCollectionService) ChangeEventsSince(ctx context.Context, ns models.Namespace, resumeToken models.Document) ([]models.Document, error) {
	args := collectionArgs(ns)
	if resumeToken != nil {
		args["since"] = resumeToken
	}

	var events []models.Document
	if err := r.functions.CallFunction(ctx, funcChangeEventsSince, []any{args}, &events); err != nil {
		return nil, fmt.Errorf("change events for %s: %w", ns, err)
	}
	return events, nil
}
