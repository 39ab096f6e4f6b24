package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Acidburn0zzz/docsync/internal/adapter"
	"github.com/Acidburn0zzz/docsync/models"
)

// DocumentError is a per-document failure isolated inside a pass: a
// transient push failure or a resolver failure. It never aborts the pass.
type DocumentError struct {
	Namespace  models.Namespace
	DocumentID any
	Err        error
}

func (e DocumentError) Error() string {
	return fmt.Sprintf("%s %v: %v", e.Namespace, e.DocumentID, e.Err)
}

func (e DocumentError) Unwrap() error { return e.Err }

// SyncPassResult summarizes one reconciliation pass.
type SyncPassResult struct {
	// Ran is false when the call coalesced into an already running pass.
	Ran bool

	PushedWrites  int
	AppliedEvents int
	Conflicts     int

	// DocumentErrors collects the per-document failures the pass isolated
	// and will retry or surface. Pass-fatal storage errors are returned as
	// the error value instead.
	DocumentErrors []DocumentError
}

// DoSyncPass implements [Synchronizer]. Passes are serialized per instance:
// a trigger arriving while a pass runs sets a single deferred re-run flag
// instead of starting a concurrent pass.
func (d *DataSynchronizer) DoSyncPass(ctx context.Context) (SyncPassResult, error) {
	d.passMu.Lock()
	if d.passRunning {
		d.runAgain = true
		d.passMu.Unlock()
		return SyncPassResult{}, nil
	}
	d.passRunning = true
	d.passMu.Unlock()

	defer func() {
		d.passMu.Lock()
		d.passRunning = false
		d.passMu.Unlock()
	}()

	for {
		result, err := d.runPass(ctx)

		d.passMu.Lock()
		again := d.runAgain
		d.runAgain = false
		d.passMu.Unlock()

		if again && err == nil && ctx.Err() == nil {
			continue
		}
		return result, err
	}
}

// runPass executes one complete pass in three phases: local-to-remote for
// the namespaces with pending writes, remote-to-local for every synchronized
// namespace, then an authoritative refetch for the namespaces left with
// stale documents. The first and last phases scan the precomputed views, not
// the whole config tree. Only local storage failures abort the pass.
func (d *DataSynchronizer) runPass(ctx context.Context) (SyncPassResult, error) {
	result := SyncPassResult{Ran: true}

	d.configMu.Lock()
	pending := d.config.NamespacesWithPendingWrites()
	d.configMu.Unlock()

	for _, nsCfg := range pending {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if err := d.syncLocalToRemote(ctx, nsCfg, &result); err != nil {
			return result, err
		}
	}

	d.configMu.Lock()
	namespaces := d.config.AllNamespaces()
	d.configMu.Unlock()

	for _, nsCfg := range namespaces {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if err := d.syncRemoteToLocal(ctx, nsCfg, &result); err != nil {
			return result, err
		}
	}

	d.configMu.Lock()
	stale := d.config.NamespacesWithStaleDocuments()
	d.configMu.Unlock()

	for _, nsCfg := range stale {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if err := d.refetchStaleDocuments(ctx, nsCfg, &result); err != nil {
			return result, err
		}
	}

	d.logger.Debug().
		Int("pushed", result.PushedWrites).
		Int("applied", result.AppliedEvents).
		Int("conflicts", result.Conflicts).
		Int("errors", len(result.DocumentErrors)).
		Msg("sync pass finished")

	return result, nil
}

// ── local-to-remote phase ────────────────────────────────────────────────────

func (d *DataSynchronizer) syncLocalToRemote(ctx context.Context, nsCfg *NamespaceSyncConfig, result *SyncPassResult) error {
	d.configMu.Lock()
	pending := nsCfg.PendingWrites()
	d.configMu.Unlock()

	for _, docCfg := range pending {
		d.configMu.Lock()
		pushed := docCfg.UncommittedEvent
		if !docCfg.HasUncommittedWrites || pushed == nil {
			d.configMu.Unlock()
			continue
		}
		event := *pushed
		version := models.CloneDocument(docCfg.LastKnownVersion)
		d.configMu.Unlock()

		if err := d.pushPendingWrite(ctx, nsCfg, docCfg, pushed, event, version, result); err != nil {
			return err
		}
	}

	return nil
}

// pushPendingWrite sends one pending local write as a conditioned remote
// write. pushed is the event pointer snapshot taken under configMu, so the
// acknowledgment can tell whether a newer local write landed mid-push.
// Transient failures leave the write pending for the next pass; revision
// mismatches route to conflict resolution. Returns only pass-fatal errors.
func (d *DataSynchronizer) pushPendingWrite(ctx context.Context, nsCfg *NamespaceSyncConfig, docCfg *CoreDocumentSyncConfig, pushed *models.ChangeEvent, event models.ChangeEvent, version models.Document, result *SyncPassResult) error {
	ns := docCfg.Namespace
	id := docCfg.DocumentID

	var remoteErr error
	conflict := false

	switch event.OperationType {
	case models.OperationTypeInsert:
		_, remoteErr = d.remote.InsertOne(ctx, ns, event.FullDocument)
		conflict = errors.Is(remoteErr, adapter.ErrVersionConflict)

	case models.OperationTypeUpdate, models.OperationTypeReplace:
		newVersion := nextVersion(d.uuid, version)
		query := versionConditionedQuery(id, version)
		update := withVersion(event.FullDocument, newVersion)

		var res models.RemoteUpdateResult
		res, remoteErr = d.remote.UpdateOne(ctx, ns, query, update, false)
		conflict = errors.Is(remoteErr, adapter.ErrVersionConflict) ||
			(remoteErr == nil && res.MatchedCount == 0)
		if remoteErr == nil && !conflict {
			return d.acknowledgeWrite(ctx, nsCfg, docCfg, pushed, update, newVersion, result)
		}

	case models.OperationTypeDelete:
		var res models.RemoteDeleteResult
		res, remoteErr = d.remote.DeleteOne(ctx, ns, versionConditionedQuery(id, version))
		conflict = errors.Is(remoteErr, adapter.ErrVersionConflict) ||
			(remoteErr == nil && res.DeletedCount == 0 && version != nil)
		if remoteErr == nil && !conflict {
			return d.finishRemoteDelete(ctx, nsCfg, docCfg, result)
		}

	default:
		// An unknown pending operation cannot be replayed; refetch instead.
		return d.markDocumentStale(ctx, nsCfg, docCfg, result,
			fmt.Errorf("pending event with operation %q", event.OperationType))
	}

	switch {
	case conflict:
		return d.handlePushConflict(ctx, nsCfg, docCfg, event, result)
	case remoteErr != nil:
		// Transient or otherwise: the write stays pending for the next pass.
		result.DocumentErrors = append(result.DocumentErrors, DocumentError{
			Namespace: ns, DocumentID: id, Err: remoteErr,
		})
		return nil
	default:
		// Insert succeeded: the version travelled inside the document.
		return d.acknowledgeWrite(ctx, nsCfg, docCfg, pushed, event.FullDocument, versionOf(event.FullDocument), result)
	}
}

// acknowledgeWrite records the outcome of a confirmed remote write. On the
// common path it clears the pending flag and stores the acknowledged document
// state and revision marker durably. A local write recorded while the push
// was in flight is preserved: only the revision marker advances, the local
// body keeps its newer state, and the fresh event stays pending for the next
// pass.
func (d *DataSynchronizer) acknowledgeWrite(ctx context.Context, nsCfg *NamespaceSyncConfig, docCfg *CoreDocumentSyncConfig, pushed *models.ChangeEvent, doc, version models.Document, result *SyncPassResult) error {
	d.configMu.Lock()
	defer d.configMu.Unlock()

	ns := docCfg.Namespace
	id := docCfg.DocumentID

	if nsCfg.Doc(id) == nil {
		// A concurrent delete canceled what it saw as an unpushed insert and
		// ended sync control, but the push had already landed. Queue a
		// conditioned delete so the remote copy does not outlive the local
		// one.
		event := models.ChangeEventForLocalDelete(ns, id, true)

		updated := *docCfg
		updated.IsStale = false
		updated.HasUncommittedWrites = true
		updated.UncommittedEvent = &event
		updated.LastKnownVersion = version

		if err := d.store.UpsertSyncDocument(ctx, updated.ToRecord()); err != nil {
			return err
		}
		*docCfg = updated
		nsCfg.Put(docCfg)

		result.PushedWrites++
		return nil
	}

	if docCfg.UncommittedEvent != pushed {
		updated := *docCfg
		updated.LastKnownVersion = version

		if current := updated.UncommittedEvent; current != nil && current.OperationType == models.OperationTypeInsert {
			// The remote side has the document now; replay the coalesced
			// follow-up as a replace, not a second insert.
			replay := models.ChangeEventForLocalReplace(ns, id, current.FullDocument, true)
			updated.UncommittedEvent = &replay
		}

		if err := d.store.UpsertSyncDocument(ctx, updated.ToRecord()); err != nil {
			return err
		}
		*docCfg = updated
		nsCfg.Put(docCfg)

		result.PushedWrites++
		return nil
	}

	updated := *docCfg
	updated.HasUncommittedWrites = false
	updated.UncommittedEvent = nil
	updated.LastKnownVersion = version

	if err := d.store.ApplySyncedChange(ctx, updated.ToRecord(), doc); err != nil {
		return err
	}
	*docCfg = updated
	nsCfg.Put(docCfg)

	result.PushedWrites++
	return nil
}

// finishRemoteDelete removes the document from sync control after its remote
// delete was confirmed (or was unnecessary because the remote side never had
// the document).
func (d *DataSynchronizer) finishRemoteDelete(ctx context.Context, nsCfg *NamespaceSyncConfig, docCfg *CoreDocumentSyncConfig, result *SyncPassResult) error {
	d.configMu.Lock()
	defer d.configMu.Unlock()

	if err := d.store.RemoveSyncedDocument(ctx, docCfg.Namespace, docCfg.DocumentID); err != nil {
		return err
	}
	nsCfg.Remove(docCfg.DocumentID)

	result.PushedWrites++
	return nil
}

// handlePushConflict fetches the remote side's authoritative state for a
// document whose conditioned write failed, synthesizes the remote change
// event, and routes to conflict resolution.
func (d *DataSynchronizer) handlePushConflict(ctx context.Context, nsCfg *NamespaceSyncConfig, docCfg *CoreDocumentSyncConfig, localEvent models.ChangeEvent, result *SyncPassResult) error {
	ns := docCfg.Namespace
	id := docCfg.DocumentID

	remoteDoc, err := d.remote.FindOne(ctx, ns, models.DocumentKeyForID(id))
	if err != nil {
		result.DocumentErrors = append(result.DocumentErrors, DocumentError{
			Namespace: ns, DocumentID: id, Err: err,
		})
		return nil
	}

	var remoteEvent models.ChangeEvent
	if remoteDoc == nil {
		remoteEvent = models.ChangeEventForLocalDelete(ns, id, false)
	} else {
		remoteEvent = models.ChangeEventForLocalReplace(ns, id, remoteDoc, false)
	}

	return d.resolveConflict(ctx, nsCfg, docCfg, localEvent, remoteEvent, result)
}

// ── remote-to-local phase ────────────────────────────────────────────────────

func (d *DataSynchronizer) syncRemoteToLocal(ctx context.Context, nsCfg *NamespaceSyncConfig, result *SyncPassResult) error {
	ns := nsCfg.Namespace

	d.configMu.Lock()
	tracked := len(nsCfg.docs) > 0
	tokenValid := nsCfg.TokenValid
	token := models.CloneDocument(nsCfg.ResumeToken)
	d.configMu.Unlock()

	if !tracked {
		return nil
	}

	var since models.Document
	if tokenValid {
		since = token
	}

	raw, err := d.remote.ChangeEventsSince(ctx, ns, since)
	if err != nil {
		result.DocumentErrors = append(result.DocumentErrors, DocumentError{
			Namespace: ns, Err: err,
		})
		return nil
	}

	events, lastID, malformed := decodeRemoteEvents(raw)

	if malformed {
		if err = d.invalidateResumeToken(ctx, nsCfg); err != nil {
			return err
		}
	} else if len(raw) > 0 || !tokenValid {
		if err = d.advanceResumeToken(ctx, nsCfg, lastID); err != nil {
			return err
		}
	}

	for _, event := range events {
		d.configMu.Lock()
		accepted := nsCfg.AcceptsEvent(event)
		d.configMu.Unlock()
		if !accepted {
			continue
		}

		id, idErr := event.DocumentID()
		if idErr != nil {
			if err = d.invalidateResumeToken(ctx, nsCfg); err != nil {
				return err
			}
			continue
		}

		d.configMu.Lock()
		docCfg := nsCfg.Doc(id)
		var pendingEvent *models.ChangeEvent
		if docCfg != nil && docCfg.HasUncommittedWrites {
			pendingEvent = docCfg.UncommittedEvent
		}
		d.configMu.Unlock()

		if docCfg == nil {
			continue
		}

		if pendingEvent != nil {
			if err = d.resolveConflict(ctx, nsCfg, docCfg, *pendingEvent, event, result); err != nil {
				return err
			}
			continue
		}

		if err = d.applyRemoteEvent(ctx, nsCfg, docCfg, event, result); err != nil {
			return err
		}
	}

	return nil
}

// decodeRemoteEvents decodes a raw event batch through the lenient models
// decoder and extracts the resume marker of the batch's final event. The
// marker is only meaningful while the whole batch was well formed; a
// malformed batch invalidates the token anyway.
func decodeRemoteEvents(raw []models.Document) (events []models.ChangeEvent, lastID models.Document, malformed bool) {
	events, malformed = models.DecodeChangeEvents(raw)
	if malformed || len(raw) == 0 {
		return events, nil, malformed
	}

	if id, ok := raw[len(raw)-1]["_id"].(map[string]any); ok {
		lastID = id
	}
	return events, lastID, false
}

// invalidateResumeToken marks the namespace's resume marker unusable and
// every tracked document stale, forcing a full refetch instead of silently
// missing a change.
func (d *DataSynchronizer) invalidateResumeToken(ctx context.Context, nsCfg *NamespaceSyncConfig) error {
	d.configMu.Lock()
	defer d.configMu.Unlock()

	nsCfg.TokenValid = false
	nsCfg.ResumeToken = nil
	if err := d.store.UpsertSyncNamespace(ctx, nsCfg.ToRecord()); err != nil {
		return err
	}

	for _, docCfg := range nsCfg.Docs() {
		if docCfg.IsStale {
			continue
		}
		docCfg.IsStale = true
		if err := d.store.UpsertSyncDocument(ctx, docCfg.ToRecord()); err != nil {
			return err
		}
		nsCfg.Put(docCfg)
	}

	d.logger.Warn().
		Str("namespace", nsCfg.Namespace.String()).
		Msg("resume token invalidated, full refetch scheduled")

	return nil
}

// advanceResumeToken durably records the new change stream position.
func (d *DataSynchronizer) advanceResumeToken(ctx context.Context, nsCfg *NamespaceSyncConfig, lastID models.Document) error {
	d.configMu.Lock()
	defer d.configMu.Unlock()

	if lastID != nil {
		nsCfg.ResumeToken = lastID
	}
	nsCfg.TokenValid = true

	return d.store.UpsertSyncNamespace(ctx, nsCfg.ToRecord())
}

// applyRemoteEvent applies one remote change to the local mirror of a
// document with no pending local write.
func (d *DataSynchronizer) applyRemoteEvent(ctx context.Context, nsCfg *NamespaceSyncConfig, docCfg *CoreDocumentSyncConfig, event models.ChangeEvent, result *SyncPassResult) error {
	switch event.OperationType {
	case models.OperationTypeInsert, models.OperationTypeReplace, models.OperationTypeUpdate:
		if event.FullDocument == nil {
			// An incremental event without a post-image cannot be applied
			// exactly; fall back to an authoritative refetch.
			return d.markDocumentStale(ctx, nsCfg, docCfg, result,
				errors.New("remote event without full document"))
		}

		d.configMu.Lock()
		defer d.configMu.Unlock()

		updated := *docCfg
		updated.IsStale = false
		updated.LastKnownVersion = versionOf(event.FullDocument)

		if err := d.store.ApplySyncedChange(ctx, updated.ToRecord(), event.FullDocument); err != nil {
			return err
		}
		*docCfg = updated
		nsCfg.Put(docCfg)

		result.AppliedEvents++
		return nil

	case models.OperationTypeDelete:
		d.configMu.Lock()
		defer d.configMu.Unlock()

		if err := d.store.RemoveSyncedDocument(ctx, docCfg.Namespace, docCfg.DocumentID); err != nil {
			return err
		}
		nsCfg.Remove(docCfg.DocumentID)

		result.AppliedEvents++
		return nil

	default:
		return d.markDocumentStale(ctx, nsCfg, docCfg, result,
			fmt.Errorf("remote event with operation %q", event.OperationType))
	}
}

// refetchStaleDocuments replaces each stale document's local mirror with its
// authoritative remote state. Documents with pending writes are left to the
// conflict path.
func (d *DataSynchronizer) refetchStaleDocuments(ctx context.Context, nsCfg *NamespaceSyncConfig, result *SyncPassResult) error {
	d.configMu.Lock()
	stale := nsCfg.StaleDocuments()
	d.configMu.Unlock()

	for _, docCfg := range stale {
		d.configMu.Lock()
		skip := !docCfg.IsStale || docCfg.HasUncommittedWrites
		d.configMu.Unlock()
		if skip {
			continue
		}

		remoteDoc, err := d.remote.FindOne(ctx, docCfg.Namespace, models.DocumentKeyForID(docCfg.DocumentID))
		if err != nil {
			result.DocumentErrors = append(result.DocumentErrors, DocumentError{
				Namespace: docCfg.Namespace, DocumentID: docCfg.DocumentID, Err: err,
			})
			continue
		}

		d.configMu.Lock()
		if remoteDoc == nil {
			// The remote side no longer has the document.
			if err = d.store.RemoveSyncedDocument(ctx, docCfg.Namespace, docCfg.DocumentID); err != nil {
				d.configMu.Unlock()
				return err
			}
			nsCfg.Remove(docCfg.DocumentID)
			d.configMu.Unlock()
			result.AppliedEvents++
			continue
		}

		updated := *docCfg
		updated.IsStale = false
		updated.LastKnownVersion = versionOf(remoteDoc)

		if err = d.store.ApplySyncedChange(ctx, updated.ToRecord(), remoteDoc); err != nil {
			d.configMu.Unlock()
			return err
		}
		*docCfg = updated
		nsCfg.Put(docCfg)
		d.configMu.Unlock()

		result.AppliedEvents++
	}

	return nil
}

// ── conflict path ────────────────────────────────────────────────────────────

// resolveConflict invokes the namespace's registered resolver with the local
// pending event and the remote event. A merged document is written locally
// and queued for the next pass; a nil document deletes on both sides. A
// resolver failure or invalid result marks the document stale and surfaces
// the conflict without touching local state.
func (d *DataSynchronizer) resolveConflict(ctx context.Context, nsCfg *NamespaceSyncConfig, docCfg *CoreDocumentSyncConfig, localEvent, remoteEvent models.ChangeEvent, result *SyncPassResult) error {
	ns := docCfg.Namespace
	id := docCfg.DocumentID

	d.configMu.Lock()
	resolver := nsCfg.Resolver()
	d.configMu.Unlock()

	if resolver == nil {
		return d.markDocumentStale(ctx, nsCfg, docCfg, result, ErrNamespaceNotConfigured)
	}

	resolved, err := resolver.Resolve(id, localEvent, remoteEvent)
	if err != nil {
		return d.markDocumentStale(ctx, nsCfg, docCfg, result,
			fmt.Errorf("%w: %w", ErrResolverFailed, err))
	}

	remoteVersion := versionOf(remoteEvent.FullDocument)

	if resolved == nil {
		return d.applyDeleteResolution(ctx, nsCfg, docCfg, remoteEvent, remoteVersion, result)
	}

	resolvedID, hasID := resolved[models.IDField]
	if !hasID || !models.ValuesEqual(resolvedID, id) {
		return d.markDocumentStale(ctx, nsCfg, docCfg, result, ErrInvalidResolution)
	}

	normalized, err := models.NormalizeDocument(resolved)
	if err != nil {
		return d.markDocumentStale(ctx, nsCfg, docCfg, result,
			fmt.Errorf("%w: %w", ErrInvalidResolution, err))
	}

	stored := withoutVersion(normalized)
	if remoteVersion != nil {
		stored[models.DocumentVersionField] = map[string]any(remoteVersion)
	}

	event := models.ChangeEventForLocalReplace(ns, id, stored, true)

	d.configMu.Lock()
	defer d.configMu.Unlock()

	updated := *docCfg
	updated.IsStale = false
	updated.HasUncommittedWrites = true
	updated.UncommittedEvent = &event
	updated.LastKnownVersion = remoteVersion

	if err = d.store.ApplySyncedChange(ctx, updated.ToRecord(), stored); err != nil {
		return err
	}
	*docCfg = updated
	nsCfg.Put(docCfg)

	result.Conflicts++
	return nil
}

// applyDeleteResolution carries out a resolver's decision to delete the
// document. When the remote side already deleted it, sync control ends
// immediately; otherwise a conditioned remote delete is queued for the next
// pass.
func (d *DataSynchronizer) applyDeleteResolution(ctx context.Context, nsCfg *NamespaceSyncConfig, docCfg *CoreDocumentSyncConfig, remoteEvent models.ChangeEvent, remoteVersion models.Document, result *SyncPassResult) error {
	ns := docCfg.Namespace
	id := docCfg.DocumentID

	d.configMu.Lock()
	defer d.configMu.Unlock()

	if remoteEvent.OperationType == models.OperationTypeDelete {
		if err := d.store.RemoveSyncedDocument(ctx, ns, id); err != nil {
			return err
		}
		nsCfg.Remove(id)
		result.Conflicts++
		return nil
	}

	event := models.ChangeEventForLocalDelete(ns, id, true)

	updated := *docCfg
	updated.IsStale = false
	updated.HasUncommittedWrites = true
	updated.UncommittedEvent = &event
	updated.LastKnownVersion = remoteVersion

	if err := d.store.ApplySyncedChange(ctx, updated.ToRecord(), nil); err != nil {
		return err
	}
	*docCfg = updated
	nsCfg.Put(docCfg)

	result.Conflicts++
	return nil
}

// markDocumentStale records a surfaced per-document failure and schedules an
// authoritative refetch, leaving any pending write in place.
func (d *DataSynchronizer) markDocumentStale(ctx context.Context, nsCfg *NamespaceSyncConfig, docCfg *CoreDocumentSyncConfig, result *SyncPassResult, cause error) error {
	d.configMu.Lock()
	defer d.configMu.Unlock()

	updated := *docCfg
	updated.IsStale = true

	if err := d.store.UpsertSyncDocument(ctx, updated.ToRecord()); err != nil {
		return err
	}
	*docCfg = updated
	nsCfg.Put(docCfg)

	result.DocumentErrors = append(result.DocumentErrors, DocumentError{
		Namespace: docCfg.Namespace, DocumentID: docCfg.DocumentID, Err: cause,
	})
	return nil
}
