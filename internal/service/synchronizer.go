package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Acidburn0zzz/docsync/internal/logger"
	"github.com/Acidburn0zzz/docsync/internal/store"
	"github.com/Acidburn0zzz/docsync/internal/utils"
	"github.com/Acidburn0zzz/docsync/models"
)

// DataSynchronizer owns the instance sync config and runs the sync pass
// protocol. One instance exists per local database; it is the only writer of
// sync metadata.
type DataSynchronizer struct {
	store  store.SyncStore
	remote RemoteCollection
	uuid   *utils.UUIDGenerator
	logger *logger.Logger

	// configMu guards the config tree. It is held for state reads and
	// mutations only, never across a remote call.
	configMu sync.Mutex
	config   *InstanceSyncConfig

	// passMu guards the pass serialization state: one pass at a time, new
	// triggers coalesce into a single deferred re-run.
	passMu      sync.Mutex
	passRunning bool
	runAgain    bool

	// onLocalWrite, when set, is invoked after every durably recorded local
	// write so the background job can request a pass.
	onLocalWrite func()
}

// NewDataSynchronizer constructs a synchronizer over the given local store
// and remote collection boundary. Call Load before the first pass to restore
// persisted sync state.
func NewDataSynchronizer(syncStore store.SyncStore, remote RemoteCollection, log *logger.Logger) *DataSynchronizer {
	return &DataSynchronizer{
		store:  syncStore,
		remote: remote,
		uuid:   utils.NewUUIDGenerator(),
		logger: log,
		config: NewInstanceSyncConfig(),
	}
}

// SetWriteNotifier registers fn to be called after every recorded local
// write. Used by the background job to trigger a pass without polling.
func (d *DataSynchronizer) SetWriteNotifier(fn func()) {
	d.configMu.Lock()
	defer d.configMu.Unlock()
	d.onLocalWrite = fn
}

func (d *DataSynchronizer) notifyLocalWrite() {
	d.configMu.Lock()
	fn := d.onLocalWrite
	d.configMu.Unlock()
	if fn != nil {
		fn()
	}
}

// Load restores the persisted instance sync config. Resolvers registered via
// ConfigureNamespace before Load are kept.
func (d *DataSynchronizer) Load(ctx context.Context) error {
	namespaceRecords, err := d.store.GetAllSyncNamespaces(ctx)
	if err != nil {
		return fmt.Errorf("load sync namespaces: %w", err)
	}
	documentRecords, err := d.store.GetAllSyncDocuments(ctx)
	if err != nil {
		return fmt.Errorf("load sync documents: %w", err)
	}

	d.configMu.Lock()
	defer d.configMu.Unlock()

	for _, record := range namespaceRecords {
		nsCfg := d.config.Namespace(record.Namespace)
		nsCfg.ResumeToken = record.ResumeToken
		nsCfg.TokenValid = record.TokenValid
	}

	for _, record := range documentRecords {
		docCfg, buildErr := DocumentConfigFromRecord(record)
		if buildErr != nil {
			return fmt.Errorf("load sync documents: %w", buildErr)
		}
		d.config.Namespace(record.Namespace).Put(docCfg)
	}

	d.logger.Debug().
		Int("namespaces", len(namespaceRecords)).
		Int("documents", len(documentRecords)).
		Msg("sync config loaded")

	return nil
}

// ConfigureNamespace implements [Synchronizer].
func (d *DataSynchronizer) ConfigureNamespace(ns models.Namespace, resolver ConflictResolver, filter EventFilter) {
	d.configMu.Lock()
	defer d.configMu.Unlock()
	d.config.Namespace(ns).SetResolver(resolver, filter)
}

// configuredNamespace returns the config for ns, requiring a registered
// resolver. Callers must hold configMu.
func (d *DataSynchronizer) configuredNamespace(ns models.Namespace) (*NamespaceSyncConfig, error) {
	nsCfg := d.config.Lookup(ns)
	if nsCfg == nil || nsCfg.Resolver() == nil {
		return nil, fmt.Errorf("%s: %w", ns, ErrNamespaceNotConfigured)
	}
	return nsCfg, nil
}

// SyncDocumentFromRemote implements [Synchronizer].
func (d *DataSynchronizer) SyncDocumentFromRemote(ctx context.Context, ns models.Namespace, id any) error {
	d.configMu.Lock()
	defer d.configMu.Unlock()

	nsCfg, err := d.configuredNamespace(ns)
	if err != nil {
		return err
	}
	if existing := nsCfg.Doc(id); existing != nil {
		return fmt.Errorf("%s: %w", ns, ErrDocumentAlreadySynced)
	}

	docCfg, err := NewCoreDocumentSyncConfig(ns, id)
	if err != nil {
		return err
	}
	docCfg.IsStale = true

	if err = d.store.UpsertSyncDocument(ctx, docCfg.ToRecord()); err != nil {
		return err
	}
	nsCfg.Put(docCfg)

	return nil
}

// DesyncDocument implements [Synchronizer].
func (d *DataSynchronizer) DesyncDocument(ctx context.Context, ns models.Namespace, id any) error {
	d.configMu.Lock()
	defer d.configMu.Unlock()

	nsCfg := d.config.Lookup(ns)
	if nsCfg == nil || nsCfg.Doc(id) == nil {
		return fmt.Errorf("%s: %w", ns, ErrDocumentNotSynced)
	}

	if err := d.store.RemoveSyncedDocument(ctx, ns, id); err != nil {
		return err
	}
	nsCfg.Remove(id)

	return nil
}

// FindOneByID implements [Synchronizer]. The embedded version field is
// stripped from the returned document.
func (d *DataSynchronizer) FindOneByID(ctx context.Context, ns models.Namespace, id any) (models.Document, error) {
	doc, err := d.store.FindOneByID(ctx, ns, id)
	if err != nil {
		return nil, err
	}
	return withoutVersion(doc), nil
}

// InsertOneAndSync implements [Synchronizer].
func (d *DataSynchronizer) InsertOneAndSync(ctx context.Context, ns models.Namespace, doc models.Document) (any, error) {
	normalized, err := models.NormalizeDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("insert into %s: %w", ns, err)
	}

	id := normalized[models.IDField]
	if id == nil {
		id = d.uuid.Generate()
		normalized[models.IDField] = id
	}

	d.configMu.Lock()
	defer d.configMu.Unlock()

	nsCfg, err := d.configuredNamespace(ns)
	if err != nil {
		return nil, err
	}
	if existing := nsCfg.Doc(id); existing != nil {
		return nil, fmt.Errorf("%s: %w", ns, ErrDocumentAlreadySynced)
	}

	stored := withVersion(normalized, nextVersion(d.uuid, nil))
	event, err := models.ChangeEventForLocalInsert(ns, stored, true)
	if err != nil {
		return nil, fmt.Errorf("insert into %s: %w", ns, err)
	}

	docCfg, err := NewCoreDocumentSyncConfig(ns, id)
	if err != nil {
		return nil, err
	}
	docCfg.HasUncommittedWrites = true
	docCfg.UncommittedEvent = &event

	if err = d.store.ApplySyncedChange(ctx, docCfg.ToRecord(), stored); err != nil {
		return nil, err
	}
	nsCfg.Put(docCfg)

	go d.notifyLocalWrite()
	return id, nil
}

// UpdateOneByID implements [Synchronizer].
func (d *DataSynchronizer) UpdateOneByID(ctx context.Context, ns models.Namespace, id any, update models.Document) error {
	normalizedUpdate, err := models.NormalizeDocument(update)
	if err != nil {
		return fmt.Errorf("update in %s: %w", ns, err)
	}

	d.configMu.Lock()
	defer d.configMu.Unlock()

	nsCfg, docCfg, before, err := d.syncedDocumentState(ctx, ns, id)
	if err != nil {
		return err
	}

	after, err := applyUpdateSpecifier(before, normalizedUpdate)
	if err != nil {
		return fmt.Errorf("update in %s: %w", ns, err)
	}

	description := models.DiffDocuments(before, after)
	if description.IsEmpty() {
		return nil
	}

	event := models.ChangeEventForLocalUpdate(ns, id, description, after, true)
	return d.recordLocalWrite(ctx, nsCfg, docCfg, event, after)
}

// ReplaceOneByID implements [Synchronizer].
func (d *DataSynchronizer) ReplaceOneByID(ctx context.Context, ns models.Namespace, id any, replacement models.Document) error {
	normalized, err := models.NormalizeDocument(replacement)
	if err != nil {
		return fmt.Errorf("replace in %s: %w", ns, err)
	}

	d.configMu.Lock()
	defer d.configMu.Unlock()

	nsCfg, docCfg, before, err := d.syncedDocumentState(ctx, ns, id)
	if err != nil {
		return err
	}

	stored := models.CloneDocument(normalized)
	stored[models.IDField] = id
	if version := versionOf(before); version != nil {
		stored[models.DocumentVersionField] = map[string]any(version)
	}

	event := models.ChangeEventForLocalReplace(ns, id, stored, true)
	return d.recordLocalWrite(ctx, nsCfg, docCfg, event, stored)
}

// DeleteOneByID implements [Synchronizer].
func (d *DataSynchronizer) DeleteOneByID(ctx context.Context, ns models.Namespace, id any) error {
	d.configMu.Lock()
	defer d.configMu.Unlock()

	nsCfg := d.config.Lookup(ns)
	if nsCfg == nil {
		return fmt.Errorf("%s: %w", ns, ErrDocumentNotSynced)
	}
	docCfg := nsCfg.Doc(id)
	if docCfg == nil {
		return fmt.Errorf("%s: %w", ns, ErrDocumentNotSynced)
	}

	// A pending insert the remote side never saw cancels out entirely.
	if docCfg.UncommittedEvent != nil && docCfg.UncommittedEvent.OperationType == models.OperationTypeInsert {
		if err := d.store.RemoveSyncedDocument(ctx, ns, id); err != nil {
			return err
		}
		nsCfg.Remove(id)
		go d.notifyLocalWrite()
		return nil
	}

	event := models.ChangeEventForLocalDelete(ns, id, true)

	updated := *docCfg
	updated.HasUncommittedWrites = true
	updated.UncommittedEvent = &event

	if err := d.store.ApplySyncedChange(ctx, updated.ToRecord(), nil); err != nil {
		return err
	}
	*docCfg = updated
	nsCfg.Put(docCfg)

	go d.notifyLocalWrite()
	return nil
}

// syncedDocumentState looks up the namespace, document config, and current
// local document for a write operation. Callers must hold configMu.
func (d *DataSynchronizer) syncedDocumentState(ctx context.Context, ns models.Namespace, id any) (*NamespaceSyncConfig, *CoreDocumentSyncConfig, models.Document, error) {
	nsCfg, err := d.configuredNamespace(ns)
	if err != nil {
		return nil, nil, nil, err
	}
	docCfg := nsCfg.Doc(id)
	if docCfg == nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", ns, ErrDocumentNotSynced)
	}

	before, err := d.store.FindOneByID(ctx, ns, id)
	if err != nil {
		if errors.Is(err, store.ErrDocumentNotFound) {
			return nil, nil, nil, fmt.Errorf("%s: %w", ns, ErrDocumentNotSynced)
		}
		return nil, nil, nil, err
	}

	return nsCfg, docCfg, before, nil
}

// recordLocalWrite durably persists a local mutation together with its sync
// record, coalescing with any prior pending event. Callers must hold
// configMu.
func (d *DataSynchronizer) recordLocalWrite(ctx context.Context, nsCfg *NamespaceSyncConfig, docCfg *CoreDocumentSyncConfig, event models.ChangeEvent, doc models.Document) error {
	coalesced := coalesceLocalEvents(docCfg.UncommittedEvent, event)

	updated := *docCfg
	updated.HasUncommittedWrites = true
	updated.UncommittedEvent = &coalesced

	if err := d.store.ApplySyncedChange(ctx, updated.ToRecord(), doc); err != nil {
		return err
	}
	*docCfg = updated
	nsCfg.Put(docCfg)

	go d.notifyLocalWrite()
	return nil
}

// coalesceLocalEvents merges consecutive local writes recorded between two
// passes. The essential case: a later update or replace of a pending insert
// must stay an insert, because the remote side has not seen the document yet.
func coalesceLocalEvents(prev *models.ChangeEvent, next models.ChangeEvent) models.ChangeEvent {
	if prev == nil || prev.OperationType != models.OperationTypeInsert {
		return next
	}

	switch next.OperationType {
	case models.OperationTypeUpdate, models.OperationTypeReplace:
		merged := *prev
		merged.FullDocument = next.FullDocument
		return merged
	default:
		return next
	}
}
