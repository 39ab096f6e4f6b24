package service

import (
	"fmt"
	"sort"

	"github.com/Acidburn0zzz/docsync/internal/store"
	"github.com/Acidburn0zzz/docsync/models"
)

// CoreDocumentSyncConfig is the in-memory per-document sync record. Its key
// is the deterministic (namespace, document id) pair; at most one config
// exists per key. All mutation goes through [NamespaceSyncConfig] so the
// pending/stale views stay consistent.
type CoreDocumentSyncConfig struct {
	Namespace  models.Namespace
	DocumentID any
	idKey      string

	// IsStale forces a full refetch of this document on the next pass,
	// bypassing incremental change events.
	IsStale bool

	// HasUncommittedWrites marks a local write not yet confirmed remotely.
	HasUncommittedWrites bool

	// LastKnownVersion is the opaque remote revision marker for
	// optimistic-concurrency conflict detection.
	LastKnownVersion models.Document

	// UncommittedEvent is the pending local change event, set only while
	// HasUncommittedWrites is true.
	UncommittedEvent *models.ChangeEvent
}

// NewCoreDocumentSyncConfig builds a clean config for the given document.
func NewCoreDocumentSyncConfig(ns models.Namespace, id any) (*CoreDocumentSyncConfig, error) {
	idKey, err := models.KeyForID(id)
	if err != nil {
		return nil, fmt.Errorf("document sync config for %s: %w", ns, err)
	}
	return &CoreDocumentSyncConfig{
		Namespace:  ns,
		DocumentID: id,
		idKey:      idKey,
	}, nil
}

// Filter returns the deterministic storage filter addressing this record.
func (c *CoreDocumentSyncConfig) Filter() models.Document {
	return models.Document{
		"namespace":  c.Namespace.String(),
		"documentId": c.DocumentID,
	}
}

// ToRecord converts the config to its persisted form.
func (c *CoreDocumentSyncConfig) ToRecord() store.SyncDocumentRecord {
	record := store.SyncDocumentRecord{
		Namespace:            c.Namespace,
		DocumentID:           c.DocumentID,
		LastKnownVersion:     c.LastKnownVersion,
		IsStale:              c.IsStale,
		HasUncommittedWrites: c.HasUncommittedWrites,
	}
	if c.UncommittedEvent != nil {
		record.UncommittedEvent = c.UncommittedEvent.ToDocument()
	}
	return record
}

// DocumentConfigFromRecord rebuilds the in-memory config from its persisted
// form, restoring the pending change event when one was recorded.
func DocumentConfigFromRecord(record store.SyncDocumentRecord) (*CoreDocumentSyncConfig, error) {
	cfg, err := NewCoreDocumentSyncConfig(record.Namespace, record.DocumentID)
	if err != nil {
		return nil, err
	}
	cfg.IsStale = record.IsStale
	cfg.HasUncommittedWrites = record.HasUncommittedWrites
	cfg.LastKnownVersion = record.LastKnownVersion

	if record.UncommittedEvent != nil {
		event, decodeErr := models.ChangeEventFromDocument(record.UncommittedEvent)
		if decodeErr != nil {
			return nil, fmt.Errorf("restore pending event for %s: %w", record.Namespace, decodeErr)
		}
		cfg.UncommittedEvent = &event
	}

	return cfg, nil
}

// NamespaceSyncConfig owns the document configs of one namespace plus its
// registered resolver, event filter, and change stream resume state. Never
// implicitly destroyed: desynchronizing the last document leaves an empty but
// present config.
type NamespaceSyncConfig struct {
	Namespace models.Namespace

	docs    map[string]*CoreDocumentSyncConfig
	pending map[string]struct{}
	stale   map[string]struct{}

	resolver ConflictResolver
	filter   EventFilter

	// ResumeToken is the last known change stream position; TokenValid is
	// cleared when a malformed event forces a full refetch.
	ResumeToken models.Document
	TokenValid  bool
}

// NewNamespaceSyncConfig builds an empty config for ns.
func NewNamespaceSyncConfig(ns models.Namespace) *NamespaceSyncConfig {
	return &NamespaceSyncConfig{
		Namespace: ns,
		docs:      make(map[string]*CoreDocumentSyncConfig),
		pending:   make(map[string]struct{}),
		stale:     make(map[string]struct{}),
	}
}

// SetResolver registers the conflict resolver and event filter.
func (n *NamespaceSyncConfig) SetResolver(resolver ConflictResolver, filter EventFilter) {
	n.resolver = resolver
	n.filter = filter
}

// Resolver returns the registered conflict resolver, or nil.
func (n *NamespaceSyncConfig) Resolver() ConflictResolver { return n.resolver }

// AcceptsEvent applies the registered event filter; a nil filter keeps
// every event.
func (n *NamespaceSyncConfig) AcceptsEvent(event models.ChangeEvent) bool {
	if n.filter == nil {
		return true
	}
	return n.filter(event)
}

// Doc returns the config for the given document id, or nil.
func (n *NamespaceSyncConfig) Doc(id any) *CoreDocumentSyncConfig {
	idKey, err := models.KeyForID(id)
	if err != nil {
		return nil
	}
	return n.docs[idKey]
}

// Put inserts or refreshes cfg and reindexes the pending/stale views.
func (n *NamespaceSyncConfig) Put(cfg *CoreDocumentSyncConfig) {
	n.docs[cfg.idKey] = cfg
	n.reindex(cfg)
}

// Remove drops the config for the given document id.
func (n *NamespaceSyncConfig) Remove(id any) {
	idKey, err := models.KeyForID(id)
	if err != nil {
		return
	}
	delete(n.docs, idKey)
	delete(n.pending, idKey)
	delete(n.stale, idKey)
}

// reindex updates the precomputed views after cfg's flags changed.
func (n *NamespaceSyncConfig) reindex(cfg *CoreDocumentSyncConfig) {
	if cfg.HasUncommittedWrites {
		n.pending[cfg.idKey] = struct{}{}
	} else {
		delete(n.pending, cfg.idKey)
	}
	if cfg.IsStale {
		n.stale[cfg.idKey] = struct{}{}
	} else {
		delete(n.stale, cfg.idKey)
	}
}

// Docs returns every document config, ordered by id key so pass processing is
// reproducible.
func (n *NamespaceSyncConfig) Docs() []*CoreDocumentSyncConfig {
	return n.collect(nil)
}

// PendingWrites returns the configs with an uncommitted local write.
func (n *NamespaceSyncConfig) PendingWrites() []*CoreDocumentSyncConfig {
	return n.collect(n.pending)
}

// StaleDocuments returns the configs marked for a full refetch.
func (n *NamespaceSyncConfig) StaleDocuments() []*CoreDocumentSyncConfig {
	return n.collect(n.stale)
}

// HasPendingWrites reports whether any document has an uncommitted write.
func (n *NamespaceSyncConfig) HasPendingWrites() bool { return len(n.pending) > 0 }

// HasStaleDocuments reports whether any document is marked stale.
func (n *NamespaceSyncConfig) HasStaleDocuments() bool { return len(n.stale) > 0 }

func (n *NamespaceSyncConfig) collect(keys map[string]struct{}) []*CoreDocumentSyncConfig {
	ordered := make([]string, 0, len(n.docs))
	if keys == nil {
		for idKey := range n.docs {
			ordered = append(ordered, idKey)
		}
	} else {
		for idKey := range keys {
			ordered = append(ordered, idKey)
		}
	}
	sort.Strings(ordered)

	configs := make([]*CoreDocumentSyncConfig, 0, len(ordered))
	for _, idKey := range ordered {
		if cfg, ok := n.docs[idKey]; ok {
			configs = append(configs, cfg)
		}
	}
	return configs
}

// ToRecord converts the namespace-level state to its persisted form.
func (n *NamespaceSyncConfig) ToRecord() store.SyncNamespaceRecord {
	return store.SyncNamespaceRecord{
		Namespace:   n.Namespace,
		ResumeToken: n.ResumeToken,
		TokenValid:  n.TokenValid,
	}
}

// InstanceSyncConfig is the aggregate root: every namespace config of one
// local database instance. It is exclusively owned by the synchronizer, which
// guards access with its own mutex.
type InstanceSyncConfig struct {
	namespaces map[string]*NamespaceSyncConfig
}

// NewInstanceSyncConfig builds an empty instance config.
func NewInstanceSyncConfig() *InstanceSyncConfig {
	return &InstanceSyncConfig{namespaces: make(map[string]*NamespaceSyncConfig)}
}

// Namespace returns the config for ns, creating an empty one on first use.
func (i *InstanceSyncConfig) Namespace(ns models.Namespace) *NamespaceSyncConfig {
	key := ns.String()
	if cfg, ok := i.namespaces[key]; ok {
		return cfg
	}
	cfg := NewNamespaceSyncConfig(ns)
	i.namespaces[key] = cfg
	return cfg
}

// Lookup returns the config for ns without creating one.
func (i *InstanceSyncConfig) Lookup(ns models.Namespace) *NamespaceSyncConfig {
	return i.namespaces[ns.String()]
}

// AllNamespaces returns every namespace config, ordered by namespace name.
func (i *InstanceSyncConfig) AllNamespaces() []*NamespaceSyncConfig {
	keys := make([]string, 0, len(i.namespaces))
	for key := range i.namespaces {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	configs := make([]*NamespaceSyncConfig, 0, len(keys))
	for _, key := range keys {
		configs = append(configs, i.namespaces[key])
	}
	return configs
}

// NamespacesWithPendingWrites returns the namespaces with at least one
// pending write, the precomputed view the pass scans first.
func (i *InstanceSyncConfig) NamespacesWithPendingWrites() []*NamespaceSyncConfig {
	return i.filterNamespaces((*NamespaceSyncConfig).HasPendingWrites)
}

// NamespacesWithStaleDocuments returns the namespaces with at least one
// stale document.
func (i *InstanceSyncConfig) NamespacesWithStaleDocuments() []*NamespaceSyncConfig {
	return i.filterNamespaces((*NamespaceSyncConfig).HasStaleDocuments)
}

func (i *InstanceSyncConfig) filterNamespaces(keep func(*NamespaceSyncConfig) bool) []*NamespaceSyncConfig {
	configs := make([]*NamespaceSyncConfig, 0, len(i.namespaces))
	for _, cfg := range i.AllNamespaces() {
		if keep(cfg) {
			configs = append(configs, cfg)
		}
	}
	return configs
}
