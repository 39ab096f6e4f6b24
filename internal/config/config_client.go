package config

import (
	"fmt"
	"time"
)

// ClientApp holds application identity settings used by the sync client.
type ClientApp struct {
	// ClientAppID identifies the remote application whose collections are
	// synchronized.
	ClientAppID string
	// Version is the embedding application's version string.
	Version string
}

// ClientAdapter holds network settings used by the remote transport layer.
type ClientAdapter struct {
	// BaseURL is the remote document service endpoint.
	BaseURL string
	// RequestTimeout is the default timeout for outbound remote calls.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings.
type ClientDB struct {
	// DSN is the SQLite database path used by the local store.
	DSN string
}

// ClientStorage groups local storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the background sync job runs a pass.
	SyncInterval time.Duration
}

// SyncClientConfig is the top-level sync client configuration assembled from
// [StructuredConfig]. It is immutable after construction and validated before
// being handed to the engine.
type SyncClientConfig struct {
	// App contains application identity settings.
	App ClientApp
	// Adapter contains remote transport settings.
	Adapter ClientAdapter
	// Storage contains local storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetSyncClientConfig builds and validates the sync client config from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps the fields
// relevant to the sync client, and validates the resulting
// [SyncClientConfig], failing fast on missing required fields.
func GetSyncClientConfig() (*SyncClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &SyncClientConfig{
		App: ClientApp{
			ClientAppID: cfg.App.ClientAppID,
			Version:     cfg.App.Version,
		},
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.BaseURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{SyncInterval: cfg.Workers.SyncInterval},
	}

	return clientCfg, clientCfg.validate()
}
