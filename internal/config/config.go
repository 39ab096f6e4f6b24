// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the docsync
// engine. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings identifying the remote app the
	// engine synchronizes against.
	App App `envPrefix:"APP_"`

	// Adapter holds configuration for the remote function-service transport.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds configuration for the local document store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background sync workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// ClientAppID identifies the remote application whose collections are
	// synchronized. It is sent with every remote function call.
	// Env: APP_CLIENT_APP_ID
	ClientAppID string `env:"CLIENT_APP_ID"`

	// Version is the semantic version string of the embedding application
	// (e.g. "1.2.3"), attached to outbound requests for diagnostics.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Adapter holds network settings for the remote function-service transport.
type Adapter struct {
	// BaseURL is the base endpoint of the remote document service
	// (e.g. "https://sync.example.com/api/client/v2.0").
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the bounded timeout applied to every outbound remote
	// call unless overridden per call (e.g. "15s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for the local persistence backend.
type Storage struct {
	// DB holds the local SQLite database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local document store.
type DB struct {
	// DSN is the SQLite database path used by the local store
	// (e.g. "./docsync.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SyncInterval defines how often the background sync job triggers a
	// sync pass in the absence of explicit triggers (e.g. "1m").
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// GetStructuredConfig loads and merges the configuration from all sources.
// Priority (later overrides earlier non-zero fields): env, flags, JSON file.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
