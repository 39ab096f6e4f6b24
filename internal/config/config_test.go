package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── env parsing ──────────────────────────────────────────────────────────────

func TestParseEnv_PopulatesStructuredConfig(t *testing.T) {
	t.Setenv("APP_CLIENT_APP_ID", "app-123")
	t.Setenv("ADAPTER_BASE_URL", "https://sync.example.com")
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "15s")
	t.Setenv("STORAGE_DB_DATABASE_URI", "/tmp/docsync.db")
	t.Setenv("WORKERS_SYNC_INTERVAL", "2m")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "app-123", cfg.App.ClientAppID)
	assert.Equal(t, "https://sync.example.com", cfg.Adapter.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/tmp/docsync.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 2*time.Minute, cfg.Workers.SyncInterval)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "not-a-duration")

	cfg := &StructuredConfig{}
	require.Error(t, parseEnv(cfg))
}

// ── json parsing ─────────────────────────────────────────────────────────────

func TestParseJSON_PopulatesStructuredConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"app": {"client_app_id": "app-json", "version": "0.3.0"},
		"adapter": {"base_url": "https://json.example.com", "request_timeout": "30s"},
		"storage": {"db": {"dsn": "./local.db"}},
		"workers": {"sync_interval": "5m"}
	}`), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "app-json", cfg.App.ClientAppID)
	assert.Equal(t, "0.3.0", cfg.App.Version)
	assert.Equal(t, "https://json.example.com", cfg.Adapter.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "./local.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 5*time.Minute, cfg.Workers.SyncInterval)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Duration
	}{
		{name: "string form", input: `"90s"`, want: 90 * time.Second},
		{name: "numeric nanoseconds", input: `60000000000`, want: time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			require.NoError(t, json.Unmarshal([]byte(tt.input), &d))
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

// ── validation ───────────────────────────────────────────────────────────────

func validClientConfig() *SyncClientConfig {
	return &SyncClientConfig{
		App:     ClientApp{ClientAppID: "app-1"},
		Adapter: ClientAdapter{BaseURL: "https://sync.example.com", RequestTimeout: 10 * time.Second},
		Storage: ClientStorage{DB: ClientDB{DSN: "./docsync.db"}},
		Workers: ClientWorkers{SyncInterval: time.Minute},
	}
}

func TestSyncClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SyncClientConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*SyncClientConfig) {}, wantErr: nil},
		{
			name:    "empty dsn",
			mutate:  func(c *SyncClientConfig) { c.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "in-memory dsn rejected",
			mutate:  func(c *SyncClientConfig) { c.Storage.DB.DSN = ":memory:" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "missing base url",
			mutate:  func(c *SyncClientConfig) { c.Adapter.BaseURL = "" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "zero request timeout",
			mutate:  func(c *SyncClientConfig) { c.Adapter.RequestTimeout = 0 },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "zero sync interval",
			mutate:  func(c *SyncClientConfig) { c.Workers.SyncInterval = 0 },
			wantErr: ErrInvalidWorkerConfigs,
		},
		{
			name:    "missing app id",
			mutate:  func(c *SyncClientConfig) { c.App.ClientAppID = "" },
			wantErr: ErrInvalidAppConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
