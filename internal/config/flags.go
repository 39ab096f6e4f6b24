package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a remote service base URL
//	-d local database path
//	-app-id remote application identifier
//	-request-timeout remote request timeout (e.g., "30s", "1m")
//	-sync-interval background sync interval (e.g., "1m", "5m")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var baseURL string
	var databaseDSN string
	var clientAppID string
	var requestTimeout time.Duration
	var syncInterval time.Duration
	var jsonConfigPath string

	flag.StringVar(&baseURL, "a", "", "Remote service base URL")
	flag.StringVar(&databaseDSN, "d", "", "Local database path")
	flag.StringVar(&clientAppID, "app-id", "", "Remote application ID")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Remote request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Background sync interval (e.g., 1m, 5m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			ClientAppID: clientAppID,
		},
		Adapter: Adapter{
			BaseURL:        baseURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Workers:      Workers{SyncInterval: syncInterval},
		JSONFilePath: jsonConfigPath,
	}
}
