// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Acidburn0zzz/docsync/internal/adapter"
	"github.com/Acidburn0zzz/docsync/internal/config"
	"github.com/Acidburn0zzz/docsync/internal/logger"
	"github.com/Acidburn0zzz/docsync/internal/service"
	"github.com/Acidburn0zzz/docsync/internal/store"
	"github.com/Acidburn0zzz/docsync/internal/workers"
)

// authTokenEnv names the environment variable the default token source reads
// its bearer token from.
const authTokenEnv = "DOCSYNC_AUTH_TOKEN"

// ErrNoAuthToken is returned by the environment token source when no bearer
// token is available.
var ErrNoAuthToken = errors.New("no auth token configured")

// envTokenSource serves the bearer token from the process environment. It is
// the default stand-in for a real authentication collaborator.
type envTokenSource struct{}

// EnvTokenSource returns a TokenSource reading DOCSYNC_AUTH_TOKEN.
func EnvTokenSource() adapter.TokenSource {
	return envTokenSource{}
}

func (envTokenSource) RefreshToken(context.Context) (string, error) {
	token := os.Getenv(authTokenEnv)
	if token == "" {
		return "", fmt.Errorf("%w: set %s", ErrNoAuthToken, authTokenEnv)
	}
	return token, nil
}

// App is the sync client runtime: a loaded configuration, an open local
// store, a connected remote adapter, and the synchronizer with its background
// job.
type App struct {
	cfg    *config.SyncClientConfig
	logger *logger.Logger

	db           *store.DB
	synchronizer *service.DataSynchronizer
	job          *service.SyncJob
	workers      *workers.Workers
}

// NewApp loads the configuration and assembles the full sync client: local
// store (migrated), remote adapter, synchronizer with restored sync state,
// and the background sync job. The job is not started until Run.
func NewApp(tokens adapter.TokenSource, log *logger.Logger) (*App, error) {
	cfg, err := config.GetSyncClientConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	ctx := context.Background()

	db, err := store.NewConnectSQLite(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, fmt.Errorf("open local store: %w", err)
	}
	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate local store: %w", err)
	}

	functions, err := adapter.NewHTTPFunctionService(cfg.Adapter, cfg.App, tokens, log)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create remote adapter: %w", err)
	}
	remote := adapter.NewRemoteCollectionService(functions)

	synchronizer := service.NewDataSynchronizer(store.NewSyncStore(db, log), remote, log)
	if err = synchronizer.Load(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("restore sync state: %w", err)
	}

	job := service.NewSyncJob(synchronizer, cfg.Workers.SyncInterval, log)
	synchronizer.SetWriteNotifier(job.Trigger)

	return &App{
		cfg:          cfg,
		logger:       log,
		db:           db,
		synchronizer: synchronizer,
		job:          job,
		workers:      workers.NewWorkers(job),
	}, nil
}

// Synchronizer exposes the engine so the embedding application can configure
// namespaces and issue synchronized writes.
func (a *App) Synchronizer() service.Synchronizer {
	return a.synchronizer
}

// Run starts the background workers and blocks until the process receives an
// interrupt or termination signal, then shuts down cleanly.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a.workers.Run()
	a.job.Trigger()

	a.logger.Info().
		Str("app", a.cfg.App.ClientAppID).
		Str("remote", a.cfg.Adapter.BaseURL).
		Msg("sync client started")

	<-ctx.Done()

	a.job.Stop()
	if err := a.db.Close(); err != nil {
		return fmt.Errorf("close local store: %w", err)
	}

	a.logger.Info().Msg("sync client stopped")
	return nil
}
