package service

import (
	"context"
	"sync"
	"time"

	"github.com/Acidburn0zzz/docsync/internal/logger"
)

const defaultSyncInterval = 5 * time.Minute

// SyncJob drives sync passes in the background: a ticker provides the steady
// cadence, Trigger requests an immediate pass (local write recorded,
// connectivity regained). Trigger requests arriving while a pass runs are
// coalesced by the synchronizer itself into one deferred re-run.
type SyncJob struct {
	runner   PassRunner
	interval time.Duration
	logger   *logger.Logger

	// trigger has capacity one: a request arriving while one is already
	// queued collapses into it.
	trigger chan struct{}

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncJob creates a SyncJob running passes on runner every interval. An
// interval of zero or less defaults to 5 minutes. The job is idle until
// Start is called.
func NewSyncJob(runner PassRunner, interval time.Duration, log *logger.Logger) *SyncJob {
	if interval <= 0 {
		interval = defaultSyncInterval
	}
	return &SyncJob{
		runner:   runner,
		interval: interval,
		logger:   log,
		trigger:  make(chan struct{}, 1),
	}
}

// Trigger requests a pass as soon as possible. Never blocks; requests made
// while one is already queued are dropped, because the queued pass will
// observe their writes anyway.
func (j *SyncJob) Trigger() {
	select {
	case j.trigger <- struct{}{}:
	default:
	}
}

// Start stops any previously running job, then launches the background
// goroutine. The goroutine exits when ctx is cancelled or Stop is called.
func (j *SyncJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.runPass(jobCtx)
			case <-j.trigger:
				j.runPass(jobCtx)
			}
		}
	}()
}

func (j *SyncJob) runPass(ctx context.Context) {
	result, err := j.runner.DoSyncPass(ctx)
	if err != nil {
		j.logger.Error().Err(err).Msg("sync pass aborted")
		return
	}
	if len(result.DocumentErrors) > 0 {
		j.logger.Warn().
			Int("errors", len(result.DocumentErrors)).
			Msg("sync pass finished with document errors")
	}
}

// Run implements the background worker contract: it starts the job with a
// background context and returns immediately.
func (j *SyncJob) Run() {
	j.Start(context.Background())
}

// Stop cancels the background goroutine's context and blocks until it has
// fully exited. Safe to call when the job is not running.
func (j *SyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
