package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-test-prep/internal/logger"
)

const defaultSyncInterval = 5 * time.Minute

// profileSyncer is the part of ClientProfileService the job drives.
type profileSyncer interface {
	Sync(ctx context.Context) error
}

type clientSyncJob struct {
	profile  profileSyncer
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientSyncJob creates a clientSyncJob that calls profile.Sync on a
// ticker. If interval is zero or negative it defaults to 5 minutes. The job
// is idle until Start is called.
func NewClientSyncJob(profile profileSyncer, interval time.Duration, log *logger.Logger) ClientSyncJob {
	if interval <= 0 {
		interval = defaultSyncInterval
	}
	return &clientSyncJob{profile: profile, interval: interval, logger: log}
}

// Start implements workers.Worker. It stops any previously running job, then
// launches a background goroutine that syncs every interval. The goroutine
// exits when ctx is cancelled or Stop is called.
func (j *clientSyncJob) Start(ctx context.Context) {
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
				j.runOnce(jobCtx)
			}
		}
	}()
}

// Stop implements workers.Worker. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running.
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *clientSyncJob) runOnce(ctx context.Context) {
	err := j.profile.Sync(ctx)
	switch {
	case err == nil, errors.Is(err, ErrNotAuthenticated), errors.Is(err, context.Canceled):
	case isOffline(err):
		j.logger.Debug().Err(err).Msg("profile sync skipped: server unreachable")
	default:
		j.logger.Err(err).Str("func", "clientSyncJob.runOnce").Msg("profile sync failed")
	}
}
