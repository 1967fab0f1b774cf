package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-pet-tracker/internal/logger"
)

// DefaultRefreshInterval is used when Start is given a non-positive interval.
const DefaultRefreshInterval = 5 * time.Minute

type profileRefreshJob struct {
	session SessionService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewProfileRefreshJob creates a job that calls session.RefreshProfile on a
// ticker while a session exists. The job is idle until Start is called.
func NewProfileRefreshJob(session SessionService) ProfileRefreshJob {
	return &profileRefreshJob{session: session}
}

// Start implements ProfileRefreshJob. The goroutine exits when ctx is
// cancelled or Stop is called.
func (j *profileRefreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.tick(jobCtx)
			}
		}
	}()
}

func (j *profileRefreshJob) tick(ctx context.Context) {
	if !j.session.IsAuthenticated(ctx) {
		return
	}
	if _, err := j.session.RefreshProfile(ctx); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "profileRefreshJob.tick").
			Msg("profile refresh failed")
	}
}

// Stop implements ProfileRefreshJob. Safe to call when the job is not running.
func (j *profileRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
