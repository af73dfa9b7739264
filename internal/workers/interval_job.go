package workers

import (
	"context"
	"sync"
	"time"

	"github.com/vperelygin/go-conf-sync/internal/logger"
)

// IntervalJob runs a task on a ticker. The job is idle until Start is
// called; a zero or negative interval disables it entirely.
type IntervalJob struct {
	name     string
	interval time.Duration
	task     func(ctx context.Context) error
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewIntervalJob creates an IntervalJob that calls task every interval.
func NewIntervalJob(name string, interval time.Duration, task func(ctx context.Context) error, log *logger.Logger) *IntervalJob {
	return &IntervalJob{
		name:     name,
		interval: interval,
		task:     task,
		logger:   log,
	}
}

// Start implements [Worker]. It stops any previously running instance, then
// launches a background goroutine that calls the task every interval. The
// goroutine exits when ctx is cancelled or Stop is called.
func (j *IntervalJob) Start(ctx context.Context) {
	if j.interval <= 0 {
		return
	}

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
				if err := j.task(jobCtx); err != nil {
					j.logger.Warn().Err(err).Str("job", j.name).Msg("background task failed")
				}
			}
		}
	}()
}

// Stop implements [Worker]. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the
// job is not running (no-op in that case).
func (j *IntervalJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
