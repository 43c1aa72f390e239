package service

import (
	"context"
	"sync"
	"time"
)

type clientUsageJob struct {
	usageService ClientUsageService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientUsageJob creates a clientUsageJob that calls usageService.Flush on
// a ticker. The job is idle until Start is called.
func NewClientUsageJob(usageService ClientUsageService) ClientUsageJob {
	return &clientUsageJob{usageService: usageService}
}

// Start implements ClientUsageJob. It stops any previously running job, then
// launches a background goroutine that flushes every interval. If interval is
// zero or negative it defaults to one minute. The goroutine exits when ctx is
// cancelled or Stop is called.
func (j *clientUsageJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
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
				_ = j.usageService.Flush(jobCtx)
			}
		}
	}()
}

// Stop implements ClientUsageJob. It cancels the background goroutine's
// context, blocks until the goroutine has fully exited, and drains whatever
// accumulated since the last tick. Safe to call when the job is not running.
func (j *clientUsageJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	j.wg.Wait()

	// final flush so a teardown between ticks loses nothing
	ctx, cancelFlush := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelFlush()
	_ = j.usageService.Flush(ctx)
}
