package workers

import (
	"context"
	"time"

	"github.com/tzy-lab/paperdesk/internal/service"
)

type Workers struct {
	workers []Worker
}

func New(list ...Worker) *Workers {
	return &Workers{workers: list}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop shuts workers down in reverse start order. Workers without a Stop
// method are skipped.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		if s, ok := w.workers[i].(StoppableWorker); ok {
			s.Stop()
		}
	}
}

// UsageFlush adapts the usage flush job to the Worker lifecycle.
type UsageFlush struct {
	ctx      context.Context
	job      service.ClientUsageJob
	interval time.Duration
}

func NewUsageFlush(ctx context.Context, job service.ClientUsageJob, interval time.Duration) *UsageFlush {
	return &UsageFlush{ctx: ctx, job: job, interval: interval}
}

func (u *UsageFlush) Run() {
	u.job.Start(u.ctx, u.interval)
}

// Stop waits for the job goroutine and performs its final flush.
func (u *UsageFlush) Stop() {
	u.job.Stop()
}
