package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tzy-lab/paperdesk/internal/logger"
	"github.com/tzy-lab/paperdesk/internal/store"
	"github.com/tzy-lab/paperdesk/models"
)

type clientUsageService struct {
	localStore *store.ClientStorages
	logger     *logger.Logger

	mu      sync.Mutex
	pending time.Duration

	now func() time.Time
}

func NewClientUsageService(localStore *store.ClientStorages, logger *logger.Logger) ClientUsageService {
	return &clientUsageService{localStore: localStore, logger: logger, now: time.Now}
}

func (u *clientUsageService) RecordActive(delta time.Duration) {
	if delta <= 0 {
		return
	}

	u.mu.Lock()
	u.pending += delta
	u.mu.Unlock()
}

// Flush drains the accumulator into today's bucket. The pending time is
// taken out before the write and put back on failure, so nothing is lost
// when the store is briefly unavailable.
func (u *clientUsageService) Flush(ctx context.Context) error {
	u.mu.Lock()
	pending := u.pending
	u.pending = 0
	u.mu.Unlock()

	if pending == 0 {
		return nil
	}

	day := models.UsageDay(u.now())
	if err := u.localStore.UsageRepository.AddActiveTime(ctx, day, pending); err != nil {
		u.mu.Lock()
		u.pending += pending
		u.mu.Unlock()
		return fmt.Errorf("flush active time: %w", err)
	}

	return nil
}

func (u *clientUsageService) Usage(ctx context.Context) (models.DailyUsage, error) {
	usage, err := u.localStore.UsageRepository.GetUsage(ctx)
	if err != nil {
		return nil, fmt.Errorf("load daily usage: %w", err)
	}
	if usage == nil {
		usage = models.DailyUsage{}
	}

	u.mu.Lock()
	pending := u.pending
	u.mu.Unlock()

	if pending > 0 {
		usage[models.UsageDay(u.now())] += pending.Milliseconds()
	}

	return usage, nil
}
