package service

import (
	"context"
	"fmt"
	"time"

	"github.com/tzy-lab/paperdesk/internal/logger"
	"github.com/tzy-lab/paperdesk/internal/store"
	"github.com/tzy-lab/paperdesk/models"
)

type clientHistoryService struct {
	localStore *store.ClientStorages
	logger     *logger.Logger

	now func() time.Time
}

func NewClientHistoryService(localStore *store.ClientStorages, logger *logger.Logger) ClientHistoryService {
	return &clientHistoryService{localStore: localStore, logger: logger, now: time.Now}
}

// Add records a visit. Identity is (ID, Type): a repeat visit merges into the
// existing entry without moving it, a first visit lands at the head and the
// list is trimmed back to [models.HistoryCap].
func (h *clientHistoryService) Add(ctx context.Context, entry models.HistoryEntry) error {
	if entry.ID == "" || entry.Type == "" {
		return fmt.Errorf("history entry must carry an id and a type")
	}

	entry.LastVisited = h.now()

	if err := h.localStore.HistoryRepository.UpsertEntry(ctx, entry); err != nil {
		return fmt.Errorf("record visit: %w", err)
	}

	if err := h.localStore.HistoryRepository.TrimToCap(ctx, models.HistoryCap); err != nil {
		return fmt.Errorf("trim history: %w", err)
	}

	return nil
}

func (h *clientHistoryService) List(ctx context.Context) ([]models.HistoryEntry, error) {
	entries, err := h.localStore.HistoryRepository.ListEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	return entries, nil
}

func (h *clientHistoryService) Clear(ctx context.Context) error {
	if err := h.localStore.HistoryRepository.ClearEntries(ctx); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}
