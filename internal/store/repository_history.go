package store

import (
	"context"
	"fmt"

	"github.com/tzy-lab/paperdesk/internal/logger"
	"github.com/tzy-lab/paperdesk/models"
)

type historyRepository struct {
	*DB
	logger *logger.Logger
}

func NewHistoryRepository(db *DB, logger *logger.Logger) HistoryRepository {
	return &historyRepository{
		DB:     db,
		logger: logger,
	}
}

// UpsertEntry relies on the UNIQUE(entry_id, entry_type) index: a repeat
// visit updates the existing row, so its rowid — and hence its position in
// ListEntries — never changes.
func (h *historyRepository) UpsertEntry(ctx context.Context, entry models.HistoryEntry) error {
	log := logger.FromContext(ctx)

	_, err := h.DB.ExecContext(ctx, upsertHistoryEntry,
		entry.ID,
		string(entry.Type),
		entry.Name,
		entry.Icon,
		entry.SubjectName,
		entry.TopicName,
		entry.Papers,
		entry.LastVisited,
	)
	if err != nil {
		log.Err(err).
			Str("func", "historyRepository.UpsertEntry").
			Str("entry_id", entry.ID).
			Str("entry_type", string(entry.Type)).
			Msg("failed to execute upsert for history entry")
		return fmt.Errorf("failed to upsert history entry (id=%s, type=%s): %w", entry.ID, entry.Type, err)
	}

	return nil
}

func (h *historyRepository) TrimToCap(ctx context.Context, limit int) error {
	log := logger.FromContext(ctx)

	_, err := h.DB.ExecContext(ctx, trimHistoryToCap, limit)
	if err != nil {
		log.Err(err).
			Str("func", "historyRepository.TrimToCap").
			Int("limit", limit).
			Msg("failed to trim history to cap")
		return fmt.Errorf("failed to trim history to cap (limit=%d): %w", limit, err)
	}

	return nil
}

func (h *historyRepository) ListEntries(ctx context.Context) ([]models.HistoryEntry, error) {
	log := logger.FromContext(ctx)

	rows, err := h.DB.QueryContext(ctx, getAllHistoryEntries)
	if err != nil {
		log.Err(err).
			Str("func", "historyRepository.ListEntries").
			Msg("failed to execute query for getting all history entries")
		return nil, fmt.Errorf("failed to query history entries: %w", err)
	}
	defer rows.Close()

	var entries []models.HistoryEntry

	for rows.Next() {
		var entry models.HistoryEntry

		scanErr := rows.Scan(
			&entry.ID,
			&entry.Type,
			&entry.Name,
			&entry.Icon,
			&entry.SubjectName,
			&entry.TopicName,
			&entry.Papers,
			&entry.VisitCount,
			&entry.LastVisited,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "historyRepository.ListEntries").
				Msg("failed to scan history entry row")
			return nil, fmt.Errorf("failed to scan history entry row: %w", scanErr)
		}

		entries = append(entries, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "historyRepository.ListEntries").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating history entry rows: %w", rowsErr)
	}

	return entries, nil
}

func (h *historyRepository) ClearEntries(ctx context.Context) error {
	log := logger.FromContext(ctx)

	_, err := h.DB.ExecContext(ctx, clearHistoryEntries)
	if err != nil {
		log.Err(err).
			Str("func", "historyRepository.ClearEntries").
			Msg("failed to clear history entries")
		return fmt.Errorf("failed to clear history entries: %w", err)
	}

	return nil
}
