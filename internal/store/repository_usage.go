package store

import (
	"context"
	"fmt"
	"time"

	"github.com/tzy-lab/paperdesk/internal/logger"
	"github.com/tzy-lab/paperdesk/models"
)

type usageRepository struct {
	*DB
	logger *logger.Logger
}

func NewUsageRepository(db *DB, logger *logger.Logger) UsageRepository {
	return &usageRepository{
		DB:     db,
		logger: logger,
	}
}

func (u *usageRepository) AddActiveTime(ctx context.Context, day string, delta time.Duration) error {
	log := logger.FromContext(ctx)

	if delta <= 0 {
		return nil
	}

	_, err := u.DB.ExecContext(ctx, addActiveTime, day, delta.Milliseconds())
	if err != nil {
		log.Err(err).
			Str("func", "usageRepository.AddActiveTime").
			Str("day", day).
			Msg("failed to accumulate active time")
		return fmt.Errorf("failed to accumulate active time (day=%s): %w", day, err)
	}

	return nil
}

func (u *usageRepository) GetUsage(ctx context.Context) (models.DailyUsage, error) {
	log := logger.FromContext(ctx)

	rows, err := u.DB.QueryContext(ctx, getAllUsage)
	if err != nil {
		log.Err(err).
			Str("func", "usageRepository.GetUsage").
			Msg("failed to execute query for getting daily usage")
		return nil, fmt.Errorf("failed to query daily usage: %w", err)
	}
	defer rows.Close()

	usage := models.DailyUsage{}

	for rows.Next() {
		var (
			day      string
			activeMS int64
		)

		if scanErr := rows.Scan(&day, &activeMS); scanErr != nil {
			log.Err(scanErr).
				Str("func", "usageRepository.GetUsage").
				Msg("failed to scan daily usage row")
			return nil, fmt.Errorf("failed to scan daily usage row: %w", scanErr)
		}

		usage[day] = activeMS
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "usageRepository.GetUsage").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating daily usage rows: %w", rowsErr)
	}

	return usage, nil
}
