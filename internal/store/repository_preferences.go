package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tzy-lab/paperdesk/internal/logger"
)

// Preference keys used across the client. Values are JSON or plain strings,
// the repository does not interpret them.
const (
	PrefKeyTheme            = "theme"
	PrefKeyAvatar           = "avatar"
	PrefKeyProfile          = "profile"
	PrefKeySelectedSubjects = "selected_subjects"
)

type preferenceRepository struct {
	*DB
	logger *logger.Logger
}

func NewPreferenceRepository(db *DB, logger *logger.Logger) PreferenceRepository {
	return &preferenceRepository{
		DB:     db,
		logger: logger,
	}
}

func (p *preferenceRepository) GetPreference(ctx context.Context, key string) (string, bool, error) {
	log := logger.FromContext(ctx)

	var value string
	row := p.DB.QueryRowContext(ctx, getPreference, key)
	scanErr := row.Scan(&value)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return "", false, nil
	}
	if scanErr != nil {
		log.Err(scanErr).
			Str("func", "preferenceRepository.GetPreference").
			Str("key", key).
			Msg("failed to scan preference row")
		return "", false, fmt.Errorf("failed to scan preference row (key=%s): %w", key, scanErr)
	}

	return value, true, nil
}

func (p *preferenceRepository) SetPreference(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	_, err := p.DB.ExecContext(ctx, setPreference, key, value)
	if err != nil {
		log.Err(err).
			Str("func", "preferenceRepository.SetPreference").
			Str("key", key).
			Msg("failed to execute upsert for preference")
		return fmt.Errorf("failed to set preference (key=%s): %w", key, err)
	}

	return nil
}

func (p *preferenceRepository) DeletePreference(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	_, err := p.DB.ExecContext(ctx, deletePreference, key)
	if err != nil {
		log.Err(err).
			Str("func", "preferenceRepository.DeletePreference").
			Str("key", key).
			Msg("failed to execute delete for preference")
		return fmt.Errorf("failed to delete preference (key=%s): %w", key, err)
	}

	return nil
}
