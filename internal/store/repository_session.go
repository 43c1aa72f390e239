package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/tzy-lab/paperdesk/internal/logger"
	"github.com/tzy-lab/paperdesk/models"
)

type sessionRepository struct {
	*DB
	logger *logger.Logger
}

func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{
		DB:     db,
		logger: logger,
	}
}

func (s *sessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	userJSON, err := json.Marshal(session.User)
	if err != nil {
		log.Err(err).
			Str("func", "sessionRepository.SaveSession").
			Str("username", session.User.Username).
			Msg("failed to marshal user record")
		return fmt.Errorf("failed to marshal user record: %w", err)
	}

	_, err = s.DB.ExecContext(ctx, saveSession,
		session.Token,
		string(userJSON),
		session.ExpiresAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "sessionRepository.SaveSession").
			Str("username", session.User.Username).
			Msg("failed to execute upsert for session")
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

func (s *sessionRepository) GetSession(ctx context.Context) (models.Session, error) {
	log := logger.FromContext(ctx)

	var (
		session  models.Session
		userJSON string
	)

	row := s.DB.QueryRowContext(ctx, getSession)
	scanErr := row.Scan(
		&session.Token,
		&userJSON,
		&session.ExpiresAt,
	)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return models.Session{}, ErrLocalSessionNotFound
	}
	if scanErr != nil {
		log.Err(scanErr).
			Str("func", "sessionRepository.GetSession").
			Msg("failed to scan session row")
		return models.Session{}, fmt.Errorf("failed to scan session row: %w", scanErr)
	}

	if err := json.Unmarshal([]byte(userJSON), &session.User); err != nil {
		log.Err(err).
			Str("func", "sessionRepository.GetSession").
			Msg("failed to unmarshal persisted user record")
		return models.Session{}, fmt.Errorf("failed to unmarshal persisted user record: %w", err)
	}

	// an expired row is as good as absent: drop it on the way out
	if session.Expired(time.Now()) {
		if err := s.DeleteSession(ctx); err != nil {
			log.Err(err).
				Str("func", "sessionRepository.GetSession").
				Msg("failed to remove expired session")
		}
		return models.Session{}, ErrLocalSessionNotFound
	}

	return session, nil
}

func (s *sessionRepository) DeleteSession(ctx context.Context) error {
	log := logger.FromContext(ctx)

	_, err := s.DB.ExecContext(ctx, deleteSession)
	if err != nil {
		log.Err(err).
			Str("func", "sessionRepository.DeleteSession").
			Msg("failed to execute delete for session")
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}
