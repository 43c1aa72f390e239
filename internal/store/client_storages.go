package store

import (
	"context"
	"fmt"

	"github.com/tzy-lab/paperdesk/internal/config"
	"github.com/tzy-lab/paperdesk/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the service layer.
type ClientStorages struct {
	// SessionRepository persists the single signed-in session.
	SessionRepository SessionRepository

	// PreferenceRepository stores small durable client state such as the
	// selected theme, avatar and profile.
	PreferenceRepository PreferenceRepository

	// HistoryRepository backs the browsing history tracker.
	HistoryRepository HistoryRepository

	// UsageRepository accumulates per-day active session time.
	UsageRepository UsageRepository

	// NotebookRepository stores local notebook entries.
	NotebookRepository NotebookRepository
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [ClientStorages] value with every repository
//     wired to the shared connection.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		SessionRepository:    NewSessionRepository(db, logger),
		PreferenceRepository: NewPreferenceRepository(db, logger),
		HistoryRepository:    NewHistoryRepository(db, logger),
		UsageRepository:      NewUsageRepository(db, logger),
		NotebookRepository:   NewNotebookRepository(db, logger),
	}, nil
}
