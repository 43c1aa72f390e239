package store

import (
	"database/sql"

	"github.com/tzy-lab/paperdesk/internal/logger"
	"github.com/tzy-lab/paperdesk/migrations"
)

// DB is the local database handle shared by all repositories.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate brings the local schema up to date. Runs on every startup.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
