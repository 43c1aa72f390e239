package store

import (
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tzy-lab/paperdesk/internal/logger"
	"github.com/tzy-lab/paperdesk/models"
)

var sessionColumns = []string{"token", "user_json", "expires_at"}

func mustUserJSON(t *testing.T, u models.User) string {
	t.Helper()
	b, err := json.Marshal(u)
	require.NoError(t, err)
	return string(b)
}

func TestSessionSaveSession(t *testing.T) {
	now := time.Now().Truncate(time.Millisecond)
	session := models.Session{
		User:      models.User{Username: "TZY", UserType: models.UserTypeUser},
		Token:     "token-abc",
		ExpiresAt: now.Add(7 * 24 * time.Hour),
	}

	t.Run("success", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewSessionRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO session")).
			WithArgs(session.Token, mustUserJSON(t, session.User), session.ExpiresAt).
			WillReturnResult(sqlmock.NewResult(1, 1))

		err := repo.SaveSession(testContext(), session)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("exec error", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewSessionRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO session")).
			WillReturnError(errors.New("database is locked"))

		err := repo.SaveSession(testContext(), session)
		assert.ErrorContains(t, err, "failed to save session")
	})
}

func TestSessionGetSession(t *testing.T) {
	now := time.Now().Truncate(time.Millisecond)
	user := models.User{Username: "TZY", UserType: models.UserTypeUser}

	t.Run("returns persisted session", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewSessionRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta("FROM session")).
			WillReturnRows(sqlmock.NewRows(sessionColumns).
				AddRow("token-abc", mustUserJSON(t, user), now.Add(time.Hour)))

		got, err := repo.GetSession(testContext())
		require.NoError(t, err)
		assert.Equal(t, "token-abc", got.Token)
		assert.Equal(t, user, got.User)
	})

	t.Run("no session", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewSessionRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta("FROM session")).
			WillReturnRows(sqlmock.NewRows(sessionColumns))

		_, err := repo.GetSession(testContext())
		assert.ErrorIs(t, err, ErrLocalSessionNotFound)
	})

	t.Run("expired session is removed and reported as absent", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewSessionRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta("FROM session")).
			WillReturnRows(sqlmock.NewRows(sessionColumns).
				AddRow("token-old", mustUserJSON(t, user), now.Add(-time.Minute)))
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM session")).
			WillReturnResult(sqlmock.NewResult(0, 1))

		_, err := repo.GetSession(testContext())
		assert.ErrorIs(t, err, ErrLocalSessionNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("corrupted user record", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewSessionRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta("FROM session")).
			WillReturnRows(sqlmock.NewRows(sessionColumns).
				AddRow("token-abc", "{not json", now.Add(time.Hour)))

		_, err := repo.GetSession(testContext())
		assert.ErrorContains(t, err, "failed to unmarshal persisted user record")
	})
}

func TestSessionDeleteSession(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewSessionRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM session")).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.DeleteSession(testContext()))
	})

	t.Run("deleting absent session is not an error", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewSessionRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM session")).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.NoError(t, repo.DeleteSession(testContext()))
	})
}
