package adapter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tzy-lab/paperdesk/internal/logger"
	"github.com/tzy-lab/paperdesk/models"
)

func TestMockLogin_StaticAccounts(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		wantType models.UserType
		wantErr  error
	}{
		{name: "uppercase TZY is a full user", username: "TZY", password: "123456", wantType: models.UserTypeUser},
		{name: "lowercase tzy is a guest", username: "tzy", password: "123456", wantType: models.UserTypeGuest},
		{name: "wrong password", username: "TZY", password: "654321", wantErr: ErrInvalidCredentials},
		{name: "unknown account", username: "nobody", password: "123456", wantErr: ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMockServerAdapter(logger.Nop())

			got, err := m.Login(context.Background(), tt.username, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.username, got.User.Username)
			assert.Equal(t, tt.wantType, got.User.UserType)
			assert.NotEmpty(t, got.Token)
			assert.Equal(t, got.Token, m.Token())
		})
	}
}

func TestMockLogin_TakesAtLeastTheCannedDelay(t *testing.T) {
	m := NewMockServerAdapter(logger.Nop())

	start := time.Now()
	_, err := m.Login(context.Background(), "TZY", "123456")

	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), mockResponseDelay)
}

func TestMockRegister(t *testing.T) {
	t.Run("new account can log in afterwards", func(t *testing.T) {
		m := NewMockServerAdapter(logger.Nop())

		require.NoError(t, m.Register(context.Background(), "alice", "secret", "alice@example.com"))

		got, err := m.Login(context.Background(), "alice", "secret")
		require.NoError(t, err)
		assert.Equal(t, models.UserTypeUser, got.User.UserType)
	})

	t.Run("taken username", func(t *testing.T) {
		m := NewMockServerAdapter(logger.Nop())

		err := m.Register(context.Background(), "TZY", "secret", "")
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})
}

func TestMockValidateSession(t *testing.T) {
	t.Run("accepts its own token", func(t *testing.T) {
		m := NewMockServerAdapter(logger.Nop())

		_, err := m.Login(context.Background(), "TZY", "123456")
		require.NoError(t, err)

		assert.NoError(t, m.ValidateSession(context.Background()))
	})

	t.Run("rejects a token from a previous run", func(t *testing.T) {
		m := NewMockServerAdapter(logger.Nop())
		m.SetToken("persisted-from-previous-process")

		err := m.ValidateSession(context.Background())
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("rejects after logout", func(t *testing.T) {
		m := NewMockServerAdapter(logger.Nop())

		_, err := m.Login(context.Background(), "TZY", "123456")
		require.NoError(t, err)
		require.NoError(t, m.Logout(context.Background()))

		assert.ErrorIs(t, m.ValidateSession(context.Background()), ErrUnauthorized)
	})
}

func TestMockSearchPapers(t *testing.T) {
	m := NewMockServerAdapter(logger.Nop())

	t.Run("matches on topic name", func(t *testing.T) {
		got, err := m.SearchPapers(context.Background(), "оптика")
		require.NoError(t, err)
		require.NotEmpty(t, got)
		for _, hit := range got {
			assert.Equal(t, "Оптика", hit.TopicName)
			assert.Equal(t, "physics", hit.SubjectKey)
		}
	})

	t.Run("empty query returns nothing", func(t *testing.T) {
		got, err := m.SearchPapers(context.Background(), "  ")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("no hits", func(t *testing.T) {
		got, err := m.SearchPapers(context.Background(), "термодинамика")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestMockSubjects_ReturnsCatalog(t *testing.T) {
	m := NewMockServerAdapter(logger.Nop())

	got, err := m.Subjects(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, got)

	keys := make([]string, 0, len(got))
	for _, s := range got {
		keys = append(keys, s.Key)
		assert.NotEmpty(t, s.Name)
		assert.NotEmpty(t, s.Topics)
	}
	assert.Contains(t, keys, "math")
	assert.Contains(t, keys, "physics")
}
