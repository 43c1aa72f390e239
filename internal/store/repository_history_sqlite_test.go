package store

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tzy-lab/paperdesk/internal/config"
	"github.com/tzy-lab/paperdesk/internal/logger"
	"github.com/tzy-lab/paperdesk/models"
)

// newLiveHistoryRepo открывает настоящий SQLite-файл и прогоняет миграции:
// инварианты истории живут в самом SQL и проверяются только вживую.
func newLiveHistoryRepo(t *testing.T) HistoryRepository {
	t.Helper()

	cfg := config.ClientDB{DSN: filepath.Join(t.TempDir(), "history.db")}
	db, err := NewConnectSQLite(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Migrate())

	return NewHistoryRepository(db, logger.Nop())
}

func TestHistorySQLite_RepeatVisitMergesIntoOneEntry(t *testing.T) {
	repo := newLiveHistoryRepo(t)
	ctx := context.Background()

	entry := models.HistoryEntry{
		Type:        models.HistorySubject,
		ID:          "math",
		Name:        "Математика",
		Icon:        "📐",
		LastVisited: time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.UpsertEntry(ctx, entry))

	second := entry
	second.LastVisited = entry.LastVisited.Add(time.Hour)
	require.NoError(t, repo.UpsertEntry(ctx, second))

	entries, err := repo.ListEntries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 2, entries[0].VisitCount)
	assert.True(t, entries[0].LastVisited.Equal(second.LastVisited))
}

func TestHistorySQLite_SameIDDifferentTypeStaysSeparate(t *testing.T) {
	repo := newLiveHistoryRepo(t)
	ctx := context.Background()
	visited := time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC)

	require.NoError(t, repo.UpsertEntry(ctx, models.HistoryEntry{
		Type: models.HistoryTopic, ID: "math", Name: "Алгебра", LastVisited: visited,
	}))
	require.NoError(t, repo.UpsertEntry(ctx, models.HistoryEntry{
		Type: models.HistoryFile, ID: "math", Name: "2023 Вариант 1", LastVisited: visited,
	}))

	entries, err := repo.ListEntries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.Equal(t, 1, e.VisitCount)
	}
}

func TestHistorySQLite_TrimKeepsNewestFifty(t *testing.T) {
	repo := newLiveHistoryRepo(t)
	ctx := context.Background()
	base := time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC)

	for i := 0; i <= 50; i++ {
		require.NoError(t, repo.UpsertEntry(ctx, models.HistoryEntry{
			Type:        models.HistorySubject,
			ID:          fmt.Sprintf("s%02d", i),
			Name:        fmt.Sprintf("Предмет %02d", i),
			LastVisited: base.Add(time.Duration(i) * time.Minute),
		}))
	}
	require.NoError(t, repo.TrimToCap(ctx, 50))

	entries, err := repo.ListEntries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 50)
	// самая старая запись вытеснена, порядок — от новых к старым
	assert.Equal(t, "s50", entries[0].ID)
	assert.Equal(t, "s01", entries[len(entries)-1].ID)
}
