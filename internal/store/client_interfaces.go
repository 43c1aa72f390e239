package store

import (
	"context"
	"time"

	"github.com/tzy-lab/paperdesk/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SessionRepository persists the single local session (token + user record
// + expiry). The store holds at most one session at a time; saving replaces
// any previous one.
type SessionRepository interface {
	// SaveSession replaces the persisted session.
	SaveSession(ctx context.Context, session models.Session) error

	// GetSession returns the persisted session. An absent or locally
	// expired session yields ErrLocalSessionNotFound; expired rows are
	// removed as a side effect of the read.
	GetSession(ctx context.Context) (models.Session, error)

	// DeleteSession removes the persisted session. Deleting an absent
	// session is not an error.
	DeleteSession(ctx context.Context) error
}

// PreferenceRepository is a key-scoped JSON value store for small durable
// client state: theme, avatar, user profile, selected subjects.
// A missing key is not an error; Get reports presence via its bool result.
type PreferenceRepository interface {
	GetPreference(ctx context.Context, key string) (value string, ok bool, err error)
	SetPreference(ctx context.Context, key, value string) error
	DeletePreference(ctx context.Context, key string) error
}

// HistoryRepository is the durable backing of the browsing history tracker.
// Entry identity is (ID, Type); order is first-visit order, newest first.
type HistoryRepository interface {
	// UpsertEntry records a visit: a new identity is inserted at the head,
	// an existing one has its visit_count incremented and last_visited
	// refreshed in place without changing its position.
	UpsertEntry(ctx context.Context, entry models.HistoryEntry) error

	// TrimToCap drops the oldest entries beyond limit.
	TrimToCap(ctx context.Context, limit int) error

	// ListEntries returns all entries, most recently inserted first.
	ListEntries(ctx context.Context) ([]models.HistoryEntry, error)

	// ClearEntries removes every entry.
	ClearEntries(ctx context.Context) error
}

// UsageRepository accumulates per-day active session time.
type UsageRepository interface {
	// AddActiveTime adds delta of active time onto the day bucket.
	AddActiveTime(ctx context.Context, day string, delta time.Duration) error

	// GetUsage returns the full day → milliseconds map.
	GetUsage(ctx context.Context) (models.DailyUsage, error)
}

// NotebookRepository stores local notebook entries.
type NotebookRepository interface {
	SaveNote(ctx context.Context, note models.Note) error
	GetNote(ctx context.Context, id string) (models.Note, error)
	ListNotes(ctx context.Context) ([]models.Note, error)
	UpdateNote(ctx context.Context, note models.Note) error
	DeleteNote(ctx context.Context, id string) error
}
