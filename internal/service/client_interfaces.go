package service

import (
	"context"
	"time"

	"github.com/tzy-lab/paperdesk/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService defines the client-side contract for account access and
// session lifecycle. It is the single owner of session persistence: adapters
// authenticate, this service decides what gets written to or removed from the
// local store.
type ClientAuthService interface {
	// Login authenticates the credentials against the backend, stamps the
	// session with a local expiry deadline, and persists it. Returns the
	// live session on success. Bad credentials yield ErrWrongCredentials.
	Login(ctx context.Context, username, password string) (models.Session, error)

	// Register creates a new account. It does not log the user in; callers
	// follow up with Login. A taken username yields ErrLoginAlreadyExists.
	Register(ctx context.Context, username, password, confirmPassword, email string) error

	// RestoreSession loads the persisted session, arms the adapter with its
	// token, and revalidates it against the backend. A missing, locally
	// expired, or rejected session is cleared from the store and reported as
	// ErrSessionExpired.
	RestoreSession(ctx context.Context) (models.Session, error)

	// Logout invalidates the session remotely on a best-effort basis and
	// always clears it locally. The returned error reflects only the local
	// clear; remote failures are logged and swallowed.
	Logout(ctx context.Context) error

	// LoginWithProvider is the third-party OAuth entry point. No provider is
	// wired yet, so it fails fast with ErrNotImplemented.
	LoginWithProvider(ctx context.Context, provider string) (models.Session, error)
}

// ClientCatalogService defines read access to the subject → topic → paper
// catalog and the paper search.
type ClientCatalogService interface {
	// Subjects fetches the full catalog from the backend.
	Subjects(ctx context.Context) ([]models.Subject, error)

	// Search runs a free-text paper search. An empty query yields an empty
	// result without a backend call.
	Search(ctx context.Context, query string) ([]models.SearchResult, error)
}

// ClientHistoryService tracks visited catalog nodes. Entries are
// deduplicated by (ID, Type): a repeat visit bumps the visit counter in
// place, and the list is capped at [models.HistoryCap] entries by dropping
// the oldest.
type ClientHistoryService interface {
	// Add records a visit to the given catalog node.
	Add(ctx context.Context, entry models.HistoryEntry) error

	// List returns all entries, most recently first-visited first.
	List(ctx context.Context) ([]models.HistoryEntry, error)

	// Clear wipes the whole history.
	Clear(ctx context.Context) error
}

// ClientUsageService accumulates active session time in memory and
// periodically flushes it into the per-day usage store.
type ClientUsageService interface {
	// RecordActive adds delta of observed active time to the in-memory
	// accumulator. Non-positive deltas are ignored.
	RecordActive(delta time.Duration)

	// Flush moves the accumulated time into the persistent day bucket.
	// Flushing a zero accumulator is a no-op.
	Flush(ctx context.Context) error

	// Usage returns the persisted day map with the still-unflushed remainder
	// added onto today's bucket.
	Usage(ctx context.Context) (models.DailyUsage, error)
}

// ClientUsageJob is a background worker that periodically flushes the usage
// accumulator.
type ClientUsageJob interface {
	// Start launches the background flush goroutine. It flushes every
	// interval, defaulting to one minute if interval is zero or negative.
	// Any previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit, blocks until it has
	// fully terminated, and performs one final flush.
	Stop()
}

// ClientNotebookService manages locally stored notes.
type ClientNotebookService interface {
	// Create assigns a fresh UUID and creation timestamps and stores the note.
	Create(ctx context.Context, note models.Note) (models.Note, error)

	// Get returns the note with the given ID, or ErrNoteNotFound.
	Get(ctx context.Context, id string) (models.Note, error)

	// List returns all notes, most recently updated first.
	List(ctx context.Context) ([]models.Note, error)

	// Update rewrites an existing note and refreshes its update timestamp.
	Update(ctx context.Context, note models.Note) error

	// Delete removes the note with the given ID.
	Delete(ctx context.Context, id string) error
}

// ClientProfileService persists display and profile preferences: theme,
// avatar, the free-form profile record, and the selected subject keys.
type ClientProfileService interface {
	// Theme returns the persisted theme, defaulting to [models.ThemeLight].
	Theme(ctx context.Context) (models.Theme, error)

	// SetTheme persists the theme. Unknown values are rejected.
	SetTheme(ctx context.Context, theme models.Theme) error

	// Avatar returns the persisted avatar glyph, empty when unset.
	Avatar(ctx context.Context) (string, error)

	// SetAvatar persists the avatar glyph.
	SetAvatar(ctx context.Context, avatar string) error

	// Profile returns the persisted profile record, zero when unset.
	Profile(ctx context.Context) (models.UserProfile, error)

	// SaveProfile persists the profile record verbatim.
	SaveProfile(ctx context.Context, profile models.UserProfile) error

	// SelectedSubjects returns the persisted subject keys, nil when unset.
	SelectedSubjects(ctx context.Context) ([]string, error)

	// SetSelectedSubjects persists the subject keys.
	SetSelectedSubjects(ctx context.Context, keys []string) error
}
