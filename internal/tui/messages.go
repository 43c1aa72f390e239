package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tzy-lab/paperdesk/models"
)

// NavigateTo switches the login-flow router to another page. An optional
// Payload is delivered to the target page right after the switch.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult is the outcome of an async login command. Seq ties the result
// to the submission that produced it; the login page drops results whose Seq
// no longer matches its counter.
type LoginResult struct {
	Seq     int
	Session models.Session
	Err     error
}

// loginAcceptedMsg finalizes the login flow. Only the login page emits it,
// and only after the sequence check passed.
type loginAcceptedMsg struct {
	session models.Session
}

// RegisterResult is the outcome of an async registration command.
type RegisterResult struct {
	Err      error
	Username string
}

// RegisterSuccessNotice is carried to the login page after a successful
// registration.
type RegisterSuccessNotice struct {
	Username string
}

// registerReturnMsg fires two seconds after a successful registration and
// sends the user back to the login page.
type registerReturnMsg struct{}

// providerLoginMsg is the outcome of a third-party provider login attempt.
type providerLoginMsg struct {
	provider string
	err      error
}

type catalogLoadedMsg struct {
	subjects []models.Subject
	err      error
}

// searchDoneMsg carries paper search results. seq ties the reply to the
// query that produced it; stale replies are dropped.
type searchDoneMsg struct {
	seq     int
	results []models.SearchResult
	err     error
}

type historyLoadedMsg struct {
	entries []models.HistoryEntry
	err     error
}

type historyClearedMsg struct {
	err error
}

type historyRecordedMsg struct {
	err error
}

// pinnedLoadedMsg carries the persisted set of pinned subject keys.
type pinnedLoadedMsg struct {
	keys []string
	err  error
}

type pinnedSavedMsg struct {
	keys []string
	err  error
}

type notesLoadedMsg struct {
	notes []models.Note
	err   error
}

// noteFetchedMsg delivers the fresh copy of a note before editing.
type noteFetchedMsg struct {
	note models.Note
	err  error
}

type noteSavedMsg struct {
	err error
}

type noteDeletedMsg struct {
	err error
}

type profileLoadedMsg struct {
	profile models.UserProfile
	avatar  string
	usage   models.DailyUsage
	err     error
}

type profileSavedMsg struct {
	err error
}

type themeLoadedMsg struct {
	theme models.Theme
	err   error
}

type themeSavedMsg struct {
	theme models.Theme
	err   error
}

// previewTickMsg advances the viewing timer of an open file preview.
// paperID guards against ticks armed for a preview that has since closed.
type previewTickMsg struct {
	paperID string
}

type logoutDoneMsg struct {
	err error
}
