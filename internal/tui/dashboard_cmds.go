package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tzy-lab/paperdesk/models"
)

func (m dashboardModel) cmdLoadCatalog() tea.Cmd {
	ctx := m.ctx
	svc := m.services.CatalogService

	return func() tea.Msg {
		subjects, err := svc.Subjects(ctx)
		return catalogLoadedMsg{subjects: subjects, err: err}
	}
}

func (m dashboardModel) cmdSearch(seq int, query string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.CatalogService

	return func() tea.Msg {
		results, err := svc.Search(ctx, query)
		return searchDoneMsg{seq: seq, results: results, err: err}
	}
}

func (m dashboardModel) cmdRecordVisit(entry models.HistoryEntry) tea.Cmd {
	ctx := m.ctx
	svc := m.services.HistoryService

	return func() tea.Msg {
		return historyRecordedMsg{err: svc.Add(ctx, entry)}
	}
}

func (m dashboardModel) cmdLoadHistory() tea.Cmd {
	ctx := m.ctx
	svc := m.services.HistoryService

	return func() tea.Msg {
		entries, err := svc.List(ctx)
		return historyLoadedMsg{entries: entries, err: err}
	}
}

func (m dashboardModel) cmdClearHistory() tea.Cmd {
	ctx := m.ctx
	svc := m.services.HistoryService

	return func() tea.Msg {
		return historyClearedMsg{err: svc.Clear(ctx)}
	}
}

func (m dashboardModel) cmdLoadPinned() tea.Cmd {
	ctx := m.ctx
	svc := m.services.ProfileService

	return func() tea.Msg {
		keys, err := svc.SelectedSubjects(ctx)
		return pinnedLoadedMsg{keys: keys, err: err}
	}
}

func (m dashboardModel) cmdSavePinned(keys []string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ProfileService

	return func() tea.Msg {
		return pinnedSavedMsg{keys: keys, err: svc.SetSelectedSubjects(ctx, keys)}
	}
}

func (m dashboardModel) cmdFetchNote(id string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.NotebookService

	return func() tea.Msg {
		note, err := svc.Get(ctx, id)
		return noteFetchedMsg{note: note, err: err}
	}
}

func (m dashboardModel) cmdLoadNotes() tea.Cmd {
	ctx := m.ctx
	svc := m.services.NotebookService

	return func() tea.Msg {
		notes, err := svc.List(ctx)
		return notesLoadedMsg{notes: notes, err: err}
	}
}

func (m dashboardModel) cmdSaveNote(note models.Note) tea.Cmd {
	ctx := m.ctx
	svc := m.services.NotebookService

	return func() tea.Msg {
		var err error
		if note.ID == "" {
			_, err = svc.Create(ctx, note)
		} else {
			err = svc.Update(ctx, note)
		}
		return noteSavedMsg{err: err}
	}
}

func (m dashboardModel) cmdDeleteNote(id string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.NotebookService

	return func() tea.Msg {
		return noteDeletedMsg{err: svc.Delete(ctx, id)}
	}
}

func (m dashboardModel) cmdLoadProfile() tea.Cmd {
	ctx := m.ctx
	profiles := m.services.ProfileService
	usageSvc := m.services.UsageService

	return func() tea.Msg {
		profile, err := profiles.Profile(ctx)
		if err != nil {
			return profileLoadedMsg{err: err}
		}
		avatar, err := profiles.Avatar(ctx)
		if err != nil {
			return profileLoadedMsg{err: err}
		}
		usage, err := usageSvc.Usage(ctx)
		if err != nil {
			return profileLoadedMsg{err: err}
		}
		return profileLoadedMsg{profile: profile, avatar: avatar, usage: usage}
	}
}

func (m dashboardModel) cmdSaveProfile(profile models.UserProfile, avatar string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ProfileService

	return func() tea.Msg {
		if err := svc.SaveProfile(ctx, profile); err != nil {
			return profileSavedMsg{err: err}
		}
		return profileSavedMsg{err: svc.SetAvatar(ctx, avatar)}
	}
}

func (m dashboardModel) cmdLoadTheme() tea.Cmd {
	ctx := m.ctx
	svc := m.services.ProfileService

	return func() tea.Msg {
		theme, err := svc.Theme(ctx)
		return themeLoadedMsg{theme: theme, err: err}
	}
}

func (m dashboardModel) cmdSaveTheme(theme models.Theme) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ProfileService

	return func() tea.Msg {
		return themeSavedMsg{theme: theme, err: svc.SetTheme(ctx, theme)}
	}
}

func (m dashboardModel) cmdPreviewTick(paperID string) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return previewTickMsg{paperID: paperID}
	})
}

func (m dashboardModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	svc := m.services.AuthService

	return func() tea.Msg {
		return logoutDoneMsg{err: svc.Logout(ctx)}
	}
}
