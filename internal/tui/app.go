package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tzy-lab/paperdesk/models"
)

// RootModel routes the welcome flow between its pages (menu, login,
// register), owns the global hotkeys and the build-info overlay, and
// stops the program once a page reports an accepted session.
type RootModel struct {
	pages  map[string]tea.Model
	active tea.Model

	userQuit bool
	session  models.Session

	buildInfo     models.AppBuildInfo
	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:     pages,
		active:    pages[startPage],
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.active == nil {
		return nil
	}
	return r.active.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if model, cmd, handled := r.handleGlobalKey(msg); handled {
			return model, cmd
		}

	case NavigateTo:
		return r.navigate(msg)

	case loginAcceptedMsg:
		// единственный путь завершения welcome-потока с сессией
		r.session = msg.session
		return r, tea.Quit
	}

	if r.active == nil {
		return r, nil
	}

	updated, cmd := r.active.Update(msg)
	r.active = updated
	return r, cmd
}

// handleGlobalKey processes hotkeys that work on every page. The build-info
// overlay swallows everything except esc while it is open.
func (r RootModel) handleGlobalKey(key tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch key.String() {
	case "ctrl+c":
		r.userQuit = true
		return r, tea.Quit, true
	case "v":
		if r.onMenu() {
			r.showBuildInfo = !r.showBuildInfo
			return r, nil, true
		}
	case "esc":
		if r.showBuildInfo {
			r.showBuildInfo = false
			return r, nil, true
		}
	}

	if r.showBuildInfo {
		return r, nil, true
	}
	return r, nil, false
}

func (r RootModel) navigate(nav NavigateTo) (tea.Model, tea.Cmd) {
	next, exists := r.pages[nav.Page]
	if !exists {
		return r, nil
	}

	r.showBuildInfo = false
	r.active = next

	if nav.Payload != nil {
		return r, func() tea.Msg { return nav.Payload }
	}
	return r, r.active.Init()
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	if r.active == nil {
		return renderPage("TUI", "", "")
	}
	return r.active.View()
}

func (r RootModel) onMenu() bool {
	_, ok := r.active.(*MenuModel)
	return ok
}
