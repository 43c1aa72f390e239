package tui

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tzy-lab/paperdesk/internal/service"
	"github.com/tzy-lab/paperdesk/models"
)

type dashboardTab int

const (
	tabSearch dashboardTab = iota
	tabTextbook
	tabSyllabus
	tabNotebook
	tabHistory
	tabProfile
)

func tabLabel(t dashboardTab) string {
	switch t {
	case tabSearch:
		return "Поиск"
	case tabTextbook:
		return "Учебник"
	case tabSyllabus:
		return "Программа"
	case tabNotebook:
		return "Блокнот"
	case tabHistory:
		return "История"
	case tabProfile:
		return "Профиль"
	default:
		return "?"
	}
}

// dashboardModel is the main program: a tab bar over the catalog, the paper
// search, the local notebook, the browsing history and the profile page.
// Selection state is strictly hierarchical: subject → topic → paper → open
// preview; clearing a level clears everything below it.
type dashboardModel struct {
	ctx      context.Context
	services *service.ClientServices
	session  models.Session

	theme models.Theme
	st    themeStyles

	activeTab dashboardTab

	subjects       []models.Subject
	pinnedSubjects map[string]bool
	loadingCatalog bool

	selectedSubject *models.Subject
	selectedTopic   *models.Topic
	subjectIdx      int
	topicIdx        int
	paperIdx        int

	viewingFile     *models.Paper
	showFilePreview bool
	previewSubject  string
	previewTopic    string
	viewElapsed     time.Duration

	searchInput   textinput.Model
	searchTyping  bool
	searchSeq     int
	searching     bool
	searchResults []models.SearchResult
	searchIdx     int

	syllabusIdx int

	historyEntries []models.HistoryEntry
	historyIdx     int
	loadingHistory bool

	notes       []models.Note
	noteIdx     int
	noteEditing bool
	noteEditID  string
	noteCreated time.Time
	noteInputs  []textinput.Model
	noteBody    textarea.Model
	noteFocus   int
	noteSaving  bool

	profile        models.UserProfile
	avatar         string
	usage          models.DailyUsage
	profileEditing bool
	profileInputs  []textinput.Model
	profileFocus   int
	profileSaving  bool

	status string
	errMsg string

	loggingOut bool
	logout     bool
}

func newDashboardModel(ctx context.Context, services *service.ClientServices, session models.Session) dashboardModel {
	searchInput := textinput.New()
	searchInput.Placeholder = "запрос"
	searchInput.Width = 44
	searchInput.Focus()

	startTab := tabTextbook
	if session.User.IsGuest() {
		startTab = tabSearch
	}

	return dashboardModel{
		ctx:            ctx,
		services:       services,
		session:        session,
		theme:          models.ThemeLight,
		st:             stylesFor(models.ThemeLight),
		activeTab:      startTab,
		searchInput:    searchInput,
		searchTyping:   true,
		loadingCatalog: true,
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadCatalog(), m.cmdLoadTheme(), m.cmdLoadPinned(), textinput.Blink)
}

// visibleTabs returns the tabs rendered for the current role. Guests get the
// search tool only; gating lives here in the presentation layer.
func (m dashboardModel) visibleTabs() []dashboardTab {
	if m.session.User.IsGuest() {
		return []dashboardTab{tabSearch}
	}
	return []dashboardTab{tabSearch, tabTextbook, tabSyllabus, tabNotebook, tabHistory, tabProfile}
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case catalogLoadedMsg:
		m.loadingCatalog = false
		if msg.err != nil {
			if errors.Is(msg.err, service.ErrSessionExpired) {
				return m, m.forceLogout()
			}
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.subjects = msg.subjects
		m.sortSubjects()
		if m.subjectIdx >= len(m.subjects) {
			m.subjectIdx = 0
		}
		return m, nil

	case pinnedLoadedMsg:
		if msg.err != nil {
			return m, nil
		}
		m.setPinned(msg.keys)
		return m, nil

	case pinnedSavedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.setPinned(msg.keys)
		return m, nil

	case searchDoneMsg:
		if msg.seq != m.searchSeq {
			// ответ на уже отменённый запрос
			return m, nil
		}
		m.searching = false
		if msg.err != nil {
			if errors.Is(msg.err, service.ErrSessionExpired) {
				return m, m.forceLogout()
			}
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.searchResults = msg.results
		m.searchIdx = 0
		if len(m.searchResults) == 0 {
			m.status = "Ничего не найдено"
			return m, nil
		}
		m.status = ""
		m.searchTyping = false
		m.searchInput.Blur()
		return m, nil

	case historyLoadedMsg:
		m.loadingHistory = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.historyEntries = msg.entries
		if m.historyIdx >= len(m.historyEntries) {
			m.historyIdx = 0
		}
		return m, nil

	case historyClearedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.historyEntries = nil
		m.historyIdx = 0
		m.status = "История очищена"
		return m, nil

	case historyRecordedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
		}
		return m, nil

	case notesLoadedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.notes = msg.notes
		if m.noteIdx >= len(m.notes) {
			m.noteIdx = 0
		}
		return m, nil

	case noteFetchedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.startNoteForm(msg.note)
		return m, textinput.Blink

	case noteSavedMsg:
		m.noteSaving = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.noteEditing = false
		m.status = "Заметка сохранена"
		m.errMsg = ""
		return m, m.cmdLoadNotes()

	case noteDeletedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.status = "Заметка удалена"
		m.errMsg = ""
		return m, m.cmdLoadNotes()

	case profileLoadedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.profile = msg.profile
		m.avatar = msg.avatar
		m.usage = msg.usage
		return m, nil

	case profileSavedMsg:
		m.profileSaving = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.profileEditing = false
		m.status = "Профиль сохранён"
		m.errMsg = ""
		return m, m.cmdLoadProfile()

	case themeLoadedMsg:
		if msg.err == nil {
			m.theme = msg.theme
			m.st = stylesFor(msg.theme)
		}
		return m, nil

	case themeSavedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.theme = msg.theme
		m.st = stylesFor(msg.theme)
		m.status = "Тема: " + themeLabel(msg.theme)
		return m, nil

	case previewTickMsg:
		if !m.showFilePreview || m.viewingFile == nil || m.viewingFile.ID != msg.paperID {
			// тик от уже закрытого просмотра
			return m, nil
		}
		m.viewElapsed += time.Second
		m.services.UsageService.RecordActive(time.Second)
		return m, m.cmdPreviewTick(msg.paperID)

	case logoutDoneMsg:
		// Выход всегда успешен с точки зрения пользователя.
		m.logout = true
		m.resetNavigation()
		return m, tea.Quit
	}

	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey && keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showFilePreview {
		if isKey {
			switch keyMsg.String() {
			case "esc":
				m.closePreview()
			case "c":
				if m.viewingFile == nil || m.viewingFile.FileURL == "" {
					m.status = "Нечего копировать"
					return m, nil
				}
				if err := clipboard.WriteAll(m.viewingFile.FileURL); err != nil {
					m.errMsg = fmt.Sprintf("Ошибка копирования: %v", err)
					return m, nil
				}
				m.status = "Ссылка скопирована"
			}
		}
		return m, nil
	}

	if m.noteEditing {
		return m.updateNoteForm(msg)
	}
	if m.profileEditing {
		return m.updateProfileForm(msg)
	}

	if isKey {
		switch keyMsg.String() {
		case "tab":
			return m.switchTab(1)
		case "shift+tab":
			return m.switchTab(-1)
		}

		typing := m.activeTab == tabSearch && m.searchTyping
		if !typing && keyMsg.String() == "l" {
			if m.loggingOut {
				return m, nil
			}
			m.loggingOut = true
			m.status = "Выход..."
			return m, m.cmdLogout()
		}
	}

	switch m.activeTab {
	case tabSearch:
		return m.updateSearchTab(msg)
	case tabTextbook:
		return m.updateTextbookTab(msg)
	case tabSyllabus:
		return m.updateSyllabusTab(msg)
	case tabNotebook:
		return m.updateNotebookTab(msg)
	case tabHistory:
		return m.updateHistoryTab(msg)
	case tabProfile:
		return m.updateProfileTab(msg)
	}

	return m, nil
}

// switchTab cycles the visible tabs; entering a data tab reloads its list.
func (m dashboardModel) switchTab(step int) (tea.Model, tea.Cmd) {
	tabs := m.visibleTabs()
	if len(tabs) < 2 {
		return m, nil
	}

	cur := 0
	for i, t := range tabs {
		if t == m.activeTab {
			cur = i
			break
		}
	}
	m.activeTab = tabs[(cur+step+len(tabs))%len(tabs)]
	m.status = ""
	m.errMsg = ""

	switch m.activeTab {
	case tabSearch:
		m.searchTyping = true
		m.searchInput.Focus()
		return m, textinput.Blink
	case tabTextbook, tabSyllabus:
		if len(m.subjects) == 0 && !m.loadingCatalog {
			m.loadingCatalog = true
			return m, m.cmdLoadCatalog()
		}
	case tabNotebook:
		return m, m.cmdLoadNotes()
	case tabHistory:
		m.loadingHistory = true
		return m, m.cmdLoadHistory()
	case tabProfile:
		return m, m.cmdLoadProfile()
	}
	return m, nil
}

// forceLogout reacts to a backend 401 noticed by any authenticated call:
// the local session is dropped and the main loop exits so the caller
// re-runs the login flow. Which call produced the 401 does not matter.
func (m *dashboardModel) forceLogout() tea.Cmd {
	if m.loggingOut {
		return nil
	}
	m.loggingOut = true
	m.status = "Сессия истекла, войдите заново"
	return m.cmdLogout()
}

func (m *dashboardModel) setPinned(keys []string) {
	m.pinnedSubjects = make(map[string]bool, len(keys))
	for _, key := range keys {
		m.pinnedSubjects[key] = true
	}
	m.sortSubjects()
}

// sortSubjects keeps pinned subjects at the top, preserving catalog order
// inside each group. Runs whenever the catalog or the pin set changes.
func (m *dashboardModel) sortSubjects() {
	if len(m.pinnedSubjects) == 0 {
		return
	}
	sort.SliceStable(m.subjects, func(i, j int) bool {
		return m.pinnedSubjects[m.subjects[i].Key] && !m.pinnedSubjects[m.subjects[j].Key]
	})
}

func (m dashboardModel) pinnedKeys() []string {
	keys := make([]string, 0, len(m.pinnedSubjects))
	for _, s := range m.subjects {
		if m.pinnedSubjects[s.Key] {
			keys = append(keys, s.Key)
		}
	}
	return keys
}

// resetNavigation drops every piece of selection state below the session.
func (m *dashboardModel) resetNavigation() {
	m.selectedSubject = nil
	m.selectedTopic = nil
	m.subjectIdx = 0
	m.topicIdx = 0
	m.paperIdx = 0
	m.closePreview()
	m.searchResults = nil
	m.searchIdx = 0
	m.searchInput.SetValue("")
	m.searchTyping = true
	m.activeTab = tabSearch
}

func (m *dashboardModel) closePreview() {
	m.viewingFile = nil
	m.showFilePreview = false
	m.previewSubject = ""
	m.previewTopic = ""
	m.viewElapsed = 0
}

// openPaper opens the metadata preview of a paper, records the visit and
// arms the per-second viewing timer.
func (m *dashboardModel) openPaper(paper models.Paper, subjectName, topicName string) tea.Cmd {
	p := paper
	m.viewingFile = &p
	m.showFilePreview = true
	m.previewSubject = subjectName
	m.previewTopic = topicName
	m.viewElapsed = 0

	entry := models.HistoryEntry{
		Type:        models.HistoryFile,
		ID:          paper.ID,
		Name:        paper.Name,
		SubjectName: subjectName,
		TopicName:   topicName,
	}
	return tea.Batch(m.cmdRecordVisit(entry), m.cmdPreviewTick(paper.ID))
}

func (m dashboardModel) View() string {
	if m.showFilePreview && m.viewingFile != nil {
		return m.viewPreview()
	}
	if m.noteEditing {
		return m.viewNoteForm()
	}
	if m.profileEditing {
		return m.viewProfileForm()
	}

	var b strings.Builder
	b.WriteString(m.viewTabBar())
	b.WriteString("\n\n")

	if m.errMsg != "" {
		b.WriteString("Ошибка: " + m.errMsg + "\n")
	}
	if m.status != "" {
		b.WriteString("Статус: " + m.status + "\n")
	}
	if m.errMsg != "" || m.status != "" {
		b.WriteString("\n")
	}

	var body, hotKeys string
	switch m.activeTab {
	case tabSearch:
		body, hotKeys = m.viewSearchTab()
	case tabTextbook:
		body, hotKeys = m.viewTextbookTab()
	case tabSyllabus:
		body, hotKeys = m.viewSyllabusTab()
	case tabNotebook:
		body, hotKeys = m.viewNotebookTab()
	case tabHistory:
		body, hotKeys = m.viewHistoryTab()
	case tabProfile:
		body, hotKeys = m.viewProfileTab()
	}
	b.WriteString(body)

	return renderPage("PAPERDESK — "+strings.ToUpper(tabLabel(m.activeTab)), strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m dashboardModel) viewTabBar() string {
	parts := make([]string, 0, 6)
	for _, t := range m.visibleTabs() {
		label := tabLabel(t)
		if t == m.activeTab {
			parts = append(parts, m.st.tabOn.Render("["+label+"]"))
		} else {
			parts = append(parts, m.st.tab.Render(" "+label+" "))
		}
	}
	bar := strings.Join(parts, " │ ")
	if m.session.User.IsGuest() {
		bar += m.st.help.Render("   (гостевой доступ)")
	}
	return bar
}

func themeLabel(t models.Theme) string {
	if t == models.ThemeDark {
		return "тёмная"
	}
	return "светлая"
}

func formatElapsed(d time.Duration) string {
	total := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
