package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tzy-lab/paperdesk/internal/mock"
	"github.com/tzy-lab/paperdesk/internal/service"
	"github.com/tzy-lab/paperdesk/models"
)

type dashboardMocks struct {
	auth     *mock.MockClientAuthService
	catalog  *mock.MockClientCatalogService
	history  *mock.MockClientHistoryService
	usage    *mock.MockClientUsageService
	notebook *mock.MockClientNotebookService
	profile  *mock.MockClientProfileService
}

// newTestDashboard — хелпер для дашборда с сервисами-моками
func newTestDashboard(t *testing.T, ctrl *gomock.Controller, user models.User) (dashboardModel, dashboardMocks) {
	t.Helper()

	mocks := dashboardMocks{
		auth:     mock.NewMockClientAuthService(ctrl),
		catalog:  mock.NewMockClientCatalogService(ctrl),
		history:  mock.NewMockClientHistoryService(ctrl),
		usage:    mock.NewMockClientUsageService(ctrl),
		notebook: mock.NewMockClientNotebookService(ctrl),
		profile:  mock.NewMockClientProfileService(ctrl),
	}

	services := &service.ClientServices{
		AuthService:     mocks.auth,
		CatalogService:  mocks.catalog,
		HistoryService:  mocks.history,
		UsageService:    mocks.usage,
		NotebookService: mocks.notebook,
		ProfileService:  mocks.profile,
	}

	session := models.Session{User: user, Token: "test-token"}
	return newDashboardModel(context.Background(), services, session), mocks
}

func testCatalog() []models.Subject {
	return []models.Subject{
		{
			Key:  "math",
			Name: "Математика",
			Icon: "📐",
			Topics: []models.Topic{
				{
					ID:   "math-algebra",
					Name: "Алгебра",
					Papers: []models.Paper{
						{ID: "p-alg-1", Name: "2023 Вариант 1", Year: 2023, FileURL: "https://files/p-alg-1.pdf"},
						{ID: "p-alg-2", Name: "2024 Вариант 2", Year: 2024},
					},
				},
				{ID: "math-geometry", Name: "Геометрия"},
			},
		},
		{Key: "physics", Name: "Физика", Icon: "⚛️"},
	}
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func asDashboard(t *testing.T, m tea.Model) dashboardModel {
	t.Helper()
	dm, ok := m.(dashboardModel)
	require.True(t, ok)
	return dm
}

// ── Вкладки и роли ───────────────────────────────────────────────────────────

func TestDashboard_GuestSeesOnlySearchTab(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _ := newTestDashboard(t, ctrl, models.User{Username: "tzy", UserType: models.UserTypeGuest})

	assert.Equal(t, []dashboardTab{tabSearch}, m.visibleTabs())
	assert.Equal(t, tabSearch, m.activeTab)

	// у гостя одна вкладка, переключение ничего не меняет
	updated, cmd := m.switchTab(1)
	m = asDashboard(t, updated)
	assert.Nil(t, cmd)
	assert.Equal(t, tabSearch, m.activeTab)
}

func TestDashboard_UserSeesFullToolbar(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _ := newTestDashboard(t, ctrl, models.User{Username: "TZY", UserType: models.UserTypeUser})

	assert.Len(t, m.visibleTabs(), 6)
	assert.Equal(t, tabTextbook, m.activeTab)
}

// ── Иерархический выбор ──────────────────────────────────────────────────────

func TestDashboard_SelectSubjectRecordsVisit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mocks := newTestDashboard(t, ctrl, models.User{Username: "TZY", UserType: models.UserTypeUser})
	m.subjects = testCatalog()
	m.loadingCatalog = false

	mocks.history.EXPECT().
		Add(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry models.HistoryEntry) error {
			assert.Equal(t, models.HistorySubject, entry.Type)
			assert.Equal(t, "math", entry.ID)
			assert.Equal(t, "Математика", entry.Name)
			return nil
		})

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = asDashboard(t, updated)

	require.NotNil(t, m.selectedSubject)
	assert.Equal(t, "math", m.selectedSubject.Key)
	assert.Nil(t, m.selectedTopic)

	require.NotNil(t, cmd)
	msg, ok := cmd().(historyRecordedMsg)
	require.True(t, ok)
	assert.NoError(t, msg.err)
}

func TestDashboard_BackToSubjectsCollapsesEverything(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _ := newTestDashboard(t, ctrl, models.User{Username: "TZY", UserType: models.UserTypeUser})
	m.subjects = testCatalog()
	m.loadingCatalog = false

	subject := m.subjects[0]
	m.selectedSubject = &subject
	topic := subject.Topics[0]
	m.selectedTopic = &topic
	paper := topic.Papers[0]
	m.viewingFile = &paper
	m.showFilePreview = true

	// esc закрывает просмотр
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = asDashboard(t, updated)
	assert.False(t, m.showFilePreview)
	assert.Nil(t, m.viewingFile)
	require.NotNil(t, m.selectedTopic)

	// esc возвращает к темам
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = asDashboard(t, updated)
	assert.Nil(t, m.selectedTopic)
	require.NotNil(t, m.selectedSubject)

	// esc возвращает к предметам — ниже ничего не остаётся
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = asDashboard(t, updated)
	assert.Nil(t, m.selectedSubject)
	assert.Nil(t, m.selectedTopic)
	assert.Nil(t, m.viewingFile)
	assert.False(t, m.showFilePreview)
}

func TestDashboard_OpenPaperStartsPreviewAndTimer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mocks := newTestDashboard(t, ctrl, models.User{Username: "TZY", UserType: models.UserTypeUser})
	m.subjects = testCatalog()
	m.loadingCatalog = false

	subject := m.subjects[0]
	m.selectedSubject = &subject
	topic := subject.Topics[0]
	m.selectedTopic = &topic

	mocks.history.EXPECT().
		Add(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry models.HistoryEntry) error {
			assert.Equal(t, models.HistoryFile, entry.Type)
			assert.Equal(t, "p-alg-1", entry.ID)
			assert.Equal(t, "Математика", entry.SubjectName)
			assert.Equal(t, "Алгебра", entry.TopicName)
			return nil
		})

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = asDashboard(t, updated)

	require.NotNil(t, m.viewingFile)
	assert.Equal(t, "p-alg-1", m.viewingFile.ID)
	assert.True(t, m.showFilePreview)
	assert.Equal(t, time.Duration(0), m.viewElapsed)
	require.NotNil(t, cmd)

	// команда — батч из записи в историю и первого тика таймера
	if batch, ok := cmd().(tea.BatchMsg); ok {
		for _, c := range batch {
			if c != nil {
				c()
			}
		}
	}
}

// ── Таймер просмотра ─────────────────────────────────────────────────────────

func TestDashboard_PreviewTickAccumulatesUsage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mocks := newTestDashboard(t, ctrl, models.User{Username: "TZY", UserType: models.UserTypeUser})
	paper := models.Paper{ID: "p-alg-1", Name: "2023 Вариант 1"}
	m.viewingFile = &paper
	m.showFilePreview = true

	mocks.usage.EXPECT().RecordActive(time.Second)

	updated, cmd := m.Update(previewTickMsg{paperID: "p-alg-1"})
	m = asDashboard(t, updated)

	assert.Equal(t, time.Second, m.viewElapsed)
	// таймер взводится заново, пока просмотр открыт
	require.NotNil(t, cmd)
}

func TestDashboard_StalePreviewTickDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _ := newTestDashboard(t, ctrl, models.User{Username: "TZY", UserType: models.UserTypeUser})
	paper := models.Paper{ID: "p-alg-2"}
	m.viewingFile = &paper
	m.showFilePreview = true

	// тик от другого файла — RecordActive не вызывается (мок без ожиданий)
	updated, cmd := m.Update(previewTickMsg{paperID: "p-alg-1"})
	m = asDashboard(t, updated)
	assert.Equal(t, time.Duration(0), m.viewElapsed)
	assert.Nil(t, cmd)

	// тик после закрытия просмотра
	m.closePreview()
	updated, cmd = m.Update(previewTickMsg{paperID: "p-alg-2"})
	m = asDashboard(t, updated)
	assert.Equal(t, time.Duration(0), m.viewElapsed)
	assert.Nil(t, cmd)
}

// ── Поиск ────────────────────────────────────────────────────────────────────

func TestDashboard_StaleSearchResultDiscarded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _ := newTestDashboard(t, ctrl, models.User{Username: "tzy", UserType: models.UserTypeGuest})
	m.searchSeq = 2
	m.searching = true

	stale := searchDoneMsg{
		seq:     1,
		results: []models.SearchResult{{Paper: models.Paper{ID: "p-old"}}},
	}

	updated, cmd := m.Update(stale)
	m = asDashboard(t, updated)

	assert.Nil(t, cmd)
	assert.True(t, m.searching, "устаревший ответ не должен завершать актуальный поиск")
	assert.Empty(t, m.searchResults)
}

func TestDashboard_FreshSearchResultApplied(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _ := newTestDashboard(t, ctrl, models.User{Username: "tzy", UserType: models.UserTypeGuest})
	m.searchSeq = 2
	m.searching = true

	fresh := searchDoneMsg{
		seq: 2,
		results: []models.SearchResult{
			{Paper: models.Paper{ID: "p-alg-1", Name: "2023 Вариант 1"}, SubjectName: "Математика", TopicName: "Алгебра"},
		},
	}

	updated, _ := m.Update(fresh)
	m = asDashboard(t, updated)

	assert.False(t, m.searching)
	require.Len(t, m.searchResults, 1)
	assert.False(t, m.searchTyping, "после успешного поиска фокус уходит на результаты")
}

func TestDashboard_SearchSubmitBumpsSequence(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mocks := newTestDashboard(t, ctrl, models.User{Username: "tzy", UserType: models.UserTypeGuest})
	m.searchInput.SetValue("оптика")

	mocks.catalog.EXPECT().
		Search(gomock.Any(), "оптика").
		Return([]models.SearchResult{}, nil)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = asDashboard(t, updated)

	assert.Equal(t, 1, m.searchSeq)
	assert.True(t, m.searching)
	require.NotNil(t, cmd)

	msg, ok := cmd().(searchDoneMsg)
	require.True(t, ok)
	assert.Equal(t, 1, msg.seq)
}

// ── Выход ────────────────────────────────────────────────────────────────────

func TestDashboard_LogoutResetsStateAndQuits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mocks := newTestDashboard(t, ctrl, models.User{Username: "TZY", UserType: models.UserTypeUser})
	m.subjects = testCatalog()
	m.loadingCatalog = false

	subject := m.subjects[0]
	m.selectedSubject = &subject
	topic := subject.Topics[0]
	m.selectedTopic = &topic

	mocks.auth.EXPECT().Logout(gomock.Any()).Return(nil)

	updated, cmd := m.Update(keyRune('l'))
	m = asDashboard(t, updated)
	assert.True(t, m.loggingOut)
	require.NotNil(t, cmd)

	updated, quitCmd := m.Update(cmd())
	m = asDashboard(t, updated)

	assert.True(t, m.logout)
	assert.Nil(t, m.selectedSubject)
	assert.Nil(t, m.selectedTopic)
	assert.Nil(t, m.viewingFile)
	require.NotNil(t, quitCmd)
	assert.Equal(t, tea.Quit(), quitCmd())
}

func TestDashboard_LogoutAlwaysSucceedsForCaller(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _ := newTestDashboard(t, ctrl, models.User{Username: "TZY", UserType: models.UserTypeUser})

	// даже при ошибке локальной очистки пользователь выходит
	updated, quitCmd := m.Update(logoutDoneMsg{err: assert.AnError})
	m = asDashboard(t, updated)

	assert.True(t, m.logout)
	require.NotNil(t, quitCmd)
}

// ── Тема ─────────────────────────────────────────────────────────────────────

func TestDashboard_ThemeToggleRestyles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mocks := newTestDashboard(t, ctrl, models.User{Username: "TZY", UserType: models.UserTypeUser})
	m.activeTab = tabProfile
	require.Equal(t, models.ThemeLight, m.theme)

	mocks.profile.EXPECT().SetTheme(gomock.Any(), models.ThemeDark).Return(nil)

	updated, cmd := m.Update(keyRune('t'))
	m = asDashboard(t, updated)
	require.NotNil(t, cmd)

	updated, _ = m.Update(cmd())
	m = asDashboard(t, updated)
	assert.Equal(t, models.ThemeDark, m.theme)
}

// ── Истёкшая сессия ──────────────────────────────────────────────────────────

func TestDashboard_ExpiredCatalogForcesLogout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mocks := newTestDashboard(t, ctrl, models.User{Username: "TZY", UserType: models.UserTypeUser})

	// 401 от любого вызова роняет сессию и возвращает на вход
	mocks.auth.EXPECT().Logout(gomock.Any()).Return(nil)

	updated, cmd := m.Update(catalogLoadedMsg{err: service.ErrSessionExpired})
	m = asDashboard(t, updated)
	assert.True(t, m.loggingOut)
	require.NotNil(t, cmd)

	updated, quitCmd := m.Update(cmd())
	m = asDashboard(t, updated)

	assert.True(t, m.logout)
	require.NotNil(t, quitCmd)
	assert.Equal(t, tea.Quit(), quitCmd())
}

func TestDashboard_ExpiredSearchForcesLogout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mocks := newTestDashboard(t, ctrl, models.User{Username: "TZY", UserType: models.UserTypeUser})
	m.searchSeq = 2

	mocks.auth.EXPECT().Logout(gomock.Any()).Return(nil)

	updated, cmd := m.Update(searchDoneMsg{seq: 2, err: service.ErrSessionExpired})
	m = asDashboard(t, updated)
	require.NotNil(t, cmd)

	updated, quitCmd := m.Update(cmd())
	m = asDashboard(t, updated)

	assert.True(t, m.logout)
	require.NotNil(t, quitCmd)
}

func TestDashboard_StaleExpiredSearchDoesNotLogout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// просроченный ответ отменённого запроса отбрасывается раньше
	m, _ := newTestDashboard(t, ctrl, models.User{Username: "TZY", UserType: models.UserTypeUser})
	m.searchSeq = 2

	updated, cmd := m.Update(searchDoneMsg{seq: 1, err: service.ErrSessionExpired})
	m = asDashboard(t, updated)

	assert.False(t, m.loggingOut)
	assert.Nil(t, cmd)
}

// ── Закреплённые предметы ────────────────────────────────────────────────────

func TestDashboard_PinSubjectPersistsAndReorders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mocks := newTestDashboard(t, ctrl, models.User{Username: "TZY", UserType: models.UserTypeUser})
	m.activeTab = tabTextbook
	m.subjects = testCatalog()
	m.loadingCatalog = false
	m.subjectIdx = 1 // Физика

	mocks.profile.EXPECT().SetSelectedSubjects(gomock.Any(), []string{"physics"}).Return(nil)

	updated, cmd := m.Update(keyRune('p'))
	m = asDashboard(t, updated)
	require.NotNil(t, cmd)

	updated, _ = m.Update(cmd())
	m = asDashboard(t, updated)

	// закреплённый предмет всплывает в начало списка
	assert.Equal(t, "physics", m.subjects[0].Key)
	body, _ := m.viewSubjectList()
	assert.Contains(t, body, "★ ⚛️ Физика")
}

func TestDashboard_UnpinLastSubjectClearsSet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mocks := newTestDashboard(t, ctrl, models.User{Username: "TZY", UserType: models.UserTypeUser})
	m.activeTab = tabTextbook
	m.subjects = testCatalog()
	m.loadingCatalog = false
	m.setPinned([]string{"math"})
	m.subjectIdx = 0 // после сортировки math уже первый

	mocks.profile.EXPECT().SetSelectedSubjects(gomock.Any(), []string{}).Return(nil)

	updated, cmd := m.Update(keyRune('p'))
	m = asDashboard(t, updated)
	require.NotNil(t, cmd)

	updated, _ = m.Update(cmd())
	m = asDashboard(t, updated)
	assert.Empty(t, m.pinnedSubjects)
}

// ── Блокнот ──────────────────────────────────────────────────────────────────

func TestDashboard_EditNoteFetchesFreshCopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mocks := newTestDashboard(t, ctrl, models.User{Username: "TZY", UserType: models.UserTypeUser})
	m.activeTab = tabNotebook
	m.notes = []models.Note{{ID: "n1", Title: "Черновик"}}

	fresh := models.Note{ID: "n1", Title: "Конспект по оптике", Body: "линзы"}
	mocks.notebook.EXPECT().Get(gomock.Any(), "n1").Return(fresh, nil)

	updated, cmd := m.Update(keyRune('e'))
	m = asDashboard(t, updated)
	require.NotNil(t, cmd)

	updated, _ = m.Update(cmd())
	m = asDashboard(t, updated)

	assert.True(t, m.noteEditing)
	assert.Equal(t, "n1", m.noteEditID)
	assert.Equal(t, "Конспект по оптике", m.noteInputs[0].Value())
	assert.Equal(t, "линзы", m.noteBody.Value())
}
