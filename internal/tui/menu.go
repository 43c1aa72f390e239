package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tzy-lab/paperdesk/internal/service"
)

type menuAction int

const (
	menuActionLogin menuAction = iota
	menuActionRegister
	menuActionProvider
)

type menuItem struct {
	label    string
	action   menuAction
	provider string
}

// MenuModel is the welcome page: sign-in, sign-up and the third-party
// provider entries. Providers are listed for parity with the web client but
// fail fast, no provider is wired on this side yet.
type MenuModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	items     []menuItem
	idx       int
	confirmed bool
	status    string
	errMsg    string
}

func NewMenuModel(ctx context.Context, auth service.ClientAuthService) *MenuModel {
	return &MenuModel{
		ctx:  ctx,
		auth: auth,
		items: []menuItem{
			{label: "Войти", action: menuActionLogin},
			{label: "Зарегистрироваться", action: menuActionRegister},
			{label: "Войти через Google", action: menuActionProvider, provider: "google"},
			{label: "Войти через ВКонтакте", action: menuActionProvider, provider: "vk"},
		},
	}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RegisterSuccessNotice:
		if msg.Username != "" {
			m.status = "Пользователь " + msg.Username + " успешно зарегистрирован"
		} else {
			m.status = "Регистрация прошла успешно"
		}
		return m, nil
	case providerLoginMsg:
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
		m.confirmed = false
	case "down", "j":
		if m.idx < len(m.items)-1 {
			m.idx++
		}
		m.confirmed = false
	case "enter":
		m.confirmed = true
		m.errMsg = ""
		item := m.items[m.idx]
		switch item.action {
		case menuActionLogin:
			return m, func() tea.Msg { return NavigateTo{Page: "login"} }
		case menuActionRegister:
			return m, func() tea.Msg { return NavigateTo{Page: "register"} }
		case menuActionProvider:
			return m, m.cmdProviderLogin(item.provider)
		}
	}

	return m, nil
}

func (m *MenuModel) View() string {
	var b strings.Builder
	idColWidth := lipgloss.Width("ID")
	itemsCountWidth := lipgloss.Width(fmt.Sprintf("%d", len(m.items)))
	if itemsCountWidth > idColWidth {
		idColWidth = itemsCountWidth
	}
	idColWidth += 2 // reserve space for selection marker and space ("<marker> <id>")

	actionColWidth := lipgloss.Width("Действие")
	for _, item := range m.items {
		if w := lipgloss.Width(item.label); w > actionColWidth {
			actionColWidth = w
		}
	}

	if m.status != "" {
		b.WriteString("OK: ")
		b.WriteString(m.status)
		b.WriteString("\n\n")
	}
	if m.errMsg != "" {
		b.WriteString("Ошибка: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n\n")
	}

	b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, "ID", actionColWidth, "Действие"))
	b.WriteString(strings.Repeat("─", idColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", actionColWidth))
	b.WriteString("\n")

	for i, item := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		idCell := fmt.Sprintf("%s %d", cursor, i+1)
		b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, idCell, actionColWidth, item.label))
	}

	return renderPage("ДОБРО ПОЖАЛОВАТЬ", strings.TrimRight(b.String(), "\n"), "enter: выбрать │ ↑/↓: навигация │ v: версия")
}

func (m *MenuModel) cmdProviderLogin(provider string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		_, err := auth.LoginWithProvider(ctx, provider)
		return providerLoginMsg{provider: provider, err: err}
	}
}
