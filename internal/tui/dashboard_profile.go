package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tzy-lab/paperdesk/models"
)

func (m dashboardModel) updateProfileTab(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "e":
		m.startProfileForm()
		return m, textinput.Blink
	case "t":
		next := models.ThemeDark
		if m.theme == models.ThemeDark {
			next = models.ThemeLight
		}
		return m, m.cmdSaveTheme(next)
	case "r":
		return m, m.cmdLoadProfile()
	}
	return m, nil
}

func (m *dashboardModel) startProfileForm() {
	labels := []struct {
		placeholder string
		value       string
	}{
		{"Аватар (символ)", m.avatar},
		{"Класс", m.profile.Grade},
		{"Пол", m.profile.Gender},
		{"О себе", m.profile.Bio},
		{"Город", m.profile.Location},
		{"Программа обучения", m.profile.Curriculum},
	}

	inputs := make([]textinput.Model, len(labels))
	for i, l := range labels {
		in := textinput.New()
		in.Placeholder = l.placeholder
		in.Width = 40
		in.SetValue(l.value)
		inputs[i] = in
	}
	inputs[0].Focus()

	m.profileInputs = inputs
	m.profileFocus = 0
	m.profileSaving = false
	m.profileEditing = true
	m.errMsg = ""
	m.status = ""
}

func (m dashboardModel) updateProfileForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.profileEditing = false
			m.profileSaving = false
			m.errMsg = ""
			return m, nil
		case "tab":
			m.profileInputs[m.profileFocus].Blur()
			m.profileFocus = (m.profileFocus + 1) % len(m.profileInputs)
			m.profileInputs[m.profileFocus].Focus()
			return m, nil
		case "shift+tab":
			m.profileInputs[m.profileFocus].Blur()
			m.profileFocus = (m.profileFocus - 1 + len(m.profileInputs)) % len(m.profileInputs)
			m.profileInputs[m.profileFocus].Focus()
			return m, nil
		case "ctrl+s":
			if m.profileSaving {
				return m, nil
			}

			profile := models.UserProfile{
				Grade:      strings.TrimSpace(m.profileInputs[1].Value()),
				Gender:     strings.TrimSpace(m.profileInputs[2].Value()),
				Bio:        strings.TrimSpace(m.profileInputs[3].Value()),
				Location:   strings.TrimSpace(m.profileInputs[4].Value()),
				Curriculum: strings.TrimSpace(m.profileInputs[5].Value()),
			}
			avatar := strings.TrimSpace(m.profileInputs[0].Value())

			m.errMsg = ""
			m.profileSaving = true
			return m, m.cmdSaveProfile(profile, avatar)
		}
	}

	var cmd tea.Cmd
	m.profileInputs[m.profileFocus], cmd = m.profileInputs[m.profileFocus].Update(msg)
	return m, cmd
}

func (m dashboardModel) viewProfileTab() (body, hotKeys string) {
	var b strings.Builder

	avatar := m.avatar
	if avatar == "" {
		avatar = "•"
	}

	b.WriteString("[ АККАУНТ ]\n")
	b.WriteString(fmt.Sprintf("%s %s (%s)\n", avatar, m.session.User.Username, roleLabel(m.session.User.UserType)))
	b.WriteString("E-mail    : " + valueOrDash(m.session.User.Email) + "\n\n")

	b.WriteString("[ ПРОФИЛЬ ]\n")
	b.WriteString("Класс     : " + valueOrDash(m.profile.Grade) + "\n")
	b.WriteString("Пол       : " + valueOrDash(m.profile.Gender) + "\n")
	b.WriteString("О себе    : " + valueOrDash(m.profile.Bio) + "\n")
	b.WriteString("Город     : " + valueOrDash(m.profile.Location) + "\n")
	b.WriteString("Программа : " + valueOrDash(m.profile.Curriculum) + "\n\n")

	b.WriteString("[ АКТИВНОСТЬ ]\n")
	today := m.usage.Today(time.Now())
	b.WriteString(fmt.Sprintf("Сегодня   : %d мин\n", int(today.Minutes())))
	b.WriteString("Тема      : " + themeLabel(m.theme))

	return strings.TrimRight(b.String(), "\n"), "e: изменить │ t: тема │ r: обновить │ tab: вкладка │ l: выйти"
}

func (m dashboardModel) viewProfileForm() string {
	var b strings.Builder
	b.WriteString("Аватар    : [ " + m.profileInputs[0].View() + " ]\n")
	b.WriteString("Класс     : [ " + m.profileInputs[1].View() + " ]\n")
	b.WriteString("Пол       : [ " + m.profileInputs[2].View() + " ]\n")
	b.WriteString("О себе    : [ " + m.profileInputs[3].View() + " ]\n")
	b.WriteString("Город     : [ " + m.profileInputs[4].View() + " ]\n")
	b.WriteString("Программа : [ " + m.profileInputs[5].View() + " ]\n")
	if m.errMsg != "" {
		b.WriteString("\nОшибка: " + m.errMsg + "\n")
	}
	if m.profileSaving {
		b.WriteString("\nСохранение...\n")
	}

	return renderPage("ИЗМЕНЕНИЕ ПРОФИЛЯ", strings.TrimRight(b.String(), "\n"), "tab: след. поле │ ctrl+s: сохранить │ esc: отмена")
}

func roleLabel(t models.UserType) string {
	switch t {
	case models.UserTypeGuest:
		return "гость"
	case models.UserTypeUser:
		return "пользователь"
	default:
		return string(t)
	}
}
