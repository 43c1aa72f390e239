package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// updateSearchTab has two modes: typing (the query input is focused) and
// result navigation. Each submission bumps the sequence counter so a late
// reply to a superseded query is discarded in Update.
func (m dashboardModel) updateSearchTab(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)

	if m.searchTyping {
		if isKey {
			switch keyMsg.String() {
			case "enter":
				query := strings.TrimSpace(m.searchInput.Value())
				if query == "" {
					m.errMsg = "Введите запрос"
					return m, nil
				}
				m.errMsg = ""
				m.status = ""
				m.searching = true
				m.searchSeq++
				return m, m.cmdSearch(m.searchSeq, query)
			case "esc", "down":
				if len(m.searchResults) > 0 {
					m.searchTyping = false
					m.searchInput.Blur()
				}
				return m, nil
			}
		}

		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, cmd
	}

	if !isKey {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.searchIdx > 0 {
			m.searchIdx--
		}
	case "down", "j":
		if m.searchIdx < len(m.searchResults)-1 {
			m.searchIdx++
		}
	case "/", "i", "esc":
		m.searchTyping = true
		m.searchInput.Focus()
		return m, nil
	case "enter":
		if m.searchIdx < 0 || m.searchIdx >= len(m.searchResults) {
			return m, nil
		}
		hit := m.searchResults[m.searchIdx]
		cmd := m.openPaper(hit.Paper, hit.SubjectName, hit.TopicName)
		return m, cmd
	}
	return m, nil
}

func (m dashboardModel) viewSearchTab() (body, hotKeys string) {
	var b strings.Builder
	b.WriteString("Запрос: [")
	b.WriteString(m.searchInput.View())
	b.WriteString("]\n\n")

	switch {
	case m.searching:
		b.WriteString("Поиск...")
	case len(m.searchResults) > 0:
		b.WriteString("Работа                          │ Предмет        │ Тема\n")
		b.WriteString("────────────────────────────────┼────────────────┼──────────────────\n")
		for i, hit := range m.searchResults {
			cursor := " "
			if !m.searchTyping && i == m.searchIdx {
				cursor = ">"
			}
			b.WriteString(fmt.Sprintf(
				"%s %-30s │ %-14s │ %s\n",
				cursor,
				fitText(hit.Name, 30),
				fitText(hit.SubjectName, 14),
				fitText(hit.TopicName, 18),
			))
		}
	default:
		b.WriteString("Введите запрос и нажмите enter")
	}

	if m.searchTyping {
		hotKeys = "enter: искать │ esc/↓: к результатам │ tab: вкладка"
	} else {
		hotKeys = "enter: просмотр │ ↑/↓: навигация │ /: новый запрос │ tab: вкладка │ l: выйти"
	}
	return strings.TrimRight(b.String(), "\n"), hotKeys
}
