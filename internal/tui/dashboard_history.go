package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tzy-lab/paperdesk/models"
)

func (m dashboardModel) updateHistoryTab(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.historyIdx > 0 {
			m.historyIdx--
		}
	case "down", "j":
		if m.historyIdx < len(m.historyEntries)-1 {
			m.historyIdx++
		}
	case "r":
		m.loadingHistory = true
		return m, m.cmdLoadHistory()
	case "c":
		if len(m.historyEntries) == 0 {
			return m, nil
		}
		return m, m.cmdClearHistory()
	}
	return m, nil
}

func (m dashboardModel) viewHistoryTab() (body, hotKeys string) {
	if m.loadingHistory {
		return "Загрузка истории...", ""
	}
	if len(m.historyEntries) == 0 {
		return "История пуста", "r: обновить"
	}

	var b strings.Builder
	b.WriteString("Запись                          │ Тип     │ Визитов │ Последний визит\n")
	b.WriteString("────────────────────────────────┼─────────┼─────────┼──────────────────\n")
	for i, e := range m.historyEntries {
		cursor := " "
		if i == m.historyIdx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf(
			"%s %-30s │ %-7s │ %-7d │ %s\n",
			cursor,
			fitText(historyEntryTitle(e), 30),
			historyTypeLabel(e.Type),
			e.VisitCount,
			e.LastVisited.Format("02.01.2006 15:04"),
		))
	}
	return strings.TrimRight(b.String(), "\n"), "c: очистить │ r: обновить │ ↑/↓: навигация │ tab: вкладка │ l: выйти"
}

func historyEntryTitle(e models.HistoryEntry) string {
	switch e.Type {
	case models.HistorySubject:
		if e.Icon != "" {
			return e.Icon + " " + e.Name
		}
		return e.Name
	case models.HistoryTopic:
		return e.SubjectName + " / " + e.Name
	case models.HistoryFile:
		return e.Name
	default:
		return e.Name
	}
}

func historyTypeLabel(t models.HistoryEntryType) string {
	switch t {
	case models.HistorySubject:
		return "предмет"
	case models.HistoryTopic:
		return "тема"
	case models.HistoryFile:
		return "файл"
	default:
		return string(t)
	}
}
