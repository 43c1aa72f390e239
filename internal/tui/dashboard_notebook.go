package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tzy-lab/paperdesk/models"
)

func (m dashboardModel) updateNotebookTab(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.noteIdx > 0 {
			m.noteIdx--
		}
	case "down", "j":
		if m.noteIdx < len(m.notes)-1 {
			m.noteIdx++
		}
	case "a":
		m.startNoteForm(models.Note{})
		return m, textinput.Blink
	case "e", "enter":
		note, ok := m.currentNote()
		if !ok {
			m.status = "Заметок нет"
			return m, nil
		}
		// форма открывается со свежей копией из хранилища
		return m, m.cmdFetchNote(note.ID)
	case "ctrl+d":
		note, ok := m.currentNote()
		if !ok {
			m.status = "Заметок нет"
			return m, nil
		}
		return m, m.cmdDeleteNote(note.ID)
	}
	return m, nil
}

func (m dashboardModel) currentNote() (models.Note, bool) {
	if len(m.notes) == 0 || m.noteIdx < 0 || m.noteIdx >= len(m.notes) {
		return models.Note{}, false
	}
	return m.notes[m.noteIdx], true
}

func (m *dashboardModel) startNoteForm(note models.Note) {
	title := textinput.New()
	title.Placeholder = "Заголовок"
	title.Width = 40
	title.SetValue(note.Title)
	title.Focus()

	subject := textinput.New()
	subject.Placeholder = "Предмет (ключ, можно пусто)"
	subject.Width = 40
	subject.SetValue(note.SubjectKey)

	body := textarea.New()
	body.Placeholder = "Текст заметки"
	body.SetWidth(54)
	body.SetHeight(6)
	body.SetValue(note.Body)

	m.noteInputs = []textinput.Model{title, subject}
	m.noteBody = body
	m.noteFocus = 0
	m.noteEditID = note.ID
	m.noteCreated = note.CreatedAt
	m.noteSaving = false
	m.noteEditing = true
	m.errMsg = ""
	m.status = ""
}

func (m dashboardModel) updateNoteForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.noteEditing = false
			m.noteSaving = false
			m.errMsg = ""
			return m, nil
		case "tab":
			m.noteFocusNext()
			return m, nil
		case "shift+tab":
			m.noteFocusPrev()
			return m, nil
		case "ctrl+s":
			if m.noteSaving {
				return m, nil
			}

			title := strings.TrimSpace(m.noteInputs[0].Value())
			if title == "" {
				m.errMsg = "нужен заголовок"
				return m, nil
			}

			note := models.Note{
				ID:         m.noteEditID,
				SubjectKey: strings.TrimSpace(m.noteInputs[1].Value()),
				Title:      title,
				Body:       m.noteBody.Value(),
				CreatedAt:  m.noteCreated,
			}

			m.errMsg = ""
			m.noteSaving = true
			return m, m.cmdSaveNote(note)
		}
	}

	var cmd tea.Cmd
	if m.noteFocus < len(m.noteInputs) {
		m.noteInputs[m.noteFocus], cmd = m.noteInputs[m.noteFocus].Update(msg)
	} else {
		m.noteBody, cmd = m.noteBody.Update(msg)
	}
	return m, cmd
}

func (m *dashboardModel) noteFocusNext() {
	m.noteBlurFocused()
	m.noteFocus = (m.noteFocus + 1) % (len(m.noteInputs) + 1)
	m.noteFocusFocused()
}

func (m *dashboardModel) noteFocusPrev() {
	m.noteBlurFocused()
	m.noteFocus = (m.noteFocus - 1 + len(m.noteInputs) + 1) % (len(m.noteInputs) + 1)
	m.noteFocusFocused()
}

func (m *dashboardModel) noteBlurFocused() {
	if m.noteFocus < len(m.noteInputs) {
		m.noteInputs[m.noteFocus].Blur()
	} else {
		m.noteBody.Blur()
	}
}

func (m *dashboardModel) noteFocusFocused() {
	if m.noteFocus < len(m.noteInputs) {
		m.noteInputs[m.noteFocus].Focus()
	} else {
		m.noteBody.Focus()
	}
}

func (m dashboardModel) viewNotebookTab() (body, hotKeys string) {
	if len(m.notes) == 0 {
		return "Заметок нет", "a: добавить │ tab: вкладка │ l: выйти"
	}

	var b strings.Builder
	b.WriteString("Заголовок                       │ Предмет    │ Обновлена\n")
	b.WriteString("────────────────────────────────┼────────────┼──────────────────\n")
	for i, n := range m.notes {
		cursor := " "
		if i == m.noteIdx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf(
			"%s %-30s │ %-10s │ %s\n",
			cursor,
			fitText(n.Title, 30),
			fitText(valueOrDash(n.SubjectKey), 10),
			n.UpdatedAt.Format("02.01.2006 15:04"),
		))
	}
	return strings.TrimRight(b.String(), "\n"), "a: добавить │ enter/e: изменить │ ctrl+d: удалить │ ↑/↓: навигация │ l: выйти"
}

func (m dashboardModel) viewNoteForm() string {
	title := "НОВАЯ ЗАМЕТКА"
	if m.noteEditID != "" {
		title = "ИЗМЕНЕНИЕ ЗАМЕТКИ"
	}

	var b strings.Builder
	b.WriteString("Заголовок : [ " + m.noteInputs[0].View() + " ]\n")
	b.WriteString("Предмет   : [ " + m.noteInputs[1].View() + " ]\n")
	b.WriteString("Текст:\n")
	b.WriteString(m.noteBody.View())
	if m.errMsg != "" {
		b.WriteString("\n\nОшибка: " + m.errMsg)
	}
	if m.noteSaving {
		b.WriteString("\n\nСохранение...")
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), "tab: след. поле │ ctrl+s: сохранить │ esc: отмена")
}
