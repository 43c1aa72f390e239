// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tzy-lab/paperdesk/models"
)

// updateTextbookTab drives the subject → topic → paper hierarchy. The level
// is derived from which selections are set; "back" always collapses
// everything below the target level.
func (m dashboardModel) updateTextbookTab(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case m.selectedTopic != nil:
		return m.updatePaperList(keyMsg)
	case m.selectedSubject != nil:
		return m.updateTopicList(keyMsg)
	default:
		return m.updateSubjectList(keyMsg)
	}
}

func (m dashboardModel) updateSubjectList(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "up", "k":
		if m.subjectIdx > 0 {
			m.subjectIdx--
		}
	case "down", "j":
		if m.subjectIdx < len(m.subjects)-1 {
			m.subjectIdx++
		}
	case "r":
		if m.loadingCatalog {
			return m, nil
		}
		m.loadingCatalog = true
		return m, m.cmdLoadCatalog()
	case "p":
		if m.subjectIdx < 0 || m.subjectIdx >= len(m.subjects) {
			return m, nil
		}
		key := m.subjects[m.subjectIdx].Key
		keys := m.pinnedKeys()
		if m.pinnedSubjects[key] {
			kept := keys[:0]
			for _, k := range keys {
				if k != key {
					kept = append(kept, k)
				}
			}
			keys = kept
		} else {
			keys = append(keys, key)
		}
		return m, m.cmdSavePinned(keys)
	case "enter":
		if m.subjectIdx < 0 || m.subjectIdx >= len(m.subjects) {
			return m, nil
		}
		subject := m.subjects[m.subjectIdx]
		m.selectedSubject = &subject
		// выбор предмета сбрасывает всё ниже по иерархии
		m.selectedTopic = nil
		m.topicIdx = 0
		m.paperIdx = 0
		m.closePreview()

		entry := models.HistoryEntry{
			Type: models.HistorySubject,
			ID:   subject.Key,
			Name: subject.Name,
			Icon: subject.Icon,
		}
		return m, m.cmdRecordVisit(entry)
	}
	return m, nil
}

func (m dashboardModel) updateTopicList(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	topics := m.selectedSubject.Topics

	switch keyMsg.String() {
	case "up", "k":
		if m.topicIdx > 0 {
			m.topicIdx--
		}
	case "down", "j":
		if m.topicIdx < len(topics)-1 {
			m.topicIdx++
		}
	case "esc", "backspace":
		m.goBackToSubjects()
	case "enter":
		if m.topicIdx < 0 || m.topicIdx >= len(topics) {
			return m, nil
		}
		topic := topics[m.topicIdx]
		m.selectedTopic = &topic
		m.paperIdx = 0
		m.closePreview()

		entry := models.HistoryEntry{
			Type:        models.HistoryTopic,
			ID:          topic.ID,
			Name:        topic.Name,
			SubjectName: m.selectedSubject.Name,
			Papers:      len(topic.Papers),
		}
		return m, m.cmdRecordVisit(entry)
	}
	return m, nil
}

func (m dashboardModel) updatePaperList(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	papers := m.selectedTopic.Papers

	switch keyMsg.String() {
	case "up", "k":
		if m.paperIdx > 0 {
			m.paperIdx--
		}
	case "down", "j":
		if m.paperIdx < len(papers)-1 {
			m.paperIdx++
		}
	case "esc", "backspace":
		m.goBackToTopics()
	case "enter":
		if m.paperIdx < 0 || m.paperIdx >= len(papers) {
			return m, nil
		}
		cmd := m.openPaper(papers[m.paperIdx], m.selectedSubject.Name, m.selectedTopic.Name)
		return m, cmd
	}
	return m, nil
}

func (m *dashboardModel) goBackToSubjects() {
	m.selectedSubject = nil
	m.selectedTopic = nil
	m.topicIdx = 0
	m.paperIdx = 0
	m.closePreview()
}

func (m *dashboardModel) goBackToTopics() {
	m.selectedTopic = nil
	m.paperIdx = 0
	m.closePreview()
}

func (m dashboardModel) viewTextbookTab() (body, hotKeys string) {
	if m.loadingCatalog {
		return "Загрузка каталога...", "↑/↓: навигация"
	}

	switch {
	case m.selectedTopic != nil:
		return m.viewPaperList()
	case m.selectedSubject != nil:
		return m.viewTopicList()
	default:
		return m.viewSubjectList()
	}
}

func (m dashboardModel) viewSubjectList() (body, hotKeys string) {
	if len(m.subjects) == 0 {
		return "Каталог пуст", "r: обновить"
	}

	var b strings.Builder
	b.WriteString("Предмет                        │ Тем\n")
	b.WriteString("───────────────────────────────┼─────\n")
	for i, s := range m.subjects {
		cursor := " "
		if i == m.subjectIdx {
			cursor = ">"
		}
		name := s.Icon + " " + s.Name
		if m.pinnedSubjects[s.Key] {
			name = "★ " + name
		}
		b.WriteString(fmt.Sprintf("%s %-29s │ %d\n", cursor, fitText(name, 29), len(s.Topics)))
	}
	return strings.TrimRight(b.String(), "\n"), "enter: открыть │ p: закрепить │ ↑/↓: навигация │ r: обновить │ tab: вкладка │ l: выйти"
}

func (m dashboardModel) viewTopicList() (body, hotKeys string) {
	var b strings.Builder
	b.WriteString(m.selectedSubject.Icon + " " + m.selectedSubject.Name + "\n\n")

	if len(m.selectedSubject.Topics) == 0 {
		b.WriteString("Тем нет")
		return b.String(), "esc: назад"
	}

	b.WriteString("Тема                                  │ Работ\n")
	b.WriteString("──────────────────────────────────────┼───────\n")
	for i, t := range m.selectedSubject.Topics {
		cursor := " "
		if i == m.topicIdx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %-36s │ %d\n", cursor, fitText(t.Name, 36), len(t.Papers)))
	}
	return strings.TrimRight(b.String(), "\n"), "enter: открыть │ esc: к предметам │ ↑/↓: навигация"
}

func (m dashboardModel) viewPaperList() (body, hotKeys string) {
	var b strings.Builder
	b.WriteString(m.selectedSubject.Name + " / " + m.selectedTopic.Name + "\n\n")

	if len(m.selectedTopic.Papers) == 0 {
		b.WriteString("Работ нет")
		return b.String(), "esc: назад"
	}

	b.WriteString("Работа                                │ Год  │ Размер\n")
	b.WriteString("──────────────────────────────────────┼──────┼────────\n")
	for i, p := range m.selectedTopic.Papers {
		cursor := " "
		if i == m.paperIdx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %-36s │ %-4d │ %s\n", cursor, fitText(p.Name, 36), p.Year, formatSize(p.SizeBytes)))
	}
	return strings.TrimRight(b.String(), "\n"), "enter: просмотр │ esc: к темам │ ↑/↓: навигация"
}

// updateSyllabusTab is a read-only per-subject outline of the curriculum.
func (m dashboardModel) updateSyllabusTab(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.syllabusIdx > 0 {
			m.syllabusIdx--
		}
	case "down", "j":
		if m.syllabusIdx < len(m.subjects)-1 {
			m.syllabusIdx++
		}
	case "r":
		if m.loadingCatalog {
			return m, nil
		}
		m.loadingCatalog = true
		return m, m.cmdLoadCatalog()
	}
	return m, nil
}

func (m dashboardModel) viewSyllabusTab() (body, hotKeys string) {
	if m.loadingCatalog {
		return "Загрузка каталога...", ""
	}
	if len(m.subjects) == 0 {
		return "Каталог пуст", "r: обновить"
	}
	if m.syllabusIdx < 0 || m.syllabusIdx >= len(m.subjects) {
		return "Каталог пуст", "r: обновить"
	}

	subject := m.subjects[m.syllabusIdx]

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s (%d/%d)\n\n", subject.Icon, subject.Name, m.syllabusIdx+1, len(m.subjects)))
	if len(subject.Topics) == 0 {
		b.WriteString("Программа не заполнена")
	}
	totalPapers := 0
	for i, t := range subject.Topics {
		b.WriteString(fmt.Sprintf("%d. %s — %d работ(ы)\n", i+1, t.Name, len(t.Papers)))
		totalPapers += len(t.Papers)
	}
	if len(subject.Topics) > 0 {
		b.WriteString(fmt.Sprintf("\nВсего: %d тем, %d работ", len(subject.Topics), totalPapers))
	}

	return strings.TrimRight(b.String(), "\n"), "↑/↓: предмет │ r: обновить │ tab: вкладка │ l: выйти"
}

func (m dashboardModel) viewPreview() string {
	p := m.viewingFile

	var b strings.Builder
	b.WriteString("Предмет   : " + valueOrDash(m.previewSubject) + "\n")
	b.WriteString("Тема      : " + valueOrDash(m.previewTopic) + "\n")
	b.WriteString("Год       : ")
	if p.Year > 0 {
		b.WriteString(fmt.Sprintf("%d", p.Year))
	} else {
		b.WriteString("-")
	}
	b.WriteString("\n")
	b.WriteString("Размер    : " + formatSize(p.SizeBytes) + "\n")
	b.WriteString("Файл      : " + valueOrDash(p.FileURL) + "\n\n")
	b.WriteString("Время просмотра: " + formatElapsed(m.viewElapsed))

	return renderPage("ПРОСМОТР: "+p.Name, b.String(), "c: копировать ссылку │ esc: закрыть")
}
