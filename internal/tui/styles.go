package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/tzy-lab/paperdesk/models"
)

// themeStyles carries the lipgloss styles of one display theme. The
// dashboard re-resolves them whenever the persisted theme changes.
type themeStyles struct {
	app      lipgloss.Style
	title    lipgloss.Style
	tab      lipgloss.Style
	tabOn    lipgloss.Style
	help     lipgloss.Style
	errText  lipgloss.Style
	overlay  lipgloss.Style
	selected lipgloss.Style
}

func stylesFor(theme models.Theme) themeStyles {
	accent := lipgloss.Color("63")
	faintFg := lipgloss.Color("240")
	if theme == models.ThemeDark {
		accent = lipgloss.Color("213")
		faintFg = lipgloss.Color("245")
	}

	return themeStyles{
		app:      lipgloss.NewStyle().Padding(1, 2),
		title:    lipgloss.NewStyle().Bold(true),
		tab:      lipgloss.NewStyle().Foreground(faintFg),
		tabOn:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		help:     lipgloss.NewStyle().Faint(true),
		errText:  lipgloss.NewStyle().Bold(true),
		overlay:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2),
		selected: lipgloss.NewStyle().Foreground(accent),
	}
}
