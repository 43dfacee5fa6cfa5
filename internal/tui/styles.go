package tui

import (
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/todo/internal/config"
)

// Styles holds every lipgloss style the TUI renders with
type Styles struct {
	Header      lipgloss.Style
	InputBox    lipgloss.Style
	Button      lipgloss.Style
	ButtonBusy  lipgloss.Style
	Error       lipgloss.Style
	TableHeader lipgloss.Style
	Row         lipgloss.Style
	SelectedRow lipgloss.Style
	Completed   lipgloss.Style
	Done        lipgloss.Style
	Pending     lipgloss.Style
	Subtle      lipgloss.Style
	EditBox     lipgloss.Style
	Delete      lipgloss.Style
	DetailBox   lipgloss.Style
	DetailTitle lipgloss.Style
}

// NewStyles builds the styles from a color scheme
func NewStyles(cs config.ColorScheme) Styles {
	cs.ApplyDefaults()

	accent := lipgloss.Color(cs.Accent)
	subtle := lipgloss.Color(cs.Subtle)
	normal := lipgloss.Color(cs.Normal)

	button := lipgloss.NewStyle().
		Padding(0, 2).
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color(cs.Create))

	return Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(cs.Title)).
			MarginBottom(1),
		InputBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(cs.Create)).
			Padding(0, 1),
		Button:     button,
		ButtonBusy: button.Background(subtle),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(cs.ErrorFg)).
			Background(lipgloss.Color(cs.ErrorBg)).
			Padding(0, 1),
		TableHeader: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color(cs.Border)),
		Row: lipgloss.NewStyle().Foreground(normal),
		SelectedRow: lipgloss.NewStyle().
			Foreground(normal).
			Background(lipgloss.Color(cs.SelectedBg)).
			Bold(true),
		Completed: lipgloss.NewStyle().
			Foreground(subtle).
			Strikethrough(true),
		Done:    lipgloss.NewStyle().Foreground(lipgloss.Color(cs.Completed)),
		Pending: lipgloss.NewStyle().Foreground(normal),
		Subtle:  lipgloss.NewStyle().Foreground(subtle),
		EditBox: lipgloss.NewStyle().
			Foreground(lipgloss.Color(cs.Edit)),
		Delete: lipgloss.NewStyle().
			Foreground(lipgloss.Color(cs.Delete)).
			Bold(true),
		DetailBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 2),
		DetailTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),
	}
}
