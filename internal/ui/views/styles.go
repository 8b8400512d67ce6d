package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Row         lipgloss.Style
	FocusedRow  lipgloss.Style
	DoneMark    lipgloss.Style
	PendingMark lipgloss.Style
	DoneTitle   lipgloss.Style
	EditBox     lipgloss.Style
	Status      lipgloss.Style
	Help        lipgloss.Style
	HelpSection lipgloss.Style
	HelpKey     lipgloss.Style
	HelpDesc    lipgloss.Style
	Main        lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Row: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		FocusedRow: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("226")),
		DoneMark:    lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
		PendingMark: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		DoneTitle:   lipgloss.NewStyle().Faint(true).Strikethrough(true),
		EditBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1).
			BorderForeground(lipgloss.Color("39")),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Help: lipgloss.NewStyle().Faint(true),
		HelpSection: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginTop(1),
		HelpKey:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		HelpDesc: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Main:     lipgloss.NewStyle().Padding(1, 2),
	}
}
