// Package styles provides reusable lipgloss-based terminal output
// components.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme holds lipgloss colors and styles for terminal output.
type Theme struct {
	Background lipgloss.Color
	Surface    lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Border     lipgloss.Color

	Error   lipgloss.Color
	Warning lipgloss.Color
	Success lipgloss.Color

	Title        lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style

	Badge      lipgloss.Style
	BadgeMuted lipgloss.Style

	Box       lipgloss.Style
	BoxHeader lipgloss.Style
}

// NewTheme creates the default dark theme.
func NewTheme() *Theme {
	t := &Theme{
		Background: lipgloss.Color("#0a0a0b"),
		Surface:    lipgloss.Color("#1a1a1b"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#909090"),
		Accent:     lipgloss.Color("#4ade80"),
		Border:     lipgloss.Color("#333333"),

		Error:   lipgloss.Color("#f87171"),
		Warning: lipgloss.Color("#fbbf24"),
		Success: lipgloss.Color("#4ade80"),
	}

	t.Title = lipgloss.NewStyle().Bold(true).Foreground(t.Text)
	t.Normal = lipgloss.NewStyle().Foreground(t.Text)
	t.Subtle = lipgloss.NewStyle().Foreground(t.Muted)
	t.Highlight = lipgloss.NewStyle().Foreground(t.Accent)
	t.ErrorStyle = lipgloss.NewStyle().Foreground(t.Error)
	t.WarningStyle = lipgloss.NewStyle().Foreground(t.Warning)
	t.SuccessStyle = lipgloss.NewStyle().Foreground(t.Success)

	t.Badge = lipgloss.NewStyle().Padding(0, 1).Background(t.Surface)
	t.BadgeMuted = lipgloss.NewStyle().Padding(0, 1).Background(t.Surface).Foreground(t.Muted)

	t.Box = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)
	t.BoxHeader = lipgloss.NewStyle().Bold(true).Foreground(t.Text)

	return t
}
