package components

import (
	"github.com/D3V3LOP3R-wizard/consist/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar: key hints on the left, an
// optional flash message (save/reload outcome) in the middle, and the data
// file on the right. The flash persists until the next action replaces it.
func RenderStatusBar(width int, info, flash string, flashErr bool) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " [?]help  [s]ave  [q]uit"
	if flash != "" {
		flashStyle := lipgloss.NewStyle().Foreground(t.Green)
		if flashErr {
			flashStyle = lipgloss.NewStyle().Foreground(t.Red)
		}
		left += "  " + flashStyle.Render(flash)
	}

	right := ""
	if info != "" {
		right = info + " "
	}

	// Pad middle
	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	bar := left
	for i := 0; i < padding; i++ {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}
