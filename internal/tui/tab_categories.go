package tui

import (
	"fmt"
	"strings"

	"github.com/D3V3LOP3R-wizard/consist/internal/cli"
	"github.com/D3V3LOP3R-wizard/consist/internal/tui/components"
	"github.com/D3V3LOP3R-wizard/consist/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderCategoriesTab(cw int) string {
	t := theme.Active
	cats := a.snap.Categories

	headerStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	if len(cats) == 0 {
		dim := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
		body := dim.Render("No categories yet.") + "\n\n" +
			hintStyle.Render("[a] add your first category")
		return components.ContentCard("Categories", body, cw)
	}

	todayByCat := make(map[string]int, len(a.progress))
	for _, p := range a.progress {
		todayByCat[p.CategoryID] = p.Minutes
	}

	const nameW = 16

	var body strings.Builder
	body.WriteString(headerStyle.Render(fmt.Sprintf("    %-*s %8s %8s %8s %9s", nameW, "NAME", "GOAL", "TODAY", "STREAK", "TOTAL")))
	body.WriteString("\n")

	innerW := components.CardInnerWidth(cw)
	for i, c := range cats {
		bg := t.Surface
		if i == a.catCursor {
			bg = t.SurfaceBright
		}

		swatchStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Color)).Background(bg)
		nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(bg)
		colStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(bg)
		markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(bg)

		marker := "  "
		if i == a.catCursor {
			marker = "▸ "
			nameStyle = nameStyle.Bold(true)
		}

		row := markerStyle.Render(marker) +
			swatchStyle.Render("● ") +
			nameStyle.Render(fmt.Sprintf("%-*s", nameW, truncStr(c.Name, nameW))) +
			colStyle.Render(fmt.Sprintf("%8s", cli.FormatMinutes(c.Goal))) +
			colStyle.Render(fmt.Sprintf("%8s", cli.FormatMinutes(todayByCat[c.ID]))) +
			colStyle.Render(fmt.Sprintf("%8s", fmt.Sprintf("%dd", a.catStreaks[c.ID]))) +
			colStyle.Render(fmt.Sprintf("%9s", cli.FormatMinutes(a.totals[c.ID])))

		body.WriteString(row)
		if i == a.catCursor {
			// Extend the highlight to the card edge
			if padLen := innerW - lipgloss.Width(row); padLen > 0 {
				body.WriteString(lipgloss.NewStyle().Background(t.SurfaceBright).Render(strings.Repeat(" ", padLen)))
			}
		}
		body.WriteString("\n")
	}

	body.WriteString("\n")
	body.WriteString(hintStyle.Render("[j/k] move  [a] add  [e] edit  [l] log time  [d] delete"))

	return components.ContentCard("Categories", body.String(), cw)
}
