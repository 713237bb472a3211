package tui

import (
	"fmt"
	"strings"

	"github.com/D3V3LOP3R-wizard/consist/internal/cli"
	"github.com/D3V3LOP3R-wizard/consist/internal/tui/components"
	"github.com/D3V3LOP3R-wizard/consist/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderAnalyticsTab(cw int) string {
	t := theme.Active
	var b strings.Builder

	if len(a.snap.Categories) == 0 {
		dim := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
		return components.ContentCard("Time Split", dim.Render("Nothing to analyze yet."), cw)
	}

	// Row 1: Share of all logged time per category
	innerW := components.CardInnerWidth(cw)

	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	maxShare := 0.0
	for _, d := range a.dist {
		if d.SharePercent > maxShare {
			maxShare = d.SharePercent
		}
	}
	nameW := innerW / 3
	if nameW > 20 {
		nameW = 20
	}
	barMaxLen := innerW - nameW - 8
	if barMaxLen < 1 {
		barMaxLen = 1
	}

	var distBody strings.Builder
	for _, d := range a.dist {
		barLen := 0
		if maxShare > 0 {
			barLen = int(d.SharePercent / maxShare * float64(barMaxLen))
		}
		barStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(d.Color)).Background(t.Surface)
		fmt.Fprintf(&distBody, "%s %s %s\n",
			nameStyle.Render(fmt.Sprintf("%-*s", nameW, truncStr(d.Name, nameW))),
			barStyle.Render(strings.Repeat("█", barLen)),
			pctStyle.Render(fmt.Sprintf("%.0f%%", d.SharePercent)))
	}

	b.WriteString(components.ContentCard("Time Split", distBody.String(), cw))
	b.WriteString("\n")

	// Row 2: Per-category streaks + lifetime numbers
	streaksBody := a.renderStreakList()
	lifetimeBody := a.renderLifetime()

	if a.isCompactLayout() {
		b.WriteString(components.ContentCard("Streaks", streaksBody, cw))
		b.WriteString("\n")
		b.WriteString(components.ContentCard("Lifetime", lifetimeBody, cw))
	} else {
		halves := components.LayoutRow(cw, 2)
		streakCard := components.ContentCard("Streaks", streaksBody, halves[0])
		lifetimeCard := components.ContentCard("Lifetime", lifetimeBody, halves[1])
		b.WriteString(components.CardRow([]string{streakCard, lifetimeCard}))
	}

	return b.String()
}

func (a App) renderStreakList() string {
	t := theme.Active

	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	valStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	var b strings.Builder
	for _, c := range a.snap.Categories {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Color)).Background(t.Surface)
		fmt.Fprintf(&b, "%s %s %s\n",
			swatch.Render("●"),
			nameStyle.Render(fmt.Sprintf("%-16s", truncStr(c.Name, 16))),
			valStyle.Render(cli.FormatStreak(a.catStreaks[c.ID])))
	}
	return b.String()
}

func (a App) renderLifetime() string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)

	total := 0
	for _, d := range a.dist {
		total += d.Minutes
	}

	var b strings.Builder
	b.WriteString(labelStyle.Render("Total time      ") + valueStyle.Render(cli.FormatMinutes(total)) + "\n")
	b.WriteString(labelStyle.Render("Entries         ") + valueStyle.Render(cli.FormatNumber(int64(a.stats.TotalLogs))) + "\n")
	b.WriteString(labelStyle.Render("Categories      ") + valueStyle.Render(fmt.Sprintf("%d", len(a.snap.Categories))) + "\n")
	b.WriteString(labelStyle.Render("Current streak  ") + valueStyle.Render(cli.FormatStreak(a.stats.CurrentStreak)) + "\n")
	b.WriteString(labelStyle.Render("Longest streak  ") + valueStyle.Render(cli.FormatStreak(a.stats.LongestStreak)))

	return b.String()
}
