package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/D3V3LOP3R-wizard/consist/internal/tui/components"
	"github.com/D3V3LOP3R-wizard/consist/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderCalendarTab(cw int) string {
	t := theme.Active
	m := a.month

	title := fmt.Sprintf("%s %d", m.Month, m.Year)
	gridBody := a.renderMonthGrid()
	summaryBody := a.renderMonthSummary(components.CardInnerWidth(components.LayoutRow(cw, 2)[1]))

	var b strings.Builder
	if a.isCompactLayout() {
		b.WriteString(components.ContentCard(title, gridBody, cw))
		b.WriteString("\n")
		b.WriteString(components.ContentCard("Month Summary", a.renderMonthSummary(components.CardInnerWidth(cw)), cw))
	} else {
		halves := components.LayoutRow(cw, 2)
		gridCard := components.ContentCard(title, gridBody, halves[0])
		summaryCard := components.ContentCard("Month Summary", summaryBody, halves[1])
		b.WriteString(components.CardRow([]string{gridCard, summaryCard}))
	}

	return b.String()
}

func (a App) renderMonthGrid() string {
	t := theme.Active
	m := a.month

	headStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	now := time.Now()
	thisMonth := now.Year() == m.Year && now.Month() == m.Month

	var b strings.Builder
	b.WriteString(headStyle.Render("Mo Tu We Th Fr Sa Su"))
	b.WriteString("\n")

	col := 0
	for c := 0; c < m.FirstWeekday; c++ {
		b.WriteString(spaceStyle.Render("   "))
		col++
	}
	for day := 1; day <= m.DaysInMonth; day++ {
		st := lipgloss.NewStyle().
			Foreground(t.DayColor(m.CompleteDays[day], m.LoggedDays[day])).
			Background(t.Surface)
		if thisMonth && day == now.Day() {
			st = st.Background(t.SurfaceBright).Bold(true)
		}
		b.WriteString(st.Render(fmt.Sprintf("%2d", day)))
		b.WriteString(spaceStyle.Render(" "))
		col++
		if col == 7 {
			b.WriteString("\n")
			col = 0
		}
	}
	if col != 0 {
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(legendEntry(t.Green, "complete"))
	b.WriteString(spaceStyle.Render("  "))
	b.WriteString(legendEntry(t.Yellow, "partial"))
	b.WriteString(spaceStyle.Render("  "))
	b.WriteString(legendEntry(t.TextDim, "none"))
	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render("[←/→] change month  [t] current month"))

	return b.String()
}

func legendEntry(color lipgloss.Color, label string) string {
	t := theme.Active
	dot := lipgloss.NewStyle().Foreground(color).Background(t.Surface)
	text := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	return dot.Render("●") + text.Render(" "+label)
}

func (a App) renderMonthSummary(innerW int) string {
	t := theme.Active
	m := a.month

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)

	barW := innerW - 6
	if barW > 30 {
		barW = 30
	}
	if barW < 10 {
		barW = 10
	}

	var b strings.Builder
	b.WriteString(labelStyle.Render("Complete days  ") +
		valueStyle.Render(fmt.Sprintf("%d of %d", len(m.CompleteDays), m.DaysInMonth)))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Logged days    ") +
		valueStyle.Render(fmt.Sprintf("%d", len(m.LoggedDays))))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("Completion"))
	b.WriteString("\n")
	b.WriteString(components.ProgressBar(float64(m.CompletionRate)/100, barW))
	b.WriteString("\n")

	return b.String()
}
