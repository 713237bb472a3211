package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/D3V3LOP3R-wizard/consist/internal/cli"
	"github.com/D3V3LOP3R-wizard/consist/internal/model"
	"github.com/D3V3LOP3R-wizard/consist/internal/tui/components"
	"github.com/D3V3LOP3R-wizard/consist/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderDashboardTab(cw int) string {
	t := theme.Active
	stats := a.stats
	var b strings.Builder

	todayTotal := 0
	goalsDone := 0
	for _, p := range a.progress {
		todayTotal += p.Minutes
		if p.Goal > 0 && p.Minutes >= p.Goal {
			goalsDone++
		}
	}

	// Row 1: Metric cards
	cards := []struct{ Label, Value, Sub string }{
		{"Streak", cli.FormatStreak(stats.CurrentStreak), "best " + cli.FormatStreak(stats.LongestStreak)},
		{"This Month", fmt.Sprintf("%d%%", stats.MonthlyRate), "days complete"},
		{"Today", cli.FormatMinutes(todayTotal), fmt.Sprintf("%d of %d goals", goalsDone, len(a.progress))},
		{"Entries", cli.FormatNumber(int64(stats.TotalLogs)), "all time"},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: Daily activity chart
	if len(a.daily) > 0 {
		chartVals := make([]float64, len(a.daily))
		for i, d := range a.daily {
			chartVals[i] = float64(d.Minutes)
		}
		chartInnerW := components.CardInnerWidth(cw)
		b.WriteString(components.ContentCard(
			fmt.Sprintf("Daily Activity (%dd)", a.chartDays),
			components.BarChart(chartVals, chartDateLabels(a.daily), t.Blue, chartInnerW, 10),
			cw,
		))
		b.WriteString("\n")
	}

	// Row 3: Today's goals + This week
	halves := components.LayoutRow(cw, 2)

	goalsBody := a.renderGoalList(components.CardInnerWidth(halves[0]))
	weekBody := a.renderWeekList()

	goalsCard := components.ContentCard("Today's Goals", goalsBody, halves[0])
	weekCard := components.ContentCard("This Week", weekBody, halves[1])
	if a.isCompactLayout() {
		b.WriteString(components.ContentCard("Today's Goals", a.renderGoalList(components.CardInnerWidth(cw)), cw))
		b.WriteString("\n")
		b.WriteString(components.ContentCard("This Week", weekBody, cw))
	} else {
		b.WriteString(components.CardRow([]string{goalsCard, weekCard}))
	}

	return b.String()
}

func (a App) renderGoalList(innerW int) string {
	t := theme.Active

	if len(a.progress) == 0 {
		dim := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
		return dim.Render("No categories yet. Press c, then a to add one.")
	}

	nameW := 12
	// GoalBar appends up to "10h 59m/10h 59m" after the bar
	barW := innerW - nameW - 18
	if barW < 8 {
		barW = 8
	}

	var b strings.Builder
	for _, p := range a.progress {
		b.WriteString(components.GoalBar(truncStr(p.Name, nameW), p.Minutes, p.Goal, nameW, barW))
		b.WriteString("\n")
	}
	return b.String()
}

func (a App) renderWeekList() string {
	t := theme.Active

	markComplete := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)
	markPartial := lipgloss.NewStyle().Foreground(t.Yellow).Background(t.Surface)
	markEmpty := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	dayStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	todayStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	minStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)

	today := time.Now().Format("2006-01-02")

	var b strings.Builder
	for _, d := range a.week {
		var mark string
		switch d.State {
		case model.DayComplete:
			mark = markComplete.Render("✓")
		case model.DayPartial:
			mark = markPartial.Render("◐")
		default:
			mark = markEmpty.Render("·")
		}

		name := fmt.Sprintf("%s %2d", d.Date.Format("Mon"), d.Date.Day())
		style := dayStyle
		if d.Date.Format("2006-01-02") == today {
			style = todayStyle
		}

		fmt.Fprintf(&b, "%s %s  %s\n",
			mark,
			style.Render(fmt.Sprintf("%-7s", name)),
			minStyle.Render(cli.FormatMinutes(d.Minutes)))
	}
	return b.String()
}
