// Package tui provides the interactive Bubble Tea dashboard for consist.
package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/D3V3LOP3R-wizard/consist/internal/analytics"
	"github.com/D3V3LOP3R-wizard/consist/internal/cli"
	"github.com/D3V3LOP3R-wizard/consist/internal/config"
	"github.com/D3V3LOP3R-wizard/consist/internal/model"
	"github.com/D3V3LOP3R-wizard/consist/internal/store"
	"github.com/D3V3LOP3R-wizard/consist/internal/tui/components"
	"github.com/D3V3LOP3R-wizard/consist/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// App is the root Bubble Tea model.
type App struct {
	// Data
	st   *store.Store
	cfg  config.Config
	snap model.Snapshot

	// Pre-computed per snapshot
	stats      model.StreakStats
	progress   []model.GoalProgress
	daily      []model.DailyTotal
	dist       []model.CategoryTotal
	week       []model.WeekDay
	month      model.MonthStats
	totals     map[string]int
	catStreaks map[string]int

	// Calendar tab month cursor
	calYear  int
	calMonth time.Month

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	catCursor int

	// Status bar flash, persists until the next action replaces it
	flash    string
	flashErr bool

	// Modal form (add / edit / log / delete)
	form     *huh.Form
	formKind formKind
	formVals *formValues
	editID   string // category targeted by edit, log or delete

	// First-run setup wizard
	needSetup bool
	setup     setupState

	chartDays int
}

const (
	minTerminalWidth = 70
	compactWidth     = 100
	maxContentWidth  = 140

	minContentHeight = 5
)

// NewApp creates the root TUI model. The store is already open, all data
// access from here on is synchronous.
func NewApp(st *store.Store, cfg config.Config) App {
	now := time.Now()
	a := App{
		st:        st,
		cfg:       cfg,
		needSetup: !config.Exists(),
		chartDays: config.ChartDays(cfg),
		calYear:   now.Year(),
		calMonth:  now.Month(),
	}
	if a.needSetup {
		a.setup = newSetupState()
	}
	a.recompute()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.EnableMouseCellMotion // Enable mouse support
}

func (a *App) recompute() {
	today := time.Now()
	a.snap = a.st.Snapshot()

	a.stats = analytics.Overview(a.snap, today)
	a.progress = analytics.TodayProgress(a.snap, today)
	a.daily = analytics.DailyTotals(a.snap, a.chartDays, today)
	a.dist = analytics.CategoryDistribution(a.snap)
	a.week = analytics.Week(a.snap, today)
	a.month = analytics.Month(a.snap, a.calYear, a.calMonth)
	a.totals = analytics.CategoryTotals(a.snap)

	a.catStreaks = make(map[string]int, len(a.snap.Categories))
	for _, c := range a.snap.Categories {
		a.catStreaks[c.ID] = analytics.CategoryStreak(a.snap, c.ID, today)
	}

	// Clamp the categories cursor to the new list bounds
	if a.catCursor >= len(a.snap.Categories) {
		a.catCursor = len(a.snap.Categories) - 1
	}
	if a.catCursor < 0 {
		a.catCursor = 0
	}
}

func (a *App) setFlash(msg string, isErr bool) {
	a.flash = msg
	a.flashErr = isErr
}

// calendarStep moves the calendar tab by the given number of months.
func (a *App) calendarStep(months int) {
	m := time.Date(a.calYear, a.calMonth, 1, 0, 0, 0, 0, time.UTC).AddDate(0, months, 0)
	a.calYear = m.Year()
	a.calMonth = m.Month()
	a.recompute()
}

func (a App) cursorCategory() (model.Category, bool) {
	cats := a.snap.Categories
	if a.catCursor < 0 || a.catCursor >= len(cats) {
		return model.Category{}, false
	}
	return cats[a.catCursor], true
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Forward to the active modal form
		if a.form != nil {
			a.form = a.form.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if a.showHelp || a.needSetup || a.form != nil {
			return a, nil
		}

		switch msg.Button {
		case tea.MouseButtonWheelUp:
			switch a.activeTab {
			case 1:
				if a.catCursor > 0 {
					a.catCursor--
				}
			case 2:
				a.calendarStep(-1)
			}
			return a, nil

		case tea.MouseButtonWheelDown:
			switch a.activeTab {
			case 1:
				if a.catCursor < len(a.snap.Categories)-1 {
					a.catCursor++
				}
			case 2:
				a.calendarStep(1)
			}
			return a, nil

		case tea.MouseButtonLeft:
			// Tab bar is the first row
			if msg.Y == 0 {
				if tab := a.tabAtX(msg.X); tab >= 0 && tab < len(components.Tabs) {
					a.activeTab = tab
				}
			}
			return a, nil
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		// Global: quit
		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// First-run setup wizard intercepts all keys
		if a.needSetup {
			return a.updateSetup(msg)
		}

		// Modal form intercepts all keys
		if a.form != nil {
			return a.updateForm(msg)
		}

		// Help toggle
		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}

		// Dismiss help
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		// Categories tab owns list movement and the a/e/l/d actions
		if a.activeTab == 1 {
			switch key {
			case "j", "down":
				if a.catCursor < len(a.snap.Categories)-1 {
					a.catCursor++
				}
				return a, nil
			case "k", "up":
				if a.catCursor > 0 {
					a.catCursor--
				}
				return a, nil
			case "g":
				a.catCursor = 0
				return a, nil
			case "G":
				a.catCursor = len(a.snap.Categories) - 1
				if a.catCursor < 0 {
					a.catCursor = 0
				}
				return a, nil
			case "a":
				a.editID = ""
				a.formVals = &formValues{goal: "30"}
				return a, a.openForm(formAddCategory, newCategoryForm("New category", a.formVals))
			case "e", "enter":
				c, ok := a.cursorCategory()
				if !ok {
					return a, nil
				}
				a.editID = c.ID
				a.formVals = &formValues{name: c.Name, goal: strconv.Itoa(c.Goal), color: c.Color}
				return a, a.openForm(formEditCategory, newCategoryForm("Edit category", a.formVals))
			case "l":
				c, ok := a.cursorCategory()
				if !ok {
					return a, nil
				}
				a.editID = c.ID
				a.formVals = &formValues{date: time.Now().Format("2006-01-02")}
				return a, a.openForm(formLogEntry, newLogForm(c.Name, a.formVals))
			case "d":
				c, ok := a.cursorCategory()
				if !ok {
					return a, nil
				}
				a.editID = c.ID
				entries := 0
				for _, l := range a.snap.Logs {
					if l.CategoryID == c.ID {
						entries++
					}
				}
				a.formVals = &formValues{}
				return a, a.openForm(formDeleteCategory, newDeleteForm(c.Name, entries, a.formVals))
			}
		}

		// Calendar tab owns month navigation
		if a.activeTab == 2 {
			switch key {
			case "left", "h":
				a.calendarStep(-1)
				return a, nil
			case "right", "l":
				a.calendarStep(1)
				return a, nil
			case "t":
				now := time.Now()
				a.calYear = now.Year()
				a.calMonth = now.Month()
				a.recompute()
				return a, nil
			}
		}

		// Global actions
		switch key {
		case "q":
			return a, tea.Quit
		case "s":
			if err := a.st.Save(); err != nil {
				a.setFlash("save failed: "+err.Error(), true)
			} else {
				a.setFlash("✓ saved", false)
			}
			return a, nil
		case "r":
			a.st.Reload()
			a.recompute()
			a.setFlash("reloaded from disk", false)
			return a, nil
		}

		// Tab navigation
		switch key {
		case "left", "shift+tab":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		case "right", "tab":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		case "1", "2", "3", "4":
			a.activeTab = int(key[0] - '1')
		default:
			if len(key) == 1 {
				if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
					a.activeTab = idx
				}
			}
		}
		return a, nil
	}

	// Forward unhandled messages to the active modal (cursor blinks, etc.)
	if a.needSetup {
		return a.updateSetup(msg)
	}
	if a.form != nil {
		return a.updateForm(msg)
	}

	return a, nil
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	if a.form.State == huh.StateCompleted {
		a.applyForm()
		a.form = nil
		a.formKind = formNone
		return a, nil
	}

	if a.form.State == huh.StateAborted {
		a.form = nil
		a.formKind = formNone
		return a, nil
	}

	return a, cmd
}

func (a *App) openForm(kind formKind, form *huh.Form) tea.Cmd {
	a.formKind = kind
	a.form = form
	if a.width > 0 {
		a.form = a.form.WithWidth(a.width).WithHeight(a.height)
	}
	return a.form.Init()
}

// applyForm commits a completed modal form to the store.
func (a *App) applyForm() {
	v := *a.formVals

	switch a.formKind {
	case formAddCategory:
		color := strings.TrimSpace(v.color)
		if color == "" {
			color = model.DefaultPalette[len(a.snap.Categories)%len(model.DefaultPalette)]
		}
		c, err := a.st.AddCategory(strings.TrimSpace(v.name), v.goalMinutes(), color)
		if err != nil {
			a.setFlash(err.Error(), true)
			return
		}
		a.setFlash("added "+c.Name, false)

	case formEditCategory:
		cur, ok := a.st.Category(a.editID)
		if !ok {
			a.setFlash("category no longer exists", true)
			return
		}
		color := strings.TrimSpace(v.color)
		if color == "" {
			color = cur.Color
		}
		if err := a.st.EditCategory(a.editID, strings.TrimSpace(v.name), v.goalMinutes(), color); err != nil {
			a.setFlash(err.Error(), true)
			return
		}
		a.setFlash("updated "+strings.TrimSpace(v.name), false)

	case formLogEntry:
		c, ok := a.st.Category(a.editID)
		if !ok {
			a.setFlash("category no longer exists", true)
			return
		}
		if _, err := a.st.AddLog(a.editID, v.loggedMinutes(), strings.TrimSpace(v.date), strings.TrimSpace(v.note)); err != nil {
			a.setFlash(err.Error(), true)
			return
		}
		a.setFlash(fmt.Sprintf("logged %s to %s", cli.FormatMinutes(v.loggedMinutes()), c.Name), false)

	case formDeleteCategory:
		if !v.confirm {
			return
		}
		c, _ := a.st.Category(a.editID)
		if err := a.st.DeleteCategory(a.editID); err != nil {
			a.setFlash(err.Error(), true)
			return
		}
		a.setFlash("deleted "+c.Name, false)
	}

	a.recompute()
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	// First-run setup wizard
	if a.needSetup {
		return a.renderSetup()
	}

	// Modal form overlay
	if a.form != nil {
		return a.form.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  consist needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active
	h := a.height
	w := a.width

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	navBindings := []struct{ key, desc string }{
		{"d c l a", "Jump to tab"},
		{"1-4", "Jump to tab"},
		{"← → tab", "Cycle tabs"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range navBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Categories tab"))
	b.WriteString("\n")
	catBindings := []struct{ key, desc string }{
		{"j k", "Move selection"},
		{"g G", "First / Last"},
		{"a", "Add category"},
		{"e Enter", "Edit selected"},
		{"l", "Log time"},
		{"d", "Delete (asks first)"},
	}
	for _, bind := range catBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Calendar tab"))
	b.WriteString("\n")
	calBindings := []struct{ key, desc string }{
		{"← → h l", "Change month"},
		{"t", "Current month"},
	}
	for _, bind := range calBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Data"))
	b.WriteString("\n")
	dataBindings := []struct{ key, desc string }{
		{"s", "Save to disk"},
		{"r", "Reload from disk"},
	}
	for _, bind := range dataBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Tab letters yield to the active tab's own keys."))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	// 1. Render header (tab bar + info pill)
	infoPillStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	infoAccentStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	infoStr := infoPillStyle.Render(" ") +
		infoAccentStyle.Render(time.Now().Format("Mon, Jan 2"))
	infoStr += infoPillStyle.Render(" │ ") +
		infoAccentStyle.Render(fmt.Sprintf("%dd chart", a.chartDays))
	infoStr += infoPillStyle.Render(" ")

	infoRowStyle := lipgloss.NewStyle().
		Background(t.Surface).
		Width(w)

	header := components.RenderTabBar(a.activeTab, w) + "\n" +
		infoRowStyle.Render(infoStr)

	// 2. Render status bar
	info := fmt.Sprintf("%d categories │ %d entries │ %s",
		len(a.snap.Categories), len(a.snap.Logs), a.st.Path())
	statusBar := components.RenderStatusBar(w, info, a.flash, a.flashErr)

	// 3. Calculate content zone height
	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	// 4. Render tab content
	var content string
	switch a.activeTab {
	case 0:
		content = a.renderDashboardTab(cw)
	case 1:
		content = a.renderCategoriesTab(cw)
	case 2:
		content = a.renderCalendarTab(cw)
	case 3:
		content = a.renderAnalyticsTab(cw)
	}

	// 5. Truncate + pad to exactly contentH lines
	content = padHeight(truncateHeight(content, contentH), contentH)

	// 6. Fill each line to full width with background (fixes gaps between cards)
	content = fillLinesWithBackground(content, cw, t.Background)

	// 7. Place content with background fill (handles centering when w > cw)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	// 8. Stack vertically
	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	// 9. Fill any remaining cells with the background color
	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

// chartDateLabels builds compact X-axis labels for a chronological date series.
// First label and month boundaries: month abbreviation. Everything else
// (including last): just the day number. days is sorted oldest-first.
func chartDateLabels(days []model.DailyTotal) []string {
	n := len(days)
	labels := make([]string, n)
	prevMonth := time.Month(0)
	for i, d := range days {
		m := d.Date.Month()
		day := d.Date.Day()
		switch {
		case i == 0:
			labels[i] = d.Date.Format("Jan")
		case i == n-1:
			labels[i] = strconv.Itoa(day)
		case m != prevMonth:
			labels[i] = d.Date.Format("Jan")
		default:
			labels[i] = strconv.Itoa(day)
		}
		prevMonth = m
	}
	return labels
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}

// fillLinesWithBackground pads each line to width w with background color.
// This ensures gaps between cards and empty lines have proper background fill.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// ─── Mouse Support ──────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 1 // leading space in the tab bar
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)

		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW

		// Separator is one column between tabs.
		if i < len(components.Tabs)-1 {
			pos++
		}
	}
	return -1
}
