package tui

import (
	"fmt"
	"strings"

	"github.com/D3V3LOP3R-wizard/consist/internal/config"
	"github.com/D3V3LOP3R-wizard/consist/internal/store"
	"github.com/D3V3LOP3R-wizard/consist/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// setupState tracks the first-run setup wizard state.
type setupState struct {
	step        int // 0=welcome, 1=data file, 2=chart days, 3=theme, 4=done
	pathIn      textinput.Model
	daysChoice  int   // index into daysOptions
	themeChoice int   // index into theme.All
	saveErr     error // non-nil if config save failed
}

var daysOptions = []struct {
	label string
	value int
}{
	{"7 days", 7},
	{"14 days", 14},
	{"30 days", 30},
}

func newSetupState() setupState {
	ti := textinput.New()
	ti.Placeholder = config.DataFile(config.DefaultConfig())
	ti.CharLimit = 256
	ti.Width = 50

	return setupState{pathIn: ti}
}

func (a App) updateSetup(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		// Cursor blinks and other ticks go to the text input
		var cmd tea.Cmd
		a.setup.pathIn, cmd = a.setup.pathIn.Update(msg)
		return a, cmd
	}

	switch key.Type {
	case tea.KeyCtrlC:
		return a, tea.Quit
	case tea.KeyEsc:
		// Skip the wizard, settings apply for this session only
		a.needSetup = false
		return a, nil
	}

	switch a.setup.step {
	case 0:
		if key.Type == tea.KeyEnter {
			a.setup.step = 1
			a.setup.pathIn.Focus()
			return a, textinput.Blink
		}

	case 1:
		if key.Type == tea.KeyEnter {
			a.setup.pathIn.Blur()
			a.setup.step = 2
			return a, nil
		}
		var cmd tea.Cmd
		a.setup.pathIn, cmd = a.setup.pathIn.Update(msg)
		return a, cmd

	case 2:
		switch key.String() {
		case "j", "down":
			if a.setup.daysChoice < len(daysOptions)-1 {
				a.setup.daysChoice++
			}
		case "k", "up":
			if a.setup.daysChoice > 0 {
				a.setup.daysChoice--
			}
		case "enter":
			a.setup.step = 3
		}

	case 3:
		switch key.String() {
		case "j", "down":
			if a.setup.themeChoice < len(theme.All)-1 {
				a.setup.themeChoice++
			}
		case "k", "up":
			if a.setup.themeChoice > 0 {
				a.setup.themeChoice--
			}
		case "enter":
			a.saveSetupConfig()
			a.setup.step = 4
		}

	case 4:
		if key.Type == tea.KeyEnter {
			a.needSetup = false
		}
	}

	return a, nil
}

func (a App) renderSetup() string {
	t := theme.Active
	ss := a.setup

	titleStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	accentStyle := lipgloss.NewStyle().Foreground(t.Accent)
	greenStyle := lipgloss.NewStyle().Foreground(t.Green)

	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(titleStyle.Render("  Welcome to consist!"))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render(fmt.Sprintf("  Found %s categories and %s entries in %s",
		valueStyle.Render(fmt.Sprintf("%d", len(a.snap.Categories))),
		valueStyle.Render(fmt.Sprintf("%d", len(a.snap.Logs))),
		valueStyle.Render(a.st.Path()))))
	b.WriteString("\n\n")

	switch ss.step {
	case 0: // Welcome
		b.WriteString(valueStyle.Render("  Let's set up a few things."))
		b.WriteString("\n\n")
		b.WriteString(accentStyle.Render("  Press Enter to continue"))

	case 1: // Data file
		b.WriteString(valueStyle.Render("  1. Data file location"))
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("     Your categories and log entries live in one JSON file."))
		b.WriteString("\n\n")
		b.WriteString("     ")
		b.WriteString(ss.pathIn.View())
		b.WriteString("\n\n")
		b.WriteString(labelStyle.Render("     Press Enter to continue (leave blank for the default)"))

	case 2: // Chart days
		b.WriteString(valueStyle.Render("  2. Activity chart range"))
		b.WriteString("\n\n")
		for i, opt := range daysOptions {
			if i == ss.daysChoice {
				b.WriteString(accentStyle.Render(fmt.Sprintf("     (o) %s", opt.label)))
			} else {
				b.WriteString(labelStyle.Render(fmt.Sprintf("     ( ) %s", opt.label)))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("     j/k to select, Enter to confirm"))

	case 3: // Theme
		b.WriteString(valueStyle.Render("  3. Color theme"))
		b.WriteString("\n\n")
		for i, th := range theme.All {
			if i == ss.themeChoice {
				b.WriteString(accentStyle.Render(fmt.Sprintf("     (o) %s", th.Name)))
			} else {
				b.WriteString(labelStyle.Render(fmt.Sprintf("     ( ) %s", th.Name)))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("     j/k to select, Enter to confirm"))

	case 4: // Done
		if ss.saveErr != nil {
			warnStyle := lipgloss.NewStyle().Foreground(t.Orange)
			b.WriteString(warnStyle.Render(fmt.Sprintf("  Could not save config: %s", ss.saveErr)))
			b.WriteString("\n")
			b.WriteString(labelStyle.Render("  Settings will apply for this session only."))
		} else {
			b.WriteString(greenStyle.Render("  All set!"))
			b.WriteString("\n\n")
			b.WriteString(labelStyle.Render(fmt.Sprintf("  Saved to %s", config.Path())))
			b.WriteString("\n")
			b.WriteString(labelStyle.Render("  Run `consist setup` anytime to reconfigure."))
		}
		b.WriteString("\n\n")
		b.WriteString(accentStyle.Render("  Press Enter to open the dashboard"))
	}

	return b.String()
}

func (a *App) saveSetupConfig() {
	cfg, _ := config.Load()

	path := strings.TrimSpace(a.setup.pathIn.Value())
	if path != "" {
		cfg.General.DataFile = path
	}

	if a.setup.daysChoice >= 0 && a.setup.daysChoice < len(daysOptions) {
		cfg.General.ChartDays = daysOptions[a.setup.daysChoice].value
		a.chartDays = cfg.General.ChartDays
	}

	if a.setup.themeChoice >= 0 && a.setup.themeChoice < len(theme.All) {
		cfg.Appearance.Theme = theme.All[a.setup.themeChoice].Name
		theme.SetActive(cfg.Appearance.Theme)
	}

	a.setup.saveErr = config.Save(cfg)

	if path != "" && path != a.st.Path() {
		a.st = store.Open(path)
		a.recompute()
	}
	a.cfg = cfg
}
