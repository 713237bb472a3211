package tui

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/D3V3LOP3R-wizard/consist/internal/model"
	"github.com/D3V3LOP3R-wizard/consist/internal/store"
	"github.com/D3V3LOP3R-wizard/consist/internal/tui/components"

	tea "github.com/charmbracelet/bubbletea"
)

func press(t *testing.T, a App, msg tea.Msg) App {
	t.Helper()
	m, _ := a.Update(msg)
	app, ok := m.(App)
	if !ok {
		t.Fatalf("Update returned %T, want App", m)
	}
	return app
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTabAtXMatchesTabWidths(t *testing.T) {
	for active := range components.Tabs {
		a := App{activeTab: active}
		pos := 1 // leading space

		for i, tab := range components.Tabs {
			w := tabWidthForTest(tab, i == active)
			x := pos + w/2 // midpoint inside this tab
			if got := a.tabAtX(x); got != i {
				t.Fatalf("active=%d x=%d -> tab=%d, want %d", active, x, got, i)
			}
			pos += w
			if i < len(components.Tabs)-1 {
				pos++ // separator
			}
		}
	}
}

// Independent width rules: active tabs render the bare name, inactive tabs
// gain a bracket pair around the shortcut letter.
func tabWidthForTest(tab components.Tab, active bool) int {
	w := len(tab.Name)
	if !active {
		w += 2
	}
	return w
}

func TestTabAtXOutsideTabs(t *testing.T) {
	a := App{}

	if got := a.tabAtX(0); got != -1 {
		t.Fatalf("tabAtX(0) = %d, want -1 (leading space)", got)
	}

	end := 1
	for i, tab := range components.Tabs {
		end += components.TabVisualWidth(tab, i == a.activeTab)
		if i < len(components.Tabs)-1 {
			end++
		}
	}
	if got := a.tabAtX(end); got != -1 {
		t.Fatalf("tabAtX(%d) = %d, want -1 (past last tab)", end, got)
	}
}

func TestLetterKeysJumpTabs(t *testing.T) {
	a := App{activeTab: 0}

	a = press(t, a, runeKey("c"))
	if a.activeTab != 1 {
		t.Fatalf("after c: activeTab = %d, want 1", a.activeTab)
	}

	a = press(t, a, tea.KeyMsg{Type: tea.KeyLeft})
	if a.activeTab != 0 {
		t.Fatalf("after left: activeTab = %d, want 0", a.activeTab)
	}

	a = press(t, a, runeKey("l"))
	if a.activeTab != 2 {
		t.Fatalf("after l: activeTab = %d, want 2", a.activeTab)
	}

	// On the calendar tab "a" is not claimed, so it still jumps
	a = press(t, a, runeKey("a"))
	if a.activeTab != 3 {
		t.Fatalf("after a: activeTab = %d, want 3", a.activeTab)
	}

	a = press(t, a, tea.KeyMsg{Type: tea.KeyRight})
	if a.activeTab != 0 {
		t.Fatalf("after right: activeTab = %d, want 0 (wrap)", a.activeTab)
	}

	a = press(t, a, runeKey("3"))
	if a.activeTab != 2 {
		t.Fatalf("after 3: activeTab = %d, want 2", a.activeTab)
	}

	a = press(t, a, tea.KeyMsg{Type: tea.KeyShiftTab})
	if a.activeTab != 1 {
		t.Fatalf("after shift+tab: activeTab = %d, want 1", a.activeTab)
	}

	a = press(t, a, tea.KeyMsg{Type: tea.KeyTab})
	if a.activeTab != 2 {
		t.Fatalf("after tab: activeTab = %d, want 2", a.activeTab)
	}
}

func TestCategoriesTabOwnsActionKeys(t *testing.T) {
	a := App{
		activeTab: 1,
		snap: model.Snapshot{
			Categories: []model.Category{{ID: "c1", Name: "Reading", Goal: 30, Color: "#667eea"}},
		},
	}

	// "d" opens the delete confirm instead of jumping to Dashboard
	a = press(t, a, runeKey("d"))
	if a.activeTab != 1 {
		t.Fatalf("after d: activeTab = %d, want 1 (no jump)", a.activeTab)
	}
	if a.form == nil || a.formKind != formDeleteCategory {
		t.Fatalf("after d: formKind = %v, want formDeleteCategory with open form", a.formKind)
	}
	if a.editID != "c1" {
		t.Fatalf("editID = %q, want %q", a.editID, "c1")
	}
}

func TestCategoriesTabWithoutRowsSwallowsActions(t *testing.T) {
	a := App{activeTab: 1}

	for _, key := range []string{"e", "l", "d"} {
		a = press(t, a, runeKey(key))
		if a.form != nil {
			t.Fatalf("after %s: form opened with no categories", key)
		}
		if a.activeTab != 1 {
			t.Fatalf("after %s: activeTab = %d, want 1", key, a.activeTab)
		}
	}
}

func TestCalendarMonthNavigation(t *testing.T) {
	st := store.Open(filepath.Join(t.TempDir(), "consist.json"))
	a := App{st: st, chartDays: 7, activeTab: 2, calYear: 2024, calMonth: time.January}

	a = press(t, a, tea.KeyMsg{Type: tea.KeyLeft})
	if a.calYear != 2023 || a.calMonth != time.December {
		t.Fatalf("after left: %d %s, want 2023 December", a.calYear, a.calMonth)
	}

	a = press(t, a, tea.KeyMsg{Type: tea.KeyRight})
	a = press(t, a, runeKey("l"))
	if a.calYear != 2024 || a.calMonth != time.February {
		t.Fatalf("after right+l: %d %s, want 2024 February", a.calYear, a.calMonth)
	}

	a = press(t, a, runeKey("t"))
	now := time.Now()
	if a.calYear != now.Year() || a.calMonth != now.Month() {
		t.Fatalf("after t: %d %s, want current month", a.calYear, a.calMonth)
	}
}

func TestWheelScrollsCategoryCursor(t *testing.T) {
	a := App{
		activeTab: 1,
		snap: model.Snapshot{
			Categories: []model.Category{
				{ID: "c1", Name: "Reading", Goal: 30, Color: "#667eea"},
				{ID: "c2", Name: "Guitar", Goal: 20, Color: "#48bb78"},
			},
		},
	}

	a = press(t, a, tea.MouseMsg{Button: tea.MouseButtonWheelDown})
	if a.catCursor != 1 {
		t.Fatalf("after wheel down: catCursor = %d, want 1", a.catCursor)
	}

	a = press(t, a, tea.MouseMsg{Button: tea.MouseButtonWheelDown})
	if a.catCursor != 1 {
		t.Fatalf("wheel down past end: catCursor = %d, want 1", a.catCursor)
	}

	a = press(t, a, tea.MouseMsg{Button: tea.MouseButtonWheelUp})
	if a.catCursor != 0 {
		t.Fatalf("after wheel up: catCursor = %d, want 0", a.catCursor)
	}
}

func TestClickTabBarSwitchesTab(t *testing.T) {
	a := App{activeTab: 0}

	// One column into the Categories tab
	x := 1 + components.TabVisualWidth(components.Tabs[0], true) + 1
	a = press(t, a, tea.MouseMsg{X: x, Y: 0, Button: tea.MouseButtonLeft})
	if a.activeTab != 1 {
		t.Fatalf("after click at x=%d: activeTab = %d, want 1", x, a.activeTab)
	}

	// Clicks below the tab bar do nothing
	a = press(t, a, tea.MouseMsg{X: x, Y: 5, Button: tea.MouseButtonLeft})
	if a.activeTab != 1 {
		t.Fatalf("click at y=5 changed tab to %d", a.activeTab)
	}
}

func TestRecomputeClampsCursor(t *testing.T) {
	st := store.Open(filepath.Join(t.TempDir(), "consist.json"))
	if _, err := st.AddCategory("Reading", 30, "#667eea"); err != nil {
		t.Fatalf("AddCategory: %v", err)
	}
	second, err := st.AddCategory("Guitar", 20, "#48bb78")
	if err != nil {
		t.Fatalf("AddCategory: %v", err)
	}

	a := App{st: st, chartDays: 7, catCursor: 1}
	a.recompute()
	if a.catCursor != 1 {
		t.Fatalf("catCursor = %d, want 1", a.catCursor)
	}

	if err := st.DeleteCategory(second.ID); err != nil {
		t.Fatalf("DeleteCategory: %v", err)
	}
	a.recompute()
	if a.catCursor != 0 {
		t.Fatalf("after delete: catCursor = %d, want 0", a.catCursor)
	}
}
