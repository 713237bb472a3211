package components

import (
	"strings"
	"testing"

	"github.com/D3V3LOP3R-wizard/consist/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
	theme.SetActive("flexoki-dark")
}

func TestLayoutRow(t *testing.T) {
	tests := []struct {
		total int
		n     int
		want  []int
	}{
		{100, 2, []int{50, 50}},
		{101, 2, []int{51, 50}},
		{100, 3, []int{34, 33, 33}},
		{10, 4, []int{3, 3, 2, 2}},
	}
	for _, tt := range tests {
		got := LayoutRow(tt.total, tt.n)
		if len(got) != len(tt.want) {
			t.Fatalf("LayoutRow(%d, %d) = %v, want %v", tt.total, tt.n, got, tt.want)
		}
		sum := 0
		for i, w := range got {
			if w != tt.want[i] {
				t.Fatalf("LayoutRow(%d, %d) = %v, want %v", tt.total, tt.n, got, tt.want)
			}
			sum += w
		}
		if sum != tt.total {
			t.Fatalf("LayoutRow(%d, %d) sums to %d", tt.total, tt.n, sum)
		}
	}

	if got := LayoutRow(100, 0); got != nil {
		t.Fatalf("LayoutRow(100, 0) = %v, want nil", got)
	}
}

func TestContentCardWidth(t *testing.T) {
	card := ContentCard("Title", "one line\nand another", 30)
	for i, line := range strings.Split(card, "\n") {
		if w := lipgloss.Width(line); w != 30 {
			t.Fatalf("line %d width = %d, want 30", i, w)
		}
	}
}

func TestCardRowEqualizesHeights(t *testing.T) {
	shortCard := ContentCard("Short", "Content", 22)
	tallCard := ContentCard("Tall", "Line 1\nLine 2\nLine 3\nLine 4\nLine 5", 22)

	shortLines := len(strings.Split(shortCard, "\n"))
	tallLines := len(strings.Split(tallCard, "\n"))
	if shortLines >= tallLines {
		t.Fatal("setup: short card should be shorter than tall card")
	}

	joined := CardRow([]string{tallCard, shortCard})
	lines := strings.Split(joined, "\n")

	if len(lines) != tallLines {
		t.Fatalf("joined height = %d, want %d (tallest card)", len(lines), tallLines)
	}

	// Every joined line spans both cards
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 44 {
			t.Fatalf("line %d width = %d, want 44", i, w)
		}
	}
}

func TestMetricCardRowSpansTotalWidth(t *testing.T) {
	cards := []struct{ Label, Value, Sub string }{
		{"Streak", "12 days", "best 30 days"},
		{"Today", "45m", "2 of 3 goals"},
		{"Entries", "1,204", "all time"},
	}

	row := MetricCardRow(cards, 90)
	for i, line := range strings.Split(row, "\n") {
		if w := lipgloss.Width(line); w != 90 {
			t.Fatalf("line %d width = %d, want 90", i, w)
		}
	}

	if got := MetricCardRow(nil, 90); got != "" {
		t.Fatalf("MetricCardRow(nil) = %q, want empty", got)
	}
}

func TestCardInnerWidth(t *testing.T) {
	if got := CardInnerWidth(30); got != 26 {
		t.Fatalf("CardInnerWidth(30) = %d, want 26", got)
	}
	// Floors at a usable minimum
	if got := CardInnerWidth(5); got != 10 {
		t.Fatalf("CardInnerWidth(5) = %d, want 10", got)
	}
}
