package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestChartTickStep(t *testing.T) {
	tests := []struct {
		maxVal float64
		want   float64
	}{
		{0, 1},
		{7, 1},
		{50, 10},
		{100, 20},
		{480, 50},
		{1200, 200},
	}
	for _, tt := range tests {
		if got := chartTickStep(tt.maxVal); got != tt.want {
			t.Errorf("chartTickStep(%v) = %v, want %v", tt.maxVal, got, tt.want)
		}
	}
}

func TestFormatChartLabel(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{45, "45"},
		{120, "120"},
		{1000, "1k"},
		{1500, "1.5k"},
		{2000, "2k"},
		{0.5, "0.50"},
	}
	for _, tt := range tests {
		if got := formatChartLabel(tt.v); got != tt.want {
			t.Errorf("formatChartLabel(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline(nil, lipgloss.Color("#ffffff")); got != "" {
		t.Fatalf("Sparkline(nil) = %q, want empty", got)
	}

	s := Sparkline([]float64{0, 1, 2, 3, 4}, lipgloss.Color("#ffffff"))
	if w := lipgloss.Width(s); w != 5 {
		t.Fatalf("Sparkline width = %d, want 5", w)
	}
}

func TestBarChartNarrowFallsBackToSparkline(t *testing.T) {
	out := BarChart([]float64{1, 2, 3}, nil, lipgloss.Color("#ffffff"), 10, 5)
	if h := lipgloss.Height(out); h != 1 {
		t.Fatalf("narrow chart height = %d, want 1 (sparkline)", h)
	}
}

func TestBarChartGeometry(t *testing.T) {
	values := []float64{30, 60, 45, 0, 90, 120, 75}
	labels := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	width, height := 40, 10

	out := BarChart(values, labels, lipgloss.Color("#ffffff"), width, height)

	if !strings.Contains(out, "└") || !strings.Contains(out, "│") {
		t.Fatalf("chart missing axis runes:\n%s", out)
	}
	// Peak of 120 rounds to a 40-minute tick step.
	if !strings.Contains(out, "40") || !strings.Contains(out, "120") {
		t.Fatalf("chart missing y-axis ticks:\n%s", out)
	}
	if !strings.Contains(out, "Mon") || !strings.Contains(out, "Sun") {
		t.Fatalf("chart missing x-axis labels:\n%s", out)
	}

	for i, line := range strings.Split(out, "\n") {
		if w := lipgloss.Width(line); w > width {
			t.Errorf("line %d width = %d, exceeds %d", i, w, width)
		}
	}
	if h := lipgloss.Height(out); h > height+2 {
		t.Fatalf("chart height = %d, want at most %d", h, height+2)
	}
}
