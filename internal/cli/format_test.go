package cli

import "testing"

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "0m"},
		{-5, "0m"},
		{45, "45m"},
		{60, "1h"},
		{90, "1h 30m"},
		{605, "10h 5m"},
	}
	for _, tt := range tests {
		if got := FormatMinutes(tt.minutes); got != tt.want {
			t.Errorf("FormatMinutes(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestFormatStreak(t *testing.T) {
	tests := []struct {
		days int
		want string
	}{
		{0, "0 days"},
		{1, "1 day"},
		{2, "2 days"},
		{365, "365 days"},
	}
	for _, tt := range tests {
		if got := FormatStreak(tt.days); got != tt.want {
			t.Errorf("FormatStreak(%d) = %q, want %q", tt.days, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-4200, "-4,200"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.n); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestFormatDayOfWeek(t *testing.T) {
	if got := FormatDayOfWeek(1); got != "Mon" {
		t.Errorf("FormatDayOfWeek(1) = %q, want Mon", got)
	}
	if got := FormatDayOfWeek(9); got != "???" {
		t.Errorf("FormatDayOfWeek(9) = %q, want ???", got)
	}
}

func TestRenderSparklineBounds(t *testing.T) {
	if got := RenderSparkline(nil); got != "" {
		t.Errorf("RenderSparkline(nil) = %q, want empty", got)
	}
	// All-zero input must not divide by zero.
	if got := RenderSparkline([]float64{0, 0, 0}); len([]rune(got)) != 3 {
		t.Errorf("RenderSparkline zeros = %q, want 3 runes", got)
	}
}
