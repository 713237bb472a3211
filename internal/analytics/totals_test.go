package analytics

import (
	"testing"

	"github.com/D3V3LOP3R-wizard/consist/internal/model"
)

func TestCategoryTotals_SumsAcrossEntries(t *testing.T) {
	snap := model.Snapshot{
		Categories: []model.Category{cat("c1", 30), cat("c2", 20)},
		Logs: []model.LogEntry{
			entry("c1", "2024-01-01", 30),
			entry("c1", "2024-01-02", 45),
			entry("c2", "2024-01-01", 20),
		},
	}

	got := CategoryTotals(snap)
	if got["c1"] != 75 {
		t.Fatalf("totals[c1] = %d, want 75", got["c1"])
	}
	if got["c2"] != 20 {
		t.Fatalf("totals[c2] = %d, want 20", got["c2"])
	}
	if _, ok := got["c3"]; ok {
		t.Fatalf("totals contains unknown category: %v", got)
	}
}

func TestCategoryDistribution_SortedWithShares(t *testing.T) {
	snap := model.Snapshot{
		Categories: []model.Category{cat("c1", 30), cat("c2", 20), cat("c3", 10)},
		Logs: []model.LogEntry{
			entry("c1", "2024-01-01", 25),
			entry("c2", "2024-01-01", 75),
		},
	}

	got := CategoryDistribution(snap)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0].CategoryID != "c2" || got[0].Minutes != 75 {
		t.Fatalf("got[0] = %+v, want c2 with 75 minutes", got[0])
	}
	if got[0].SharePercent != 75 {
		t.Fatalf("got[0].SharePercent = %v, want 75", got[0].SharePercent)
	}
	if got[1].SharePercent != 25 {
		t.Fatalf("got[1].SharePercent = %v, want 25", got[1].SharePercent)
	}
	if got[2].CategoryID != "c3" || got[2].Minutes != 0 {
		t.Fatalf("got[2] = %+v, want c3 with 0 minutes", got[2])
	}
}

func TestCategoryDistribution_NoLogs(t *testing.T) {
	snap := model.Snapshot{Categories: []model.Category{cat("c1", 30)}}

	got := CategoryDistribution(snap)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].SharePercent != 0 {
		t.Fatalf("SharePercent = %v, want 0", got[0].SharePercent)
	}
}

func TestDailyTotals_ZeroFillsRecentDays(t *testing.T) {
	snap := model.Snapshot{
		Categories: []model.Category{cat("c1", 30)},
		Logs: []model.LogEntry{
			entry("c1", "2024-01-08", 10),
		},
	}

	got := DailyTotals(snap, 3, mustDate(t, "2024-01-10"))
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	want := []struct {
		date    string
		minutes int
	}{
		{"2024-01-08", 10},
		{"2024-01-09", 0},
		{"2024-01-10", 0},
	}
	for i, w := range want {
		if got[i].Date.Format("2006-01-02") != w.date {
			t.Errorf("got[%d].Date = %s, want %s", i, got[i].Date.Format("2006-01-02"), w.date)
		}
		if got[i].Minutes != w.minutes {
			t.Errorf("got[%d].Minutes = %d, want %d", i, got[i].Minutes, w.minutes)
		}
	}
}

func TestDailyTotals_SumsSameDayEntries(t *testing.T) {
	snap := model.Snapshot{
		Categories: []model.Category{cat("c1", 30), cat("c2", 20)},
		Logs: []model.LogEntry{
			entry("c1", "2024-01-10", 30),
			entry("c2", "2024-01-10", 20),
		},
	}

	got := DailyTotals(snap, 1, mustDate(t, "2024-01-10"))
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].Minutes != 50 {
		t.Fatalf("Minutes = %d, want 50", got[0].Minutes)
	}
}

func TestDailyTotals_NonPositiveWindow(t *testing.T) {
	snap := model.Snapshot{
		Logs: []model.LogEntry{entry("c1", "2024-01-10", 30)},
	}

	if got := DailyTotals(snap, 0, mustDate(t, "2024-01-10")); got != nil {
		t.Fatalf("DailyTotals(0) = %v, want nil", got)
	}
	if got := DailyTotals(snap, -3, mustDate(t, "2024-01-10")); got != nil {
		t.Fatalf("DailyTotals(-3) = %v, want nil", got)
	}
}

func TestTodayProgress_CapsAtHundred(t *testing.T) {
	snap := model.Snapshot{
		Categories: []model.Category{cat("c1", 30), cat("c2", 60)},
		Logs: []model.LogEntry{
			entry("c1", "2024-01-10", 45),
			entry("c2", "2024-01-10", 30),
			entry("c2", "2024-01-09", 60),
		},
	}

	got := TodayProgress(snap, mustDate(t, "2024-01-10"))
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].CategoryID != "c1" || got[0].Minutes != 45 {
		t.Fatalf("got[0] = %+v, want c1 with 45 minutes", got[0])
	}
	if got[0].Percent != 100 {
		t.Fatalf("c1 Percent = %v, want capped 100", got[0].Percent)
	}
	if got[1].Percent != 50 {
		t.Fatalf("c2 Percent = %v, want 50", got[1].Percent)
	}
}

func TestTodayProgress_ZeroGoalReportsZeroPercent(t *testing.T) {
	// Goals are validated positive on the write path, but hand-edited data
	// files can carry a zero. No percent is claimed for such categories.
	snap := model.Snapshot{
		Categories: []model.Category{cat("c1", 0)},
		Logs:       []model.LogEntry{entry("c1", "2024-01-10", 15)},
	}

	got := TodayProgress(snap, mustDate(t, "2024-01-10"))
	if got[0].Minutes != 15 {
		t.Fatalf("Minutes = %d, want 15", got[0].Minutes)
	}
	if got[0].Percent != 0 {
		t.Fatalf("Percent = %v, want 0", got[0].Percent)
	}
}
