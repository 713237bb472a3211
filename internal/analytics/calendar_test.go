package analytics

import (
	"testing"
	"time"

	"github.com/D3V3LOP3R-wizard/consist/internal/model"
)

func TestMonthlyCompletionRate_EmptyMonth(t *testing.T) {
	snap := model.Snapshot{Categories: []model.Category{cat("c1", 30)}}

	if got := MonthlyCompletionRate(snap, 2024, time.January); got != 0 {
		t.Fatalf("MonthlyCompletionRate = %d, want 0", got)
	}
}

func TestMonthlyCompletionRate_ZeroWithoutCategories(t *testing.T) {
	snap := model.Snapshot{
		Logs: []model.LogEntry{entry("ghost", "2024-01-01", 30)},
	}

	if got := MonthlyCompletionRate(snap, 2024, time.January); got != 0 {
		t.Fatalf("MonthlyCompletionRate = %d, want 0", got)
	}
}

func TestMonthlyCompletionRate_PartialDaysExcluded(t *testing.T) {
	snap := model.Snapshot{
		Categories: []model.Category{cat("c1", 30), cat("c2", 20)},
		Logs: []model.LogEntry{
			// 2024-02-01 covers only c1, so it does not count.
			entry("c1", "2024-02-01", 30),
			entry("c1", "2024-02-02", 30),
			entry("c2", "2024-02-02", 20),
		},
	}

	// 1 complete day out of 29 in leap February.
	if got := MonthlyCompletionRate(snap, 2024, time.February); got != 3 {
		t.Fatalf("MonthlyCompletionRate = %d, want 3", got)
	}
}

func TestMonthlyCompletionRate_FullLeapFebruary(t *testing.T) {
	snap := model.Snapshot{Categories: []model.Category{cat("c1", 30)}}
	for day := 1; day <= 29; day++ {
		d := time.Date(2024, time.February, day, 0, 0, 0, 0, time.UTC)
		snap.Logs = append(snap.Logs, entry("c1", d.Format("2006-01-02"), 30))
	}

	if got := MonthlyCompletionRate(snap, 2024, time.February); got != 100 {
		t.Fatalf("MonthlyCompletionRate = %d, want 100", got)
	}
}

func TestMonthlyCompletionRate_DividesByFullMonth(t *testing.T) {
	// Rate uses the month length as the divisor even when the month is in
	// progress, and integer division truncates.
	snap := model.Snapshot{
		Categories: []model.Category{cat("c1", 30)},
		Logs:       []model.LogEntry{entry("c1", "2024-04-01", 30)},
	}

	// 1 * 100 / 30 = 3.
	if got := MonthlyCompletionRate(snap, 2024, time.April); got != 3 {
		t.Fatalf("MonthlyCompletionRate = %d, want 3", got)
	}
}

func TestMonthlyCompletionRate_IgnoresOtherMonths(t *testing.T) {
	snap := model.Snapshot{
		Categories: []model.Category{cat("c1", 30)},
		Logs: []model.LogEntry{
			entry("c1", "2024-01-31", 30),
			entry("c1", "2024-02-01", 30),
			entry("c1", "2024-03-01", 30),
		},
	}

	if got := MonthlyCompletionRate(snap, 2024, time.February); got != 3 {
		t.Fatalf("MonthlyCompletionRate = %d, want 3", got)
	}
}

func TestDaysIn(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.January, 31},
		{2024, time.February, 29},
		{2023, time.February, 28},
		{2100, time.February, 28},
		{2000, time.February, 29},
		{2024, time.April, 30},
		{2024, time.December, 31},
	}
	for _, tt := range tests {
		if got := daysIn(tt.year, tt.month); got != tt.want {
			t.Errorf("daysIn(%d, %v) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestMonth_GridPlacement(t *testing.T) {
	snap := model.Snapshot{
		Categories: []model.Category{cat("c1", 30), cat("c2", 20)},
		Logs: []model.LogEntry{
			entry("c1", "2024-03-05", 30),
			entry("c2", "2024-03-05", 20),
			entry("c1", "2024-03-09", 30),
		},
	}

	got := Month(snap, 2024, time.March)
	if got.DaysInMonth != 31 {
		t.Fatalf("DaysInMonth = %d, want 31", got.DaysInMonth)
	}
	// 2024-03-01 is a Friday, index 4 on a Monday-first grid.
	if got.FirstWeekday != 4 {
		t.Fatalf("FirstWeekday = %d, want 4", got.FirstWeekday)
	}
	if !got.LoggedDays[5] || !got.LoggedDays[9] {
		t.Fatalf("LoggedDays = %v, want days 5 and 9", got.LoggedDays)
	}
	if !got.CompleteDays[5] {
		t.Fatalf("CompleteDays missing day 5: %v", got.CompleteDays)
	}
	if got.CompleteDays[9] {
		t.Fatalf("day 9 covers one of two categories, must not be complete")
	}
	if got.CompletionRate != 3 {
		t.Fatalf("CompletionRate = %d, want 3", got.CompletionRate)
	}
}

func TestWeek_MondayStartAndStates(t *testing.T) {
	snap := model.Snapshot{
		Categories: []model.Category{cat("c1", 30), cat("c2", 20)},
		Logs: []model.LogEntry{
			// Monday: both categories, complete.
			entry("c1", "2024-01-08", 30),
			entry("c2", "2024-01-08", 20),
			// Tuesday: one category, partial.
			entry("c1", "2024-01-09", 15),
		},
	}

	// Wednesday mid-week.
	week := Week(snap, mustDate(t, "2024-01-10"))
	if len(week) != 7 {
		t.Fatalf("len(week) = %d, want 7", len(week))
	}
	if got := week[0].Date.Format("2006-01-02"); got != "2024-01-08" {
		t.Fatalf("week[0] = %s, want 2024-01-08", got)
	}
	if got := week[6].Date.Format("2006-01-02"); got != "2024-01-14" {
		t.Fatalf("week[6] = %s, want 2024-01-14", got)
	}

	if week[0].State != model.DayComplete {
		t.Fatalf("Monday state = %v, want DayComplete", week[0].State)
	}
	if week[0].Minutes != 50 {
		t.Fatalf("Monday minutes = %d, want 50", week[0].Minutes)
	}
	if week[1].State != model.DayPartial {
		t.Fatalf("Tuesday state = %v, want DayPartial", week[1].State)
	}
	if week[2].State != model.DayEmpty {
		t.Fatalf("Wednesday state = %v, want DayEmpty", week[2].State)
	}
}

func TestWeek_SundayBelongsToSameWeek(t *testing.T) {
	snap := model.Snapshot{Categories: []model.Category{cat("c1", 30)}}

	// 2024-01-14 is a Sunday; its week starts Monday the 8th.
	week := Week(snap, mustDate(t, "2024-01-14"))
	if got := week[0].Date.Format("2006-01-02"); got != "2024-01-08" {
		t.Fatalf("week[0] = %s, want 2024-01-08", got)
	}
}
