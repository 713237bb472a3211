package analytics

import (
	"time"

	"github.com/D3V3LOP3R-wizard/consist/internal/model"
)

// MonthlyCompletionRate returns the percentage of complete days in the given
// month, truncated to an integer. The divisor is the month's actual day
// count, so a flawless February scores 100 in leap and common years alike.
// Returns 0 when no categories are defined.
func MonthlyCompletionRate(snap model.Snapshot, year int, month time.Month) int {
	if len(snap.Categories) == 0 {
		return 0
	}
	return len(completeDays(snap, year, month)) * 100 / daysIn(year, month)
}

// Month builds the per-day detail for one calendar month: which days have
// logs, which are complete, and where day 1 falls in a Monday-first grid.
func Month(snap model.Snapshot, year int, month time.Month) model.MonthStats {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)

	ms := model.MonthStats{
		Year:         year,
		Month:        month,
		DaysInMonth:  daysIn(year, month),
		FirstWeekday: mondayIndex(first.Weekday()),
		LoggedDays:   make(map[int]bool),
		CompleteDays: completeDays(snap, year, month),
	}

	logged := loggedByDate(snap.Logs)
	for d := 1; d <= ms.DaysInMonth; d++ {
		key := time.Date(year, month, d, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
		if len(logged[key]) > 0 {
			ms.LoggedDays[d] = true
		}
	}

	if len(snap.Categories) > 0 {
		ms.CompletionRate = len(ms.CompleteDays) * 100 / ms.DaysInMonth
	}
	return ms
}

// Week returns the Monday-start week containing today, one entry per day.
// Days where every live category was logged are complete, days with any log
// are partial, the rest are empty.
func Week(snap model.Snapshot, today time.Time) []model.WeekDay {
	start := dateOnly(today).AddDate(0, 0, -mondayIndex(today.Weekday()))

	live := categoryIDSet(snap.Categories)
	logged := loggedByDate(snap.Logs)

	sums := make(map[string]int)
	for _, l := range snap.Logs {
		sums[l.Date] += l.Minutes
	}

	week := make([]model.WeekDay, 7)
	for i := range week {
		day := start.AddDate(0, 0, i)
		key := day.Format("2006-01-02")

		state := model.DayEmpty
		switch {
		case coversAll(logged[key], live):
			state = model.DayComplete
		case len(logged[key]) > 0:
			state = model.DayPartial
		}

		week[i] = model.WeekDay{Date: day, State: state, Minutes: sums[key]}
	}
	return week
}

// completeDays returns the set of days (1-based) in the month on which every
// live category was logged. Empty when no categories are defined.
func completeDays(snap model.Snapshot, year int, month time.Month) map[int]bool {
	out := make(map[int]bool)
	live := categoryIDSet(snap.Categories)
	if len(live) == 0 {
		return out
	}

	logged := loggedByDate(snap.Logs)
	for d := 1; d <= daysIn(year, month); d++ {
		key := time.Date(year, month, d, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
		if coversAll(logged[key], live) {
			out[d] = true
		}
	}
	return out
}

// daysIn returns the number of days in a month. Day 0 of the following
// month normalizes to the last day of this one.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// mondayIndex maps a weekday to its column in a Monday-first grid, the ISO
// week convention.
func mondayIndex(w time.Weekday) int {
	return (int(w) + 6) % 7
}
