// Package analytics derives streak and completion metrics from store
// snapshots. Every function is a pure read: nothing here mutates the
// snapshot, and functions that walk backward from "today" take the reference
// day as an explicit argument.
package analytics

import (
	"sort"
	"time"

	"github.com/D3V3LOP3R-wizard/consist/internal/model"
)

// CurrentStreak returns the number of consecutive complete days ending at
// today. A day is complete when every live category has at least one log on
// that date. The walk stops at the first incomplete day, so an incomplete
// today means 0. With no categories defined, no day can be complete.
func CurrentStreak(snap model.Snapshot, today time.Time) int {
	if len(snap.Categories) == 0 {
		return 0
	}

	live := categoryIDSet(snap.Categories)
	logged := loggedByDate(snap.Logs)

	streak := 0
	day := dateOnly(today)
	for coversAll(logged[day.Format("2006-01-02")], live) {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// LongestStreak returns the longest run of calendar-consecutive dates that
// have any log at all. Unlike CurrentStreak, a day qualifies here with a
// single log for a single category; the two metrics intentionally use
// different definitions of an active day.
func LongestStreak(snap model.Snapshot) int {
	seen := make(map[string]struct{}, len(snap.Logs))
	for _, l := range snap.Logs {
		seen[l.Date] = struct{}{}
	}

	dates := make([]time.Time, 0, len(seen))
	for d := range seen {
		day, err := time.Parse("2006-01-02", d)
		if err != nil {
			continue
		}
		dates = append(dates, day)
	}
	if len(dates) == 0 {
		return 0
	}

	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})

	longest, run := 1, 1
	for i := 1; i < len(dates); i++ {
		if dates[i-1].AddDate(0, 0, 1).Equal(dates[i]) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

// CategoryStreak returns the number of consecutive days ending at today with
// at least one log for the given category, regardless of other categories.
func CategoryStreak(snap model.Snapshot, categoryID string, today time.Time) int {
	days := make(map[string]bool)
	for _, l := range snap.Logs {
		if l.CategoryID == categoryID {
			days[l.Date] = true
		}
	}

	streak := 0
	day := dateOnly(today)
	for days[day.Format("2006-01-02")] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// Overview bundles the headline numbers shown on every dashboard surface.
func Overview(snap model.Snapshot, today time.Time) model.StreakStats {
	return model.StreakStats{
		CurrentStreak: CurrentStreak(snap, today),
		LongestStreak: LongestStreak(snap),
		MonthlyRate:   MonthlyCompletionRate(snap, today.Year(), today.Month()),
		TotalLogs:     len(snap.Logs),
	}
}

// ─── Shared helpers ─────────────────────────────────────────────

func categoryIDSet(cats []model.Category) map[string]struct{} {
	set := make(map[string]struct{}, len(cats))
	for _, c := range cats {
		set[c.ID] = struct{}{}
	}
	return set
}

// loggedByDate maps each date string to the set of category ids logged on it.
func loggedByDate(logs []model.LogEntry) map[string]map[string]struct{} {
	byDate := make(map[string]map[string]struct{})
	for _, l := range logs {
		set, ok := byDate[l.Date]
		if !ok {
			set = make(map[string]struct{})
			byDate[l.Date] = set
		}
		set[l.CategoryID] = struct{}{}
	}
	return byDate
}

// coversAll reports whether every id in want appears in got. A category
// logged twice never compensates for a different category not logged at all.
func coversAll(got map[string]struct{}, want map[string]struct{}) bool {
	if len(want) == 0 {
		return false
	}
	for id := range want {
		if _, ok := got[id]; !ok {
			return false
		}
	}
	return true
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
