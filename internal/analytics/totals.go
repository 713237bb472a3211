package analytics

import (
	"sort"
	"time"

	"github.com/D3V3LOP3R-wizard/consist/internal/model"
)

// CategoryTotals sums logged minutes per category id across all logs.
func CategoryTotals(snap model.Snapshot) map[string]int {
	totals := make(map[string]int, len(snap.Categories))
	for _, l := range snap.Logs {
		totals[l.CategoryID] += l.Minutes
	}
	return totals
}

// CategoryDistribution returns per-category lifetime totals with each
// category's share of all logged time, sorted by minutes descending.
func CategoryDistribution(snap model.Snapshot) []model.CategoryTotal {
	totals := CategoryTotals(snap)

	grand := 0
	for _, c := range snap.Categories {
		grand += totals[c.ID]
	}

	out := make([]model.CategoryTotal, 0, len(snap.Categories))
	for _, c := range snap.Categories {
		ct := model.CategoryTotal{
			CategoryID: c.ID,
			Name:       c.Name,
			Color:      c.Color,
			Minutes:    totals[c.ID],
		}
		if grand > 0 {
			ct.SharePercent = float64(ct.Minutes) / float64(grand) * 100
		}
		out = append(out, ct)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Minutes > out[j].Minutes
	})
	return out
}

// DailyTotals sums minutes across all categories per day for the lastN days
// ending at today, oldest first. Days with no logs appear as zero entries so
// charts show gaps.
func DailyTotals(snap model.Snapshot, lastN int, today time.Time) []model.DailyTotal {
	if lastN <= 0 {
		return nil
	}

	sums := make(map[string]int)
	for _, l := range snap.Logs {
		sums[l.Date] += l.Minutes
	}

	end := dateOnly(today)
	day := end.AddDate(0, 0, -(lastN - 1))

	totals := make([]model.DailyTotal, 0, lastN)
	for !day.After(end) {
		totals = append(totals, model.DailyTotal{
			Date:    day,
			Minutes: sums[day.Format("2006-01-02")],
		})
		day = day.AddDate(0, 0, 1)
	}
	return totals
}

// TodayProgress reports each live category's logged minutes for today
// against its goal, in category order. Percent is capped at 100.
func TodayProgress(snap model.Snapshot, today time.Time) []model.GoalProgress {
	key := dateOnly(today).Format("2006-01-02")

	minutes := make(map[string]int)
	for _, l := range snap.Logs {
		if l.Date == key {
			minutes[l.CategoryID] += l.Minutes
		}
	}

	out := make([]model.GoalProgress, 0, len(snap.Categories))
	for _, c := range snap.Categories {
		p := model.GoalProgress{
			CategoryID: c.ID,
			Name:       c.Name,
			Color:      c.Color,
			Goal:       c.Goal,
			Minutes:    minutes[c.ID],
		}
		if c.Goal > 0 {
			p.Percent = float64(p.Minutes) / float64(c.Goal) * 100
			if p.Percent > 100 {
				p.Percent = 100
			}
		}
		out = append(out, p)
	}
	return out
}
