package model

import "time"

// StreakStats holds the headline consistency numbers for the dashboard.
type StreakStats struct {
	CurrentStreak int
	LongestStreak int
	MonthlyRate   int // percent of complete days this month, 0-100
	TotalLogs     int
}

// GoalProgress describes one category's progress toward its daily goal.
type GoalProgress struct {
	CategoryID string
	Name       string
	Color      string
	Goal       int
	Minutes    int
	Percent    float64 // 0-100, capped at 100
}

// DailyTotal holds summed minutes across all categories for one day.
type DailyTotal struct {
	Date    time.Time
	Minutes int
}

// CategoryTotal holds lifetime minutes and the share of all logged time
// for one category.
type CategoryTotal struct {
	CategoryID   string
	Name         string
	Color        string
	Minutes      int
	SharePercent float64
}

// DayState classifies one day for the weekly overview.
type DayState int

const (
	DayEmpty    DayState = iota // no logs
	DayPartial                  // some categories logged
	DayComplete                 // every live category logged
)

// WeekDay is one day of the Monday-start weekly overview.
type WeekDay struct {
	Date    time.Time
	State   DayState
	Minutes int
}

// MonthStats describes one calendar month for the calendar views.
// Day keys are days of the month (1-based).
type MonthStats struct {
	Year           int
	Month          time.Month
	DaysInMonth    int
	FirstWeekday   int // column in a Monday-first grid: 0=Mon .. 6=Sun
	LoggedDays     map[int]bool
	CompleteDays   map[int]bool
	CompletionRate int // percent, 0-100
}
