// Package model defines domain types for consist categories, logs, and stats.
package model

// Category is a trackable habit with a daily time goal.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Goal  int    `json:"goal"` // minutes per day
	Color string `json:"color"`
}

// DefaultPalette is cycled through when a new category has no explicit color.
var DefaultPalette = []string{
	"#667eea",
	"#48bb78",
	"#f56565",
	"#ed8936",
	"#9f7aea",
}

// LogEntry records time spent on one category on one calendar date.
// Entries are append-only; minutes for the same (category, date) accumulate
// across entries rather than overwriting.
type LogEntry struct {
	ID         string `json:"id"`
	CategoryID string `json:"category_id"`
	Minutes    int    `json:"minutes"`
	Date       string `json:"date"` // YYYY-MM-DD
	Notes      string `json:"notes"`
}

// Snapshot is an immutable copy of the store contents handed to the
// analytics functions. Mutating a snapshot never affects the store.
type Snapshot struct {
	Categories []Category
	Logs       []LogEntry
}
