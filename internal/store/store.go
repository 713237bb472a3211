// Package store persists categories and log entries to a single JSON document.
//
// The store is single-process and write-through: every mutation updates the
// in-memory collections and immediately rewrites the whole file. Loading a
// missing or corrupt file yields empty collections rather than an error, so a
// damaged data file never blocks startup.
package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/D3V3LOP3R-wizard/consist/internal/model"

	"github.com/google/uuid"
)

// Store holds the live categories and logs, bound to a data file.
type Store struct {
	path       string
	categories []model.Category
	logs       []model.LogEntry
}

// document is the on-disk shape: two named arrays in one JSON object.
// Either array may be absent in files written by other tools; absent means
// empty.
type document struct {
	Categories []model.Category `json:"categories"`
	Logs       []model.LogEntry `json:"logs"`
}

// Open returns a store bound to path with the file contents loaded.
func Open(path string) *Store {
	s := &Store{path: path}
	s.load()
	return s
}

// Path returns the data file path the store reads and writes.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("data file unreadable, starting empty", "path", s.path, "err", err)
		}
		return
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		slog.Warn("data file corrupt, starting empty", "path", s.path, "err", err)
		return
	}

	s.categories = doc.Categories
	s.logs = doc.Logs
}

// Reload replaces the in-memory collections with the current file contents.
func (s *Store) Reload() {
	s.categories = nil
	s.logs = nil
	s.load()
}

// Save writes the full document to disk. This runs after every mutation and
// also backs the manual save action.
func (s *Store) Save() error {
	doc := document{Categories: s.categories, Logs: s.logs}
	if doc.Categories == nil {
		doc.Categories = []model.Category{}
	}
	if doc.Logs == nil {
		doc.Logs = []model.LogEntry{}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding data: %w", err)
	}
	return writeFileAtomic(s.path, data)
}

// AddCategory validates and appends a new category, then persists.
func (s *Store) AddCategory(name string, goal int, color string) (model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Category{}, fmt.Errorf("%w: category name is required", ErrValidation)
	}
	if goal <= 0 {
		return model.Category{}, fmt.Errorf("%w: daily goal must be positive, got %d", ErrValidation, goal)
	}

	id, err := newID()
	if err != nil {
		return model.Category{}, err
	}

	c := model.Category{ID: id, Name: name, Goal: goal, Color: color}
	s.categories = append(s.categories, c)
	return c, s.Save()
}

// EditCategory replaces the name, goal, and color of an existing category.
func (s *Store) EditCategory(id, name string, goal int, color string) error {
	idx := s.categoryIndex(id)
	if idx < 0 {
		return fmt.Errorf("%w: category %s", ErrNotFound, id)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: category name is required", ErrValidation)
	}
	if goal <= 0 {
		return fmt.Errorf("%w: daily goal must be positive, got %d", ErrValidation, goal)
	}

	c := &s.categories[idx]
	c.Name = name
	c.Goal = goal
	c.Color = color
	return s.Save()
}

// DeleteCategory removes a category and every log entry that references it.
// This is the only cascading operation in the store.
func (s *Store) DeleteCategory(id string) error {
	idx := s.categoryIndex(id)
	if idx < 0 {
		return fmt.Errorf("%w: category %s", ErrNotFound, id)
	}

	s.categories = append(s.categories[:idx], s.categories[idx+1:]...)

	n := 0
	for _, l := range s.logs {
		if l.CategoryID != id {
			s.logs[n] = l
			n++
		}
	}
	s.logs = s.logs[:n]

	return s.Save()
}

// AddLog validates and appends a log entry for categoryID, then persists.
// The date must parse as YYYY-MM-DD; any valid calendar date is accepted,
// including backfilled past dates.
func (s *Store) AddLog(categoryID string, minutes int, date, notes string) (model.LogEntry, error) {
	if s.categoryIndex(categoryID) < 0 {
		return model.LogEntry{}, fmt.Errorf("%w: category %s", ErrNotFound, categoryID)
	}
	if minutes <= 0 {
		return model.LogEntry{}, fmt.Errorf("%w: minutes must be positive, got %d", ErrValidation, minutes)
	}
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return model.LogEntry{}, fmt.Errorf("%w: date must be YYYY-MM-DD, got %q", ErrValidation, date)
	}

	id, err := newID()
	if err != nil {
		return model.LogEntry{}, err
	}

	e := model.LogEntry{
		ID:         id,
		CategoryID: categoryID,
		Minutes:    minutes,
		Date:       day.Format("2006-01-02"),
		Notes:      notes,
	}
	s.logs = append(s.logs, e)
	return e, s.Save()
}

// Categories returns a copy of the live categories in insertion order.
func (s *Store) Categories() []model.Category {
	return append([]model.Category(nil), s.categories...)
}

// Logs returns a copy of all log entries in insertion order.
func (s *Store) Logs() []model.LogEntry {
	return append([]model.LogEntry(nil), s.logs...)
}

// Snapshot returns an immutable copy of the store contents for the
// analytics functions.
func (s *Store) Snapshot() model.Snapshot {
	return model.Snapshot{
		Categories: s.Categories(),
		Logs:       s.Logs(),
	}
}

// Category returns the category with the given id.
func (s *Store) Category(id string) (model.Category, bool) {
	idx := s.categoryIndex(id)
	if idx < 0 {
		return model.Category{}, false
	}
	return s.categories[idx], true
}

// Resolve finds a category by id or by name. Name matching is
// case-insensitive and must be unambiguous.
func (s *Store) Resolve(ref string) (model.Category, error) {
	if c, ok := s.Category(ref); ok {
		return c, nil
	}

	var matches []model.Category
	for _, c := range s.categories {
		if strings.EqualFold(c.Name, ref) {
			matches = append(matches, c)
		}
	}
	switch len(matches) {
	case 0:
		return model.Category{}, fmt.Errorf("%w: category %q", ErrNotFound, ref)
	case 1:
		return matches[0], nil
	default:
		return model.Category{}, fmt.Errorf("%w: category name %q is ambiguous, use an id", ErrValidation, ref)
	}
}

func (s *Store) categoryIndex(id string) int {
	for i, c := range s.categories {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// newID returns a time-ordered unique id string.
func newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generating id: %w", err)
	}
	return id.String(), nil
}
