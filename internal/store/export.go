package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // register sqlite driver
)

const exportSchemaSQL = `
CREATE TABLE IF NOT EXISTS categories (
    id    TEXT PRIMARY KEY,
    name  TEXT NOT NULL,
    goal  INTEGER NOT NULL,
    color TEXT
);

CREATE TABLE IF NOT EXISTS logs (
    id          TEXT PRIMARY KEY,
    category_id TEXT NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
    minutes     INTEGER NOT NULL,
    date        TEXT NOT NULL,
    notes       TEXT
);

CREATE INDEX IF NOT EXISTS idx_logs_date ON logs(date);
CREATE INDEX IF NOT EXISTS idx_logs_category ON logs(category_id);
`

// Export mirrors the store contents into a sqlite database at dbPath for
// external querying. The export is a derived artifact: any previous file at
// dbPath is replaced.
func (s *Store) Export(dbPath string) error {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o750); err != nil {
		return fmt.Errorf("creating export dir: %w", err)
	}
	if err := os.Remove(dbPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing previous export: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=foreign_keys(on)")
	if err != nil {
		return fmt.Errorf("opening export db: %w", err)
	}
	defer func() { _ = db.Close() }()

	if _, err := db.Exec(exportSchemaSQL); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, c := range s.categories {
		_, err := tx.Exec(`INSERT INTO categories (id, name, goal, color) VALUES (?, ?, ?, ?)`,
			c.ID, c.Name, c.Goal, c.Color)
		if err != nil {
			return fmt.Errorf("inserting category %q: %w", c.Name, err)
		}
	}

	for _, l := range s.logs {
		_, err := tx.Exec(`INSERT INTO logs (id, category_id, minutes, date, notes) VALUES (?, ?, ?, ?, ?)`,
			l.ID, l.CategoryID, l.Minutes, l.Date, l.Notes)
		if err != nil {
			return fmt.Errorf("inserting log %s: %w", l.ID, err)
		}
	}

	return tx.Commit()
}
