// Package catalog records rendered figures in a SQLite database so
// long parameter studies can be audited afterwards. The render path
// itself never depends on the catalog; it is opt-in via --catalog.
package catalog

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Entry is one rendered figure.
type Entry struct {
	ID         string
	CreatedAt  time.Time
	Kind       string // "latlon" or "force"
	Output     string
	DataFile   string
	XMin       float64
	XMax       float64
	YMin       float64
	YMax       float64
	DurationMS int64
}

// Catalog wraps the figures database.
type Catalog struct {
	*sql.DB
}

// Open opens (creating if needed) the catalog at path.
func Open(path string) (*Catalog, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS figures (
			id TEXT PRIMARY KEY,
			kind TEXT NOT NULL,
			output TEXT NOT NULL,
			data_file TEXT NOT NULL,
			x_min DOUBLE, x_max DOUBLE,
			y_min DOUBLE, y_max DOUBLE,
			duration_ms BIGINT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init catalog schema: %w", err)
	}

	return &Catalog{db}, nil
}

// Record inserts one figure entry, assigning its ID.
func (c *Catalog) Record(e *Entry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	_, err := c.Exec(`
		INSERT INTO figures (id, kind, output, data_file, x_min, x_max, y_min, y_max, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Kind, e.Output, e.DataFile,
		e.XMin, e.XMax, e.YMin, e.YMax, e.DurationMS)
	if err != nil {
		return fmt.Errorf("record figure: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (c *Catalog) Recent(limit int) ([]Entry, error) {
	rows, err := c.Query(`
		SELECT id, kind, output, data_file, x_min, x_max, y_min, y_max, duration_ms, created_at
		FROM figures ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Kind, &e.Output, &e.DataFile,
			&e.XMin, &e.XMax, &e.YMin, &e.YMax, &e.DurationMS, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
