// Package storage persists the travel journal in a single SQLite
// database. It owns the entries and search_history tables and knows how
// to rebuild an in-memory core.Store preserving insertion order, which
// the search engine relies on for deterministic tie-breaking.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/rubiojr/travelog/pkg/core"
	"github.com/rubiojr/travelog/pkg/log"
)

const timeFormat = time.RFC3339Nano

// Journal is the SQLite-backed travel journal.
type Journal struct {
	db   *sql.DB
	path string
}

// Open opens (creating if needed) the journal database at path and
// ensures the schema exists.
func Open(path string) (*Journal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 30000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return nil, fmt.Errorf("applying pragma %q: %w", pragma, err)
		}
	}

	j := &Journal{db: db, path: path}
	if err := j.initSchema(); err != nil {
		return nil, err
	}
	return j, nil
}

// Path returns the database file path, used by the palette's file
// watcher.
func (j *Journal) Path() string {
	return j.path
}

// Close closes the underlying database.
func (j *Journal) Close() error {
	return j.db.Close()
}

func (j *Journal) initSchema() error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS entries (
			id TEXT PRIMARY KEY,
			year INTEGER NOT NULL,
			month INTEGER NOT NULL CHECK (month BETWEEN 0 AND 11),
			location TEXT NOT NULL,
			details TEXT NOT NULL DEFAULT '',
			timestamp TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_entries_year_month ON entries(year, month)`,
		`CREATE TABLE IF NOT EXISTS search_history (
			position INTEGER PRIMARY KEY,
			query TEXT NOT NULL
		)`,
	}
	for _, stmt := range schema {
		if _, err := j.db.Exec(stmt); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
	}
	return nil
}

// AddEntry stores a new entry under year/month.
func (j *Journal) AddEntry(year, month int, entry core.Entry) error {
	if month < 0 || month > 11 {
		return fmt.Errorf("month %d out of range", month)
	}
	_, err := j.db.Exec(
		`INSERT INTO entries (id, year, month, location, details, timestamp) VALUES (?, ?, ?, ?, ?, ?)`,
		entry.ID, year, month, entry.Location, entry.Details, entry.Timestamp.Format(timeFormat),
	)
	if err != nil {
		return fmt.Errorf("inserting entry: %w", err)
	}
	return nil
}

// UpdateEntry rewrites an entry's month, location, details and
// timestamp in place. Moving between months keeps the row's insertion
// position; that only affects tie-break order among equal scores.
func (j *Journal) UpdateEntry(entryID string, month int, location, details string) error {
	if month < 0 || month > 11 {
		return fmt.Errorf("month %d out of range", month)
	}
	res, err := j.db.Exec(
		`UPDATE entries SET month = ?, location = ?, details = ?, timestamp = ? WHERE id = ?`,
		month, location, details, time.Now().UTC().Format(timeFormat), entryID,
	)
	if err != nil {
		return fmt.Errorf("updating entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating entry: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("entry %s not found", entryID)
	}
	return nil
}

// DeleteEntry removes an entry by ID. Deleting an unknown ID is not an
// error, matching the journal's tolerant edit semantics.
func (j *Journal) DeleteEntry(entryID string) error {
	if _, err := j.db.Exec(`DELETE FROM entries WHERE id = ?`, entryID); err != nil {
		return fmt.Errorf("deleting entry: %w", err)
	}
	return nil
}

// Load rebuilds the in-memory store from the database. Rows come back
// in rowid order, so years appear in first-insertion order and entries
// keep their append order within each month.
func (j *Journal) Load() (*core.Store, error) {
	rows, err := j.db.Query(
		`SELECT id, year, month, location, details, timestamp FROM entries ORDER BY rowid`,
	)
	if err != nil {
		return nil, fmt.Errorf("loading entries: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			fmt.Printf("Warning: failed to close rows: %v\n", err)
		}
	}()

	store := core.NewStore()
	for rows.Next() {
		var (
			entry       core.Entry
			year, month int
			ts          string
		)
		if err := rows.Scan(&entry.ID, &year, &month, &entry.Location, &entry.Details, &ts); err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		if parsed, err := time.Parse(timeFormat, ts); err == nil {
			entry.Timestamp = parsed
		} else {
			log.ForComponent("storage").Warnf("entry %s has unparseable timestamp %q, keeping zero time", entry.ID, ts)
		}
		store.Add(year, month, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("loading entries: %w", err)
	}
	return store, nil
}

// SaveHistory replaces the persisted search history with the given
// queries, most recent first.
func (j *Journal) SaveHistory(queries []string) error {
	tx, err := j.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			if err := tx.Rollback(); err != nil {
				fmt.Printf("Warning: failed to rollback transaction: %v\n", err)
			}
		}
	}()

	if _, err := tx.Exec(`DELETE FROM search_history`); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}
	for i, q := range queries {
		if _, err := tx.Exec(`INSERT INTO search_history (position, query) VALUES (?, ?)`, i, q); err != nil {
			return fmt.Errorf("inserting history: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing history: %w", err)
	}
	committed = true
	return nil
}

// LoadHistory returns the persisted search history, most recent first.
func (j *Journal) LoadHistory() ([]string, error) {
	rows, err := j.db.Query(`SELECT query FROM search_history ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			fmt.Printf("Warning: failed to close rows: %v\n", err)
		}
	}()

	var queries []string
	for rows.Next() {
		var q string
		if err := rows.Scan(&q); err != nil {
			return nil, fmt.Errorf("scanning history: %w", err)
		}
		queries = append(queries, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}
	return queries, nil
}
