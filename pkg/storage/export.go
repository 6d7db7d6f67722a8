package storage

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"

	"github.com/rubiojr/travelog/pkg/core"
)

// ExportVersion is the format version written into export envelopes.
const ExportVersion = "1.0"

// ExportFile is the JSON envelope used for journal export and import.
// Data maps decimal year strings to month-index strings to entries,
// matching the format older journal exports used so they stay
// importable.
type ExportFile struct {
	Version    string                             `json:"version"`
	ExportDate time.Time                          `json:"exportDate"`
	Data       map[string]map[string][]core.Entry `json:"data"`
}

// Export writes the store as a JSON envelope. Paths ending in .zst are
// compressed with zstd transparently.
func Export(store *core.Store, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			fmt.Printf("Warning: failed to close export file: %v\n", err)
		}
	}()

	var w io.Writer = f
	if strings.HasSuffix(path, ".zst") {
		zw, err := zstd.NewWriter(f)
		if err != nil {
			return fmt.Errorf("creating zstd writer: %w", err)
		}
		defer func() {
			if err := zw.Close(); err != nil {
				fmt.Printf("Warning: failed to close zstd writer: %v\n", err)
			}
		}()
		w = zw
	}

	return WriteExport(store, w)
}

// WriteExport serializes the store envelope to w as indented JSON.
func WriteExport(store *core.Store, w io.Writer) error {
	file := ExportFile{
		Version:    ExportVersion,
		ExportDate: time.Now().UTC(),
		Data:       make(map[string]map[string][]core.Entry),
	}

	for _, year := range store.Years() {
		yearKey := strconv.Itoa(year)
		for month := 0; month < 12; month++ {
			entries := store.Entries(year, month)
			if len(entries) == 0 {
				continue
			}
			if file.Data[yearKey] == nil {
				file.Data[yearKey] = make(map[string][]core.Entry)
			}
			file.Data[yearKey][strconv.Itoa(month)] = entries
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(file); err != nil {
		return fmt.Errorf("encoding export: %w", err)
	}
	return nil
}

// Import reads an export envelope from path (zstd-decompressing .zst
// files) and merges it into the journal: imported entries are appended
// after existing ones, never replacing them.
func (j *Journal) Import(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening import file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			fmt.Printf("Warning: failed to close import file: %v\n", err)
		}
	}()

	var r io.Reader = f
	if strings.HasSuffix(path, ".zst") {
		zr, err := zstd.NewReader(f)
		if err != nil {
			return 0, fmt.Errorf("creating zstd reader: %w", err)
		}
		defer zr.Close()
		r = zr
	}

	return j.ImportFrom(r)
}

// ImportFrom parses an export envelope from r and appends its entries
// to the journal in a single transaction: a bad year/month key or a
// duplicate entry ID rolls everything back, leaving the journal
// untouched. Returns the number of entries imported.
func (j *Journal) ImportFrom(r io.Reader) (int, error) {
	var file ExportFile
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return 0, fmt.Errorf("decoding import: %w", err)
	}
	if file.Data == nil {
		return 0, fmt.Errorf("invalid file format: missing data section")
	}

	tx, err := j.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			if err := tx.Rollback(); err != nil {
				fmt.Printf("Warning: failed to rollback transaction: %v\n", err)
			}
		}
	}()

	imported := 0
	for yearKey, months := range file.Data {
		year, err := strconv.Atoi(yearKey)
		if err != nil {
			return 0, fmt.Errorf("invalid year key %q: %w", yearKey, err)
		}
		for monthKey, entries := range months {
			month, err := strconv.Atoi(monthKey)
			if err != nil || month < 0 || month > 11 {
				return 0, fmt.Errorf("invalid month key %q", monthKey)
			}
			for _, entry := range entries {
				if entry.ID == "" {
					entry.ID = uuid.New().String()
				}
				if _, err := tx.Exec(
					`INSERT INTO entries (id, year, month, location, details, timestamp) VALUES (?, ?, ?, ?, ?, ?)`,
					entry.ID, year, month, entry.Location, entry.Details, entry.Timestamp.Format(timeFormat),
				); err != nil {
					return 0, fmt.Errorf("inserting entry %s: %w", entry.ID, err)
				}
				imported++
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing import: %w", err)
	}
	committed = true
	return imported, nil
}
