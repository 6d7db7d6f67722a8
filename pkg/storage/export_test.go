package storage

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/rubiojr/travelog/pkg/core"
)

func exportFixture() *core.Store {
	store := core.NewStore()
	store.Add(2023, 5, core.NewEntry("Paris", "Summer trip"))
	store.Add(2023, 8, core.NewEntry("Tokyo", "Fall vacation"))
	store.Add(2022, 11, core.NewEntry("New York", "Winter shopping"))
	return store
}

func TestWriteExportEnvelope(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteExport(exportFixture(), &buf); err != nil {
		t.Fatalf("failed to write export: %v", err)
	}

	var file ExportFile
	if err := json.Unmarshal(buf.Bytes(), &file); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}

	if file.Version != ExportVersion {
		t.Errorf("version = %q, expected %q", file.Version, ExportVersion)
	}
	if file.ExportDate.IsZero() {
		t.Error("export date not set")
	}
	if len(file.Data) != 2 {
		t.Fatalf("expected 2 years, got %v", file.Data)
	}
	if got := file.Data["2023"]["5"]; len(got) != 1 || got[0].Location != "Paris" {
		t.Errorf("unexpected 2023/5 entries: %v", got)
	}
	if _, ok := file.Data["2023"]["0"]; ok {
		t.Error("empty months must be omitted from the envelope")
	}
}

func TestImportFromRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteExport(exportFixture(), &buf); err != nil {
		t.Fatalf("failed to write export: %v", err)
	}

	j := testJournal(t)
	n, err := j.ImportFrom(&buf)
	if err != nil {
		t.Fatalf("failed to import: %v", err)
	}
	if n != 3 {
		t.Errorf("imported %d entries, expected 3", n)
	}

	store, err := j.Load()
	if err != nil {
		t.Fatalf("failed to load store: %v", err)
	}
	if store.Len() != 3 {
		t.Errorf("expected 3 entries, got %d", store.Len())
	}
	entries := store.Entries(2022, 11)
	if len(entries) != 1 || entries[0].Location != "New York" {
		t.Errorf("unexpected 2022/11 entries: %v", entries)
	}
}

func TestImportMergesWithExisting(t *testing.T) {
	j := testJournal(t)
	existing := core.NewEntry("Lisbon", "")
	if err := j.AddEntry(2023, 5, existing); err != nil {
		t.Fatalf("failed to add entry: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteExport(exportFixture(), &buf); err != nil {
		t.Fatalf("failed to write export: %v", err)
	}
	if _, err := j.ImportFrom(&buf); err != nil {
		t.Fatalf("failed to import: %v", err)
	}

	store, err := j.Load()
	if err != nil {
		t.Fatalf("failed to load store: %v", err)
	}
	entries := store.Entries(2023, 5)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries in 2023/5, got %d", len(entries))
	}
	// Existing entries keep their position; imports append after them.
	if entries[0].ID != existing.ID {
		t.Errorf("import displaced the existing entry: %v", entries)
	}
}

func TestImportGeneratesMissingIDs(t *testing.T) {
	payload := `{
		"version": "1.0",
		"exportDate": "2023-06-01T00:00:00Z",
		"data": {"2023": {"5": [{"location": "Paris", "details": ""}]}}
	}`

	j := testJournal(t)
	n, err := j.ImportFrom(bytes.NewReader([]byte(payload)))
	if err != nil {
		t.Fatalf("failed to import: %v", err)
	}
	if n != 1 {
		t.Fatalf("imported %d entries, expected 1", n)
	}

	store, err := j.Load()
	if err != nil {
		t.Fatalf("failed to load store: %v", err)
	}
	entries := store.Entries(2023, 5)
	if len(entries) != 1 || entries[0].ID == "" {
		t.Errorf("expected a generated ID, got %v", entries)
	}
}

func TestImportDuplicateIDRollsBack(t *testing.T) {
	j := testJournal(t)
	seeded := core.NewEntry("Lisbon", "")
	if err := j.AddEntry(2023, 5, seeded); err != nil {
		t.Fatalf("failed to add entry: %v", err)
	}

	// A fresh entry followed by a duplicate of the seeded ID in the
	// same month slice: the duplicate must take the fresh one down
	// with it.
	source := core.NewStore()
	source.Add(2023, 5, core.NewEntry("Porto", ""))
	source.Add(2023, 5, core.Entry{ID: seeded.ID, Location: "Lisbon copy"})

	var buf bytes.Buffer
	if err := WriteExport(source, &buf); err != nil {
		t.Fatalf("failed to write export: %v", err)
	}

	n, err := j.ImportFrom(&buf)
	if err == nil {
		t.Fatal("expected an error for a duplicate entry ID")
	}
	if n != 0 {
		t.Errorf("failed import reported %d entries", n)
	}

	store, err := j.Load()
	if err != nil {
		t.Fatalf("failed to load store: %v", err)
	}
	if store.Len() != 1 {
		t.Errorf("failed import left partial state: %d entries, expected 1", store.Len())
	}
}

func TestImportRejectsBadPayloads(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "not json", payload: "not json"},
		{name: "missing data section", payload: `{"version": "1.0"}`},
		{name: "bad year key", payload: `{"data": {"twenty": {"5": []}}}`},
		{name: "bad month key", payload: `{"data": {"2023": {"13": []}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := testJournal(t)
			if _, err := j.ImportFrom(bytes.NewReader([]byte(tt.payload))); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestExportImportCompressed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "travel-log.json.zst")

	if err := Export(exportFixture(), path); err != nil {
		t.Fatalf("failed to export: %v", err)
	}

	j := testJournal(t)
	n, err := j.Import(path)
	if err != nil {
		t.Fatalf("failed to import: %v", err)
	}
	if n != 3 {
		t.Errorf("imported %d entries, expected 3", n)
	}
}

func TestExportImportPlainFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "travel-log.json")

	if err := Export(exportFixture(), path); err != nil {
		t.Fatalf("failed to export: %v", err)
	}

	j := testJournal(t)
	n, err := j.Import(path)
	if err != nil {
		t.Fatalf("failed to import: %v", err)
	}
	if n != 3 {
		t.Errorf("imported %d entries, expected 3", n)
	}
}
