package core

import (
	"reflect"
	"testing"
)

func TestStoreYearsKeepInsertionOrder(t *testing.T) {
	store := NewStore()
	store.Add(2023, 5, NewEntry("Paris", ""))
	store.Add(2021, 2, NewEntry("Rome", ""))
	store.Add(2022, 8, NewEntry("Tokyo", ""))
	store.Add(2023, 0, NewEntry("Oslo", ""))

	expected := []int{2023, 2021, 2022}
	if got := store.Years(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Years() = %v, expected %v", got, expected)
	}
}

func TestStoreYearsReturnsCopy(t *testing.T) {
	store := NewStore()
	store.Add(2023, 0, NewEntry("Paris", ""))

	years := store.Years()
	years[0] = 1900

	if store.Years()[0] != 2023 {
		t.Error("mutating the returned slice leaked into the store")
	}
}

func TestStoreEntriesAppendOrder(t *testing.T) {
	store := NewStore()
	first := NewEntry("Paris", "first")
	second := NewEntry("Paris", "second")
	store.Add(2023, 5, first)
	store.Add(2023, 5, second)

	entries := store.Entries(2023, 5)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID != first.ID || entries[1].ID != second.ID {
		t.Errorf("entries out of append order: %+v", entries)
	}
}

func TestStoreEntriesUnknown(t *testing.T) {
	store := NewStore()
	store.Add(2023, 5, NewEntry("Paris", ""))

	if got := store.Entries(1999, 5); got != nil {
		t.Errorf("expected nil for unknown year, got %v", got)
	}
	if got := store.Entries(2023, 12); got != nil {
		t.Errorf("expected nil for out-of-range month, got %v", got)
	}
	if got := store.Entries(2023, -1); got != nil {
		t.Errorf("expected nil for negative month, got %v", got)
	}
}

func TestStoreAddIgnoresBadMonth(t *testing.T) {
	store := NewStore()
	store.Add(2023, 12, NewEntry("Paris", ""))
	store.Add(2023, -1, NewEntry("Paris", ""))

	if store.Len() != 0 {
		t.Errorf("expected empty store, got %d entries", store.Len())
	}
	if len(store.Years()) != 0 {
		t.Errorf("bad-month add registered year: %v", store.Years())
	}
}

func TestStoreRemove(t *testing.T) {
	store := NewStore()
	entry := NewEntry("Paris", "")
	store.Add(2023, 5, NewEntry("Tokyo", ""))
	store.Add(2023, 5, entry)

	if !store.Remove(2023, 5, entry.ID) {
		t.Fatal("Remove returned false for an existing entry")
	}
	if store.Len() != 1 {
		t.Errorf("expected 1 entry left, got %d", store.Len())
	}
	if store.Remove(2023, 5, entry.ID) {
		t.Error("Remove returned true for an already removed entry")
	}
	if store.Remove(1999, 5, entry.ID) {
		t.Error("Remove returned true for an unknown year")
	}
}

func TestStoreUpdateInPlace(t *testing.T) {
	store := NewStore()
	first := NewEntry("Paris", "old details")
	second := NewEntry("Tokyo", "")
	store.Add(2023, 5, first)
	store.Add(2023, 5, second)

	if !store.Update(2023, 5, 5, first.ID, "Lyon", "new details") {
		t.Fatal("Update returned false for an existing entry")
	}

	entries := store.Entries(2023, 5)
	if entries[0].ID != first.ID {
		t.Error("in-place update lost the entry's position")
	}
	if entries[0].Location != "Lyon" || entries[0].Details != "new details" {
		t.Errorf("update did not apply: %+v", entries[0])
	}
	if !entries[0].Timestamp.After(first.Timestamp) && !entries[0].Timestamp.Equal(first.Timestamp) {
		t.Error("update did not refresh the timestamp")
	}
}

func TestStoreUpdateMovesMonth(t *testing.T) {
	store := NewStore()
	entry := NewEntry("Paris", "")
	store.Add(2023, 5, entry)

	if !store.Update(2023, 5, 8, entry.ID, "Paris", "moved") {
		t.Fatal("Update returned false for an existing entry")
	}

	if got := store.Entries(2023, 5); len(got) != 0 {
		t.Errorf("entry still present in the old month: %v", got)
	}
	moved := store.Entries(2023, 8)
	if len(moved) != 1 {
		t.Fatalf("expected 1 entry in the new month, got %d", len(moved))
	}
	if moved[0].ID != entry.ID {
		t.Error("moving months changed the entry ID")
	}
	if moved[0].Details != "moved" {
		t.Errorf("update did not apply: %+v", moved[0])
	}
}

func TestStoreUpdateMissing(t *testing.T) {
	store := NewStore()
	store.Add(2023, 5, NewEntry("Paris", ""))

	if store.Update(2023, 5, 5, "no-such-id", "X", "") {
		t.Error("Update returned true for an unknown entry")
	}
	if store.Update(1999, 5, 5, "no-such-id", "X", "") {
		t.Error("Update returned true for an unknown year")
	}
	if store.Update(2023, 5, 12, "no-such-id", "X", "") {
		t.Error("Update returned true for an out-of-range target month")
	}
}

func TestStoreFind(t *testing.T) {
	store := NewStore()
	entry := NewEntry("Tokyo", "")
	store.Add(2023, 5, NewEntry("Paris", ""))
	store.Add(2022, 11, entry)

	found, year, month, ok := store.Find(entry.ID)
	if !ok {
		t.Fatal("Find returned false for an existing entry")
	}
	if found.ID != entry.ID || year != 2022 || month != 11 {
		t.Errorf("Find = %+v at %d/%d", found, year, month)
	}

	if _, _, _, ok := store.Find("no-such-id"); ok {
		t.Error("Find returned true for an unknown ID")
	}
}

func TestStoreLen(t *testing.T) {
	store := NewStore()
	if store.Len() != 0 {
		t.Errorf("empty store Len() = %d", store.Len())
	}
	store.Add(2023, 5, NewEntry("Paris", ""))
	store.Add(2023, 8, NewEntry("Tokyo", ""))
	store.Add(2022, 11, NewEntry("New York", ""))
	if store.Len() != 3 {
		t.Errorf("Len() = %d, expected 3", store.Len())
	}
}

func TestStoreString(t *testing.T) {
	store := NewStore()
	store.Add(2023, 5, NewEntry("Paris", ""))
	store.Add(2023, 8, NewEntry("Tokyo", ""))
	store.Add(2022, 11, NewEntry("New York", ""))

	if got := store.String(); got != "store[2023:2 2022:1]" {
		t.Errorf("String() = %q", got)
	}
}

func TestNewEntryTrimsFields(t *testing.T) {
	entry := NewEntry("  Paris  ", "\tA trip\n")
	if entry.Location != "Paris" || entry.Details != "A trip" {
		t.Errorf("fields not trimmed: %+v", entry)
	}
	if entry.ID == "" {
		t.Error("expected a generated ID")
	}
	if entry.Timestamp.IsZero() {
		t.Error("expected a timestamp")
	}
}

func TestMonthName(t *testing.T) {
	if got := MonthName(0); got != "January" {
		t.Errorf("MonthName(0) = %q", got)
	}
	if got := MonthName(11); got != "December" {
		t.Errorf("MonthName(11) = %q", got)
	}
	if got := MonthName(12); got != "" {
		t.Errorf("MonthName(12) = %q", got)
	}
	if got := MonthName(-1); got != "" {
		t.Errorf("MonthName(-1) = %q", got)
	}
}
