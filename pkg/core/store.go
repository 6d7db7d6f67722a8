package core

import (
	"strconv"
	"strings"
)

// Store is the in-memory travel journal: year -> month (0-11) -> ordered
// entries. Iteration order is part of the contract: years iterate in the
// order they were first added, months 0 through 11, entries in append
// order. Callers wanting sorted years must sort explicitly.
//
// Store is a single-writer, single-reader structure. The search engine
// only reads it through the Years/Entries accessors.
type Store struct {
	years []int
	data  map[int]*yearData
}

type yearData struct {
	months [12][]Entry
}

// NewStore creates an empty journal store.
func NewStore() *Store {
	return &Store{data: make(map[int]*yearData)}
}

// Years returns the years present in the store in insertion order.
// The returned slice is a copy.
func (s *Store) Years() []int {
	years := make([]int, len(s.years))
	copy(years, s.years)
	return years
}

// Entries returns the entries for a given year and month in append
// order. Returns nil for unknown years or out-of-range months.
func (s *Store) Entries(year, month int) []Entry {
	if month < 0 || month > 11 {
		return nil
	}
	yd, ok := s.data[year]
	if !ok {
		return nil
	}
	return yd.months[month]
}

// Add appends an entry to the given year and month. Out-of-range months
// are ignored.
func (s *Store) Add(year, month int, entry Entry) {
	if month < 0 || month > 11 {
		return
	}
	yd, ok := s.data[year]
	if !ok {
		yd = &yearData{}
		s.data[year] = yd
		s.years = append(s.years, year)
	}
	yd.months[month] = append(yd.months[month], entry)
}

// Remove deletes the entry with the given ID from year/month. Returns
// true when an entry was removed.
func (s *Store) Remove(year, month int, entryID string) bool {
	if month < 0 || month > 11 {
		return false
	}
	yd, ok := s.data[year]
	if !ok {
		return false
	}
	for i, e := range yd.months[month] {
		if e.ID == entryID {
			yd.months[month] = append(yd.months[month][:i], yd.months[month][i+1:]...)
			return true
		}
	}
	return false
}

// Update edits the entry with the given ID, optionally moving it to a
// different month within the same year. When the month changes the entry
// is removed from its old position and appended to the new month, keeping
// its ID; in-place edits keep the entry's position. The entry timestamp
// is refreshed either way. Returns false when the entry was not found.
func (s *Store) Update(year, oldMonth, newMonth int, entryID, location, details string) bool {
	if newMonth < 0 || newMonth > 11 {
		return false
	}
	yd, ok := s.data[year]
	if !ok || oldMonth < 0 || oldMonth > 11 {
		return false
	}
	for i, e := range yd.months[oldMonth] {
		if e.ID != entryID {
			continue
		}
		updated := NewEntry(location, details)
		updated.ID = e.ID
		if oldMonth == newMonth {
			yd.months[oldMonth][i] = updated
		} else {
			yd.months[oldMonth] = append(yd.months[oldMonth][:i], yd.months[oldMonth][i+1:]...)
			yd.months[newMonth] = append(yd.months[newMonth], updated)
		}
		return true
	}
	return false
}

// Find returns the entry with the given ID along with its year and
// month, or false when no such entry exists.
func (s *Store) Find(entryID string) (Entry, int, int, bool) {
	for _, year := range s.years {
		yd := s.data[year]
		for month := 0; month < 12; month++ {
			for _, e := range yd.months[month] {
				if e.ID == entryID {
					return e, year, month, true
				}
			}
		}
	}
	return Entry{}, 0, 0, false
}

// Len returns the total number of entries across all years and months.
func (s *Store) Len() int {
	n := 0
	for _, yd := range s.data {
		for month := 0; month < 12; month++ {
			n += len(yd.months[month])
		}
	}
	return n
}

// String returns a compact debug representation listing years and entry
// counts, mostly useful in tests and log lines.
func (s *Store) String() string {
	var b strings.Builder
	b.WriteString("store[")
	for i, year := range s.years {
		if i > 0 {
			b.WriteString(" ")
		}
		yd := s.data[year]
		count := 0
		for month := 0; month < 12; month++ {
			count += len(yd.months[month])
		}
		b.WriteString(strconv.Itoa(year))
		b.WriteString(":")
		b.WriteString(strconv.Itoa(count))
	}
	b.WriteString("]")
	return b.String()
}
