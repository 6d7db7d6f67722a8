package core

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// MonthNames holds the English month names indexed 0-11. The search
// engine and the renderers share this table so month navigation results
// and subtitles always agree.
var MonthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthName returns the English name for a month index, or an empty
// string when the index is out of range.
func MonthName(month int) string {
	if month < 0 || month > 11 {
		return ""
	}
	return MonthNames[month]
}

// Entry represents a single travel record. Entries are immutable from
// the search engine's perspective; only the Store mutates them.
//
// The ID is unique across the whole journal. Timestamp records when the
// entry was created or last modified.
type Entry struct {
	ID        string    `json:"id"`
	Location  string    `json:"location"`
	Details   string    `json:"details"`
	Timestamp time.Time `json:"timestamp"`
}

// NewEntry creates an entry with a fresh unique ID and the current time.
// Location and details are stored trimmed, matching what the journal
// accepts from user input.
func NewEntry(location, details string) Entry {
	return Entry{
		ID:        uuid.New().String(),
		Location:  strings.TrimSpace(location),
		Details:   strings.TrimSpace(details),
		Timestamp: time.Now().UTC(),
	}
}
