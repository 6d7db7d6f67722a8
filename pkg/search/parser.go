package search

import (
	"regexp"
	"strconv"
	"strings"
)

// yearPattern matches the first plausible 4-digit year in a query.
// Years outside 19xx/20xx are deliberately not recognized, and no
// plausibility check is applied beyond the prefix.
var yearPattern = regexp.MustCompile(`\b(19|20)\d{2}\b`)

// monthKeywords maps English month names and abbreviations to month
// indices. Matching is substring containment tested in this exact order,
// so the order is part of the observable contract: full name before
// abbreviation, January through December, with both "sep" and "sept"
// resolving to September.
//
// Containment rather than word-boundary matching means an abbreviation
// inside another word matches too ("may" inside "maybe"). That quirk is
// kept intentionally for compatibility with existing journals.
var monthKeywords = []struct {
	keyword string
	month   int
}{
	{"january", 0}, {"jan", 0},
	{"february", 1}, {"feb", 1},
	{"march", 2}, {"mar", 2},
	{"april", 3}, {"apr", 3},
	{"may", 4},
	{"june", 5}, {"jun", 5},
	{"july", 6}, {"jul", 6},
	{"august", 7}, {"aug", 7},
	{"september", 8}, {"sep", 8}, {"sept", 8},
	{"october", 9}, {"oct", 9},
	{"november", 10}, {"nov", 10},
	{"december", 11}, {"dec", 11},
}

// seasonKeywords maps season names to the month indices they cover,
// tested in this order with the same containment matching as months.
var seasonKeywords = []struct {
	keyword string
	months  []int
}{
	{"spring", []int{2, 3, 4}},
	{"summer", []int{5, 6, 7}},
	{"fall", []int{8, 9, 10}},
	{"autumn", []int{8, 9, 10}},
	{"winter", []int{11, 0, 1}},
}

// Filters holds the structured constraints extracted from a query.
// A month filter and a season filter are never both set: a month keyword
// takes precedence and short-circuits season parsing.
type Filters struct {
	Year     int
	HasYear  bool
	Month    int
	HasMonth bool
	Season   []int
}

// ParseYear extracts the first 4-digit year starting with 19 or 20 from
// the query. Only the first match is considered.
func ParseYear(query string) (int, bool) {
	match := yearPattern.FindString(query)
	if match == "" {
		return 0, false
	}
	year, err := strconv.Atoi(match)
	if err != nil {
		return 0, false
	}
	return year, true
}

// ParseMonth returns the month index (0-11) for the first month keyword
// contained in the query, or false when none matches.
func ParseMonth(query string) (int, bool) {
	lowered := strings.ToLower(query)
	for _, mk := range monthKeywords {
		if strings.Contains(lowered, mk.keyword) {
			return mk.month, true
		}
	}
	return 0, false
}

// ParseSeason returns the month indices covered by the first season
// keyword contained in the query, or nil when none matches. The returned
// slice is a copy.
func ParseSeason(query string) []int {
	for _, sk := range seasonKeywords {
		if strings.Contains(query, sk.keyword) {
			months := make([]int, len(sk.months))
			copy(months, sk.months)
			return months
		}
	}
	return nil
}

// ParseFilters runs all three extractors over a normalized query. When a
// month keyword matched, season parsing is skipped so the two filters
// can never conflict.
func ParseFilters(query string) Filters {
	var f Filters
	f.Year, f.HasYear = ParseYear(query)
	f.Month, f.HasMonth = ParseMonth(query)
	if !f.HasMonth {
		f.Season = ParseSeason(query)
	}
	return f
}
