package search

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/rubiojr/travelog/pkg/core"
)

// DefaultLimit is the maximum number of results a search returns.
const DefaultLimit = 10

// PreviewLength is the number of runes of entry details shown in a
// result subtitle before truncation.
const PreviewLength = 50

// Kind discriminates the three result variants.
type Kind string

const (
	// KindEntry is a travel entry matched by the query.
	KindEntry Kind = "entry"
	// KindYear is a navigational shortcut to a year present in the journal.
	KindYear Kind = "year"
	// KindMonth is a navigational shortcut to one of the twelve months.
	KindMonth Kind = "month"
)

// Result is a single ranked search result. Exactly one variant applies
// depending on Kind: entry results carry Year, Month and Entry; year
// results carry Year; month results carry Month. Icon is a presentation
// tag the renderer maps to a glyph.
type Result struct {
	Kind  Kind
	Year  int
	Month int
	Entry core.Entry
	Score int
	Icon  string
}

// Title returns the primary display line for the result.
func (r Result) Title() string {
	switch r.Kind {
	case KindYear:
		return fmt.Sprintf("Go to %d", r.Year)
	case KindMonth:
		return fmt.Sprintf("%s travels", core.MonthName(r.Month))
	default:
		return r.Entry.Location
	}
}

// Subtitle returns the secondary display line for the result. Entry
// subtitles include the month, year and a truncated details preview.
func (r Result) Subtitle() string {
	switch r.Kind {
	case KindYear:
		return fmt.Sprintf("View all travels from %d", r.Year)
	case KindMonth:
		return fmt.Sprintf("View all %s entries", core.MonthName(r.Month))
	default:
		return fmt.Sprintf("%s %d • %s", core.MonthName(r.Month), r.Year, previewDetails(r.Entry.Details))
	}
}

func previewDetails(details string) string {
	runes := []rune(details)
	if len(runes) <= PreviewLength {
		return details
	}
	return string(runes[:PreviewLength]) + "..."
}

// Store is the read-only journal view the search service needs. Years
// must iterate in a stable insertion order and Entries in append order;
// that order is the tie-break for equally scored results.
type Store interface {
	Years() []int
	Entries(year, month int) []core.Entry
}

// Service ranks journal content against free-text queries. It holds no
// state beyond the store view and re-reads live store state on every
// call, so the store may be mutated freely between searches.
type Service struct {
	store Store
	limit int
}

// NewService creates a search service over the given store view using
// the default result limit.
func NewService(store Store) *Service {
	return &Service{store: store, limit: DefaultLimit}
}

// NewServiceWithLimit creates a search service with a custom result cap.
// Non-positive limits fall back to the default.
func NewServiceWithLimit(store Store, limit int) *Service {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Service{store: store, limit: limit}
}

// Search interprets the query and returns ranked results, capped at the
// configured limit and sorted by non-increasing score. Ties keep
// enumeration order: entries first (store order), then year shortcuts,
// then month shortcuts.
//
// Year and month keywords found in the query act as filters on entry
// results; once a year or month is consumed as a filter the matching
// navigational shortcut is suppressed so the list doesn't redundantly
// offer "go to 2023" while already filtering on 2023.
func (s *Service) Search(query string) []Result {
	normalized := strings.ToLower(strings.TrimSpace(query))
	if normalized == "" {
		return nil
	}

	filters := ParseFilters(normalized)

	var results []Result

	for _, year := range s.store.Years() {
		if filters.HasYear && year != filters.Year {
			continue
		}
		for month := 0; month < 12; month++ {
			if filters.HasMonth && month != filters.Month {
				continue
			}
			if filters.Season != nil && !containsMonth(filters.Season, month) {
				continue
			}
			for _, entry := range s.store.Entries(year, month) {
				score := ScoreEntry(entry, normalized)
				if score > 0 {
					results = append(results, Result{
						Kind:  KindEntry,
						Year:  year,
						Month: month,
						Entry: entry,
						Score: score,
						Icon:  "map-pin",
					})
				}
			}
		}
	}

	if !filters.HasYear {
		for _, year := range s.store.Years() {
			yearText := strconv.Itoa(year)
			if strings.Contains(yearText, normalized) {
				score := scoreLocationPartial
				if len(yearText) == len(normalized) {
					score = scoreLocationExact
				}
				results = append(results, Result{
					Kind:  KindYear,
					Year:  year,
					Score: score,
					Icon:  "calendar",
				})
			}
		}
	}

	if !filters.HasMonth && !filters.HasYear {
		for month, name := range core.MonthNames {
			lowered := strings.ToLower(name)
			if strings.Contains(lowered, normalized) {
				score := scoreLocationPartial
				if lowered == normalized {
					score = scoreLocationExact
				}
				results = append(results, Result{
					Kind:  KindMonth,
					Month: month,
					Score: score,
					Icon:  "clock",
				})
			}
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > s.limit {
		results = results[:s.limit]
	}
	return results
}

func containsMonth(months []int, month int) bool {
	for _, m := range months {
		if m == month {
			return true
		}
	}
	return false
}
