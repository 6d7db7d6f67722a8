package session

import (
	"strings"
	"sync"
)

// DefaultHistoryLimit caps how many past queries the palette remembers.
const DefaultHistoryLimit = 5

// History is a bounded, most-recent-first list of past search queries.
// Adding an existing query moves it to the front instead of duplicating
// it; whitespace-only queries are ignored.
type History struct {
	mu      sync.Mutex
	queries []string
	limit   int
}

// NewHistory creates a history with the given capacity. Non-positive
// capacities fall back to DefaultHistoryLimit.
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &History{limit: limit}
}

// Add records a query at the front of the history, deduplicating by
// exact text equality and dropping the oldest query when over capacity.
func (h *History) Add(query string) {
	if strings.TrimSpace(query) == "" {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	kept := h.queries[:0]
	for _, q := range h.queries {
		if q != query {
			kept = append(kept, q)
		}
	}
	h.queries = append([]string{query}, kept...)
	if len(h.queries) > h.limit {
		h.queries = h.queries[:h.limit]
	}
}

// Queries returns a copy of the history, most recent first.
func (h *History) Queries() []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]string, len(h.queries))
	copy(out, h.queries)
	return out
}

// Replace swaps the history contents, used when loading persisted
// history from the journal. Input beyond the capacity is dropped.
func (h *History) Replace(queries []string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(queries) > h.limit {
		queries = queries[:h.limit]
	}
	h.queries = make([]string, len(queries))
	copy(h.queries, queries)
}
