package search

import "testing"

func TestMatch(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		query    string
		expected float64
	}{
		{
			name:     "exact match",
			text:     "paris",
			query:    "paris",
			expected: 1.0,
		},
		{
			name:     "completely different strings",
			text:     "paris",
			query:    "tokyo",
			expected: 0,
		},
		{
			name:     "query as subsequence of longer text",
			text:     "paris france",
			query:    "paris",
			expected: 1.0,
		},
		{
			name:     "scattered subsequence",
			text:     "pxaxrxixs",
			query:    "paris",
			expected: 1.0,
		},
		{
			name:     "empty query",
			text:     "paris",
			query:    "",
			expected: 0,
		},
		{
			name:     "empty text",
			text:     "",
			query:    "paris",
			expected: 0,
		},
		{
			name:     "query longer than text short-circuits",
			text:     "par",
			query:    "paris",
			expected: 0,
		},
		{
			name:     "case sensitive",
			text:     "Paris",
			query:    "paris",
			expected: 0,
		},
		{
			name:     "incomplete subsequence gets no partial credit",
			text:     "prais",
			query:    "pars",
			expected: 0,
		},
		{
			name:     "subsequence broken by greedy consumption",
			text:     "london",
			query:    "prs",
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Match(tt.text, tt.query); got != tt.expected {
				t.Errorf("Match(%q, %q) = %v, expected %v", tt.text, tt.query, got, tt.expected)
			}
		})
	}
}

func TestMatchAllOrNothing(t *testing.T) {
	// The greedy scan only ever returns 0 or 1: the ratio is reported
	// only when every query rune was consumed.
	pairs := [][2]string{
		{"amazing summer trip", "summer"},
		{"new york", "nyk"},
		{"tokyo", "too"},
		{"tokyo", "oyk"},
	}
	for _, p := range pairs {
		got := Match(p[0], p[1])
		if got != 0 && got != 1 {
			t.Errorf("Match(%q, %q) = %v, expected 0 or 1", p[0], p[1], got)
		}
	}
}
