package search

// Match computes the ordered-subsequence match ratio between text and
// query. A single greedy left-to-right pass walks text with a cursor
// into query, advancing both on equal runes. The ratio of matched runes
// to query length is returned only when every query rune was consumed;
// an incomplete subsequence scores exactly 0, with no partial credit.
//
// The greedy pass is deterministic and O(len(text)) but is not an
// optimal-subsequence search; that trade-off is deliberate and the
// results are part of the scoring contract.
//
// Match is case-sensitive. Callers normalize before invoking it.
// Empty inputs score 0, as does a query longer than the text (a longer
// query can never be a subsequence of a shorter text).
func Match(text, query string) float64 {
	if text == "" || query == "" {
		return 0
	}

	textRunes := []rune(text)
	queryRunes := []rune(query)
	if len(queryRunes) > len(textRunes) {
		return 0
	}

	matched := 0
	queryIndex := 0
	for i := 0; i < len(textRunes) && queryIndex < len(queryRunes); i++ {
		if textRunes[i] == queryRunes[queryIndex] {
			matched++
			queryIndex++
		}
	}

	if queryIndex != len(queryRunes) {
		return 0
	}
	return float64(matched) / float64(len(queryRunes))
}
