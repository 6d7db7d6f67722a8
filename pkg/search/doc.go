// Package search implements the query interpretation and ranked-search
// engine for the travelog journal.
//
// # Overview
//
// A free-text query goes through three stages. The filter parser pulls
// structured constraints out of the text: a 4-digit year, an English
// month keyword, or a season keyword. The scorer rates every surviving
// entry with a mix of exact-substring and approximate-subsequence
// signals. The service then merges entry results with synthesized
// year/month navigation shortcuts, sorts by score and caps the list.
//
// # Matching semantics
//
// Keyword matching is substring containment in a fixed table order, not
// word-boundary matching. This keeps behavior compatible with existing
// journals, quirks included: "maybe" matches the month May. The
// approximate matcher is a greedy ordered-subsequence scan that gives no
// partial credit for incomplete matches. None of this should be "fixed"
// without treating it as a deliberate compatibility break.
//
// # Ordering contract
//
// Results are sorted by non-increasing score with a stable sort, so ties
// preserve enumeration order: entries in store iteration order (years as
// inserted, months 0-11, entries as appended), then year shortcuts, then
// month shortcuts. At most DefaultLimit results are returned.
//
// # Usage
//
//	service := search.NewService(store)
//	for _, result := range service.Search("summer 2023 paris") {
//		fmt.Println(result.Title(), result.Subtitle())
//	}
//
// The service keeps no cache and re-reads the store on every call; the
// caller may mutate the store freely between searches.
package search
