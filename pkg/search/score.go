package search

import (
	"math"
	"strings"

	"github.com/rubiojr/travelog/pkg/core"
)

// Score weights. Exact and substring matches on the location dominate,
// details matches and approximate matches contribute smaller boosts.
const (
	scoreLocationExact   = 100
	scoreLocationPartial = 50
	scoreDetails         = 25
	weightFuzzyLocation  = 30
	weightFuzzyDetails   = 15
)

// ScoreEntry computes the relevance of one entry against a normalized
// (trimmed, lowercased) query. All signals are additive and the sum is
// rounded to the nearest integer:
//
//   - location contains the query: 100 when the match spans the whole
//     location, 50 otherwise
//   - details contain the query: flat 25
//   - approximate location match: ratio x 30
//   - approximate details match: ratio x 15
//
// A score of 0 means no relevance; filtering zero scores out of result
// lists is the ranker's job, not the scorer's.
func ScoreEntry(entry core.Entry, query string) int {
	location := strings.ToLower(entry.Location)
	details := strings.ToLower(entry.Details)

	score := 0.0
	if strings.Contains(location, query) {
		if len(query) == len(location) {
			score += scoreLocationExact
		} else {
			score += scoreLocationPartial
		}
	}
	if strings.Contains(details, query) {
		score += scoreDetails
	}

	score += Match(location, query) * weightFuzzyLocation
	score += Match(details, query) * weightFuzzyDetails

	return int(math.Round(score))
}
