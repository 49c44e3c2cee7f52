package main

import (
	"sort"

	"github.com/Faultbox/objkit/pkg/wavefront"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// maxSuggestDistance bounds the edit distance of a suggestion when the
// token is not a fuzzy subsequence of any keyword.
const maxSuggestDistance = 2

// suggestKeyword returns the known keyword closest to token, or "".
func suggestKeyword(token string) string {
	if token == "" {
		return ""
	}
	keywords := wavefront.Keywords()

	ranks := fuzzy.RankFindFold(token, keywords)
	if len(ranks) > 0 {
		sort.Sort(ranks)
		return ranks[0].Target
	}

	best, bestDist := "", maxSuggestDistance+1
	for _, k := range keywords {
		if d := fuzzy.LevenshteinDistance(token, k); d < bestDist {
			best, bestDist = k, d
		}
	}
	return best
}
