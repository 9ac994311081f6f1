// Package util provides common utility functions used across the codebase.
package util

import (
	"sort"
	"strings"

	lev "github.com/agnivade/levenshtein"
)

// maxSuggestDistance is the largest edit distance SuggestSimilar accepts.
const maxSuggestDistance = 2

// SuggestSimilar returns up to limit candidates close to input, closest
// first, by edit distance. Comparison ignores case. Ties keep candidate
// order.
func SuggestSimilar(input string, candidates []string, limit int) []string {
	if input == "" || len(candidates) == 0 || limit <= 0 {
		return nil
	}

	type match struct {
		name string
		dist int
	}

	needle := strings.ToLower(input)
	var matches []match
	for _, c := range candidates {
		if d := lev.ComputeDistance(needle, strings.ToLower(c)); d <= maxSuggestDistance {
			matches = append(matches, match{name: c, dist: d})
		}
	}
	if len(matches) == 0 {
		return nil
	}

	sort.SliceStable(matches, func(i, j int) bool { return matches[i].dist < matches[j].dist })

	if len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.name
	}
	return out
}

// DidYouMean formats suggestions as a hint, or returns "" when there are none.
func DidYouMean(suggestions []string) string {
	switch len(suggestions) {
	case 0:
		return ""
	case 1:
		return "Did you mean '" + suggestions[0] + "'?"
	default:
		return "Did you mean one of: " + strings.Join(suggestions, ", ") + "?"
	}
}
