package app

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Suggest returns up to n candidates closest to query by edit distance,
// ignoring case. Candidates further than half the query length away are
// dropped.
func Suggest(candidates []string, query string, n int) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" || n <= 0 {
		return nil
	}
	limit := len(query)/2 + 1

	type scored struct {
		name string
		dist int
	}
	var matches []scored
	for _, c := range candidates {
		lc := strings.ToLower(c)
		d := levenshtein.ComputeDistance(query, lc)
		if strings.HasPrefix(lc, query) {
			d = 0
		}
		if d <= limit {
			matches = append(matches, scored{name: c, dist: d})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].dist < matches[j].dist
	})
	if len(matches) > n {
		matches = matches[:n]
	}
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.name
	}
	return out
}
