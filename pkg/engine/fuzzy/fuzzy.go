// Package fuzzy matches user-typed option names against a known list.
package fuzzy

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Normalize lower-cases s and folds separators so "Grey Scale", "grey_scale"
// and "grey-scale" compare equal.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "-", "_", "-").Replace(s)
}

// Suggest returns the candidate closest to input, if any is within the
// length-scaled edit distance limit. Ties resolve alphabetically.
func Suggest(input string, candidates []string) (string, bool) {
	in := Normalize(input)
	if in == "" {
		return "", false
	}

	type scored struct {
		name string
		dist int
	}
	var hits []scored
	for _, cand := range candidates {
		c := Normalize(cand)
		if strings.HasPrefix(c, in) && len(in) >= 3 {
			hits = append(hits, scored{cand, 0})
			continue
		}
		dist := levenshtein.ComputeDistance(in, c)
		if dist > Limit(len(c)) {
			continue
		}
		hits = append(hits, scored{cand, dist})
	}
	if len(hits) == 0 {
		return "", false
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].dist == hits[j].dist {
			return hits[i].name < hits[j].name
		}
		return hits[i].dist < hits[j].dist
	})
	return hits[0].name, true
}

// Limit is the largest edit distance accepted for a name of the given length.
func Limit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
