package listview

import (
	"slices"
	"strings"
)

// Rank orders typeahead options for term: inactive options are dropped,
// the rest must contain term (case-insensitive). Names starting with term
// come first, then the collated lowercase name decides. An empty term
// returns all active options in source order.
func Rank[T any](options []T, term string, name func(T) string, active func(T) bool, coll Collator) []T {
	out := make([]T, 0, len(options))
	needle := strings.ToLower(term)
	for _, o := range options {
		if active != nil && !active(o) {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(name(o)), needle) {
			continue
		}
		out = append(out, o)
	}
	if needle == "" {
		return out
	}

	slices.SortStableFunc(out, func(a, b T) int {
		an, bn := strings.ToLower(name(a)), strings.ToLower(name(b))
		ap, bp := strings.HasPrefix(an, needle), strings.HasPrefix(bn, needle)
		switch {
		case ap && !bp:
			return -1
		case !ap && bp:
			return 1
		}
		return coll.CompareString(an, bn)
	})
	return out
}
