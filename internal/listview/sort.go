package listview

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Direction is a sort direction.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// Flip returns the opposite direction.
func (d Direction) Flip() Direction {
	if d == Descending {
		return Ascending
	}
	return Descending
}

// ParseDirection accepts "asc"/"desc" (and the long forms). Anything else is
// ascending.
func ParseDirection(s string) Direction {
	switch s {
	case "desc", "descending":
		return Descending
	default:
		return Ascending
	}
}

// SortKey is the active sort column and direction.
type SortKey struct {
	Field     string
	Direction Direction
}

// Toggle applies a header click: the active field flips direction, any other
// field becomes active in ascending order.
func (k SortKey) Toggle(field string) SortKey {
	if k.Field == field {
		return SortKey{Field: field, Direction: k.Direction.Flip()}
	}
	return SortKey{Field: field, Direction: Ascending}
}

// Collator compares strings in a locale-aware way.
type Collator interface {
	CompareString(a, b string) int
}

// NewCollator returns a collator for the BCP 47 tag, falling back to English
// when the tag does not parse. Collators are not safe for concurrent use.
func NewCollator(tag string) Collator {
	lang, err := language.Parse(tag)
	if err != nil {
		lang = language.English
	}
	return collate.New(lang)
}

// Sort returns a new slice ordered by field. Ties, and pairs whose values
// are not both strings or both numbers, keep their input order in either
// direction.
func Sort[T any](records []T, field Field[T], dir Direction, coll Collator) []T {
	out := slices.Clone(records)
	if out == nil {
		out = []T{}
	}
	slices.SortStableFunc(out, func(a, b T) int {
		c := Compare(field.Get(a), field.Get(b), coll)
		if dir == Descending {
			return -c
		}
		return c
	})
	return out
}
