package listview

import "strings"

// Filter returns the records for which any of fields contains term,
// case-insensitively. An empty term returns every record in order. Null
// values never match, and the input slice is never modified.
func Filter[T any](records []T, term string, fields []Field[T]) []T {
	out := make([]T, 0, len(records))
	if term == "" {
		return append(out, records...)
	}

	needle := strings.ToLower(term)
	for _, rec := range records {
		if matches(rec, needle, fields) {
			out = append(out, rec)
		}
	}
	return out
}

func matches[T any](rec T, needle string, fields []Field[T]) bool {
	for _, f := range fields {
		s, ok := f.Get(rec).Text()
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(s), needle) {
			return true
		}
	}
	return false
}
