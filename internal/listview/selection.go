package listview

// Selection holds the record open in an edit form, if any.
type Selection[T any] struct {
	rec T
	ok  bool
}

// Select marks rec as being edited, replacing any previous selection.
func (s *Selection[T]) Select(rec T) {
	s.rec = rec
	s.ok = true
}

// Clear drops the selection.
func (s *Selection[T]) Clear() {
	var zero T
	s.rec = zero
	s.ok = false
}

// Get returns the selected record.
func (s Selection[T]) Get() (T, bool) {
	return s.rec, s.ok
}

// IsEdit reports whether a form opened now edits (true) or creates (false).
func (s Selection[T]) IsEdit() bool {
	return s.ok
}
