package listview

import (
	"context"
	"slices"

	"github.com/zjrosen/restodesk/internal/log"
)

// Ticket identifies one fetch. Tickets increase in issue order.
type Ticket uint64

// Source is a screen's in-memory record cache in server response order.
// It is owned by a single screen and is not safe for concurrent use.
type Source[T any, K comparable] struct {
	name         string
	key          func(T) K
	records      []T
	issued       Ticket
	applied      Ticket
	inflight     int
	err          error
	discardStale bool
}

// NewSource creates an empty cache keyed by key. name is used in logs.
func NewSource[T any, K comparable](name string, key func(T) K) *Source[T, K] {
	return &Source[T, K]{name: name, key: key}
}

// SetDiscardStale controls what happens when an older fetch resolves after a
// newer one was applied: false (default) applies it anyway, true drops it.
// Both cases are logged.
func (s *Source[T, K]) SetDiscardStale(discard bool) {
	s.discardStale = discard
}

// Records returns a copy of the cached records.
func (s *Source[T, K]) Records() []T {
	return slices.Clone(s.records)
}

// Len returns the number of cached records.
func (s *Source[T, K]) Len() int {
	return len(s.records)
}

// Err returns the error of the last failed fetch, cleared by the next
// successful one.
func (s *Source[T, K]) Err() error {
	return s.err
}

// Loading reports whether any fetch is in flight.
func (s *Source[T, K]) Loading() bool {
	return s.inflight > 0
}

// Replace swaps the whole cache.
func (s *Source[T, K]) Replace(records []T) {
	s.records = slices.Clone(records)
}

// BeginFetch records the start of a fetch and returns its ticket.
func (s *Source[T, K]) BeginFetch() Ticket {
	s.issued++
	s.inflight++
	return s.issued
}

// Stale reports whether a fetch with ticket t would resolve after a newer
// one was already applied.
func (s *Source[T, K]) Stale(t Ticket) bool {
	return t < s.applied
}

// CompleteFetch settles the fetch identified by t. On error the previous
// records are kept and the error is stored. It reports whether records were
// replaced.
func (s *Source[T, K]) CompleteFetch(t Ticket, records []T, err error) bool {
	if s.inflight > 0 {
		s.inflight--
	}
	if err != nil {
		s.err = err
		log.ErrorErr(log.CatPipeline, "fetch failed, keeping previous records", err,
			"screen", s.name, "ticket", t, "kept", len(s.records))
		return false
	}

	if s.Stale(t) {
		if s.discardStale {
			log.Warn(log.CatPipeline, "discarding stale fetch", "screen", s.name, "ticket", t, "applied", s.applied)
			return false
		}
		log.Warn(log.CatPipeline, "overlapping fetch resolved out of order, applying anyway",
			"screen", s.name, "ticket", t, "applied", s.applied)
	}

	s.records = slices.Clone(records)
	if s.records == nil {
		s.records = []T{}
	}
	s.applied = max(s.applied, t)
	s.err = nil
	log.Debug(log.CatPipeline, "source replaced", "screen", s.name, "ticket", t, "count", len(s.records))
	return true
}

// Load runs fetch synchronously under a ticket.
func (s *Source[T, K]) Load(ctx context.Context, fetch func(context.Context) ([]T, error)) error {
	t := s.BeginFetch()
	records, err := fetch(ctx)
	s.CompleteFetch(t, records, err)
	return err
}

// Find returns the record with key k.
func (s *Source[T, K]) Find(k K) (T, bool) {
	if i := s.index(k); i >= 0 {
		return s.records[i], true
	}
	var zero T
	return zero, false
}

// Upsert replaces the record sharing rec's key, or appends rec. A record
// whose key is still the zero value is always appended. It reports whether
// rec was appended.
func (s *Source[T, K]) Upsert(rec T) bool {
	var zero K
	if k := s.key(rec); k != zero {
		if i := s.index(k); i >= 0 {
			s.records[i] = rec
			return false
		}
	}
	s.records = append(s.records, rec)
	return true
}

// Remove deletes the record with key k and reports whether one was found.
func (s *Source[T, K]) Remove(k K) bool {
	i := s.index(k)
	if i < 0 {
		return false
	}
	s.records = slices.Delete(s.records, i, i+1)
	return true
}

func (s *Source[T, K]) index(k K) int {
	return slices.IndexFunc(s.records, func(r T) bool { return s.key(r) == k })
}
