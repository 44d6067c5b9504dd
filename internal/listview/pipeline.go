// Package listview implements the list pipeline every master screen runs:
// a source cache of records, a free-text filter, a sort stage and a page
// slice, plus the search debouncer and the single edit selection.
//
// Recomputation always happens in the order filter → sort → paginate and
// always starts from the full source cache, so clearing the search term
// restores every record.
package listview

import (
	"errors"
	"fmt"
)

// ErrUnknownField is returned when a sort or search field is not configured.
var ErrUnknownField = errors.New("unknown field")

// Config describes one screen's pipeline.
type Config[T any, K comparable] struct {
	// Name identifies the screen in logs.
	Name string
	// Key returns the primary key of a record.
	Key func(T) K
	// Fields lists every sortable/searchable accessor.
	Fields []Field[T]
	// Searchable names the fields the filter ORs across.
	Searchable []string
	// DefaultSort is the initial sort key. An empty Field leaves records in
	// source order until a column is chosen.
	DefaultSort SortKey
	// PageSize defaults to DefaultPageSize.
	PageSize int
	// Collator defaults to English collation.
	Collator Collator
	// DiscardStale drops fetch results that resolve after a newer fetch.
	DiscardStale bool
}

// Page is one recomputed view of the pipeline.
type Page[T any] struct {
	Rows []T
	// Filtered is the sorted, filtered list before pagination; exports use it.
	Filtered    []T
	Term        string
	Sort        SortKey
	Index       int
	Size        int
	TotalPages  int
	Total       int
	SourceTotal int
	Loading     bool
	Err         error
}

// HasPrev reports whether a previous page exists.
func (p Page[T]) HasPrev() bool {
	return p.Index > 1
}

// HasNext reports whether a next page exists.
func (p Page[T]) HasNext() bool {
	return p.Index < p.TotalPages
}

// Empty reports whether the page has no rows to show.
func (p Page[T]) Empty() bool {
	return len(p.Rows) == 0
}

// Pipeline owns all list state of one screen.
type Pipeline[T any, K comparable] struct {
	cfg        Config[T, K]
	source     *Source[T, K]
	searchable []Field[T]
	term       string
	sort       SortKey
	window     Window
	selection  Selection[T]
}

// New validates cfg and returns a pipeline with an empty source.
func New[T any, K comparable](cfg Config[T, K]) (*Pipeline[T, K], error) {
	if cfg.Key == nil {
		return nil, errors.New("listview: key accessor is required")
	}
	if len(cfg.Fields) == 0 {
		return nil, errors.New("listview: at least one field is required")
	}
	seen := make(map[string]bool, len(cfg.Fields))
	for _, f := range cfg.Fields {
		if f.Name == "" || f.Get == nil {
			return nil, errors.New("listview: fields need a name and accessor")
		}
		if seen[f.Name] {
			return nil, fmt.Errorf("listview: duplicate field %q", f.Name)
		}
		seen[f.Name] = true
	}

	searchable := make([]Field[T], 0, len(cfg.Searchable))
	for _, name := range cfg.Searchable {
		f, ok := FieldByName(cfg.Fields, name)
		if !ok {
			return nil, fmt.Errorf("listview: searchable %q: %w", name, ErrUnknownField)
		}
		searchable = append(searchable, f)
	}
	if cfg.DefaultSort.Field != "" && !seen[cfg.DefaultSort.Field] {
		return nil, fmt.Errorf("listview: default sort %q: %w", cfg.DefaultSort.Field, ErrUnknownField)
	}
	if cfg.PageSize < 1 {
		cfg.PageSize = DefaultPageSize
	}
	if cfg.Collator == nil {
		cfg.Collator = NewCollator("en")
	}

	source := NewSource[T, K](cfg.Name, cfg.Key)
	source.SetDiscardStale(cfg.DiscardStale)

	return &Pipeline[T, K]{
		cfg:        cfg,
		source:     source,
		searchable: searchable,
		sort:       cfg.DefaultSort,
		window:     Window{Size: cfg.PageSize, Index: 1},
	}, nil
}

// Source exposes the record cache for fetches and optimistic patches.
func (p *Pipeline[T, K]) Source() *Source[T, K] {
	return p.source
}

// Key returns the primary key of rec.
func (p *Pipeline[T, K]) Key(rec T) K {
	return p.cfg.Key(rec)
}

// Term returns the committed search term.
func (p *Pipeline[T, K]) Term() string {
	return p.term
}

// SortKey returns the active sort key.
func (p *Pipeline[T, K]) SortKey() SortKey {
	return p.sort
}

// Window returns the page window.
func (p *Pipeline[T, K]) Window() Window {
	return p.window
}

// SetTerm commits a search term and returns to page one.
func (p *Pipeline[T, K]) SetTerm(term string) {
	p.term = term
	p.window.Index = 1
}

// SortBy toggles the sort on field and returns to page one.
func (p *Pipeline[T, K]) SortBy(field string) error {
	if _, ok := FieldByName(p.cfg.Fields, field); !ok {
		return fmt.Errorf("sort by %q: %w", field, ErrUnknownField)
	}
	p.sort = p.sort.Toggle(field)
	p.window.Index = 1
	return nil
}

// SetSort sets the sort key directly and returns to page one.
func (p *Pipeline[T, K]) SetSort(key SortKey) error {
	if key.Field != "" {
		if _, ok := FieldByName(p.cfg.Fields, key.Field); !ok {
			return fmt.Errorf("sort by %q: %w", key.Field, ErrUnknownField)
		}
	}
	p.sort = key
	p.window.Index = 1
	return nil
}

// SetPageSize changes the page size and returns to page one. Sizes below one
// are ignored.
func (p *Pipeline[T, K]) SetPageSize(size int) {
	if size < 1 {
		return
	}
	p.window.Size = size
	p.window.Index = 1
}

// SetPageIndex moves to index without clamping; an out-of-range index
// renders an empty page.
func (p *Pipeline[T, K]) SetPageIndex(index int) {
	p.window.Index = index
}

// GoToPage moves to index clamped to the existing pages.
func (p *Pipeline[T, K]) GoToPage(index int) {
	total := TotalPages(len(p.filtered()), p.window.Size)
	p.window.Index = min(max(index, 1), total)
}

// NextPage advances one page unless already on the last.
func (p *Pipeline[T, K]) NextPage() {
	p.GoToPage(p.window.Index + 1)
}

// PrevPage goes back one page unless already on the first.
func (p *Pipeline[T, K]) PrevPage() {
	p.GoToPage(p.window.Index - 1)
}

// Select opens rec for editing.
func (p *Pipeline[T, K]) Select(rec T) {
	p.selection.Select(rec)
}

// ClearSelection closes the edit form state.
func (p *Pipeline[T, K]) ClearSelection() {
	p.selection.Clear()
}

// Selection returns the record being edited.
func (p *Pipeline[T, K]) Selection() (T, bool) {
	return p.selection.Get()
}

// IsEdit reports whether the form is in edit mode.
func (p *Pipeline[T, K]) IsEdit() bool {
	return p.selection.IsEdit()
}

// Saved applies a successful create or update locally and clears the
// selection. Callers follow up with a full refetch.
func (p *Pipeline[T, K]) Saved(rec T) {
	p.source.Upsert(rec)
	p.selection.Clear()
}

// Deleted removes the record locally and clears the selection if it held
// that record.
func (p *Pipeline[T, K]) Deleted(key K) {
	p.source.Remove(key)
	if sel, ok := p.selection.Get(); ok && p.cfg.Key(sel) == key {
		p.selection.Clear()
	}
}

// Filtered returns the filtered, sorted list before pagination.
func (p *Pipeline[T, K]) Filtered() []T {
	return p.filtered()
}

// View recomputes the current page.
func (p *Pipeline[T, K]) View() Page[T] {
	filtered := p.filtered()
	return Page[T]{
		Rows:        Paginate(filtered, p.window.Size, p.window.Index),
		Filtered:    filtered,
		Term:        p.term,
		Sort:        p.sort,
		Index:       p.window.Index,
		Size:        p.window.Size,
		TotalPages:  TotalPages(len(filtered), p.window.Size),
		Total:       len(filtered),
		SourceTotal: p.source.Len(),
		Loading:     p.source.Loading(),
		Err:         p.source.Err(),
	}
}

func (p *Pipeline[T, K]) filtered() []T {
	rows := Filter(p.source.records, p.term, p.searchable)
	if p.sort.Field == "" {
		return rows
	}
	f, _ := FieldByName(p.cfg.Fields, p.sort.Field)
	return Sort(rows, f, p.sort.Direction, p.cfg.Collator)
}
