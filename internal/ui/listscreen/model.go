// Package listscreen is the generic master list screen: a searchable,
// sortable, paged table of one entity with add, edit, delete, refresh and
// export, driven by a listview pipeline.
package listscreen

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/zjrosen/restodesk/internal/export"
	"github.com/zjrosen/restodesk/internal/listview"
	"github.com/zjrosen/restodesk/internal/masters"
	"github.com/zjrosen/restodesk/internal/ui/help"
	"github.com/zjrosen/restodesk/internal/ui/modal"
	"github.com/zjrosen/restodesk/internal/ui/recordform"
	"github.com/zjrosen/restodesk/internal/ui/styles"
	"github.com/zjrosen/restodesk/internal/ui/table"
	"github.com/zjrosen/restodesk/internal/ui/toaster"
)

// Backend is the REST resource behind a screen. *api.Resource[T]
// implements it.
type Backend[T any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, rec T) (T, error)
	Update(ctx context.Context, id masters.ID, rec T) (T, error)
	Delete(ctx context.Context, id masters.ID) error
}

// Lookups serves the option lists of lookup form fields. *lookup.Lists
// implements it.
type Lookups interface {
	Options(ctx context.Context, name string) ([]masters.Option, error)
	Invalidate(ctx context.Context, names ...string)
}

// Config wires one screen.
type Config[T any] struct {
	Def     masters.Definition[T]
	Backend Backend[T]
	// Lookups may be nil when the screen has no lookup fields.
	Lookups Lookups
	// Dependents are the lookup lists a save on this screen changes.
	Dependents []string
	Session    masters.Session

	PageSize     int
	Debounce     time.Duration
	Sort         listview.SortKey
	Collator     listview.Collator
	DiscardStale bool

	ExportDir     string
	ExportFormat  export.Format
	MarkdownStyle string

	// Context bounds every request; defaults to context.Background().
	Context context.Context
	// Now stamps export file names; defaults to time.Now.
	Now func() time.Time
	// Tracer records fetch and export spans; defaults to a no-op tracer.
	Tracer trace.Tracer
}

type mode int

const (
	modeTable mode = iota
	modeSearch
	modeForm
	modeConfirm
	modeHelp
)

// Model is the screen state. Record state lives in the pipeline, which
// the model owns exclusively.
type Model[T any] struct {
	cfg       Config[T]
	pipeline  *listview.Pipeline[T, masters.ID]
	search    textinput.Model
	debouncer *listview.Debouncer[string]
	sched     *tickScheduler
	tableCfg  table.Config

	mode    mode
	cursor  int
	form    *recordform.Model[T]
	confirm *modal.Model
	help    *help.Model
	toaster toaster.Model
	pending *recordform.SubmitMsg[T]

	width  int
	height int
}

// New builds the screen. It fails only when the definition does not
// describe a valid pipeline.
func New[T any](cfg Config[T]) (Model[T], error) {
	if cfg.Context == nil {
		cfg.Context = context.Background()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Tracer == nil {
		cfg.Tracer = noop.NewTracerProvider().Tracer("listscreen")
	}
	if cfg.Collator == nil {
		cfg.Collator = listview.NewCollator("en")
	}
	if cfg.ExportFormat == "" {
		cfg.ExportFormat = export.CSV
	}

	pcfg := cfg.Def.Pipeline(cfg.PageSize, cfg.DiscardStale)
	pcfg.Collator = cfg.Collator
	if cfg.Sort.Field != "" {
		pcfg.DefaultSort = cfg.Sort
	}
	p, err := listview.New(pcfg)
	if err != nil {
		return Model[T]{}, fmt.Errorf("screen %s: %w", cfg.Def.Name, err)
	}

	delay := cfg.Def.Debounce
	if cfg.Debounce > 0 {
		delay = cfg.Debounce
	}

	ti := textinput.New()
	ti.Prompt = "Search: "
	ti.Placeholder = "type / to search " + cfg.Def.Plural

	m := Model[T]{
		cfg:      cfg,
		pipeline: p,
		search:   ti,
		sched:    newTickScheduler(),
		toaster:  toaster.New(),
		tableCfg: tableConfig(cfg.Def),
	}
	m.debouncer = listview.NewDebouncer(delay, m.sched, func(term string) {
		p.SetTerm(term)
	})
	return m, nil
}

func tableConfig[T any](def masters.Definition[T]) table.Config {
	cols := make([]table.Column, len(def.Columns))
	for i, c := range def.Columns {
		cols[i] = table.Column{Title: c.Title, Width: c.Width, Sort: c.Sort}
		if c.Title == "Status" && def.Active != nil {
			cols[i].Style = statusCell
		}
	}
	return table.Config{Columns: cols, ZonePrefix: def.Name, EmptyMessage: "No results"}
}

func statusCell(cell string) string {
	trimmed := strings.TrimSpace(cell)
	switch trimmed {
	case masters.StatusLabel(true):
		return styles.StatusText(cell, true)
	case masters.StatusLabel(false):
		return styles.StatusText(cell, false)
	}
	return cell
}

// Name returns the screen name.
func (m Model[T]) Name() string {
	return m.cfg.Def.Name
}

// Title returns the screen title.
func (m Model[T]) Title() string {
	return m.cfg.Def.Title
}

// Pipeline exposes the list state for tests and headless callers.
func (m Model[T]) Pipeline() *listview.Pipeline[T, masters.ID] {
	return m.pipeline
}

// SearchValue returns what the search box shows, which may run ahead of
// the committed search term while the debounce window is open.
func (m Model[T]) SearchValue() string {
	return m.search.Value()
}

// Cursor returns the highlighted row on the current page.
func (m Model[T]) Cursor() int {
	return m.cursor
}

// Toast returns the current notice, or "".
func (m Model[T]) Toast() string {
	return m.toaster.Message()
}

// Editing reports whether the record form is open.
func (m Model[T]) Editing() bool {
	return m.form != nil
}

// Init starts the first fetch.
func (m Model[T]) Init() tea.Cmd {
	return m.fetch()
}

// Close stops the debounce timer.
func (m Model[T]) Close() {
	m.debouncer.Stop()
}

func (m Model[T]) helpTopic() help.Topic {
	titleOf := func(field string) string {
		for _, c := range m.cfg.Def.Columns {
			if c.Sort == field {
				return c.Title
			}
		}
		return field
	}
	t := help.Topic{Title: m.cfg.Def.Title, Groups: listHelp()}
	for _, f := range m.cfg.Def.Searchable {
		t.Searchable = append(t.Searchable, titleOf(f))
	}
	for _, c := range m.cfg.Def.Columns {
		if c.Sort != "" {
			t.Sortable = append(t.Sortable, c.Title)
		}
	}
	if hasStatusInput(m.cfg.Def.Form) {
		value := "1"
		if m.cfg.Def.Convention == masters.ActiveIsZero {
			value = "0"
		}
		t.Notes = append(t.Notes, "Active "+m.cfg.Def.Plural+" are stored with status "+value+".")
	}
	return t
}

func hasStatusInput[T any](form []masters.FormField[T]) bool {
	for _, f := range form {
		if f.Kind == masters.InputStatus {
			return true
		}
	}
	return false
}
