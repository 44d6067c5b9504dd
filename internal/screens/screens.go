// Package screens binds every master definition to its backend resource,
// lookups and configured overrides, for the interactive menu and for the
// headless list and export commands.
package screens

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/restodesk/internal/api"
	"github.com/zjrosen/restodesk/internal/config"
	"github.com/zjrosen/restodesk/internal/export"
	"github.com/zjrosen/restodesk/internal/listview"
	"github.com/zjrosen/restodesk/internal/lookup"
	"github.com/zjrosen/restodesk/internal/masters"
	"github.com/zjrosen/restodesk/internal/ui/listscreen"
)

// ErrUnknownScreen is returned for names no screen is registered under.
var ErrUnknownScreen = errors.New("unknown screen")

// Screen is an open list screen.
type Screen interface {
	tea.Model
	Name() string
	Title() string
	Close()
}

// Env is what opening a screen needs.
type Env struct {
	Config config.Config
	Client *api.Client
	// Context bounds every request the screen makes.
	Context context.Context
	Now     func() time.Time
	// Tracer records screen-level spans; nil disables them.
	Tracer trace.Tracer
}

// Query selects rows for a headless listing.
type Query struct {
	Term string
	// Sort is "<field>" or "<field> desc"; empty keeps the screen's sort.
	Sort     string
	Page     int
	PageSize int
	// All returns every filtered row instead of one page.
	All bool
}

// Result is one headless listing.
type Result struct {
	Table       export.Table
	Sort        listview.SortKey
	Page        int
	TotalPages  int
	Total       int
	SourceTotal int
}

// Entry is one registered screen.
type Entry struct {
	Name  string
	Title string
	Scope masters.Scope

	open  func(Env) (Screen, error)
	query func(context.Context, Env, Query) (Result, error)
}

// Available reports why the screen cannot be used with session, or nil.
func (e Entry) Available(s masters.Session) error {
	return s.Satisfies(e.Scope)
}

// Open builds the interactive screen.
func (e Entry) Open(env Env) (Screen, error) {
	if err := e.Available(env.Client.Session()); err != nil {
		return nil, fmt.Errorf("%s: %w", e.Title, err)
	}
	return e.open(env)
}

// Query fetches the records once and runs them through the pipeline.
func (e Entry) Query(ctx context.Context, env Env, q Query) (Result, error) {
	if err := e.Available(env.Client.Session()); err != nil {
		return Result{}, fmt.Errorf("%s: %w", e.Title, err)
	}
	return e.query(ctx, env, q)
}

// Registry is the ordered set of screens.
type Registry struct {
	entries []Entry
}

// New returns the registry of every master screen in menu order.
func New() *Registry {
	return &Registry{entries: []Entry{
		register(masters.Ledgers),
		register(masters.AccountNatures),
		register(masters.AccountTypes),
		register(masters.Customers),
		register(masters.MenuItems),
		register(masters.KitchenCategories),
		register(masters.KitchenSubCategories),
		register(masters.KitchenGroups),
		register(masters.ItemGroups),
		register(masters.ItemMainGroups),
		register(masters.Units),
		register(masters.Tables),
		register(masters.TableDepartments),
		register(masters.TaxGroups),
		register(masters.TaxConfigs),
		register(masters.Countries),
		register(masters.States),
		register(masters.Cities),
	}}
}

// List returns every entry.
func (r *Registry) List() []Entry {
	return append([]Entry(nil), r.entries...)
}

// Visible returns the entries cfg does not hide.
func (r *Registry) Visible(cfg config.Config) []Entry {
	out := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		if !cfg.Screen(e.Name).Hidden {
			out = append(out, e)
		}
	}
	return out
}

// Get returns the entry called name.
func (r *Registry) Get(name string) (Entry, error) {
	for _, e := range r.entries {
		if e.Name == name {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%w: %s", ErrUnknownScreen, name)
}

// Names returns the screen names in menu order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.Name
	}
	return names
}

func register[T any](define func() masters.Definition[T]) Entry {
	def := define()
	return Entry{
		Name:  def.Name,
		Title: def.Title,
		Scope: def.Scope,
		open: func(env Env) (Screen, error) {
			return open(env, define())
		},
		query: func(ctx context.Context, env Env, q Query) (Result, error) {
			return query(ctx, env, define(), q)
		},
	}
}

func open[T any](env Env, def masters.Definition[T]) (Screen, error) {
	cfg := env.Config
	sc := cfg.Screen(def.Name)
	sort, _ := sc.SortKey()
	format, err := export.ParseFormat(cfg.Export.Format)
	if err != nil {
		return nil, err
	}

	var lists listscreen.Lookups
	if usesLookups(def.Form) {
		lists = lookup.Standard(env.Client, cfg.Lookups.TTL)
	}

	m, err := listscreen.New(listscreen.Config[T]{
		Def:           def,
		Backend:       api.NewResource(env.Client, def),
		Lookups:       lists,
		Dependents:    lookup.Dependents(def.Name),
		Session:       env.Client.Session(),
		PageSize:      pageSize(cfg, sc),
		Debounce:      sc.Debounce,
		Sort:          sort,
		Collator:      listview.NewCollator(cfg.UI.Locale),
		DiscardStale:  cfg.UI.DiscardStaleFetches,
		ExportDir:     cfg.Export.Dir,
		ExportFormat:  format,
		MarkdownStyle: cfg.UI.MarkdownStyle,
		Context:       env.Context,
		Now:           env.Now,
		Tracer:        env.Tracer,
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func query[T any](ctx context.Context, env Env, def masters.Definition[T], q Query) (Result, error) {
	cfg := env.Config
	sc := cfg.Screen(def.Name)

	size := pageSize(cfg, sc)
	if q.PageSize > 0 {
		size = q.PageSize
	}
	pcfg := def.Pipeline(size, false)
	pcfg.PageSize = size
	pcfg.Collator = listview.NewCollator(cfg.UI.Locale)
	if key, ok := sc.SortKey(); ok {
		pcfg.DefaultSort = key
	}
	p, err := listview.New(pcfg)
	if err != nil {
		return Result{}, err
	}
	if q.Sort != "" {
		key, _ := config.ScreenConfig{Sort: q.Sort}.SortKey()
		if err := p.SetSort(key); err != nil {
			return Result{}, err
		}
	}

	res := api.NewResource(env.Client, def)
	if err := p.Source().Load(ctx, res.List); err != nil {
		return Result{}, err
	}
	p.SetTerm(q.Term)
	if q.Page > 1 {
		p.SetPageIndex(q.Page)
	}

	page := p.View()
	rows := page.Rows
	if q.All {
		rows = page.Filtered
	}
	return Result{
		Table:       export.Table{Headers: def.Headers(), Rows: def.Rows(rows)},
		Sort:        page.Sort,
		Page:        page.Index,
		TotalPages:  page.TotalPages,
		Total:       page.Total,
		SourceTotal: page.SourceTotal,
	}, nil
}

func pageSize(cfg config.Config, sc config.ScreenConfig) int {
	if sc.PageSize > 0 {
		return sc.PageSize
	}
	return cfg.UI.PageSize
}

func usesLookups[T any](form []masters.FormField[T]) bool {
	for _, f := range form {
		if f.Kind == masters.InputLookup {
			return true
		}
	}
	return false
}
