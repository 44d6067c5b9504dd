// Package lookup serves the option lists behind form selectors (geography,
// accounts, the kitchen and item hierarchies, units and tax groups). Each
// screen owns its own Lists, so nothing is shared between screens.
package lookup

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/zjrosen/restodesk/internal/api"
	"github.com/zjrosen/restodesk/internal/cachemanager"
	"github.com/zjrosen/restodesk/internal/log"
	"github.com/zjrosen/restodesk/internal/masters"
)

// Fetcher loads one lookup list.
type Fetcher func(ctx context.Context) ([]masters.Option, error)

// Key identifies a cached list: lookup name plus the session ids its
// resource is scoped by.
type Key string

// FromSpec returns a Fetcher listing spec's resource through c.
func FromSpec[T any](c *api.Client, spec masters.LookupSpec[T]) Fetcher {
	res := api.NewLookup(c, spec)
	return func(ctx context.Context) ([]masters.Option, error) {
		rows, err := res.List(ctx)
		if err != nil {
			return nil, err
		}
		return spec.Options(rows), nil
	}
}

type source struct {
	scope masters.Scope
	fetch Fetcher
}

// Lists is a read-through cache of lookup lists for one screen.
type Lists struct {
	session masters.Session
	ttl     time.Duration
	sources map[string]source
	cache   *cachemanager.ReadThroughCache[Key, []masters.Option, string]
}

// New returns an empty Lists for session. ttl <= 0 disables caching.
func New(session masters.Session, ttl time.Duration) *Lists {
	l := &Lists{
		session: session,
		ttl:     ttl,
		sources: make(map[string]source),
	}
	mem := cachemanager.NewInMemoryCacheManager[Key, []masters.Option]("lookups", max(ttl, time.Second), cachemanager.DefaultCleanupInterval)
	l.cache = cachemanager.NewReadThroughCache[Key, []masters.Option, string](mem, l.load, ttl <= 0)
	return l
}

// Standard returns Lists with every backend lookup registered.
func Standard(c *api.Client, ttl time.Duration) *Lists {
	l := New(c.Session(), ttl)
	register(l, c, masters.CountriesLookup)
	register(l, c, masters.StatesLookup)
	register(l, c, masters.CitiesLookup)
	register(l, c, masters.AccountNaturesLookup)
	register(l, c, masters.AccountTypesLookup)
	register(l, c, masters.KitchenCategoriesLookup)
	register(l, c, masters.KitchenSubCategoriesLookup)
	register(l, c, masters.KitchenGroupsLookup)
	register(l, c, masters.ItemGroupsLookup)
	register(l, c, masters.ItemMainGroupsLookup)
	register(l, c, masters.UnitsLookup)
	register(l, c, masters.TaxGroupsLookup)
	return l
}

func register[T any](l *Lists, c *api.Client, spec masters.LookupSpec[T]) {
	l.Register(spec.Name, spec.Scope, FromSpec(c, spec))
}

// Register adds or replaces the list called name.
func (l *Lists) Register(name string, scope masters.Scope, fetch Fetcher) {
	l.sources[name] = source{scope: scope, fetch: fetch}
}

// Names returns the registered list names, sorted.
func (l *Lists) Names() []string {
	names := make([]string, 0, len(l.sources))
	for n := range l.sources {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Options returns the list called name, fetching it on a miss.
func (l *Lists) Options(ctx context.Context, name string) ([]masters.Option, error) {
	if _, ok := l.sources[name]; !ok {
		return nil, fmt.Errorf("unknown lookup %q", name)
	}
	return l.cache.Get(ctx, l.key(name), name, l.ttl)
}

// Invalidate drops the named lists so the next Options call refetches them.
// With no names every list is dropped.
func (l *Lists) Invalidate(ctx context.Context, names ...string) {
	if len(names) == 0 {
		names = l.Names()
	}
	keys := make([]Key, 0, len(names))
	for _, n := range names {
		keys = append(keys, l.key(n))
	}
	if err := l.cache.Invalidate(ctx, keys...); err != nil {
		log.Warn(log.CatCache, "invalidate lookups", "error", err)
	}
}

func (l *Lists) key(name string) Key {
	s := l.session
	switch l.sources[name].scope {
	case masters.ScopeCompanyYear:
		return Key(fmt.Sprintf("%s:c=%s:y=%s", name, s.CompanyID, s.YearID))
	case masters.ScopeHotel:
		return Key(fmt.Sprintf("%s:h=%s", name, s.HotelID))
	default:
		return Key(name)
	}
}

func (l *Lists) load(ctx context.Context, name string) ([]masters.Option, error) {
	opts, err := l.sources[name].fetch(ctx)
	if err != nil {
		log.Warn(log.CatCache, "lookup fetch failed", "lookup", name, "error", err)
		return nil, err
	}
	log.Debug(log.CatCache, "lookup loaded", "lookup", name, "options", len(opts))
	return opts, nil
}

// Dependents lists the lookup names a save on screen can change. Saving an
// account type changes the account-types lookup, and so on.
func Dependents(screen string) []string {
	switch screen {
	case "countries":
		return []string{masters.CountriesLookup.Name}
	case "states":
		return []string{masters.StatesLookup.Name}
	case "cities":
		return []string{masters.CitiesLookup.Name}
	case "account-natures":
		return []string{masters.AccountNaturesLookup.Name}
	case "account-types":
		return []string{masters.AccountTypesLookup.Name}
	case "kitchen-categories":
		return []string{masters.KitchenCategoriesLookup.Name}
	case "kitchen-subcategories":
		return []string{masters.KitchenSubCategoriesLookup.Name}
	case "kitchen-groups":
		return []string{masters.KitchenGroupsLookup.Name}
	case "item-groups":
		return []string{masters.ItemGroupsLookup.Name}
	case "item-main-groups":
		return []string{masters.ItemMainGroupsLookup.Name}
	case "units":
		return []string{masters.UnitsLookup.Name}
	case "tax-groups":
		return []string{masters.TaxGroupsLookup.Name}
	}
	return nil
}
