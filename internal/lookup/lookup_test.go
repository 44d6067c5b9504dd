package lookup

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/restodesk/internal/api"
	"github.com/zjrosen/restodesk/internal/config"
	"github.com/zjrosen/restodesk/internal/masters"
)

func counting(calls *int, opts ...masters.Option) Fetcher {
	return func(context.Context) ([]masters.Option, error) {
		*calls++
		return opts, nil
	}
}

func TestOptions_CachesUntilInvalidated(t *testing.T) {
	l := New(masters.Session{HotelID: "9"}, time.Minute)
	var calls int
	l.Register("account-types", masters.ScopeHotel, counting(&calls, masters.Option{ID: "1", Name: "Cash"}))
	ctx := context.Background()

	for range 3 {
		got, err := l.Options(ctx, "account-types")
		require.NoError(t, err)
		require.Equal(t, []masters.Option{{ID: "1", Name: "Cash"}}, got)
	}
	require.Equal(t, 1, calls)

	l.Invalidate(ctx, "account-types")
	_, err := l.Options(ctx, "account-types")
	require.NoError(t, err)
	require.Equal(t, 2, calls)
}

func TestOptions_ZeroTTLAlwaysFetches(t *testing.T) {
	l := New(masters.Session{}, 0)
	var calls int
	l.Register("states", masters.ScopeNone, counting(&calls))
	for range 2 {
		_, err := l.Options(context.Background(), "states")
		require.NoError(t, err)
	}
	require.Equal(t, 2, calls)
}

func TestOptions_ErrorNotCached(t *testing.T) {
	l := New(masters.Session{}, time.Minute)
	fail := true
	l.Register("states", masters.ScopeNone, func(context.Context) ([]masters.Option, error) {
		if fail {
			return nil, errors.New("Failed to fetch states")
		}
		return []masters.Option{{ID: "2", Name: "Goa"}}, nil
	})

	_, err := l.Options(context.Background(), "states")
	require.EqualError(t, err, "Failed to fetch states")

	fail = false
	got, err := l.Options(context.Background(), "states")
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestOptions_Unknown(t *testing.T) {
	_, err := New(masters.Session{}, time.Minute).Options(context.Background(), "outlets")
	require.ErrorContains(t, err, `unknown lookup "outlets"`)
}

func TestInvalidateAll(t *testing.T) {
	l := New(masters.Session{CompanyID: "1", YearID: "2"}, time.Minute)
	var a, b int
	l.Register("account-natures", masters.ScopeCompanyYear, counting(&a))
	l.Register("states", masters.ScopeNone, counting(&b))
	ctx := context.Background()

	for _, n := range l.Names() {
		_, err := l.Options(ctx, n)
		require.NoError(t, err)
	}
	l.Invalidate(ctx)
	for _, n := range l.Names() {
		_, err := l.Options(ctx, n)
		require.NoError(t, err)
	}
	require.Equal(t, 2, a)
	require.Equal(t, 2, b)
}

func TestKeyIncludesScope(t *testing.T) {
	l := New(masters.Session{CompanyID: "1", YearID: "2", HotelID: "9"}, time.Minute)
	l.Register("account-natures", masters.ScopeCompanyYear, nil)
	l.Register("account-types", masters.ScopeHotel, nil)
	l.Register("states", masters.ScopeNone, nil)

	require.Equal(t, Key("account-natures:c=1:y=2"), l.key("account-natures"))
	require.Equal(t, Key("account-types:h=9"), l.key("account-types"))
	require.Equal(t, Key("states"), l.key("states"))
}

func TestStandard_FetchesThroughClient(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		require.Equal(t, "/api/accounttype", r.URL.Path)
		require.Equal(t, "9", r.URL.Query().Get("hotelid"))
		_, _ = w.Write([]byte(`[{"AccID":5,"AccName":"Sundry Debtors","status":1},{"AccID":6,"AccName":"Old","status":0}]`))
	}))
	defer srv.Close()

	c := api.New(config.BackendConfig{BaseURL: srv.URL + "/api", Timeout: time.Second}, masters.Session{HotelID: "9"})
	l := Standard(c, time.Minute)
	require.Equal(t, []string{
		"account-natures", "account-types", "cities", "countries",
		"item-groups", "item-main-groups", "kitchen-categories", "kitchen-groups",
		"kitchen-subcategories", "states", "tax-groups", "units",
	}, l.Names())

	got, err := l.Options(context.Background(), "account-types")
	require.NoError(t, err)
	require.Equal(t, []masters.Option{
		{ID: "5", Name: "Sundry Debtors", Active: true},
		{ID: "6", Name: "Old", Active: false},
	}, got)

	_, err = l.Options(context.Background(), "account-types")
	require.NoError(t, err)
	require.Equal(t, int32(1), hits.Load())
}

func TestDependents(t *testing.T) {
	require.Equal(t, []string{"account-types"}, Dependents("account-types"))
	require.Equal(t, []string{"account-natures"}, Dependents("account-natures"))
	require.Equal(t, []string{"units"}, Dependents("units"))
	require.Equal(t, []string{"kitchen-subcategories"}, Dependents("kitchen-subcategories"))
	require.Nil(t, Dependents("ledgers"))
	require.Nil(t, Dependents("menu-items"))
}
