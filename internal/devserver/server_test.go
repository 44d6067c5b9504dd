package devserver

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/restodesk/internal/api"
	"github.com/zjrosen/restodesk/internal/config"
	"github.com/zjrosen/restodesk/internal/masters"
)

const secret = "test-secret"

func newServer(t *testing.T, jwtSecret string) *Server {
	t.Helper()
	store, err := OpenStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, Seed(context.Background(), store))
	return New(config.ServerConfig{JWTSecret: jwtSecret}, store)
}

func token(t *testing.T) string {
	t.Helper()
	tok, err := IssueToken(secret, "tester", time.Hour, time.Now())
	require.NoError(t, err)
	return tok
}

func do(t *testing.T, s *Server, method, target, body, tok string) (int, string) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	req.Header.Set("Content-Type", "application/json")
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	resp, err := s.App().Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(b)
}

func TestAuth(t *testing.T) {
	s := newServer(t, secret)

	code, body := do(t, s, http.MethodGet, "/api/states", "", "")
	require.Equal(t, http.StatusUnauthorized, code)
	require.JSONEq(t, `{"message":"Missing token"}`, body)

	code, _ = do(t, s, http.MethodGet, "/api/states", "", "garbage")
	require.Equal(t, http.StatusUnauthorized, code)

	expired, err := IssueToken(secret, "x", time.Minute, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	code, _ = do(t, s, http.MethodGet, "/api/states", "", expired)
	require.Equal(t, http.StatusUnauthorized, code)

	wrongKey, err := IssueToken("other", "x", time.Hour, time.Now())
	require.NoError(t, err)
	code, _ = do(t, s, http.MethodGet, "/api/states", "", wrongKey)
	require.Equal(t, http.StatusUnauthorized, code)

	code, _ = do(t, s, http.MethodGet, "/api/states", "", token(t))
	require.Equal(t, http.StatusOK, code)
}

func TestIssueToken_EmptySecret(t *testing.T) {
	_, err := IssueToken("", "x", time.Hour, time.Now())
	require.Error(t, err)
}

func TestSeededLookups(t *testing.T) {
	s := newServer(t, "")
	code, body := do(t, s, http.MethodGet, "/api/states", "", "")
	require.Equal(t, http.StatusOK, code)

	var states []map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &states))
	require.Len(t, states, len(seedStates))
	require.Equal(t, "Maharashtra", states[0]["state_name"])
	require.EqualValues(t, 1, states[0]["stateid"])

	_, body = do(t, s, http.MethodGet, "/api/cities", "", "")
	var cities []map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &cities))
	require.Len(t, cities, 10)
	require.EqualValues(t, 1, cities[0]["stateid"])
}

func TestSeedIsIdempotent(t *testing.T) {
	store, err := OpenStore(":memory:")
	require.NoError(t, err)
	defer store.Close()
	ctx := context.Background()
	require.NoError(t, Seed(ctx, store))
	require.NoError(t, Seed(ctx, store))
	n, err := store.Count(ctx, "states")
	require.NoError(t, err)
	require.Equal(t, len(seedStates), n)
}

func TestScopeRequired(t *testing.T) {
	s := newServer(t, "")
	code, body := do(t, s, http.MethodGet, "/api/unitmaster", "", "")
	require.Equal(t, http.StatusBadRequest, code)
	require.JSONEq(t, `{"message":"hotelid is required"}`, body)

	code, body = do(t, s, http.MethodGet, "/api/accountnature?companyId=1", "", "")
	require.Equal(t, http.StatusBadRequest, code)
	require.JSONEq(t, `{"message":"companyId and yearId are required"}`, body)
}

func TestCRUD(t *testing.T) {
	s := newServer(t, "")

	code, body := do(t, s, http.MethodPost, "/api/unitmaster?hotelid=9", `{"unit_name":"Kg","status":0}`, "")
	require.Equal(t, http.StatusCreated, code)
	require.JSONEq(t, `{"unitid":1,"unit_name":"Kg","status":0}`, body)

	code, _ = do(t, s, http.MethodPost, "/api/unitmaster?hotelid=9", `{"unit_name":"Litre","status":0}`, "")
	require.Equal(t, http.StatusCreated, code)

	code, body = do(t, s, http.MethodPut, "/api/unitmaster/1?hotelid=9", `{"unit_name":"Kilogram","status":1}`, "")
	require.Equal(t, http.StatusOK, code)
	require.JSONEq(t, `{"unitid":1,"unit_name":"Kilogram","status":1}`, body)

	code, body = do(t, s, http.MethodDelete, "/api/unitmaster/2?hotelid=9", "", "")
	require.Equal(t, http.StatusOK, code)
	require.JSONEq(t, `{"message":"Unit deleted successfully"}`, body)

	_, body = do(t, s, http.MethodGet, "/api/unitmaster?hotelid=9", "", "")
	require.JSONEq(t, `[{"unitid":1,"unit_name":"Kilogram","status":1}]`, body)

	_, body = do(t, s, http.MethodGet, "/api/unitmaster?hotelid=10", "", "")
	require.JSONEq(t, `[]`, body, "other hotels see nothing")
}

func TestNotFoundAndBadInput(t *testing.T) {
	s := newServer(t, "")

	code, body := do(t, s, http.MethodPut, "/api/unitmaster/42?hotelid=9", `{"unit_name":"X"}`, "")
	require.Equal(t, http.StatusNotFound, code)
	require.JSONEq(t, `{"message":"Unit not found"}`, body)

	code, _ = do(t, s, http.MethodDelete, "/api/unitmaster/42?hotelid=9", "", "")
	require.Equal(t, http.StatusNotFound, code)

	code, body = do(t, s, http.MethodDelete, "/api/unitmaster/abc?hotelid=9", "", "")
	require.Equal(t, http.StatusBadRequest, code)
	require.Contains(t, body, "invalid id")

	code, body = do(t, s, http.MethodPost, "/api/unitmaster?hotelid=9", `not json`, "")
	require.Equal(t, http.StatusBadRequest, code)
	require.JSONEq(t, `{"message":"Invalid request body"}`, body)
}

func TestUnique(t *testing.T) {
	s := newServer(t, "")
	code, _ := do(t, s, http.MethodPost, "/api/account-ledger?hotelid=9", `{"LedgerNo":"7","Name":"Cash"}`, "")
	require.Equal(t, http.StatusCreated, code)

	code, body := do(t, s, http.MethodPost, "/api/account-ledger?hotelid=9", `{"LedgerNo":7,"Name":"Bank"}`, "")
	require.Equal(t, http.StatusConflict, code)
	require.JSONEq(t, `{"message":"Ledger No already exists"}`, body)

	code, _ = do(t, s, http.MethodPut, "/api/account-ledger/1?hotelid=9", `{"LedgerNo":"7","Name":"Cash in hand"}`, "")
	require.Equal(t, http.StatusOK, code, "a record does not clash with itself")

	code, _ = do(t, s, http.MethodPost, "/api/account-ledger?hotelid=10", `{"LedgerNo":"7","Name":"Cash"}`, "")
	require.Equal(t, http.StatusCreated, code, "uniqueness is per scope")
}

func TestListAlias(t *testing.T) {
	s := newServer(t, "")
	code, _ := do(t, s, http.MethodGet, "/api/account-ledger/ledger?hotelid=9", "", "")
	require.Equal(t, http.StatusOK, code)
	code, _ = do(t, s, http.MethodGet, "/api/account-ledger?hotelid=9", "", "")
	require.Equal(t, http.StatusOK, code)
}

// TestClientRoundTrip drives the REST client against a live server.
func TestClientRoundTrip(t *testing.T) {
	s := newServer(t, secret)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = s.Serve(ln) }()
	t.Cleanup(func() { _ = s.Shutdown() })

	c := api.New(config.BackendConfig{
		BaseURL: "http://" + ln.Addr().String() + "/api",
		Token:   token(t),
		Timeout: 5 * time.Second,
	}, masters.Session{CompanyID: "1", YearID: "2025", HotelID: "9"})
	ctx := context.Background()

	natures := api.NewResource(c, masters.AccountNatures())
	created, err := natures.Create(ctx, masters.AccountNature{AccountNature: "Assets", Status: 1})
	require.NoError(t, err)
	require.Equal(t, masters.ID("1"), created.NatureID)

	_, err = natures.Create(ctx, masters.AccountNature{AccountNature: "assets", Status: 1})
	require.EqualError(t, err, "Account nature already exists")

	created.AccountNature = "Current Assets"
	_, err = natures.Update(ctx, created.NatureID, created)
	require.NoError(t, err)

	list, err := natures.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "Current Assets", list[0].AccountNature)

	require.NoError(t, natures.Delete(ctx, created.NatureID))
	err = natures.Delete(ctx, created.NatureID)
	require.True(t, api.IsNotFound(err))

	cities, err := api.NewLookup(c, masters.CitiesLookup).List(ctx)
	require.NoError(t, err)
	require.Len(t, cities, 10)
}

func TestCreate_AckRoutesAnswerWithBareID(t *testing.T) {
	s := newServer(t, "")
	code, body := do(t, s, http.MethodPost, "/api/account-ledger?hotelid=9", `{"LedgerNo":"1","Name":"Cash"}`, "")
	require.Equal(t, http.StatusCreated, code)
	require.JSONEq(t, `{"success":true,"id":1}`, body)

	code, body = do(t, s, http.MethodPost, "/api/unitmaster?hotelid=9", `{"unit_name":"Kg","status":0}`, "")
	require.Equal(t, http.StatusCreated, code)
	require.JSONEq(t, `{"unitid":1,"unit_name":"Kg","status":0}`, body, "other routes echo the stored document")
}

// TestClientKeysAcknowledgedRecords saves through the REST client against
// endpoints that only acknowledge with an id.
func TestClientKeysAcknowledgedRecords(t *testing.T) {
	s := newServer(t, "")
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = s.Serve(ln) }()
	t.Cleanup(func() { _ = s.Shutdown() })

	c := api.New(config.BackendConfig{
		BaseURL: "http://" + ln.Addr().String() + "/api",
		Timeout: 5 * time.Second,
	}, masters.Session{HotelID: "9"})
	ctx := context.Background()

	menu := api.NewResource(c, masters.MenuItems())
	first, err := menu.Create(ctx, masters.MenuItem{ItemNo: "1", ItemName: "Masala Dosa", Price: "90"})
	require.NoError(t, err)
	second, err := menu.Create(ctx, masters.MenuItem{ItemNo: "2", ItemName: "Filter Coffee", Price: "30"})
	require.NoError(t, err)
	require.Equal(t, masters.ID("1"), first.RestItemID)
	require.Equal(t, masters.ID("2"), second.RestItemID)
	require.Equal(t, "Filter Coffee", second.ItemName)

	items, err := menu.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
}

func TestSeed_GeographyHierarchy(t *testing.T) {
	s := newServer(t, "")
	c := func(path string) []map[string]any {
		code, body := do(t, s, http.MethodGet, path, "", "")
		require.Equal(t, http.StatusOK, code)
		var docs []map[string]any
		require.NoError(t, json.Unmarshal([]byte(body), &docs))
		return docs
	}

	countries := c("/api/countries")
	require.Len(t, countries, 1)
	require.Equal(t, "India", countries[0]["country_name"])

	states := c("/api/states")
	require.Equal(t, countries[0]["countryid"], states[0]["countryid"])

	cities := c("/api/cities")
	require.Equal(t, "Maharashtra", cities[0]["state_name"])
}
