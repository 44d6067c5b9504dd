// Package api is the REST client for the back-office backend. Every master
// resource follows the same contract: GET lists, POST creates, PUT /{id}
// updates, DELETE /{id} removes, and non-2xx responses carry {"message"}.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/zjrosen/restodesk/internal/config"
	"github.com/zjrosen/restodesk/internal/log"
	"github.com/zjrosen/restodesk/internal/masters"
	"github.com/zjrosen/restodesk/internal/tracing"
)

// RequestIDHeader carries the per-call correlation id.
const RequestIDHeader = "X-Request-ID"

// Client talks to one backend on behalf of one session.
type Client struct {
	baseURL string
	token   string
	session masters.Session
	http    *http.Client
	tracer  trace.Tracer
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client. Its Timeout is kept.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTracer records a span per request.
func WithTracer(t trace.Tracer) Option {
	return func(c *Client) {
		if t != nil {
			c.tracer = t
		}
	}
}

// New returns a client for backend scoped to session.
func New(backend config.BackendConfig, session masters.Session, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(backend.BaseURL, "/"),
		token:   backend.Token,
		session: session,
		http:    &http.Client{Timeout: backend.Timeout},
		tracer:  noop.NewTracerProvider().Tracer("api"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Session returns the ids requests are scoped by.
func (c *Client) Session() masters.Session {
	return c.session
}

// SessionFromConfig converts the configured tenant ids.
func SessionFromConfig(s config.SessionConfig) masters.Session {
	return masters.Session{
		CompanyID: masters.ID(s.CompanyID),
		YearID:    masters.ID(s.YearID),
		HotelID:   masters.ID(s.HotelID),
	}
}

// call describes one request.
type call struct {
	op     string // list, create, update, delete
	noun   string // "account ledger", used in fallback messages
	method string
	path   string
	scope  masters.Scope
	body   any
	out    any
}

func (c *Client) do(ctx context.Context, r call) (err error) {
	ctx, span := tracing.StartRequest(ctx, c.tracer, r.op, r.path, r.method)
	defer func() { tracing.End(span, err) }()

	u, err := c.url(r.path, r.scope)
	if err != nil {
		return err
	}

	var body io.Reader
	if r.body != nil {
		b, err := json.Marshal(r.body)
		if err != nil {
			return fmt.Errorf("encode %s: %w", r.noun, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, u, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	reqID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, reqID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	span.SetAttributes(attribute.String(tracing.AttrRequestID, reqID))

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn(log.CatAPI, "request failed", "method", r.method, "path", r.path, "request_id", reqID, "error", err)
		return fmt.Errorf("%s %s: %w", strings.ToLower(r.method), r.path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	span.SetAttributes(attribute.Int(tracing.AttrHTTPStatus, resp.StatusCode))
	log.Debug(log.CatAPI, "response",
		"method", r.method, "path", r.path, "status", resp.StatusCode,
		"request_id", reqID, "elapsed", time.Since(start).Round(time.Millisecond))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp.StatusCode, r.op, r.noun, payload)
	}
	if r.out == nil || len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}
	if err := decode(payload, r.out); err != nil {
		return fmt.Errorf("decode %s: %w", r.noun, err)
	}
	return nil
}

// url joins path to the base URL and adds the scope query parameters.
func (c *Client) url(path string, scope masters.Scope) (string, error) {
	if err := c.session.Satisfies(scope); err != nil {
		return "", err
	}
	u, err := url.Parse(c.baseURL + "/" + strings.TrimLeft(path, "/"))
	if err != nil {
		return "", fmt.Errorf("parse url: %w", err)
	}
	q := u.Query()
	switch scope {
	case masters.ScopeCompanyYear:
		q.Set("companyId", string(c.session.CompanyID))
		q.Set("yearId", string(c.session.YearID))
	case masters.ScopeHotel:
		q.Set("hotelid", string(c.session.HotelID))
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// decode accepts either a bare document or one wrapped in {"data": ...},
// which some endpoints use.
func decode(payload []byte, out any) error {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var env struct {
			Data json.RawMessage `json:"data"`
		}
		if json.Unmarshal(trimmed, &env) == nil && len(env.Data) > 0 && string(env.Data) != "null" {
			if _, isList := out.(listTarget); isList || env.Data[0] == '{' {
				return json.Unmarshal(env.Data, out)
			}
		}
	}
	return json.Unmarshal(trimmed, out)
}

// listTarget marks decode destinations that expect a JSON array.
type listTarget interface{ list() }

type rows[T any] []T

func (rows[T]) list() {}

func escapeID(id masters.ID) string {
	if n, ok := id.Int(); ok {
		return strconv.FormatInt(n, 10)
	}
	return url.PathEscape(string(id))
}
