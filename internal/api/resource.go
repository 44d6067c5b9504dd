package api

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/zjrosen/restodesk/internal/masters"
)

// Resource is the CRUD endpoint for records of type T.
type Resource[T any] struct {
	client   *Client
	path     string
	listPath string
	plural   string
	singular string
	scope    masters.Scope
	key      func(T) masters.ID
	setKey   func(*T, masters.ID)
}

// NewResource binds def's routing to c.
func NewResource[T any](c *Client, def masters.Definition[T]) *Resource[T] {
	return &Resource[T]{
		client:   c,
		path:     def.Resource,
		listPath: def.ListResource(),
		plural:   def.Plural,
		singular: def.Singular,
		scope:    def.Scope,
		key:      def.Key,
		setKey:   def.SetKey,
	}
}

// NewLookup returns a list-only resource for a lookup spec.
func NewLookup[T any](c *Client, spec masters.LookupSpec[T]) *Resource[T] {
	return &Resource[T]{
		client:   c,
		path:     spec.Resource,
		listPath: spec.Resource,
		plural:   spec.Name,
		singular: spec.Name,
		scope:    spec.Scope,
	}
}

// Path returns the resource path below the base URL.
func (r *Resource[T]) Path() string {
	return r.path
}

// List fetches every record visible to the session.
func (r *Resource[T]) List(ctx context.Context) ([]T, error) {
	var out rows[T]
	err := r.client.do(ctx, call{
		op: "list", noun: r.plural, method: http.MethodGet,
		path: r.listPath, scope: r.scope, out: &out,
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		return []T{}, nil
	}
	return []T(out), nil
}

// Create posts rec and returns the backend's copy. When the backend answers
// with an empty body, rec is returned unchanged. When it answers with a bare
// acknowledgement such as {"success":true,"id":7}, the id becomes the key.
func (r *Resource[T]) Create(ctx context.Context, rec T) (T, error) {
	saved := rec
	var raw json.RawMessage
	err := r.client.do(ctx, call{
		op: "create", noun: r.singular, method: http.MethodPost,
		path: r.path, scope: r.scope, body: rec, out: &raw,
	})
	if err != nil || len(raw) == 0 {
		return saved, err
	}
	if err := json.Unmarshal(raw, &saved); err != nil {
		return saved, fmt.Errorf("decode %s: %w", r.singular, err)
	}
	r.assignID(&saved, raw)
	return saved, nil
}

// assignID copies an acknowledged id onto saved when the decoded record
// still has no key.
func (r *Resource[T]) assignID(saved *T, raw json.RawMessage) {
	if r.key == nil || r.setKey == nil || r.key(*saved) != "" {
		return
	}
	var ack struct {
		ID       masters.ID `json:"id"`
		InsertID masters.ID `json:"insertId"`
	}
	if json.Unmarshal(raw, &ack) != nil {
		return
	}
	if id := cmp.Or(ack.ID, ack.InsertID); id != "" {
		r.setKey(saved, id)
	}
}

// Update replaces the record with id.
func (r *Resource[T]) Update(ctx context.Context, id masters.ID, rec T) (T, error) {
	saved := rec
	err := r.client.do(ctx, call{
		op: "update", noun: r.singular, method: http.MethodPut,
		path: r.path + "/" + escapeID(id), scope: r.scope, body: rec, out: &saved,
	})
	return saved, err
}

// Delete removes the record with id.
func (r *Resource[T]) Delete(ctx context.Context, id masters.ID) error {
	return r.client.do(ctx, call{
		op: "delete", noun: r.singular, method: http.MethodDelete,
		path: r.path + "/" + escapeID(id), scope: r.scope,
	})
}
