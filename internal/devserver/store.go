package devserver

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

const schema = `
CREATE TABLE IF NOT EXISTS records (
	resource TEXT NOT NULL,
	id       INTEGER NOT NULL,
	scope    TEXT NOT NULL DEFAULT '',
	body     TEXT NOT NULL,
	PRIMARY KEY (resource, id)
);
CREATE INDEX IF NOT EXISTS records_scope ON records (resource, scope);
`

// ErrNotFound is returned when no record has the requested id in scope.
var ErrNotFound = errors.New("record not found")

// Document is one stored record as the backend sends it.
type Document map[string]any

// Store keeps every resource's records as JSON documents in one sqlite table.
type Store struct {
	db *sql.DB
}

// OpenStore opens (creating if needed) the database at path. ":memory:"
// gives a throwaway store.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	// A memory database lives and dies with its connection.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// List returns the resource's documents in scope, oldest first.
func (s *Store) List(ctx context.Context, resource, scope string) ([]Document, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT body FROM records WHERE resource = ? AND scope = ? ORDER BY id`, resource, scope)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", resource, err)
	}
	defer func() { _ = rows.Close() }()

	out := []Document{}
	for rows.Next() {
		var body string
		if err := rows.Scan(&body); err != nil {
			return nil, fmt.Errorf("scan %s: %w", resource, err)
		}
		var doc Document
		if err := json.Unmarshal([]byte(body), &doc); err != nil {
			return nil, fmt.Errorf("decode %s: %w", resource, err)
		}
		out = append(out, doc)
	}
	return out, rows.Err()
}

// Create stores doc under the next id and writes that id into keyField.
func (s *Store) Create(ctx context.Context, resource, keyField, scope string, doc Document) (Document, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	var id int64
	if err := tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(id), 0) + 1 FROM records WHERE resource = ?`, resource).Scan(&id); err != nil {
		return nil, fmt.Errorf("next id: %w", err)
	}
	doc[keyField] = id
	body, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO records (resource, id, scope, body) VALUES (?, ?, ?, ?)`,
		resource, id, scope, string(body)); err != nil {
		return nil, fmt.Errorf("insert %s: %w", resource, err)
	}
	return doc, tx.Commit()
}

// Update replaces the document with id.
func (s *Store) Update(ctx context.Context, resource, keyField, scope string, id int64, doc Document) (Document, error) {
	doc[keyField] = id
	body, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE records SET body = ? WHERE resource = ? AND id = ? AND scope = ?`,
		string(body), resource, id, scope)
	if err != nil {
		return nil, fmt.Errorf("update %s: %w", resource, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, ErrNotFound
	}
	return doc, nil
}

// Delete removes the document with id.
func (s *Store) Delete(ctx context.Context, resource, scope string, id int64) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM records WHERE resource = ? AND id = ? AND scope = ?`, resource, id, scope)
	if err != nil {
		return fmt.Errorf("delete %s: %w", resource, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns how many documents resource holds across all scopes.
func (s *Store) Count(ctx context.Context, resource string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM records WHERE resource = ?`, resource).Scan(&n)
	return n, err
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
