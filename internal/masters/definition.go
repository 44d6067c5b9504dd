// Package masters describes the restaurant master records and, for each one,
// the list screen that manages it: typed field accessors for the list
// pipeline, table and export columns, form inputs, and backend routing.
package masters

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/zjrosen/restodesk/internal/listview"
)

// Scope says which session ids a resource needs.
type Scope int

const (
	ScopeNone Scope = iota
	// ScopeHotel requires a hotel id; it is stamped on saved records.
	ScopeHotel
	// ScopeCompanyYear requires company and year ids, sent as query
	// parameters on every request.
	ScopeCompanyYear
)

// Session carries the tenant ids the backend scopes records by.
type Session struct {
	CompanyID ID
	YearID    ID
	HotelID   ID
}

// Satisfies reports whether s has the ids scope needs.
func (s Session) Satisfies(scope Scope) error {
	switch scope {
	case ScopeHotel:
		if s.HotelID == "" {
			return fmt.Errorf("hotel id is required for this screen")
		}
	case ScopeCompanyYear:
		if s.CompanyID == "" || s.YearID == "" {
			return fmt.Errorf("company and year ids are required for this screen")
		}
	}
	return nil
}

// Column is one table and export column.
type Column[T any] struct {
	Title string
	Width int
	// Sort names the field the column sorts by. Empty means not sortable.
	Sort  string
	Value func(T) string
}

// InputKind selects the form widget for a field.
type InputKind int

const (
	InputText InputKind = iota
	InputNumber
	InputBool
	InputStatus
	InputLookup
)

// FormField edits one attribute of T through its text form.
type FormField[T any] struct {
	// Name is the Go struct field name; validation errors refer to it.
	Name        string
	Label       string
	Kind        InputKind
	Placeholder string
	Get         func(T) string
	Set         func(*T, string) error

	// Lookup names the lookup list backing an InputLookup field.
	Lookup string
	// SetName stores the chosen option's display name next to its id.
	SetName func(*T, string)
	// Parent restricts lookup options to those whose Parent equals the
	// returned id (cities of the chosen state). Nil means no restriction.
	Parent func(T) ID
}

// Definition is everything a list screen needs to know about one entity.
type Definition[T any] struct {
	Name     string
	Title    string
	Singular string
	Plural   string

	Resource string
	// ListPath overrides Resource for the list call.
	ListPath string
	Scope    Scope

	Key func(T) ID
	// SetKey stores a server-assigned id on a record. Backends that answer a
	// create with only {"id": N} need it to give the new record its key.
	SetKey func(*T, ID)

	Fields      []listview.Field[T]
	Columns     []Column[T]
	Searchable  []string
	DefaultSort listview.SortKey
	Debounce    time.Duration
	PageSize    int

	Convention Convention
	// Active is nil for entities without a status.
	Active func(T) bool

	Form []FormField[T]
	// Blank returns the record an add form starts from.
	Blank func(existing []T) T
	// Stamp copies the session ids onto a record before it is saved.
	Stamp func(*T, Session)
}

// Pipeline returns the listview configuration for d.
func (d Definition[T]) Pipeline(pageSize int, discardStale bool) listview.Config[T, ID] {
	if d.PageSize > 0 {
		pageSize = d.PageSize
	}
	return listview.Config[T, ID]{
		Name:         d.Name,
		Key:          d.Key,
		Fields:       d.Fields,
		Searchable:   d.Searchable,
		DefaultSort:  d.DefaultSort,
		PageSize:     pageSize,
		DiscardStale: discardStale,
	}
}

// ListResource returns the path used to list records.
func (d Definition[T]) ListResource() string {
	if d.ListPath != "" {
		return d.ListPath
	}
	return d.Resource
}

// Headers returns the column titles.
func (d Definition[T]) Headers() []string {
	out := make([]string, len(d.Columns))
	for i, c := range d.Columns {
		out[i] = c.Title
	}
	return out
}

// Row projects rec onto the columns.
func (d Definition[T]) Row(rec T) []string {
	out := make([]string, len(d.Columns))
	for i, c := range d.Columns {
		out[i] = c.Value(rec)
	}
	return out
}

// Rows projects every record onto the columns.
func (d Definition[T]) Rows(recs []T) [][]string {
	out := make([][]string, len(recs))
	for i, r := range recs {
		out[i] = d.Row(r)
	}
	return out
}

// SortableColumns returns the indexes of columns that sort.
func (d Definition[T]) SortableColumns() []int {
	var out []int
	for i, c := range d.Columns {
		if c.Sort != "" {
			out = append(out, i)
		}
	}
	return out
}

// Field helpers.

func stringField[T any](name string, get func(T) string) listview.Field[T] {
	return listview.Field[T]{Name: name, Get: func(r T) listview.Value { return listview.String(get(r)) }}
}

func idField[T any](name string, get func(T) ID) listview.Field[T] {
	return listview.Field[T]{Name: name, Get: func(r T) listview.Value {
		id := get(r)
		if id == "" {
			return listview.Null
		}
		if n, ok := id.Int(); ok {
			return listview.Int(n)
		}
		return listview.String(string(id))
	}}
}

func numberField[T any](name string, get func(T) float64) listview.Field[T] {
	return listview.Field[T]{Name: name, Get: func(r T) listview.Value { return listview.Number(get(r)) }}
}

// Form helpers.

func textInput[T any, S ~string](name, label string, ptr func(*T) *S) FormField[T] {
	return FormField[T]{
		Name:  name,
		Label: label,
		Kind:  InputText,
		Get:   func(r T) string { return string(*ptr(&r)) },
		Set: func(r *T, v string) error {
			*ptr(r) = S(v)
			return nil
		},
	}
}

func numberInput[T any, S ~string](name, label string, ptr func(*T) *S) FormField[T] {
	f := textInput(name, label, ptr)
	f.Kind = InputNumber
	return f
}

func floatInput[T any](name, label string, ptr func(*T) *float64) FormField[T] {
	return FormField[T]{
		Name:  name,
		Label: label,
		Kind:  InputNumber,
		Get:   func(r T) string { return strconv.FormatFloat(*ptr(&r), 'f', -1, 64) },
		Set: func(r *T, v string) error {
			v = strings.TrimSpace(v)
			if v == "" {
				*ptr(r) = 0
				return nil
			}
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("%s must be a number", label)
			}
			*ptr(r) = f
			return nil
		},
	}
}

func boolInput[T any, B ~bool](name, label string, ptr func(*T) *B) FormField[T] {
	return FormField[T]{
		Name:  name,
		Label: label,
		Kind:  InputBool,
		Get:   func(r T) string { return strconv.FormatBool(bool(*ptr(&r))) },
		Set: func(r *T, v string) error {
			b, err := ParseBool(v)
			if err != nil {
				return fmt.Errorf("%s: %w", label, err)
			}
			*ptr(r) = B(b)
			return nil
		},
	}
}

func statusInput[T any](conv Convention, ptr func(*T) *Status) FormField[T] {
	return FormField[T]{
		Name:  "Status",
		Label: "Active",
		Kind:  InputStatus,
		Get:   func(r T) string { return strconv.FormatBool(ptr(&r).IsActive(conv)) },
		Set: func(r *T, v string) error {
			active, err := ParseBool(v)
			if err != nil {
				return fmt.Errorf("status: %w", err)
			}
			if active {
				*ptr(r) = ActiveStatus(conv)
			} else {
				*ptr(r) = InactiveStatus(conv)
			}
			return nil
		},
	}
}

func lookupInput[T any](name, label, lookup string, id func(*T) *ID, display func(*T) *string) FormField[T] {
	f := textInput(name, label, id)
	f.Kind = InputLookup
	f.Lookup = lookup
	if display != nil {
		f.SetName = func(r *T, v string) { *display(r) = v }
	}
	return f
}

// ParseBool accepts the spellings a form user types for a toggle.
func ParseBool(v string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "t", "true", "y", "yes", "active", "on":
		return true, nil
	case "0", "f", "false", "n", "no", "inactive", "off", "":
		return false, nil
	}
	return false, fmt.Errorf("%q is not yes or no", v)
}
