package masters

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// ID is a record or lookup identifier. The backend sends ids as numbers on
// some resources and strings on others; both decode into an ID.
type ID string

// UnmarshalJSON accepts a JSON string, number, or null.
func (id *ID) UnmarshalJSON(b []byte) error {
	s, err := scalarText(b)
	if err != nil {
		return err
	}
	*id = ID(s)
	return nil
}

// Int returns the numeric form of the id, or false when it is not numeric.
func (id ID) Int() (int64, bool) {
	n, err := strconv.ParseInt(string(id), 10, 64)
	return n, err == nil
}

// Text is a string field the backend sometimes encodes as a number
// (opening balances, mobile numbers, pincodes).
type Text string

// UnmarshalJSON accepts a JSON string, number, or null.
func (t *Text) UnmarshalJSON(b []byte) error {
	s, err := scalarText(b)
	if err != nil {
		return err
	}
	*t = Text(s)
	return nil
}

// Status is a numeric status flag. Strings holding numbers and booleans are
// accepted too; anything else decodes as 0.
type Status int

// UnmarshalJSON implements json.Unmarshaler.
func (s *Status) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch string(b) {
	case "true":
		*s = 1
		return nil
	case "false", "null":
		*s = 0
		return nil
	}
	text, err := scalarText(b)
	if err != nil {
		*s = 0
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		*s = 0
		return nil
	}
	*s = Status(n)
	return nil
}

// Flag is a yes/no column stored as 0 or 1. It decodes from numbers,
// numeric strings and booleans, and encodes as 0 or 1.
type Flag bool

// UnmarshalJSON implements json.Unmarshaler.
func (f *Flag) UnmarshalJSON(b []byte) error {
	var s Status
	if err := s.UnmarshalJSON(b); err != nil {
		return err
	}
	*f = s != 0
	return nil
}

// MarshalJSON implements json.Marshaler.
func (f Flag) MarshalJSON() ([]byte, error) {
	if f {
		return []byte("1"), nil
	}
	return []byte("0"), nil
}

// Convention says which Status value means active on a given resource.
type Convention int

const (
	// ActiveIsOne: 1 active, 0 inactive (ledgers, account natures/types,
	// tables, table departments, menu items, tax groups).
	ActiveIsOne Convention = iota
	// ActiveIsZero: 0 active, 1 inactive (the kitchen and item hierarchies,
	// units, countries, states, cities).
	ActiveIsZero
)

// IsActive interprets s under c.
func (s Status) IsActive(c Convention) bool {
	if c == ActiveIsZero {
		return s == 0
	}
	return s == 1
}

// ActiveStatus returns the Status meaning active under c.
func ActiveStatus(c Convention) Status {
	if c == ActiveIsZero {
		return 0
	}
	return 1
}

// InactiveStatus returns the Status meaning inactive under c.
func InactiveStatus(c Convention) Status {
	if c == ActiveIsZero {
		return 1
	}
	return 0
}

// StatusLabel renders an active flag the way list screens show it.
func StatusLabel(active bool) string {
	if active {
		return "Active"
	}
	return "Inactive"
}

func scalarText(b []byte) (string, error) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		return "", nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return "", err
	}
	return n.String(), nil
}
