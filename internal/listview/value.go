package listview

import (
	"cmp"
	"strconv"
)

// Kind identifies what a Value holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindString
	KindNumber
)

// Value is a scalar produced by a Field accessor: a string, a number, or
// nothing. Booleans and enums are exposed by their accessors as strings.
type Value struct {
	kind Kind
	str  string
	num  float64
}

// Null is the absent value. It never matches a search and compares equal to
// everything while sorting.
var Null = Value{}

// String wraps s.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Number wraps f.
func Number(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

// Int wraps i as a number.
func Int(i int64) Value {
	return Number(float64(i))
}

// Kind reports the held kind.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether v holds nothing.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// Text returns the string form used for searching and display. Numbers use
// the shortest decimal representation (3, 2.5, 1e+21). ok is false for Null.
func (v Value) Text() (s string, ok bool) {
	switch v.kind {
	case KindString:
		return v.str, true
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64), true
	default:
		return "", false
	}
}

// Display is Text with Null rendered as the empty string.
func (v Value) Display() string {
	s, _ := v.Text()
	return s
}

// Compare orders two values the way the sort stage does: strings through the
// collator, numbers numerically, and any other pairing as equal.
func Compare(a, b Value, coll Collator) int {
	switch {
	case a.kind == KindString && b.kind == KindString:
		return coll.CompareString(a.str, b.str)
	case a.kind == KindNumber && b.kind == KindNumber:
		return cmp.Compare(a.num, b.num)
	default:
		return 0
	}
}

// Field is a named, typed accessor over a record.
type Field[T any] struct {
	Name string
	Get  func(T) Value
}

// FieldByName returns the field called name.
func FieldByName[T any](fields []Field[T], name string) (Field[T], bool) {
	for _, f := range fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field[T]{}, false
}
