package masters

import (
	"strings"
	"unicode"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// SegmentKind marks a piece of a word diff.
type SegmentKind int

const (
	SegmentSame SegmentKind = iota
	SegmentRemoved
	SegmentAdded
)

// Segment is a run of text sharing one diff kind.
type Segment struct {
	Kind SegmentKind
	Text string
}

// Change is one edited form field.
type Change struct {
	Name     string
	Label    string
	Before   string
	After    string
	Segments []Segment
}

// Changes lists the form fields whose text differs between before and
// after, in form order.
func Changes[T any](form []FormField[T], before, after T) []Change {
	var out []Change
	for _, f := range form {
		b, a := f.Get(before), f.Get(after)
		if b == a {
			continue
		}
		out = append(out, Change{
			Name:     f.Name,
			Label:    f.Label,
			Before:   b,
			After:    a,
			Segments: WordDiff(b, a),
		})
	}
	return out
}

// WordDiff diffs two values word by word.
func WordDiff(before, after string) []Segment {
	switch {
	case before == after:
		if before == "" {
			return nil
		}
		return []Segment{{Kind: SegmentSame, Text: before}}
	case before == "":
		return []Segment{{Kind: SegmentAdded, Text: after}}
	case after == "":
		return []Segment{{Kind: SegmentRemoved, Text: before}}
	}

	// Tokens are joined with NUL so the character diff cannot split a word.
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(strings.Join(words(before), "\x00"), strings.Join(words(after), "\x00"), false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	var out []Segment
	for _, d := range diffs {
		text := strings.ReplaceAll(d.Text, "\x00", "")
		if text == "" {
			continue
		}
		kind := SegmentSame
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			kind = SegmentRemoved
		case diffmatchpatch.DiffInsert:
			kind = SegmentAdded
		}
		if n := len(out); n > 0 && out[n-1].Kind == kind {
			out[n-1].Text += text
			continue
		}
		out = append(out, Segment{Kind: kind, Text: text})
	}
	return out
}

func words(s string) []string {
	var (
		tokens  []string
		current strings.Builder
	)
	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}
	for _, r := range s {
		if unicode.IsSpace(r) || unicode.IsPunct(r) || unicode.IsSymbol(r) {
			flush()
			tokens = append(tokens, string(r))
			continue
		}
		current.WriteRune(r)
	}
	flush()
	return tokens
}
