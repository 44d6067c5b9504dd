package masters

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func rebuild(segs []Segment, skip SegmentKind) string {
	var b strings.Builder
	for _, s := range segs {
		if s.Kind != skip {
			b.WriteString(s.Text)
		}
	}
	return b.String()
}

func TestWordDiffReconstructs(t *testing.T) {
	pairs := [][2]string{
		{"Petty Cash", "Main Cash"},
		{"12, MG Road", "12, Station Road, Pune"},
		{"", "new"},
		{"old", ""},
	}
	for _, p := range pairs {
		segs := WordDiff(p[0], p[1])
		require.Equal(t, p[0], rebuild(segs, SegmentAdded), "before of %q", p)
		require.Equal(t, p[1], rebuild(segs, SegmentRemoved), "after of %q", p)
	}
}

func TestWordDiffKeepsWordsWhole(t *testing.T) {
	segs := WordDiff("Petty Cash", "Main Cash")

	require.Contains(t, segs, Segment{Kind: SegmentRemoved, Text: "Petty"})
	require.Contains(t, segs, Segment{Kind: SegmentAdded, Text: "Main"})
	require.Equal(t, Segment{Kind: SegmentSame, Text: " Cash"}, segs[len(segs)-1])
}

func TestChanges(t *testing.T) {
	def := Units()
	before := Unit{UnitID: "1", UnitName: "Kg", Status: 0}
	after := Unit{UnitID: "1", UnitName: "Kilogram", Status: 1}

	changes := Changes(def.Form, before, after)

	require.Len(t, changes, 2)
	require.Equal(t, "UnitName", changes[0].Name)
	require.Equal(t, "Kg", changes[0].Before)
	require.Equal(t, "Kilogram", changes[0].After)
	require.Equal(t, "Active", changes[1].Label)
	require.Equal(t, "true", changes[1].Before)
	require.Equal(t, "false", changes[1].After)

	require.Empty(t, Changes(def.Form, before, before))
}
