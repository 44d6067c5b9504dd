package listview

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var en = NewCollator("en")

func TestSort_ToggleFlipsDirection(t *testing.T) {
	p := newLedgerPipeline(10)
	p.Source().Replace([]ledger{{ID: 2, Name: "Bob", LedgerNo: "2"}, {ID: 1, Name: "Amy", LedgerNo: "1"}})
	require.NoError(t, p.SetSort(SortKey{Field: "Name", Direction: Ascending}))

	require.Equal(t, []string{"Amy", "Bob"}, names(p.View().Rows))

	require.NoError(t, p.SortBy("Name"))
	require.Equal(t, SortKey{Field: "Name", Direction: Descending}, p.SortKey())
	require.Equal(t, []string{"Bob", "Amy"}, names(p.View().Rows))
}

func TestSortKey_Toggle(t *testing.T) {
	k := SortKey{Field: "Name", Direction: Descending}

	require.Equal(t, SortKey{Field: "Name", Direction: Ascending}, k.Toggle("Name"))
	require.Equal(t, SortKey{Field: "LedgerNo", Direction: Ascending}, k.Toggle("LedgerNo"))
}

func TestSort_Numbers(t *testing.T) {
	rows := []ledger{{ID: 1, Balance: balance(30)}, {ID: 2, Balance: balance(-5)}, {ID: 3, Balance: balance(12.5)}}

	require.Equal(t, []int{2, 3, 1}, ids(Sort(rows, field("Balance"), Ascending, en)))
	require.Equal(t, []int{1, 3, 2}, ids(Sort(rows, field("Balance"), Descending, en)))
}

func TestSort_LocaleAware(t *testing.T) {
	rows := []ledger{{ID: 1, Name: "fig"}, {ID: 2, Name: "Zucchini"}, {ID: 3, Name: "Éclair"}, {ID: 4, Name: "apple"}}

	got := names(Sort(rows, field("Name"), Ascending, en))

	require.Equal(t, []string{"apple", "Éclair", "fig", "Zucchini"}, got)
}

func TestSort_MixedAndNullKeepOrder(t *testing.T) {
	rows := []ledger{{ID: 1, Balance: nil}, {ID: 2, Balance: balance(1)}, {ID: 3, Balance: nil}}
	mixed := Field[ledger]{Name: "mixed", Get: func(l ledger) Value {
		if l.ID%2 == 0 {
			return Int(int64(l.ID))
		}
		return String("x")
	}}

	require.Equal(t, []int{1, 2, 3}, ids(Sort(rows, mixed, Ascending, en)))
	require.Equal(t, []int{1, 2, 3}, ids(Sort(rows, field("Balance"), Descending, en)))
}

func TestSort_StableTies(t *testing.T) {
	rows := []ledger{{ID: 1, Name: "b"}, {ID: 2, Name: "a"}, {ID: 3, Name: "b"}, {ID: 4, Name: "a"}}

	require.Equal(t, []int{2, 4, 1, 3}, ids(Sort(rows, field("Name"), Ascending, en)))
	require.Equal(t, []int{1, 3, 2, 4}, ids(Sort(rows, field("Name"), Descending, en)))
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	rows := []ledger{{ID: 2, Name: "b"}, {ID: 1, Name: "a"}}

	_ = Sort(rows, field("Name"), Ascending, en)

	require.Equal(t, []int{2, 1}, ids(rows))
}

func TestSort_NilInputGivesEmptySlice(t *testing.T) {
	got := Sort[ledger](nil, field("Name"), Ascending, en)

	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestParseDirection(t *testing.T) {
	require.Equal(t, Descending, ParseDirection("desc"))
	require.Equal(t, Descending, ParseDirection("descending"))
	require.Equal(t, Ascending, ParseDirection("asc"))
	require.Equal(t, Ascending, ParseDirection("sideways"))
	require.Equal(t, "desc", Descending.String())
}
