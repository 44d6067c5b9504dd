package listview

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_Validation(t *testing.T) {
	key := func(l ledger) int { return l.ID }
	tests := []struct {
		name string
		cfg  Config[ledger, int]
		want string
	}{
		{name: "no key", cfg: Config[ledger, int]{Fields: ledgerFields}, want: "key accessor"},
		{name: "no fields", cfg: Config[ledger, int]{Key: key}, want: "at least one field"},
		{
			name: "duplicate field",
			cfg:  Config[ledger, int]{Key: key, Fields: append([]Field[ledger]{ledgerFields[1]}, ledgerFields...)},
			want: "duplicate field",
		},
		{
			name: "unknown searchable",
			cfg:  Config[ledger, int]{Key: key, Fields: ledgerFields, Searchable: []string{"City"}},
			want: "unknown field",
		},
		{
			name: "unknown default sort",
			cfg:  Config[ledger, int]{Key: key, Fields: ledgerFields, DefaultSort: SortKey{Field: "City"}},
			want: "unknown field",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cfg)
			require.ErrorContains(t, err, tt.want)
		})
	}
}

func TestPipeline_Defaults(t *testing.T) {
	p, err := New(Config[ledger, int]{Key: func(l ledger) int { return l.ID }, Fields: ledgerFields})
	require.NoError(t, err)

	page := p.View()
	require.Equal(t, DefaultPageSize, page.Size)
	require.Equal(t, 1, page.Index)
	require.Equal(t, 1, page.TotalPages)
	require.True(t, page.Empty())
	require.False(t, page.HasPrev())
	require.False(t, page.HasNext())
}

func TestPipeline_NoSortKeepsSourceOrder(t *testing.T) {
	p, err := New(Config[ledger, int]{Key: func(l ledger) int { return l.ID }, Fields: ledgerFields})
	require.NoError(t, err)
	p.Source().Replace([]ledger{{ID: 3, Name: "c"}, {ID: 1, Name: "a"}, {ID: 2, Name: "b"}})

	require.Equal(t, []int{3, 1, 2}, ids(p.View().Rows))
}

func TestPipeline_SearchMatchesSubstringAndClearRestores(t *testing.T) {
	p := newLedgerPipeline(10)
	p.Source().Replace([]ledger{{ID: 1, Name: "Amy"}, {ID: 2, Name: "Sam"}, {ID: 3, Name: "Bob"}})

	p.SetTerm("am")
	page := p.View()
	require.Equal(t, []string{"Amy", "Sam"}, names(page.Rows))
	require.Equal(t, 2, page.Total)
	require.Equal(t, 3, page.SourceTotal)

	p.SetTerm("")
	require.Len(t, p.View().Rows, 3)
}

func TestPipeline_FilterAlwaysStartsFromSource(t *testing.T) {
	p := newLedgerPipeline(10)
	p.Source().Replace([]ledger{{ID: 1, Name: "Amy"}, {ID: 2, Name: "Sam"}, {ID: 3, Name: "Bob"}})

	p.SetTerm("sam")
	require.Len(t, p.View().Rows, 1)
	p.SetTerm("b")
	require.Equal(t, []string{"Bob"}, names(p.View().Rows))
}

func TestPipeline_PageNavigationClampsToRange(t *testing.T) {
	p := newLedgerPipeline(10)
	rows := make([]ledger, 25)
	for i := range rows {
		rows[i] = ledger{ID: i + 1, Name: fmt.Sprintf("L%02d", i+1)}
	}
	p.Source().Replace(rows)

	p.SetPageIndex(3)
	page := p.View()
	require.Equal(t, 3, page.TotalPages)
	require.Len(t, page.Rows, 5)
	require.True(t, page.HasPrev())
	require.False(t, page.HasNext())

	p.NextPage()
	require.Equal(t, 3, p.Window().Index)
	p.GoToPage(-4)
	require.Equal(t, 1, p.Window().Index)
	p.PrevPage()
	require.Equal(t, 1, p.Window().Index)
}

func TestPipeline_OutOfRangeIndexRendersEmpty(t *testing.T) {
	p := newLedgerPipeline(10)
	p.Source().Replace([]ledger{{ID: 1, Name: "a"}})

	p.SetPageIndex(4)
	page := p.View()

	require.Empty(t, page.Rows)
	require.Equal(t, 4, page.Index)
	require.Equal(t, 1, page.TotalPages)
}

func TestPipeline_ChangesResetToFirstPage(t *testing.T) {
	p := newLedgerPipeline(2)
	p.Source().Replace(seq(9))

	p.SetPageIndex(3)
	p.SetTerm("")
	require.Equal(t, 1, p.Window().Index)

	p.SetPageIndex(3)
	require.NoError(t, p.SortBy("LedgerNo"))
	require.Equal(t, 1, p.Window().Index)

	p.SetPageIndex(3)
	p.SetPageSize(5)
	require.Equal(t, Window{Size: 5, Index: 1}, p.Window())

	p.SetPageSize(0)
	require.Equal(t, 5, p.Window().Size)
}

func TestPipeline_SortByUnknownField(t *testing.T) {
	p := newLedgerPipeline(10)

	require.ErrorIs(t, p.SortBy("City"), ErrUnknownField)
	require.ErrorIs(t, p.SetSort(SortKey{Field: "City"}), ErrUnknownField)
	require.Equal(t, SortKey{Field: "Name"}, p.SortKey())
}

func TestPipeline_SavedPatchesAndClearsSelection(t *testing.T) {
	p := newLedgerPipeline(10)
	p.Source().Replace([]ledger{{ID: 1, Name: "Cash"}})

	p.Select(ledger{ID: 1, Name: "Cash"})
	require.True(t, p.IsEdit())
	p.Saved(ledger{ID: 1, Name: "Petty Cash"})
	require.False(t, p.IsEdit())
	require.Equal(t, []string{"Petty Cash"}, names(p.View().Rows))

	p.Saved(ledger{ID: 2, Name: "Bank"})
	require.Equal(t, []string{"Bank", "Petty Cash"}, names(p.View().Rows))
}

func TestPipeline_DeletedClearsMatchingSelection(t *testing.T) {
	p := newLedgerPipeline(10)
	p.Source().Replace([]ledger{{ID: 1, Name: "Cash"}, {ID: 2, Name: "Bank"}})

	p.Select(ledger{ID: 1})
	p.Deleted(2)
	require.True(t, p.IsEdit())

	p.Deleted(1)
	require.False(t, p.IsEdit())
	require.Equal(t, []int{}, ids(p.View().Rows))
}

func TestPipeline_FilteredFeedsExport(t *testing.T) {
	p := newLedgerPipeline(1)
	p.Source().Replace([]ledger{{ID: 1, Name: "b"}, {ID: 2, Name: "a"}, {ID: 3, Name: "c"}})

	require.Equal(t, []string{"a", "b", "c"}, names(p.Filtered()))
	require.Len(t, p.View().Filtered, 3)
}
