package typeahead

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/restodesk/internal/masters"
)

func states() []masters.Option {
	return []masters.Option{
		{ID: "1", Name: "Maharashtra", Active: true},
		{ID: "2", Name: "Karnataka", Active: true},
		{ID: "3", Name: "Madhya Pradesh", Active: true},
		{ID: "4", Name: "Old Mysore", Active: false},
		{ID: "5", Name: "Tamil Nadu", Active: true},
	}
}

func typeText(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func names(opts []masters.Option) []string {
	out := make([]string, len(opts))
	for i, o := range opts {
		out[i] = o.Name
	}
	return out
}

func TestNew_ListsActiveInSourceOrder(t *testing.T) {
	m := New("StateID", "State", states(), nil)
	require.Equal(t, []string{"Maharashtra", "Karnataka", "Madhya Pradesh", "Tamil Nadu"}, names(m.Matches()))
}

func TestTyping_RanksPrefixFirst(t *testing.T) {
	m := typeText(New("StateID", "State", states(), nil), "ma")
	require.Equal(t, []string{"Madhya Pradesh", "Maharashtra"}, names(m.Matches()))

	m = typeText(m, "h")
	require.Equal(t, []string{"Maharashtra"}, names(m.Matches()))
}

func TestNavigateAndPick(t *testing.T) {
	m := New("StateID", "State", states(), nil)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	require.Equal(t, 1, m.Cursor())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	require.Equal(t, SelectedMsg{Field: "StateID", Option: states()[1]}, cmd())
}

func TestCursorStopsAtEnds(t *testing.T) {
	m := New("StateID", "State", states(), nil)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	require.Equal(t, 0, m.Cursor())
	for range 10 {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	require.Equal(t, 3, m.Cursor())
}

func TestEnterWithoutMatches(t *testing.T) {
	m := typeText(New("StateID", "State", states(), nil), "zz")
	require.Empty(t, m.Matches())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Nil(t, cmd)
	require.Contains(t, m.View(40), "No matches")
}

func TestEscCancels(t *testing.T) {
	m := New("CityID", "City", nil, nil)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, CancelledMsg{Field: "CityID"}, cmd())
}

func TestView(t *testing.T) {
	view := New("StateID", "State", states(), nil).View(40)
	require.Contains(t, view, "State")
	require.Contains(t, view, "> Maharashtra")
	require.NotContains(t, view, "Old Mysore")
}
