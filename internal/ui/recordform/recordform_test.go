package recordform

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/restodesk/internal/masters"
	"github.com/zjrosen/restodesk/internal/validate"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// send feeds msg and every message its commands produce back into m.
func send[T any](m Model[T], msg tea.Msg) (Model[T], []tea.Msg) {
	var out []tea.Msg
	queue := []tea.Msg{msg}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		var cmd tea.Cmd
		m, cmd = m.Update(next)
		if cmd == nil {
			continue
		}
		produced := cmd()
		switch produced.(type) {
		case nil:
		case SubmitMsg[T], InvalidMsg, CancelMsg:
			out = append(out, produced)
		default:
			queue = append(queue, produced)
		}
	}
	return m, out
}

// typeText drops the cursor blink commands typing produces.
func typeText[T any](m Model[T], s string) Model[T] {
	for _, r := range s {
		m, _ = m.Update(keyMsg(string(r)))
	}
	return m
}

func newUnitForm() Model[masters.Unit] {
	def := masters.Units()
	return New("Add unit", def.Form, def.Blank(nil), false, nil)
}

func TestSubmit_CreatesValidatedRecord(t *testing.T) {
	m := typeText(newUnitForm(), "Kg")

	_, out := send(m, keyMsg("ctrl+s"))
	require.Len(t, out, 1)
	sub, ok := out[0].(SubmitMsg[masters.Unit])
	require.True(t, ok)
	require.False(t, sub.Edit)
	require.Equal(t, "Kg", sub.Record.UnitName)
	require.True(t, sub.Record.Status.IsActive(masters.ActiveIsZero))
}

func TestSubmit_InvalidRecordIsNotSent(t *testing.T) {
	m, out := send(newUnitForm(), keyMsg("ctrl+s"))

	require.Len(t, out, 1)
	inv, ok := out[0].(InvalidMsg)
	require.True(t, ok)
	var verr *validate.Error
	require.ErrorAs(t, inv.Err, &verr)
	require.Equal(t, "Unit Name is required", verr.Message)
	require.Equal(t, "Unit Name is required", m.Err())
	require.Equal(t, 0, m.Focused())
}

func TestToggleStatus(t *testing.T) {
	m := typeText(newUnitForm(), "Box")
	m, _ = send(m, keyMsg("tab"))
	require.Equal(t, 1, m.Focused())

	m, _ = send(m, keyMsg("space"))
	require.Equal(t, "false", m.Value(1))
	require.Contains(t, m.View(), "Inactive")

	_, out := send(m, keyMsg("ctrl+s"))
	sub := out[0].(SubmitMsg[masters.Unit])
	require.False(t, sub.Record.Status.IsActive(masters.ActiveIsZero))
}

func TestEnterOnLastField_Submits(t *testing.T) {
	def := masters.KitchenCategories()
	m := New("Add", def.Form[:1], def.Blank(nil), false, nil)
	m = typeText(m, "Tandoor")

	_, out := send(m, keyMsg("enter"))
	require.Len(t, out, 1)
	require.IsType(t, SubmitMsg[masters.KitchenCategory]{}, out[0])
}

func TestEsc_Cancels(t *testing.T) {
	_, out := send(newUnitForm(), keyMsg("esc"))
	require.Equal(t, []tea.Msg{CancelMsg{}}, out)
}

func TestFocusWraps(t *testing.T) {
	m, _ := send(newUnitForm(), keyMsg("shift+tab"))
	require.Equal(t, 1, m.Focused())
	m, _ = send(m, keyMsg("tab"))
	require.Equal(t, 0, m.Focused())
}

func stateOptions() []masters.Option {
	return []masters.Option{
		{ID: "1", Name: "Maharashtra", Active: true},
		{ID: "2", Name: "Karnataka", Active: true},
	}
}

func cityOptions() []masters.Option {
	return []masters.Option{
		{ID: "10", Name: "Pune", Active: true, Parent: "1"},
		{ID: "11", Name: "Nagpur", Active: true, Parent: "1"},
		{ID: "20", Name: "Mysuru", Active: true, Parent: "2"},
	}
}

func fieldIndex[T any](m Model[T], name string) int {
	for i, f := range m.fields {
		if f.Name == name {
			return i
		}
	}
	return -1
}

func focus[T any](m Model[T], name string) Model[T] {
	m.focusField(fieldIndex(m, name))
	return m
}

func newCustomerForm(rec masters.Customer, edit bool) Model[masters.Customer] {
	def := masters.Customers()
	m := New("Customer", def.Form, rec, edit, nil)
	m = m.SetOptions("states", stateOptions())
	return m.SetOptions("cities", cityOptions())
}

func TestLookups(t *testing.T) {
	def := masters.Customers()
	m := New("Customer", def.Form, def.Blank(nil), false, nil)
	require.Equal(t, []string{"states", "cities"}, m.Lookups())
}

func TestLookup_PickStateThenCity(t *testing.T) {
	m := newCustomerForm(masters.Customers().Blank(nil), false)

	m = focus(m, "StateID")
	m, _ = send(m, keyMsg("enter"))
	require.True(t, m.Picking())
	m = typeText(m, "kar")
	m, _ = send(m, keyMsg("enter"))
	require.False(t, m.Picking())
	require.Equal(t, "2", m.Value(fieldIndex(m, "StateID")))
	require.Contains(t, m.View(), "Karnataka")

	m = focus(m, "CityID")
	m, _ = send(m, keyMsg("enter"))
	require.True(t, m.Picking())
	require.Contains(t, m.View(), "Mysuru")
	require.NotContains(t, m.View(), "Pune")
	m, _ = send(m, keyMsg("enter"))
	require.Equal(t, "20", m.Value(fieldIndex(m, "CityID")))

	rec, err := m.build()
	require.NoError(t, err)
	require.Equal(t, masters.ID("2"), rec.StateID)
	require.Equal(t, "Karnataka", rec.StateName)
	require.Equal(t, masters.ID("20"), rec.CityID)
	require.Equal(t, "Mysuru", rec.CityName)
}

func TestLookup_ChangingStateClearsCity(t *testing.T) {
	rec := masters.Customer{Name: "Asha", Mobile: "9876543210", StateID: "1", CityID: "10"}
	m := newCustomerForm(rec, true)
	require.Contains(t, m.View(), "Pune")

	m = focus(m, "StateID")
	m, _ = send(m, keyMsg("enter"))
	m = typeText(m, "karna")
	m, _ = send(m, keyMsg("enter"))

	require.Equal(t, "", m.Value(fieldIndex(m, "CityID")))
}

func TestLookup_CityNeedsState(t *testing.T) {
	m := newCustomerForm(masters.Customers().Blank(nil), false)
	m = focus(m, "CityID")

	m, _ = send(m, keyMsg("enter"))
	require.False(t, m.Picking())
	require.Equal(t, "Choose state first", m.Err())
}

func TestLookup_BackspaceClears(t *testing.T) {
	rec := masters.Customer{StateID: "1"}
	m := newCustomerForm(rec, true)
	m = focus(m, "StateID")

	m, _ = send(m, keyMsg("backspace"))
	require.Equal(t, "", m.Value(fieldIndex(m, "StateID")))
}

func TestLookup_PickerEscKeepsValue(t *testing.T) {
	rec := masters.Customer{StateID: "1"}
	m := newCustomerForm(rec, true)
	m = focus(m, "StateID")

	m, _ = send(m, keyMsg("enter"))
	m, _ = send(m, keyMsg("esc"))
	require.False(t, m.Picking())
	require.Equal(t, "1", m.Value(fieldIndex(m, "StateID")))
}

func TestEdit_SubmitCarriesBefore(t *testing.T) {
	before := masters.Unit{UnitID: "4", UnitName: "Kg"}
	def := masters.Units()
	m := New("Edit unit", def.Form, before, true, nil)
	m = typeText(m, "s")

	_, out := send(m, keyMsg("ctrl+s"))
	sub := out[0].(SubmitMsg[masters.Unit])
	require.True(t, sub.Edit)
	require.Equal(t, before, sub.Before)
	require.Equal(t, "Kgs", sub.Record.UnitName)
	require.Equal(t, masters.ID("4"), sub.Record.UnitID)
	require.Contains(t, m.View(), "Update")
}
