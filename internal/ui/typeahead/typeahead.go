// Package typeahead is the searchable picker used by lookup form fields
// such as state and city.
package typeahead

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/restodesk/internal/keys"
	"github.com/zjrosen/restodesk/internal/listview"
	"github.com/zjrosen/restodesk/internal/masters"
	"github.com/zjrosen/restodesk/internal/ui/styles"
)

// DefaultVisible is how many matches are listed at once.
const DefaultVisible = 6

// SelectedMsg carries the chosen option.
type SelectedMsg struct {
	Field  string
	Option masters.Option
}

// CancelledMsg closes the picker without a choice.
type CancelledMsg struct {
	Field string
}

// Model is the picker state.
type Model struct {
	field   string
	label   string
	input   textinput.Model
	options []masters.Option
	matches []masters.Option
	cursor  int
	offset  int
	visible int
	coll    listview.Collator
}

// New returns a focused picker over options. field is echoed back in the
// result messages.
func New(field, label string, options []masters.Option, coll listview.Collator) Model {
	ti := textinput.New()
	ti.Prompt = "› "
	ti.Placeholder = "type to filter"
	ti.Focus()
	if coll == nil {
		coll = listview.NewCollator("en")
	}
	m := Model{
		field:   field,
		label:   label,
		input:   ti,
		options: options,
		visible: DefaultVisible,
		coll:    coll,
	}
	m.rank()
	return m
}

func (m *Model) rank() {
	m.matches = listview.Rank(m.options, m.input.Value(),
		func(o masters.Option) string { return o.Name },
		func(o masters.Option) bool { return o.Active },
		m.coll)
	m.cursor, m.offset = 0, 0
}

// Matches returns the ranked options for the current term.
func (m Model) Matches() []masters.Option {
	return m.matches
}

// Cursor returns the highlighted match index.
func (m Model) Cursor() int {
	return m.cursor
}

// Update handles typing and navigation.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case k.Type == tea.KeyUp || k.String() == "ctrl+p":
		if m.cursor > 0 {
			m.cursor--
			m.offset = min(m.offset, m.cursor)
		}
		return m, nil
	case k.Type == tea.KeyDown || k.String() == "ctrl+n":
		if m.cursor < len(m.matches)-1 {
			m.cursor++
			if m.cursor >= m.offset+m.visible {
				m.offset = m.cursor - m.visible + 1
			}
		}
		return m, nil
	case key.Matches(k, keys.Form.Pick):
		if len(m.matches) == 0 {
			return m, nil
		}
		sel := SelectedMsg{Field: m.field, Option: m.matches[m.cursor]}
		return m, func() tea.Msg { return sel }
	case key.Matches(k, keys.Form.Cancel):
		field := m.field
		return m, func() tea.Msg { return CancelledMsg{Field: field} }
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.rank()
	}
	return m, cmd
}

// View renders the input and the visible window of matches.
func (m Model) View(width int) string {
	rows := []string{m.input.View()}
	if len(m.matches) == 0 {
		rows = append(rows, styles.MutedStyle.Render("  No matches"))
	}
	end := min(m.offset+m.visible, len(m.matches))
	for i := m.offset; i < end; i++ {
		name := styles.Truncate(m.matches[i].Name, max(width-4, 1))
		if i == m.cursor {
			rows = append(rows, styles.SelectionIndicatorStyle.Render(">")+" "+name)
		} else {
			rows = append(rows, "  "+name)
		}
	}
	hint := ""
	if n := len(m.matches); n > m.visible {
		hint = fmt.Sprintf("%d/%d", m.cursor+1, n)
	}
	return styles.RenderSection(rows, m.label, hint, width, true)
}
