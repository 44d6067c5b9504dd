// Package recordform is the add/edit form shared by every master screen.
// Inputs come from the screen's FormField list; lookup fields open a
// typeahead picker; the record is validated before it is handed back.
package recordform

import (
	"errors"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/restodesk/internal/keys"
	"github.com/zjrosen/restodesk/internal/listview"
	"github.com/zjrosen/restodesk/internal/log"
	"github.com/zjrosen/restodesk/internal/masters"
	"github.com/zjrosen/restodesk/internal/ui/overlay"
	"github.com/zjrosen/restodesk/internal/ui/styles"
	"github.com/zjrosen/restodesk/internal/ui/typeahead"
	"github.com/zjrosen/restodesk/internal/validate"
)

const (
	labelWidth = 22
	formWidth  = 64
)

// SubmitMsg carries a validated record. Before is the record the form was
// opened with.
type SubmitMsg[T any] struct {
	Record T
	Before T
	Edit   bool
}

// InvalidMsg reports a record that failed validation; nothing was sent.
type InvalidMsg struct {
	Err error
}

// CancelMsg closes the form.
type CancelMsg struct{}

type input struct {
	text textinput.Model
	// name is the display name of a lookup value.
	name string
}

// Model is the form state for records of type T.
type Model[T any] struct {
	title   string
	fields  []masters.FormField[T]
	before  T
	edit    bool
	inputs  []input
	focus   int
	options map[string][]masters.Option
	picker  *typeahead.Model
	coll    listview.Collator
	err     string
	width   int
	height  int
}

// New opens a form over rec. edit selects the "Update" wording.
func New[T any](title string, fields []masters.FormField[T], rec T, edit bool, coll listview.Collator) Model[T] {
	m := Model[T]{
		title:   title,
		fields:  fields,
		before:  rec,
		edit:    edit,
		inputs:  make([]input, len(fields)),
		options: map[string][]masters.Option{},
		coll:    coll,
	}
	for i, f := range fields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = f.Placeholder
		ti.Width = formWidth - labelWidth - 6
		ti.SetValue(f.Get(rec))
		m.inputs[i].text = ti
	}
	m.focusField(0)
	return m
}

// Lookups returns the lookup list names the form needs.
func (m Model[T]) Lookups() []string {
	var out []string
	for _, f := range m.fields {
		if f.Kind == masters.InputLookup && f.Lookup != "" && !slices.Contains(out, f.Lookup) {
			out = append(out, f.Lookup)
		}
	}
	return out
}

// SetOptions provides the options of a lookup list and resolves display
// names of values already chosen.
func (m Model[T]) SetOptions(name string, opts []masters.Option) Model[T] {
	m.options[name] = opts
	for i, f := range m.fields {
		if f.Lookup != name {
			continue
		}
		if n, ok := masters.OptionName(opts, masters.ID(m.inputs[i].text.Value())); ok {
			m.inputs[i].name = n
		}
	}
	return m
}

// Focused returns the focused field index.
func (m Model[T]) Focused() int {
	return m.focus
}

// Value returns the raw text of field i.
func (m Model[T]) Value(i int) string {
	return m.inputs[i].text.Value()
}

// Picking reports whether a lookup picker is open.
func (m Model[T]) Picking() bool {
	return m.picker != nil
}

// Err returns the message shown under the form.
func (m Model[T]) Err() string {
	return m.err
}

// SetSize records the viewport for Overlay.
func (m Model[T]) SetSize(width, height int) Model[T] {
	m.width, m.height = width, height
	return m
}

func (m *Model[T]) focusField(i int) {
	if len(m.inputs) == 0 {
		return
	}
	m.inputs[m.focus].text.Blur()
	m.focus = (i + len(m.inputs)) % len(m.inputs)
	if m.editable(m.focus) {
		m.inputs[m.focus].text.Focus()
	}
}

func (m Model[T]) editable(i int) bool {
	switch m.fields[i].Kind {
	case masters.InputText, masters.InputNumber:
		return true
	}
	return false
}

// Init implements tea.Model.
func (m Model[T]) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles field navigation, toggles, pickers and submit.
func (m Model[T]) Update(msg tea.Msg) (Model[T], tea.Cmd) {
	switch msg := msg.(type) {
	case typeahead.SelectedMsg:
		m.picker = nil
		m.choose(msg.Field, msg.Option)
		return m, nil
	case typeahead.CancelledMsg:
		m.picker = nil
		return m, nil
	case tea.KeyMsg:
		if m.picker != nil {
			p, cmd := m.picker.Update(msg)
			m.picker = &p
			return m, cmd
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model[T]) handleKey(msg tea.KeyMsg) (Model[T], tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Form.Cancel):
		return m, func() tea.Msg { return CancelMsg{} }
	case key.Matches(msg, keys.Form.Submit):
		return m.submit()
	case key.Matches(msg, keys.Form.Next):
		m.focusField(m.focus + 1)
		return m, nil
	case key.Matches(msg, keys.Form.Prev):
		m.focusField(m.focus - 1)
		return m, nil
	}

	f := m.fields[m.focus]
	switch f.Kind {
	case masters.InputBool, masters.InputStatus:
		if key.Matches(msg, keys.Form.Toggle) || msg.String() == "enter" {
			m.toggle()
		}
		return m, nil
	case masters.InputLookup:
		if key.Matches(msg, keys.Form.Pick) {
			return m.openPicker()
		}
		if msg.Type == tea.KeyBackspace || msg.Type == tea.KeyDelete {
			m.choose(f.Name, masters.Option{})
		}
		return m, nil
	}

	if msg.String() == "enter" {
		if m.focus == len(m.fields)-1 {
			return m.submit()
		}
		m.focusField(m.focus + 1)
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus].text, cmd = m.inputs[m.focus].text.Update(msg)
	m.err = ""
	return m, cmd
}

func (m *Model[T]) toggle() {
	in := &m.inputs[m.focus].text
	on, err := masters.ParseBool(in.Value())
	if err != nil {
		on = false
	}
	if on {
		in.SetValue("false")
	} else {
		in.SetValue("true")
	}
}

func (m Model[T]) openPicker() (Model[T], tea.Cmd) {
	f := m.fields[m.focus]
	opts := m.options[f.Lookup]
	if f.Parent != nil {
		rec, _ := m.build()
		parent := f.Parent(rec)
		if parent == "" {
			m.err = "Choose " + m.parentLabel(f) + " first"
			return m, nil
		}
		narrowed := make([]masters.Option, 0, len(opts))
		for _, o := range opts {
			if o.Parent == parent {
				narrowed = append(narrowed, o)
			}
		}
		opts = narrowed
	}
	p := typeahead.New(f.Name, f.Label, opts, m.coll)
	m.picker = &p
	return m, textinput.Blink
}

// parentLabel guesses the label of the field f depends on: the nearest
// earlier lookup field.
func (m Model[T]) parentLabel(f masters.FormField[T]) string {
	label := "the parent field"
	for _, other := range m.fields {
		if other.Name == f.Name {
			break
		}
		if other.Kind == masters.InputLookup {
			label = strings.ToLower(other.Label)
		}
	}
	return label
}

// choose stores opt in the field named name and clears dependent lookups
// that no longer belong to their parent.
func (m *Model[T]) choose(name string, opt masters.Option) {
	for i, f := range m.fields {
		if f.Name == name {
			m.inputs[i].text.SetValue(string(opt.ID))
			m.inputs[i].name = opt.Name
		}
	}
	rec, _ := m.build()
	for i, f := range m.fields {
		if f.Parent == nil || m.inputs[i].text.Value() == "" {
			continue
		}
		parent := f.Parent(rec)
		for _, o := range m.options[f.Lookup] {
			if o.ID == masters.ID(m.inputs[i].text.Value()) && o.Parent != parent {
				m.inputs[i].text.SetValue("")
				m.inputs[i].name = ""
			}
		}
	}
	m.err = ""
}

// build applies every input to a copy of the original record.
func (m Model[T]) build() (T, error) {
	rec := m.before
	var errs []error
	for i, f := range m.fields {
		if err := f.Set(&rec, m.inputs[i].text.Value()); err != nil {
			errs = append(errs, err)
		}
		if f.SetName != nil {
			f.SetName(&rec, m.inputs[i].name)
		}
	}
	return rec, errors.Join(errs...)
}

func (m Model[T]) submit() (Model[T], tea.Cmd) {
	rec, err := m.build()
	if err == nil {
		err = validate.Record(rec)
	}
	if err != nil {
		m.err = firstLine(err.Error())
		var verr *validate.Error
		if errors.As(err, &verr) {
			for i, f := range m.fields {
				if f.Name == verr.Field {
					m.focusField(i)
				}
			}
		}
		log.Debug(log.CatUI, "form rejected", "form", m.title, "error", m.err)
		return m, func() tea.Msg { return InvalidMsg{Err: err} }
	}
	out := SubmitMsg[T]{Record: rec, Before: m.before, Edit: m.edit}
	return m, func() tea.Msg { return out }
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}

// View renders the form box, or the picker when one is open.
func (m Model[T]) View() string {
	if m.picker != nil {
		return m.picker.View(formWidth)
	}

	rows := make([]string, 0, len(m.fields)+4)
	for i, f := range m.fields {
		rows = append(rows, m.renderField(i, f))
	}
	rows = append(rows, "")
	if m.err != "" {
		rows = append(rows, " "+styles.ErrorStyle.Render(styles.Truncate(m.err, formWidth-4)))
	}
	action := "Create"
	if m.edit {
		action = "Update"
	}
	rows = append(rows, " "+styles.PrimaryButtonStyle.Render(action+" (ctrl+s)")+"  "+styles.MutedStyle.Render("esc cancel"))
	return styles.RenderSection(rows, m.title, "", formWidth, true)
}

func (m Model[T]) renderField(i int, f masters.FormField[T]) string {
	focused := i == m.focus
	labelStyle := lipgloss.NewStyle().Foreground(styles.FormLabelColor)
	marker := "  "
	if focused {
		labelStyle = lipgloss.NewStyle().Foreground(styles.FormLabelFocusedColor).Bold(true)
		marker = styles.SelectionIndicatorStyle.Render(">") + " "
	}
	label := labelStyle.Render(styles.PadRight(f.Label, labelWidth))

	var value string
	switch f.Kind {
	case masters.InputBool:
		on, _ := masters.ParseBool(m.inputs[i].text.Value())
		value = "[ ] No"
		if on {
			value = "[x] Yes"
		}
	case masters.InputStatus:
		on, _ := masters.ParseBool(m.inputs[i].text.Value())
		value = styles.StatusText("[ ] "+masters.StatusLabel(false), false)
		if on {
			value = styles.StatusText("[x] "+masters.StatusLabel(true), true)
		}
	case masters.InputLookup:
		value = m.inputs[i].name
		if value == "" {
			value = m.inputs[i].text.Value()
		}
		if value == "" {
			value = styles.MutedStyle.Render("press enter to choose")
		}
	default:
		value = m.inputs[i].text.View()
	}
	return marker + label + value
}

// Overlay centers the form on bg.
func (m Model[T]) Overlay(bg string) string {
	return overlay.Place(overlay.Config{Width: m.width, Height: m.height}, m.View(), bg)
}
