package listscreen

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/restodesk/internal/keys"
	"github.com/zjrosen/restodesk/internal/log"
	"github.com/zjrosen/restodesk/internal/masters"
	"github.com/zjrosen/restodesk/internal/ui/help"
	"github.com/zjrosen/restodesk/internal/ui/modal"
	"github.com/zjrosen/restodesk/internal/ui/recordform"
	"github.com/zjrosen/restodesk/internal/ui/table"
	"github.com/zjrosen/restodesk/internal/ui/toaster"
)

// Update implements tea.Model.
func (m Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if m.form != nil {
			f := m.form.SetSize(m.width, m.height)
			m.form = &f
		}
		if m.confirm != nil {
			m.confirm.SetSize(m.width, m.height)
		}
		if m.help != nil {
			h := m.help.SetSize(m.width, m.height)
			m.help = &h
		}
		return m, nil

	case toaster.DismissMsg:
		m.toaster = m.toaster.Update(msg)
		return m, nil

	case debounceMsg:
		if msg.sched == m.sched {
			m.sched.Fire(msg.id)
			m.cursor = 0
		}
		return m, nil

	case fetchedMsg[T]:
		if msg.source != m.pipeline.Source() {
			return m, nil
		}
		m.completeFetch(msg)
		m.clampCursor()
		if msg.err != nil {
			return m.toast(msg.err.Error(), toaster.StyleError)
		}
		return m, nil

	case savedMsg[T]:
		return m.handleSaved(msg)

	case deletedMsg:
		return m.handleDeleted(msg)

	case optionsMsg:
		if msg.screen != m.cfg.Def.Name {
			return m, nil
		}
		if msg.err != nil {
			return m.toast(msg.err.Error(), toaster.StyleError)
		}
		if m.form != nil {
			f := m.form.SetOptions(msg.name, msg.opts)
			m.form = &f
		}
		return m, nil

	case exportedMsg:
		if msg.err != nil {
			return m.toast(msg.err.Error(), toaster.StyleError)
		}
		return m.toast("Exported "+strconv.Itoa(msg.rows)+" "+m.cfg.Def.Plural+" to "+msg.path, toaster.StyleSuccess)

	case recordform.SubmitMsg[T]:
		return m.handleSubmit(msg)

	case recordform.InvalidMsg:
		return m.toast(msg.Err.Error(), toaster.StyleError)

	case recordform.CancelMsg:
		m.closeForm()
		return m, nil

	case modal.SubmitMsg:
		return m.handleConfirm(msg.Tag)

	case modal.CancelMsg:
		m.confirm = nil
		m.pending = nil
		if _, ok := msg.Tag.(confirmSave); ok && m.form != nil {
			m.mode = modeForm
		} else {
			m.mode = modeTable
		}
		return m, nil

	case help.CloseMsg:
		m.help = nil
		m.mode = modeTable
		return m, nil

	case tea.MouseMsg:
		if m.mode == modeTable || m.mode == modeSearch {
			return m.handleMouse(msg)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model[T]) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeForm:
		f, cmd := m.form.Update(msg)
		m.form = &f
		return m, cmd
	case modeConfirm:
		c, cmd := m.confirm.Update(msg)
		m.confirm = &c
		return m, cmd
	case modeHelp:
		h, cmd := m.help.Update(msg)
		m.help = &h
		return m, cmd
	case modeSearch:
		return m.handleSearchKey(msg)
	}

	page := m.pipeline.View()
	switch {
	case key.Matches(msg, keys.List.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.List.Back):
		return m, func() tea.Msg { return BackMsg{} }
	case key.Matches(msg, keys.List.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.List.Down):
		if m.cursor < len(page.Rows)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.List.NextPage):
		m.pipeline.NextPage()
		m.cursor = 0
	case key.Matches(msg, keys.List.PrevPage):
		m.pipeline.PrevPage()
		m.cursor = 0
	case key.Matches(msg, keys.List.Search):
		m.mode = modeSearch
		return m, m.search.Focus()
	case key.Matches(msg, keys.List.Sort):
		n, _ := strconv.Atoi(msg.String())
		return m.sortByColumn(m.sortableColumn(n))
	case key.Matches(msg, keys.List.Add):
		return m.openForm(m.cfg.Def.Blank(m.pipeline.Source().Records()), false)
	case key.Matches(msg, keys.List.Edit):
		if rec, ok := m.current(page.Rows); ok {
			m.pipeline.Select(rec)
			return m.openForm(rec, true)
		}
	case key.Matches(msg, keys.List.Delete):
		if rec, ok := m.current(page.Rows); ok {
			return m.openDelete(rec)
		}
	case key.Matches(msg, keys.List.Refresh):
		return m, m.fetch()
	case key.Matches(msg, keys.List.Export):
		return m, m.exportFiltered()
	case key.Matches(msg, keys.List.Help):
		h := help.New(m.helpTopic(), m.cfg.MarkdownStyle).SetSize(m.width, m.height)
		m.help = &h
		m.mode = modeHelp
	}
	return m, nil
}

// handleSearchKey echoes keystrokes into the box immediately; the filter
// only catches up when the debounce window closes.
func (m Model[T]) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Search.Apply):
		m.debouncer.Flush()
		m.cursor = 0
		m.mode = modeTable
		m.search.Blur()
		return m, nil
	case key.Matches(msg, keys.Search.Blur):
		m.mode = modeTable
		m.search.Blur()
		return m, nil
	case key.Matches(msg, keys.Search.Clear):
		m.search.SetValue("")
		m.debouncer.Input("")
		return m, m.sched.Cmd()
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if v := m.search.Value(); v != before {
		m.debouncer.Input(v)
		return m, tea.Batch(cmd, m.sched.Cmd())
	}
	return m, cmd
}

func (m Model[T]) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	inBounds := func(id string) bool {
		z := zone.Get(id)
		return z != nil && z.InBounds(msg)
	}
	if col := table.ColumnAt(m.tableCfg, inBounds); col >= 0 {
		return m.sortByColumn(col)
	}
	if row := table.RowAt(m.tableCfg, len(m.pipeline.View().Rows), inBounds); row >= 0 {
		m.cursor = row
	}
	return m, nil
}

// sortableColumn maps the digit n to the nth sortable column, -1 if none.
func (m Model[T]) sortableColumn(n int) int {
	sortable := m.cfg.Def.SortableColumns()
	if n < 1 || n > len(sortable) {
		return -1
	}
	return sortable[n-1]
}

func (m Model[T]) sortByColumn(col int) (tea.Model, tea.Cmd) {
	if col < 0 || col >= len(m.cfg.Def.Columns) || m.cfg.Def.Columns[col].Sort == "" {
		return m, nil
	}
	if err := m.pipeline.SortBy(m.cfg.Def.Columns[col].Sort); err != nil {
		log.ErrorErr(log.CatUI, "sort failed", err, "screen", m.cfg.Def.Name)
		return m, nil
	}
	m.cursor = 0
	changed := SortChangedMsg{Screen: m.cfg.Def.Name, Sort: m.pipeline.SortKey()}
	return m, func() tea.Msg { return changed }
}

func (m Model[T]) current(rows []T) (T, bool) {
	if m.cursor < 0 || m.cursor >= len(rows) {
		var zero T
		return zero, false
	}
	return rows[m.cursor], true
}

func (m *Model[T]) clampCursor() {
	rows := len(m.pipeline.View().Rows)
	m.cursor = max(min(m.cursor, rows-1), 0)
}

func (m Model[T]) openForm(rec T, edit bool) (tea.Model, tea.Cmd) {
	title := "Add " + m.cfg.Def.Singular
	if edit {
		title = "Edit " + m.cfg.Def.Singular
	}
	f := recordform.New(title, m.cfg.Def.Form, rec, edit, m.cfg.Collator).SetSize(m.width, m.height)
	m.form = &f
	m.mode = modeForm
	return m, tea.Batch(f.Init(), m.loadOptions(f.Lookups()))
}

func (m *Model[T]) closeForm() {
	m.form = nil
	m.pending = nil
	m.pipeline.ClearSelection()
	m.mode = modeTable
}

func (m Model[T]) openDelete(rec T) (tea.Model, tea.Cmd) {
	label := m.recordLabel(rec)
	c := modal.New(modal.Config{
		Title:          "Delete " + m.cfg.Def.Singular,
		Message:        "Are you sure you want to delete " + label + "?",
		ConfirmLabel:   "Delete",
		ConfirmVariant: modal.ButtonDanger,
		Tag:            confirmDelete{id: m.cfg.Def.Key(rec), label: label},
	})
	c.SetSize(m.width, m.height)
	m.confirm = &c
	m.mode = modeConfirm
	return m, nil
}

// recordLabel names a record by its first column, falling back to its key.
func (m Model[T]) recordLabel(rec T) string {
	if len(m.cfg.Def.Columns) > 0 {
		if v := strings.TrimSpace(m.cfg.Def.Columns[0].Value(rec)); v != "" && v != "-" {
			return v
		}
	}
	return "#" + string(m.cfg.Def.Key(rec))
}

// handleSubmit saves new records right away and asks for confirmation of
// edits, showing what changed.
func (m Model[T]) handleSubmit(sub recordform.SubmitMsg[T]) (tea.Model, tea.Cmd) {
	if !sub.Edit {
		return m, m.save(sub)
	}
	changes := masters.Changes(m.cfg.Def.Form, sub.Before, sub.Record)
	if len(changes) == 0 {
		m.closeForm()
		return m.toast("No changes to save", toaster.StyleInfo)
	}
	c := modal.New(modal.Config{
		Title:        "Update " + m.cfg.Def.Singular,
		Message:      "Save these changes to " + m.recordLabel(sub.Before) + "?",
		Changes:      changes,
		ConfirmLabel: "Save",
		Tag:          confirmSave{},
	})
	c.SetSize(m.width, m.height)
	m.confirm = &c
	m.pending = &sub
	m.mode = modeConfirm
	return m, nil
}

func (m Model[T]) handleConfirm(tag any) (tea.Model, tea.Cmd) {
	m.confirm = nil
	switch t := tag.(type) {
	case confirmSave:
		if m.pending == nil {
			m.mode = modeTable
			return m, nil
		}
		sub := *m.pending
		m.pending = nil
		m.mode = modeForm
		return m, m.save(sub)
	case confirmDelete:
		m.mode = modeTable
		return m, m.remove(t.id, t.label)
	}
	m.mode = modeTable
	return m, nil
}

// handleSaved patches the cache, clears the selection and refetches.
func (m Model[T]) handleSaved(msg savedMsg[T]) (tea.Model, tea.Cmd) {
	if msg.screen != m.cfg.Def.Name {
		return m, nil
	}
	if msg.err != nil {
		log.ErrorErr(log.CatUI, "save failed", msg.err, "screen", m.cfg.Def.Name)
		if m.form != nil {
			m.mode = modeForm
		}
		return m.toast(msg.err.Error(), toaster.StyleError)
	}

	m.pipeline.Saved(msg.record)
	m.form = nil
	m.mode = modeTable
	m.invalidateLookups()

	action := "created"
	if msg.edit {
		action = "updated"
	}
	id := m.cfg.Def.Key(msg.record)
	saved := SavedMsg{Screen: m.cfg.Def.Name, ID: id, Action: action}
	m2, toastCmd := m.toast(capitalize(m.cfg.Def.Singular)+" "+action+" successfully", toaster.StyleSuccess)
	mm := m2.(Model[T])
	return mm, tea.Batch(toastCmd, mm.fetch(), func() tea.Msg { return saved })
}

func (m Model[T]) handleDeleted(msg deletedMsg) (tea.Model, tea.Cmd) {
	if msg.screen != m.cfg.Def.Name {
		return m, nil
	}
	if msg.err != nil {
		log.ErrorErr(log.CatUI, "delete failed", msg.err, "screen", m.cfg.Def.Name, "id", msg.id)
		return m.toast(msg.err.Error(), toaster.StyleError)
	}

	m.pipeline.Deleted(msg.id)
	m.clampCursor()
	m.invalidateLookups()

	saved := SavedMsg{Screen: m.cfg.Def.Name, ID: msg.id, Action: "deleted"}
	m2, toastCmd := m.toast(capitalize(m.cfg.Def.Singular)+" deleted successfully", toaster.StyleSuccess)
	mm := m2.(Model[T])
	return mm, tea.Batch(toastCmd, mm.fetch(), func() tea.Msg { return saved })
}

func (m Model[T]) toast(text string, style toaster.Style) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.toaster, cmd = m.toaster.Show(text, style)
	return m, cmd
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func listHelp() [][]key.Binding {
	groups := keys.List.FullHelp()
	return append(groups, []key.Binding{keys.Search.Apply, keys.Search.Clear, keys.Search.Blur})
}
