package listscreen

import (
	"fmt"
	"strings"

	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/restodesk/internal/ui/styles"
	"github.com/zjrosen/restodesk/internal/ui/table"
)

// View implements tea.Model.
func (m Model[T]) View() string {
	page := m.pipeline.View()

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(m.cfg.Def.Title))
	b.WriteString("\n")

	search := m.search.View()
	if m.debouncer.Pending() {
		search += styles.MutedStyle.Render(" …")
	}
	b.WriteString(search)
	b.WriteString("\n\n")

	cursor := m.cursor
	if m.mode != modeTable {
		cursor = -1
	}
	b.WriteString(table.Render(m.tableCfg, table.State{
		Rows:   m.cfg.Def.Rows(page.Rows),
		Cursor: cursor,
		Sort:   page.Sort,
		Width:  m.width,
	}))
	b.WriteString("\n")

	switch {
	case page.Loading:
		b.WriteString(styles.MutedStyle.Render("Loading " + m.cfg.Def.Plural + "…"))
		b.WriteString("\n")
	case page.Err != nil:
		b.WriteString(styles.ErrorStyle.Render(page.Err.Error()))
		b.WriteString("\n")
	}

	footer := fmt.Sprintf("Page %d of %d · %d of %d %s", page.Index, page.TotalPages, page.Total, page.SourceTotal, m.cfg.Def.Plural)
	if page.Term != "" {
		footer += fmt.Sprintf(" matching %q", page.Term)
	}
	b.WriteString(styles.StatusBarStyle.Render(footer))

	view := b.String()
	switch m.mode {
	case modeForm:
		view = m.form.Overlay(view)
	case modeConfirm:
		view = m.confirm.Overlay(view)
	case modeHelp:
		view = m.help.Overlay(view)
	}
	if m.toaster.Visible() {
		view = m.toaster.Overlay(view, m.width, m.height)
	}
	return zone.Scan(view)
}
