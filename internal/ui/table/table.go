// Package table renders one page of list rows with a clickable header.
//
// The table is a pure render component: callers pass the rows of the
// current page, the selected row and the active sort, and read clicks back
// through HeaderZone and RowZone. Zones are only recognised when the final
// view is passed through zone.Scan.
package table

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/restodesk/internal/listview"
	"github.com/zjrosen/restodesk/internal/ui/styles"
)

const (
	minColumnWidth = 3
	separator      = " "
	// indicatorWidth is the selection marker column on the left.
	indicatorWidth = 2
)

// Column is one table column.
type Column struct {
	Title string
	// Width is the preferred width. Columns shrink when the table is narrow.
	Width int
	// Sort is the pipeline field this column sorts by; "" means not sortable.
	Sort  string
	Align lipgloss.Position
	// Style, when set, decorates the already truncated cell text.
	Style func(cell string) string
}

// Config describes the table.
type Config struct {
	Columns []Column
	// ZonePrefix namespaces the bubblezone ids so two tables never collide.
	ZonePrefix   string
	EmptyMessage string
}

// State is what changes between renders.
type State struct {
	Rows [][]string
	// Cursor is the highlighted row index, -1 for none.
	Cursor int
	Sort   listview.SortKey
	Width  int
}

// HeaderZone is the zone id of column i's header.
func (c Config) HeaderZone(i int) string {
	return fmt.Sprintf("%s-col-%d", c.ZonePrefix, i)
}

// RowZone is the zone id of row i of the page.
func (c Config) RowZone(i int) string {
	return fmt.Sprintf("%s-row-%d", c.ZonePrefix, i)
}

// Render draws the header and rows.
func Render(cfg Config, st State) string {
	widths := Widths(cfg.Columns, st.Width)

	lines := make([]string, 0, len(st.Rows)+2)
	lines = append(lines, renderHeader(cfg, widths, st.Sort))

	rule := strings.Repeat("─", lineWidth(widths))
	lines = append(lines, styles.MutedStyle.Render(rule))

	if len(st.Rows) == 0 {
		msg := cfg.EmptyMessage
		if msg == "" {
			msg = "No results"
		}
		lines = append(lines, styles.MutedStyle.Render(strings.Repeat(" ", indicatorWidth)+msg))
		return strings.Join(lines, "\n")
	}

	for i, row := range st.Rows {
		lines = append(lines, zone.Mark(cfg.RowZone(i), renderRow(cfg.Columns, widths, row, i == st.Cursor)))
	}
	return strings.Join(lines, "\n")
}

func renderHeader(cfg Config, widths []int, sort listview.SortKey) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", indicatorWidth))
	for i, col := range cfg.Columns {
		if i > 0 {
			b.WriteString(separator)
		}
		title := col.Title
		style := styles.TableHeaderStyle
		if col.Sort != "" && col.Sort == sort.Field {
			title += " " + arrow(sort.Direction)
			style = styles.TableSortHeaderStyle
		}
		cell := align(styles.Truncate(title, widths[i]), widths[i], col.Align)
		b.WriteString(zone.Mark(cfg.HeaderZone(i), style.Render(cell)))
	}
	return b.String()
}

func arrow(d listview.Direction) string {
	if d == listview.Descending {
		return "▼"
	}
	return "▲"
}

func renderRow(cols []Column, widths []int, row []string, selected bool) string {
	var b strings.Builder
	if selected {
		b.WriteString(styles.SelectionIndicatorStyle.Render(">") + " ")
	} else {
		b.WriteString(strings.Repeat(" ", indicatorWidth))
	}
	for i, col := range cols {
		if i > 0 {
			b.WriteString(separator)
		}
		var text string
		if i < len(row) {
			text = row[i]
		}
		cell := align(styles.Truncate(text, widths[i]), widths[i], col.Align)
		if col.Style != nil {
			cell = col.Style(cell)
		}
		b.WriteString(cell)
	}
	if selected {
		return styles.SelectedRowStyle.Render(b.String())
	}
	return b.String()
}

func align(s string, width int, pos lipgloss.Position) string {
	pad := width - lipgloss.Width(s)
	if pad <= 0 {
		return s
	}
	switch pos {
	case lipgloss.Right:
		return strings.Repeat(" ", pad) + s
	case lipgloss.Center:
		return strings.Repeat(" ", pad/2) + s + strings.Repeat(" ", pad-pad/2)
	default:
		return s + strings.Repeat(" ", pad)
	}
}

func lineWidth(widths []int) int {
	total := indicatorWidth
	for i, w := range widths {
		if i > 0 {
			total += len(separator)
		}
		total += w
	}
	return total
}

// Widths fits the preferred column widths into total cells. Surplus space
// goes to the widest column; a deficit is taken from the widest columns
// first, never below minColumnWidth. Zero total keeps the preferred widths.
func Widths(cols []Column, total int) []int {
	widths := make([]int, len(cols))
	for i, c := range cols {
		widths[i] = max(c.Width, minColumnWidth)
	}
	if total <= 0 || len(cols) == 0 {
		return widths
	}

	avail := total - indicatorWidth - (len(cols)-1)*len(separator)
	used := 0
	for _, w := range widths {
		used += w
	}
	switch {
	case used < avail:
		widths[widest(widths)] += avail - used
	case used > avail:
		for used > avail {
			i := widest(widths)
			if widths[i] <= minColumnWidth {
				break
			}
			widths[i]--
			used--
		}
	}
	return widths
}

func widest(widths []int) int {
	best := 0
	for i, w := range widths {
		if w > widths[best] {
			best = i
		}
	}
	return best
}

// ColumnAt returns the header column a zone click hit, or -1.
func ColumnAt(cfg Config, inBounds func(id string) bool) int {
	for i := range cfg.Columns {
		if inBounds(cfg.HeaderZone(i)) {
			return i
		}
	}
	return -1
}

// RowAt returns the page row a zone click hit, or -1.
func RowAt(cfg Config, rows int, inBounds func(id string) bool) int {
	for i := range rows {
		if inBounds(cfg.RowZone(i)) {
			return i
		}
	}
	return -1
}
