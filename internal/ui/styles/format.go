package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// Ellipsis marks truncated cell text.
const Ellipsis = "…"

// Truncate shortens s to at most width cells, ANSI-aware, ending in an
// ellipsis when anything was cut.
func Truncate(s string, width int) string {
	if width < 1 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	if width == 1 {
		return Ellipsis
	}
	return truncate.StringWithTail(s, uint(width), Ellipsis)
}

// PadRight truncates or pads s with spaces to exactly width cells.
func PadRight(s string, width int) string {
	s = Truncate(s, width)
	if w := lipgloss.Width(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}

// StatusText renders an Active/Inactive label in its status color.
func StatusText(label string, active bool) string {
	if active {
		return ActiveStyle.Render(label)
	}
	return InactiveStyle.Render(label)
}
