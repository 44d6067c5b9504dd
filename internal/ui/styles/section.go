package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	borderTopLeft     = "╭"
	borderTopRight    = "╮"
	borderBottomLeft  = "╰"
	borderBottomRight = "╯"
	borderHorizontal  = "─"
	borderVertical    = "│"
)

// RenderSection draws content inside a rounded border with the title and an
// optional hint embedded in the top edge:
//
//	╭─ Title (hint) ──────╮
//	│content              │
//	╰─────────────────────╯
func RenderSection(content []string, title, hint string, width int, focused bool) string {
	var color lipgloss.TerminalColor = BorderDefaultColor
	if focused {
		color = BorderHighlightFocusColor
	}
	border := lipgloss.NewStyle().Foreground(color)
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(color)

	inner := max(width-2, 1)

	var top strings.Builder
	if title == "" {
		top.WriteString(border.Render(borderTopLeft + strings.Repeat(borderHorizontal, inner) + borderTopRight))
	} else {
		label := title
		if hint != "" {
			label += " (" + hint + ")"
		}
		fill := max(inner-lipgloss.Width(label)-3, 0)
		top.WriteString(border.Render(borderTopLeft + borderHorizontal + " "))
		top.WriteString(titleStyle.Render(title))
		if hint != "" {
			top.WriteString(" " + MutedStyle.Render("("+hint+")"))
		}
		top.WriteString(border.Render(" " + strings.Repeat(borderHorizontal, fill) + borderTopRight))
	}

	lines := make([]string, 0, len(content)+2)
	lines = append(lines, top.String())
	side := border.Render(borderVertical)
	for _, row := range content {
		lines = append(lines, side+PadRight(row, inner)+side)
	}
	lines = append(lines, border.Render(borderBottomLeft+strings.Repeat(borderHorizontal, inner)+borderBottomRight))
	return strings.Join(lines, "\n")
}
