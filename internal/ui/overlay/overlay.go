// Package overlay draws one rendered view on top of another without
// clearing what is underneath.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Position is where the foreground lands.
type Position int

const (
	Center Position = iota
	Top
	Bottom
	// BottomRight is used for toasts so the table stays readable.
	BottomRight
)

// Config describes the viewport and placement.
type Config struct {
	Width, Height int
	Position      Position
	// Margin keeps the foreground away from the edges it is anchored to.
	Margin int
}

// Place renders fg over bg. Both may contain ANSI styling; cells of bg not
// covered by fg keep theirs.
func Place(cfg Config, fg, bg string) string {
	fgLines := strings.Split(fg, "\n")
	bgLines := strings.Split(bg, "\n")
	for len(bgLines) < cfg.Height {
		bgLines = append(bgLines, "")
	}

	x, y := origin(cfg, lipgloss.Width(fg), len(fgLines))
	for i, line := range fgLines {
		row := y + i
		if row >= len(bgLines) {
			break
		}
		bgLines[row] = splice(bgLines[row], line, x)
	}
	return strings.Join(bgLines, "\n")
}

// splice replaces the cells of bg starting at column x with fg.
func splice(bg, fg string, x int) string {
	left := ansi.Truncate(bg, x, "")
	if w := ansi.StringWidth(left); w < x {
		left += strings.Repeat(" ", x-w)
	}
	var right string
	if end := x + ansi.StringWidth(fg); end < ansi.StringWidth(bg) {
		right = ansi.TruncateLeft(bg, end, "")
	}
	return left + fg + right
}

func origin(cfg Config, w, h int) (x, y int) {
	x = (cfg.Width - w) / 2
	y = (cfg.Height - h) / 2
	switch cfg.Position {
	case Top:
		y = cfg.Margin
	case Bottom:
		y = cfg.Height - h - cfg.Margin
	case BottomRight:
		x = cfg.Width - w - cfg.Margin
		y = cfg.Height - h - cfg.Margin
	}
	return max(x, 0), max(y, 0)
}
