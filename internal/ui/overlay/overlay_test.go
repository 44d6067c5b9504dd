package overlay

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

func background(w, h int) string {
	rows := make([]string, h)
	for i := range rows {
		rows[i] = strings.Repeat(".", w)
	}
	return strings.Join(rows, "\n")
}

func TestPlace_Center(t *testing.T) {
	out := Place(Config{Width: 10, Height: 5}, "XX\nXX", background(10, 5))
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 5)
	require.Equal(t, "..........", lines[0])
	require.Equal(t, "....XX....", lines[1])
	require.Equal(t, "....XX....", lines[2])
	require.Equal(t, "..........", lines[3])
}

func TestPlace_BottomRightWithMargin(t *testing.T) {
	out := Place(Config{Width: 10, Height: 4, Position: BottomRight, Margin: 1}, "OK", background(10, 4))
	lines := strings.Split(out, "\n")
	require.Equal(t, ".......OK.", lines[2])
	require.Equal(t, "..........", lines[3])
}

func TestPlace_TopAndBottom(t *testing.T) {
	top := strings.Split(Place(Config{Width: 6, Height: 3, Position: Top}, "ab", background(6, 3)), "\n")
	require.Equal(t, "..ab..", top[0])

	bottom := strings.Split(Place(Config{Width: 6, Height: 3, Position: Bottom}, "ab", background(6, 3)), "\n")
	require.Equal(t, "..ab..", bottom[2])
}

func TestPlace_ShortBackgroundIsPadded(t *testing.T) {
	out := Place(Config{Width: 6, Height: 3}, "ab", "")
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "  ab", lines[1])
}

func TestPlace_KeepsStyledBackground(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true).Render("..........")
	out := Place(Config{Width: 10, Height: 1}, "X", styled)
	require.Equal(t, 10, lipgloss.Width(out))
	require.Contains(t, out, "X")
}

func TestPlace_ForegroundLargerThanViewport(t *testing.T) {
	out := Place(Config{Width: 2, Height: 1}, "WIDE\nTALL", "..")
	require.Equal(t, "WIDE", out)
}
