package logoverlay

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/restodesk/internal/log"
)

func entry(level log.Level, msg string) string {
	return log.Format(time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC), level, log.CatUI, msg)
}

func key(s string) tea.KeyMsg {
	if s == "esc" {
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestAppend_KeepsCapacity(t *testing.T) {
	m := New(2)
	m = m.Append(entry(log.LevelInfo, "one"))
	m = m.Append(entry(log.LevelInfo, "two"))
	m = m.Append(entry(log.LevelInfo, "three"))

	got := m.Entries()
	require.Len(t, got, 2)
	require.Contains(t, got[0], "two")
	require.Contains(t, got[1], "three")
}

func TestLevelFilter(t *testing.T) {
	m := New(0).SetSize(100, 40).Toggle()
	m = m.Append(entry(log.LevelDebug, "fetching"))
	m = m.Append(entry(log.LevelWarn, "stale fetch applied"))
	m = m.Append(entry(log.LevelError, "save failed"))

	m, _ = m.Update(key("w"))
	require.Len(t, m.Entries(), 2)
	require.Contains(t, m.View(), "stale fetch applied")
	require.NotContains(t, m.View(), "fetching")

	m, _ = m.Update(key("e"))
	require.Len(t, m.Entries(), 1)

	m, _ = m.Update(key("d"))
	require.Len(t, m.Entries(), 3)
}

func TestClear(t *testing.T) {
	m := New(0).SetSize(100, 40).Toggle()
	m = m.Append(entry(log.LevelInfo, "hello"))

	m, _ = m.Update(key("c"))
	require.Empty(t, m.Entries())
	require.Contains(t, m.View(), "No logs to display")
}

func TestClose(t *testing.T) {
	m := New(0).SetSize(100, 40).Toggle()
	require.True(t, m.Visible())

	m, cmd := m.Update(key("esc"))
	require.False(t, m.Visible())
	require.Equal(t, CloseMsg{}, cmd())
	require.Empty(t, m.View())
}

func TestHiddenIgnoresKeys(t *testing.T) {
	m := New(0)
	m = m.Append(entry(log.LevelDebug, "x"))
	m, cmd := m.Update(key("e"))
	require.Nil(t, cmd)
	require.Len(t, m.Entries(), 1)
}
