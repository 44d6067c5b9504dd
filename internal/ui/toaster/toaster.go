// Package toaster shows short-lived success and error notices.
package toaster

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/restodesk/internal/ui/overlay"
	"github.com/zjrosen/restodesk/internal/ui/styles"
)

// DefaultDuration is how long a toast stays up.
const DefaultDuration = 3 * time.Second

// Style picks the border color and icon.
type Style int

const (
	StyleSuccess Style = iota
	StyleError
	StyleInfo
	StyleWarn
)

// DismissMsg hides the toast it was scheduled for. A newer toast has a
// higher Seq and ignores older dismissals.
type DismissMsg struct {
	Seq int
}

// Model holds the current toast.
type Model struct {
	message  string
	style    Style
	seq      int
	duration time.Duration
}

// New returns an empty toaster.
func New() Model {
	return Model{duration: DefaultDuration}
}

// WithDuration changes how long later toasts stay up.
func (m Model) WithDuration(d time.Duration) Model {
	m.duration = d
	return m
}

// Show replaces the current toast and returns the command that dismisses it.
func (m Model) Show(message string, style Style) (Model, tea.Cmd) {
	m.seq++
	m.message = message
	m.style = style
	seq := m.seq
	return m, tea.Tick(m.duration, func(time.Time) tea.Msg { return DismissMsg{Seq: seq} })
}

// Update hides the toast when its dismissal arrives.
func (m Model) Update(msg tea.Msg) Model {
	if d, ok := msg.(DismissMsg); ok && d.Seq == m.seq {
		m.message = ""
	}
	return m
}

// Visible reports whether a toast is showing.
func (m Model) Visible() bool {
	return m.message != ""
}

// Message returns the text of the current toast.
func (m Model) Message() string {
	return m.message
}

// View renders the toast box, or "" when hidden.
func (m Model) View() string {
	if !m.Visible() {
		return ""
	}
	box := lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder())
	switch m.style {
	case StyleError:
		return box.BorderForeground(styles.ToastBorderErrorColor).Render("✗ " + m.message)
	case StyleInfo:
		return box.BorderForeground(styles.ToastBorderInfoColor).Render("i " + m.message)
	case StyleWarn:
		return box.BorderForeground(styles.ToastBorderWarnColor).Render("! " + m.message)
	default:
		return box.BorderForeground(styles.ToastBorderSuccessColor).Render("✓ " + m.message)
	}
}

// Overlay draws the toast in the bottom right corner of bg.
func (m Model) Overlay(bg string, width, height int) string {
	if !m.Visible() {
		return bg
	}
	return overlay.Place(overlay.Config{
		Width:    width,
		Height:   height,
		Position: overlay.BottomRight,
		Margin:   1,
	}, m.View(), bg)
}
