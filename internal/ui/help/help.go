// Package help renders the keybinding and screen reference overlay.
package help

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/restodesk/internal/log"
	"github.com/zjrosen/restodesk/internal/ui/markdown"
	"github.com/zjrosen/restodesk/internal/ui/overlay"
	"github.com/zjrosen/restodesk/internal/ui/styles"
)

// Topic is everything the overlay documents for one screen.
type Topic struct {
	Title string
	// Groups are rendered as one table each, in order.
	Groups [][]key.Binding
	// Searchable lists the column titles the search box matches.
	Searchable []string
	// Sortable lists the sortable column titles in digit order.
	Sortable []string
	Notes    []string
}

// Markdown builds the help document for t.
func Markdown(t Topic) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", t.Title)

	b.WriteString("| Key | Action |\n|---|---|\n")
	for _, group := range t.Groups {
		for _, binding := range group {
			h := binding.Help()
			if h.Key == "" {
				continue
			}
			fmt.Fprintf(&b, "| `%s` | %s |\n", h.Key, h.Desc)
		}
	}

	if len(t.Searchable) > 0 {
		fmt.Fprintf(&b, "\n## Search\n\nMatches %s, ignoring case.\n", strings.Join(t.Searchable, ", "))
	}
	if len(t.Sortable) > 0 {
		b.WriteString("\n## Sort\n\n")
		for i, title := range t.Sortable {
			fmt.Fprintf(&b, "%d. %s\n", i+1, title)
		}
		b.WriteString("\nPress a digit or click a header; again to reverse.\n")
	}
	for _, n := range t.Notes {
		fmt.Fprintf(&b, "\n> %s\n", n)
	}
	return b.String()
}

// CloseMsg asks the owner to hide the overlay.
type CloseMsg struct{}

// Model is the scrollable help overlay.
type Model struct {
	topic    Topic
	style    string
	viewport viewport.Model
	width    int
	height   int
}

// New returns the overlay for topic. style is the glamour style name.
func New(topic Topic, style string) Model {
	m := Model{topic: topic, style: style, viewport: viewport.New(0, 0)}
	return m
}

// SetSize renders the document for the new size.
func (m Model) SetSize(width, height int) Model {
	m.width, m.height = width, height
	boxW := min(max(width-8, 30), 80)
	boxH := max(height-6, 5)
	m.viewport.Width = boxW - 2
	m.viewport.Height = boxH - 2

	content := Markdown(m.topic)
	r, err := markdown.New(m.viewport.Width, m.style)
	if err == nil {
		if out, rerr := r.Render(content); rerr == nil {
			content = out
		} else {
			err = rerr
		}
	}
	if err != nil {
		log.ErrorErr(log.CatUI, "help render failed, showing raw markdown", err)
	}
	m.viewport.SetContent(strings.TrimRight(content, "\n"))
	return m
}

// Update scrolls and closes the overlay.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "esc", "?", "q":
			return m, func() tea.Msg { return CloseMsg{} }
		}
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the bordered box.
func (m Model) View() string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.OverlayBorderColor).
		Render(m.viewport.View())
}

// Overlay centers the box on bg.
func (m Model) Overlay(bg string) string {
	return overlay.Place(overlay.Config{Width: m.width, Height: m.height}, m.View(), bg)
}
