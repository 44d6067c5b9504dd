package presentation

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/zjrosen/restodesk/internal/ui/styles"
)

// Formatter handles output formatting
type Formatter struct {
	writer io.Writer
}

// NewFormatter creates a new formatter
func NewFormatter(writer io.Writer) *Formatter {
	return &Formatter{
		writer: writer,
	}
}

// FormatJSON writes v as indented JSON.
func (f *Formatter) FormatJSON(v any) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// FormatScreens writes one line per screen.
func (f *Formatter) FormatScreens(list []ScreenDTO) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("NAME", "TITLE", "SCOPE", "STATUS")
	for _, s := range list {
		status := "available"
		switch {
		case s.Hidden:
			status = "hidden"
		case !s.Available:
			status = s.Reason
		}
		t.Row(s.Name, s.Title, s.Scope, status)
	}
	_, err := fmt.Fprintln(f.writer, t.Render())
	return err
}

// FormatPage writes the rows as a table followed by a page summary.
func (f *Formatter) FormatPage(p PageDTO) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(p.Headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.TableHeaderStyle
			}
			return lipgloss.NewStyle()
		})
	for _, r := range p.Rows {
		t.Row(r...)
	}
	summary := fmt.Sprintf("Page %d of %d · %d of %d %s", p.Page, p.TotalPages, p.Total, p.SourceTotal, p.Screen)
	if p.Term != "" {
		summary += fmt.Sprintf(" matching %q", p.Term)
	}
	_, err := fmt.Fprintf(f.writer, "%s\n%s\n", t.Render(), summary)
	return err
}
