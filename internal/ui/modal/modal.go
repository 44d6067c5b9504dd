// Package modal renders confirmation dialogs: delete prompts and the
// field-by-field preview shown before an edit is saved.
package modal

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/restodesk/internal/masters"
	"github.com/zjrosen/restodesk/internal/ui/overlay"
	"github.com/zjrosen/restodesk/internal/ui/styles"
)

// ButtonVariant styles the confirm button.
type ButtonVariant int

const (
	ButtonPrimary ButtonVariant = iota
	// ButtonDanger is red, for deletes.
	ButtonDanger
)

const minWidth = 44

// Config controls the dialog.
type Config struct {
	Title   string
	Message string
	// Changes, when set, are listed as a word diff under the message.
	Changes        []masters.Change
	ConfirmLabel   string // default "Confirm"
	ConfirmVariant ButtonVariant
	// Tag is handed back in SubmitMsg and CancelMsg so the owner can tell
	// which question was answered.
	Tag any
}

// SubmitMsg is sent when the user confirms.
type SubmitMsg struct {
	Tag any
}

// CancelMsg is sent on esc or the Cancel button.
type CancelMsg struct {
	Tag any
}

// Field identifies the focused button.
type Field int

const (
	FieldConfirm Field = iota
	FieldCancel
)

// Model is the dialog state.
type Model struct {
	config Config
	focus  Field
	width  int
	height int
}

// New returns a dialog focused on the confirm button.
func New(cfg Config) Model {
	if cfg.ConfirmLabel == "" {
		cfg.ConfirmLabel = "Confirm"
	}
	return Model{config: cfg}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles navigation and the answer keys. y and n answer directly.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "right", "l", "shift+tab", "left", "h":
			if m.focus == FieldConfirm {
				m.focus = FieldCancel
			} else {
				m.focus = FieldConfirm
			}
		case "enter":
			if m.focus == FieldConfirm {
				return m, m.submit()
			}
			return m, m.cancel()
		case "y":
			return m, m.submit()
		case "n", "esc":
			return m, m.cancel()
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	}
	return m, nil
}

func (m Model) submit() tea.Cmd {
	tag := m.config.Tag
	return func() tea.Msg { return SubmitMsg{Tag: tag} }
}

func (m Model) cancel() tea.Cmd {
	tag := m.config.Tag
	return func() tea.Msg { return CancelMsg{Tag: tag} }
}

// View renders the dialog box.
func (m Model) View() string {
	width := max(minWidth, lipgloss.Width(m.config.Title)+2)
	if len(m.config.Changes) > 0 {
		width = max(width, 60)
	}
	if m.width > 0 {
		width = max(min(width, m.width-4), 20)
	}
	inner := width - 2

	var body strings.Builder
	if m.config.Message != "" {
		body.WriteString(lipgloss.NewStyle().Foreground(styles.TextPrimaryColor).Width(inner).Render(m.config.Message))
		body.WriteString("\n\n")
	}
	if len(m.config.Changes) > 0 {
		body.WriteString(renderChanges(m.config.Changes, inner))
		body.WriteString("\n\n")
	}
	body.WriteString(m.renderButtons())

	title := lipgloss.NewStyle().Bold(true).Foreground(styles.OverlayTitleColor).PaddingLeft(1).Render(m.config.Title)
	divider := lipgloss.NewStyle().Foreground(styles.OverlayBorderColor).Render(strings.Repeat("─", width))
	content := title + "\n" + divider + "\n" + lipgloss.NewStyle().Padding(1, 1).Render(body.String())

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.OverlayBorderColor).
		Width(width).
		Render(content)
}

func renderChanges(changes []masters.Change, width int) string {
	labelWidth := 0
	for _, c := range changes {
		labelWidth = max(labelWidth, lipgloss.Width(c.Label))
	}
	rows := make([]string, 0, len(changes))
	for _, c := range changes {
		label := styles.MutedStyle.Render(styles.PadRight(c.Label, labelWidth))
		rows = append(rows, styles.Truncate(label+"  "+RenderSegments(c.Segments), width))
	}
	return styles.RenderSection(rows, "Changes", "", width, false)
}

// RenderSegments styles a word diff: removed text struck through, added
// text underlined.
func RenderSegments(segs []masters.Segment) string {
	var b strings.Builder
	for _, s := range segs {
		switch s.Kind {
		case masters.SegmentRemoved:
			b.WriteString(styles.DiffRemovedStyle.Render(s.Text))
		case masters.SegmentAdded:
			b.WriteString(styles.DiffAddedStyle.Render(s.Text))
		default:
			b.WriteString(s.Text)
		}
	}
	return b.String()
}

func (m Model) renderButtons() string {
	confirm := styles.PrimaryButtonStyle
	if m.config.ConfirmVariant == ButtonDanger {
		confirm = styles.DangerButtonStyle
	}
	if m.focus == FieldConfirm {
		confirm = styles.PrimaryButtonFocusedStyle
		if m.config.ConfirmVariant == ButtonDanger {
			confirm = styles.DangerButtonFocusedStyle
		}
	}
	cancel := styles.SecondaryButtonStyle
	if m.focus == FieldCancel {
		cancel = styles.SecondaryButtonFocusedStyle
	}
	return confirm.Render(m.config.ConfirmLabel) + "  " + cancel.Render("Cancel")
}

// Overlay centers the dialog on bg.
func (m Model) Overlay(bg string) string {
	return overlay.Place(overlay.Config{Width: m.width, Height: m.height}, m.View(), bg)
}

// SetSize records the viewport used by Overlay.
func (m *Model) SetSize(width, height int) {
	m.width, m.height = width, height
}

// Focused returns the focused button.
func (m Model) Focused() Field {
	return m.focus
}

// Tag returns the tag the dialog was opened with.
func (m Model) Tag() any {
	return m.config.Tag
}
