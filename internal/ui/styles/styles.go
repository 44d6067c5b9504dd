// Package styles contains Lip Gloss style definitions.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	TextPrimaryColor   = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#CCCCCC"}
	TextSecondaryColor = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BBBBBB"}
	TextMutedColor     = lipgloss.AdaptiveColor{Light: "#888888", Dark: "#696969"} // hints, footers

	BorderDefaultColor        = lipgloss.AdaptiveColor{Light: "#AAAAAA", Dark: "#696969"}
	BorderFocusColor          = lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}
	BorderHighlightFocusColor = lipgloss.AdaptiveColor{Light: "#54A0FF", Dark: "#54A0FF"}

	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	StatusWarningColor = lipgloss.AdaptiveColor{Light: "#FECA57", Dark: "#FECA57"}
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}

	RecordActiveColor   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	RecordInactiveColor = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}

	SelectionIndicatorColor = lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}
	SelectionRowColor       = lipgloss.AdaptiveColor{Light: "#DDDDDD", Dark: "#2D3436"}

	TableHeaderColor     = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#C9C9C9"}
	TableSortColumnColor = lipgloss.AdaptiveColor{Light: "#1A5276", Dark: "#54A0FF"}

	ButtonTextColor             = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}
	ButtonPrimaryBgColor        = lipgloss.AdaptiveColor{Light: "#1A5276", Dark: "#1A5276"}
	ButtonPrimaryFocusBgColor   = lipgloss.AdaptiveColor{Light: "#3498DB", Dark: "#3498DB"}
	ButtonSecondaryBgColor      = lipgloss.AdaptiveColor{Light: "#2D3436", Dark: "#2D3436"}
	ButtonSecondaryFocusBgColor = lipgloss.AdaptiveColor{Light: "#636E72", Dark: "#636E72"}
	ButtonDangerBgColor         = lipgloss.AdaptiveColor{Light: "#922B21", Dark: "#922B21"}
	ButtonDangerFocusBgColor    = lipgloss.AdaptiveColor{Light: "#E74C3C", Dark: "#E74C3C"}

	FormLabelColor        = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#8C8C8C"}
	FormLabelFocusedColor = lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}

	OverlayTitleColor  = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#C9C9C9"}
	OverlayBorderColor = lipgloss.AdaptiveColor{Light: "#AAAAAA", Dark: "#8C8C8C"}

	ToastBorderSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	ToastBorderErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}
	ToastBorderInfoColor    = lipgloss.AdaptiveColor{Light: "#54A0FF", Dark: "#54A0FF"}
	ToastBorderWarnColor    = lipgloss.AdaptiveColor{Light: "#FECA57", Dark: "#FECA57"}

	DiffAddedColor   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	DiffRemovedColor = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}

	SpinnerColor = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#FFFFFF"}
)

// Styles built from the colors above. rebuildStyles recreates them after a
// theme change because a lipgloss.Style captures colors when it is built.
var (
	SelectionIndicatorStyle lipgloss.Style
	SelectedRowStyle        lipgloss.Style

	TableHeaderStyle     lipgloss.Style
	TableSortHeaderStyle lipgloss.Style

	ActiveStyle   lipgloss.Style
	InactiveStyle lipgloss.Style

	PrimaryButtonStyle          lipgloss.Style
	PrimaryButtonFocusedStyle   lipgloss.Style
	SecondaryButtonStyle        lipgloss.Style
	SecondaryButtonFocusedStyle lipgloss.Style
	DangerButtonStyle           lipgloss.Style
	DangerButtonFocusedStyle    lipgloss.Style

	DiffAddedStyle   lipgloss.Style
	DiffRemovedStyle lipgloss.Style

	MutedStyle     lipgloss.Style
	StatusBarStyle lipgloss.Style
	ErrorStyle     lipgloss.Style
	TitleStyle     lipgloss.Style
)

func init() {
	rebuildStyles()
}

func rebuildStyles() {
	SelectionIndicatorStyle = lipgloss.NewStyle().Bold(true).Foreground(SelectionIndicatorColor)
	SelectedRowStyle = lipgloss.NewStyle().Background(SelectionRowColor).Bold(true)

	TableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(TableHeaderColor)
	TableSortHeaderStyle = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(TableSortColumnColor)

	ActiveStyle = lipgloss.NewStyle().Foreground(RecordActiveColor)
	InactiveStyle = lipgloss.NewStyle().Foreground(RecordInactiveColor)

	button := lipgloss.NewStyle().Padding(0, 2).Bold(true).Foreground(ButtonTextColor)
	focused := func(bg lipgloss.TerminalColor) lipgloss.Style {
		return button.Background(bg).Underline(true).UnderlineSpaces(true)
	}
	PrimaryButtonStyle = button.Background(ButtonPrimaryBgColor)
	PrimaryButtonFocusedStyle = focused(ButtonPrimaryFocusBgColor)
	SecondaryButtonStyle = button.Background(ButtonSecondaryBgColor)
	SecondaryButtonFocusedStyle = focused(ButtonSecondaryFocusBgColor)
	DangerButtonStyle = button.Background(ButtonDangerBgColor)
	DangerButtonFocusedStyle = focused(ButtonDangerFocusBgColor)

	DiffAddedStyle = lipgloss.NewStyle().Foreground(DiffAddedColor).Underline(true)
	DiffRemovedStyle = lipgloss.NewStyle().Foreground(DiffRemovedColor).Strikethrough(true)

	MutedStyle = lipgloss.NewStyle().Foreground(TextMutedColor)
	StatusBarStyle = lipgloss.NewStyle().Foreground(TextSecondaryColor).Padding(0, 1)
	ErrorStyle = lipgloss.NewStyle().Foreground(StatusErrorColor).Bold(true)
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(OverlayTitleColor)

	for _, fn := range styleRebuilders {
		fn()
	}
}
