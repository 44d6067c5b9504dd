package styles

// ColorToken names a themeable color. Tokens are the keys users override
// under theme.colors in the config file.
type ColorToken string

const (
	TokenTextPrimary   ColorToken = "text.primary"
	TokenTextSecondary ColorToken = "text.secondary"
	TokenTextMuted     ColorToken = "text.muted"

	TokenBorderDefault   ColorToken = "border.default"
	TokenBorderFocus     ColorToken = "border.focus"
	TokenBorderHighlight ColorToken = "border.highlight"

	TokenStatusSuccess ColorToken = "status.success"
	TokenStatusWarning ColorToken = "status.warning"
	TokenStatusError   ColorToken = "status.error"

	// Record status column.
	TokenRecordActive   ColorToken = "record.active"
	TokenRecordInactive ColorToken = "record.inactive"

	TokenSelectionIndicator ColorToken = "selection.indicator"
	TokenSelectionRow       ColorToken = "selection.row"

	TokenTableHeader     ColorToken = "table.header"
	TokenTableSortColumn ColorToken = "table.sort"

	TokenButtonText             ColorToken = "button.text"
	TokenButtonPrimaryBg        ColorToken = "button.primary.bg"
	TokenButtonPrimaryFocusBg   ColorToken = "button.primary.focus"
	TokenButtonSecondaryBg      ColorToken = "button.secondary.bg"
	TokenButtonSecondaryFocusBg ColorToken = "button.secondary.focus"
	TokenButtonDangerBg         ColorToken = "button.danger.bg"
	TokenButtonDangerFocusBg    ColorToken = "button.danger.focus"

	TokenFormLabel      ColorToken = "form.label"
	TokenFormLabelFocus ColorToken = "form.label.focus"

	TokenOverlayTitle  ColorToken = "overlay.title"
	TokenOverlayBorder ColorToken = "overlay.border"

	TokenToastSuccess ColorToken = "toast.success"
	TokenToastError   ColorToken = "toast.error"
	TokenToastInfo    ColorToken = "toast.info"
	TokenToastWarn    ColorToken = "toast.warn"

	TokenDiffAdded   ColorToken = "diff.added"
	TokenDiffRemoved ColorToken = "diff.removed"

	TokenSpinner ColorToken = "spinner"
)

// AllTokens returns every token in display order.
func AllTokens() []ColorToken {
	return []ColorToken{
		TokenTextPrimary, TokenTextSecondary, TokenTextMuted,
		TokenBorderDefault, TokenBorderFocus, TokenBorderHighlight,
		TokenStatusSuccess, TokenStatusWarning, TokenStatusError,
		TokenRecordActive, TokenRecordInactive,
		TokenSelectionIndicator, TokenSelectionRow,
		TokenTableHeader, TokenTableSortColumn,
		TokenButtonText, TokenButtonPrimaryBg, TokenButtonPrimaryFocusBg,
		TokenButtonSecondaryBg, TokenButtonSecondaryFocusBg,
		TokenButtonDangerBg, TokenButtonDangerFocusBg,
		TokenFormLabel, TokenFormLabelFocus,
		TokenOverlayTitle, TokenOverlayBorder,
		TokenToastSuccess, TokenToastError, TokenToastInfo, TokenToastWarn,
		TokenDiffAdded, TokenDiffRemoved,
		TokenSpinner,
	}
}
