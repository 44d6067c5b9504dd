package styles

// Preset is a complete color theme.
type Preset struct {
	Name        string
	Description string
	Colors      map[ColorToken]string
}

// Presets contains the built-in themes.
var Presets = map[string]Preset{
	"default":       DefaultPreset,
	"nord":          NordPreset,
	"high-contrast": HighContrastPreset,
}

// DefaultPreset matches the adaptive colors declared in styles.go (dark
// values).
var DefaultPreset = Preset{
	Name:        "default",
	Description: "Default restodesk theme",
	Colors: map[ColorToken]string{
		TokenTextPrimary:   "#CCCCCC",
		TokenTextSecondary: "#BBBBBB",
		TokenTextMuted:     "#696969",

		TokenBorderDefault:   "#696969",
		TokenBorderFocus:     "#FFFFFF",
		TokenBorderHighlight: "#54A0FF",

		TokenStatusSuccess: "#73F59F",
		TokenStatusWarning: "#FECA57",
		TokenStatusError:   "#FF8787",

		TokenRecordActive:   "#73F59F",
		TokenRecordInactive: "#999999",

		TokenSelectionIndicator: "#FFFFFF",
		TokenSelectionRow:       "#2D3436",

		TokenTableHeader:     "#C9C9C9",
		TokenTableSortColumn: "#54A0FF",

		TokenButtonText:             "#FFFFFF",
		TokenButtonPrimaryBg:        "#1A5276",
		TokenButtonPrimaryFocusBg:   "#3498DB",
		TokenButtonSecondaryBg:      "#2D3436",
		TokenButtonSecondaryFocusBg: "#636E72",
		TokenButtonDangerBg:         "#922B21",
		TokenButtonDangerFocusBg:    "#E74C3C",

		TokenFormLabel:      "#8C8C8C",
		TokenFormLabelFocus: "#FFFFFF",

		TokenOverlayTitle:  "#C9C9C9",
		TokenOverlayBorder: "#8C8C8C",

		TokenToastSuccess: "#73F59F",
		TokenToastError:   "#FF8787",
		TokenToastInfo:    "#54A0FF",
		TokenToastWarn:    "#FECA57",

		TokenDiffAdded:   "#73F59F",
		TokenDiffRemoved: "#FF8787",

		TokenSpinner: "#FFFFFF",
	},
}

// NordPreset is the arctic, north-bluish palette.
var NordPreset = Preset{
	Name:        "nord",
	Description: "Nord - arctic, north-bluish palette",
	Colors: map[ColorToken]string{
		TokenTextPrimary:   "#ECEFF4", // snow storm 3
		TokenTextSecondary: "#E5E9F0", // snow storm 2
		TokenTextMuted:     "#4C566A", // polar night 4

		TokenBorderDefault:   "#4C566A",
		TokenBorderFocus:     "#ECEFF4",
		TokenBorderHighlight: "#88C0D0", // frost 2

		TokenStatusSuccess: "#A3BE8C", // aurora green
		TokenStatusWarning: "#EBCB8B", // aurora yellow
		TokenStatusError:   "#BF616A", // aurora red

		TokenRecordActive:   "#A3BE8C",
		TokenRecordInactive: "#4C566A",

		TokenSelectionIndicator: "#ECEFF4",
		TokenSelectionRow:       "#3B4252", // polar night 2

		TokenTableHeader:     "#D8DEE9",
		TokenTableSortColumn: "#88C0D0",

		TokenButtonText:             "#2E3440",
		TokenButtonPrimaryBg:        "#5E81AC", // frost 4
		TokenButtonPrimaryFocusBg:   "#81A1C1", // frost 3
		TokenButtonSecondaryBg:      "#434C5E",
		TokenButtonSecondaryFocusBg: "#4C566A",
		TokenButtonDangerBg:         "#BF616A",
		TokenButtonDangerFocusBg:    "#D08770", // aurora orange

		TokenFormLabel:      "#4C566A",
		TokenFormLabelFocus: "#ECEFF4",

		TokenOverlayTitle:  "#ECEFF4",
		TokenOverlayBorder: "#4C566A",

		TokenToastSuccess: "#A3BE8C",
		TokenToastError:   "#BF616A",
		TokenToastInfo:    "#81A1C1",
		TokenToastWarn:    "#EBCB8B",

		TokenDiffAdded:   "#A3BE8C",
		TokenDiffRemoved: "#BF616A",

		TokenSpinner: "#88C0D0",
	},
}

// HighContrastPreset drops every muted color.
var HighContrastPreset = Preset{
	Name:        "high-contrast",
	Description: "High contrast for accessibility",
	Colors: map[ColorToken]string{
		TokenTextPrimary:   "#FFFFFF",
		TokenTextSecondary: "#FFFFFF",
		TokenTextMuted:     "#FFFFFF",

		TokenBorderDefault:   "#FFFFFF",
		TokenBorderFocus:     "#FFFF00",
		TokenBorderHighlight: "#00FFFF",

		TokenStatusSuccess: "#00FF00",
		TokenStatusWarning: "#FFFF00",
		TokenStatusError:   "#FF0000",

		TokenRecordActive:   "#00FF00",
		TokenRecordInactive: "#FFFFFF",

		TokenSelectionIndicator: "#FFFF00",
		TokenSelectionRow:       "#000080",

		TokenTableHeader:     "#FFFFFF",
		TokenTableSortColumn: "#FFFF00",

		TokenButtonText:             "#000000",
		TokenButtonPrimaryBg:        "#00FFFF",
		TokenButtonPrimaryFocusBg:   "#FFFF00",
		TokenButtonSecondaryBg:      "#FFFFFF",
		TokenButtonSecondaryFocusBg: "#FFFF00",
		TokenButtonDangerBg:         "#FF0000",
		TokenButtonDangerFocusBg:    "#FF00FF",

		TokenFormLabel:      "#FFFFFF",
		TokenFormLabelFocus: "#FFFF00",

		TokenOverlayTitle:  "#FFFFFF",
		TokenOverlayBorder: "#FFFFFF",

		TokenToastSuccess: "#00FF00",
		TokenToastError:   "#FF0000",
		TokenToastInfo:    "#00FFFF",
		TokenToastWarn:    "#FFFF00",

		TokenDiffAdded:   "#00FF00",
		TokenDiffRemoved: "#FF0000",

		TokenSpinner: "#FFFF00",
	},
}
