package styles

import (
	"fmt"
	"maps"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// styleRebuilders lets packages that cache styles refresh them after a
// theme change without styles importing them.
var styleRebuilders []func()

// RegisterStyleRebuilder adds fn to the callbacks run after ApplyTheme.
func RegisterStyleRebuilder(fn func()) {
	styleRebuilders = append(styleRebuilders, fn)
}

// ThemeConfig mirrors config.ThemeConfig.
type ThemeConfig struct {
	Preset string
	Colors map[string]string
}

// colorTargets maps each token to the package variables it drives.
func colorTargets() map[ColorToken][]*lipgloss.AdaptiveColor {
	return map[ColorToken][]*lipgloss.AdaptiveColor{
		TokenTextPrimary:            {&TextPrimaryColor},
		TokenTextSecondary:          {&TextSecondaryColor},
		TokenTextMuted:              {&TextMutedColor},
		TokenBorderDefault:          {&BorderDefaultColor},
		TokenBorderFocus:            {&BorderFocusColor},
		TokenBorderHighlight:        {&BorderHighlightFocusColor},
		TokenStatusSuccess:          {&StatusSuccessColor},
		TokenStatusWarning:          {&StatusWarningColor},
		TokenStatusError:            {&StatusErrorColor},
		TokenRecordActive:           {&RecordActiveColor},
		TokenRecordInactive:         {&RecordInactiveColor},
		TokenSelectionIndicator:     {&SelectionIndicatorColor},
		TokenSelectionRow:           {&SelectionRowColor},
		TokenTableHeader:            {&TableHeaderColor},
		TokenTableSortColumn:        {&TableSortColumnColor},
		TokenButtonText:             {&ButtonTextColor},
		TokenButtonPrimaryBg:        {&ButtonPrimaryBgColor},
		TokenButtonPrimaryFocusBg:   {&ButtonPrimaryFocusBgColor},
		TokenButtonSecondaryBg:      {&ButtonSecondaryBgColor},
		TokenButtonSecondaryFocusBg: {&ButtonSecondaryFocusBgColor},
		TokenButtonDangerBg:         {&ButtonDangerBgColor},
		TokenButtonDangerFocusBg:    {&ButtonDangerFocusBgColor},
		TokenFormLabel:              {&FormLabelColor},
		TokenFormLabelFocus:         {&FormLabelFocusedColor},
		TokenOverlayTitle:           {&OverlayTitleColor},
		TokenOverlayBorder:          {&OverlayBorderColor},
		TokenToastSuccess:           {&ToastBorderSuccessColor},
		TokenToastError:             {&ToastBorderErrorColor},
		TokenToastInfo:              {&ToastBorderInfoColor},
		TokenToastWarn:              {&ToastBorderWarnColor},
		TokenDiffAdded:              {&DiffAddedColor},
		TokenDiffRemoved:            {&DiffRemovedColor},
		TokenSpinner:                {&SpinnerColor},
	}
}

// ApplyTheme starts from the default preset, layers the named preset and
// then the individual overrides on top, and rebuilds every style. Nothing is
// changed when cfg is invalid.
func ApplyTheme(cfg ThemeConfig) error {
	colors, err := resolve(cfg)
	if err != nil {
		return err
	}
	targets := colorTargets()
	for token, hex := range colors {
		for _, c := range targets[token] {
			*c = lipgloss.AdaptiveColor{Light: hex, Dark: hex}
		}
	}
	rebuildStyles()
	return nil
}

// ValidateTheme reports the first problem ApplyTheme would reject.
func ValidateTheme(cfg ThemeConfig) error {
	_, err := resolve(cfg)
	return err
}

func resolve(cfg ThemeConfig) (map[ColorToken]string, error) {
	colors := maps.Clone(DefaultPreset.Colors)
	if cfg.Preset != "" && cfg.Preset != DefaultPreset.Name {
		preset, ok := Presets[cfg.Preset]
		if !ok {
			return nil, fmt.Errorf("unknown theme preset: %s", cfg.Preset)
		}
		maps.Copy(colors, preset.Colors)
	}

	targets := colorTargets()
	for key, value := range cfg.Colors {
		token := ColorToken(key)
		if _, ok := targets[token]; !ok {
			return nil, fmt.Errorf("unknown color token: %s", key)
		}
		if !isValidHexColor(value) {
			return nil, fmt.Errorf("invalid hex color for %s: %s", key, value)
		}
		colors[token] = value
	}
	return colors, nil
}

func isValidHexColor(s string) bool {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 3 && len(hex) != 6) {
		return false
	}
	_, err := strconv.ParseUint(hex, 16, 64)
	return err == nil
}
