package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

func resetTheme(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		require.NoError(t, ApplyTheme(ThemeConfig{}))
	})
}

func TestApplyTheme_Preset(t *testing.T) {
	resetTheme(t)

	require.NoError(t, ApplyTheme(ThemeConfig{Preset: "nord"}))
	require.Equal(t, lipgloss.AdaptiveColor{Light: "#BF616A", Dark: "#BF616A"}, StatusErrorColor)
	require.Equal(t, lipgloss.AdaptiveColor{Light: "#3B4252", Dark: "#3B4252"}, SelectionRowColor)
}

func TestApplyTheme_OverrideWinsOverPreset(t *testing.T) {
	resetTheme(t)

	err := ApplyTheme(ThemeConfig{
		Preset: "nord",
		Colors: map[string]string{"status.error": "#123456"},
	})
	require.NoError(t, err)
	require.Equal(t, "#123456", StatusErrorColor.Dark)
}

func TestApplyTheme_RebuildsStyles(t *testing.T) {
	resetTheme(t)

	require.NoError(t, ApplyTheme(ThemeConfig{Colors: map[string]string{"record.active": "#00FF00"}}))
	require.Equal(t, lipgloss.AdaptiveColor{Light: "#00FF00", Dark: "#00FF00"}, ActiveStyle.GetForeground())
}

func TestApplyTheme_Errors(t *testing.T) {
	resetTheme(t)

	tests := []struct {
		name string
		cfg  ThemeConfig
		want string
	}{
		{"unknown preset", ThemeConfig{Preset: "solarized"}, "unknown theme preset: solarized"},
		{"unknown token", ThemeConfig{Colors: map[string]string{"issue.bug": "#FFF"}}, "unknown color token: issue.bug"},
		{"bad hex", ThemeConfig{Colors: map[string]string{"text.muted": "red"}}, "invalid hex color for text.muted: red"},
		{"bad length", ThemeConfig{Colors: map[string]string{"text.muted": "#FFFF"}}, "invalid hex color"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorContains(t, ValidateTheme(tt.cfg), tt.want)
			require.ErrorContains(t, ApplyTheme(tt.cfg), tt.want)
		})
	}
}

func TestPresets_CoverEveryToken(t *testing.T) {
	for name, p := range Presets {
		for _, token := range AllTokens() {
			_, ok := p.Colors[token]
			require.Truef(t, ok, "preset %s misses %s", name, token)
		}
	}
	require.Len(t, colorTargets(), len(AllTokens()))
}

func TestRegisterStyleRebuilder(t *testing.T) {
	resetTheme(t)
	saved := styleRebuilders
	t.Cleanup(func() { styleRebuilders = saved })

	calls := 0
	RegisterStyleRebuilder(func() { calls++ })
	require.NoError(t, ApplyTheme(ThemeConfig{Preset: "high-contrast"}))
	require.Equal(t, 1, calls)
}
