package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSaveScreen_NewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	require.NoError(t, SaveScreen(path, "ledgers", ScreenConfig{Sort: "Name desc", PageSize: 20}))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "Name desc", cfg.Screen("ledgers").Sort)
	require.Equal(t, 20, cfg.Screen("ledgers").PageSize)
}

func TestSaveScreen_PreservesComments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, WriteDefaultConfig(path))

	require.NoError(t, SaveScreen(path, "units", ScreenConfig{Debounce: 200 * time.Millisecond}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "# REST backend")
	require.Contains(t, string(data), "debounce: 200ms")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 200*time.Millisecond, cfg.Screen("units").Debounce)
}

func TestSaveScreen_ReplacesExistingEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("screens:\n  units:\n    sort: unit_name\n  tables:\n    hidden: true\n"), 0o600))

	require.NoError(t, SaveScreen(path, "units", ScreenConfig{Sort: "unit_name desc"}))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "unit_name desc", cfg.Screen("units").Sort)
	require.True(t, cfg.Screen("tables").Hidden)
}

func TestSaveSort_KeepsOtherOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := Defaults()
	cfg.Screens = map[string]ScreenConfig{"units": {PageSize: 15}}

	require.NoError(t, SaveSort(path, cfg, "units", "unit_name desc"))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, ScreenConfig{PageSize: 15, Sort: "unit_name desc"}, loaded.Screen("units"))
}

func TestSaveScreen_RejectsNonMappingRoot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- a\n- b\n"), 0o600))

	require.ErrorContains(t, SaveScreen(path, "units", ScreenConfig{}), "not a mapping")
}
