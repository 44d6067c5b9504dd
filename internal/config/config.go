// Package config provides configuration types, defaults, and loading for
// restodesk.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/zjrosen/restodesk/internal/listview"
	"github.com/zjrosen/restodesk/internal/log"
)

// EnvPrefix prefixes environment overrides, e.g. RESTODESK_BACKEND_TOKEN.
const EnvPrefix = "RESTODESK"

// Config holds all configuration options for restodesk.
type Config struct {
	Backend BackendConfig           `mapstructure:"backend"`
	Session SessionConfig           `mapstructure:"session"`
	UI      UIConfig                `mapstructure:"ui"`
	Theme   ThemeConfig             `mapstructure:"theme"`
	Lookups LookupsConfig           `mapstructure:"lookups"`
	Export  ExportConfig            `mapstructure:"export"`
	Screens map[string]ScreenConfig `mapstructure:"screens"`
	Tracing TracingConfig           `mapstructure:"tracing"`
	Server  ServerConfig            `mapstructure:"server"`
}

// BackendConfig points the client at the REST backend.
type BackendConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Token   string        `mapstructure:"token"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// SessionConfig holds the tenant ids requests are scoped by. Screens whose
// resource needs an id that is missing stay disabled.
type SessionConfig struct {
	CompanyID string `mapstructure:"company_id"`
	YearID    string `mapstructure:"year_id"`
	HotelID   string `mapstructure:"hotel_id"`
}

// UIConfig holds user interface options.
type UIConfig struct {
	PageSize      int    `mapstructure:"page_size"`
	Locale        string `mapstructure:"locale"` // BCP 47 tag used for sorting
	ShowStatusBar bool   `mapstructure:"show_status_bar"`
	MarkdownStyle string `mapstructure:"markdown_style"` // "dark" (default) or "light"

	// DiscardStaleFetches drops list responses that arrive after a newer
	// one was applied. Off by default: the last response to arrive wins.
	DiscardStaleFetches bool `mapstructure:"discard_stale_fetches"`
}

// ThemeConfig selects a color preset and optional token overrides.
type ThemeConfig struct {
	Preset string            `mapstructure:"preset"`
	Colors map[string]string `mapstructure:"colors"`
}

// LookupsConfig controls the per-screen lookup caches.
type LookupsConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// ExportConfig controls list exports.
type ExportConfig struct {
	Dir    string `mapstructure:"dir"`
	Format string `mapstructure:"format"` // csv (default), json, yaml
}

// ScreenConfig overrides one screen's list behaviour.
type ScreenConfig struct {
	PageSize int           `mapstructure:"page_size"`
	Debounce time.Duration `mapstructure:"debounce"`
	// Sort is "<field>" or "<field> desc".
	Sort   string `mapstructure:"sort"`
	Hidden bool   `mapstructure:"hidden"`
}

// SortKey parses Sort. ok is false when Sort is empty.
func (s ScreenConfig) SortKey() (key listview.SortKey, ok bool) {
	parts := strings.Fields(s.Sort)
	if len(parts) == 0 {
		return listview.SortKey{}, false
	}
	key.Field = parts[0]
	if len(parts) > 1 {
		key.Direction = listview.ParseDirection(strings.ToLower(parts[1]))
	}
	return key, true
}

// FormatSort is the inverse of ScreenConfig.SortKey.
func FormatSort(key listview.SortKey) string {
	if key.Field == "" {
		return ""
	}
	if key.Direction == listview.Descending {
		return key.Field + " desc"
	}
	return key.Field
}

// TracingConfig holds distributed tracing configuration.
type TracingConfig struct {
	Enabled bool `mapstructure:"enabled"`

	// Exporter selects the trace export backend.
	// Options: "none", "file", "stdout", "otlp"
	Exporter string `mapstructure:"exporter"`

	// FilePath is the output file for the "file" exporter.
	FilePath string `mapstructure:"file_path"`

	// OTLPEndpoint is the collector endpoint for the "otlp" exporter.
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`

	// SampleRate controls trace sampling (0.0 to 1.0).
	SampleRate float64 `mapstructure:"sample_rate"`
}

// ServerConfig configures the development backend started by `serve`.
type ServerConfig struct {
	Addr      string        `mapstructure:"addr"`
	DBPath    string        `mapstructure:"db_path"`
	JWTSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
	Seed      bool          `mapstructure:"seed"`
}

// Screen returns the overrides for name.
func (c Config) Screen(name string) ScreenConfig {
	return c.Screens[name]
}

// ConfigDir returns ~/.config/restodesk, or "" when the home directory is
// unknown.
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "restodesk")
}

// DefaultTracesFilePath returns ~/.config/restodesk/traces/traces.jsonl.
func DefaultTracesFilePath() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "traces", "traces.jsonl")
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Backend: BackendConfig{
			BaseURL: "http://localhost:3001/api",
			Timeout: 15 * time.Second,
		},
		UI: UIConfig{
			PageSize:      listview.DefaultPageSize,
			Locale:        "en",
			ShowStatusBar: true,
			MarkdownStyle: "dark",
		},
		Lookups: LookupsConfig{TTL: 5 * time.Minute},
		Export:  ExportConfig{Dir: ".", Format: "csv"},
		Tracing: TracingConfig{
			Exporter:     "file",
			OTLPEndpoint: "localhost:4317",
			SampleRate:   1.0,
		},
		Server: ServerConfig{
			Addr:     "127.0.0.1:3001",
			DBPath:   "restodesk.db",
			TokenTTL: 12 * time.Hour,
		},
	}
}

// SetDefaults registers Defaults with v so unset keys fall back to them.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("backend.base_url", d.Backend.BaseURL)
	v.SetDefault("backend.timeout", d.Backend.Timeout)
	v.SetDefault("ui.page_size", d.UI.PageSize)
	v.SetDefault("ui.locale", d.UI.Locale)
	v.SetDefault("ui.show_status_bar", d.UI.ShowStatusBar)
	v.SetDefault("ui.markdown_style", d.UI.MarkdownStyle)
	v.SetDefault("lookups.ttl", d.Lookups.TTL)
	v.SetDefault("export.dir", d.Export.Dir)
	v.SetDefault("export.format", d.Export.Format)
	v.SetDefault("tracing.exporter", d.Tracing.Exporter)
	v.SetDefault("tracing.otlp_endpoint", d.Tracing.OTLPEndpoint)
	v.SetDefault("tracing.sample_rate", d.Tracing.SampleRate)
	v.SetDefault("server.addr", d.Server.Addr)
	v.SetDefault("server.db_path", d.Server.DBPath)
	v.SetDefault("server.token_ttl", d.Server.TokenTTL)

	// Registered so AutomaticEnv can see keys that have no default.
	for _, key := range []string{
		"backend.token", "session.company_id", "session.year_id", "session.hotel_id",
		"server.jwt_secret",
	} {
		v.SetDefault(key, "")
	}
	v.SetDefault("tracing.enabled", false)
	v.SetDefault("ui.discard_stale_fetches", false)
}

// NewViper returns a viper instance with defaults and RESTODESK_ env
// overrides wired.
func NewViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file at path into a fresh Config.
func Load(path string) (Config, error) {
	v := NewViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	return Decode(v)
}

// Decode unmarshals v and validates the result.
func Decode(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every section.
func (c Config) Validate() error {
	return errors.Join(
		ValidateBackend(c.Backend),
		ValidateUI(c.UI),
		ValidateExport(c.Export),
		ValidateScreens(c.Screens),
		ValidateTracing(c.Tracing),
	)
}

// ValidateBackend checks the backend URL and timeout.
func ValidateBackend(b BackendConfig) error {
	if b.BaseURL == "" {
		return errors.New("backend.base_url is required")
	}
	u, err := url.Parse(b.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("backend.base_url must be an http(s) URL, got %q", b.BaseURL)
	}
	if b.Timeout < 0 {
		return fmt.Errorf("backend.timeout must not be negative, got %v", b.Timeout)
	}
	return nil
}

// ValidateUI checks the page size.
func ValidateUI(ui UIConfig) error {
	if ui.PageSize < 1 || ui.PageSize > 500 {
		return fmt.Errorf("ui.page_size must be between 1 and 500, got %d", ui.PageSize)
	}
	switch ui.MarkdownStyle {
	case "", "dark", "light":
	default:
		return fmt.Errorf("ui.markdown_style must be \"dark\" or \"light\", got %q", ui.MarkdownStyle)
	}
	return nil
}

// ValidateExport checks the default export format.
func ValidateExport(e ExportConfig) error {
	switch e.Format {
	case "", "csv", "json", "yaml":
		return nil
	default:
		return fmt.Errorf("export.format must be \"csv\", \"json\", or \"yaml\", got %q", e.Format)
	}
}

// ValidateScreens checks per-screen overrides.
func ValidateScreens(screens map[string]ScreenConfig) error {
	for name, s := range screens {
		if s.PageSize < 0 {
			return fmt.Errorf("screens.%s.page_size must not be negative", name)
		}
		if s.Debounce < 0 {
			return fmt.Errorf("screens.%s.debounce must not be negative", name)
		}
		if parts := strings.Fields(s.Sort); len(parts) > 2 {
			return fmt.Errorf("screens.%s.sort must be \"<field>\" or \"<field> desc\", got %q", name, s.Sort)
		}
	}
	return nil
}

// ValidateTracing checks tracing configuration for errors.
// Returns nil if the configuration is valid (empty values use defaults).
func ValidateTracing(tracing TracingConfig) error {
	if tracing.SampleRate < 0.0 || tracing.SampleRate > 1.0 {
		return fmt.Errorf("tracing.sample_rate must be between 0.0 and 1.0, got %v", tracing.SampleRate)
	}

	if tracing.Exporter != "" {
		switch tracing.Exporter {
		case "none", "file", "stdout", "otlp":
		default:
			return fmt.Errorf("tracing.exporter must be \"none\", \"file\", \"stdout\", or \"otlp\", got %q", tracing.Exporter)
		}
	}

	if tracing.Enabled && tracing.Exporter == "otlp" && tracing.OTLPEndpoint == "" {
		return fmt.Errorf("tracing.otlp_endpoint is required when exporter is \"otlp\"")
	}

	return nil
}

// WriteDefaultConfig creates a config file at the given path with default
// settings and comments. Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
