package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/zjrosen/restodesk/internal/api"
	"github.com/zjrosen/restodesk/internal/app"
	"github.com/zjrosen/restodesk/internal/config"
	"github.com/zjrosen/restodesk/internal/log"
	"github.com/zjrosen/restodesk/internal/screens"
	"github.com/zjrosen/restodesk/internal/tracing"
	"github.com/zjrosen/restodesk/internal/ui/styles"
)

func init() {
	// Query the terminal background before any program starts so the OSC 11
	// reply does not race the Bubble Tea input loop.
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

// localConfigPath is checked before the user config directory.
const localConfigPath = ".restodesk/config.yaml"

var (
	version   = "dev"
	cfgFile   string
	debugFlag bool
	noWatch   bool

	v   = config.NewViper()
	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "restodesk",
	Short: "A terminal back office for restaurant master data",
	Long: `A terminal user interface for managing restaurant master records:
ledgers, account natures and types, customers, kitchen categories, units,
tables, table departments and tax configuration.`,
	Version:           version,
	PersistentPreRunE: loadConfig,
	RunE:              runApp,
	SilenceUsage:      true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: "+localConfigPath+" or ~/.config/restodesk/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false,
		"write a debug log and enable the log overlay (ctrl+x)")
	rootCmd.PersistentFlags().String("base-url", "", "backend base URL")
	rootCmd.PersistentFlags().String("hotel", "", "hotel id for hotel scoped screens")
	rootCmd.PersistentFlags().String("company", "", "company id for ledger screens")
	rootCmd.PersistentFlags().String("year", "", "financial year id for ledger screens")
	rootCmd.Flags().BoolVar(&noWatch, "no-watch", false, "do not reload the config file when it changes")

	_ = v.BindPFlag("backend.base_url", rootCmd.PersistentFlags().Lookup("base-url"))
	_ = v.BindPFlag("session.hotel_id", rootCmd.PersistentFlags().Lookup("hotel"))
	_ = v.BindPFlag("session.company_id", rootCmd.PersistentFlags().Lookup("company"))
	_ = v.BindPFlag("session.year_id", rootCmd.PersistentFlags().Lookup("year"))
}

// resolveConfigPath applies the lookup order: --config, then
// .restodesk/config.yaml, then ~/.config/restodesk/config.yaml. The last
// candidate is returned even when it does not exist yet.
func resolveConfigPath(flag string) string {
	if flag != "" {
		return flag
	}
	if _, err := os.Stat(localConfigPath); err == nil {
		return localConfigPath
	}
	if dir := config.ConfigDir(); dir != "" {
		return filepath.Join(dir, "config.yaml")
	}
	return localConfigPath
}

func loadConfig(_ *cobra.Command, _ []string) error {
	path := resolveConfigPath(cfgFile)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) && cfgFile == "" {
		if err := config.WriteDefaultConfig(path); err != nil {
			// Continue with defaults when the file cannot be created.
			path = ""
		}
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	loaded, err := config.Decode(v)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	cfg = loaded
	return nil
}

// setupLogging opens the debug log when --debug or RESTODESK_DEBUG is set.
// The returned func is always safe to call.
func setupLogging(prefix string) (func(), error) {
	if !debugEnabled() {
		return func() {}, nil
	}
	path := os.Getenv("RESTODESK_LOG")
	if path == "" {
		path = "debug.log"
	}
	cleanup, err := log.InitWithTeaLog(path, prefix)
	if err != nil {
		return nil, fmt.Errorf("initializing logging: %w", err)
	}
	log.Info(log.CatConfig, "restodesk starting", "debug", true, "logPath", path, "config", v.ConfigFileUsed())
	return cleanup, nil
}

func debugEnabled() bool {
	return debugFlag || os.Getenv("RESTODESK_DEBUG") != ""
}

// newEnv builds the client and tracing shared by every command. The
// returned func flushes pending spans.
func newEnv(ctx context.Context) (screens.Env, func(), error) {
	tracingCfg := cfg.Tracing
	if tracingCfg.Exporter == "file" && tracingCfg.FilePath == "" {
		tracingCfg.FilePath = config.DefaultTracesFilePath()
	}
	provider, err := tracing.NewProvider(tracingCfg, "")
	if err != nil {
		return screens.Env{}, nil, fmt.Errorf("initializing tracing: %w", err)
	}
	shutdown := func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := provider.Shutdown(sctx); err != nil {
			log.Warn(log.CatTrace, "tracing shutdown", "error", err)
		}
	}

	client := api.New(cfg.Backend, api.SessionFromConfig(cfg.Session), api.WithTracer(provider.Tracer()))
	env := screens.Env{Config: cfg, Client: client, Context: ctx, Now: time.Now, Tracer: provider.Tracer()}
	return env, shutdown, nil
}

func runApp(_ *cobra.Command, _ []string) error {
	cleanup, err := setupLogging("restodesk")
	if err != nil {
		return err
	}
	defer cleanup()

	if err := styles.ApplyTheme(styles.ThemeConfig{Preset: cfg.Theme.Preset, Colors: cfg.Theme.Colors}); err != nil {
		return fmt.Errorf("invalid theme: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	env, shutdown, err := newEnv(ctx)
	if err != nil {
		return err
	}
	defer shutdown()

	model := app.New(app.Options{
		Env:        env,
		Registry:   screens.New(),
		ConfigPath: v.ConfigFileUsed(),
		Watch:      !noWatch,
		Debug:      debugEnabled(),
	})
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if fm, ok := final.(app.Model); ok {
		model = fm
	}
	if closeErr := model.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(ver string) {
	version = ver
	rootCmd.Version = ver
}
