package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/zjrosen/restodesk/internal/devserver"
	"github.com/zjrosen/restodesk/internal/log"
	"github.com/zjrosen/restodesk/internal/tracing"
)

var serveOpts struct {
	addr string
	db   string
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the development backend",
	Long: `Run a local backend implementing the master REST contract, backed by a
sqlite file. Useful for trying the UI without the production backend.

Example:
  restodesk serve                         # listen on server.addr
  restodesk serve --addr :3001 --db /tmp/dev.db`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveOpts.addr, "addr", "", "address to listen on (overrides config)")
	serveCmd.Flags().StringVar(&serveOpts.db, "db", "", "sqlite database path (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	level := log.LevelInfo
	if debugEnabled() {
		level = log.LevelDebug
	}
	log.InitWriter(os.Stderr, level)
	defer log.Reset()

	sc := cfg.Server
	if serveOpts.addr != "" {
		sc.Addr = serveOpts.addr
	}
	if serveOpts.db != "" {
		sc.DBPath = serveOpts.db
	}

	store, err := devserver.OpenStore(sc.DBPath)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()
	if sc.Seed {
		if err := devserver.Seed(cmd.Context(), store); err != nil {
			return err
		}
	}

	provider, err := tracing.NewProvider(cfg.Tracing, "restodesk-devserver")
	if err != nil {
		return fmt.Errorf("initializing tracing: %w", err)
	}
	srv := devserver.New(sc, store, devserver.WithTracerProvider(provider.TracerProvider()))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Listen()
	}()

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "restodesk dev backend listening on %s (db %s)\n", sc.Addr, sc.DBPath)
	_, _ = fmt.Fprintln(out, "Press Ctrl+C to stop")

	select {
	case sig := <-sigCh:
		_, _ = fmt.Fprintf(out, "\nReceived %s, shutting down...\n", sig)
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	if err := srv.Shutdown(); err != nil {
		log.ErrorErr(log.CatServer, "shutdown failed", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return provider.Shutdown(ctx)
}
