package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"

	"github.com/vango-dev/djed/internal/config"
	"github.com/vango-dev/djed/internal/errors"
	"github.com/vango-dev/djed/pkg/metrics"
	"github.com/vango-dev/djed/pkg/scheduler"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errors.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "djed",
		Short: "Render and preview djed component trees",
		Long: `djed mounts a bundled demo application into an in-memory document,
drives it with tick messages and prints the resulting markup.

Use "render" for one-shot output and "serve" for an HTTP preview
with Prometheus metrics.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to djed.json or djed.yaml (default: look in the working directory)")

	load := func() (*config.Config, error) {
		return loadConfig(configPath)
	}
	rootCmd.AddCommand(
		renderCmd(load),
		serveCmd(load),
		versionCmd(),
	)
	return rootCmd
}

// loadConfig reads path, or the working directory's config when path is
// empty. A missing config in the working directory yields the defaults.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	if !config.Exists(wd) {
		return config.Default(), nil
	}
	return config.LoadFromDir(wd)
}

// newLogger builds the CLI logger from config.
func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.JSONLogs() {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// stack is the scheduler and observability stack shared by the commands.
type stack struct {
	cfg      *config.Config
	logger   *slog.Logger
	registry *prometheus.Registry
	sched    *scheduler.Scheduler
}

func newStack(cfg *config.Config, logOut io.Writer) *stack {
	logger := newLogger(cfg, logOut)
	registry := prometheus.NewRegistry()
	collector := metrics.New(
		metrics.WithNamespace(cfg.Metrics.Namespace),
		metrics.WithRegistry(registry),
	)
	sched := scheduler.New(
		scheduler.WithLogger(logger),
		scheduler.WithMetrics(collector),
		scheduler.WithTracer(otel.Tracer(cfg.Tracing.TracerName)),
	)
	return &stack{cfg: cfg, logger: logger, registry: registry, sched: sched}
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}
