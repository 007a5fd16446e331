package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rojanmagar2001/siteicons/internal/app"
	"github.com/rojanmagar2001/siteicons/internal/config"
	"github.com/rojanmagar2001/siteicons/internal/logger"
)

type flags struct {
	configFile  string
	userAgent   string
	timeout     time.Duration
	concurrency int
	json        bool
	logLevel    string
	metricsFile string
}

func newRootCommand() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "siteicons [flags] <url>",
		Short: "List the icons a web page advertises, with their sizes",
		Long: `siteicons fetches a page, collects favicon, apple-touch-icon,
msapplication tile and og:image references, and probes each one to
report its image format and pixel dimensions.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}

			log, err := logger.New(cfg.Logging)
			if err != nil {
				return fmt.Errorf("create logger: %w", err)
			}
			defer func() { _ = log.Sync() }()

			opts := app.Options{
				URL:         args[0],
				JSON:        f.json,
				MetricsFile: f.metricsFile,
			}
			return app.Run(cmd.Context(), cfg, opts, log, cmd.OutOrStdout())
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.configFile, "config", "", "path to a YAML config file")
	fl.StringVar(&f.userAgent, "user-agent", config.DefaultUserAgent, "User-Agent header sent with every request")
	fl.DurationVar(&f.timeout, "timeout", config.DefaultTimeout, "timeout for each HTTP request")
	fl.IntVar(&f.concurrency, "concurrency", config.DefaultConcurrency, "maximum number of image probes in flight")
	fl.BoolVar(&f.json, "json", false, "print results as JSON")
	fl.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")
	fl.StringVar(&f.metricsFile, "metrics-file", "", "write Prometheus metrics to this file after the run")

	return cmd
}

// loadConfig layers explicitly set flags over file and environment settings.
func loadConfig(cmd *cobra.Command, f flags) (*config.Config, error) {
	cfg, err := config.Load(f.configFile)
	if err != nil {
		return nil, err
	}

	fl := cmd.Flags()
	if fl.Changed("user-agent") {
		cfg.UserAgent = f.userAgent
	}
	if fl.Changed("timeout") {
		cfg.Timeout = f.timeout
	}
	if fl.Changed("concurrency") {
		cfg.Concurrency = f.concurrency
	}
	if fl.Changed("log-level") {
		cfg.Logging.Level = f.logLevel
	}
	cfg.SetDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}
