package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lucrnz/qakit/internal/cleanup"
	"github.com/lucrnz/qakit/internal/config"
	"github.com/lucrnz/qakit/internal/logging"
	"github.com/lucrnz/qakit/internal/version"
	"github.com/lucrnz/qakit/pkg/fsutil"
)

// ErrCheckFailed is returned by boolean checks (exists) whose answer is
// false. main maps it to exit status 1 without printing it.
var ErrCheckFailed = errors.New("check failed")

var (
	configPath string
	logLevel   string
	logFormat  string

	// cfg is loaded by the root PersistentPreRunE before any subcommand runs.
	cfg = &config.Config{}
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "qakit",
		Short: "Static helpers for test-automation scripts",
		Long: `qakit

Small helpers for test-automation scripts: SQL against postgres or sqlite,
date and timestamp formatting, waits with human durations, file and
directory manipulation, and random tokens.
`,
		Version:           version.Print(),
		PersistentPreRunE: setup,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $"+config.EnvPath+" or ./"+config.DefaultFile+")")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default info)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format: text or json (default text)")

	// Silence usage output for runtime errors, but show it for flag errors
	// SilenceErrors is true so we can control error output format in main()
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		_ = cmd.Usage()
		return err
	})

	rootCmd.AddCommand(
		newDurationCmd(),
		newWaitCmd(),
		newNowCmd(),
		newTodayCmd(),
		newRandCmd(),
		newDBCmd(),
		newFSCmd(),
	)
	return rootCmd
}

// ExecuteContext runs the root command with os.Args. Temp files created by
// file writes are registered with tracker.
func ExecuteContext(ctx context.Context, tracker *cleanup.Tracker) error {
	fsutil.SetTracker(tracker)

	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// Show usage for argument count errors (not caught by SetFlagErrorFunc)
		if strings.Contains(err.Error(), "arg(s)") {
			_ = rootCmd.Usage()
		}
		return err
	}
	return nil
}

// setup loads the config file and installs the logger on the command context.
func setup(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	cfg = loaded

	level, format := cfg.Log.Level, cfg.Log.Format
	if cmd.Flags().Changed("log-level") {
		level = logLevel
	}
	if cmd.Flags().Changed("log-format") {
		format = logFormat
	}

	logger, err := logging.New(logging.Options{Level: level, Format: format, Output: cmd.ErrOrStderr()})
	if err != nil {
		return err
	}
	cleanup.SetLogger(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.WithContext(ctx, logger))

	if cfg.Path != "" {
		logger.Debug("config_loaded", "path", cfg.Path, "profiles", len(cfg.Databases))
	}
	return nil
}
