package cmd

import (
	"fmt"

	"github.com/harrison/reflow/internal/config"
	"github.com/harrison/reflow/internal/display"
	"github.com/harrison/reflow/internal/driver"
	"github.com/harrison/reflow/internal/logger"
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for reflow
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reflow <width> [path]",
		Short: "Re-flow text into lines of a fixed width",
		Long: `Reflow joins whitespace-separated words into lines no longer than
<width> bytes. Runs of two or more newlines are kept as a single blank line;
all other whitespace collapses to one space.

With no path, standard input is written to standard output. A file is written
to standard output. For a directory, every entry that is not hidden and does
not start with "wrap." is written to a sibling file named wrap.<name>.

A word longer than <width> is placed on a line of its own and reported as an
error once the whole input has been written.

Configuration is loaded from .reflow/config.yaml if present.
CLI flags override configuration file settings.

Examples:
  # Standard input to standard output
  fmt-source | reflow 72

  # One file to standard output
  reflow 40 notes.txt

  # Every file in a directory, written next to its source
  reflow 80 docs/

  # Only markdown files, with debug logging
  reflow 80 docs/ --ext .md --log-level debug`,
		Version: Version,
		Args:    validateArgs,
		RunE:    runRoot,
		// Diagnostics are logged before an error is returned
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().String("config", "", "Path to config file (default: .reflow/config.yaml)")
	cmd.Flags().String("log-level", "", "Log level: trace, debug, info, warn, error (overrides config)")
	cmd.Flags().Int("chunk-size", 0, "Bytes requested per read (overrides config)")
	cmd.Flags().Bool("no-lock", false, "Do not lock a directory while re-flowing it")
	cmd.Flags().Bool("no-summary", false, "Do not log a summary after directory mode")
	cmd.Flags().StringSlice("ext", nil, "Only re-flow directory entries with these extensions (e.g. .txt,.md)")
	cmd.Flags().Bool("no-color", false, "Disable colored diagnostics")

	return cmd
}

// validateArgs checks the positional arguments before any flag is applied.
func validateArgs(cmd *cobra.Command, args []string) error {
	switch {
	case len(args) == 0:
		return &ArgumentError{Message: "missing width argument"}
	case len(args) > 2:
		return &ArgumentError{Message: fmt.Sprintf("expected at most 2 arguments, got %d", len(args))}
	}
	_, err := ParseWidth(args[0])
	return err
}

// runRoot implements the root command logic
func runRoot(cmd *cobra.Command, args []string) error {
	width, err := ParseWidth(args[0])
	if err != nil {
		return err
	}
	target := ""
	if len(args) == 2 {
		target = args[1]
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		log.SetColor(false)
	}

	d, err := driver.New(driver.Options{
		Width:      width,
		ChunkSize:  cfg.ChunkSize,
		FileMode:   cfg.FileMode,
		Lock:       cfg.Lock,
		Extensions: cfg.Extensions,
	}, log, cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		return err
	}

	summary := d.Run(target)

	if cfg.Summary && summary.Dir {
		log.LogSummary(summary)
	}
	if w, ok := display.OverlongWarning(summary, width); ok {
		w.Display(cmd.ErrOrStderr(), log.ColorEnabled())
	}

	if summary.Failed() {
		return &ExitError{Code: summary.ExitCode(), Err: summary.Err()}
	}
	return nil
}

// loadConfig reads the config file and applies any flags the user set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	var cfg *config.Config
	var err error

	if configPath != "" {
		// Load from explicit config path
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
	} else {
		// Load from default .reflow/config.yaml
		cfg, err = config.LoadConfigFromDir(".")
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	var logLevelPtr *string
	var chunkSizePtr *int
	var lockPtr, summaryPtr *bool

	if cmd.Flags().Changed("log-level") {
		logLevel, _ := cmd.Flags().GetString("log-level")
		logLevelPtr = &logLevel
	}
	if cmd.Flags().Changed("chunk-size") {
		chunkSize, _ := cmd.Flags().GetInt("chunk-size")
		chunkSizePtr = &chunkSize
	}
	if cmd.Flags().Changed("no-lock") {
		noLock, _ := cmd.Flags().GetBool("no-lock")
		lock := !noLock
		lockPtr = &lock
	}
	if cmd.Flags().Changed("no-summary") {
		noSummary, _ := cmd.Flags().GetBool("no-summary")
		summary := !noSummary
		summaryPtr = &summary
	}
	extensions, _ := cmd.Flags().GetStringSlice("ext")

	cfg.MergeWithFlags(logLevelPtr, chunkSizePtr, lockPtr, summaryPtr, extensions)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
