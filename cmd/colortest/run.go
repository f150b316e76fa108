package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/colortest/internal/config"
	"github.com/vovakirdan/colortest/internal/core"
	"github.com/vovakirdan/colortest/internal/platform/tui"
)

var errNoTerminal = errors.New("colortest needs an interactive terminal")

func runBoard(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNoTerminal
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, &cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	// Create runtime config
	rt := core.DefaultConfig()
	rt.TickRate = cfg.TickRate
	rt.Seed = cfg.Seed

	if runErr := tui.Run(cfg, rt, logger); runErr != nil {
		logger.Error("board stopped", "error", runErr)
		return fmt.Errorf("error running board: %w", runErr)
	}
	return nil
}

// applyFlags layers explicitly set flags over the loaded config.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()

	if flags.Changed("fps") {
		cfg.TickRate = flagFPS
	}
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flags.Changed("reveal") {
		cfg.Debug.RevealMix = flagReveal
	}
	if flags.Changed("log-file") {
		cfg.Log.File = flagLogFile
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}

	preset, err := config.ParsePacePreset(flagPace)
	if err != nil {
		return err
	}
	config.ApplyPacePreset(cfg, preset)
	return nil
}

// newLogger opens the log destination. The TUI owns stdout and stderr,
// so logs only go to a file; without one they are discarded.
func newLogger(lc config.LogConfig) (*log.Logger, func(), error) {
	level := log.InfoLevel
	if lc.Level != "" {
		parsed, err := log.ParseLevel(lc.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid log level %q: %w", lc.Level, err)
		}
		level = parsed
	}
	var w io.Writer = io.Discard
	closeFn := func() {}

	if lc.File != "" {
		path, expErr := config.ExpandHome(lc.File)
		if expErr != nil {
			return nil, nil, expErr
		}
		if mkErr := os.MkdirAll(filepath.Dir(path), 0o755); mkErr != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", mkErr)
		}
		f, openErr := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", openErr)
		}
		w = f
		//nolint:errcheck // Best-effort close on exit
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "colortest",
		Level:           level,
	})
	return logger, closeFn, nil
}
