package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-maze/internal/config"
)

// loadConfig loads the configuration and applies a difficulty preset.
// An empty preset uses the one named in the config.
func loadConfig(path, preset string) (config.MazeConfig, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	if preset == "" {
		preset = string(cfg.Difficulty)
	}
	p, err := config.ParsePreset(preset)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, p)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger returns a logger writing to path, or a discarding logger when
// path is empty. The TUI owns the terminal, so logs never go to stderr.
// The returned closer must be called when done.
func newLogger(path string, debug bool) (*log.Logger, io.Closer, error) {
	var (
		w      io.Writer = io.Discard
		closer io.Closer = io.NopCloser(nil)
	)
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "maze",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}
