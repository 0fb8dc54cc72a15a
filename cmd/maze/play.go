package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/maze"
	"github.com/vovakirdan/tui-maze/internal/platform/tui"
)

var (
	flagDifficulty string
	flagHold       time.Duration
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the maze",
	Long: `Start a maze session on the start screen.

Controls:
  Arrows/WASD  - Move (up beats down beats left beats right)
  Enter/Space  - Start, or return to the start screen after winning
  R            - Retry the level after being caught
  Ctrl+S       - Save a plain-text screenshot
  Q/Esc/Ctrl+C - Quit

Difficulty options:
  easy   - Slower monster that changes direction less often
  normal - Values from the config
  hard   - Faster, more erratic monster

Terminals only report key presses, so a direction stays held for --hold
after its last press; key repeat keeps it held.

Examples:
  maze play
  maze play --difficulty easy
  maze play --seed 7 --log-file /tmp/maze.log --debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard (default: from config)")
	playCmd.Flags().DurationVar(&flagHold, "hold", tui.DefaultHold, "How long a direction stays held after a key press")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}

	logger, closer, err := newLogger(flagLogFile, flagDebug)
	if err != nil {
		return err
	}
	defer closer.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	err = tui.Run(tui.Options{
		Config:  cfg,
		Levels:  maze.NewLevels(config.LevelFS(cfg), cfg.Levels),
		Runtime: core.RuntimeConfig{TickRate: flagFPS, Seed: flagSeed},
		Hold:    flagHold,
		Cols:    width,
		Rows:    height,
		Logger:  logger,
	})
	if err != nil {
		return fmt.Errorf("maze: %w", err)
	}
	return nil
}
