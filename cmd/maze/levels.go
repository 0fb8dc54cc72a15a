package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/maze"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Validate and summarize the configured levels",
	Long: `Load every configured level in play order and print its size,
wall count and goal cell. Fails on the first missing or malformed level.

Examples:
  maze levels
  maze levels --config ./my-maze.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(flagConfig, "")
		if err != nil {
			return err
		}
		return listLevels(cmd.OutOrStdout(), maze.NewLevels(config.LevelFS(cfg), cfg.Levels))
	},
}

func listLevels(w io.Writer, levels *maze.Levels) error {
	fmt.Fprintln(w, "Levels:")
	fmt.Fprintln(w)

	for i := range levels.Count() {
		g, err := levels.Load(i)
		if err != nil {
			return err
		}

		goal := "none"
		if r, ok := g.Goal(); ok {
			goal = fmt.Sprintf("col %d, row %d", r.X/maze.CellSize, r.Y/maze.CellSize)
		}
		fmt.Fprintf(w, "  %d. %-16s %3dx%-3d %4d walls  goal: %s\n",
			i+1, levels.Name(i), g.Cols(), g.Rows(), len(g.Walls()), goal)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Play with: maze play")
	return nil
}
