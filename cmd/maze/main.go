// maze is a terminal maze game: reach the red goal on every level while a
// wandering monster roams the board.
//
// Usage:
//
//	maze play               - Play through the configured levels
//	maze levels             - Validate and summarize the configured levels
//	maze config             - Print the effective configuration as YAML
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: from config, 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--config <path>     - Use a custom config YAML
//	--log-file <path>   - Append logs to a file (default: discarded)
//	--debug             - Log at debug level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "maze",
	Short: "Maze - escape the monster in your terminal",
	Long: `Maze is a terminal game: walk through each level to the red goal
while a monster wanders the board. Touch it and you retry the level.

Available commands:
  play     - Play through the configured levels
  levels   - Validate and summarize the configured levels
  config   - Print the effective configuration

Examples:
  maze play
  maze play --difficulty hard --seed 42
  maze levels --config ./my-maze.yaml
  maze config > ~/.maze/configs/maze.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = tick_rate from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(configCmd)
}
