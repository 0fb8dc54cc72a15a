package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration play would use, after the config search
(--config, ~/.maze/configs/maze.yaml, ./configs/maze.yaml, built-in defaults)
as YAML. The difficulty preset is printed by name, not applied, so the
output can be saved as a config file.

Examples:
  maze config
  maze config --defaults > ~/.maze/configs/maze.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default file instead")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	if flagDefaults {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
