package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lanerun/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the runner configuration after the search order and the
--difficulty preset have been applied, as YAML.

Search order:
  --config <path>
  ~/.lanerun/configs/runner.yaml
  ./configs/runner.yaml
  built-in defaults

Examples:
  lanerun config
  lanerun config --difficulty hard > ~/.lanerun/configs/runner.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	preset, err := config.ParseDifficultyPreset(flagDifficulty)
	if err != nil {
		return err
	}
	cfg, source, err := config.LoadRunner(flagConfig)
	if err != nil {
		return err
	}
	config.ApplyPreset(&cfg, preset)

	data, err := cfg.Marshal()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# source: %s\n", source)
	_, err = out.Write(data)
	return err
}
