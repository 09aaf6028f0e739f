package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jeanpiere159/Game-Flappy-Bird/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would start with, after applying
--config and --difficulty, as YAML. The output is a valid config file.

Examples:
  flappy config
  flappy config --difficulty hard > ~/.flappy/config.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), string(data))
	return err
}
