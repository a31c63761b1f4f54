package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbot/internal/config"
	"github.com/vovakirdan/brickbot/internal/game"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would start with, as YAML.

The file is resolved in this order:
  1. --config <path>
  2. ~/.brickbot/configs/brickbot.yaml
  3. ./configs/brickbot.yaml
  4. Built-in defaults

Examples:
  brickbot config > ~/.brickbot/configs/brickbot.yaml
  brickbot config --difficulty hard
  brickbot config --defaults`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in defaults, ignoring config files")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if flagConfigDefaults {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot encode config: %w", err)
	}
	if _, err := out.Write(data); err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "# layouts: %v\n", game.Layouts())
	return err
}
