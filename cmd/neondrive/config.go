package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neondrive/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the drive configuration as YAML after the config search and the
difficulty preset have been applied.

Config search order:
  1. --config <path>
  2. ~/.neondrive/configs/drive.yaml
  3. ./configs/drive.yaml
  4. built-in defaults

Examples:
  neondrive config
  neondrive config --difficulty hard
  neondrive config > ~/.neondrive/configs/drive.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}
