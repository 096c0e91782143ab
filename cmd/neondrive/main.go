// neondrive is an endless neon arcade driving game for the terminal.
//
// Usage:
//
//	neondrive play           - Play in the terminal
//	neondrive sim            - Run a scripted game without a terminal
//	neondrive config         - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Custom drive.yaml
//	--difficulty <name>   - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/neondrive/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "neondrive",
	Short: "Neon Night Drive - dodge traffic on an endless neon highway",
	Long: `Neon Night Drive is an endless arcade driving game for the terminal.
Steer between lanes, dodge the oncoming cars and survive as long as you can:
the road speeds up and traffic thickens the longer you last.

Available commands:
  play     - Play in the terminal
  sim      - Run a deterministic headless game
  config   - Print the effective configuration

Examples:
  neondrive play
  neondrive play --difficulty hard
  neondrive sim --seed 42 --steer "L:30,N:10,R:30"
  neondrive config > drive.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom drive config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the drive config and applies the difficulty preset.
func loadConfig() (config.DriveConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.DriveConfig{}, err
	}
	cfg, err := config.LoadDrive(flagConfig)
	if err != nil {
		return config.DriveConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}

// newLogger creates a logger writing to w at the --log-level level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, nil
}
