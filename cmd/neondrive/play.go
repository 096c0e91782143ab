package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neondrive/internal/core"
	"github.com/vovakirdan/neondrive/internal/platform/tui"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal.

Controls:
  Left/A, Right/D  - Steer (click or drag on either half of the screen works too)
  Enter/Space      - Start
  R                - Back to the start screen (after a crash)
  Tab              - Session results (between runs)
  ?                - More keys
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Lower top speed, sparser traffic
  normal - The configured values
  hard   - Faster from the start, denser traffic
  fixed  - No speed-up and no traffic build-up

The terminal belongs to the game while it runs, so logs are only written
when --log-file is given.

Examples:
  neondrive play
  neondrive play --difficulty easy
  neondrive play --seed 42 --log-file drive.log --log-level debug
  neondrive play --config ./my-drive.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
}

func runPlay(_ *cobra.Command, _ []string) error {
	driveCfg, err := loadConfig()
	if err != nil {
		return err
	}

	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return fmt.Errorf("failed to open log file: %w", openErr)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut, "neondrive")
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Drive:  driveCfg,
		Logger: logger,
	}

	logger.Info("starting", "cols", width, "rows", height, "fps", flagFPS, "difficulty", flagDifficulty)
	if err := tui.Run(opts); err != nil {
		logger.Error("program failed", "error", err)
		return err
	}
	return nil
}
