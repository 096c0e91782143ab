package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neondrive/internal/platform/headless"
)

var (
	flagTicks    int
	flagSteer    string
	flagWidth    int
	flagHeight   int
	flagRealtime bool
	flagShow     bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a deterministic headless game",
	Long: `Play one game without a terminal UI and print the result.

Steering follows a looping pattern of VALUE[:TICKS] segments, where VALUE is
L (left), R (right), N (none) or a number. The same seed, pattern and size
always produce the same run.

Examples:
  neondrive sim --seed 42
  neondrive sim --seed 42 --steer "L:30,N:10,R:30" --ticks 3600
  neondrive sim --seed 7 --width 100 --height 30 --show
  neondrive sim --realtime --fps 30 --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 0, "Stop after this many ticks (0 = until the crash)")
	simCmd.Flags().StringVar(&flagSteer, "steer", "", "Steering pattern, e.g. L:30,N:10,R:30")
	simCmd.Flags().IntVar(&flagWidth, "width", 80, "Screen width in cells")
	simCmd.Flags().IntVar(&flagHeight, "height", 24, "Screen height in cells")
	simCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace frames at --fps instead of running flat out")
	simCmd.Flags().BoolVar(&flagShow, "show", false, "Print the last frame")
}

func runSim(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr, "sim")
	if err != nil {
		return err
	}

	driveCfg, err := loadConfig()
	if err != nil {
		return err
	}

	pattern, err := headless.ParsePattern(flagSteer)
	if err != nil {
		return err
	}

	opts := headless.Options{
		Drive:   driveCfg,
		Cols:    flagWidth,
		Rows:    flagHeight,
		Seed:    flagSeed,
		Ticks:   flagTicks,
		Steer:   pattern,
		Capture: flagShow,
		Logger:  logger,
	}
	if flagRealtime {
		opts.FPS = flagFPS
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	report, err := headless.Run(ctx, opts)
	if err != nil {
		logger.Error("simulation failed", "error", err)
		return err
	}

	if flagShow {
		fmt.Println(report.Snapshot)
		fmt.Println()
	}
	fmt.Printf("run:     %s\n", report.RunID)
	fmt.Printf("seed:    %d\n", report.Seed)
	fmt.Printf("ticks:   %d\n", report.Ticks)
	fmt.Printf("score:   %d\n", int(report.Score))
	fmt.Printf("crashed: %t\n", report.Crashed)
	return nil
}
