package headless

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neondrive/internal/config"
	"github.com/vovakirdan/neondrive/internal/core"
	"github.com/vovakirdan/neondrive/internal/engine"
	"github.com/vovakirdan/neondrive/internal/games/drive"
)

// Options configures a headless run.
type Options struct {
	Drive   config.DriveConfig
	Cols    int   // Screen width in cells
	Rows    int   // Screen height in cells
	Seed    int64 // 0 picks a time-derived seed
	Ticks   int   // Stop after this many ticks; 0 runs until the crash
	FPS     int   // Pace frames in real time; 0 runs as fast as possible
	Steer   *Pattern
	Capture bool // Keep a text snapshot of the last frame
	Logger  *log.Logger
}

// Report is the outcome of a headless run.
type Report struct {
	RunID    string
	Seed     int64
	Ticks    int
	Score    float64
	Crashed  bool
	Snapshot string
}

// Run plays one game to a crash or to the tick limit.
func Run(ctx context.Context, opts Options) (Report, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	steer := opts.Steer
	if steer == nil {
		steer = &Pattern{}
	}

	disp := opts.Drive.Display
	renderer := drive.NewRenderer(disp.UnitsPerColumn, disp.UnitsPerRow)
	var screen *core.Screen
	if opts.Capture {
		screen = core.NewScreen(max(1, opts.Cols), max(1, opts.Rows))
	}

	var d *engine.Driver
	hooks := engine.Hooks{
		Render: func(s *drive.State) {
			if screen != nil {
				screen.Clear()
				renderer.Draw(screen, s)
			}
			if opts.Ticks > 0 && s.Ticks >= opts.Ticks && !s.Terminated {
				d.Stop()
			}
		},
	}
	d = engine.NewDriver(opts.Drive, NewScript(steer), hooks, engine.WithLogger(logger))

	if err := d.Start(renderer.Viewport(opts.Cols, opts.Rows), opts.Seed); err != nil {
		return Report{}, fmt.Errorf("headless: %w", err)
	}
	logger.Debug("steering", "pattern", steer.String(), "cycle", steer.Len())

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var frames <-chan time.Time
	if opts.FPS > 0 {
		frames = engine.Ticker(runCtx, opts.FPS)
	} else {
		n := opts.Ticks
		if n <= 0 {
			n = math.MaxInt
		}
		frames = engine.Burst(runCtx, n)
	}

	err := d.Run(runCtx, frames)
	switch {
	case err == nil, errors.Is(err, engine.ErrStopped), errors.Is(err, engine.ErrNoFrames):
	default:
		return Report{}, fmt.Errorf("headless: %w", err)
	}

	st := d.State()
	if d.Stopped() {
		logger.Debug("tick limit reached", "ticks", st.Ticks)
	}
	report := Report{
		RunID:   d.RunID(),
		Seed:    d.Seed(),
		Ticks:   st.Ticks,
		Score:   d.Score(),
		Crashed: st.Terminated,
	}
	if screen != nil {
		report.Snapshot = screen.String()
	}
	return report, nil
}
