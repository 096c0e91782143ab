// Package engine owns the lifecycle of a run: it creates the simulation
// state, advances it once per frame and tells its collaborators about score
// changes, the end of the run and when to redraw.
package engine

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/neondrive/internal/config"
	"github.com/vovakirdan/neondrive/internal/core"
	"github.com/vovakirdan/neondrive/internal/games/drive"
)

// Lifecycle errors.
var (
	ErrNotIdle    = errors.New("engine: driver is not idle")
	ErrNotOver    = errors.New("engine: run is not over")
	ErrNotRunning = errors.New("engine: no run in progress")
	ErrStopped    = errors.New("engine: driver stopped")
	ErrNoFrames   = errors.New("engine: frame source closed")
)

// Phase is the driver's lifecycle phase.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// Steerer supplies the aggregated steering value read once per frame.
// core.Steering implements it.
type Steerer interface {
	Value() float64
}

// Hooks are the driver's outbound notifications. Nil hooks are skipped.
type Hooks struct {
	OnScore    func(score float64)
	OnGameOver func(score float64)
	Render     func(s *drive.State)
}

// Driver runs one game at a time through Idle -> Running -> Over -> Idle.
// It is not safe for concurrent use; hosts call it from a single goroutine.
type Driver struct {
	cfg    config.DriveConfig
	input  Steerer
	hooks  Hooks
	logger *log.Logger
	now    func() time.Time

	phase      Phase
	state      *drive.State
	runID      uuid.UUID
	seed       int64
	generation uint64
	stopped    bool
	started    time.Time
}

// Option configures a Driver.
type Option func(*Driver)

// WithLogger sets the logger used for lifecycle events.
func WithLogger(l *log.Logger) Option {
	return func(d *Driver) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithClock replaces time.Now, used for time-derived seeds and durations.
func WithClock(now func() time.Time) Option {
	return func(d *Driver) {
		if now != nil {
			d.now = now
		}
	}
}

// NewDriver creates an idle driver.
func NewDriver(cfg config.DriveConfig, input Steerer, hooks Hooks, opts ...Option) *Driver {
	if input == nil {
		input = core.NewSteering()
	}
	d := &Driver{
		cfg:    cfg,
		input:  input,
		hooks:  hooks,
		logger: log.New(io.Discard),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Start begins a run on the given viewport. A seed whose low 32 bits are zero
// would pin the PRNG at zero, so it is replaced with a time-derived one.
//
// On a degenerate viewport the driver stays Idle and the geometry error is
// returned.
func (d *Driver) Start(vp core.Viewport, seed int64) error {
	if d.phase != PhaseIdle {
		return fmt.Errorf("%w: phase %s", ErrNotIdle, d.phase)
	}

	seed = d.usableSeed(seed)
	state, err := drive.NewState(d.cfg, vp, seed)
	if err != nil {
		d.logger.Warn("cannot start run", "viewport", fmt.Sprintf("%gx%g", vp.W, vp.H), "error", err)
		return fmt.Errorf("engine: start: %w", err)
	}

	d.state = state
	d.seed = seed
	d.runID = uuid.New()
	d.generation++
	d.stopped = false
	d.started = d.now()
	d.phase = PhaseRunning

	d.logger.Info("run started",
		"run", d.runID,
		"seed", seed,
		"viewport", fmt.Sprintf("%gx%g", vp.W, vp.H),
		"generation", d.generation)
	return nil
}

func (d *Driver) usableSeed(seed int64) int64 {
	if uint32(seed) != 0 {
		return seed
	}
	seed = d.now().UnixNano()
	if uint32(seed) == 0 {
		seed++
	}
	return seed
}

// Frame runs one tick: Update, OnScore, OnGameOver on the final tick, then
// Render. It reports whether the host should schedule another frame and does
// nothing outside the Running phase or after Stop.
func (d *Driver) Frame() bool {
	if d.phase != PhaseRunning || d.stopped {
		return false
	}

	score, over := d.state.Update(d.input.Value())

	if d.hooks.OnScore != nil {
		d.hooks.OnScore(score)
	}

	if over {
		d.phase = PhaseOver
		d.logger.Info("run over",
			"run", d.runID,
			"score", int(score),
			"ticks", d.state.Ticks,
			"duration", d.now().Sub(d.started).Round(time.Millisecond))
		if d.hooks.OnGameOver != nil {
			d.hooks.OnGameOver(score)
		}
	}

	if d.hooks.Render != nil {
		d.hooks.Render(d.state)
	}

	return !over
}

// Restart discards a finished or stopped run and returns the driver to Idle.
func (d *Driver) Restart() error {
	if d.phase != PhaseOver && !(d.phase == PhaseRunning && d.stopped) {
		return fmt.Errorf("%w: phase %s", ErrNotOver, d.phase)
	}
	d.state = nil
	d.phase = PhaseIdle
	d.logger.Debug("driver idle", "previous_run", d.runID)
	return nil
}

// Stop cancels further frames. A stopped run can be discarded with Restart
// and a new one begun with Start. Calling it again is a no-op.
func (d *Driver) Stop() {
	if d.stopped {
		return
	}
	d.stopped = true
	d.logger.Debug("driver stopped", "run", d.runID, "phase", d.phase)
}

// Phase returns the current lifecycle phase.
func (d *Driver) Phase() Phase {
	return d.phase
}

// State returns the current run, or nil when Idle. Callers must treat it as
// read-only.
func (d *Driver) State() *drive.State {
	return d.state
}

// Score returns the current run's score, or zero when Idle.
func (d *Driver) Score() float64 {
	if d.state == nil {
		return 0
	}
	return d.state.Score
}

// Generation identifies the current run. Hosts stamp it on scheduled ticks
// and drop ticks from older runs.
func (d *Driver) Generation() uint64 {
	return d.generation
}

// RunID returns the identifier logged for the current run.
func (d *Driver) RunID() string {
	if d.runID == uuid.Nil {
		return ""
	}
	return d.runID.String()
}

// Seed returns the seed the current run was started with.
func (d *Driver) Seed() int64 {
	return d.seed
}

// Config returns the driver's tunables.
func (d *Driver) Config() config.DriveConfig {
	return d.cfg
}

// Stopped reports whether Stop was called since the last Start.
func (d *Driver) Stopped() bool {
	return d.stopped
}
