// Package drive implements the Neon Night Drive simulation: a player car
// steering across a lane-based road while obstacle cars stream down it.
//
// The package is pure logic. It owns no timers, no input devices and no
// drawing surface; a driver calls Update once per tick and hands the State to
// a renderer.
package drive

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/neondrive/internal/config"
	"github.com/vovakirdan/neondrive/internal/core"
)

// ErrDegenerateGeometry is returned when the viewport cannot hold a playable road.
var ErrDegenerateGeometry = errors.New("drive: degenerate geometry")

// RoadGeometry is the road's placement inside the viewport. Immutable per run.
type RoadGeometry struct {
	X, Y          float64
	Width, Height float64
	Lanes         int
}

// LaneWidth returns the width of a single lane.
func (r RoadGeometry) LaneWidth() float64 {
	return r.Width / float64(r.Lanes)
}

// Bottom returns the y-coordinate of the road's bottom edge.
func (r RoadGeometry) Bottom() float64 {
	return r.Y + r.Height
}

// State is everything one run needs. It is created by NewState, mutated only
// by Update, and replaced (never reset in place) when a new run starts.
type State struct {
	Ticks         int
	Score         float64
	Speed         float64
	SpeedCap      float64
	Road          RoadGeometry
	Player        Vehicle
	Obstacles     []Vehicle
	SpawnCooldown int
	RNGSeed       int64
	Terminated    bool

	// Cosmetic scroll accumulators, read only by renderers.
	BackgroundOffset float64
	LaneMarkerOffset float64

	cfg     config.DriveConfig
	palette []core.Color
}

// Layout derives the road and the player's starting car from a viewport.
func Layout(vp core.Viewport, cfg config.DriveConfig) (RoadGeometry, Vehicle, error) {
	if vp.W <= 0 || vp.H <= 0 {
		return RoadGeometry{}, Vehicle{}, fmt.Errorf("%w: viewport %gx%g", ErrDegenerateGeometry, vp.W, vp.H)
	}
	if cfg.Road.Lanes < 1 {
		return RoadGeometry{}, Vehicle{}, fmt.Errorf("%w: %d lanes", ErrDegenerateGeometry, cfg.Road.Lanes)
	}

	roadW := core.ClampF(vp.W*cfg.Road.WidthRatio, cfg.Road.MinWidth, cfg.Road.MaxWidth)
	roadW = min(roadW, vp.W)

	road := RoadGeometry{
		X:      (vp.W - roadW) / 2,
		Y:      0,
		Width:  roadW,
		Height: vp.H,
		Lanes:  cfg.Road.Lanes,
	}

	w := max(cfg.Player.MinWidth, roadW*cfg.Player.WidthRatio)
	h := max(cfg.Player.MinHeight, roadW*cfg.Player.HeightRatio)

	if roadW-2*cfg.Road.Margin < w {
		return RoadGeometry{}, Vehicle{}, fmt.Errorf("%w: road %g too narrow for a %g wide car", ErrDegenerateGeometry, roadW, w)
	}
	y := vp.H - h - cfg.Player.BottomOffset
	if y < 0 {
		return RoadGeometry{}, Vehicle{}, fmt.Errorf("%w: viewport height %g too short for a %g tall car", ErrDegenerateGeometry, vp.H, h)
	}

	// The car's left edge starts at the viewport's midline, kept on the road
	player := Vehicle{
		X:      core.ClampF(vp.W/2, road.X+cfg.Road.Margin, road.X+roadW-cfg.Road.Margin-w),
		Y:      y,
		Width:  w,
		Height: h,
		Color:  core.Color(cfg.Player.Color),
	}
	return road, player, nil
}

// NewState builds a fresh run for the viewport.
// It fails with ErrDegenerateGeometry rather than produce invalid bounds.
func NewState(cfg config.DriveConfig, vp core.Viewport, seed int64) (*State, error) {
	road, player, err := Layout(vp, cfg)
	if err != nil {
		return nil, err
	}

	palette := make([]core.Color, len(cfg.Palette))
	for i, c := range cfg.Palette {
		palette[i] = core.Color(c)
	}
	if len(palette) == 0 {
		palette = []core.Color{core.ColorAlert}
	}

	return &State{
		Speed:         cfg.World.BaseSpeed,
		SpeedCap:      cfg.World.SpeedCap,
		Road:          road,
		Player:        player,
		Obstacles:     make([]Vehicle, 0, 16),
		SpawnCooldown: cfg.Spawn.InitialCooldown,
		RNGSeed:       seed,
		cfg:           cfg,
		palette:       palette,
	}, nil
}

// Config returns the tunables this run was built with.
func (s *State) Config() config.DriveConfig {
	return s.cfg
}

// MinX is the leftmost allowed player x.
func (s *State) MinX() float64 {
	return s.Road.X + s.cfg.Road.Margin
}

// MaxX is the rightmost allowed player x.
func (s *State) MaxX() float64 {
	return s.Road.X + s.Road.Width - s.cfg.Road.Margin - s.Player.Width
}

// rand draws the next value from the run's stream.
func (s *State) rand() float64 {
	v, next := core.Next(s.RNGSeed)
	s.RNGSeed = next
	return v
}
