// Package config provides YAML-based game configuration loading and
// difficulty presets.
package config

// DriveConfig contains all tunables for a run.
type DriveConfig struct {
	Road    RoadConfig    `yaml:"road"`
	Player  PlayerConfig  `yaml:"player"`
	World   WorldConfig   `yaml:"world"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Scroll  ScrollConfig  `yaml:"scroll"`
	Display DisplayConfig `yaml:"display"`
	Palette []string      `yaml:"palette"`
}

// RoadConfig defines how road geometry is derived from the viewport.
type RoadConfig struct {
	WidthRatio float64 `yaml:"width_ratio"` // Fraction of viewport width
	MinWidth   float64 `yaml:"min_width"`
	MaxWidth   float64 `yaml:"max_width"`
	Lanes      int     `yaml:"lanes"`
	Margin     float64 `yaml:"margin"` // Inner gap between road edge and player
}

// PlayerConfig defines the player car and its handling.
type PlayerConfig struct {
	MinWidth     float64 `yaml:"min_width"`
	WidthRatio   float64 `yaml:"width_ratio"` // Fraction of road width
	MinHeight    float64 `yaml:"min_height"`
	HeightRatio  float64 `yaml:"height_ratio"` // Fraction of road width
	BottomOffset float64 `yaml:"bottom_offset"`
	Accel        float64 `yaml:"accel"`
	MaxVX        float64 `yaml:"max_vx"`
	Friction     float64 `yaml:"friction"` // Velocity multiplier per tick
	TrailLength  int     `yaml:"trail_length"`
	Color        string  `yaml:"color"`
}

// WorldConfig defines scroll speed and scoring.
type WorldConfig struct {
	BaseSpeed        float64 `yaml:"base_speed"`
	SpeedCap         float64 `yaml:"speed_cap"`
	AccelCoefficient float64 `yaml:"accel_coefficient"` // Speed gained per tick
	ScoreCoefficient float64 `yaml:"score_coefficient"` // Score per unit of speed per tick
}

// SpawnConfig defines obstacle spawning.
type SpawnConfig struct {
	InitialCooldown  int     `yaml:"initial_cooldown"`
	BaseCooldown     int     `yaml:"base_cooldown"`
	MinCooldown      int     `yaml:"min_cooldown"`
	DecayRate        float64 `yaml:"decay_rate"` // Cooldown ticks removed per elapsed tick
	SizeJitterMin    float64 `yaml:"size_jitter_min"`
	SizeJitterRange  float64 `yaml:"size_jitter_range"`
	SpeedFactorMin   float64 `yaml:"speed_factor_min"`
	SpeedFactorRange float64 `yaml:"speed_factor_range"`
	SpawnOffset      float64 `yaml:"spawn_offset"`   // Gap above the top edge
	DespawnMargin    float64 `yaml:"despawn_margin"` // Distance below the bottom edge
	TrailLength      int     `yaml:"trail_length"`
}

// ScrollConfig defines the cosmetic scroll accumulators.
type ScrollConfig struct {
	BackgroundFactor float64 `yaml:"background_factor"`
	LaneMarkerFactor float64 `yaml:"lane_marker_factor"`
}

// DisplayConfig defines how the terminal maps world units to cells.
type DisplayConfig struct {
	UnitsPerColumn float64 `yaml:"units_per_column"`
	UnitsPerRow    float64 `yaml:"units_per_row"`
	KeyHoldTicks   int     `yaml:"key_hold_ticks"` // Frames a key stays held without auto-repeat
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)
