package config

import (
	_ "embed"
)

//go:embed defaults/drive.yaml
var defaultDriveYAML []byte

// DefaultPalette is the obstacle color pool.
var DefaultPalette = []string{"#22d3ee", "#a78bfa", "#f472b6", "#f59e0b", "#10b981"}

// DefaultDriveConfig returns the built-in configuration.
// It mirrors defaults/drive.yaml and is used when the embedded file cannot be parsed.
func DefaultDriveConfig() DriveConfig {
	return DriveConfig{
		Road: RoadConfig{
			WidthRatio: 0.7,
			MinWidth:   280,
			MaxWidth:   560,
			Lanes:      3,
			Margin:     16,
		},
		Player: PlayerConfig{
			MinWidth:     42,
			WidthRatio:   0.08,
			MinHeight:    70,
			HeightRatio:  0.14,
			BottomOffset: 40,
			Accel:        1.2,
			MaxVX:        11,
			Friction:     0.9,
			TrailLength:  12,
			Color:        "#34d399",
		},
		World: WorldConfig{
			BaseSpeed:        6,
			SpeedCap:         18,
			AccelCoefficient: 0.003,
			ScoreCoefficient: 0.5,
		},
		Spawn: SpawnConfig{
			InitialCooldown:  0,
			BaseCooldown:     60,
			MinCooldown:      15,
			DecayRate:        0.02,
			SizeJitterMin:    0.95,
			SizeJitterRange:  0.1,
			SpeedFactorMin:   1.1,
			SpeedFactorRange: 0.8,
			SpawnOffset:      20,
			DespawnMargin:    100,
			TrailLength:      8,
		},
		Scroll: ScrollConfig{
			BackgroundFactor: 0.2,
			LaneMarkerFactor: 1.5,
		},
		Display: DisplayConfig{
			UnitsPerColumn: 10,
			UnitsPerRow:    20,
			KeyHoldTicks:   8,
		},
		Palette: append([]string(nil), DefaultPalette...),
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultDriveYAML
}
