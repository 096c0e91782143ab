package config

import "fmt"

// ParsePreset converts a CLI string into a preset. Empty means "use config as is".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal, hard or fixed)", ErrInvalid, s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *DriveConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.World.SpeedCap = max(cfg.World.BaseSpeed, cfg.World.SpeedCap*0.75)
		cfg.Spawn.BaseCooldown += 15
		cfg.Spawn.MinCooldown += 5
	case DifficultyHard:
		cfg.World.BaseSpeed *= 1.35
		cfg.World.SpeedCap = max(cfg.World.SpeedCap, cfg.World.BaseSpeed)
		cfg.World.AccelCoefficient *= 1.5
		cfg.Spawn.MinCooldown = max(1, cfg.Spawn.MinCooldown-5)
	case DifficultyFixed:
		// No progression: speed and spawn rate stay at their starting values
		cfg.World.AccelCoefficient = 0
		cfg.Spawn.DecayRate = 0
	}
}
