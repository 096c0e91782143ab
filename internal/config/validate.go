package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned (wrapped) when a configuration value is out of range.
var ErrInvalid = errors.New("config: invalid value")

// Validate checks the values the simulation relies on.
func (c DriveConfig) Validate() error {
	switch {
	case c.Road.Lanes < 1:
		return fmt.Errorf("%w: road.lanes must be >= 1, got %d", ErrInvalid, c.Road.Lanes)
	case c.Road.MinWidth <= 0 || c.Road.MaxWidth < c.Road.MinWidth:
		return fmt.Errorf("%w: road width bounds [%g, %g]", ErrInvalid, c.Road.MinWidth, c.Road.MaxWidth)
	case c.Road.Margin < 0:
		return fmt.Errorf("%w: road.margin must be >= 0", ErrInvalid)
	case c.Player.MinWidth <= 0 || c.Player.MinHeight <= 0:
		return fmt.Errorf("%w: player size must be positive", ErrInvalid)
	case c.Player.Friction < 0 || c.Player.Friction > 1:
		return fmt.Errorf("%w: player.friction must be in [0, 1], got %g", ErrInvalid, c.Player.Friction)
	case c.Player.MaxVX <= 0:
		return fmt.Errorf("%w: player.max_vx must be positive", ErrInvalid)
	case c.Player.TrailLength < 0 || c.Spawn.TrailLength < 0:
		return fmt.Errorf("%w: trail lengths must be >= 0", ErrInvalid)
	case c.World.BaseSpeed <= 0 || c.World.SpeedCap < c.World.BaseSpeed:
		return fmt.Errorf("%w: world speed bounds [%g, %g]", ErrInvalid, c.World.BaseSpeed, c.World.SpeedCap)
	case c.World.AccelCoefficient < 0 || c.World.ScoreCoefficient < 0:
		return fmt.Errorf("%w: world coefficients must be >= 0", ErrInvalid)
	case c.Spawn.MinCooldown < 1 || c.Spawn.BaseCooldown < c.Spawn.MinCooldown:
		return fmt.Errorf("%w: spawn cooldown bounds [%d, %d]", ErrInvalid, c.Spawn.MinCooldown, c.Spawn.BaseCooldown)
	case c.Spawn.DecayRate < 0:
		return fmt.Errorf("%w: spawn.decay_rate must be >= 0", ErrInvalid)
	case c.Spawn.SpeedFactorMin < 1:
		// Obstacles must outrun the scroll or they would never reach the player.
		return fmt.Errorf("%w: spawn.speed_factor_min must be >= 1, got %g", ErrInvalid, c.Spawn.SpeedFactorMin)
	case len(c.Palette) == 0:
		return fmt.Errorf("%w: palette is empty", ErrInvalid)
	case c.Display.UnitsPerColumn <= 0 || c.Display.UnitsPerRow <= 0:
		return fmt.Errorf("%w: display units must be positive", ErrInvalid)
	}
	return nil
}
