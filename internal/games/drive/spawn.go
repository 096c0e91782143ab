package drive

import "math"

// spawnObstacle adds one obstacle car at the top of a random lane and resets
// the cooldown. PRNG draws happen in a fixed order: lane, width, height,
// speed, color.
func (s *State) spawnObstacle() {
	sc := s.cfg.Spawn
	laneW := s.Road.LaneWidth()

	lane := min(int(s.rand()*float64(s.Road.Lanes)), s.Road.Lanes-1)
	w := s.Player.Width * (sc.SizeJitterMin + s.rand()*sc.SizeJitterRange)
	h := s.Player.Height * (sc.SizeJitterMin + s.rand()*sc.SizeJitterRange)
	vy := s.Speed * (sc.SpeedFactorMin + s.rand()*sc.SpeedFactorRange)
	color := s.palette[min(int(s.rand()*float64(len(s.palette))), len(s.palette)-1)]

	s.Obstacles = append(s.Obstacles, Vehicle{
		X:      s.Road.X + laneW*float64(lane) + (laneW-w)/2,
		Y:      s.Road.Y - h - sc.SpawnOffset,
		Width:  w,
		Height: h,
		VY:     vy,
		Color:  color,
	})

	s.SpawnCooldown = NextCooldown(s.Ticks, sc.BaseCooldown, sc.MinCooldown, sc.DecayRate)
}

// NextCooldown is the spawn interval after ticks elapsed ticks: it shrinks
// linearly with time and never drops below minCooldown.
func NextCooldown(ticks, baseCooldown, minCooldown int, decayRate float64) int {
	decay := int(math.Floor(float64(ticks) * decayRate))
	return max(minCooldown, baseCooldown-decay)
}
