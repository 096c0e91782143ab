package drive

import "github.com/vovakirdan/neondrive/internal/core"

// Update advances the run by one tick with the given steering value.
//
// steer is the aggregated input; it is deliberately not clamped to [-1, 1],
// so combined key and touch input turns harder than either alone.
//
// It returns the score and whether the run ended on this tick. Once the run
// has ended, Update leaves the state untouched and keeps returning the final
// score.
func (s *State) Update(steer float64) (score float64, terminated bool) {
	if s.Terminated {
		return s.Score, true
	}

	s.advanceClock()
	s.steer(steer)
	s.Player.Trail = s.Player.Trail.Push(s.Player.Rect().BaseCenter(), s.cfg.Player.TrailLength)

	s.SpawnCooldown--
	if s.SpawnCooldown <= 0 {
		s.spawnObstacle()
	}

	s.moveObstacles()

	if s.collides() {
		s.Terminated = true
		return s.Score, true
	}

	s.BackgroundOffset += s.Speed * s.cfg.Scroll.BackgroundFactor
	s.LaneMarkerOffset += s.Speed * s.cfg.Scroll.LaneMarkerFactor

	return s.Score, false
}

// advanceClock ticks time, speed and score.
func (s *State) advanceClock() {
	s.Ticks++
	s.Speed = min(s.SpeedCap, s.cfg.World.BaseSpeed+float64(s.Ticks)*s.cfg.World.AccelCoefficient)
	s.Score += s.Speed * s.cfg.World.ScoreCoefficient
}

// steer applies input to the player's velocity and keeps the car on the road.
// Hitting a road edge stops the car dead rather than bouncing it.
func (s *State) steer(dir float64) {
	p := &s.Player
	pc := s.cfg.Player

	p.VX += dir * pc.Accel
	p.VX *= pc.Friction
	p.VX = core.ClampF(p.VX, -pc.MaxVX, pc.MaxVX)
	p.X += p.VX

	if minX := s.MinX(); p.X < minX {
		p.X = minX
		p.VX = 0
	}
	if maxX := s.MaxX(); p.X > maxX {
		p.X = maxX
		p.VX = 0
	}
}

// moveObstacles advances every obstacle and drops the ones that have left
// the road below the despawn margin.
func (s *State) moveObstacles() {
	limit := s.Road.Bottom() + s.cfg.Spawn.DespawnMargin

	kept := s.Obstacles[:0]
	for i := range s.Obstacles {
		o := s.Obstacles[i]
		o.Y += o.VY
		o.Trail = o.Trail.Push(o.Rect().BaseCenter(), s.cfg.Spawn.TrailLength)
		if o.Y > limit {
			continue
		}
		kept = append(kept, o)
	}
	// Release dropped trails for the GC
	for i := len(kept); i < len(s.Obstacles); i++ {
		s.Obstacles[i] = Vehicle{}
	}
	s.Obstacles = kept
}

// collides reports whether the player overlaps any obstacle.
func (s *State) collides() bool {
	pr := s.Player.Rect()
	for i := range s.Obstacles {
		if pr.Intersects(s.Obstacles[i].Rect()) {
			return true
		}
	}
	return false
}
