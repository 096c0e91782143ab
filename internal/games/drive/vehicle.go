package drive

import "github.com/vovakirdan/neondrive/internal/core"

// Vehicle is the player car or an obstacle car.
type Vehicle struct {
	X, Y          float64 // Top-left corner in world units
	Width, Height float64
	VX            float64 // Horizontal velocity (player only)
	VY            float64 // Downward velocity (obstacles only)
	Color         core.Color
	Trail         Trail
}

// Rect returns the collision rectangle.
func (v *Vehicle) Rect() core.Rect {
	return core.NewRect(v.X, v.Y, v.Width, v.Height)
}

// Trail is a newest-first history of a vehicle's base point.
// It is only read by renderers.
type Trail []core.Point

// Push prepends p and drops the oldest points beyond limit.
func (t Trail) Push(p core.Point, limit int) Trail {
	if limit <= 0 {
		return t[:0]
	}
	if len(t) > limit {
		t = t[:limit]
	}
	if len(t) < limit {
		t = append(t, core.Point{})
	}
	copy(t[1:], t)
	t[0] = p
	return t
}
