package drive

import (
	"math"

	"github.com/vovakirdan/neondrive/internal/core"
)

// Visual characters for rendering
const (
	CarBody      = '█'
	Windshield   = '▒'
	Headlight    = '▴'
	TrailChar    = '·'
	RoadEdgeChar = '┃'
	MarkerChar   = '╎'
	BuildingChar = '▓'
	WindowChar   = '▪'
)

// Dash pattern of the lane markers in world units.
const (
	markerDash = 40.0
	markerGap  = 40.0
)

// Renderer draws a State into a screen buffer. It reads the state and never
// modifies it.
type Renderer struct {
	UnitsPerColumn float64
	UnitsPerRow    float64
}

// NewRenderer creates a renderer with the given world-to-cell scale.
func NewRenderer(unitsPerColumn, unitsPerRow float64) Renderer {
	return Renderer{UnitsPerColumn: unitsPerColumn, UnitsPerRow: unitsPerRow}
}

// Viewport returns the world-space viewport that fits a screen of the given size.
func (r Renderer) Viewport(cols, rows int) core.Viewport {
	return core.Viewport{
		W: float64(cols) * r.UnitsPerColumn,
		H: float64(rows) * r.UnitsPerRow,
	}
}

// Draw renders the road, trails and cars.
func (r Renderer) Draw(dst *core.Screen, s *State) {
	r.drawSkyline(dst, s.Road, s.BackgroundOffset)
	r.drawRoad(dst, s.Road, s.LaneMarkerOffset)

	for i := range s.Obstacles {
		r.drawTrail(dst, s.Obstacles[i].Trail, s.Obstacles[i].Color)
	}
	r.drawTrail(dst, s.Player.Trail, s.Player.Color)

	for i := range s.Obstacles {
		r.drawCar(dst, &s.Obstacles[i], false)
	}
	r.drawCar(dst, &s.Player, true)
}

// DrawIdle renders an empty road, shown before the first run starts.
func (r Renderer) DrawIdle(dst *core.Screen, road RoadGeometry) {
	r.drawSkyline(dst, road, 0)
	r.drawRoad(dst, road, 0)
}

func (r Renderer) col(x float64) int {
	return int(math.Floor(x / r.UnitsPerColumn))
}

func (r Renderer) row(y float64) int {
	return int(math.Floor(y / r.UnitsPerRow))
}

// cells converts a world rectangle to the cells it covers (at least one).
func (r Renderer) cells(rect core.Rect) core.CellRect {
	x0, y0 := r.col(rect.X), r.row(rect.Y)
	x1 := int(math.Ceil(rect.Right() / r.UnitsPerColumn))
	y1 := int(math.Ceil(rect.Bottom() / r.UnitsPerRow))
	return core.NewCellRect(x0, y0, max(1, x1-x0), max(1, y1-y0))
}

func (r Renderer) drawRoad(dst *core.Screen, road RoadGeometry, markerOffset float64) {
	left := r.col(road.X) - 1
	right := r.col(road.X + road.Width)
	dst.DrawVLine(left, 0, dst.Height(), RoadEdgeChar, core.ColorEdge)
	dst.DrawVLine(right, 0, dst.Height(), RoadEdgeChar, core.ColorEdge)

	period := markerDash + markerGap
	for lane := 1; lane < road.Lanes; lane++ {
		x := r.col(road.X + road.LaneWidth()*float64(lane))
		for y := 0; y < dst.Height(); y++ {
			// Dashes travel down the screen as the offset grows
			phase := math.Mod(float64(y)*r.UnitsPerRow-markerOffset, period)
			if phase < 0 {
				phase += period
			}
			if phase < markerDash {
				dst.SetColored(x, y, MarkerChar, core.ColorMarker)
			}
		}
	}
}

// drawSkyline fills the area beside the road with buildings whose lit
// windows drift with the background offset.
func (r Renderer) drawSkyline(dst *core.Screen, road RoadGeometry, offset float64) {
	left := r.col(road.X) - 2
	right := r.col(road.X+road.Width) + 1
	shift := int(offset / r.UnitsPerRow)

	for x := 0; x < dst.Width(); x++ {
		if x > left && x < right {
			continue
		}
		height := dst.Height()/3 + int(hash(x)%uint32(max(1, dst.Height()/3)))
		top := dst.Height() - height
		for y := top; y < dst.Height(); y++ {
			if hash(x*31+y+shift)%7 == 0 {
				dst.SetColored(x, y, WindowChar, core.ColorWindow)
			} else {
				dst.SetColored(x, y, BuildingChar, core.ColorSkyline)
			}
		}
	}
}

func (r Renderer) drawTrail(dst *core.Screen, trail Trail, c core.Color) {
	// The newest point sits under the car itself
	for i := 1; i < len(trail); i++ {
		dst.SetColored(r.col(trail[i].X), r.row(trail[i].Y), TrailChar, c)
	}
}

func (r Renderer) drawCar(dst *core.Screen, v *Vehicle, player bool) {
	cr := r.cells(v.Rect())
	dst.DrawRect(cr, CarBody, v.Color)

	if cr.H > 2 && cr.W > 2 {
		windshieldRow := cr.Y + 1
		if !player {
			// Oncoming traffic faces the player
			windshieldRow = cr.Bottom() - 2
		}
		for x := cr.X + 1; x < cr.Right()-1; x++ {
			dst.SetColored(x, windshieldRow, Windshield, core.ColorLight)
		}
	}

	if player {
		dst.SetColored(cr.X, cr.Y-1, Headlight, core.ColorLight)
		dst.SetColored(cr.Right()-1, cr.Y-1, Headlight, core.ColorLight)
	}
}

// hash is a small integer mix used for stable scenery.
func hash(n int) uint32 {
	x := uint32(n)*2654435761 + 0x9e3779b9
	x ^= x >> 15
	x *= 0x85ebca6b
	x ^= x >> 13
	return x
}
