package jumprun

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// toRGBA converts to the 8-bit color.RGBA used by ebiten's Fill.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for positions and sizes throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in world space (y up, centered origin).
type Rect struct {
	X, Y, Width, Height float64
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// worldView is the visible world range: a Viewport shows x, y in [-1, 1].
// Quads whose bounds miss it entirely — runners parked at spawn, or sliding
// past the right edge — produce no pixels and are skipped during Draw.
var worldView = Rect{X: -1, Y: -1, Width: 2, Height: 2}

// --- Scene layout ---

// The obstacle row and runner spawn are compile-time layout. Obstacle X
// positions are derived from ObstacleX everywhere — placement and jump
// detection read the same values, so the two can never drift apart.
const (
	// ObstacleCount is the number of stationary obstacles in the row.
	ObstacleCount = 4
	// RunnerCount is the number of moving rectangles.
	RunnerCount = 4

	obstacleFirstX  = -0.7
	obstacleSpacing = 0.45
	obstacleY       = -0.5
	obstacleWidth   = 0.12
	obstacleHeight  = 0.18

	runnerWidth  = 0.12
	runnerHeight = 0.15
)

// ObstacleX returns the world-space x position of the i-th obstacle.
// Valid for 0 <= i < ObstacleCount.
func ObstacleX(i int) float64 {
	return obstacleFirstX + float64(i)*obstacleSpacing
}

// obstacleColors are the fixed obstacle colors, left to right.
var obstacleColors = [ObstacleCount]Color{
	{0.9, 0.1, 0.1, 1},  // red
	{0.1, 0.9, 0.1, 1},  // green
	{0.1, 0.2, 0.95, 1}, // blue
	{1.0, 0.8, 0.0, 1},  // yellow
}

// runnerColors are the fixed runner colors, in launch order.
var runnerColors = [RunnerCount]Color{
	{0.9, 0.0, 0.9, 1},  // magenta
	{0.0, 0.9, 0.9, 1},  // cyan
	{1.0, 0.45, 0.0, 1}, // orange
	{0.5, 0.0, 1.0, 1},  // purple
}

// Rectangle describes one quad in the scene. Stationary rectangles keep Pos
// fixed for the life of the process; for runners Pos holds the spawn position
// and the draw path recomputes the current position from elapsed time instead
// of writing it back.
type Rectangle struct {
	Pos           Vec2
	Width, Height float64
	Color         Color
	Stationary    bool
}

// Bounds returns the rectangle's world-space AABB centered at pos.
// Pass the current position for runners; for stationary rectangles pos is
// just rect.Pos.
func (r Rectangle) Bounds(pos Vec2) Rect {
	return Rect{
		X:      pos.X - r.Width/2,
		Y:      pos.Y - r.Height/2,
		Width:  r.Width,
		Height: r.Height,
	}
}
