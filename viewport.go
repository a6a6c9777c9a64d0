package jumprun

import "github.com/hajimehoshi/ebiten/v2"

// Viewport maps the scene's normalized world space (x, y in [-1, 1], y up,
// origin at the center) onto a pixel surface (origin top-left, y down).
// Both axes span the full surface regardless of aspect ratio, matching how
// GL device coordinates fill a window.
type Viewport struct {
	Width, Height float64
}

// viewportOf builds a Viewport covering the given render target.
func viewportOf(screen *ebiten.Image) Viewport {
	b := screen.Bounds()
	return Viewport{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

// ToScreen converts a world-space point to pixel coordinates.
func (v Viewport) ToScreen(p Vec2) (sx, sy float64) {
	return (p.X + 1) / 2 * v.Width, (1 - p.Y) / 2 * v.Height
}

// ToWorld converts pixel coordinates back to world space.
func (v Viewport) ToWorld(sx, sy float64) Vec2 {
	return Vec2{
		X: sx/v.Width*2 - 1,
		Y: 1 - sy/v.Height*2,
	}
}

// SizeToScreen converts a world-space extent to pixels. World units span 2
// per axis, so a width of 2 fills the surface.
func (v Viewport) SizeToScreen(w, h float64) (pw, ph float64) {
	return w / 2 * v.Width, h / 2 * v.Height
}
