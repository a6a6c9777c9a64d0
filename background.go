package jumprun

import "math"

// BackgroundColor returns the clear color at elapsed time t: three
// independent phase-shifted sinusoids, each oscillating within a muted band
// so the backdrop drifts through dusky hues without ever washing out the
// rectangles.
func BackgroundColor(t float64) Color {
	return Color{
		R: 0.15 + 0.35*(0.5+0.5*math.Sin(t*0.5)),
		G: 0.12 + 0.35*(0.5+0.5*math.Sin(t*0.7+2.0)),
		B: 0.20 + 0.35*(0.5+0.5*math.Sin(t*0.9+4.0)),
		A: 1,
	}
}
