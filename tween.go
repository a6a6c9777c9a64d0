package jumprun

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// FloatTween animates up to 4 float64 fields simultaneously. Bind fields with
// [FloatTween.Add] and call Update(dt) each frame; values are written back to
// the bound fields automatically.
//
// There is no global animation manager — owners call Update themselves.
type FloatTween struct {
	tweens [4]*gween.Tween
	fields [4]*float64
	count  int
	Done   bool
}

// Add binds a field to animate from its current value to the target over the
// given duration. Panics if more than 4 fields are bound.
func (g *FloatTween) Add(field *float64, to float64, duration float32, fn ease.TweenFunc) *FloatTween {
	if g.count >= len(g.tweens) {
		panic("jumprun: FloatTween supports at most 4 fields")
	}
	g.tweens[g.count] = gween.New(float32(*field), float32(to), duration, fn)
	g.fields[g.count] = field
	g.count++
	return g
}

// Update advances all tweens by dt seconds and writes values to the bound
// fields. Once every tween has finished, Done is set and further calls are
// no-ops.
func (g *FloatTween) Update(dt float32) {
	if g.Done || g.count == 0 {
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}
