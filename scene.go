package jumprun

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

// Scene owns the rectangle list, the animation clock, and per-frame render
// state. Construct with NewScene, then either hand it to [Run] or drive
// [Scene.Update] and [Scene.Draw] from your own [ebiten.Game].
type Scene struct {
	rects []Rectangle

	elapsed float64
	paused  bool

	updateFunc func() error

	// Launch intro state. Scale/alpha stay 1 unless StartIntro arms the
	// tweens; they only affect drawing, never RunnerPosition.
	alpha         float64
	obstacleScale [ObstacleCount]float64
	introTweens   []*FloatTween

	// Screenshot capture (flushed at the end of Draw).
	ScreenshotDir   string
	screenshotQueue []string
}

// NewScene builds the fixed scene: ObstacleCount stationary rectangles along
// a row at y = -0.5, followed by RunnerCount runners parked at RunnerSpawn.
// The list never grows, shrinks, or moves after construction.
func NewScene() *Scene {
	s := &Scene{
		rects:         make([]Rectangle, 0, ObstacleCount+RunnerCount),
		alpha:         1,
		ScreenshotDir: "screenshots",
	}
	for i := range s.obstacleScale {
		s.obstacleScale[i] = 1
	}

	for i := 0; i < ObstacleCount; i++ {
		s.rects = append(s.rects, Rectangle{
			Pos:        Vec2{ObstacleX(i), obstacleY},
			Width:      obstacleWidth,
			Height:     obstacleHeight,
			Color:      obstacleColors[i],
			Stationary: true,
		})
	}
	for i := 0; i < RunnerCount; i++ {
		s.rects = append(s.rects, Rectangle{
			Pos:        RunnerSpawn,
			Width:      runnerWidth,
			Height:     runnerHeight,
			Color:      runnerColors[i],
			Stationary: false,
		})
	}
	return s
}

// Rectangles returns the scene's rectangle list. The returned slice MUST NOT
// be mutated.
func (s *Scene) Rectangles() []Rectangle {
	return s.rects
}

// Elapsed returns the animation clock in seconds. The clock advances in
// Update and freezes while paused.
func (s *Scene) Elapsed() float64 {
	return s.elapsed
}

// Paused reports whether the animation clock is frozen.
func (s *Scene) Paused() bool {
	return s.paused
}

// SetPaused freezes or resumes the animation clock. Because runner positions
// are pure functions of the clock, pausing freezes the whole animation with
// no further bookkeeping.
func (s *Scene) SetPaused(paused bool) {
	s.paused = paused
}

// SetUpdateFunc registers a callback invoked once per Update, after the clock
// and intro tweens have advanced. Returning an error stops the game loop.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// StartIntro arms the launch intro: the scene fades in and each obstacle
// pops up to full size with a slight overshoot. Cosmetic only — runner
// motion and timing are unaffected.
func (s *Scene) StartIntro() {
	s.alpha = 0
	s.introTweens = s.introTweens[:0]

	fade := &FloatTween{}
	fade.Add(&s.alpha, 1, 0.5, ease.InOutSine)
	s.introTweens = append(s.introTweens, fade)

	for i := range s.obstacleScale {
		s.obstacleScale[i] = 0
		pop := &FloatTween{}
		pop.Add(&s.obstacleScale[i], 1, 0.6+0.12*float32(i), ease.OutBack)
		s.introTweens = append(s.introTweens, pop)
	}
}

// Update advances the animation clock and intro tweens by dt seconds, then
// invokes the registered update callback.
func (s *Scene) Update(dt float64) error {
	if !s.paused {
		s.elapsed += dt
	}

	done := 0
	for _, tw := range s.introTweens {
		tw.Update(float32(dt))
		if tw.Done {
			done++
		}
	}
	if len(s.introTweens) > 0 && done == len(s.introTweens) {
		s.introTweens = s.introTweens[:0]
	}

	if s.updateFunc != nil {
		return s.updateFunc()
	}
	return nil
}

// Draw fills the background and draws every rectangle at its current
// position: stationary rectangles at their fixed spot, runners at
// RunnerPosition(elapsed, launch index). Queued screenshots are flushed
// after the frame is complete.
func (s *Scene) Draw(screen *ebiten.Image) {
	screen.Fill(BackgroundColor(s.elapsed).toRGBA())

	vp := viewportOf(screen)
	px := ensureWhitePixel()

	var op ebiten.DrawImageOptions
	runner := 0
	for i := range s.rects {
		r := &s.rects[i]

		pos := r.Pos
		w, h := r.Width, r.Height
		if r.Stationary {
			w *= s.obstacleScale[i]
			h *= s.obstacleScale[i]
		} else {
			pos = RunnerPosition(s.elapsed, runner)
			runner++
		}
		if w <= 0 || h <= 0 {
			continue
		}
		if !worldView.Intersects(Rect{pos.X - w/2, pos.Y - h/2, w, h}) {
			continue
		}

		pw, ph := vp.SizeToScreen(w, h)
		sx, sy := vp.ToScreen(pos)

		op.GeoM.Reset()
		op.GeoM.Scale(pw, ph)
		op.GeoM.Translate(sx-pw/2, sy-ph/2)

		a := float32(r.Color.A * s.alpha)
		op.ColorScale.Reset()
		op.ColorScale.Scale(float32(r.Color.R)*a, float32(r.Color.G)*a, float32(r.Color.B)*a, a)

		screen.DrawImage(px, &op)
	}

	s.flushScreenshots(screen)
}

// whitePixel is a shared 1x1 white image; solid rectangles are drawn by
// scaling it. Created lazily so pure-logic tests never touch the GPU.
var whitePixel *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(Color{1, 1, 1, 1}.toRGBA())
	}
	return whitePixel
}
