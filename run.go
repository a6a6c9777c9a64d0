package jumprun

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunConfig configures the window created by [Run].
type RunConfig struct {
	Title   string
	Width   int // logical width in pixels (default 1200)
	Height  int // logical height in pixels (default 800)
	ShowFPS bool
}

// Run opens a window and drives the scene until the window is closed or ESC
// is pressed, returning nil on a clean exit. Any window or renderer failure
// is returned to the caller — the animation never limps along on a broken
// graphics state.
//
// Controls: ESC closes, SPACE pauses the animation clock, F12 writes a PNG
// screenshot to [Scene.ScreenshotDir].
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 1200
	}
	if cfg.Height <= 0 {
		cfg.Height = 800
	}
	if cfg.Title == "" {
		cfg.Title = "jumprun"
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)

	g := &game{scene: scene, cfg: cfg}
	if cfg.ShowFPS {
		g.fps = newFPSOverlay()
	}
	return ebiten.RunGame(g)
}

// game adapts a Scene to the ebiten.Game interface.
type game struct {
	scene *Scene
	cfg   RunConfig
	fps   *fpsOverlay
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.scene.SetPaused(!g.scene.Paused())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.scene.Screenshot("frame")
	}

	dt := 1.0 / float64(ebiten.TPS())
	if g.fps != nil {
		g.fps.tick(dt)
	}
	return g.scene.Update(dt)
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.fps != nil {
		g.fps.draw(screen)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
