// Package jumprun animates a parade of colored rectangles that travel across
// the screen and hop over a row of stationary obstacles, against a slowly
// cycling background. Built on [Ebitengine].
//
// The animation model is deliberately stateless: every runner's position is a
// pure function of elapsed time and its launch order ([RunnerPosition]), so
// the whole motion system can be unit-tested without rendering a single frame.
//
// # Quick start
//
//	scene := jumprun.NewScene()
//	scene.StartIntro()
//	if err := jumprun.Run(scene, jumprun.RunConfig{
//		Title: "Jump Run", Width: 1200, Height: 800,
//	}); err != nil {
//		log.Fatal(err)
//	}
//
// For full control, implement [ebiten.Game] yourself and call [Scene.Update]
// and [Scene.Draw] directly.
//
// # Coordinates
//
// The scene model lives in a normalized world space with x and y in [-1, 1]
// and y pointing up; [Viewport] maps it to screen pixels. Runners travel
// beyond the visible range, from x = -1.2 to x = 1.2, so they enter and leave
// off-screen.
//
// [Ebitengine]: https://ebitengine.org
package jumprun
