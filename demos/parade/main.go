// parade runs the full rectangle parade: four obstacles in a row and four
// runners that launch one by one, hopping over each obstacle, against a
// slowly cycling background.
//
// Controls: ESC quits, SPACE pauses, F12 saves a screenshot.
package main

import (
	"log"

	"github.com/phanxgames/jumprun"
)

const (
	windowTitle = "Jump Run — Rectangle Parade"
	screenW     = 1200
	screenH     = 800
	showFPS     = true
)

func main() {
	scene := jumprun.NewScene()
	scene.StartIntro()

	if err := jumprun.Run(scene, jumprun.RunConfig{
		Title:   windowTitle,
		Width:   screenW,
		Height:  screenH,
		ShowFPS: showFPS,
	}); err != nil {
		log.Fatal(err)
	}
}
