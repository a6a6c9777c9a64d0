package jumprun

import "math"

// Motion timing and travel constants.
const (
	// CycleTime is the duration of one full left-to-right traversal, after
	// which a runner's position repeats.
	CycleTime = 6.0
	// LaunchDelay is the stagger between consecutive runners: runner i starts
	// i*LaunchDelay seconds after the clock.
	LaunchDelay = 1.5

	// TravelMinX and TravelMaxX bound a runner's horizontal travel.
	TravelMinX = -1.2
	TravelMaxX = 1.2

	// RunnerBaseY is a runner's vertical position outside any jump arc,
	// and the y of the spawn position.
	RunnerBaseY = 0.2

	// JumpRadius is the horizontal distance from an obstacle center within
	// which a runner's vertical position is perturbed into a jump arc.
	JumpRadius = 0.12
	// JumpHeight scales the jump arc.
	JumpHeight = 0.35
)

// RunnerSpawn is the fixed position every runner occupies before launch.
var RunnerSpawn = Vec2{TravelMinX, RunnerBaseY}

// RunnerPosition returns the world-space position of the index-th runner
// (0-based, launch order) at elapsed time t in seconds.
//
// A runner waits at RunnerSpawn until its launch delay passes, then loops a
// CycleTime-long traversal from TravelMinX to TravelMaxX forever. Near each
// obstacle the vertical position follows a sinusoidal jump arc; only the
// first obstacle within JumpRadius contributes, so trigger zones never stack.
//
// The function is pure: identical (t, index) inputs always produce identical
// output, and no per-runner state exists anywhere.
func RunnerPosition(t float64, index int) Vec2 {
	adjusted := t - float64(index)*LaunchDelay
	if adjusted < 0 {
		return RunnerSpawn
	}
	adjusted = math.Mod(adjusted, CycleTime)

	x := TravelMinX + (adjusted/CycleTime)*(TravelMaxX-TravelMinX)
	if x > TravelMaxX {
		// Guards the float edge at adjusted == CycleTime.
		x = TravelMinX
	}

	y := RunnerBaseY
	for i := 0; i < ObstacleCount; i++ {
		d := math.Abs(x - ObstacleX(i))
		if d < JumpRadius {
			arc := 1 - d/JumpRadius
			y += JumpHeight * math.Sin(arc*math.Pi)
			break
		}
	}

	return Vec2{x, y}
}
