package jumprun

import "testing"

func TestBackgroundColorStaysInMutedBands(t *testing.T) {
	for tm := 0.0; tm < 60.0; tm += 0.05 {
		c := BackgroundColor(tm)
		if c.R < 0.15 || c.R > 0.5 {
			t.Fatalf("R = %v at t=%v, want within [0.15, 0.5]", c.R, tm)
		}
		if c.G < 0.12 || c.G > 0.47 {
			t.Fatalf("G = %v at t=%v, want within [0.12, 0.47]", c.G, tm)
		}
		if c.B < 0.2 || c.B > 0.55 {
			t.Fatalf("B = %v at t=%v, want within [0.2, 0.55]", c.B, tm)
		}
		if c.A != 1 {
			t.Fatalf("A = %v at t=%v, want 1", c.A, tm)
		}
	}
}

func TestBackgroundColorIsDeterministic(t *testing.T) {
	for _, tm := range []float64{0, 1.5, 17.3, 123.456} {
		if BackgroundColor(tm) != BackgroundColor(tm) {
			t.Errorf("BackgroundColor(%v) not deterministic", tm)
		}
	}
}

func TestBackgroundColorActuallyCycles(t *testing.T) {
	// The three channels drift independently; over a few seconds the color
	// must visibly change.
	a := BackgroundColor(0)
	b := BackgroundColor(2)
	if a == b {
		t.Error("background color did not change over 2 seconds")
	}
}
