package jumprun

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestFloatTweenReachesTarget(t *testing.T) {
	x, y := 10.0, 20.0
	g := &FloatTween{}
	g.Add(&x, 100, 1.0, ease.Linear)
	g.Add(&y, 200, 1.0, ease.Linear)

	// Run for full duration using exact halves to avoid float32 accumulation drift.
	g.Update(0.5)
	g.Update(0.5)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(x-100) > 0.5 {
		t.Errorf("x = %f, want ~100", x)
	}
	if math.Abs(y-200) > 0.5 {
		t.Errorf("y = %f, want ~200", y)
	}
}

func TestFloatTweenInterpolatesMidway(t *testing.T) {
	v := 1.0
	g := &FloatTween{}
	g.Add(&v, 0, 1.0, ease.Linear)

	g.Update(0.5)
	if g.Done {
		t.Fatal("should not be done at halfway")
	}
	if math.Abs(v-0.5) > 0.05 {
		t.Errorf("v = %f, want ~0.5 at halfway", v)
	}

	g.Update(0.5)
	if !g.Done {
		t.Fatal("should be done after full duration")
	}
	if math.Abs(v-0.0) > 0.01 {
		t.Errorf("v = %f, want ~0.0", v)
	}
}

func TestFloatTweenDoneFlagTransition(t *testing.T) {
	v := 0.0
	g := &FloatTween{}
	g.Add(&v, 50, 0.5, ease.Linear)

	if g.Done {
		t.Fatal("should not be Done at start")
	}

	g.Update(0.25)
	if g.Done {
		t.Fatal("should not be Done partway through")
	}

	g.Update(0.25)
	if !g.Done {
		t.Fatal("should be Done after full duration")
	}

	// Update after done — should be a no-op, not panic.
	g.Update(0.1)
	if !g.Done {
		t.Fatal("should remain Done")
	}
}

func TestFloatTweenMixedDurations(t *testing.T) {
	a, b := 0.0, 0.0
	g := &FloatTween{}
	g.Add(&a, 1, 0.5, ease.Linear)
	g.Add(&b, 1, 1.0, ease.Linear)

	g.Update(0.5)
	if g.Done {
		t.Fatal("group should wait for the slowest tween")
	}
	g.Update(0.5)
	if !g.Done {
		t.Fatal("expected Done once every tween finished")
	}
	if math.Abs(a-1) > 0.01 || math.Abs(b-1) > 0.01 {
		t.Errorf("a = %f, b = %f, want ~1 for both", a, b)
	}
}

func TestFloatTweenAddBeyondCapacityPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when binding a 5th field")
		}
	}()
	g := &FloatTween{}
	var vals [5]float64
	for i := range vals {
		g.Add(&vals[i], 1, 1.0, ease.Linear)
	}
}

func TestFloatTweenUpdateZeroAlloc(t *testing.T) {
	v := 0.0
	g := &FloatTween{}
	g.Add(&v, 100, 1.0, ease.Linear)

	// Warm up — first call might differ.
	g.Update(0.01)

	result := testing.AllocsPerRun(100, func() {
		g.Update(0.001)
	})
	if result > 0 {
		t.Errorf("FloatTween.Update allocated %f times per run, want 0", result)
	}
}
