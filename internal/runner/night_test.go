package runner

import (
	"math/rand"
	"testing"
)

func TestNightFadeInAndOut(t *testing.T) {
	n := newNightMode(rand.New(rand.NewSource(1)))

	if n.Opacity != 0 {
		t.Fatalf("initial opacity = %v, want 0", n.Opacity)
	}

	n.Update(true, msPerFrame)
	if got, want := n.Opacity, nightFadeStep; got != want {
		t.Errorf("opacity after one frame = %v, want %v", got, want)
	}

	// Full fade-in clamps at 1.
	for i := 0; i < 100; i++ {
		n.Update(true, msPerFrame)
	}
	if n.Opacity != 1 {
		t.Errorf("opacity after long fade-in = %v, want 1", n.Opacity)
	}

	// Deactivation ramps back down and clamps at 0.
	for i := 0; i < 100; i++ {
		n.Update(false, msPerFrame)
	}
	if n.Opacity != 0 {
		t.Errorf("opacity after long fade-out = %v, want 0", n.Opacity)
	}
}

func TestNightPhaseAdvancesPerCycle(t *testing.T) {
	n := newNightMode(rand.New(rand.NewSource(1)))

	fadeCycle := func(active bool) {
		for i := 0; i < 100; i++ {
			n.Update(active, msPerFrame)
		}
	}

	// The phase advances once each time a fade-in starts from zero.
	fadeCycle(true)
	if n.CurrentPhase != 1 {
		t.Errorf("phase after first night = %d, want 1", n.CurrentPhase)
	}

	// Staying active must not advance it again.
	fadeCycle(true)
	if n.CurrentPhase != 1 {
		t.Errorf("phase while night holds = %d, want 1", n.CurrentPhase)
	}

	fadeCycle(false)
	fadeCycle(true)
	if n.CurrentPhase != 2 {
		t.Errorf("phase after second night = %d, want 2", n.CurrentPhase)
	}

	// Phases wrap around the cycle length.
	for i := 0; i < nightNumPhases; i++ {
		fadeCycle(false)
		fadeCycle(true)
	}
	if n.CurrentPhase != 2 {
		t.Errorf("phase after a full wrap = %d, want 2", n.CurrentPhase)
	}
}

func TestNightSkyDriftWraps(t *testing.T) {
	n := newNightMode(rand.New(rand.NewSource(1)))

	for i := 0; i < 200000; i++ {
		n.Update(true, msPerFrame)
		if n.MoonX < -cloudWidth || n.MoonX > simWidth {
			t.Fatalf("moon drifted out of range: %v", n.MoonX)
		}
		for _, s := range n.Stars() {
			if s.X < -cloudWidth || s.X > simWidth {
				t.Fatalf("star drifted out of range: %v", s.X)
			}
		}
	}
}

func TestNightStarsPlacedInSky(t *testing.T) {
	n := newNightMode(rand.New(rand.NewSource(3)))

	stars := n.Stars()
	if len(stars) != nightNumStars {
		t.Fatalf("star count = %d, want %d", len(stars), nightNumStars)
	}
	for i, s := range stars {
		if s.X < 0 || s.X >= simWidth {
			t.Errorf("star %d x = %v, out of range", i, s.X)
		}
		if s.Y < 0 || s.Y > nightMoonY {
			t.Errorf("star %d y = %v, want in [0, %d]", i, s.Y, nightMoonY)
		}
	}
}

func TestNightReset(t *testing.T) {
	n := newNightMode(rand.New(rand.NewSource(1)))

	for i := 0; i < 50; i++ {
		n.Update(true, msPerFrame)
	}
	n.reset()

	if n.Opacity != 0 {
		t.Errorf("opacity after reset = %v, want 0", n.Opacity)
	}
	if n.CurrentPhase != 0 {
		t.Errorf("phase after reset = %d, want 0", n.CurrentPhase)
	}
}
