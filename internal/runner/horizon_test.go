package runner

import (
	"math/rand"
	"testing"

	"trexrunner/internal/config"
)

func newTestHorizon(seed int64) *Horizon {
	cfg := config.DefaultRunnerConfig()
	return newHorizon(cfg.Spawn, rand.New(rand.NewSource(seed)))
}

func TestHorizonStartsWithOneCloudNoObstacles(t *testing.T) {
	h := newTestHorizon(1)

	if len(h.Clouds()) != 1 {
		t.Errorf("initial clouds = %d, want 1", len(h.Clouds()))
	}
	if len(h.Obstacles()) != 0 {
		t.Errorf("initial obstacles = %d, want 0", len(h.Obstacles()))
	}
}

func TestHorizonObstaclesGated(t *testing.T) {
	h := newTestHorizon(1)

	for i := 0; i < 600; i++ {
		h.Update(msPerFrame, 6, false, false)
	}
	if len(h.Obstacles()) != 0 {
		t.Errorf("obstacles spawned while gated: %d", len(h.Obstacles()))
	}
}

func TestHorizonDuplicationCap(t *testing.T) {
	// Property: across many seeds, spawns never produce a run of identical
	// consecutive types longer than the configured cap.
	cfg := config.DefaultRunnerConfig()
	maxDup := cfg.Spawn.MaxObstacleDuplication

	for seed := int64(0); seed < 50; seed++ {
		h := newTestHorizon(seed)

		run, last := 0, ObstacleKind(-1)
		for i := 0; i < 300; i++ {
			h.addNewObstacle(6)
			kind := h.obstacles[len(h.obstacles)-1].Type.Kind
			if kind == last {
				run++
			} else {
				run, last = 1, kind
			}
			if run > maxDup {
				t.Fatalf("seed %d: run of %d consecutive %v, cap %d", seed, run, kind, maxDup)
			}
		}
	}
}

func TestHorizonSpeedFloor(t *testing.T) {
	// Flyers have a speed floor of 8.5 and must never spawn below it.
	for seed := int64(0); seed < 20; seed++ {
		h := newTestHorizon(seed)
		for i := 0; i < 200; i++ {
			h.addNewObstacle(6)
			if kind := h.obstacles[len(h.obstacles)-1].Type.Kind; kind == Pterodactyl {
				t.Fatalf("seed %d: flyer spawned at speed 6", seed)
			}
		}
	}

	// Above the floor they do appear.
	h := newTestHorizon(3)
	seen := false
	for i := 0; i < 200 && !seen; i++ {
		h.addNewObstacle(9)
		seen = h.obstacles[len(h.obstacles)-1].Type.Kind == Pterodactyl
	}
	if !seen {
		t.Error("flyer never spawned at speed 9")
	}
}

func TestHorizonSpawnSpacing(t *testing.T) {
	h := newTestHorizon(1)

	for i := 0; i < 3000; i++ {
		h.Update(msPerFrame, 6, true, false)

		obstacles := h.Obstacles()
		for j := 0; j+1 < len(obstacles); j++ {
			a, b := obstacles[j], obstacles[j+1]
			spacing := b.XPos - (a.XPos + a.Width)
			// Both move in whole-pixel steps, so allow one step of slack.
			if spacing < a.Gap-8 {
				t.Fatalf("tick %d: spacing %v below gap %v", i, spacing, a.Gap)
			}
		}
	}
}

func TestHorizonLookAheadSpawnsOnce(t *testing.T) {
	h := newTestHorizon(1)

	// The first obstacle spawns immediately; a successor queues only after
	// the leader has scrolled in past its own gap.
	h.Update(msPerFrame, 6, true, false)
	if len(h.Obstacles()) != 1 {
		t.Fatalf("obstacles after first update = %d, want 1", len(h.Obstacles()))
	}

	first := h.Obstacles()[0]
	for i := 0; i < 1000 && len(h.Obstacles()) == 1; i++ {
		h.Update(msPerFrame, 6, true, false)
	}
	if len(h.Obstacles()) < 2 {
		t.Fatal("successor never spawned")
	}
	if !first.followingSpawned {
		t.Error("leader not flagged after successor spawn")
	}
}

func TestHorizonCloudBounds(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	h := newTestHorizon(2)

	for i := 0; i < 10000; i++ {
		h.Update(msPerFrame, 6, false, false)
		n := len(h.Clouds())
		if n < 1 || n > cfg.Spawn.MaxClouds {
			t.Fatalf("tick %d: cloud count %d outside [1, %d]", i, n, cfg.Spawn.MaxClouds)
		}
	}
}

func TestHorizonGroundScrollWraps(t *testing.T) {
	h := newTestHorizon(1)

	for i := 0; i < 5000; i++ {
		h.Update(msPerFrame, 13, false, false)
		if off := h.GroundOffset(); off < 0 || off >= simWidth {
			t.Fatalf("ground offset %v outside [0, %d)", off, simWidth)
		}
	}
}

func TestHorizonResetKeepsClouds(t *testing.T) {
	h := newTestHorizon(1)

	for i := 0; i < 2000; i++ {
		h.Update(msPerFrame, 6, true, true)
	}
	clouds := len(h.Clouds())

	h.reset()

	if len(h.Obstacles()) != 0 {
		t.Errorf("obstacles after reset = %d, want 0", len(h.Obstacles()))
	}
	if len(h.Clouds()) != clouds {
		t.Errorf("clouds after reset = %d, want %d", len(h.Clouds()), clouds)
	}
	if h.Night.Opacity != 0 {
		t.Errorf("night opacity after reset = %v, want 0", h.Night.Opacity)
	}
	if h.GroundOffset() != 0 {
		t.Errorf("ground offset after reset = %v, want 0", h.GroundOffset())
	}
}
