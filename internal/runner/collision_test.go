package runner

import (
	"math/rand"
	"testing"
)

func testObstacleAt(t *testing.T, kind ObstacleKind, x float64) *Obstacle {
	t.Helper()
	typ := typeByKind(t, kind)
	rng := rand.New(rand.NewSource(1))
	o := newObstacle(typ, rng, 9, 0.6, 1)
	o.XPos = x
	return o
}

func TestCollisionFarApart(t *testing.T) {
	p := newTestPlayer(1)
	p.reset()
	o := testObstacleAt(t, CactusSmall, 300)

	if checkForCollision(o, p) {
		t.Error("collision reported with obstacle far to the right")
	}
}

func TestCollisionOverlap(t *testing.T) {
	p := newTestPlayer(1)
	p.reset()
	// Small cactus straight on top of the running actor.
	o := testObstacleAt(t, CactusSmall, p.XPos+10)

	if !checkForCollision(o, p) {
		t.Error("no collision reported with overlapping cactus")
	}
}

func TestCollisionGrazingEdgeIgnored(t *testing.T) {
	p := newTestPlayer(1)
	p.reset()
	// Sprites touch by a single pixel; the shrunk bounding boxes make
	// this a near miss, keeping grazing contact forgiving.
	o := testObstacleAt(t, CactusSmall, p.XPos+playerWidth-1)

	if checkForCollision(o, p) {
		t.Error("grazing sprite edge reported as collision")
	}
}

func TestCollisionJumpClears(t *testing.T) {
	p := newTestPlayer(1)
	p.reset()
	o := testObstacleAt(t, CactusSmall, p.XPos+10)

	// Lift the actor well above the cactus (height 35, top at y 105).
	p.YPos = 20

	if checkForCollision(o, p) {
		t.Error("collision reported while airborne above the obstacle")
	}
}

func TestCollisionDuckUnderFlyer(t *testing.T) {
	p := newTestPlayer(1)
	p.reset()

	// Flyer at its middle lane (y 75, boxes down to y 102) hits the
	// standing actor's head (from y 93) but passes over the ducking
	// profile (single box from y 111).
	o := testObstacleAt(t, Pterodactyl, p.XPos)
	o.YPos = 75

	if !checkForCollision(o, p) {
		t.Error("standing actor should hit the low flyer")
	}

	p.SetDuck(true)
	if checkForCollision(o, p) {
		t.Error("ducking actor should pass under the flyer")
	}
}

func TestCollisionUsesDuckBoxes(t *testing.T) {
	p := newTestPlayer(1)
	p.reset()
	p.SetDuck(true)

	if got, want := len(p.CollisionBoxes()), 1; got != want {
		t.Fatalf("duck collision boxes = %d, want %d", got, want)
	}

	// The wide duck profile still hits ground obstacles.
	o := testObstacleAt(t, CactusSmall, p.XPos+10)
	if !checkForCollision(o, p) {
		t.Error("ducking actor should still hit a ground cactus")
	}
}
