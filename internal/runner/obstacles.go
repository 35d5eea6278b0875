package runner

import (
	"math"
	"math/rand"

	"trexrunner/internal/core"
)

// ObstacleKind identifies an entry in the obstacle type table.
type ObstacleKind int

const (
	CactusSmall ObstacleKind = iota
	CactusLarge
	Pterodactyl
)

// String returns a human-readable name for the obstacle kind.
func (k ObstacleKind) String() string {
	switch k {
	case CactusSmall:
		return "CactusSmall"
	case CactusLarge:
		return "CactusLarge"
	case Pterodactyl:
		return "Pterodactyl"
	default:
		return "Unknown"
	}
}

// ObstacleType is a row of the fixed obstacle type table. Widths, heights
// and collision boxes are in simulation pixels.
type ObstacleType struct {
	Kind           ObstacleKind
	Width          float64
	Height         float64
	YPositions     []float64    // Possible vertical placements (flyers vary)
	MultipleSpeed  float64      // Below this speed, groups are forced to size 1
	MinGap         float64      // Base gap before the next spawn
	MinSpeed       float64      // Speed floor; the type never spawns below it
	CollisionBoxes []core.Box   // Relative to the obstacle's local origin
	NumFrames      int          // Animation frames; 0 means static
	FrameRate      float64      // ms per animation frame
	SpeedOffset    float64      // Per-instance speed variation (± this value)
}

// obstacleTypes is the fixed type table. The first entry must have a zero
// speed floor so selection always terminates (asserted by newHorizon).
var obstacleTypes = []ObstacleType{
	{
		Kind:          CactusSmall,
		Width:         17,
		Height:        35,
		YPositions:    []float64{105},
		MultipleSpeed: 4,
		MinGap:        120,
		MinSpeed:      0,
		CollisionBoxes: []core.Box{
			core.NewBox(0, 7, 5, 27),
			core.NewBox(4, 0, 6, 34),
			core.NewBox(10, 4, 7, 14),
		},
	},
	{
		Kind:          CactusLarge,
		Width:         25,
		Height:        50,
		YPositions:    []float64{90},
		MultipleSpeed: 7,
		MinGap:        120,
		MinSpeed:      0,
		CollisionBoxes: []core.Box{
			core.NewBox(0, 12, 7, 38),
			core.NewBox(8, 0, 7, 49),
			core.NewBox(13, 10, 10, 38),
		},
	},
	{
		Kind:          Pterodactyl,
		Width:         46,
		Height:        40,
		YPositions:    []float64{100, 75, 50},
		MultipleSpeed: 999,
		MinGap:        150,
		MinSpeed:      8.5,
		CollisionBoxes: []core.Box{
			core.NewBox(15, 15, 16, 5),
			core.NewBox(18, 21, 24, 6),
			core.NewBox(2, 14, 4, 3),
			core.NewBox(6, 10, 4, 7),
			core.NewBox(10, 8, 6, 9),
		},
		NumFrames:   2,
		FrameRate:   1000.0 / 6.0,
		SpeedOffset: 0.8,
	},
}

// Obstacle is a spawned instance of an obstacle type, scrolling leftwards.
type Obstacle struct {
	Type *ObstacleType

	XPos  float64
	YPos  float64
	Width float64 // Type width times group size
	Size  int     // Group size in [1, MaxObstacleLength]
	Gap   float64 // Distance to the next spawn's leading edge

	// SpeedOffset shifts this instance's scroll speed relative to the
	// global speed (flyers drift faster or slower than the ground).
	SpeedOffset float64

	CurrentFrame int
	frameTimer   float64

	collisionBoxes   []core.Box
	removed          bool
	followingSpawned bool
}

// newObstacle creates an obstacle at the right edge of the simulation.
func newObstacle(typ *ObstacleType, rng *rand.Rand, speed, gapCoefficient float64, maxLength int) *Obstacle {
	o := &Obstacle{
		Type: typ,
		XPos: simWidth,
	}

	o.Size = 1 + rng.Intn(maxLength)
	// Group sizes above 1 are only safe once the player moves fast enough
	// to clear the wider hitbox.
	if o.Size > 1 && typ.MultipleSpeed > speed {
		o.Size = 1
	}
	o.Width = typ.Width * float64(o.Size)

	o.YPos = typ.YPositions[rng.Intn(len(typ.YPositions))]

	// Collision boxes are cloned so group-size stretching never mutates
	// the shared type table.
	o.collisionBoxes = make([]core.Box, len(typ.CollisionBoxes))
	copy(o.collisionBoxes, typ.CollisionBoxes)

	// A group is modeled as three boxes: head, stretched middle absorbing
	// the extra width, and tail pinned to the right edge.
	if o.Size > 1 {
		o.collisionBoxes[1].W = o.Width - o.collisionBoxes[0].W - o.collisionBoxes[2].W
		o.collisionBoxes[2].X = o.Width - o.collisionBoxes[2].W
	}

	if typ.SpeedOffset > 0 {
		if rng.Float64() > 0.5 {
			o.SpeedOffset = typ.SpeedOffset
		} else {
			o.SpeedOffset = -typ.SpeedOffset
		}
	}

	o.Gap = obstacleGap(rng, o.Width, typ.MinGap, speed, gapCoefficient)
	return o
}

// obstacleGap draws the gap to the next obstacle uniformly from
// [minGap, round(1.5*minGap)], where minGap couples spacing to speed so
// density never exceeds a safe bound.
func obstacleGap(rng *rand.Rand, width, typeMinGap, speed, gapCoefficient float64) float64 {
	minGap := math.Round(width*speed + typeMinGap*gapCoefficient)
	maxGap := math.Round(minGap * 1.5)
	return float64(randRange(rng, int(minGap), int(maxGap)))
}

// randRange returns a uniform value in [min, max], inclusive.
func randRange(rng *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + rng.Intn(max-min+1)
}

// Update advances the obstacle by deltaTime milliseconds at the given
// effective speed. Off-screen obstacles are flagged removed.
func (o *Obstacle) Update(deltaTime, speed float64) {
	if o.removed {
		return
	}

	o.XPos -= math.Floor(speed * simFPS / 1000 * deltaTime)

	if o.Type.NumFrames > 0 {
		o.frameTimer += deltaTime
		if o.frameTimer >= o.Type.FrameRate {
			o.frameTimer = 0
			o.CurrentFrame = (o.CurrentFrame + 1) % o.Type.NumFrames
		}
	}

	if !o.IsVisible() {
		o.removed = true
	}
}

// IsVisible reports whether any part of the obstacle is on screen.
func (o *Obstacle) IsVisible() bool {
	return o.XPos+o.Width > 0
}

// Removed reports whether the obstacle has scrolled fully off-screen.
func (o *Obstacle) Removed() bool {
	return o.removed
}

// CollisionBoxes returns the obstacle's collision boxes relative to its
// local origin.
func (o *Obstacle) CollisionBoxes() []core.Box {
	return o.collisionBoxes
}
