package runner

import (
	"fmt"
	"math"
	"math/rand"

	"trexrunner/internal/config"
)

// maxSpawnAttempts bounds the rejection loop in addNewObstacle. After
// this many draws the spawner falls back to the first speed-eligible
// type, so an adversarial type table can never recurse unbounded.
const maxSpawnAttemptsPerType = 3

// Horizon owns everything that scrolls: the ground line, obstacles,
// clouds and the night cycle. Obstacles are kept ordered by ascending
// spawn x, oldest first.
type Horizon struct {
	Night *NightMode

	obstacles []*Obstacle
	clouds    []*Cloud

	// history is a ring of the last MaxObstacleDuplication spawned type
	// kinds, used to bound runs of identical consecutive types.
	history []ObstacleKind
	histLen int
	histPos int

	groundXPos float64

	spawn          config.RunnerSpawn
	gapCoefficient float64
	rng            *rand.Rand
}

// newHorizon creates the scrolling domain with one initial cloud.
func newHorizon(spawn config.RunnerSpawn, rng *rand.Rand) *Horizon {
	for _, t := range obstacleTypes {
		if t.MinSpeed == 0 {
			h := &Horizon{
				Night:          newNightMode(rng),
				history:        make([]ObstacleKind, spawn.MaxObstacleDuplication),
				spawn:          spawn,
				gapCoefficient: spawn.GapCoefficient,
				rng:            rng,
			}
			h.clouds = append(h.clouds, newCloud(rng))
			return h
		}
	}
	// The type table guarantees a zero-floor entry; selection could
	// otherwise spin forever at low speeds.
	panic(fmt.Sprintf("runner: obstacle type table has no entry with a zero speed floor (%d types)", len(obstacleTypes)))
}

// Obstacles returns the active obstacles, oldest first.
func (h *Horizon) Obstacles() []*Obstacle {
	return h.obstacles
}

// Clouds returns the active clouds.
func (h *Horizon) Clouds() []*Cloud {
	return h.clouds
}

// Update advances the ground, clouds, night cycle and - once the opening
// grace period is over - the obstacles, by deltaTime at the given speed.
func (h *Horizon) Update(deltaTime, speed float64, updateObstacles, showNightMode bool) {
	h.Night.Update(showNightMode, deltaTime)
	h.groundXPos = math.Mod(h.groundXPos+speed*simFPS/1000*deltaTime, simWidth)
	h.updateClouds(deltaTime, speed)
	if updateObstacles {
		h.updateObstacles(deltaTime, speed)
	}
}

// GroundOffset returns the current ground scroll offset in [0, simWidth).
func (h *Horizon) GroundOffset() float64 {
	return h.groundXPos
}

// updateObstacles moves the active obstacles and queues exactly one
// look-ahead obstacle once the last one has scrolled far enough in.
func (h *Horizon) updateObstacles(deltaTime, speed float64) {
	kept := h.obstacles[:0]
	for _, o := range h.obstacles {
		o.Update(deltaTime, speed+o.SpeedOffset)
		if !o.Removed() {
			kept = append(kept, o)
		}
	}
	h.obstacles = kept

	if len(h.obstacles) > 0 {
		last := h.obstacles[len(h.obstacles)-1]
		// One look-ahead spawn: the trailing edge plus the drawn gap must
		// be inside the visible width before the next obstacle queues.
		if !last.followingSpawned && last.IsVisible() &&
			last.XPos+last.Width+last.Gap < simWidth {
			h.addNewObstacle(speed)
			last.followingSpawned = true
		}
	} else {
		h.addNewObstacle(speed)
	}
}

// addNewObstacle selects a type uniformly at random, rejecting picks that
// fail the speed floor or would extend a same-type run past the
// duplication cap. The retry loop is bounded with a deterministic
// fallback to the first speed-eligible type.
func (h *Horizon) addNewObstacle(speed float64) {
	var typ *ObstacleType

	for attempt := 0; attempt < maxSpawnAttemptsPerType*len(obstacleTypes); attempt++ {
		candidate := &obstacleTypes[h.rng.Intn(len(obstacleTypes))]
		if candidate.MinSpeed > speed {
			continue
		}
		if h.wouldExceedDuplication(candidate.Kind) {
			continue
		}
		typ = candidate
		break
	}

	if typ == nil {
		for i := range obstacleTypes {
			if obstacleTypes[i].MinSpeed <= speed {
				typ = &obstacleTypes[i]
				break
			}
		}
	}

	h.obstacles = append(h.obstacles,
		newObstacle(typ, h.rng, speed, h.gapCoefficient, h.spawn.MaxObstacleLength))
	h.recordSpawn(typ.Kind)
}

// wouldExceedDuplication reports whether spawning kind would make a run
// of more than MaxObstacleDuplication identical consecutive types: true
// only when every slot of the history ring already holds that kind.
func (h *Horizon) wouldExceedDuplication(kind ObstacleKind) bool {
	if h.histLen < len(h.history) {
		return false
	}
	for _, k := range h.history {
		if k != kind {
			return false
		}
	}
	return true
}

// recordSpawn pushes a kind into the fixed-size history ring.
func (h *Horizon) recordSpawn(kind ObstacleKind) {
	if len(h.history) == 0 {
		return
	}
	h.history[h.histPos] = kind
	h.histPos = (h.histPos + 1) % len(h.history)
	if h.histLen < len(h.history) {
		h.histLen++
	}
}

// updateClouds runs the independent cloud density process: a candidate
// spawns when the active count is under the cap, the last cloud has
// scrolled past its own random gap, and a random draw clears the
// configured frequency.
func (h *Horizon) updateClouds(deltaTime, speed float64) {
	kept := h.clouds[:0]
	for _, c := range h.clouds {
		c.Update(deltaTime, speed)
		if !c.Removed() {
			kept = append(kept, c)
		}
	}
	h.clouds = kept

	if len(h.clouds) == 0 {
		h.clouds = append(h.clouds, newCloud(h.rng))
		return
	}

	last := h.clouds[len(h.clouds)-1]
	if len(h.clouds) < h.spawn.MaxClouds &&
		simWidth-last.XPos > last.Gap &&
		h.spawn.CloudFrequency > h.rng.Float64() {
		h.clouds = append(h.clouds, newCloud(h.rng))
	}
}

// reset clears obstacles, history and the night cycle for a restart.
// Clouds survive a restart; they are decoration, not game state.
func (h *Horizon) reset() {
	h.obstacles = h.obstacles[:0]
	h.histLen = 0
	h.histPos = 0
	h.groundXPos = 0
	h.Night.reset()
}
