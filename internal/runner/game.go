// Package runner implements the deterministic side-scrolling runner
// simulation: a fixed-cadence tick loop driving the player's jump/duck
// physics, procedural obstacle and cloud spawning, axis-aligned collision
// detection, distance scoring and the periodic day/night inversion.
// The package is pure logic with no external dependencies; the platform
// handles input mapping, timing, rendering and persistence.
package runner

import (
	"math"
	"math/rand"

	"trexrunner/internal/config"
	"trexrunner/internal/core"
)

// The simulation runs in a fixed virtual space at a nominal frame rate;
// the host renders it scaled into terminal cells.
const (
	simWidth   = 600
	simHeight  = 150
	simFPS     = 60
	msPerFrame = 1000.0 / simFPS

	introDuration     = 1500 // ms of rollout before obstacles matter
	gameOverClearTime = 750  // ms after a crash before restart is accepted
	minIntroWidth     = 60   // Narrower screens skip the intro rollout
)

// Phase is the top-level state of a run.
type Phase int

const (
	PhaseWaiting Phase = iota
	PhaseIntro
	PhasePlaying
	PhaseCrashed
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseWaiting:
		return "Waiting"
	case PhaseIntro:
		return "Intro"
	case PhasePlaying:
		return "Playing"
	case PhaseCrashed:
		return "Crashed"
	default:
		return "Unknown"
	}
}

// Game is the runner's controller: it owns all mutable simulation state
// and advances it one tick per Step call. All mutation is confined to the
// caller's goroutine; a concurrent host must serialize Step calls.
type Game struct {
	cfg     config.RunnerConfig
	runtime core.RuntimeConfig

	rng     *rand.Rand
	player  *Player
	horizon *Horizon
	meter   *DistanceMeter

	phase  Phase
	paused bool

	distanceRan  float64
	currentSpeed float64
	runningTime  float64
	introTimer   float64
	crashTimer   float64
	invertTimer  float64
	inverted     bool

	msPerTick float64
	firstTick bool
	tickCount uint64
	cfgPinned bool // Config supplied by the caller, never reloaded

	duckHeld      bool
	lastEmitted   int // Last score sent in a ScoreChanged event
	pendingEvents []core.Event
}

// configPath and difficultyPreset are set via the CLI before creation.
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = "" // Use config default
	}
}

// New creates a new runner instance. Reset must be called before Step.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a runner with an explicit configuration,
// bypassing the config file search. Used by tests.
func NewWithConfig(cfg config.RunnerConfig) *Game {
	return &Game{cfg: cfg, cfgPinned: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "trex"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "T-Rex Runner"
}

// Reset initializes or restarts the whole simulation from the Waiting
// phase. The runtime seed makes the run deterministic.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.cfgPinned {
		cfg, err := config.LoadRunner(configPath)
		if err != nil {
			cfg = config.DefaultRunnerConfig()
		}
		if difficultyPreset != "" {
			config.ApplyRunnerPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
	}

	if runtime.TickRate <= 0 {
		runtime.TickRate = simFPS
		g.runtime.TickRate = simFPS
	}
	g.msPerTick = 1000.0 / float64(runtime.TickRate)

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.player = newPlayer(g.cfg.Physics, g.cfg.Player, g.rng)
	g.horizon = newHorizon(g.cfg.Spawn, g.rng)
	g.meter = newDistanceMeter(g.cfg.Score)

	g.phase = PhaseWaiting
	g.paused = false
	g.distanceRan = 0
	g.currentSpeed = 0
	g.runningTime = 0
	g.introTimer = 0
	g.crashTimer = 0
	g.invertTimer = 0
	g.inverted = false
	g.firstTick = true
	g.tickCount = 0
	g.duckHeld = false
	g.lastEmitted = -1
}

// Step advances the simulation by one tick, draining the input frame.
// The first tick after Reset uses a zero time delta, so integrations are
// no-ops rather than divisions by an undefined interval.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.pendingEvents = g.pendingEvents[:0]

	deltaTime := g.msPerTick
	if g.firstTick {
		deltaTime = 0
		g.firstTick = false
	}

	// Pause toggles while a run is live; the host maps visibility loss
	// and regain onto the same action. Resuming resets any airborne
	// state so the actor never lands against stale obstacle positions.
	if in.Has(core.ActionPause) && (g.phase == PhaseIntro || g.phase == PhasePlaying) {
		g.paused = !g.paused
		if !g.paused {
			g.player.ResetAirborne()
		}
	}
	if g.paused {
		return g.result()
	}
	g.tickCount++

	switch g.phase {
	case PhaseWaiting:
		g.stepWaiting(deltaTime, in)
	case PhaseIntro, PhasePlaying:
		g.stepPlaying(deltaTime, in)
	case PhaseCrashed:
		g.stepCrashed(deltaTime, in)
	}

	return g.result()
}

// stepWaiting idles the blinking actor until the first jump input.
func (g *Game) stepWaiting(deltaTime float64, in core.InputFrame) {
	g.player.Update(deltaTime)

	if in.Has(core.ActionJumpPress) {
		g.startRun()
	}
}

// startRun leaves Waiting on the first jump. Unconstrained viewports get
// the intro rollout; narrow ones go straight to Playing.
func (g *Game) startRun() {
	g.currentSpeed = g.cfg.Speed.Base
	g.player.reset()
	g.player.StartJump(g.currentSpeed)
	g.emit(core.Event{Kind: core.EventSoundButtonPress})

	if g.runtime.ScreenW >= minIntroWidth {
		g.phase = PhaseIntro
		g.introTimer = 0
	} else {
		g.phase = PhasePlaying
	}
}

// stepPlaying runs one live tick in the mandated order: actor physics,
// horizon advance, collision, distance/speed accrual, score update,
// inversion timer.
func (g *Game) stepPlaying(deltaTime float64, in core.InputFrame) {
	g.handlePlayingInput(in)

	g.runningTime += deltaTime
	if g.phase == PhaseIntro {
		g.introTimer += deltaTime
		if g.introTimer >= introDuration {
			g.phase = PhasePlaying
		}
	}

	// 1. Actor physics.
	if g.player.Jumping() {
		g.player.UpdateJump(deltaTime, g.duckHeld)
	}
	g.player.Update(deltaTime)

	// 2. Horizon advance. Obstacles are withheld for the opening grace
	// period so a fresh run always has clear ground.
	showObstacles := g.runningTime > g.cfg.Spawn.ClearTime
	g.horizon.Update(deltaTime, g.currentSpeed, showObstacles, g.inverted)

	// 3. Collision against the nearest active obstacle.
	if showObstacles && len(g.horizon.Obstacles()) > 0 &&
		checkForCollision(g.horizon.Obstacles()[0], g.player) {
		g.crash()
		return
	}

	// 4. Distance and speed accrual; both freeze on a crash and the
	// speed never exceeds the cap.
	g.distanceRan += g.currentSpeed * deltaTime / msPerFrame
	if g.currentSpeed < g.cfg.Speed.Max {
		g.currentSpeed += g.cfg.Speed.Acceleration * deltaTime / msPerFrame
		if g.currentSpeed > g.cfg.Speed.Max {
			g.currentSpeed = g.cfg.Speed.Max
		}
	}

	// 5. Score update and achievement cue.
	if g.meter.Update(deltaTime, math.Ceil(g.distanceRan)) {
		g.emit(core.Event{Kind: core.EventSoundAchievement, Score: g.meter.Score()})
	}
	if score := g.meter.Score(); score != g.lastEmitted {
		g.lastEmitted = score
		g.emit(core.Event{
			Kind:           core.EventScoreChanged,
			Score:          score,
			IsNewHighScore: score > g.meter.HighScore(),
		})
	}

	// 6. Inversion timer: once real distance crosses a multiple of the
	// invert distance the scheme flips to night, holds for the fade
	// duration, then flips back and waits for the next multiple.
	if g.invertTimer > g.cfg.Night.InvertFadeDuration {
		g.invertTimer = 0
		g.inverted = false
	} else if g.invertTimer > 0 {
		g.invertTimer += deltaTime
	} else {
		actual := g.meter.RealDistance(math.Ceil(g.distanceRan))
		if actual > 0 && actual%g.cfg.Night.InvertDistance == 0 {
			g.invertTimer += deltaTime
			g.inverted = true
		}
	}
}

// handlePlayingInput drains the per-tick action queue.
func (g *Game) handlePlayingInput(in core.InputFrame) {
	if in.Has(core.ActionJumpPress) {
		if !g.player.Jumping() && !g.player.Ducking() {
			g.emit(core.Event{Kind: core.EventSoundButtonPress})
			g.player.StartJump(g.currentSpeed)
		}
	}
	if in.Has(core.ActionJumpRelease) {
		g.player.EndJump()
	}
	if in.Has(core.ActionDuckPress) {
		g.duckHeld = true
		if g.player.Jumping() {
			// Ducking mid-air turns into a speed drop.
			g.player.SetSpeedDrop()
		} else {
			g.player.SetDuck(true)
		}
	}
	if in.Has(core.ActionDuckRelease) {
		g.duckHeld = false
		g.player.SetDuck(false)
	}
}

// crash transitions to Crashed, freezing distance and speed.
func (g *Game) crash() {
	g.phase = PhaseCrashed
	g.crashTimer = 0
	g.player.SetCrashed()

	score := g.meter.Score()
	isNewHigh := score > g.meter.HighScore()
	g.meter.SetHighScore(score)

	g.emit(core.Event{Kind: core.EventSoundHit})
	g.emit(core.Event{
		Kind:           core.EventScoreChanged,
		Score:          score,
		IsNewHighScore: isNewHigh,
	})
}

// stepCrashed waits out the game-over hold, then accepts a restart from
// either the restart key or a fresh jump.
func (g *Game) stepCrashed(deltaTime float64, in core.InputFrame) {
	g.crashTimer += deltaTime
	if g.crashTimer < gameOverClearTime {
		return
	}
	if in.Has(core.ActionRestart) || in.Has(core.ActionJumpPress) {
		g.restart()
	}
}

// restart begins a new run immediately: distance to zero, speed back to
// base, actor running at ground level, obstacle list cleared.
func (g *Game) restart() {
	g.distanceRan = 0
	g.runningTime = 0
	g.introTimer = 0
	g.crashTimer = 0
	g.invertTimer = 0
	g.inverted = false
	g.currentSpeed = g.cfg.Speed.Base
	g.duckHeld = false
	g.lastEmitted = -1

	g.player.reset()
	g.horizon.reset()
	g.meter.reset()

	g.phase = PhasePlaying
	g.emit(core.Event{Kind: core.EventSoundButtonPress})
}

// emit queues an outbound event for this tick's StepResult.
func (g *Game) emit(e core.Event) {
	g.pendingEvents = append(g.pendingEvents, e)
}

// result snapshots the platform-facing state plus this tick's events.
func (g *Game) result() core.StepResult {
	events := make([]core.Event, len(g.pendingEvents))
	copy(events, g.pendingEvents)
	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current platform-facing game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.meter.Score(),
		HighScore: g.meter.HighScore(),
		GameOver:  g.phase == PhaseCrashed,
		Paused:    g.paused,
		Inverted:  g.inverted,
	}
}

// SetHighScore seeds the session high score from the host's store.
func (g *Game) SetHighScore(score int) {
	g.meter.SetHighScore(score)
}

// Phase returns the current top-level phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Speed returns the current scroll speed.
func (g *Game) Speed() float64 {
	return g.currentSpeed
}

// DistanceRan returns the raw scrolled distance in simulation pixels.
func (g *Game) DistanceRan() float64 {
	return g.distanceRan
}

// Inverted reports whether the night scheme is active.
func (g *Game) Inverted() bool {
	return g.inverted
}

// Player exposes the actor for rendering and tests.
func (g *Game) Player() *Player {
	return g.player
}

// Horizon exposes the scrolling domain for rendering and tests.
func (g *Game) Horizon() *Horizon {
	return g.horizon
}

// Meter exposes the score tracker for rendering and tests.
func (g *Game) Meter() *DistanceMeter {
	return g.meter
}
