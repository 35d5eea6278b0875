package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses it to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the platform-facing view of the game, returned by State().
type GameState struct {
	Score     int  // Current score in display units
	HighScore int  // Best score seen this session
	GameOver  bool // Whether the run has ended in a crash
	Paused    bool // Whether the game is paused
	Inverted  bool // Whether the night color scheme is active
}

// EventKind identifies a fire-and-forget notification for the host.
type EventKind int

const (
	// EventSoundButtonPress asks the audio collaborator to play the
	// button-press cue (jump started, game restarted).
	EventSoundButtonPress EventKind = iota
	// EventSoundHit is emitted on the tick a collision is detected.
	EventSoundHit
	// EventSoundAchievement is emitted exactly once per score milestone.
	EventSoundAchievement
	// EventScoreChanged carries the current score to the persistence/UI
	// collaborator. Emitted on score change and on crash.
	EventScoreChanged
)

// Event is a single outbound notification produced by a tick.
type Event struct {
	Kind           EventKind
	Score          int
	IsNewHighScore bool
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}

// Game is the interface between the simulation and the platform. The
// simulation is pure logic; the platform handles input mapping, timing,
// rendering and persistence.
type Game interface {
	// ID returns a stable identifier used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state. Called once at start and
	// again when restarting after a crash or a resize.
	Reset(cfg RuntimeConfig)

	// Step advances the simulation by one fixed tick, draining the input
	// frame. The first tick after Reset advances with a zero time delta.
	Step(in InputFrame) StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *Screen)

	// State returns the current platform-facing game state.
	State() GameState
}
