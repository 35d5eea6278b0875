// Package config provides YAML-based game configuration loading and
// difficulty presets for the runner.
package config

// RunnerConfig contains all tunable parameters of the runner simulation.
// Every field can be overridden at construction via a YAML file.
type RunnerConfig struct {
	Physics    RunnerPhysics    `yaml:"physics"`
	Speed      RunnerSpeed      `yaml:"speed"`
	Spawn      RunnerSpawn      `yaml:"spawn"`
	Night      RunnerNight      `yaml:"night"`
	Score      RunnerScore      `yaml:"score"`
	Player     RunnerPlayer     `yaml:"player"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// RunnerPhysics defines the jump and descent parameters.
type RunnerPhysics struct {
	Gravity              float64 `yaml:"gravity"`                // Downward acceleration per simulated frame
	InitialJumpVelocity  float64 `yaml:"initial_jump_velocity"`  // Negative = up; speed bonus is added on top
	DropVelocity         float64 `yaml:"drop_velocity"`          // Clamp applied when the jump key is released early
	MinJumpHeight        float64 `yaml:"min_jump_height"`        // Height at which an early release may cut the jump
	MaxJumpHeight        float64 `yaml:"max_jump_height"`        // Height at which the jump is cut automatically
	SpeedDropCoefficient float64 `yaml:"speed_drop_coefficient"` // Descent multiplier while duck is held mid-air
}

// RunnerSpeed defines the horizontal scroll speed envelope.
type RunnerSpeed struct {
	Base         float64 `yaml:"base"`         // Speed when a run starts
	Max          float64 `yaml:"max"`          // Hard cap; speed never exceeds this
	Acceleration float64 `yaml:"acceleration"` // Added every tick while playing
}

// RunnerSpawn defines obstacle and cloud generation parameters.
type RunnerSpawn struct {
	GapCoefficient         float64 `yaml:"gap_coefficient"`          // Scales each type's minimum gap
	MaxObstacleLength      int     `yaml:"max_obstacle_length"`      // Largest obstacle group size
	MaxObstacleDuplication int     `yaml:"max_obstacle_duplication"` // Longest run of identical consecutive types
	MaxClouds              int     `yaml:"max_clouds"`               // Active cloud cap
	CloudFrequency         float64 `yaml:"cloud_frequency"`          // Per-opportunity spawn probability
	ClearTime              float64 `yaml:"clear_time"`               // ms of running time before obstacles appear
}

// RunnerNight defines the day/night inversion cycle.
type RunnerNight struct {
	InvertDistance     int     `yaml:"invert_distance"`      // Real-distance multiple that triggers inversion
	InvertFadeDuration float64 `yaml:"invert_fade_duration"` // ms the inversion holds before flipping back
}

// RunnerScore defines distance-to-score conversion and milestones.
type RunnerScore struct {
	Coefficient         float64 `yaml:"coefficient"`          // Pixels scrolled -> display units
	AchievementDistance int     `yaml:"achievement_distance"` // Milestone interval in display units
	FlashDuration       float64 `yaml:"flash_duration"`       // ms per flash half-cycle
	FlashIterations     int     `yaml:"flash_iterations"`     // Number of on/off cycles per milestone
	MinDigits           int     `yaml:"min_digits"`           // Starting width of the score readout
}

// RunnerPlayer defines the idle-state blink behavior.
type RunnerPlayer struct {
	BlinkTiming   float64 `yaml:"blink_timing"`    // Upper bound of the random blink delay, ms
	MaxBlinkCount int     `yaml:"max_blink_count"` // Blinks allowed while waiting
}

// DifficultyConfig defines preset-driven scaling of the base parameters.
type DifficultyConfig struct {
	Enabled      bool    `yaml:"enabled"`
	InitialLevel float64 `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	// Scaling applied at level 1.0; interpolated linearly below that.
	SpeedBonus        float64 `yaml:"speed_bonus"`        // Added to base speed
	AccelerationBonus float64 `yaml:"acceleration_bonus"` // Added to acceleration
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyRunnerPreset modifies the config based on a difficulty preset.
func ApplyRunnerPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	level := cfg.Difficulty.InitialLevel
	cfg.Speed.Base += level * cfg.Difficulty.SpeedBonus
	cfg.Speed.Acceleration += level * cfg.Difficulty.AccelerationBonus
	if cfg.Speed.Base > cfg.Speed.Max {
		cfg.Speed.Base = cfg.Speed.Max
	}
}
