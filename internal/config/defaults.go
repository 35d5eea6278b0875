package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration, tuned for
// a 600x150 simulation space at 60 FPS.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Physics: RunnerPhysics{
			Gravity:              0.6,
			InitialJumpVelocity:  -10,
			DropVelocity:         -5,
			MinJumpHeight:        30,
			MaxJumpHeight:        30,
			SpeedDropCoefficient: 3,
		},
		Speed: RunnerSpeed{
			Base:         6,
			Max:          13,
			Acceleration: 0.001,
		},
		Spawn: RunnerSpawn{
			GapCoefficient:         0.6,
			MaxObstacleLength:      3,
			MaxObstacleDuplication: 2,
			MaxClouds:              6,
			CloudFrequency:         0.5,
			ClearTime:              3000,
		},
		Night: RunnerNight{
			InvertDistance:     700,
			InvertFadeDuration: 12000,
		},
		Score: RunnerScore{
			Coefficient:         0.025,
			AchievementDistance: 100,
			FlashDuration:       250,
			FlashIterations:     3,
			MinDigits:           5,
		},
		Player: RunnerPlayer{
			BlinkTiming:   7000,
			MaxBlinkCount: 3,
		},
		Difficulty: DifficultyConfig{
			Enabled:           true,
			InitialLevel:      0.0,
			SpeedBonus:        2.0,
			AccelerationBonus: 0.0005,
		},
	}
}
