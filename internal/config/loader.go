package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRunner loads the runner configuration.
// Search order: customPath -> ~/.trex/configs/runner.yaml -> ./configs/runner.yaml -> embedded default
func LoadRunner(customPath string) (RunnerConfig, error) {
	var cfg RunnerConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, validate(cfg)
	}

	// Try user config directory
	if userCfgPath := userConfigPath("runner.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil && validate(cfg) == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/runner.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil && validate(cfg) == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultRunnerYAML, &cfg); err != nil {
		return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// validate rejects configurations the simulation cannot run with.
func validate(cfg RunnerConfig) error {
	if cfg.Speed.Base <= 0 || cfg.Speed.Max < cfg.Speed.Base {
		return fmt.Errorf("config: speed range [%v, %v] is invalid", cfg.Speed.Base, cfg.Speed.Max)
	}
	if cfg.Physics.Gravity <= 0 {
		return fmt.Errorf("config: gravity must be positive, got %v", cfg.Physics.Gravity)
	}
	if cfg.Spawn.MaxObstacleDuplication < 1 {
		return fmt.Errorf("config: max_obstacle_duplication must be at least 1, got %d", cfg.Spawn.MaxObstacleDuplication)
	}
	if cfg.Spawn.MaxObstacleLength < 1 {
		return fmt.Errorf("config: max_obstacle_length must be at least 1, got %d", cfg.Spawn.MaxObstacleLength)
	}
	if cfg.Score.Coefficient <= 0 {
		return fmt.Errorf("config: score coefficient must be positive, got %v", cfg.Score.Coefficient)
	}
	if cfg.Score.AchievementDistance < 1 {
		return fmt.Errorf("config: achievement_distance must be at least 1, got %d", cfg.Score.AchievementDistance)
	}
	if cfg.Night.InvertDistance < 1 {
		return fmt.Errorf("config: invert_distance must be at least 1, got %d", cfg.Night.InvertDistance)
	}
	return nil
}

// userConfigPath returns the path to the user config file, or empty if home
// is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".trex", "configs", filename)
}
