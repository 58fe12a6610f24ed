package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadTetris loads the game configuration.
// Search order: customPath -> ~/.tetris/configs/tetris.yaml -> ./configs/tetris.yaml -> embedded default
func LoadTetris(customPath string) (TetrisConfig, error) {
	var cfg TetrisConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return sanitize(cfg), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("tetris.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return sanitize(cfg), nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/tetris.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return sanitize(cfg), nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultTetrisYAML, &cfg); err != nil {
		return DefaultTetrisConfig(), nil // Fallback to hardcoded if embed fails
	}
	return sanitize(cfg), nil
}

// sanitize replaces zero or nonsensical values with defaults so a partial
// config file never produces an unplayable game.
func sanitize(cfg TetrisConfig) TetrisConfig {
	def := DefaultTetrisConfig()

	if cfg.Board.Width < 4 {
		cfg.Board.Width = def.Board.Width
	}
	if cfg.Board.Height < 8 {
		cfg.Board.Height = def.Board.Height
	}
	if cfg.Speed.BaseDropMs <= 0 {
		cfg.Speed.BaseDropMs = def.Speed.BaseDropMs
	}
	if cfg.Speed.MinDropMs <= 0 {
		cfg.Speed.MinDropMs = def.Speed.MinDropMs
	}
	if cfg.Speed.LevelStepMs < 0 {
		cfg.Speed.LevelStepMs = def.Speed.LevelStepMs
	}
	if cfg.Speed.SoftDropMs <= 0 {
		cfg.Speed.SoftDropMs = def.Speed.SoftDropMs
	}
	if cfg.Rules.LinesPerLevel <= 0 {
		cfg.Rules.LinesPerLevel = def.Rules.LinesPerLevel
	}
	if cfg.Rules.StartLevel < 1 {
		cfg.Rules.StartLevel = def.Rules.StartLevel
	}
	return cfg
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tetris", "configs", filename)
}
