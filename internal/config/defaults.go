package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the hardcoded default configuration.
// Used as the last-resort fallback when the embedded YAML cannot be parsed.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			Width:  10,
			Height: 20,
		},
		Speed: SpeedConfig{
			BaseDropMs:  1000,
			MinDropMs:   100,
			LevelStepMs: 10,
			SoftDropMs:  50,
		},
		Rules: RulesConfig{
			LinesPerLevel: 10,
			StartLevel:    1,
			FixedSpeed:    false,
		},
	}
}
