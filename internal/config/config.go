// Package config provides YAML-based game configuration loading and
// difficulty management for the tetris platform.
package config

// TetrisConfig contains all tunable parameters for the game.
type TetrisConfig struct {
	Board BoardConfig `yaml:"board"`
	Speed SpeedConfig `yaml:"speed"`
	Rules RulesConfig `yaml:"rules"`
}

// BoardConfig defines the playfield dimensions in cells.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SpeedConfig defines the gravity timing curve in milliseconds.
// The fall interval at level N is base_drop_ms - level_step_ms*(N-1),
// floored at min_drop_ms.
type SpeedConfig struct {
	BaseDropMs  int `yaml:"base_drop_ms"`
	MinDropMs   int `yaml:"min_drop_ms"`
	LevelStepMs int `yaml:"level_step_ms"`
	SoftDropMs  int `yaml:"soft_drop_ms"`
}

// RulesConfig defines scoring and level progression.
type RulesConfig struct {
	LinesPerLevel int  `yaml:"lines_per_level"`
	StartLevel    int  `yaml:"start_level"`
	FixedSpeed    bool `yaml:"fixed_speed"` // When true, gravity never speeds up
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// StartLevelForPreset returns the starting level for a difficulty preset.
func StartLevelForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 1
	case DifficultyNormal:
		return 3
	case DifficultyHard:
		return 5
	default:
		return 1
	}
}

// IsFixedPreset returns true if the preset disables speed progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyTetrisPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if IsFixedPreset(preset) {
		cfg.Rules.FixedSpeed = true
		return
	}
	cfg.Rules.FixedSpeed = false
	cfg.Rules.StartLevel = StartLevelForPreset(preset)
}
