// Package config provides YAML-based configuration loading and difficulty
// management for the platformer.
package config

// PlatformerConfig contains all tunable parameters of the platformer.
type PlatformerConfig struct {
	Physics    PhysicsConfig    `yaml:"physics"`
	Level      LevelConfig      `yaml:"level"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PhysicsConfig defines player movement parameters, in cells and seconds.
type PhysicsConfig struct {
	PlayerSpeed float64 `yaml:"player_speed"` // horizontal speed, cells/s
	Gravity     float64 `yaml:"gravity"`      // cells/s^2
	JumpSpeed   float64 `yaml:"jump_speed"`   // initial upward speed, cells/s
	MaxStep     float64 `yaml:"max_step"`     // largest simulated dt per tick, seconds
	HoldTime    float64 `yaml:"hold_time"`    // how long a key press counts as held, seconds
}

// LevelConfig defines level progression parameters.
type LevelConfig struct {
	FinishDelay float64 `yaml:"finish_delay"` // seconds the level keeps running after it is decided
	Lives       int     `yaml:"lives"`
	Pack        string  `yaml:"pack"` // default pack id
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases during a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level", "time", or "none"
	MaxAt int    `yaml:"max_at"` // level index or ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // added to the time scale at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value into a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case "":
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), true
	default:
		return "", false
	}
}

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

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
