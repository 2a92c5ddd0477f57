package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the hardcoded platformer configuration.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Physics: PhysicsConfig{
			PlayerSpeed: 7,
			Gravity:     30,
			JumpSpeed:   17,
			MaxStep:     0.05,
			HoldTime:    0.15,
		},
		Level: LevelConfig{
			FinishDelay: 1,
			Lives:       3,
			Pack:        "classic",
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultPlatformerYAML
}
