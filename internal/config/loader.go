package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "platformer.yaml"

// Load loads the platformer configuration.
// Search order: customPath -> ~/.platformer/configs/platformer.yaml ->
// ./configs/platformer.yaml -> embedded default.
//
// Files are decoded over the defaults, so a partial file only overrides the
// keys it names.
func Load(customPath string) (PlatformerConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return PlatformerConfig{}, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return PlatformerConfig{}, fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	var cfg PlatformerConfig
	if err := yaml.Unmarshal(defaultPlatformerYAML, &cfg); err != nil {
		return DefaultPlatformerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the hardcoded defaults and validates the result.
func Parse(data []byte) (PlatformerConfig, error) {
	cfg := DefaultPlatformerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PlatformerConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return PlatformerConfig{}, err
	}
	return cfg, nil
}

// Validate reports values the simulation cannot run with.
func (c PlatformerConfig) Validate() error {
	switch {
	case c.Physics.MaxStep <= 0:
		return fmt.Errorf("physics.max_step must be positive, got %v", c.Physics.MaxStep)
	case c.Physics.Gravity < 0:
		return fmt.Errorf("physics.gravity must not be negative, got %v", c.Physics.Gravity)
	case c.Physics.HoldTime < 0:
		return fmt.Errorf("physics.hold_time must not be negative, got %v", c.Physics.HoldTime)
	case c.Level.FinishDelay < 0:
		return fmt.Errorf("level.finish_delay must not be negative, got %v", c.Level.FinishDelay)
	case c.Level.Lives < 1:
		return fmt.Errorf("level.lives must be at least 1, got %d", c.Level.Lives)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".platformer", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *PlatformerConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Level.Lives = 5
	case DifficultyHard:
		cfg.Level.Lives = 2
	}
}
