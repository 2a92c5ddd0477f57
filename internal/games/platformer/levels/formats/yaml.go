package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLPack represents the YAML structure for a pack file.
type YAMLPack struct {
	ID     string      `yaml:"id"`
	Name   string      `yaml:"name"`
	Levels []YAMLLevel `yaml:"levels"`
}

// YAMLLevel represents a single level in YAML format.
type YAMLLevel struct {
	Name string   `yaml:"name,omitempty"`
	Rows []string `yaml:"rows"`
}

// ParseYAML parses a YAML pack file.
func ParseYAML(data []byte) (Pack, error) {
	var yp YAMLPack
	if err := yaml.Unmarshal(data, &yp); err != nil {
		return Pack{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	pack := Pack{
		ID:     yp.ID,
		Name:   yp.Name,
		Levels: make([]Level, 0, len(yp.Levels)),
	}
	for i, yl := range yp.Levels {
		name := yl.Name
		if name == "" {
			name = fmt.Sprintf("Level %d", i+1)
		}
		pack.Levels = append(pack.Levels, Level{Name: name, Rows: yl.Rows})
	}

	if err := checkLevels(pack.Levels); err != nil {
		return Pack{}, err
	}
	return pack, nil
}
