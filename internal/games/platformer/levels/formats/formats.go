// Package formats provides pluggable level pack file format parsers.
package formats

import (
	"errors"
	"fmt"
)

// Pack is a parsed level pack ready for use.
type Pack struct {
	ID     string
	Name   string
	Levels []Level
}

// Level is one layout of a pack: rows of symbols, top to bottom.
type Level struct {
	Name string
	Rows []string
}

// ErrEmptyPack is returned for files that contain no levels.
var ErrEmptyPack = errors.New("pack has no levels")

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".json", ".yaml", ".yml"}
}

// Parse routes data to the parser for the given file extension.
func Parse(data []byte, ext string) (Pack, error) {
	switch ext {
	case ".json":
		return ParseJSON(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return Pack{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}

func checkLevels(levels []Level) error {
	if len(levels) == 0 {
		return ErrEmptyPack
	}
	for i, lvl := range levels {
		if len(lvl.Rows) == 0 {
			return fmt.Errorf("level %d has no rows", i+1)
		}
	}
	return nil
}
