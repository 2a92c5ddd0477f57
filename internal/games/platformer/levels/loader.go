package levels

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels/formats"
)

// Loader handles loading packs from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new pack loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all pack files.
// Returns packs sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Pack, error) {
	var packs []Pack

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !IsPackFile(path) {
			return nil
		}

		pack, err := LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}

		packs = append(packs, pack)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(packs, func(i, j int) bool {
		return packs[i].ID < packs[j].ID
	})

	return packs, nil
}

// LoadByID loads a specific pack by ID.
func (l *Loader) LoadByID(id string) (Pack, error) {
	packs, err := l.LoadAll()
	if err != nil {
		return Pack{}, err
	}

	for _, p := range packs {
		if p.ID == id {
			return p, nil
		}
	}

	return Pack{}, fmt.Errorf("%w: %s", ErrPackNotFound, id)
}

// ListIDs returns all pack IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	packs, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(packs))
	for i, p := range packs {
		ids[i] = p.ID
	}
	return ids, nil
}

// LoadFile loads and validates a single pack file.
func LoadFile(path string) (Pack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Pack{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	pack, err := Parse(filepath.Base(path), data)
	if err != nil {
		return Pack{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	pack.FilePath = path
	return pack, nil
}

// Parse decodes a pack from data, picking the format from name's extension.
// Packs without an id take it from the file name.
func Parse(name string, data []byte) (Pack, error) {
	ext := strings.ToLower(filepath.Ext(name))
	parsed, err := formats.Parse(data, ext)
	if err != nil {
		return Pack{}, err
	}

	pack := Pack{
		ID:     parsed.ID,
		Name:   parsed.Name,
		Levels: make([]Level, len(parsed.Levels)),
	}
	if pack.ID == "" {
		pack.ID = strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	}
	for i, lvl := range parsed.Levels {
		pack.Levels[i] = Level{Name: lvl.Name, Rows: lvl.Rows}
	}

	if err := pack.Validate(); err != nil {
		return Pack{}, err
	}
	return pack, nil
}

// IsPackFile reports whether path has a supported pack extension.
func IsPackFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
