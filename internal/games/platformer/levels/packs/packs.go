// Package packs embeds the built-in level packs and registers them.
package packs

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

//go:embed *.json *.yaml
var files embed.FS

// titles overrides display names for packs whose format carries none.
var titles = map[string]string{
	"classic": "Classic",
}

func init() {
	for _, name := range names() {
		pack, err := load(name)
		if err != nil {
			panic(fmt.Sprintf("packs: built-in %s: %v", name, err))
		}
		registry.Register(pack.ID, func() (levels.Pack, error) {
			return load(name)
		})
	}
}

// names lists the embedded pack files in sorted order.
func names() []string {
	entries, err := fs.ReadDir(files, ".")
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && levels.IsPackFile(e.Name()) {
			out = append(out, e.Name())
		}
	}
	sort.Strings(out)
	return out
}

func load(name string) (levels.Pack, error) {
	data, err := files.ReadFile(name)
	if err != nil {
		return levels.Pack{}, err
	}
	pack, err := levels.Parse(name, data)
	if err != nil {
		return levels.Pack{}, err
	}
	if pack.Name == "" {
		pack.Name = titles[pack.ID]
	}
	return pack, nil
}
