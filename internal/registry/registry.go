// Package registry provides a global registry of level packs.
// Packs register themselves in init() functions, allowing the platform
// to discover and load them without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
)

// ErrUnknownPack is returned by Create for ids nobody registered.
var ErrUnknownPack = errors.New("registry: unknown pack")

// PackInfo contains metadata about a registered pack.
type PackInfo struct {
	ID     string
	Title  string
	Levels int
}

// Factory loads a fresh copy of a pack.
type Factory func() (levels.Pack, error)

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]PackInfo)
	mu        sync.RWMutex
)

// Register adds a pack factory to the registry.
// Typically called from a pack package's init() function.
// Panics if a pack with the same ID is already registered or the factory
// cannot load it.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: pack %q already registered", id))
	}

	// Load once to capture the title and level count
	p, err := f()
	if err != nil {
		panic(fmt.Sprintf("registry: pack %q: %v", id, err))
	}

	factories[id] = f
	infos[id] = PackInfo{ID: id, Title: p.Title(), Levels: p.Len()}
}

// List returns information about all registered packs, sorted by ID.
func List() []PackInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PackInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create loads a registered pack by its ID.
func Create(id string) (levels.Pack, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return levels.Pack{}, fmt.Errorf("%w %q", ErrUnknownPack, id)
	}
	return f()
}

// Exists checks if a pack with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// unregister removes a pack; tests use it to clean up.
func unregister(id string) {
	mu.Lock()
	defer mu.Unlock()

	delete(factories, id)
	delete(infos, id)
}
