// Package levels loads, validates and watches level packs.
// This package depends on core but core does not depend on levels.
package levels

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/core"
)

var (
	// ErrPackNotFound is returned when no pack has the requested id.
	ErrPackNotFound = errors.New("levels: pack not found")

	// ErrLevelNotFound is returned for a level index outside the pack.
	ErrLevelNotFound = errors.New("levels: level not found")
)

// Level is one layout of a pack.
type Level struct {
	Name string
	Rows []string
}

// Pack is an ordered list of levels played one after another.
type Pack struct {
	ID       string
	Name     string
	Levels   []Level
	FilePath string // empty for embedded packs
}

// Title returns the display name, falling back to the id.
func (p Pack) Title() string {
	if p.Name != "" {
		return p.Name
	}
	return p.ID
}

// Len returns the number of levels.
func (p Pack) Len() int {
	return len(p.Levels)
}

// Level returns the level at zero-based index i.
func (p Pack) Level(i int) (Level, error) {
	if i < 0 || i >= len(p.Levels) {
		return Level{}, fmt.Errorf("%w: %d of %d in %s", ErrLevelNotFound, i+1, len(p.Levels), p.ID)
	}
	return p.Levels[i], nil
}

// Summary describes what a level layout parses into.
type Summary struct {
	Width     int
	Height    int
	Players   int
	Coins     int
	Fireballs int
}

// Summarize parses rows with the default symbols and counts what they hold.
func Summarize(rows []string) Summary {
	// Coin phases do not affect counts; any seed will do.
	p := core.NewParser(core.DefaultDictionary(rand.New(rand.NewSource(1))))
	lvl := p.Parse(rows)

	s := Summary{Width: lvl.Width(), Height: lvl.Height()}
	for _, a := range lvl.Actors() {
		switch a.Kind() {
		case core.KindPlayer:
			s.Players++
		case core.KindCoin:
			s.Coins++
		case core.KindFireball:
			s.Fireballs++
		}
	}
	return s
}

// Validate checks that every level of the pack is playable: it must place
// exactly one player and at least one coin.
func (p Pack) Validate() error {
	if len(p.Levels) == 0 {
		return fmt.Errorf("pack %s has no levels", p.ID)
	}
	for i, lvl := range p.Levels {
		s := Summarize(lvl.Rows)
		if s.Players != 1 {
			return fmt.Errorf("pack %s level %d: want exactly one player, found %d", p.ID, i+1, s.Players)
		}
		if s.Coins == 0 {
			return fmt.Errorf("pack %s level %d: no coins", p.ID, i+1)
		}
	}
	return nil
}
