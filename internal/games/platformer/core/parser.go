package core

import "math/rand"

// ActorFactory builds an actor on a grid cell. Returning nil means the
// mapping entry does not produce an actor; the parser drops it.
type ActorFactory func(pos Vector) Actor

// Dictionary maps level symbols to actor factories.
type Dictionary map[rune]ActorFactory

// DefaultDictionary returns the reference symbol mapping. Coin phases are
// drawn from rng so the same seed animates the same way.
func DefaultDictionary(rng *rand.Rand) Dictionary {
	return Dictionary{
		'@': func(pos Vector) Actor { return NewPlayer(pos) },
		'v': func(pos Vector) Actor { return NewFireRain(pos) },
		'o': func(pos Vector) Actor { return NewCoin(pos, RandomPhase(rng)) },
		'=': func(pos Vector) Actor { return NewHorizontalFireball(pos) },
		'|': func(pos Vector) Actor { return NewVerticalFireball(pos) },
	}
}

// Parser turns row-based text layouts into levels.
// Columns are counted in runes.
type Parser struct {
	dict Dictionary
}

// NewParser creates a parser over a copy of dict.
func NewParser(dict Dictionary) *Parser {
	own := make(Dictionary, len(dict))
	for sym, f := range dict {
		own[sym] = f
	}
	return &Parser{dict: own}
}

// ActorFromSymbol returns the factory mapped to sym, if any.
func (p *Parser) ActorFromSymbol(sym rune) (ActorFactory, bool) {
	f, ok := p.dict[sym]
	if !ok || f == nil {
		return nil, false
	}
	return f, true
}

// CreateGrid maps every character through the obstacle symbols.
func (p *Parser) CreateGrid(rows []string) Grid {
	grid := make(Grid, 0, len(rows))
	for _, row := range rows {
		line := make([]Obstacle, 0, len(row))
		for _, r := range row {
			line = append(line, ObstacleFromSymbol(r))
		}
		grid = append(grid, line)
	}
	return grid
}

// CreateActors spawns an actor for every mapped symbol, scanning rows top
// to bottom and each row left to right. Unmapped symbols are skipped.
func (p *Parser) CreateActors(rows []string) []Actor {
	actors := make([]Actor, 0)
	for y, row := range rows {
		x := 0
		for _, r := range row {
			if f, ok := p.ActorFromSymbol(r); ok {
				if a := f(V(float64(x), float64(y))); !isNil(a) {
					actors = append(actors, a)
				}
			}
			x++
		}
	}
	return actors
}

// Parse builds a level from rows.
func (p *Parser) Parse(rows []string) *Level {
	return NewLevel(p.CreateGrid(rows), p.CreateActors(rows))
}
