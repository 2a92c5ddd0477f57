package core

// Obstacle is a static grid marker.
type Obstacle uint8

const (
	ObstacleNone Obstacle = iota
	ObstacleWall
	ObstacleLava
)

// Kind maps the obstacle to the kind reported to PlayerTouched.
// ObstacleNone has no kind.
func (o Obstacle) Kind() Kind {
	switch o {
	case ObstacleWall:
		return KindWall
	case ObstacleLava:
		return KindLava
	default:
		return ""
	}
}

// String returns the obstacle name, or "none".
func (o Obstacle) String() string {
	if o == ObstacleNone {
		return "none"
	}
	return string(o.Kind())
}

// ObstacleFromSymbol maps the reserved level symbols to obstacles.
// Any other character is open space.
func ObstacleFromSymbol(r rune) Obstacle {
	switch r {
	case 'x':
		return ObstacleWall
	case '!':
		return ObstacleLava
	default:
		return ObstacleNone
	}
}

// Grid is the static obstacle matrix, indexed [row][column].
// Rows may be ragged; missing cells read as ObstacleNone.
type Grid [][]Obstacle

// Height returns the number of rows.
func (g Grid) Height() int {
	return len(g)
}

// Width returns the length of the longest row.
func (g Grid) Width() int {
	w := 0
	for _, row := range g {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}

// At returns the obstacle at (x, y), or ObstacleNone outside the stored cells.
func (g Grid) At(x, y int) Obstacle {
	if y < 0 || y >= len(g) || x < 0 || x >= len(g[y]) {
		return ObstacleNone
	}
	return g[y][x]
}
