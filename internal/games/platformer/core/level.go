package core

import (
	"fmt"
	"math"
)

// DefaultFinishDelay is how long a decided level keeps animating before it
// reports finished.
const DefaultFinishDelay = 1.0

// Level owns the static grid and the live actors, and tracks the outcome.
type Level struct {
	grid   Grid
	width  int
	actors []Actor
	player Actor

	// Status is StatusPlaying until the first terminal transition.
	Status Status

	// FinishDelay counts down after a terminal status. The driver decrements
	// it; the level only compares it.
	FinishDelay float64

	coinsTotal int
}

// NewLevel creates a level from a grid and its initial actors.
func NewLevel(grid Grid, actors []Actor) *Level {
	l := &Level{
		grid:        grid,
		width:       grid.Width(),
		actors:      make([]Actor, 0, len(actors)),
		Status:      StatusPlaying,
		FinishDelay: DefaultFinishDelay,
	}
	for _, a := range actors {
		if isNil(a) {
			continue
		}
		l.actors = append(l.actors, a)
		if l.player == nil && a.Kind() == KindPlayer {
			l.player = a
		}
		if a.Kind() == KindCoin {
			l.coinsTotal++
		}
	}
	return l
}

// Grid returns the obstacle grid. Callers must not modify it.
func (l *Level) Grid() Grid {
	return l.grid
}

// Width returns the grid width in cells.
func (l *Level) Width() int {
	return l.width
}

// Height returns the grid height in cells.
func (l *Level) Height() int {
	return l.grid.Height()
}

// Player returns the level's player, or nil if the layout has none.
func (l *Level) Player() Actor {
	return l.player
}

// Actors returns a snapshot of the live actors. Removing actors while
// iterating the snapshot is safe.
func (l *Level) Actors() []Actor {
	out := make([]Actor, len(l.actors))
	copy(out, l.actors)
	return out
}

// ActorAt returns the first live actor other than probe that overlaps it,
// or nil if there is none.
func (l *Level) ActorAt(probe Actor) (Actor, error) {
	if isNil(probe) {
		return nil, fmt.Errorf("actor at: nil probe: %w", ErrTypeMismatch)
	}
	for _, a := range l.actors {
		hit, err := a.Overlaps(probe)
		if err != nil {
			return nil, err
		}
		if hit {
			return a, nil
		}
	}
	return nil, nil
}

// ObstacleAt returns the first obstacle touched by the rectangle at pos with
// the given size. Partially covered cells count. Leaving the grid to the
// left, right or top is a wall; falling out the bottom is lava.
func (l *Level) ObstacleAt(pos, size Vector) Obstacle {
	left := int(math.Floor(pos.X))
	right := int(math.Ceil(pos.X + size.X))
	top := int(math.Floor(pos.Y))
	bottom := int(math.Ceil(pos.Y + size.Y))

	if left < 0 || right > l.width || top < 0 {
		return ObstacleWall
	}
	if bottom > l.grid.Height() {
		return ObstacleLava
	}

	for y := top; y < bottom; y++ {
		for x := left; x < right; x++ {
			if o := l.grid.At(x, y); o != ObstacleNone {
				return o
			}
		}
	}
	return ObstacleNone
}

// RemoveActor retires the first actor identical to a. It is a no-op when a
// is not live.
func (l *Level) RemoveActor(a Actor) {
	if isNil(a) {
		return
	}
	target := a.body()
	for i, live := range l.actors {
		if live.body() == target {
			l.actors = append(l.actors[:i], l.actors[i+1:]...)
			return
		}
	}
}

// NoMoreActors reports whether no live actor has the given kind.
func (l *Level) NoMoreActors(kind Kind) bool {
	for _, a := range l.actors {
		if a.Kind() == kind {
			return false
		}
	}
	return true
}

// PlayerTouched applies the effect of the player touching something of the
// given kind. The first terminal transition wins; later calls are ignored.
func (l *Level) PlayerTouched(kind Kind, touched Actor) {
	if l.Status.Terminal() {
		return
	}
	switch kind {
	case KindLava, KindFireball:
		l.Status = StatusLost
	case KindCoin:
		l.RemoveActor(touched)
		if l.NoMoreActors(KindCoin) {
			l.Status = StatusWon
		}
	}
}

// IsFinished reports whether the level is decided and its finish delay has
// run out.
func (l *Level) IsFinished() bool {
	return l.Status.Terminal() && l.FinishDelay < 0
}

// CoinsTotal returns the number of coins the level started with.
func (l *Level) CoinsTotal() int {
	return l.coinsTotal
}

// CoinsLeft returns the number of coins still live.
func (l *Level) CoinsLeft() int {
	n := 0
	for _, a := range l.actors {
		if a.Kind() == KindCoin {
			n++
		}
	}
	return n
}
