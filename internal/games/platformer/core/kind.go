package core

import "errors"

// ErrTypeMismatch is returned when an operation receives an argument that does
// not satisfy its contract (a nil actor where an actor is required).
var ErrTypeMismatch = errors.New("core: type mismatch")

// Kind identifies what an actor or obstacle is.
// Obstacle kinds share the type so PlayerTouched accepts either.
type Kind string

const (
	KindActor    Kind = "actor"
	KindFireball Kind = "fireball"
	KindCoin     Kind = "coin"
	KindPlayer   Kind = "player"
	KindWall     Kind = "wall"
	KindLava     Kind = "lava"
)

// String returns the kind name.
func (k Kind) String() string {
	return string(k)
}
