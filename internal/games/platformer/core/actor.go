package core

import (
	"fmt"
	"reflect"
)

// Actor is a positioned, sized, optionally moving rectangle taking part in
// collisions. The set of actor variants is closed to this package.
type Actor interface {
	// Kind returns the actor family tag.
	Kind() Kind

	Pos() Vector
	Size() Vector
	Velocity() Vector

	// SetPos and SetVelocity let drivers layered on top of the core
	// (player control) move an actor between ticks.
	SetPos(pos Vector)
	SetVelocity(v Vector)

	Left() float64
	Top() float64
	Right() float64
	Bottom() float64

	// Overlaps reports whether two distinct actors intersect with positive
	// area on both axes. An actor never overlaps itself.
	Overlaps(other Actor) (bool, error)

	// Update advances the actor by dt time units. The level is read for
	// obstacle queries only.
	Update(dt float64, lvl *Level)

	body() *Body
}

// Body is the base actor: a rectangle with position, size and velocity.
// Concrete actors embed it and override Kind and Update.
type Body struct {
	pos      Vector
	size     Vector
	velocity Vector
}

// NewActor creates a plain actor. Negative size components are clamped to 0.
func NewActor(pos, size, velocity Vector) *Body {
	b := &Body{}
	b.init(pos, size, velocity)
	return b
}

// DefaultActor creates a plain 1x1 actor at the origin with no velocity.
func DefaultActor() *Body {
	return NewActor(Vector{}, V(1, 1), Vector{})
}

func (b *Body) init(pos, size, velocity Vector) {
	if size.X < 0 {
		size.X = 0
	}
	if size.Y < 0 {
		size.Y = 0
	}
	b.pos = pos
	b.size = size
	b.velocity = velocity
}

func (b *Body) body() *Body {
	return b
}

// Kind returns KindActor for the base type.
func (b *Body) Kind() Kind {
	return KindActor
}

// Pos returns the top-left corner.
func (b *Body) Pos() Vector {
	return b.pos
}

// Size returns the width and height.
func (b *Body) Size() Vector {
	return b.size
}

// Velocity returns the current velocity in cells per time unit.
func (b *Body) Velocity() Vector {
	return b.velocity
}

// SetPos moves the actor.
func (b *Body) SetPos(pos Vector) {
	b.pos = pos
}

// SetVelocity replaces the actor velocity.
func (b *Body) SetVelocity(v Vector) {
	b.velocity = v
}

// Left returns the x-coordinate of the left edge.
func (b *Body) Left() float64 {
	return b.pos.X
}

// Top returns the y-coordinate of the top edge.
func (b *Body) Top() float64 {
	return b.pos.Y
}

// Right returns the x-coordinate of the right edge.
func (b *Body) Right() float64 {
	return b.pos.X + b.size.X
}

// Bottom returns the y-coordinate of the bottom edge.
func (b *Body) Bottom() float64 {
	return b.pos.Y + b.size.Y
}

// Update does nothing for the base actor.
func (b *Body) Update(float64, *Level) {}

// Overlaps implements Actor. Identity is compared, not field values: two
// actors with equal geometry still overlap each other.
func (b *Body) Overlaps(other Actor) (bool, error) {
	if isNil(other) {
		return false, fmt.Errorf("overlaps: nil actor: %w", ErrTypeMismatch)
	}
	o := other.body()
	if o == b {
		return false, nil
	}
	return b.Right() > o.Left() && b.Left() < o.Right() &&
		b.Bottom() > o.Top() && b.Top() < o.Bottom(), nil
}

// isNil catches both nil interfaces and typed nil pointers.
func isNil(a Actor) bool {
	if a == nil {
		return true
	}
	v := reflect.ValueOf(a)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
