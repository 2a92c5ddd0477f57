// Package core provides the simulation core of the platformer: vectors, actors,
// the level grid and its win/lose state machine, and the text level parser.
// This package is UI-agnostic and never schedules its own ticks.
package core

import "fmt"

// Vector is an immutable 2D point or displacement.
// X increases to the right, Y increases downward (screen coordinates).
type Vector struct {
	X float64
	Y float64
}

// V is a convenience constructor for Vector.
func V(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Plus returns the coordinate-wise sum of two vectors.
func (v Vector) Plus(other Vector) Vector {
	return Vector{X: v.X + other.X, Y: v.Y + other.Y}
}

// Times returns the vector scaled by k.
func (v Vector) Times(k float64) Vector {
	return Vector{X: v.X * k, Y: v.Y * k}
}

// String returns a string representation of the vector.
func (v Vector) String() string {
	return fmt.Sprintf("(%g,%g)", v.X, v.Y)
}
