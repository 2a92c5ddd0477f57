package core

import (
	"math"
	"math/rand"
)

// Coin animation constants.
const (
	CoinSpringSpeed = 8.0
	CoinSpringDist  = 0.07
)

// coinOffset nudges the 0.6x0.6 coin toward the middle of its cell.
var coinOffset = V(0.2, 0.1)

// Coin is a collectible that bobs vertically around its spawn cell.
// It never moves horizontally and never queries the grid.
type Coin struct {
	Body
	basePos Vector
	spring  float64
}

// NewCoin creates a coin at the given cell with an explicit phase.
func NewCoin(pos Vector, phase float64) *Coin {
	c := &Coin{basePos: pos, spring: phase}
	c.init(pos.Plus(coinOffset), V(0.6, 0.6), Vector{})
	return c
}

// RandomPhase draws a spring phase in [0, 2π) so coins animate out of sync.
func RandomPhase(rng *rand.Rand) float64 {
	return rng.Float64() * 2 * math.Pi
}

// Kind returns KindCoin.
func (c *Coin) Kind() Kind {
	return KindCoin
}

// BasePos returns the spawn cell the coin bobs around.
func (c *Coin) BasePos() Vector {
	return c.basePos
}

// Phase returns the current spring phase.
func (c *Coin) Phase() float64 {
	return c.spring
}

// Update advances the spring and recomputes the bobbing position.
func (c *Coin) Update(dt float64, _ *Level) {
	c.spring += CoinSpringSpeed * dt
	wobble := V(0, CoinSpringDist*math.Sin(c.spring))
	c.pos = c.basePos.Plus(wobble).Plus(coinOffset)
}
