package platformer

import (
	platformcore "github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/core"
)

// controls turns discrete key presses into held directions. Terminals only
// report presses (and key repeat), so a press counts as held for a short
// window.
type controls struct {
	left  float64 // remaining hold, seconds
	right float64
	jump  float64
}

func (c *controls) update(in platformcore.InputFrame, hold, dt float64) {
	c.left -= dt
	c.right -= dt
	c.jump -= dt

	// The newest direction wins.
	switch {
	case in.Has(platformcore.ActionLeft) && !in.Has(platformcore.ActionRight):
		c.left = hold
		c.right = 0
	case in.Has(platformcore.ActionRight) && !in.Has(platformcore.ActionLeft):
		c.right = hold
		c.left = 0
	}

	if in.Has(platformcore.ActionJump) {
		c.jump = hold
	}
}

// direction returns -1, 0 or 1.
func (c *controls) direction() float64 {
	switch {
	case c.left > 0:
		return -1
	case c.right > 0:
		return 1
	default:
		return 0
	}
}

func (c *controls) jumping() bool {
	return c.jump > 0
}

// movePlayer applies running, gravity and jumping to the player. Moves into
// walls are refused; moves into lava are refused and lose the level.
func (g *Game) movePlayer(player core.Actor, dt float64) {
	phys := g.cfg.Physics

	// Horizontal
	vel := player.Velocity()
	vel.X = g.controls.direction() * phys.PlayerSpeed
	next := player.Pos().Plus(core.V(vel.X*dt, 0))
	if obstacle := g.level.ObstacleAt(next, player.Size()); obstacle != core.ObstacleNone {
		g.level.PlayerTouched(obstacle.Kind(), nil)
	} else {
		player.SetPos(next)
	}

	// Vertical
	vel.Y += phys.Gravity * dt
	next = player.Pos().Plus(core.V(0, vel.Y*dt))
	if obstacle := g.level.ObstacleAt(next, player.Size()); obstacle != core.ObstacleNone {
		g.level.PlayerTouched(obstacle.Kind(), nil)
		if g.controls.jumping() && vel.Y > 0 {
			vel.Y = -phys.JumpSpeed
			g.controls.jump = 0
		} else {
			vel.Y = 0
		}
	} else {
		player.SetPos(next)
	}

	player.SetVelocity(vel)
}
