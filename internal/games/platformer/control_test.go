package platformer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	platformcore "github.com/vovakirdan/tui-platformer/internal/core"
)

func TestControlsHoldWindow(t *testing.T) {
	var c controls
	const hold, dt = 0.15, 0.05

	c.update(input(platformcore.ActionRight), hold, dt)
	assert.Equal(t, 1.0, c.direction())

	// Still held for two more ticks without new presses.
	c.update(input(), hold, dt)
	assert.Equal(t, 1.0, c.direction())
	c.update(input(), hold, dt)
	assert.Equal(t, 1.0, c.direction())

	c.update(input(), hold, dt)
	assert.Equal(t, 0.0, c.direction())
}

func TestControlsNewestDirectionWins(t *testing.T) {
	var c controls

	c.update(input(platformcore.ActionRight), 0.15, 0.01)
	c.update(input(platformcore.ActionLeft), 0.15, 0.01)
	assert.Equal(t, -1.0, c.direction())

	// Both at once changes nothing.
	c.update(input(platformcore.ActionLeft, platformcore.ActionRight), 0.15, 0.01)
	assert.Equal(t, -1.0, c.direction())
}

func TestControlsJump(t *testing.T) {
	var c controls
	assert.False(t, c.jumping())

	c.update(input(platformcore.ActionJump), 0.15, 0.01)
	assert.True(t, c.jumping())
}
