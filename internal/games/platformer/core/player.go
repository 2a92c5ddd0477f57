package core

// PlayerSize is the player's bounding box.
var PlayerSize = V(0.8, 1.5)

// Player marks the controllable actor. The core only guarantees its geometry;
// movement comes from the driver.
type Player struct {
	Body
	spawn Vector
}

// NewPlayer creates a player on the given cell, raised by half a cell so its
// feet line up with the bottom of the cell.
func NewPlayer(pos Vector) *Player {
	p := &Player{spawn: pos}
	p.init(pos.Plus(V(0, -0.5)), PlayerSize, Vector{})
	return p
}

// Kind returns KindPlayer.
func (p *Player) Kind() Kind {
	return KindPlayer
}

// Spawn returns the cell the player was created on.
func (p *Player) Spawn() Vector {
	return p.spawn
}
