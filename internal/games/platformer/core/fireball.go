package core

// Reference fireball velocities in cells per time unit.
var (
	HorizontalFireballSpeed = V(2, 0)
	VerticalFireballSpeed   = V(0, 2)
	FireRainSpeed           = V(0, 3)
)

// Fireball is a 1x1 hazard that moves in a straight line and bounces back
// along the same axis when its next position is obstructed.
type Fireball struct {
	Body
	rain  bool   // reset to spawn on obstacle instead of bouncing
	spawn Vector // where a rain fireball restarts
}

// NewFireball creates a bouncing fireball with an arbitrary velocity.
func NewFireball(pos, velocity Vector) *Fireball {
	f := &Fireball{}
	f.init(pos, V(1, 1), velocity)
	return f
}

// NewHorizontalFireball creates a fireball moving right at 2 cells per unit.
func NewHorizontalFireball(pos Vector) *Fireball {
	return NewFireball(pos, HorizontalFireballSpeed)
}

// NewVerticalFireball creates a fireball moving down at 2 cells per unit.
func NewVerticalFireball(pos Vector) *Fireball {
	return NewFireball(pos, VerticalFireballSpeed)
}

// NewFireRain creates a falling fireball that jumps back to its spawn
// position whenever it hits an obstacle. Its velocity never changes.
func NewFireRain(pos Vector) *Fireball {
	f := NewFireball(pos, FireRainSpeed)
	f.rain = true
	f.spawn = pos
	return f
}

// Kind returns KindFireball.
func (f *Fireball) Kind() Kind {
	return KindFireball
}

// IsRain reports whether this fireball resets instead of bouncing.
func (f *Fireball) IsRain() bool {
	return f.rain
}

// Spawn returns the position a rain fireball resets to.
func (f *Fireball) Spawn() Vector {
	return f.spawn
}

// NextPosition returns where the fireball would be after dt time units.
func (f *Fireball) NextPosition(dt float64) Vector {
	return f.pos.Plus(f.velocity.Times(dt))
}

// Update moves the fireball unless the grid blocks its next position, in
// which case it handles the obstacle and stays put for this tick.
func (f *Fireball) Update(dt float64, lvl *Level) {
	next := f.NextPosition(dt)
	if lvl.ObstacleAt(next, f.size) == ObstacleNone {
		f.pos = next
		return
	}
	f.handleObstacle()
}

func (f *Fireball) handleObstacle() {
	if f.rain {
		f.pos = f.spawn
		return
	}
	f.velocity = f.velocity.Times(-1)
}
