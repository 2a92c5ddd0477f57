// Package core provides the platform-level types shared by the game driver
// and the terminal front end: screen buffer, input frames, runtime config
// and the camera viewport. It has no Bubble Tea dependency.
package core

// Rect is an integer screen-space rectangle, used for boxes and panels.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a new rectangle.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Viewport is the window of world cells visible on screen.
// X and Y are the world coordinates of the top-left visible cell.
type Viewport struct {
	X, Y float64
	W, H float64
}

// NewViewport creates a viewport of w x h cells at the origin.
func NewViewport(w, h int) Viewport {
	return Viewport{W: float64(w), H: float64(h)}
}

// Follow scrolls the viewport so the point (cx, cy) stays inside the middle
// band of the view, without scrolling past the world edges.
func (v Viewport) Follow(cx, cy float64, worldW, worldH int) Viewport {
	marginX := v.W / 3
	marginY := v.H / 3

	if cx < v.X+marginX {
		v.X = cx - marginX
	} else if cx > v.X+v.W-marginX {
		v.X = cx + marginX - v.W
	}
	if cy < v.Y+marginY {
		v.Y = cy - marginY
	} else if cy > v.Y+v.H-marginY {
		v.Y = cy + marginY - v.H
	}

	v.X = ClampF(v.X, 0, maxF(0, float64(worldW)-v.W))
	v.Y = ClampF(v.Y, 0, maxF(0, float64(worldH)-v.H))
	return v
}

// ToScreen converts world coordinates to screen cell coordinates.
func (v Viewport) ToScreen(wx, wy float64) (int, int) {
	return floorInt(wx - v.X), floorInt(wy - v.Y)
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func floorInt(f float64) int {
	i := int(f)
	if f < 0 && float64(i) != f {
		i--
	}
	return i
}
