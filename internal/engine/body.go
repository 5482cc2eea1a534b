package engine

import "github.com/vovakirdan/lanerun/internal/core"

// Body is a box positioned by its centre and moved by a velocity given in
// canvas units per second.
type Body struct {
	X, Y   float64
	VX, VY float64
	W, H   float64
}

// Integrate moves the body by its velocity over dt milliseconds.
func (b *Body) Integrate(dt float64) {
	b.X += b.VX * dt / 1000
	b.Y += b.VY * dt / 1000
}

// SetVelocity replaces the body's velocity.
func (b *Body) SetVelocity(vx, vy float64) {
	b.VX = vx
	b.VY = vy
}

// Stop zeroes the body's velocity. The body keeps its position.
func (b *Body) Stop() {
	b.SetVelocity(0, 0)
}

// Bounds returns the body's collision box.
func (b Body) Bounds() core.RectF {
	return core.CenteredRect(b.X, b.Y, b.W, b.H)
}

// Bounded is anything that can report a collision box.
type Bounded interface {
	Bounds() core.RectF
}

// FirstOverlap returns the index of the first item whose bounds overlap a,
// or -1 when nothing overlaps.
func FirstOverlap[E Bounded](a core.RectF, items []E) int {
	for i := range items {
		if a.Intersects(items[i].Bounds()) {
			return i
		}
	}
	return -1
}
