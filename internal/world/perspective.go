package world

// Perspective maps discrete depth slots to a scale and opacity.
// Slot 0 is nearest the camera (the bottom of the canvas) and slot
// WorldDepth-1 is at the horizon.
type Perspective struct {
	WorldDepth int
	MinScale   float64
	MaxScale   float64
	HorizonY   float64 // canvas y of the far edge
	BottomY    float64 // canvas y of the near edge
	CenterX    float64 // vanishing x
}

// Scale returns the size factor for depth slot z:
// maxScale - (z/worldDepth)*(maxScale-minScale).
func (p Perspective) Scale(z int) float64 {
	f := float64(z) / float64(p.WorldDepth)
	return p.MaxScale - f*(p.MaxScale-p.MinScale)
}

// Opacity returns the alpha for depth slot z: 1 - 0.5*(z/worldDepth).
func (p Perspective) Opacity(z int) float64 {
	return 1 - 0.5*(float64(z)/float64(p.WorldDepth))
}

// SlotHeight returns the canvas height covered by one depth slot.
func (p Perspective) SlotHeight() float64 {
	return (p.BottomY - p.HorizonY) / float64(p.WorldDepth)
}

// DepthAt returns the depth slot containing canvas y.
// Points below the near edge are slot 0, points above the horizon the last slot.
func (p Perspective) DepthAt(y float64) int {
	if y >= p.BottomY {
		return 0
	}
	if y <= p.HorizonY {
		return p.WorldDepth - 1
	}
	z := int((p.BottomY - y) / p.SlotHeight())
	if z > p.WorldDepth-1 {
		z = p.WorldDepth - 1
	}
	return z
}

// Project returns x pulled toward the vanishing centre by the scale of the
// slot containing y. Only renderers use it; simulation stays in flat
// coordinates.
func (p Perspective) Project(x, y float64) float64 {
	return p.CenterX + (x-p.CenterX)*p.Scale(p.DepthAt(y))
}
