package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLanes() Lanes {
	return NewLanes([LaneCount]float64{200, 400, 600})
}

func testPerspective() Perspective {
	return Perspective{
		WorldDepth: 10,
		MinScale:   0.3,
		MaxScale:   1.0,
		HorizonY:   100,
		BottomY:    600,
		CenterX:    400,
	}
}

func TestLanesX(t *testing.T) {
	l := testLanes()

	tests := []struct {
		lane     int
		expected float64
	}{
		{0, 200},
		{1, 400},
		{2, 600},
		{-1, 200},
		{3, 600},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, l.X(tt.lane), "lane %d", tt.lane)
	}
	assert.Equal(t, 200.0, l.Spacing())
}

func TestPerspectiveScaleAndOpacity(t *testing.T) {
	p := testPerspective()

	tests := []struct {
		z       int
		scale   float64
		opacity float64
	}{
		{0, 1.0, 1.0},
		{5, 0.65, 0.75},
		{9, 0.37, 0.55},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.scale, p.Scale(tt.z), 1e-9, "scale at z=%d", tt.z)
		assert.InDelta(t, tt.opacity, p.Opacity(tt.z), 1e-9, "opacity at z=%d", tt.z)
	}

	for z := 0; z < p.WorldDepth; z++ {
		s := p.Scale(z)
		assert.GreaterOrEqual(t, s, p.MinScale)
		assert.LessOrEqual(t, s, p.MaxScale)
		if z > 0 {
			assert.Less(t, s, p.Scale(z-1), "farther slots are smaller")
		}
	}
}

func TestPerspectiveDepthAt(t *testing.T) {
	p := testPerspective()

	tests := []struct {
		y        float64
		expected int
	}{
		{700, 0},
		{600, 0},
		{575, 0},
		{525, 1},
		{350, 5},
		{101, 9},
		{100, 9},
		{0, 9},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, p.DepthAt(tt.y), "DepthAt(%v)", tt.y)
	}
}

func TestPerspectiveProject(t *testing.T) {
	p := testPerspective()

	assert.InDelta(t, 200.0, p.Project(200, 590), 1e-9, "near row is unscaled")
	assert.InDelta(t, 400.0, p.Project(400, 150), 1e-9, "centre never moves")
	assert.Greater(t, p.Project(200, 150), 200.0, "far rows converge toward the centre")
}

func TestTileGridLayout(t *testing.T) {
	p := testPerspective()
	g := NewTileGrid(testLanes(), p)

	require.Equal(t, p.WorldDepth*GridColumns, g.Len())

	walls := 0
	for _, tile := range g.Tiles() {
		assert.Equal(t, p.DepthAt(tile.Y), tile.Z)
		assert.Equal(t, p.Scale(tile.Z), tile.Scale)
		assert.Equal(t, p.Opacity(tile.Z), tile.Opacity)
		if tile.Kind == TileWall {
			walls++
		}
	}
	assert.Equal(t, 2*p.WorldDepth, walls)
}

func TestTileGridScrollParallax(t *testing.T) {
	p := testPerspective()
	g := NewTileGrid(testLanes(), p)

	before := make([]float64, g.Len())
	for i, tile := range g.Tiles() {
		before[i] = tile.Y
	}

	g.Scroll(5)

	near := g.Tiles()[0].Y - before[0]
	far := g.Tiles()[g.Len()-1].Y - before[g.Len()-1]
	assert.InDelta(t, 5.0, near, 1e-9, "nearest slot moves at full speed")
	assert.Less(t, far, near, "farther tiles move slower")
}

func TestTileGridRecycles(t *testing.T) {
	p := testPerspective()
	g := NewTileGrid(testLanes(), p)
	size := g.Len()
	backing := &g.Tiles()[0]

	for i := 0; i < 1000; i++ {
		g.Scroll(8)
	}

	assert.Equal(t, size, g.Len(), "grid size is constant")
	assert.Same(t, backing, &g.Tiles()[0], "tiles are recycled in place")
	assert.NotZero(t, g.Recycled())

	for _, tile := range g.Tiles() {
		assert.LessOrEqual(t, tile.Y, p.BottomY)
		assert.GreaterOrEqual(t, tile.Y, p.HorizonY)
		assert.Equal(t, p.Scale(tile.Z), tile.Scale)
	}
}

func TestTileGridWrapTakesFarthestSlot(t *testing.T) {
	p := testPerspective()
	g := NewTileGrid(testLanes(), p)

	// The nearest row sits 25 units above the edge; 30 pushes it past.
	g.Scroll(30)

	tile := g.Tiles()[0]
	assert.Equal(t, p.WorldDepth-1, tile.Z)
	assert.InDelta(t, p.HorizonY+5, tile.Y, 1e-9)
	assert.Equal(t, p.Opacity(p.WorldDepth-1), tile.Opacity)
	assert.Equal(t, uint64(GridColumns), g.Recycled())
}
