package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBodyIntegrate(t *testing.T) {
	b := Body{X: 400, Y: 0, W: 50, H: 50}
	b.SetVelocity(0, 250)

	frame := 1000.0 / 60.0
	for i := 0; i < 60; i++ {
		b.Integrate(frame)
	}

	assert.InDelta(t, 250.0, b.Y, 1e-6, "one second at 250 u/s")
	assert.Equal(t, 400.0, b.X)
}

func TestBodyStop(t *testing.T) {
	b := Body{Y: 100, VY: 300}
	b.Stop()
	b.Integrate(1000)

	assert.Equal(t, 100.0, b.Y)
	assert.Zero(t, b.VY)
}

func TestFirstOverlap(t *testing.T) {
	player := Body{X: 400, Y: 500, W: 50, H: 50}

	bodies := []Body{
		{X: 200, Y: 500, W: 50, H: 50},
		{X: 400, Y: 100, W: 50, H: 50},
		{X: 400, Y: 490, W: 50, H: 50},
		{X: 400, Y: 510, W: 50, H: 50},
	}

	assert.Equal(t, 2, FirstOverlap(player.Bounds(), bodies))
	assert.Equal(t, -1, FirstOverlap(player.Bounds(), bodies[:2]))
	assert.Equal(t, -1, FirstOverlap(player.Bounds(), []Body(nil)))
}
