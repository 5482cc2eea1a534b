// Package world models the lane runner's playfield: the three lanes, the
// perspective function used to fake depth, and the recycled floor tile grid.
package world

import "github.com/vovakirdan/lanerun/internal/core"

// LaneCount is the number of lanes. The game is built around exactly three.
const LaneCount = 3

// Lanes holds the fixed centre x-coordinate of every lane.
type Lanes struct {
	xs [LaneCount]float64
}

// NewLanes creates a lane set from left-to-right centre coordinates.
func NewLanes(xs [LaneCount]float64) Lanes {
	return Lanes{xs: xs}
}

// X returns the centre x-coordinate of lane i. Out-of-range indices are
// clamped, so the result is always one of the three lane positions.
func (l Lanes) X(i int) float64 {
	return l.xs[l.Clamp(i)]
}

// Clamp restricts a lane index to [0, LaneCount-1].
func (l Lanes) Clamp(i int) int {
	return core.Clamp(i, 0, LaneCount-1)
}

// Spacing returns the distance between adjacent lane centres.
func (l Lanes) Spacing() float64 {
	return (l.xs[LaneCount-1] - l.xs[0]) / float64(LaneCount-1)
}
