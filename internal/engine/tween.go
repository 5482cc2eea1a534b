package engine

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// EaseFunc is a gween easing curve: elapsed, begin, change, duration.
type EaseFunc = ease.TweenFunc

var (
	// Linear moves at constant speed.
	Linear EaseFunc = ease.Linear
	// QuadInOut accelerates through the first half and decelerates through the second.
	QuadInOut EaseFunc = ease.InOutQuad
)

// Tween interpolates a single value over a fixed duration in milliseconds.
// Elapsed time is kept in float64 so completion is exact on the frame the
// duration is reached.
type Tween struct {
	From     float64
	To       float64
	Duration float64
	Elapsed  float64

	tw *gween.Tween
}

// NewTween creates a tween from one value to another. A nil ease is linear.
func NewTween(from, to, duration float64, fn EaseFunc) *Tween {
	if fn == nil {
		fn = Linear
	}
	return &Tween{
		From:     from,
		To:       to,
		Duration: duration,
		tw:       gween.New(float32(from), float32(to), float32(duration), fn),
	}
}

// Step advances the tween by dt milliseconds and returns the new value and
// whether the tween has completed. A completed tween reports To exactly.
func (tw *Tween) Step(dt float64) (float64, bool) {
	tw.Elapsed += dt
	return tw.Value(), tw.Done()
}

// Done reports whether the full duration has elapsed.
func (tw *Tween) Done() bool {
	return tw.Elapsed >= tw.Duration
}

// Value returns the interpolated value at the current elapsed time.
func (tw *Tween) Value() float64 {
	if tw.Done() {
		return tw.To
	}
	if tw.Elapsed <= 0 {
		return tw.From
	}
	v, _ := tw.tw.Set(float32(tw.Elapsed))
	return float64(v)
}
