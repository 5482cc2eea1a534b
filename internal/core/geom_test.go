package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping rects", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"non-overlapping horizontal", NewRect(0, 0, 10, 10), NewRect(15, 0, 10, 10), false},
		{"adjacent vertical (no overlap)", NewRect(0, 0, 10, 10), NewRect(0, 10, 10, 10), false},
		{"contained rect", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectFIntersects(t *testing.T) {
	player := CenteredRect(400, 500, 50, 50)

	tests := []struct {
		name     string
		other    RectF
		expected bool
	}{
		{"same lane, overlapping", CenteredRect(400, 480, 50, 50), true},
		{"same lane, above", CenteredRect(400, 300, 50, 50), false},
		{"same lane, touching top edge", CenteredRect(400, 450, 50, 50), false},
		{"neighbour lane, same row", CenteredRect(600, 500, 50, 50), false},
		{"mid-transition overlap", CenteredRect(440, 500, 50, 50), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := player.Intersects(tc.other); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.other.Intersects(player); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestCenteredRect(t *testing.T) {
	r := CenteredRect(100, 50, 20, 10)

	if r.X != 90 || r.Y != 45 {
		t.Errorf("CenteredRect origin = (%v, %v), expected (90, 45)", r.X, r.Y)
	}
	if r.Right() != 110 || r.Bottom() != 55 {
		t.Errorf("CenteredRect edges = (%v, %v), expected (110, 55)", r.Right(), r.Bottom())
	}
	cx, cy := r.Center()
	if cx != 100 || cy != 50 {
		t.Errorf("Center() = (%v, %v), expected (100, 50)", cx, cy)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{1, 0, 2, 1},
		{-1, 0, 2, 0},
		{3, 0, 2, 2},
		{0, 0, 2, 0},
		{2, 0, 2, 2},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
}
