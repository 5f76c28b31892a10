package game

import (
	"math"
	"testing"
)

const floatTol = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < floatTol
}

func TestVecOperations(t *testing.T) {
	a := Vec2{X: 3, Y: 4}
	b := Vec2{X: 1, Y: 2}

	if got := a.Add(b); got != (Vec2{X: 4, Y: 6}) {
		t.Errorf("Add: got %v", got)
	}
	if got := a.Sub(b); got != (Vec2{X: 2, Y: 2}) {
		t.Errorf("Sub: got %v", got)
	}
	if got := a.Scale(2); got != (Vec2{X: 6, Y: 8}) {
		t.Errorf("Scale: got %v", got)
	}
	if got := a.Dot(b); got != 11 {
		t.Errorf("Dot: got %v, want 11", got)
	}
	if got := a.Length(); got != 5 {
		t.Errorf("Length: got %v, want 5", got)
	}
	if got := a.LengthSq(); got != 25 {
		t.Errorf("LengthSq: got %v, want 25", got)
	}
}

func TestVecNormalize(t *testing.T) {
	v := Vec2{X: 3, Y: 4}.Normalize()
	if !almostEqual(v.Length(), 1) {
		t.Errorf("Normalize should give unit length, got %v", v.Length())
	}

	// Zero vector has no direction; must not NaN.
	z := Vec2{}.Normalize()
	if z != (Vec2{}) {
		t.Errorf("Normalize of zero vector should be zero, got %v", z)
	}
}

func TestFromAngle(t *testing.T) {
	// Negative angle points upward (screen coordinates, Y grows down).
	v := FromAngle(-math.Pi/2, 10)
	if !almostEqual(v.Y, -10) || !almostEqual(v.X, 0) {
		t.Errorf("FromAngle(-90deg, 10) should be straight up, got %v", v)
	}

	v = FromAngle(-math.Pi/4, 100)
	if v.Y >= 0 || v.X <= 0 {
		t.Errorf("FromAngle(-45deg) should point up-right, got %v", v)
	}
	if !almostEqual(v.Length(), 100) {
		t.Errorf("FromAngle should preserve magnitude, got %v", v.Length())
	}
}

func TestRectContainsInclusive(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 30, H: 40}

	cases := []struct {
		p    Vec2
		want bool
	}{
		{Vec2{X: 25, Y: 40}, true},  // Interior
		{Vec2{X: 10, Y: 20}, true},  // Top-left corner, boundary counts
		{Vec2{X: 40, Y: 60}, true},  // Bottom-right corner
		{Vec2{X: 10, Y: 35}, true},  // Left edge
		{Vec2{X: 9.999, Y: 35}, false},
		{Vec2{X: 40.001, Y: 35}, false},
		{Vec2{X: 25, Y: 60.001}, false},
	}
	for _, c := range cases {
		if got := r.Contains(c.p); got != c.want {
			t.Errorf("Contains(%v): got %v, want %v", c.p, got, c.want)
		}
	}
}

func TestCircleContainsInclusive(t *testing.T) {
	center := Vec2{X: 100, Y: 100}

	if !CircleContains(Vec2{X: 105, Y: 100}, center, 10) {
		t.Error("Point inside circle should be contained")
	}
	if !CircleContains(Vec2{X: 110, Y: 100}, center, 10) {
		t.Error("Point on the boundary should be contained")
	}
	if CircleContains(Vec2{X: 110.001, Y: 100}, center, 10) {
		t.Error("Point outside circle should not be contained")
	}
}

func TestDistancePointToSegment(t *testing.T) {
	a := Vec2{X: 0, Y: 0}
	b := Vec2{X: 100, Y: 0}

	// Perpendicular projection hits the segment interior.
	if d := DistancePointToSegment(Vec2{X: 50, Y: 30}, a, b); !almostEqual(d, 30) {
		t.Errorf("Perpendicular distance: got %v, want 30", d)
	}

	// Projection falls past an endpoint; distance is to the endpoint.
	if d := DistancePointToSegment(Vec2{X: -30, Y: 40}, a, b); !almostEqual(d, 50) {
		t.Errorf("Endpoint-clamped distance: got %v, want 50", d)
	}
	if d := DistancePointToSegment(Vec2{X: 130, Y: 40}, a, b); !almostEqual(d, 50) {
		t.Errorf("Endpoint-clamped distance: got %v, want 50", d)
	}

	// Degenerate segment acts as a point.
	p := Vec2{X: 10, Y: 10}
	if d := DistancePointToSegment(Vec2{X: 13, Y: 14}, p, p); !almostEqual(d, 5) {
		t.Errorf("Degenerate segment distance: got %v, want 5", d)
	}
}

func TestSegmentNormalToward(t *testing.T) {
	a := Vec2{X: 0, Y: 100}
	b := Vec2{X: 100, Y: 100}

	// Point above the segment: normal points up (negative Y).
	n, ok := SegmentNormalToward(Vec2{X: 50, Y: 90}, a, b)
	if !ok {
		t.Fatal("Normal should exist for a point off the segment")
	}
	if !almostEqual(n.X, 0) || !almostEqual(n.Y, -1) {
		t.Errorf("Normal should point toward the point, got %v", n)
	}
	if !almostEqual(n.Length(), 1) {
		t.Errorf("Normal should be unit length, got %v", n.Length())
	}

	// Point below: normal flips.
	n, ok = SegmentNormalToward(Vec2{X: 50, Y: 110}, a, b)
	if !ok || !almostEqual(n.Y, 1) {
		t.Errorf("Normal below segment should point down, got %v ok=%v", n, ok)
	}

	// Point exactly on the segment has no defined direction.
	if _, ok := SegmentNormalToward(Vec2{X: 50, Y: 100}, a, b); ok {
		t.Error("Point on segment should report no normal")
	}

	// Degenerate segment has no normal either.
	if _, ok := SegmentNormalToward(Vec2{X: 50, Y: 90}, a, a); ok {
		t.Error("Degenerate segment should report no normal")
	}
}
