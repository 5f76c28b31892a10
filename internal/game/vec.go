// Package game implements the orbfall simulation core: continuous
// 2D physics for a single orb, procedural arena generation, and the
// session scoring state machine. It is pure logic with no terminal
// dependencies so every property can be tested tick by tick.
package game

import "math"

// Vec2 is a 2D float64 vector. Pure value type.
type Vec2 struct {
	X, Y float64
}

// Add returns the sum of two vectors.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies the vector by a scalar.
func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

// Dot returns the dot product of two vectors.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Length returns the magnitude of the vector.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LengthSq returns the squared magnitude, avoiding the sqrt.
func (v Vec2) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns a unit vector in the same direction, or the zero
// vector when the input has zero length.
func (v Vec2) Normalize() Vec2 {
	length := v.Length()
	if length == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / length, Y: v.Y / length}
}

// FromAngle creates a vector from an angle in radians and a magnitude.
func FromAngle(angle, magnitude float64) Vec2 {
	return Vec2{
		X: magnitude * math.Cos(angle),
		Y: magnitude * math.Sin(angle),
	}
}

// Rect is an axis-aligned rectangle in arena coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether p lies inside the rectangle, bounds
// inclusive.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// CircleContains reports whether p lies inside the circle, boundary
// inclusive. Uses squared distances to avoid the sqrt.
func CircleContains(p, center Vec2, radius float64) bool {
	return p.Sub(center).LengthSq() <= radius*radius
}

// DistancePointToSegment returns the Euclidean distance from p to the
// closest point on segment a-b. A degenerate segment (a == b) is
// treated as a point.
func DistancePointToSegment(p, a, b Vec2) float64 {
	ab := b.Sub(a)
	lenSq := ab.LengthSq()
	if lenSq == 0 {
		return p.Sub(a).Length()
	}

	t := p.Sub(a).Dot(ab) / lenSq
	t = math.Max(0, math.Min(1, t))

	closest := a.Add(ab.Scale(t))
	return p.Sub(closest).Length()
}

// SegmentNormalToward returns the unit vector from the closest point
// on segment a-b toward p. Returns ok=false when p coincides with the
// segment or the segment is degenerate, since no direction exists.
func SegmentNormalToward(p, a, b Vec2) (Vec2, bool) {
	ab := b.Sub(a)
	lenSq := ab.LengthSq()
	if lenSq == 0 {
		return Vec2{}, false
	}

	t := p.Sub(a).Dot(ab) / lenSq
	t = math.Max(0, math.Min(1, t))

	closest := a.Add(ab.Scale(t))
	away := p.Sub(closest)
	if away.LengthSq() == 0 {
		return Vec2{}, false
	}
	return away.Normalize(), true
}
