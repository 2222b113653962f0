package gamemath

import (
	"math"

	math2 "github.com/yohamta/donburi/features/math"
)

// Length returns the Euclidean length of v.
func Length(v math2.Vec2) float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b math2.Vec2) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Normalize returns v scaled to unit length. The zero vector stays zero.
func Normalize(v math2.Vec2) math2.Vec2 {
	l := Length(v)
	if l == 0 {
		return math2.Vec2{}
	}
	return math2.Vec2{X: v.X / l, Y: v.Y / l}
}

// Add returns a + b.
func Add(a, b math2.Vec2) math2.Vec2 {
	return math2.Vec2{X: a.X + b.X, Y: a.Y + b.Y}
}

// Sub returns a - b.
func Sub(a, b math2.Vec2) math2.Vec2 {
	return math2.Vec2{X: a.X - b.X, Y: a.Y - b.Y}
}

// Scale returns v * s.
func Scale(v math2.Vec2, s float64) math2.Vec2 {
	return math2.Vec2{X: v.X * s, Y: v.Y * s}
}

// Lerp interpolates from a to b. t is not clamped.
func Lerp(a, b math2.Vec2, t float64) math2.Vec2 {
	return math2.Vec2{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
