// Package gamemath holds the pure 2D helpers shared by the simulation and its
// renderers. Angles are radians measured from +X toward +Y (screen down).
package gamemath

import (
	"math"

	math2 "github.com/yohamta/donburi/features/math"
)

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// AngleTo returns the angle of the vector from -> to. Coincident points give 0.
func AngleTo(from, to math2.Vec2) float64 {
	return math.Atan2(to.Y-from.Y, to.X-from.X)
}

// Direction returns the unit vector for angle.
func Direction(angle float64) math2.Vec2 {
	return math2.Vec2{X: math.Cos(angle), Y: math.Sin(angle)}
}

// StepToward moves current toward target by at most step and never past it.
func StepToward(current, target, step float64) float64 {
	if current < target {
		return math.Min(current+step, target)
	}
	if current > target {
		return math.Max(current-step, target)
	}
	return current
}

// WithinEpsilon reports whether a and b differ by no more than eps.
func WithinEpsilon(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
