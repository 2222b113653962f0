package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	math2 "github.com/yohamta/donburi/features/math"
)

func TestAngleTo(t *testing.T) {
	origin := math2.Vec2{X: 10, Y: 10}
	tests := []struct {
		name string
		to   math2.Vec2
		want float64
	}{
		{"right", math2.Vec2{X: 20, Y: 10}, 0},
		{"down", math2.Vec2{X: 10, Y: 20}, math.Pi / 2},
		{"left", math2.Vec2{X: 0, Y: 10}, math.Pi},
		{"up", math2.Vec2{X: 10, Y: 0}, -math.Pi / 2},
		{"same point", origin, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, AngleTo(origin, tt.to), 1e-12)
		})
	}
}

func TestDirectionIsUnit(t *testing.T) {
	for _, a := range []float64{0, 0.3, math.Pi / 2, -2.5, math.Pi} {
		d := Direction(a)
		assert.InDelta(t, 1.0, Length(d), 1e-12)
		assert.InDelta(t, a, math.Atan2(d.Y, d.X), 1e-12)
	}
}

func TestStepTowardNeverOvershoots(t *testing.T) {
	tests := []struct {
		name                  string
		current, target, step float64
		want                  float64
	}{
		{"up partial", 0, 1, 0.25, 0.25},
		{"up clamps", 0.9, 1, 0.25, 1},
		{"down partial", 1, -1, 0.5, 0.5},
		{"down clamps", -0.9, -1, 0.5, -1},
		{"at target", 0.3, 0.3, 1, 0.3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, StepToward(tt.current, tt.target, tt.step), 1e-12)
		})
	}
}

func TestDegRadRoundTrip(t *testing.T) {
	assert.InDelta(t, math.Pi/4, DegToRad(45), 1e-12)
	assert.InDelta(t, 15.0, RadToDeg(DegToRad(15)), 1e-12)
}

func TestVectorHelpers(t *testing.T) {
	a := math2.Vec2{X: 1, Y: 2}
	b := math2.Vec2{X: 4, Y: 6}

	assert.InDelta(t, 5.0, Distance(a, b), 1e-12)
	assert.Equal(t, math2.Vec2{}, Normalize(math2.Vec2{}))
	assert.InDelta(t, 1.0, Length(Normalize(b)), 1e-12)
	assert.Equal(t, math2.Vec2{X: 2.5, Y: 4}, Lerp(a, b, 0.5))
	assert.Equal(t, b, Add(a, Sub(b, a)))
	assert.Equal(t, math2.Vec2{X: 2, Y: 4}, Scale(a, 2))
	assert.Equal(t, 1.0, Clamp(3, 0, 1))
	assert.Equal(t, 0.0, Clamp(-3, 0, 1))
}
