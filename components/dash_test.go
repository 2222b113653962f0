package components

import (
	"errors"
	"math"
	"testing"

	cfg "github.com/automoto/telegraph/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	math2 "github.com/yohamta/donburi/features/math"
)

func newDash(t *testing.T, pos math2.Vec2) DashData {
	t.Helper()
	d, err := NewDashData(pos, cfg.DashConfig{
		MaxDistance:  250,
		Delay:        0.13,
		Duration:     0.13,
		GhostSpacing: 8,
	})
	require.NoError(t, err)
	return d
}

func newTrail(t *testing.T) GhostTrailData {
	t.Helper()
	trail, err := NewGhostTrailData(200, 0.35)
	require.NoError(t, err)
	return trail
}

func TestNewDashDataValidation(t *testing.T) {
	bad := []cfg.DashConfig{
		{MaxDistance: 250, Delay: 0.1, Duration: 0, GhostSpacing: 8},
		{MaxDistance: 250, Delay: -1, Duration: 0.1, GhostSpacing: 8},
		{MaxDistance: -1, Delay: 0.1, Duration: 0.1, GhostSpacing: 8},
		{MaxDistance: 250, Delay: 0.1, Duration: 0.1, GhostSpacing: 0},
		{MaxDistance: 250, Delay: 0.1, Duration: math.NaN(), GhostSpacing: 8},
		{MaxDistance: 250, Delay: math.NaN(), Duration: 0.1, GhostSpacing: 8},
		{MaxDistance: math.Inf(1), Delay: 0.1, Duration: 0.1, GhostSpacing: 8},
		{MaxDistance: 250, Delay: 0.1, Duration: math.Inf(1), GhostSpacing: 8},
	}
	for _, c := range bad {
		_, err := NewDashData(math2.Vec2{}, c)
		assert.True(t, errors.Is(err, ErrInvalidDashConfig), "%+v", c)
	}
}

func TestTriggerClampsToMaxDistance(t *testing.T) {
	d := newDash(t, math2.Vec2{X: 400, Y: 300})
	require.True(t, d.Trigger(math2.Vec2{X: 900, Y: 300}))

	assert.Equal(t, cfg.DashPending, d.State)
	assert.Equal(t, math2.Vec2{X: 400, Y: 300}, d.Start)
	assert.InDelta(t, 650, d.End.X, 1e-9)
	assert.InDelta(t, 300, d.End.Y, 1e-9)
	assert.Equal(t, math2.Vec2{X: 1, Y: 0}, d.Direction)
	assert.InDelta(t, 0.0, d.LockedFacing, 1e-12)
	assert.InDelta(t, 0.13, d.PendingTimer, 1e-12)
}

func TestTriggerWithinRangeEndsOnTarget(t *testing.T) {
	d := newDash(t, math2.Vec2{X: 400, Y: 300})
	target := math2.Vec2{X: 473.3, Y: 381.7}
	require.True(t, d.Trigger(target))
	assert.Equal(t, target, d.End)
}

func TestTriggerIgnoredWhileBusy(t *testing.T) {
	d := newDash(t, math2.Vec2{X: 400, Y: 300})
	require.True(t, d.Trigger(math2.Vec2{X: 500, Y: 300}))
	assert.False(t, d.Trigger(math2.Vec2{X: 0, Y: 0}), "pending")

	for d.State == cfg.DashPending {
		d.Update(frameDT, nil)
	}
	require.Equal(t, cfg.DashDashing, d.State)
	assert.False(t, d.Trigger(math2.Vec2{X: 0, Y: 0}), "dashing")
	assert.Equal(t, math2.Vec2{X: 500, Y: 300}, d.End)
}

func TestZeroLengthDash(t *testing.T) {
	pos := math2.Vec2{X: 400, Y: 300}
	d := newDash(t, pos)
	trail := newTrail(t)
	require.True(t, d.Trigger(pos))
	assert.Equal(t, math2.Vec2{}, d.Direction)
	assert.Equal(t, pos, d.End)

	finished := 0
	for i := 0; i < 60; i++ {
		if d.Update(frameDT, &trail) {
			finished++
		}
	}
	assert.Equal(t, 1, finished)
	assert.Equal(t, cfg.DashIdle, d.State)
	assert.Equal(t, pos, d.Position)
	assert.Zero(t, trail.Visible())
}

func TestPendingHoldsPosition(t *testing.T) {
	start := math2.Vec2{X: 400, Y: 300}
	d := newDash(t, start)
	require.True(t, d.Trigger(math2.Vec2{X: 600, Y: 300}))

	d.Update(frameDT, nil)
	assert.Equal(t, cfg.DashPending, d.State)
	assert.Equal(t, start, d.Position)

	d.Update(0.12, nil)
	assert.Equal(t, cfg.DashDashing, d.State)
	assert.Greater(t, d.Position.X, start.X, "the step that ends the delay also moves")
}

func TestDashEndToEnd(t *testing.T) {
	d := newDash(t, math2.Vec2{X: 400, Y: 300})
	trail := newTrail(t)
	require.True(t, d.Trigger(math2.Vec2{X: 900, Y: 300}))

	finished := false
	lastX := d.Position.X
	for i := 0; i < 120 && !finished; i++ {
		finished = d.Update(frameDT, &trail)
		trail.Age(frameDT)
		assert.GreaterOrEqual(t, d.Position.X, lastX)
		lastX = d.Position.X
	}
	require.True(t, finished)
	assert.Equal(t, cfg.DashIdle, d.State)
	assert.InDelta(t, 650, d.Position.X, 1e-9)
	assert.InDelta(t, 300, d.Position.Y, 1e-9)

	assert.GreaterOrEqual(t, trail.Visible(), 250/8)

	var alphas []float64
	var xs []float64
	trail.Each(func(g Ghost) {
		alphas = append(alphas, g.Alpha)
		xs = append(xs, g.Position.X)
		assert.Equal(t, d.LockedFacing, g.Angle)
		assert.InDelta(t, 300, g.Position.Y, 1e-9)
	})
	for i := 1; i < len(alphas); i++ {
		assert.LessOrEqual(t, alphas[i-1], alphas[i], "older ghost brighter than newer")
		assert.InDelta(t, 8, xs[i]-xs[i-1], 1e-6, "ghost spacing")
	}
	assert.Less(t, alphas[0], alphas[len(alphas)-1])
}
