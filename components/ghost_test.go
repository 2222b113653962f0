package components

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	math2 "github.com/yohamta/donburi/features/math"
)

func TestNewGhostTrailDataValidation(t *testing.T) {
	_, err := NewGhostTrailData(0, 1)
	assert.True(t, errors.Is(err, ErrInvalidGhostTrail))
	_, err = NewGhostTrailData(10, 0)
	assert.True(t, errors.Is(err, ErrInvalidGhostTrail))
}

func TestGhostFadesOverLifetime(t *testing.T) {
	trail, err := NewGhostTrailData(4, 0.35)
	require.NoError(t, err)
	trail.Add(Ghost{Alpha: 1})

	steps := 0
	for trail.Ghosts[0].Alpha > 1e-9 {
		prev := trail.Ghosts[0].Alpha
		trail.Age(frameDT)
		assert.Less(t, trail.Ghosts[0].Alpha, prev)
		steps++
		require.Less(t, steps, 100)
	}
	// 0.35 s at 60 steps per second.
	assert.InDelta(t, 21, steps, 1)

	trail.Age(frameDT)
	assert.Zero(t, trail.Ghosts[0].Alpha)
	trail.Age(frameDT)
	assert.Zero(t, trail.Ghosts[0].Alpha)
}

func TestGhostTrailOverwritesOldest(t *testing.T) {
	trail, err := NewGhostTrailData(3, 1)
	require.NoError(t, err)
	for i := 1; i <= 4; i++ {
		trail.Add(Ghost{Position: math2.Vec2{X: float64(i)}, Alpha: 1})
	}

	assert.Equal(t, 4.0, trail.Ghosts[0].Position.X)
	assert.Equal(t, 1, trail.Next)
	assert.Equal(t, 3, trail.Visible())

	var order []float64
	trail.Each(func(g Ghost) { order = append(order, g.Position.X) })
	assert.Equal(t, []float64{2, 3, 4}, order)
	assert.Equal(t, 2.0, trail.Slot(1).Position.X)
	assert.Equal(t, 4.0, trail.Slot(3).Position.X)
}

func TestEachSkipsFadedGhosts(t *testing.T) {
	trail, err := NewGhostTrailData(5, 1)
	require.NoError(t, err)
	trail.Add(Ghost{Position: math2.Vec2{X: 1}, Alpha: 0.5})
	trail.Add(Ghost{Position: math2.Vec2{X: 2}, Alpha: 0})

	var seen []float64
	trail.Each(func(g Ghost) { seen = append(seen, g.Position.X) })
	assert.Equal(t, []float64{1}, seen)
}
