package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPRNGRangeBounds(t *testing.T) {
	p := NewPRNG(12345)
	for i := 0; i < 1000; i++ {
		v := p.Range(2.0, 5.0)
		assert.GreaterOrEqual(t, v, 2.0)
		assert.Less(t, v, 5.0)
	}
}

func TestPRNGIsDeterministicPerSeed(t *testing.T) {
	a := NewPRNG(42)
	b := NewPRNG(42)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Range(0, 1), b.Range(0, 1))
	}
}

func TestPRNGZeroSeedPicksOne(t *testing.T) {
	assert.NotZero(t, NewPRNG(0).Seed())
	assert.Equal(t, int64(7), NewPRNG(7).Seed())
}

func TestEmptyRangeReturnsMin(t *testing.T) {
	assert.Equal(t, 3.0, NewPRNG(1).Range(3, 3))
	assert.Equal(t, 3.0, NewPRNG(1).Range(3, 1))
	assert.Equal(t, 3.0, Fixed{T: 0.5}.Range(3, 3))
}

func TestFixed(t *testing.T) {
	assert.Equal(t, 1.0, Fixed{T: 0}.Range(1, 3))
	assert.Equal(t, 2.0, Fixed{T: 0.5}.Range(1, 3))
	assert.Equal(t, 3.0, Fixed{T: 1}.Range(1, 3))
	assert.Equal(t, 3.0, Fixed{T: 4}.Range(1, 3))
}
