// Package random provides the seeded randomness injected into the simulation.
package random

import (
	"math/rand"
	"time"
)

// Source yields uniform floats in [min, max). It is the only randomness the
// simulation depends on, so tests can substitute a deterministic one.
type Source interface {
	Range(min, max float64) float64
}

// PRNG is a seeded Source.
type PRNG struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNG creates a generator. A zero seed picks one from the clock.
func NewPRNG(seed int64) *PRNG {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNG{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed actually in use.
func (p *PRNG) Seed() int64 {
	return p.seed
}

// Range returns a uniform value in [min, max), or min when the range is empty.
func (p *PRNG) Range(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + p.rng.Float64()*(max-min)
}

// Fixed is a Source that always returns the same point of the range.
// T is clamped to [0, 1]; 0 yields min and 1 yields max.
type Fixed struct {
	T float64
}

func (f Fixed) Range(min, max float64) float64 {
	if max <= min {
		return min
	}
	t := f.T
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return min + t*(max-min)
}
