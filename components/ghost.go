package components

import (
	"fmt"

	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

// Ghost is a fading afterimage left along a dash path.
type Ghost struct {
	Position math2.Vec2
	Angle    float64 // rad, facing locked at dash trigger
	Alpha    float64 // 1 = fresh, 0 = invisible
}

// GhostTrailData is a fixed-capacity ring of ghosts. Inserting past capacity
// overwrites the oldest slot.
type GhostTrailData struct {
	Ghosts   []Ghost
	Next     int     // Slot the next ghost is written to
	Lifetime float64 // seconds from alpha 1 to 0
}

var GhostTrail = donburi.NewComponentType[GhostTrailData]()

func NewGhostTrailData(capacity int, lifetime float64) (GhostTrailData, error) {
	if capacity <= 0 {
		return GhostTrailData{}, fmt.Errorf("%w: capacity %d", ErrInvalidGhostTrail, capacity)
	}
	if lifetime <= 0 {
		return GhostTrailData{}, fmt.Errorf("%w: lifetime %v", ErrInvalidGhostTrail, lifetime)
	}
	return GhostTrailData{
		Ghosts:   make([]Ghost, capacity),
		Lifetime: lifetime,
	}, nil
}

// Add writes g into the next slot.
func (t *GhostTrailData) Add(g Ghost) {
	t.Ghosts[t.Next] = g
	t.Next = (t.Next + 1) % len(t.Ghosts)
}

// Age fades every visible ghost by dt / Lifetime, flooring at zero.
func (t *GhostTrailData) Age(dt float64) {
	fade := dt / t.Lifetime
	for i := range t.Ghosts {
		g := &t.Ghosts[i]
		if g.Alpha <= 0 {
			continue
		}
		g.Alpha -= fade
		if g.Alpha < 0 {
			g.Alpha = 0
		}
	}
}

// Each calls fn for every visible ghost from oldest to newest.
func (t *GhostTrailData) Each(fn func(g Ghost)) {
	n := len(t.Ghosts)
	for i := 0; i < n; i++ {
		g := t.Ghosts[(t.Next+i)%n]
		if g.Alpha > 0 {
			fn(g)
		}
	}
}

// Visible counts ghosts with non-zero alpha.
func (t *GhostTrailData) Visible() int {
	count := 0
	for _, g := range t.Ghosts {
		if g.Alpha > 0 {
			count++
		}
	}
	return count
}

// Slot returns the ghost stored at ring index i, visible or not.
func (t *GhostTrailData) Slot(i int) Ghost {
	return t.Ghosts[i%len(t.Ghosts)]
}
