package components

import (
	"errors"
	"math"
)

var (
	ErrInvalidAttackDuration = errors.New("attack duration must be positive")
	ErrInvalidCooldownRange  = errors.New("cooldown range must satisfy 0 <= min <= max")
	ErrNonFiniteParam        = errors.New("enemy parameter is NaN or infinite")
	ErrInvalidDashConfig     = errors.New("invalid dash config")
	ErrInvalidGhostTrail     = errors.New("invalid ghost trail")
)

// finite reports whether every value is neither NaN nor infinite.
func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
