package config

import (
	"fmt"
	"strings"
)

// AttackType selects the shape of an enemy's telegraphed attack
type AttackType int

const (
	AttackCircle AttackType = iota
	AttackInFront
)

func (a AttackType) String() string {
	switch a {
	case AttackCircle:
		return "circle"
	case AttackInFront:
		return "in_front"
	}
	return fmt.Sprintf("AttackType(%d)", int(a))
}

// ParseAttackType accepts the names used in level files.
func ParseAttackType(s string) (AttackType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "circle":
		return AttackCircle, nil
	case "in_front", "infront", "cone":
		return AttackInFront, nil
	}
	return 0, fmt.Errorf("unknown attack type %q", s)
}

// AttackPhase is the sub-state of an in-front attack
type AttackPhase int

const (
	PhaseCharging AttackPhase = iota
	PhaseFiring
)

func (p AttackPhase) String() string {
	if p == PhaseFiring {
		return "firing"
	}
	return "charging"
}

// DashState is the player dash controller state
type DashState int

const (
	DashIdle DashState = iota
	DashPending
	DashDashing
)

func (d DashState) String() string {
	switch d {
	case DashPending:
		return "pending"
	case DashDashing:
		return "dashing"
	}
	return "idle"
}

// SimulationMode replaces a global pause flag
type SimulationMode int

const (
	ModeRunning SimulationMode = iota
	ModePaused
)
