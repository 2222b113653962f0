package components

import (
	"fmt"
	"math"

	cfg "github.com/automoto/telegraph/config"
	"github.com/automoto/telegraph/gamemath"
	"github.com/automoto/telegraph/random"
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

// RayCount is fixed: outer, inner, inner, outer.
const RayCount = 4

// Ray is one line of an in-front attack cone. Angles are relative to the
// enemy's base angle toward the player.
type Ray struct {
	Direction       math2.Vec2 // Unit vector, refreshed every attack frame
	Length          float64
	Active          bool
	IsOuter         bool
	CurrentRelAngle float64 // rad
	TargetRelAngle  float64 // rad
}

// EnemyParams is everything needed to build an enemy.
type EnemyParams struct {
	TypeName       string
	Position       math2.Vec2
	AttackType     cfg.AttackType
	AttackDuration float64 // seconds
	MinCooldown    float64 // seconds
	MaxCooldown    float64 // seconds
	AttackDistance float64 // Circle radius or ray length
	MovementSpeed  float64 // px per second
	AttackRange    float64
	InnerAngle     float64 // degrees
	OuterAngle     float64 // degrees
}

// ParamsFromType fills params from an enemy preset.
func ParamsFromType(tc cfg.EnemyTypeConfig, pos math2.Vec2) EnemyParams {
	return EnemyParams{
		TypeName:       tc.Name,
		Position:       pos,
		AttackType:     tc.AttackType,
		AttackDuration: tc.AttackDuration,
		MinCooldown:    tc.MinCooldown,
		MaxCooldown:    tc.MaxCooldown,
		AttackDistance: tc.AttackDistance,
		MovementSpeed:  tc.MovementSpeed,
		AttackRange:    tc.AttackRange,
		InnerAngle:     tc.InnerAngle,
		OuterAngle:     tc.OuterAngle,
	}
}

type EnemyData struct {
	TypeName   string
	Position   math2.Vec2
	AttackType cfg.AttackType

	AttackRange    float64 // Player distance at or below which an attack may start
	AttackDistance float64
	MovementSpeed  float64 // px per second

	// Attack timing
	Attacking      bool
	AttackCooldown float64 // seconds until the next attack may start
	AttackTimer    float64 // seconds since the attack started
	AttackDuration float64

	// Circle attack
	CircleCenter    math2.Vec2
	CircleRadius    float64
	ExpandingRadius float64

	// In-front attack
	Phase        cfg.AttackPhase
	LockedAngle  float64 // Base angle, tracks the player while charging
	AngularSpeed float64 // rad/s
	InnerAngle   float64 // degrees
	OuterAngle   float64 // degrees
	Rays         [RayCount]Ray
	FlashTimer   float64
	FlashOn      bool

	RNG random.Source
}

var Enemy = donburi.NewComponentType[EnemyData]()

// NewEnemyData validates params and rolls the initial cooldown.
func NewEnemyData(p EnemyParams, rng random.Source) (EnemyData, error) {
	if !finite(p.AttackDuration) || p.AttackDuration <= 0 {
		return EnemyData{}, fmt.Errorf("enemy %q: %w (got %v)", p.TypeName, ErrInvalidAttackDuration, p.AttackDuration)
	}
	if !finite(p.MinCooldown, p.MaxCooldown) || p.MinCooldown < 0 || p.MinCooldown > p.MaxCooldown {
		return EnemyData{}, fmt.Errorf("enemy %q: %w (got %v..%v)", p.TypeName, ErrInvalidCooldownRange, p.MinCooldown, p.MaxCooldown)
	}
	if !finite(p.AttackDistance, p.MovementSpeed, p.AttackRange, p.InnerAngle, p.OuterAngle) {
		return EnemyData{}, fmt.Errorf("enemy %q: %w", p.TypeName, ErrNonFiniteParam)
	}

	return EnemyData{
		TypeName:       p.TypeName,
		Position:       p.Position,
		AttackType:     p.AttackType,
		AttackRange:    p.AttackRange,
		AttackDistance: p.AttackDistance,
		MovementSpeed:  p.MovementSpeed,
		AttackCooldown: rng.Range(p.MinCooldown, p.MaxCooldown),
		AttackDuration: p.AttackDuration,
		CircleRadius:   p.AttackDistance,
		AngularSpeed:   cfg.Enemy.BaseAngularSpeed / p.AttackDuration,
		InnerAngle:     p.InnerAngle,
		OuterAngle:     p.OuterAngle,
		RNG:            rng,
	}, nil
}

// Update advances the attack state machine and the chase by dt seconds.
func (e *EnemyData) Update(dt float64, playerPos math2.Vec2, playerDist float64) {
	if !e.Attacking {
		e.AttackCooldown = math.Max(0, e.AttackCooldown-dt)
		if e.AttackCooldown <= cfg.Enemy.TimeEpsilon && e.AttackRange >= playerDist {
			e.startAttack(playerPos)
		}
	} else {
		e.AttackTimer += dt

		switch e.AttackType {
		case cfg.AttackCircle:
			e.ExpandingRadius = math.Min(e.CircleRadius, e.ExpandingRadius+e.CircleRadius/e.AttackDuration*dt)
		case cfg.AttackInFront:
			e.updateCone(dt, playerPos)
		}

		if e.AttackTimer >= e.AttackDuration-cfg.Enemy.TimeEpsilon {
			e.endAttack()
		}
	}

	if e.AttackRange < playerDist {
		e.chase(dt, playerPos)
	}
}

func (e *EnemyData) startAttack(playerPos math2.Vec2) {
	e.Attacking = true
	e.AttackTimer = 0

	switch e.AttackType {
	case cfg.AttackCircle:
		e.CircleCenter = playerPos
		e.ExpandingRadius = 0
	case cfg.AttackInFront:
		e.Phase = cfg.PhaseCharging
		e.FlashTimer = 0
		e.FlashOn = true
		e.LockedAngle = gamemath.AngleTo(e.Position, playerPos)

		inner := gamemath.DegToRad(e.InnerAngle)
		outer := gamemath.DegToRad(e.OuterAngle)
		start := [RayCount]float64{-outer, -inner, inner, outer}
		target := [RayCount]float64{inner, -inner, inner, -inner}
		if !cfg.Enemy.CrossingSweep {
			target = [RayCount]float64{-inner, -inner, inner, inner}
		}

		for i := range e.Rays {
			e.Rays[i] = Ray{
				Length:          e.AttackDistance,
				Active:          true,
				IsOuter:         i == 0 || i == RayCount-1,
				CurrentRelAngle: start[i],
				TargetRelAngle:  target[i],
				Direction:       gamemath.Direction(e.LockedAngle + start[i]),
			}
		}
	}
}

func (e *EnemyData) updateCone(dt float64, playerPos math2.Vec2) {
	if e.Phase == cfg.PhaseCharging {
		e.LockedAngle = gamemath.AngleTo(e.Position, playerPos)
	}
	base := e.LockedAngle
	eps := cfg.Enemy.AngleEpsilon

	switch e.Phase {
	case cfg.PhaseCharging:
		allOuterAtTarget := true
		for i := range e.Rays {
			r := &e.Rays[i]
			if !r.Active || !r.IsOuter {
				continue
			}
			if !gamemath.WithinEpsilon(r.CurrentRelAngle, r.TargetRelAngle, eps) {
				r.CurrentRelAngle = gamemath.StepToward(r.CurrentRelAngle, r.TargetRelAngle, e.AngularSpeed*dt)
				allOuterAtTarget = false
			}
		}
		if allOuterAtTarget {
			e.beginFiring()
		}

	case cfg.PhaseFiring:
		step := e.AngularSpeed * cfg.Enemy.FiringSpeedMultiplier * dt
		for i := range e.Rays {
			r := &e.Rays[i]
			if r.Active && r.IsOuter && !gamemath.WithinEpsilon(r.CurrentRelAngle, r.TargetRelAngle, eps) {
				r.CurrentRelAngle = gamemath.StepToward(r.CurrentRelAngle, r.TargetRelAngle, step)
			}
		}

		e.FlashTimer += dt
		if e.FlashTimer > cfg.Enemy.FlashInterval {
			e.FlashTimer = 0
			e.FlashOn = !e.FlashOn
		}
	}

	for i := range e.Rays {
		r := &e.Rays[i]
		if r.Active {
			r.Direction = gamemath.Direction(base + r.CurrentRelAngle)
		}
	}
}

// beginFiring locks the aim, retires the inner rays and converges the outer
// rays on the centre line.
func (e *EnemyData) beginFiring() {
	e.Phase = cfg.PhaseFiring
	for i := range e.Rays {
		r := &e.Rays[i]
		if r.IsOuter {
			r.TargetRelAngle = 0
		} else {
			r.Active = false
		}
	}
}

func (e *EnemyData) endAttack() {
	e.Attacking = false
	e.AttackCooldown = e.RNG.Range(cfg.Enemy.RecoveryCooldownMin, cfg.Enemy.RecoveryCooldownMax)
	e.ExpandingRadius = 0
	e.Phase = cfg.PhaseCharging
	for i := range e.Rays {
		e.Rays[i] = Ray{}
	}
}

// chase moves toward target on each axis independently. Horizontal movement
// is faster than vertical.
func (e *EnemyData) chase(dt float64, target math2.Vec2) {
	step := e.MovementSpeed * dt
	deadband := cfg.Enemy.ChaseDeadband

	if math.Abs(target.X-e.Position.X) >= deadband {
		if e.Position.X > target.X {
			e.Position.X -= step * cfg.Enemy.HorizontalChaseBias
		} else {
			e.Position.X += step * cfg.Enemy.HorizontalChaseBias
		}
	}
	if math.Abs(target.Y-e.Position.Y) >= deadband {
		if e.Position.Y > target.Y {
			e.Position.Y -= step
		} else {
			e.Position.Y += step
		}
	}
}

// CircleVisible reports whether the circle danger zone should be drawn.
func (e *EnemyData) CircleVisible() bool {
	return e.Attacking && e.AttackType == cfg.AttackCircle
}

// RayVisible reports whether ray i should be drawn this frame. Outer rays
// blink while firing.
func (e *EnemyData) RayVisible(i int) bool {
	r := e.Rays[i]
	if !e.Attacking || e.AttackType != cfg.AttackInFront || !r.Active {
		return false
	}
	if r.IsOuter && e.Phase == cfg.PhaseFiring && !e.FlashOn {
		return false
	}
	return true
}

// RayEnd returns the far end point of ray i.
func (e *EnemyData) RayEnd(i int) math2.Vec2 {
	r := e.Rays[i]
	return gamemath.Add(e.Position, gamemath.Scale(r.Direction, r.Length))
}
