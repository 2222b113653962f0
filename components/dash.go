package components

import (
	"fmt"
	"math"

	cfg "github.com/automoto/telegraph/config"
	"github.com/automoto/telegraph/gamemath"
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

// DashData is the player's point-and-click dash: Idle -> Pending -> Dashing -> Idle.
type DashData struct {
	Position math2.Vec2
	State    cfg.DashState

	PendingTimer float64 // seconds left before movement starts
	Progress     float64 // 0..1 along Start -> End
	Start        math2.Vec2
	End          math2.Vec2
	Direction    math2.Vec2 // Unit vector, zero for a zero-length dash
	LockedFacing float64    // rad, angle to the click target

	LastGhost   math2.Vec2 // Where the previous ghost was dropped
	Accumulated float64    // Distance travelled since LastGhost

	Config cfg.DashConfig
}

var Dash = donburi.NewComponentType[DashData]()

func NewDashData(pos math2.Vec2, c cfg.DashConfig) (DashData, error) {
	if !finite(c.Duration, c.Delay, c.MaxDistance, c.GhostSpacing) || c.Duration <= 0 || c.Delay < 0 || c.MaxDistance < 0 || c.GhostSpacing <= 0 {
		return DashData{}, fmt.Errorf("%w: %+v", ErrInvalidDashConfig, c)
	}
	return DashData{
		Position:  pos,
		LastGhost: pos,
		Config:    c,
	}, nil
}

// Trigger starts a dash toward target. It is ignored unless the dash is idle.
func (d *DashData) Trigger(target math2.Vec2) bool {
	if d.State != cfg.DashIdle {
		return false
	}

	delta := gamemath.Sub(target, d.Position)
	dist := gamemath.Length(delta)

	d.Start = d.Position
	d.Direction = gamemath.Normalize(delta)
	if dist <= d.Config.MaxDistance {
		d.End = target
	} else {
		d.End = gamemath.Add(d.Start, gamemath.Scale(d.Direction, d.Config.MaxDistance))
	}

	d.LockedFacing = gamemath.AngleTo(d.Position, target)
	d.LastGhost = d.Position
	d.Accumulated = 0
	d.Progress = 0
	d.PendingTimer = d.Config.Delay
	d.State = cfg.DashPending
	return true
}

// Update advances the dash by dt and drops ghosts into trail. It reports
// whether the dash finished during this step. The step that ends the pending
// delay also advances the dash.
func (d *DashData) Update(dt float64, trail *GhostTrailData) (finished bool) {
	if d.State == cfg.DashPending {
		d.PendingTimer = math.Max(0, d.PendingTimer-dt)
		if d.PendingTimer <= 0 {
			d.State = cfg.DashDashing
			d.Progress = 0
		}
	}

	if d.State != cfg.DashDashing {
		return false
	}

	d.Progress = math.Min(1, d.Progress+dt/d.Config.Duration)
	prev := d.Position
	d.Position = gamemath.Lerp(d.Start, d.End, d.Progress)
	if d.Progress >= 1 {
		d.Position = d.End
	}

	d.Accumulated += gamemath.Distance(prev, d.Position)
	spacing := d.Config.GhostSpacing
	for d.Accumulated >= spacing {
		spawn := gamemath.Lerp(d.LastGhost, d.Position, spacing/d.Accumulated)
		if trail != nil {
			trail.Add(Ghost{Position: spawn, Angle: d.LockedFacing, Alpha: 1})
		}
		d.Accumulated -= spacing
		d.LastGhost = spawn
	}

	if d.Progress >= 1 {
		d.State = cfg.DashIdle
		return true
	}
	return false
}

// Active reports whether a dash is pending or in motion.
func (d *DashData) Active() bool {
	return d.State != cfg.DashIdle
}
