// Package controls polls ebiten input into the world's input singleton.
package controls

import (
	cfg "github.com/automoto/telegraph/config"
	"github.com/automoto/telegraph/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
)

// InputBinding represents the keys and mouse buttons bound to an action
type InputBinding struct {
	Keys         []ebiten.Key
	MouseButtons []ebiten.MouseButton
}

// Bindings maps every action to its physical inputs
var Bindings = map[cfg.ActionID]InputBinding{
	cfg.ActionDash: {
		MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonLeft},
	},
	cfg.ActionPause: {
		Keys: []ebiten.Key{ebiten.KeySpace},
	},
	cfg.ActionDebug: {
		Keys: []ebiten.Key{ebiten.KeyF3},
	},
	cfg.ActionRestart: {
		Keys: []ebiten.Key{ebiten.KeyR},
	},
}

// UpdateInput polls raw input and updates the input singleton.
// Must run BEFORE the simulation systems.
func UpdateInput(ecs *ecs.ECS) {
	input := systems.GetOrCreateInput(ecs.World)

	var next [cfg.ActionCount]bool
	for actionID, binding := range Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				next[actionID] = true
			}
		}
		for _, btn := range binding.MouseButtons {
			if ebiten.IsMouseButtonPressed(btn) {
				next[actionID] = true
			}
		}
	}
	input.Advance(next)

	x, y := ebiten.CursorPosition()
	input.Pointer = math2.Vec2{X: float64(x), Y: float64(y)}
}
