package systems

import (
	"github.com/automoto/telegraph/components"
	cfg "github.com/automoto/telegraph/config"
	"github.com/yohamta/donburi"
)

// GetOrCreateInput returns the input singleton that drivers poll into.
func GetOrCreateInput(w donburi.World) *components.InputData {
	entry, ok := components.Input.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction computes the temporal state of an action.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// RestartRequested reports whether the restart action was pressed this frame.
func RestartRequested(w donburi.World) bool {
	return GetAction(GetOrCreateInput(w), cfg.ActionRestart).JustPressed
}
