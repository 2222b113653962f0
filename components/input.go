package components

import (
	cfg "github.com/automoto/telegraph/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool // Current frame's Pressed state
	Previous [cfg.ActionCount]bool // Previous frame's Pressed state
	Pointer  math.Vec2             // Pointer position in world space
}

var Input = donburi.NewComponentType[InputData]()

// Advance rolls the current frame into the previous one and installs next.
func (in *InputData) Advance(next [cfg.ActionCount]bool) {
	in.Previous = in.Current
	in.Current = next
}
