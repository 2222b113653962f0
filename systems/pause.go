package systems

import (
	"github.com/automoto/telegraph/components"
	cfg "github.com/automoto/telegraph/config"
	"github.com/automoto/telegraph/tags"
	"github.com/yohamta/donburi"
)

// UpdatePause toggles the run mode. Entering pause freezes the facing shown
// for the player at the last dash direction.
func UpdatePause(w donburi.World) {
	input := GetOrCreateInput(w)
	sim := GetOrCreateSimulation(w)

	if GetAction(input, cfg.ActionDebug).JustPressed {
		cfg.Debug.ShowBodies = !cfg.Debug.ShowBodies
	}

	if !GetAction(input, cfg.ActionPause).JustPressed {
		return
	}

	if sim.Paused() {
		sim.Mode = cfg.ModeRunning
		return
	}

	if entry, ok := tags.Player.First(w); ok {
		sim.FrozenFacing = components.Dash.Get(entry).LockedFacing
	}
	sim.Mode = cfg.ModePaused
}

// DisplayedFacing is the facing the renderer should use for the player.
func DisplayedFacing(w donburi.World, player *components.PlayerData) float64 {
	sim := GetOrCreateSimulation(w)
	if sim.Paused() {
		return sim.FrozenFacing
	}
	return player.Facing
}
