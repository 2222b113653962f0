package systems

import (
	"github.com/automoto/telegraph/components"
	cfg "github.com/automoto/telegraph/config"
	"github.com/automoto/telegraph/gamemath"
	"github.com/automoto/telegraph/tags"
	"github.com/yohamta/donburi"
)

// UpdatePlayer handles the dash click, advances the dash and keeps the live
// facing pointed at the cursor.
func UpdatePlayer(w donburi.World) {
	entry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	input := GetOrCreateInput(w)
	sim := GetOrCreateSimulation(w)

	player := components.Player.Get(entry)
	dash := components.Dash.Get(entry)
	trail := components.GhostTrail.Get(entry)

	player.Facing = gamemath.AngleTo(dash.Position, input.Pointer)

	if GetAction(input, cfg.ActionDash).JustPressed && dash.Trigger(input.Pointer) {
		PlaySFX(w, cfg.SoundDash)
	}

	if dash.Update(sim.DT, trail) {
		TriggerScreenShake(w, cfg.ScreenShake.DashIntensity, cfg.ScreenShake.DashDuration)
	}
}
