package systems

import (
	"github.com/automoto/telegraph/components"
	"github.com/automoto/telegraph/gamemath"
	"github.com/automoto/telegraph/tags"
	"github.com/yohamta/donburi"
)

// UpdateEnemies runs every enemy's attack state machine against the player's
// current position.
func UpdateEnemies(w donburi.World) {
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	playerPos := components.Dash.Get(playerEntry).Position
	dt := GetOrCreateSimulation(w).DT

	tags.Enemy.Each(w, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		enemy.Update(dt, playerPos, gamemath.Distance(enemy.Position, playerPos))
	})
}
