package systems

import (
	"github.com/automoto/telegraph/components"
	"github.com/yohamta/donburi"
)

// UpdateGhosts fades every ghost trail by one frame.
func UpdateGhosts(w donburi.World) {
	dt := GetOrCreateSimulation(w).DT
	components.GhostTrail.Each(w, func(e *donburi.Entry) {
		components.GhostTrail.Get(e).Age(dt)
	})
}
