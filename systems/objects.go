package systems

import (
	"github.com/automoto/telegraph/components"
	"github.com/automoto/telegraph/tags"
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

// UpdateObjects moves each resolv body so it is centred on its entity.
func UpdateObjects(w donburi.World) {
	tags.Player.Each(w, func(e *donburi.Entry) {
		syncObject(e, components.Dash.Get(e).Position)
	})
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		syncObject(e, components.Enemy.Get(e).Position)
	})
}

func syncObject(e *donburi.Entry, center math2.Vec2) {
	if !e.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(e)
	if obj.Object == nil {
		return
	}
	obj.X = center.X - obj.W/2
	obj.Y = center.Y - obj.H/2
	obj.Update()
}
