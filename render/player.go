package render

import (
	"github.com/automoto/telegraph/components"
	cfg "github.com/automoto/telegraph/config"
	"github.com/automoto/telegraph/gamemath"
	"github.com/automoto/telegraph/systems"
	"github.com/automoto/telegraph/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
)

func shakeOffset(ecs *ecs.ECS) math2.Vec2 {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return math2.Vec2{}
	}
	return components.Camera.Get(cameraEntry).Offset
}

// DrawGhosts draws the dash afterimages, oldest first.
func DrawGhosts(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	size := components.Player.Get(playerEntry).Size
	offset := shakeOffset(ecs)

	components.GhostTrail.Get(playerEntry).Each(func(g components.Ghost) {
		drawSquare(screen, gamemath.Add(g.Position, offset), size, g.Angle, cfg.Blue, g.Alpha*cfg.Player.Ghost.AlphaScale)
	})
}

// DrawPlayer draws the player square facing the cursor, or the frozen facing while paused.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	dash := components.Dash.Get(playerEntry)

	facing := systems.DisplayedFacing(ecs.World, player)
	drawSquare(screen, gamemath.Add(dash.Position, shakeOffset(ecs)), player.Size, facing, cfg.Black, 1)
}
