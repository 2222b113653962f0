package render

import (
	"fmt"
	"image/color"

	"github.com/automoto/telegraph/components"
	cfg "github.com/automoto/telegraph/config"
	"github.com/automoto/telegraph/systems"
	"github.com/automoto/telegraph/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every resolv body and prints per-entity state.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowBodies {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			// Determine color based on tags
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvPlayer) {
				c = color.RGBA{0, 0, 255, 255}
			} else if obj.HasTags(tags.ResolvEnemy) {
				c = color.RGBA{255, 0, 0, 255}
			}
			vector.StrokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), 1, c, false)
		}
	}

	sim := systems.GetOrCreateSimulation(ecs.World)
	lines := fmt.Sprintf("tick %d  fps %.0f", sim.Tick, ebiten.ActualFPS())
	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		dash := components.Dash.Get(playerEntry)
		lines += fmt.Sprintf("\ndash %s  ghosts %d", dash.State, components.GhostTrail.Get(playerEntry).Visible())
	}
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		lines += fmt.Sprintf("\n%s cd %.2f t %.2f %s", enemy.TypeName, enemy.AttackCooldown, enemy.AttackTimer, enemy.Phase)
	})
	ebitenutil.DebugPrintAt(screen, lines, 10, cfg.C.Height-20*4)
}
