package render

import (
	"github.com/automoto/telegraph/components"
	cfg "github.com/automoto/telegraph/config"
	"github.com/automoto/telegraph/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const rayWidth = 2

// DrawEnemies draws each enemy's telegraph and then its body.
func DrawEnemies(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)

		if enemy.CircleVisible() {
			cx, cy := float32(enemy.CircleCenter.X), float32(enemy.CircleCenter.Y)
			vector.FillCircle(screen, cx, cy, float32(enemy.CircleRadius), cfg.Gray, true)
			vector.FillCircle(screen, cx, cy, float32(enemy.ExpandingRadius), cfg.Red, true)
		}

		for i, r := range enemy.Rays {
			if !enemy.RayVisible(i) {
				continue
			}
			clr := cfg.Red
			if r.IsOuter {
				clr = cfg.Gray
			}
			end := enemy.RayEnd(i)
			vector.StrokeLine(screen,
				float32(enemy.Position.X), float32(enemy.Position.Y),
				float32(end.X), float32(end.Y),
				rayWidth, clr, true)
		}

		vector.FillCircle(screen, float32(enemy.Position.X), float32(enemy.Position.Y), float32(cfg.Enemy.BodyRadius), cfg.Blue, true)
	})
}
