package factory

import (
	"fmt"

	"github.com/automoto/telegraph/archetypes"
	"github.com/automoto/telegraph/components"
	"github.com/automoto/telegraph/leveldata"
	"github.com/automoto/telegraph/random"
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

// CreateArena populates w from an arena layout: level, random source, space,
// camera, player and every enemy spawn.
func CreateArena(w donburi.World, arena *leveldata.Arena, rng random.Source) error {
	CreateLevel(w, arena)
	CreateRandom(w, rng)
	space := CreateSpace(w, arena.Width, arena.Height, 20, 20)
	CreateCamera(w)

	if _, err := CreatePlayer(w, space, arena.PlayerSpawn.X, arena.PlayerSpawn.Y); err != nil {
		return fmt.Errorf("arena %s: %w", arena.Name, err)
	}

	for _, spawn := range arena.Enemies {
		if _, err := CreateEnemyFromSpawn(w, space, spawn, rng); err != nil {
			return fmt.Errorf("arena %s: %w", arena.Name, err)
		}
	}
	return nil
}

func CreateLevel(w donburi.World, arena *leveldata.Arena) *donburi.Entry {
	level := archetypes.Level.Spawn(w)
	components.Level.SetValue(level, components.LevelData{Arena: arena})
	return level
}

func CreateRandom(w donburi.World, rng random.Source) *donburi.Entry {
	entry := archetypes.Random.Spawn(w)
	components.Random.SetValue(entry, components.RandomData{Source: rng})
	return entry
}

func vec(x, y float64) math2.Vec2 {
	return math2.Vec2{X: x, Y: y}
}
