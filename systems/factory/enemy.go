package factory

import (
	"fmt"
	"log"

	"github.com/automoto/telegraph/archetypes"
	"github.com/automoto/telegraph/components"
	cfg "github.com/automoto/telegraph/config"
	"github.com/automoto/telegraph/leveldata"
	"github.com/automoto/telegraph/random"
	"github.com/automoto/telegraph/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

const defaultEnemyType = "Circler"

// CreateEnemyFromSpawn resolves a level spawn against its preset and creates the enemy.
func CreateEnemyFromSpawn(w donburi.World, space *resolv.Space, spawn leveldata.EnemySpawn, rng random.Source) (*donburi.Entry, error) {
	// Use the requested enemy type, default to "Circler" if not found
	enemyType, exists := cfg.Enemy.Types[spawn.EnemyType]
	if !exists {
		log.Printf("Warning: unknown enemy type %q at (%.0f, %.0f), using %s", spawn.EnemyType, spawn.X, spawn.Y, defaultEnemyType)
		enemyType = cfg.Enemy.Types[defaultEnemyType]
	}
	return CreateEnemy(w, space, components.ParamsFromType(spawn.Apply(enemyType), vec(spawn.X, spawn.Y)), rng)
}

func CreateEnemy(w donburi.World, space *resolv.Space, params components.EnemyParams, rng random.Source) (*donburi.Entry, error) {
	enemyData, err := components.NewEnemyData(params, rng)
	if err != nil {
		return nil, fmt.Errorf("create enemy at (%.0f, %.0f): %w", params.Position.X, params.Position.Y, err)
	}

	enemy := archetypes.Enemy.Spawn(w)

	// Create collision object
	r := cfg.Enemy.BodyRadius
	obj := resolv.NewObject(params.Position.X-r, params.Position.Y-r, r*2, r*2, tags.ResolvEnemy)
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	if space != nil {
		space.Add(obj)
	}

	components.Enemy.SetValue(enemy, enemyData)
	return enemy, nil
}
