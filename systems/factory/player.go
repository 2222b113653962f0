package factory

import (
	"fmt"

	"github.com/automoto/telegraph/archetypes"
	"github.com/automoto/telegraph/components"
	cfg "github.com/automoto/telegraph/config"
	"github.com/automoto/telegraph/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreatePlayer(w donburi.World, space *resolv.Space, x, y float64) (*donburi.Entry, error) {
	dash, err := components.NewDashData(vec(x, y), cfg.Player.Dash)
	if err != nil {
		return nil, fmt.Errorf("player: %w", err)
	}
	trail, err := components.NewGhostTrailData(cfg.Player.Ghost.Capacity, cfg.Player.Ghost.Lifetime)
	if err != nil {
		return nil, fmt.Errorf("player: %w", err)
	}

	player := archetypes.Player.Spawn(w)

	size := cfg.Player.Size
	obj := resolv.NewObject(x-size/2, y-size/2, size, size, tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	if space != nil {
		space.Add(obj)
	}

	components.Player.SetValue(player, components.PlayerData{Size: size})
	components.Dash.SetValue(player, dash)
	components.GhostTrail.SetValue(player, trail)

	return player, nil
}
