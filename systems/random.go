package systems

import (
	"github.com/automoto/telegraph/components"
	cfg "github.com/automoto/telegraph/config"
	"github.com/automoto/telegraph/random"
	"github.com/yohamta/donburi"
)

// GetRandom returns the world's random source, seeding one from the debug
// config if the world has none yet.
func GetRandom(w donburi.World) random.Source {
	entry, ok := components.Random.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Random))
		components.Random.SetValue(entry, components.RandomData{Source: random.NewPRNG(cfg.Debug.Seed)})
	}
	return components.Random.Get(entry).Source
}
