package components

import (
	"github.com/automoto/telegraph/leveldata"
	"github.com/automoto/telegraph/random"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Arena *leveldata.Arena
}

var Level = donburi.NewComponentType[LevelData]()

// RandomData shares the world's random source (singleton component)
type RandomData struct {
	Source random.Source
}

var Random = donburi.NewComponentType[RandomData]()
