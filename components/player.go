package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Facing float64 // rad, live angle toward the pointer
	Size   float64
}

var Player = donburi.NewComponentType[PlayerData]()
