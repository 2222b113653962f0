package components

import (
	cfg "github.com/automoto/telegraph/config"
	"github.com/yohamta/donburi"
)

// AudioData queues sound effects for whichever driver plays them (singleton component)
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
