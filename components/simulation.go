package components

import (
	cfg "github.com/automoto/telegraph/config"
	"github.com/yohamta/donburi"
)

// SimulationData is the frame clock and run mode (singleton component)
type SimulationData struct {
	Mode         cfg.SimulationMode
	DT           float64 // seconds for the current frame
	FrozenFacing float64 // rad, facing shown while paused
	Tick         uint64  // running frames simulated
}

var Simulation = donburi.NewComponentType[SimulationData]()

func (s *SimulationData) Paused() bool {
	return s.Mode == cfg.ModePaused
}
