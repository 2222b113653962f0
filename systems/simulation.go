package systems

import (
	"github.com/automoto/telegraph/components"
	cfg "github.com/automoto/telegraph/config"
	"github.com/yohamta/donburi"
)

// System is one step of the frame pipeline. Systems only touch the world, so
// any driver (window, terminal, tests) can run them.
type System func(w donburi.World)

// Schedule returns the systems in the order they run each frame.
func Schedule() []System {
	return []System{
		UpdatePause,
		WithGameplayChecks(UpdatePlayer),
		WithGameplayChecks(UpdateGhosts),
		WithGameplayChecks(UpdateCamera),
		WithGameplayChecks(UpdateEnemies),
		WithGameplayChecks(UpdateObjects),
		WithGameplayChecks(advanceTick),
	}
}

// Step runs one frame of dt seconds. Input must already be polled.
func Step(w donburi.World, dt float64) {
	SetDeltaTime(w, dt)
	for _, sys := range Schedule() {
		sys(w)
	}
}

// SetDeltaTime records the frame time every system reads.
func SetDeltaTime(w donburi.World, dt float64) {
	GetOrCreateSimulation(w).DT = dt
}

// WithPauseCheck skips system while the simulation is paused.
func WithPauseCheck(system System) System {
	return func(w donburi.World) {
		if GetOrCreateSimulation(w).Paused() {
			return
		}
		system(w)
	}
}

func WithGameplayChecks(system System) System {
	return WithPauseCheck(system)
}

func GetOrCreateSimulation(w donburi.World) *components.SimulationData {
	if _, ok := components.Simulation.First(w); !ok {
		ent := w.Entry(w.Create(components.Simulation))
		components.Simulation.SetValue(ent, components.SimulationData{
			Mode: cfg.ModeRunning,
			DT:   1.0 / float64(cfg.C.TPS),
		})
	}

	ent, _ := components.Simulation.First(w)
	return components.Simulation.Get(ent)
}

func advanceTick(w donburi.World) {
	GetOrCreateSimulation(w).Tick++
}
