package scenes

import (
	"fmt"
	"image/color"
	"log"
	"sync"

	"github.com/automoto/telegraph/assets"
	cfg "github.com/automoto/telegraph/config"
	"github.com/automoto/telegraph/controls"
	"github.com/automoto/telegraph/random"
	"github.com/automoto/telegraph/render"
	"github.com/automoto/telegraph/sound"
	"github.com/automoto/telegraph/systems"
	"github.com/automoto/telegraph/systems/factory"
	"github.com/automoto/telegraph/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const layerDefault ecs.LayerID = 0

type ArenaScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	pauseUI      *ui.PauseUI
	levelName    string
	once         sync.Once

	// restartArmed is false until the restart key has been seen released,
	// so a key still held from the previous scene does not restart again.
	restartArmed bool
}

// NewArenaScene creates the arena scene for the named embedded level
func NewArenaScene(sc SceneChanger, levelName string) *ArenaScene {
	return &ArenaScene{sceneChanger: sc, levelName: levelName}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	systems.SetDeltaTime(as.ecs.World, 1.0/float64(ebiten.TPS()))
	as.ecs.Update()

	sim := systems.GetOrCreateSimulation(as.ecs.World)
	as.pauseUI.Update(sim.Paused(), sim.DT)

	if as.restartArmed && systems.RestartRequested(as.ecs.World) {
		as.sceneChanger.ChangeScene(NewArenaScene(as.sceneChanger, as.levelName))
		return
	}
	input := systems.GetOrCreateInput(as.ecs.World)
	if !systems.GetAction(input, cfg.ActionRestart).Pressed {
		as.restartArmed = true
	}
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
	as.pauseUI.Draw(screen)
}

// adapt runs a world system inside the ebiten ECS.
func adapt(sys systems.System) ecs.System {
	return func(e *ecs.ECS) {
		sys(e.World)
	}
}

func (as *ArenaScene) configure() {
	sound.PreloadAllSFX()

	ecs := ecs.NewECS(donburi.NewWorld())

	// Input runs first so the simulation sees this frame's edges
	ecs.AddSystem(controls.UpdateInput)

	for _, sys := range systems.Schedule() {
		ecs.AddSystem(adapt(sys))
	}

	// Audio drains whatever the simulation queued
	ecs.AddSystem(sound.UpdateAudio)

	// Add renderers
	ecs.AddRenderer(layerDefault, render.DrawBackground)
	ecs.AddRenderer(layerDefault, render.DrawEnemies)
	ecs.AddRenderer(layerDefault, render.DrawGhosts)
	ecs.AddRenderer(layerDefault, render.DrawPlayer)
	ecs.AddRenderer(layerDefault, render.DrawDebug)

	as.ecs = ecs
	as.pauseUI = ui.NewPauseUI()

	arena, err := assets.LoadArena(as.levelName)
	if err != nil {
		panic(fmt.Sprintf("failed to load arena: %v", err))
	}

	rng := random.NewPRNG(cfg.Debug.Seed)
	log.Printf("arena %s: seed %d", arena.Name, rng.Seed())

	if err := factory.CreateArena(ecs.World, arena, rng); err != nil {
		panic(fmt.Sprintf("failed to build arena: %v", err))
	}
}
