// Package sound plays the queued sound effects through ebiten's audio context.
package sound

import (
	"log"
	"sync"

	cfg "github.com/automoto/telegraph/config"
	"github.com/automoto/telegraph/synth"
	"github.com/automoto/telegraph/systems"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	sfxCache           = map[cfg.SoundID][]byte{}
	audioInitOnce      sync.Once
)

func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
	})
}

// PreloadAllSFX synthesizes every sound effect up front to avoid a hitch on first play.
func PreloadAllSFX() {
	initGlobalAudio()
	for id := range cfg.Sound.Tones {
		pcm(id)
	}
}

// UpdateAudio plays every sound the simulation queued this frame.
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()
	systems.DrainSFX(e.World, playSFX)
}

func pcm(id cfg.SoundID) []byte {
	data, ok := sfxCache[id]
	if !ok {
		data = synth.PCM(id, cfg.Audio.SampleRate, 1.0)
		sfxCache[id] = data
	}
	return data
}

func playSFX(id cfg.SoundID) {
	if globalSFXVolume <= 0 {
		return
	}

	data := pcm(id)
	if len(data) == 0 {
		log.Printf("Warning: no sound for id %d", id)
		return
	}

	player := globalAudioContext.NewPlayerFromBytes(data)
	player.SetVolume(globalSFXVolume)
	player.Play()
}
