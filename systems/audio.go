package systems

import (
	"github.com/automoto/telegraph/components"
	cfg "github.com/automoto/telegraph/config"
	"github.com/yohamta/donburi"
)

func getOrCreateAudio(w donburi.World) *components.AudioData {
	entry, ok := components.Audio.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Audio))
	}
	return components.Audio.Get(entry)
}

// PlaySFX queues a sound effect for the driver to play.
func PlaySFX(w donburi.World, id cfg.SoundID) {
	audio := getOrCreateAudio(w)
	audio.PendingSFX = append(audio.PendingSFX, id)
}

// DrainSFX hands every queued sound to play and clears the queue.
func DrainSFX(w donburi.World, play func(cfg.SoundID)) {
	entry, ok := components.Audio.First(w)
	if !ok {
		return
	}
	audio := components.Audio.Get(entry)
	for _, id := range audio.PendingSFX {
		play(id)
	}
	audio.PendingSFX = audio.PendingSFX[:0]
}
