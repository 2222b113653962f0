package systems

import (
	"github.com/automoto/telegraph/components"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// UpdateCamera advances the screen shake. The offset is jittered inside the
// decaying intensity each frame and cleared once the shake ends.
func UpdateCamera(w donburi.World) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	camera.Offset.X, camera.Offset.Y = 0, 0

	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	current, finished := shake.Decay.Update(float32(GetOrCreateSimulation(w).DT))
	if finished {
		cameraEntry.RemoveComponent(components.ScreenShake)
		return
	}
	shake.Current = float64(current)

	rng := GetRandom(w)
	camera.Offset.X = rng.Range(-shake.Current, shake.Current)
	camera.Offset.Y = rng.Range(-shake.Current, shake.Current)
}

// TriggerScreenShake starts a screen shake effect
func TriggerScreenShake(w donburi.World, intensity, duration float64) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok || duration <= 0 {
		return
	}

	decay := gween.New(float32(intensity), 0, float32(duration), ease.Linear)

	// Add or update screen shake component
	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		// Only override if new shake is at least as strong
		if intensity >= shake.Current {
			shake.Intensity = intensity
			shake.Current = intensity
			shake.Decay = decay
		}
		return
	}

	cameraEntry.AddComponent(components.ScreenShake)
	components.ScreenShake.SetValue(cameraEntry, components.ScreenShakeData{
		Intensity: intensity,
		Current:   intensity,
		Decay:     decay,
	})
}

// ShakeActive reports whether a screen shake is running.
func ShakeActive(w donburi.World) bool {
	cameraEntry, ok := components.Camera.First(w)
	return ok && cameraEntry.HasComponent(components.ScreenShake)
}
