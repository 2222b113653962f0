package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Offset math.Vec2 // Shake offset applied to the player and ghosts
}

var Camera = donburi.NewComponentType[CameraData]()

// ScreenShakeData tracks active screen shake effect on the camera
type ScreenShakeData struct {
	Intensity float64      // max offset in pixels at the start
	Current   float64      // offset bound this frame
	Decay     *gween.Tween // Intensity -> 0 over the shake duration
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()
