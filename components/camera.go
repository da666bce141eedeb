package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is the viewport's top-left corner in world coordinates.
type CameraData struct {
	Position   math.Vec2
	LookAheadX float64 // Current smoothed X offset for look-ahead
}

var Camera = donburi.NewComponentType[CameraData]()

// ScreenShakeData offsets the camera by a decaying amount. Intensity tweens to
// zero over the shake duration.
type ScreenShakeData struct {
	Intensity *gween.Tween
	Peak      float64
	Elapsed   float64
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()
