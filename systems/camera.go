package systems

import (
	"math"

	"github.com/automoto/hedgecop/components"
	cfg "github.com/automoto/hedgecop/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// UpdateCamera eases the viewport toward the player, keeps it inside the
// level and adds any active screen shake.
func UpdateCamera(w donburi.World, dt float64) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := playerEntry(w)
	if !ok {
		return
	}
	body := components.Object.Get(playerEntry).Bounds()
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	bounds := boundsOf(w)

	// Look-ahead only moves while the player does.
	if math.Abs(physics.VX) > cfg.Camera.LookAheadSpeedThreshold {
		targetLookAhead := player.Facing * cfg.Camera.LookAheadDistanceX
		camera.LookAheadX += (targetLookAhead - camera.LookAheadX) * cfg.Camera.LookAheadSmoothing
	}

	screenWidth := float64(cfg.C.Width)
	screenHeight := float64(cfg.C.Height)

	targetX := body.CenterX() - screenWidth/2 + camera.LookAheadX
	targetY := body.CenterY() - screenHeight/2
	targetX = clamp(targetX, 0, bounds.Width-screenWidth)
	targetY = clamp(targetY, 0, bounds.Height-screenHeight)

	camera.Position.X += (targetX - camera.Position.X) * cfg.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * cfg.Camera.FollowSmoothing

	updateScreenShake(cameraEntry, camera, dt)
}

// updateScreenShake offsets the camera by the shake's decaying intensity and
// removes the shake once its tween completes.
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData, dt float64) {
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed += dt
	intensity, done := shake.Intensity.Update(float32(dt))

	// Oscillate on both axes at slightly different rates.
	camera.Position.X += math.Sin(shake.Elapsed*66) * float64(intensity)
	camera.Position.Y += math.Cos(shake.Elapsed*78) * float64(intensity)

	if done {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a shake that decays from intensity to zero over
// duration seconds. A weaker shake never replaces a stronger one in progress.
func TriggerScreenShake(w donburi.World, intensity, duration float64) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok || intensity <= 0 || duration <= 0 {
		return
	}

	tween := gween.New(float32(intensity), 0, float32(duration), ease.OutQuad)
	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		if intensity > shake.Peak {
			shake.Intensity = tween
			shake.Peak = intensity
			shake.Elapsed = 0
		}
		return
	}

	donburi.Add(cameraEntry, components.ScreenShake, &components.ScreenShakeData{
		Intensity: tween,
		Peak:      intensity,
	})
}

// CameraPosition returns the viewport's top-left corner.
func CameraPosition(w donburi.World) (x, y float64) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return 0, 0
	}
	camera := components.Camera.Get(cameraEntry)
	return camera.Position.X, camera.Position.Y
}
