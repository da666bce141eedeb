package factory

import (
	"github.com/automoto/hedgecop/archetypes"
	"github.com/automoto/hedgecop/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

func CreateCamera(w donburi.World, x, y float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(w)
	components.Camera.Set(camera, &components.CameraData{
		Position: math.NewVec2(x, y),
	})
	return camera
}

// CreateSession creates the singleton holding score, input and queued sounds.
func CreateSession(w donburi.World) *donburi.Entry {
	session := archetypes.Session.Spawn(w)
	components.Session.Set(session, &components.SessionData{})
	components.Input.Set(session, &components.InputData{})
	components.Audio.Set(session, &components.AudioData{})
	return session
}
