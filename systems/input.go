package systems

import (
	"github.com/automoto/hedgecop/components"
	"github.com/yohamta/donburi"
)

// SetInput copies the host's latched input into the world for this tick.
func SetInput(w donburi.World, in components.InputData) {
	e, ok := components.Input.First(w)
	if !ok {
		return
	}
	components.Input.SetValue(e, in)
}

func inputOf(w donburi.World) *components.InputData {
	e, ok := components.Input.First(w)
	if !ok {
		return &components.InputData{}
	}
	return components.Input.Get(e)
}
