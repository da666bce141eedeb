package components

import (
	"github.com/yohamta/donburi"
)

// PhysicsData is the velocity state of a moving body. PrevX/PrevY hold the
// position before the latest integration step.
type PhysicsData struct {
	VX, VY       float64
	PrevX, PrevY float64
	OnGround     bool
	Jumping      bool
}

var Physics = donburi.NewComponentType[PhysicsData]()
