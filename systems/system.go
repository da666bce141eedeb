package systems

import (
	"github.com/yohamta/donburi"
)

// System advances one concern of the simulation by dt seconds.
type System func(w donburi.World, dt float64)

// Playing is the order systems run in while a level is being played.
// SweepInactive is the only system that destroys entities.
var Playing = []System{
	UpdatePlayer,
	UpdatePlatformCollisions,
	UpdateEnemies,
	UpdateProjectiles,
	UpdateCombat,
	UpdateCollectibles,
	UpdateSpawners,
	SweepInactive,
	UpdateAnimation,
	UpdateCamera,
}

// Step runs one playing tick.
func Step(w donburi.World, dt float64) {
	for _, system := range Playing {
		system(w, dt)
	}
}
