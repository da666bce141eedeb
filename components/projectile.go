package components

import "github.com/yohamta/donburi"

// ProjectileData is a bullet. Velocity lives in PhysicsData.
type ProjectileData struct {
	Lifetime float64 // seconds left
	Damage   int
	Active   bool
}

var Projectile = donburi.NewComponentType[ProjectileData]()
