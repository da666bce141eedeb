package tags

import "github.com/yohamta/donburi"

var (
	Player      = donburi.NewTag().SetName("Player")
	Platform    = donburi.NewTag().SetName("Platform")
	Enemy       = donburi.NewTag().SetName("Enemy")
	Projectile  = donburi.NewTag().SetName("Projectile")
	Collectible = donburi.NewTag().SetName("Collectible")
	Spawner     = donburi.NewTag().SetName("Spawner")
)

// Resolv tags for spatial queries
const (
	ResolvSolid       = "solid"
	ResolvPlayer      = "Player"
	ResolvEnemy       = "Enemy"
	ResolvProjectile  = "Projectile"
	ResolvCollectible = "Collectible"
)
