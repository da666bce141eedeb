package systems

import (
	"github.com/automoto/hedgecop/components"
	"github.com/automoto/hedgecop/tags"
	"github.com/yohamta/donburi"
)

// UpdateProjectiles moves bullets and retires them when their lifetime runs
// out or they leave the level.
func UpdateProjectiles(w donburi.World, dt float64) {
	bounds := boundsOf(w)

	tags.Projectile.Each(w, func(e *donburi.Entry) {
		projectile := components.Projectile.Get(e)
		if !projectile.Active {
			return
		}

		projectile.Lifetime -= dt
		if projectile.Lifetime <= 0 {
			projectile.Lifetime = 0
			projectile.Active = false
			return
		}

		obj := components.Object.Get(e)
		integrate(obj, components.Physics.Get(e), dt)

		if obj.X+obj.W < 0 || obj.X > bounds.Width || obj.Y+obj.H < 0 || obj.Y > bounds.Height {
			projectile.Active = false
		}
	})
}
