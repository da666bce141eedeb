package factory

import (
	"github.com/automoto/hedgecop/archetypes"
	"github.com/automoto/hedgecop/components"
	cfg "github.com/automoto/hedgecop/config"
	"github.com/automoto/hedgecop/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateProjectile fires a bullet from (x, y) in direction (+1 or -1).
func CreateProjectile(w donburi.World, x, y, direction float64) *donburi.Entry {
	p := archetypes.Projectile.Spawn(w)

	gun := cfg.Weapons.Gun
	obj := resolv.NewObject(x, y, gun.ProjectileWidth, gun.ProjectileHeight, tags.ResolvProjectile)
	obj.Data = p
	components.Object.SetValue(p, components.ObjectData{Object: obj})
	addToSpace(w, obj)

	components.Projectile.SetValue(p, components.ProjectileData{
		Lifetime: gun.ProjectileLife,
		Damage:   gun.Damage,
		Active:   true,
	})
	components.Physics.SetValue(p, components.PhysicsData{
		VX:    gun.ProjectileSpeed * direction,
		PrevX: x,
		PrevY: y,
	})

	return p
}
