package systems

import (
	"github.com/automoto/hedgecop/components"
	"github.com/automoto/hedgecop/tags"
	"github.com/yohamta/donburi"
)

// SweepInactive destroys every enemy, projectile and collectible that was
// deactivated this tick. Entries are collected first and removed from the
// back so removal never disturbs a live iteration.
func SweepInactive(w donburi.World, _ float64) {
	var dead []*donburi.Entry

	tags.Enemy.Each(w, func(e *donburi.Entry) {
		if !components.Enemy.Get(e).Active {
			dead = append(dead, e)
		}
	})
	tags.Projectile.Each(w, func(e *donburi.Entry) {
		if !components.Projectile.Get(e).Active {
			dead = append(dead, e)
		}
	})
	tags.Collectible.Each(w, func(e *donburi.Entry) {
		if !components.Collectible.Get(e).Active {
			dead = append(dead, e)
		}
	})

	space := spaceOf(w)
	for i := len(dead) - 1; i >= 0; i-- {
		e := dead[i]
		if !e.Valid() {
			continue
		}
		if obj := components.Object.Get(e); obj.Object != nil && space != nil {
			space.Remove(obj.Object)
		}
		w.Remove(e.Entity())
	}
}
