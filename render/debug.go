package render

import (
	"fmt"
	"image/color"

	"github.com/automoto/hedgecop/components"
	"github.com/automoto/hedgecop/systems"
	"github.com/automoto/hedgecop/tags"
	"github.com/yohamta/donburi"
)

// DrawDebug outlines every body in the collision space and labels enemies
// with their AI state.
func DrawDebug(w donburi.World, r Renderer) {
	entry, ok := components.Space.First(w)
	if !ok {
		return
	}
	camX, camY := r.Camera()
	space := components.Space.Get(entry)

	for _, obj := range space.Objects() {
		c := color.RGBA{0, 255, 255, 255}
		switch {
		case obj.HasTags(tags.ResolvSolid):
			c = color.RGBA{100, 100, 100, 255}
		case obj.HasTags(tags.ResolvPlayer):
			c = color.RGBA{0, 0, 255, 255}
		case obj.HasTags(tags.ResolvEnemy):
			c = color.RGBA{255, 0, 0, 255}
		case obj.HasTags(tags.ResolvProjectile):
			c = color.RGBA{0, 255, 0, 255}
		}
		r.StrokeRect(obj.X-camX, obj.Y-camY, obj.W, obj.H, c)

		e, ok := obj.Data.(*donburi.Entry)
		if !ok || !e.Valid() || !e.HasComponent(components.Enemy) {
			continue
		}
		enemy := components.Enemy.Get(e)
		r.DrawText(enemy.AI.String(), obj.X-camX, obj.Y-camY-lineHeight, c)
	}

	if p, ok := tags.Player.First(w); ok && p.HasComponent(components.Player) {
		player := components.Player.Get(p)
		if player.Attack.IsAttacking {
			body := components.Object.Get(p).Bounds()
			fist := systems.PunchRect(body, player.Facing)
			r.StrokeRect(fist.X-camX, fist.Y-camY, fist.W, fist.H, color.RGBA{255, 255, 0, 255})
		}
	}
	r.DrawText(fmt.Sprintf("bodies %d", len(space.Objects())), 10, 80, color.RGBA{0, 255, 255, 255})
}
