package systems

import (
	"github.com/automoto/hedgecop/collision"
	"github.com/automoto/hedgecop/components"
	cfg "github.com/automoto/hedgecop/config"
	"github.com/automoto/hedgecop/tags"
	"github.com/yohamta/donburi"
)

// UpdateCollectibles bobs pickups in place and heals the player on contact.
func UpdateCollectibles(w donburi.World, dt float64) {
	bounds := boundsOf(w)

	var body collision.Rect
	playerEntry, alive := livePlayer(w)
	if alive {
		body = components.Object.Get(playerEntry).Bounds()
	}

	tags.Collectible.Each(w, func(e *donburi.Entry) {
		c := components.Collectible.Get(e)
		if !c.Active {
			return
		}

		if c.Bob != nil {
			offset, _, done := c.Bob.Update(float32(dt))
			c.Phase = float64(offset)
			if done {
				c.Bob.Reset()
			}
		}
		obj := components.Object.Get(e)
		obj.MoveTo(obj.X, c.BaseY+c.Phase)

		if obj.X+obj.W < 0 || obj.X > bounds.Width || obj.Y > bounds.Height {
			c.Active = false
			return
		}

		if alive && collision.RectOverlap(body, obj.Bounds()) {
			pickUp(w, playerEntry, c)
		}
	})
}

func pickUp(w donburi.World, playerEntry *donburi.Entry, c *components.CollectibleData) {
	health := components.Health.Get(playerEntry)
	health.Current += c.Heal
	health.Clamp()

	addScore(w, cfg.Score.Pickup)
	c.Active = false
	PlaySFX(w, cfg.SoundPickup)
}
