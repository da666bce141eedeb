package systems

import (
	"github.com/automoto/hedgecop/collision"
	"github.com/automoto/hedgecop/components"
	"github.com/yohamta/donburi"
)

// contactTolerance absorbs float drift when comparing the previous position
// against a platform edge.
const contactTolerance = 0.5

// UpdatePlatformCollisions resolves the player against level platforms.
// Platforms are tested in level order and only the first one that produces a
// resolution is applied this tick; stacked or seamed platforms can therefore
// leave a residual overlap until the next tick.
func UpdatePlatformCollisions(w donburi.World, _ float64) {
	playerEntry, ok := livePlayer(w)
	if !ok {
		return
	}
	level, ok := levelData(w)
	if !ok {
		return
	}

	obj := components.Object.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)

	for _, platformEntry := range level.Platforms {
		if !platformEntry.Valid() {
			continue
		}
		platform := components.Object.Get(platformEntry).Bounds()
		if resolvePlatform(obj, physics, platform) {
			return
		}
	}
}

// resolvePlatform applies the first resolution case that matches and reports
// whether one did.
func resolvePlatform(obj *components.ObjectData, physics *components.PhysicsData, platform collision.Rect) bool {
	body := obj.Bounds()
	if !collision.RectOverlap(body, platform) {
		return false
	}

	switch {
	case physics.VY > 0 && physics.PrevY+body.H <= platform.Y+contactTolerance:
		// Landing on top.
		obj.MoveTo(obj.X, platform.Y-body.H)
		physics.VY = 0
		physics.OnGround = true
		physics.Jumping = false
	case physics.VY < 0 && physics.PrevY >= platform.Bottom()-contactTolerance:
		// Head hit the underside.
		obj.MoveTo(obj.X, platform.Bottom())
		physics.VY = 0
	case physics.VX != 0:
		// Snap to whichever side edge is nearer.
		if body.CenterX() < platform.CenterX() {
			obj.MoveTo(platform.X-body.W, obj.Y)
		} else {
			obj.MoveTo(platform.Right(), obj.Y)
		}
		physics.VX = 0
	default:
		return false
	}
	return true
}
