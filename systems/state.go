package systems

import (
	"github.com/automoto/hedgecop/components"
	cfg "github.com/automoto/hedgecop/config"
	"github.com/yohamta/donburi"
)

// UpdateAnimation derives the player's animation state from what they are
// doing and advances its frame counter.
func UpdateAnimation(w donburi.World, dt float64) {
	playerEntry, ok := livePlayer(w)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)

	anim := &player.Anim
	next := animStateFor(player, physics)
	if next != anim.State {
		*anim = components.AnimationData{State: next}
		return
	}

	frames := cfg.Animation.FrameCounts[anim.State]
	if frames <= 1 || cfg.Animation.FrameDuration <= 0 {
		anim.Frame = 0
		return
	}
	anim.Timer += dt
	for anim.Timer >= cfg.Animation.FrameDuration {
		anim.Timer -= cfg.Animation.FrameDuration
		anim.Frame = (anim.Frame + 1) % frames
	}
}

func animStateFor(player *components.PlayerData, physics *components.PhysicsData) cfg.AnimState {
	switch {
	case player.Attack.IsAttacking && player.Weapon == cfg.WeaponGun:
		return cfg.AnimShooting
	case player.Attack.IsAttacking:
		return cfg.AnimPunching
	case !physics.OnGround && physics.VY < 0:
		return cfg.AnimJumping
	case !physics.OnGround:
		return cfg.AnimFalling
	case physics.VX != 0:
		return cfg.AnimWalking
	default:
		return cfg.AnimIdle
	}
}
