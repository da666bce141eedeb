package components

import (
	cfg "github.com/automoto/hedgecop/config"
	"github.com/yohamta/donburi"
)

// AnimationData tracks the player's animation state machine.
type AnimationData struct {
	State cfg.AnimState
	Frame int
	Timer float64
}

// AttackData is the player's attack window. IsAttacking implies AttackTimer > 0.
type AttackData struct {
	IsAttacking    bool
	AttackTimer    float64
	CooldownTimer  float64
	SwitchCooldown float64
}

type PlayerData struct {
	Facing      float64 // cfg.DirectionLeft or cfg.DirectionRight
	Weapon      cfg.WeaponID
	Anim        AnimationData
	Attack      AttackData
	InvulnTimer float64
	SpawnX      float64
	SpawnY      float64
}

// FacingRight reports whether the player looks right.
func (p *PlayerData) FacingRight() bool {
	return p.Facing >= 0
}

var Player = donburi.NewComponentType[PlayerData]()
