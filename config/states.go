package config

import "fmt"

// AnimState is the player's animation state.
type AnimState int

const (
	AnimIdle AnimState = iota
	AnimWalking
	AnimJumping
	AnimFalling
	AnimPunching
	AnimShooting
	animStateCount
)

var animStateNames = [...]string{"idle", "walking", "jumping", "falling", "punching", "shooting"}

func (s AnimState) Valid() bool { return s >= 0 && s < animStateCount }

func (s AnimState) String() string {
	if !s.Valid() {
		return fmt.Sprintf("AnimState(%d)", int(s))
	}
	return animStateNames[s]
}

// WeaponID is the player's equipped weapon.
type WeaponID int

const (
	WeaponPunch WeaponID = iota
	WeaponGun
	weaponCount
)

func (w WeaponID) Valid() bool { return w >= 0 && w < weaponCount }

func (w WeaponID) String() string {
	switch w {
	case WeaponPunch:
		return "punch"
	case WeaponGun:
		return "gun"
	}
	return fmt.Sprintf("WeaponID(%d)", int(w))
}

// Next cycles to the other weapon.
func (w WeaponID) Next() WeaponID {
	return (w + 1) % weaponCount
}

// AIState is an enemy's behavior state.
type AIState int

const (
	AIPatrol AIState = iota
	AIChase
	AIAttack
)

func (s AIState) String() string {
	switch s {
	case AIPatrol:
		return "patrol"
	case AIChase:
		return "chase"
	case AIAttack:
		return "attack"
	}
	return fmt.Sprintf("AIState(%d)", int(s))
}

// EnemyKind identifies an enemy variant.
type EnemyKind int

const (
	EnemyCar EnemyKind = iota
	EnemyMotorcycle
)

func (k EnemyKind) String() string {
	if k == EnemyMotorcycle {
		return "motorcycle"
	}
	return "car"
}

// ParseEnemyKind maps a level file type name to an EnemyKind.
func ParseEnemyKind(s string) (EnemyKind, error) {
	switch s {
	case "car", "":
		return EnemyCar, nil
	case "motorcycle", "bike":
		return EnemyMotorcycle, nil
	}
	return EnemyCar, fmt.Errorf("unknown enemy type %q", s)
}

// CollectibleKind identifies a pickup.
type CollectibleKind int

const (
	CollectibleDumpling CollectibleKind = iota
	CollectibleNoodleSoup
)

func (k CollectibleKind) String() string {
	if k == CollectibleNoodleSoup {
		return "noodle_soup"
	}
	return "dumpling"
}

// ParseCollectibleKind maps a level file type name to a CollectibleKind.
func ParseCollectibleKind(s string) (CollectibleKind, error) {
	switch s {
	case "dumpling", "":
		return CollectibleDumpling, nil
	case "noodle_soup", "noodles":
		return CollectibleNoodleSoup, nil
	}
	return CollectibleDumpling, fmt.Errorf("unknown collectible type %q", s)
}

// PlatformKind tags level geometry.
type PlatformKind int

const (
	PlatformGround PlatformKind = iota
	PlatformLedge
)

func (k PlatformKind) String() string {
	if k == PlatformLedge {
		return "platform"
	}
	return "ground"
}

// SpawnerKind distinguishes the two spawner instances.
type SpawnerKind int

const (
	SpawnEnemies SpawnerKind = iota
	SpawnCollectibles
)

// VictoryCondition is how a level is won.
type VictoryCondition string

const (
	VictoryReachExit  VictoryCondition = "reach_exit"
	VictoryDefeatBoss VictoryCondition = "defeat_boss"
)
