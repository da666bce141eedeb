package components

import (
	cfg "github.com/automoto/hedgecop/config"
	"github.com/yohamta/donburi"
)

// EnemyVariant is the type-specific part of an enemy. Systems switch on the
// concrete type.
type EnemyVariant interface {
	Kind() cfg.EnemyKind
}

// Car honks once each time it starts a chase.
type Car struct {
	Honked bool
}

func (*Car) Kind() cfg.EnemyKind { return cfg.EnemyCar }

// Motorcycle revs when its attack cooldown fires and chases faster while
// RevTimer is running.
type Motorcycle struct {
	RevTimer float64
}

func (*Motorcycle) Kind() cfg.EnemyKind { return cfg.EnemyMotorcycle }

// EnemyData is the base record shared by every enemy variant.
type EnemyData struct {
	Variant EnemyVariant

	Speed  float64
	Health int
	Facing float64
	AI     cfg.AIState

	PatrolAnchorX float64
	PatrolDir     float64
	PatrolRange   float64
	AggroRange    float64
	AttackRange   float64

	AttackCooldown float64
	StunTimer      float64
	Active         bool
}

// Kind returns the enemy type derived from its variant.
func (e *EnemyData) Kind() cfg.EnemyKind {
	if e.Variant == nil {
		return cfg.EnemyCar
	}
	return e.Variant.Kind()
}

// Stunned reports whether the AI is suspended this tick.
func (e *EnemyData) Stunned() bool {
	return e.StunTimer > 0
}

var Enemy = donburi.NewComponentType[EnemyData]()
