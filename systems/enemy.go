package systems

import (
	"math"

	"github.com/automoto/hedgecop/components"
	cfg "github.com/automoto/hedgecop/config"
	"github.com/automoto/hedgecop/tags"
	"github.com/yohamta/donburi"
)

func UpdateEnemies(w donburi.World, dt float64) {
	bounds := boundsOf(w)

	// Enemies keep patrolling while the player is dead.
	playerX, hasPlayer := 0.0, false
	if playerEntry, ok := livePlayer(w); ok {
		playerX = components.Object.Get(playerEntry).Bounds().CenterX()
		hasPlayer = true
	}

	tags.Enemy.Each(w, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		if !enemy.Active {
			return
		}
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		enemy.AttackCooldown = tickTimer(enemy.AttackCooldown, dt)
		if bike, ok := enemy.Variant.(*components.Motorcycle); ok {
			bike.RevTimer = tickTimer(bike.RevTimer, dt)
		}

		if enemy.Stunned() {
			enemy.StunTimer = tickTimer(enemy.StunTimer, dt)
			physics.VX = 0
		} else {
			updateEnemyAI(w, enemy, physics, obj, playerX, hasPlayer)
		}

		physics.VY = 0
		integrate(obj, physics, dt)
		x := clamp(obj.X, 0, bounds.Width-obj.W)
		obj.MoveTo(x, bounds.GroundY-obj.H)
	})
}

func updateEnemyAI(w donburi.World, enemy *components.EnemyData, physics *components.PhysicsData, obj *components.ObjectData, playerX float64, hasPlayer bool) {
	if !hasPlayer {
		if enemy.AI != cfg.AIPatrol {
			enterPatrol(enemy)
		}
		patrol(enemy, physics, obj)
		return
	}

	centerX := obj.Bounds().CenterX()
	distance := math.Abs(playerX - centerX)
	enemy.Facing = sign(playerX - centerX)

	previous := enemy.AI
	enemy.AI = nextAIState(enemy, distance)
	if enemy.AI != previous {
		onAIStateChange(w, enemy, previous)
	}

	switch enemy.AI {
	case cfg.AIPatrol:
		patrol(enemy, physics, obj)
	case cfg.AIChase:
		physics.VX = enemy.Facing * chaseSpeed(enemy)
	case cfg.AIAttack:
		physics.VX = 0
		if enemy.AttackCooldown <= 0 {
			fireEnemyAttack(w, enemy)
		}
	}
}

// nextAIState applies at most one transition. Demotion thresholds are wider
// than promotion thresholds so an enemy sitting on a boundary does not flicker.
func nextAIState(enemy *components.EnemyData, distance float64) cfg.AIState {
	switch enemy.AI {
	case cfg.AIPatrol:
		if distance <= enemy.AggroRange {
			return cfg.AIChase
		}
	case cfg.AIChase:
		if distance > enemy.AggroRange*cfg.Enemy.HysteresisMultiplier {
			return cfg.AIPatrol
		}
		if distance <= enemy.AttackRange {
			return cfg.AIAttack
		}
	case cfg.AIAttack:
		if distance > enemy.AttackRange*cfg.Enemy.AttackHysteresisMultiplier {
			return cfg.AIChase
		}
	default:
		return cfg.AIPatrol
	}
	return enemy.AI
}

func onAIStateChange(w donburi.World, enemy *components.EnemyData, from cfg.AIState) {
	switch enemy.AI {
	case cfg.AIPatrol:
		enterPatrol(enemy)
	case cfg.AIChase:
		if car, ok := enemy.Variant.(*components.Car); ok && from == cfg.AIPatrol && !car.Honked {
			car.Honked = true
			PlaySFX(w, cfg.SoundHonk)
		}
	}
}

func enterPatrol(enemy *components.EnemyData) {
	enemy.AI = cfg.AIPatrol
	if car, ok := enemy.Variant.(*components.Car); ok {
		car.Honked = false
	}
}

// patrol walks between PatrolAnchorX-PatrolRange and PatrolAnchorX+PatrolRange.
func patrol(enemy *components.EnemyData, physics *components.PhysicsData, obj *components.ObjectData) {
	if enemy.PatrolDir == 0 {
		enemy.PatrolDir = cfg.DirectionLeft
	}
	if enemy.PatrolDir > 0 && obj.X >= enemy.PatrolAnchorX+enemy.PatrolRange {
		enemy.PatrolDir = cfg.DirectionLeft
	} else if enemy.PatrolDir < 0 && obj.X <= enemy.PatrolAnchorX-enemy.PatrolRange {
		enemy.PatrolDir = cfg.DirectionRight
	}
	physics.VX = enemy.PatrolDir * enemy.Speed * cfg.Enemy.PatrolSpeedFactor
}

func chaseSpeed(enemy *components.EnemyData) float64 {
	if bike, ok := enemy.Variant.(*components.Motorcycle); ok && bike.RevTimer > 0 {
		return enemy.Speed * cfg.Enemy.RevMultiplier
	}
	return enemy.Speed
}

// fireEnemyAttack re-arms the attack cooldown. It plays the variant's cue but
// does not hurt the player; damage only comes from body contact.
func fireEnemyAttack(w donburi.World, enemy *components.EnemyData) {
	enemy.AttackCooldown = cfg.Enemy.Type(enemy.Kind()).AttackCooldown

	switch v := enemy.Variant.(type) {
	case *components.Motorcycle:
		v.RevTimer = cfg.Enemy.RevDuration
		PlaySFX(w, cfg.SoundRev)
	case *components.Car:
		PlaySFX(w, cfg.SoundHonk)
	}
}
