package systems

import (
	"testing"

	"github.com/automoto/hedgecop/components"
	cfg "github.com/automoto/hedgecop/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

// placeAtDistance puts an enemy so its center is distance pixels right of
// the player's center (x 100..124 at the level start).
func placeAtDistance(e *donburi.Entry, distance float64) {
	obj := components.Object.Get(e)
	moveTo(e, 112+distance-obj.W/2, obj.Y)
}

func TestAIHysteresisBands(t *testing.T) {
	w, _ := newTestWorld(t, testLevel())
	enemyEntry := spawnEnemy(t, w, "car", 1000)
	enemy := components.Enemy.Get(enemyEntry)
	require.Equal(t, 220.0, enemy.AggroRange)

	placeAtDistance(enemyEntry, 220.5)
	UpdateEnemies(w, 0)
	assert.Equal(t, cfg.AIPatrol, enemy.AI)

	placeAtDistance(enemyEntry, 220)
	UpdateEnemies(w, 0)
	assert.Equal(t, cfg.AIChase, enemy.AI, "exactly at aggro range promotes")
	assert.Equal(t, cfg.DirectionLeft, enemy.Facing)
	assert.Contains(t, DrainSounds(w), cfg.SoundHonk)

	placeAtDistance(enemyEntry, 330)
	UpdateEnemies(w, 0)
	assert.Equal(t, cfg.AIChase, enemy.AI, "demotion needs more than 1.5x aggro")

	placeAtDistance(enemyEntry, 330.5)
	UpdateEnemies(w, 0)
	assert.Equal(t, cfg.AIPatrol, enemy.AI)
}

func TestAttackStateHoldsAndNeverDamages(t *testing.T) {
	w, player := newTestWorld(t, testLevel())
	enemyEntry := spawnEnemy(t, w, "car", 1000)
	enemy := components.Enemy.Get(enemyEntry)
	enemy.AI = cfg.AIChase

	placeAtDistance(enemyEntry, 30)
	UpdateEnemies(w, tick)
	assert.Equal(t, cfg.AIAttack, enemy.AI)
	assert.Equal(t, 0.0, components.Physics.Get(enemyEntry).VX)
	assert.Equal(t, cfg.Enemy.Car.AttackCooldown, enemy.AttackCooldown)

	for i := 0; i < 200; i++ {
		UpdateEnemies(w, tick)
	}
	assert.Equal(t, cfg.Player.MaxHealth, components.Health.Get(player).Current)

	placeAtDistance(enemyEntry, 47.5)
	UpdateEnemies(w, 0)
	assert.Equal(t, cfg.AIAttack, enemy.AI)

	placeAtDistance(enemyEntry, 48.5)
	UpdateEnemies(w, 0)
	assert.Equal(t, cfg.AIChase, enemy.AI)
}

func TestMotorcycleRevBoostsChase(t *testing.T) {
	w, _ := newTestWorld(t, testLevel())
	enemyEntry := spawnEnemy(t, w, "motorcycle", 1000)
	enemy := components.Enemy.Get(enemyEntry)
	enemy.AI = cfg.AIAttack

	placeAtDistance(enemyEntry, 20)
	UpdateEnemies(w, 0)
	bike, ok := enemy.Variant.(*components.Motorcycle)
	require.True(t, ok)
	assert.Equal(t, cfg.Enemy.RevDuration, bike.RevTimer)
	assert.Contains(t, DrainSounds(w), cfg.SoundRev)

	placeAtDistance(enemyEntry, 100)
	UpdateEnemies(w, 0)
	assert.Equal(t, cfg.AIChase, enemy.AI)
	assert.Equal(t, -cfg.Enemy.Motorcycle.Speed*cfg.Enemy.RevMultiplier, components.Physics.Get(enemyEntry).VX)

	UpdateEnemies(w, cfg.Enemy.RevDuration)
	assert.Equal(t, -cfg.Enemy.Motorcycle.Speed, components.Physics.Get(enemyEntry).VX)
}

func TestPatrolTurnsAtRange(t *testing.T) {
	w, _ := newTestWorld(t, testLevel())
	enemyEntry := spawnEnemy(t, w, "car", 1500)
	enemy := components.Enemy.Get(enemyEntry)

	UpdateEnemies(w, tick)
	assert.Equal(t, cfg.AIPatrol, enemy.AI)
	assert.Equal(t, -cfg.Enemy.Car.Speed*cfg.Enemy.PatrolSpeedFactor, components.Physics.Get(enemyEntry).VX)

	moveTo(enemyEntry, 1500-enemy.PatrolRange, 0)
	UpdateEnemies(w, tick)
	assert.Equal(t, cfg.DirectionRight, enemy.PatrolDir)
	assert.Greater(t, components.Physics.Get(enemyEntry).VX, 0.0)
}

func TestStunnedEnemySkipsAI(t *testing.T) {
	w, _ := newTestWorld(t, testLevel())
	enemyEntry := spawnEnemy(t, w, "car", 1000)
	enemy := components.Enemy.Get(enemyEntry)
	enemy.StunTimer = 0.5

	placeAtDistance(enemyEntry, 100)
	UpdateEnemies(w, 0.1)

	assert.Equal(t, cfg.AIPatrol, enemy.AI)
	assert.InDelta(t, 0.4, enemy.StunTimer, 1e-9)
	assert.Equal(t, 0.0, components.Physics.Get(enemyEntry).VX)
	assert.Equal(t, 1, LiveCount(w, cfg.SpawnEnemies))
}

func TestEnemiesArePinnedToGround(t *testing.T) {
	w, _ := newTestWorld(t, testLevel())
	car := spawnEnemy(t, w, "car", 1500)
	bike := spawnEnemy(t, w, "motorcycle", 1700)

	moveTo(car, 1500, 12)
	UpdateEnemies(w, tick)

	assert.Equal(t, 330-cfg.Enemy.Car.Height, components.Object.Get(car).Y)
	assert.Equal(t, 330-cfg.Enemy.Motorcycle.Height, components.Object.Get(bike).Y)
}

func TestEnemiesPatrolWhilePlayerIsDead(t *testing.T) {
	w, player := newTestWorld(t, testLevel())
	enemyEntry := spawnEnemy(t, w, "car", 1000)
	enemy := components.Enemy.Get(enemyEntry)
	enemy.AI = cfg.AIChase
	killPlayer(w, player)

	UpdateEnemies(w, tick)
	assert.Equal(t, cfg.AIPatrol, enemy.AI)
}
