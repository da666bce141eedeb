package systems

import (
	"testing"

	"github.com/automoto/hedgecop/components"
	cfg "github.com/automoto/hedgecop/config"
	"github.com/automoto/hedgecop/systems/factory"
	"github.com/automoto/hedgecop/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDamageToZeroTriggersOneDeath(t *testing.T) {
	w, player := newTestWorld(t, testLevel())
	health := components.Health.Get(player)
	health.Current = 2
	require.Equal(t, 10, health.Max)
	require.Equal(t, 0.0, components.Player.Get(player).InvulnTimer)

	assert.True(t, DamagePlayer(w, 2))

	assert.Equal(t, 0, components.Health.Get(player).Current)
	require.True(t, player.HasComponent(components.Death))
	assert.Equal(t, cfg.Player.RespawnDelay, components.Death.Get(player).Timer)
	assert.Equal(t, cfg.Player.StartingLives-1, components.Lives.Get(player).Lives)

	// Further hits while dead change nothing.
	assert.False(t, DamagePlayer(w, 2))
	killPlayer(w, player)
	assert.Equal(t, cfg.Player.StartingLives-1, components.Lives.Get(player).Lives)
	assert.Equal(t, cfg.Player.RespawnDelay, components.Death.Get(player).Timer)
	assert.False(t, Session(w).GameOver)
}

func TestInvulnerabilityBlocksDamage(t *testing.T) {
	w, player := newTestWorld(t, testLevel())

	assert.True(t, DamagePlayer(w, 3))
	assert.Equal(t, 7, components.Health.Get(player).Current)
	assert.Equal(t, cfg.Player.InvulnDuration, components.Player.Get(player).InvulnTimer)

	assert.False(t, DamagePlayer(w, 3))
	assert.Equal(t, 7, components.Health.Get(player).Current)

	cameraEntry, ok := components.Camera.First(w)
	require.True(t, ok)
	assert.True(t, cameraEntry.HasComponent(components.ScreenShake))
}

func TestLastLifeEndsTheSession(t *testing.T) {
	w, player := newTestWorld(t, testLevel())
	components.Lives.Get(player).Lives = 1

	require.True(t, DamagePlayer(w, 100))
	assert.Equal(t, 0, components.Lives.Get(player).Lives)
	assert.True(t, Session(w).GameOver)
	assert.Contains(t, DrainSounds(w), cfg.SoundGameOver)
}

// punchingPlayer arms a punch for the player standing at the level start.
func punchingPlayer(player *components.PlayerData) {
	player.Weapon = cfg.WeaponPunch
	player.Facing = cfg.DirectionRight
	player.Attack.IsAttacking = true
	player.Attack.AttackTimer = cfg.Weapons.Punch.Duration
}

func TestPunchHitsEveryTickUntilDead(t *testing.T) {
	w, player := newTestWorld(t, testLevel())
	punchingPlayer(components.Player.Get(player))

	// Player spans x 100..124; the punch reaches to 152.
	enemyEntry := spawnEnemy(t, w, "car", 130)
	enemy := components.Enemy.Get(enemyEntry)
	enemy.Health = 2

	UpdateCombat(w, tick)
	assert.Equal(t, 1, enemy.Health)
	assert.True(t, enemy.Active)
	assert.Equal(t, cfg.Weapons.Punch.StunDuration, enemy.StunTimer)
	assert.Equal(t, 130+cfg.Weapons.Punch.Knockback, components.Object.Get(enemyEntry).X)
	assert.Equal(t, 0, Session(w).Score)

	UpdateCombat(w, tick)
	assert.Equal(t, 0, enemy.Health)
	assert.False(t, enemy.Active)
	assert.Equal(t, cfg.Score.MeleeKill, Session(w).Score)
	assert.Equal(t, 1, Session(w).Kills)

	// Inactive enemies are not hit again and leave on the next sweep.
	UpdateCombat(w, tick)
	assert.Equal(t, cfg.Score.MeleeKill, Session(w).Score)
	SweepInactive(w, tick)
	assert.Equal(t, 0, countTagged(w, tags.Enemy))
}

func TestPunchMissesEnemyBehindPlayer(t *testing.T) {
	w, player := newTestWorld(t, testLevel())
	punchingPlayer(components.Player.Get(player))

	behind := spawnEnemy(t, w, "motorcycle", 40)
	UpdateCombat(w, tick)

	assert.Equal(t, cfg.Enemy.Motorcycle.Health, components.Enemy.Get(behind).Health)
}

func TestPunchRectTouchingEdgeDoesNotHit(t *testing.T) {
	w, player := newTestWorld(t, testLevel())
	punchingPlayer(components.Player.Get(player))

	// Left edge exactly at the punch's right edge.
	enemyEntry := spawnEnemy(t, w, "car", 124+cfg.Weapons.Punch.Reach)
	UpdateCombat(w, tick)

	assert.Equal(t, cfg.Enemy.Car.Health, components.Enemy.Get(enemyEntry).Health)
}

func TestProjectileHitScoresRangedKill(t *testing.T) {
	w, _ := newTestWorld(t, testLevel())

	enemyEntry := spawnEnemy(t, w, "motorcycle", 600)
	components.Enemy.Get(enemyEntry).Health = 1
	projectile := factory.CreateProjectile(w, 598, 310, cfg.DirectionRight)

	UpdateCombat(w, tick)

	assert.False(t, components.Enemy.Get(enemyEntry).Active)
	assert.False(t, components.Projectile.Get(projectile).Active)
	assert.Equal(t, cfg.Score.RangedKill, Session(w).Score)
}

func TestEnemyContactDamagesPlayer(t *testing.T) {
	w, player := newTestWorld(t, testLevel())
	enemyEntry := spawnEnemy(t, w, "car", 110)

	UpdateCombat(w, tick)
	assert.Equal(t, cfg.Player.MaxHealth-cfg.Enemy.Car.ContactDamage, components.Health.Get(player).Current)

	// Stunned enemies are harmless.
	components.Player.Get(player).InvulnTimer = 0
	components.Enemy.Get(enemyEntry).StunTimer = 1
	UpdateCombat(w, tick)
	assert.Equal(t, cfg.Player.MaxHealth-cfg.Enemy.Car.ContactDamage, components.Health.Get(player).Current)
}

func TestHealthStaysInRange(t *testing.T) {
	w, player := newTestWorld(t, testLevel())
	level := testLevel()

	for i := 0; i < 600; i++ {
		if i%90 == 0 {
			spawnEnemy(t, w, "car", 120+float64(i%200))
		}
		actions := []cfg.ActionID{cfg.ActionMoveRight}
		if i%10 == 0 {
			actions = append(actions, cfg.ActionAttack)
		}
		press(w, actions...)
		Step(w, tick)

		health := components.Health.Get(player)
		require.GreaterOrEqual(t, health.Current, 0)
		require.LessOrEqual(t, health.Current, health.Max)
		require.GreaterOrEqual(t, components.Lives.Get(player).Lives, 0)
		obj := components.Object.Get(player)
		require.GreaterOrEqual(t, obj.X, 0.0)
		require.LessOrEqual(t, obj.X+obj.W, level.Width)
	}
}
