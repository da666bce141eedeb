package systems

import (
	"github.com/automoto/hedgecop/collision"
	"github.com/automoto/hedgecop/components"
	cfg "github.com/automoto/hedgecop/config"
	"github.com/automoto/hedgecop/tags"
	"github.com/yohamta/donburi"
)

// UpdateCombat resolves punch windows, projectile hits and enemy contact
// damage against the positions produced earlier in the tick.
func UpdateCombat(w donburi.World, _ float64) {
	resolvePunch(w)
	resolveProjectileHits(w)
	resolveEnemyContact(w)
}

// PunchRect is the hit area of a punch thrown by a player at body.
func PunchRect(body collision.Rect, facing float64) collision.Rect {
	punch := cfg.Weapons.Punch
	x := body.Right()
	if facing < 0 {
		x = body.X - punch.Reach
	}
	return collision.Rect{X: x, Y: body.Y + punch.BandOffsetY, W: punch.Reach, H: punch.BandHeight}
}

// resolvePunch hits every enemy inside the punch area, on every tick the
// punch is active.
func resolvePunch(w donburi.World) {
	playerEntry, ok := livePlayer(w)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	if !punchActive(player) {
		return
	}

	area := PunchRect(components.Object.Get(playerEntry).Bounds(), player.Facing)
	punch := cfg.Weapons.Punch
	for _, e := range overlappingEntries(w, area, tags.ResolvEnemy) {
		if !e.HasComponent(components.Enemy) || !components.Enemy.Get(e).Active {
			continue
		}
		HitEnemy(w, e, punch.Damage, player.Facing*punch.Knockback, cfg.Score.MeleeKill)
	}
}

func resolveProjectileHits(w donburi.World) {
	for _, p := range entriesOf(w, tags.Projectile) {
		projectile := components.Projectile.Get(p)
		if !projectile.Active {
			continue
		}
		area := components.Object.Get(p).Bounds()
		direction := sign(components.Physics.Get(p).VX)

		for _, e := range overlappingEntries(w, area, tags.ResolvEnemy) {
			if !e.HasComponent(components.Enemy) || !components.Enemy.Get(e).Active {
				continue
			}
			HitEnemy(w, e, projectile.Damage, direction*cfg.Weapons.Gun.Knockback, cfg.Score.RangedKill)
			projectile.Active = false
			break
		}
	}
}

// resolveEnemyContact hurts the player when an active, unstunned enemy
// overlaps them.
func resolveEnemyContact(w donburi.World) {
	playerEntry, ok := livePlayer(w)
	if !ok {
		return
	}
	body := components.Object.Get(playerEntry).Bounds()
	for _, e := range overlappingEntries(w, body, tags.ResolvEnemy) {
		if !e.HasComponent(components.Enemy) {
			continue
		}
		enemy := components.Enemy.Get(e)
		if !enemy.Active || enemy.Stunned() {
			continue
		}
		if DamagePlayer(w, cfg.Enemy.Type(enemy.Kind()).ContactDamage) {
			return
		}
	}
}

// overlappingEntries returns the entries whose bodies strictly overlap area.
func overlappingEntries(w donburi.World, area collision.Rect, tag string) []*donburi.Entry {
	var entries []*donburi.Entry
	for _, obj := range collision.Touching(spaceOf(w), area, tag) {
		if e, ok := obj.Data.(*donburi.Entry); ok && e.Valid() {
			entries = append(entries, e)
		}
	}
	return entries
}

// HitEnemy applies damage, stun and knockback to an enemy. An enemy brought
// to zero health is deactivated and the kill is scored.
func HitEnemy(w donburi.World, e *donburi.Entry, damage int, knockback float64, killScore int) {
	enemy := components.Enemy.Get(e)
	if !enemy.Active {
		return
	}

	enemy.Health -= damage
	if enemy.Health < 0 {
		enemy.Health = 0
	}
	enemy.StunTimer = cfg.Weapons.Punch.StunDuration

	obj := components.Object.Get(e)
	bounds := boundsOf(w)
	obj.MoveTo(clamp(obj.X+knockback, 0, bounds.Width-obj.W), obj.Y)

	if enemy.Health > 0 {
		PlaySFX(w, cfg.SoundHit)
		return
	}

	enemy.Active = false
	session := sessionOf(w)
	session.Score += killScore
	session.Kills++
	PlaySFX(w, cfg.SoundEnemyDown)
}

// DamagePlayer applies amount to the player unless they are invulnerable or
// already dead. It reports whether the damage landed.
func DamagePlayer(w donburi.World, amount int) bool {
	playerEntry, ok := livePlayer(w)
	if !ok || amount <= 0 {
		return false
	}
	player := components.Player.Get(playerEntry)
	if player.InvulnTimer > 0 {
		return false
	}

	health := components.Health.Get(playerEntry)
	health.Current -= amount
	health.Clamp()
	player.InvulnTimer = cfg.Player.InvulnDuration

	TriggerScreenShake(w, cfg.Camera.DamageShakeIntensity, cfg.Camera.DamageShakeDuration)

	if health.Current <= 0 {
		startDeathSequence(w, playerEntry)
		return true
	}
	PlaySFX(w, cfg.SoundHurt)
	return true
}

// killPlayer is the fatal path for falling out of the world. It ignores
// invulnerability.
func killPlayer(w donburi.World, playerEntry *donburi.Entry) {
	components.Health.Get(playerEntry).Current = 0
	startDeathSequence(w, playerEntry)
}

// startDeathSequence runs once per death: it takes a life, freezes the player
// and starts the respawn countdown. Running out of lives ends the session.
func startDeathSequence(w donburi.World, playerEntry *donburi.Entry) {
	if playerEntry.HasComponent(components.Death) {
		return
	}

	lives := components.Lives.Get(playerEntry)
	lives.Lives--
	if lives.Lives < 0 {
		lives.Lives = 0
	}

	donburi.Add(playerEntry, components.Death, &components.DeathData{
		Timer: cfg.Player.RespawnDelay,
	})

	physics := components.Physics.Get(playerEntry)
	physics.VX = 0
	physics.VY = 0

	player := components.Player.Get(playerEntry)
	player.Attack = components.AttackData{}

	PlaySFX(w, cfg.SoundDeath)

	if lives.Lives <= 0 {
		sessionOf(w).GameOver = true
		PlaySFX(w, cfg.SoundGameOver)
	}
}
