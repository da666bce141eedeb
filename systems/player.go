package systems

import (
	"github.com/automoto/hedgecop/components"
	cfg "github.com/automoto/hedgecop/config"
	"github.com/automoto/hedgecop/systems/factory"
	"github.com/yohamta/donburi"
)

func UpdatePlayer(w donburi.World, dt float64) {
	playerEntry, ok := playerEntry(w)
	if !ok {
		return
	}

	// A dead player only counts down to respawn.
	if playerEntry.HasComponent(components.Death) {
		updateRespawn(w, playerEntry, dt)
		return
	}

	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	obj := components.Object.Get(playerEntry)
	input := inputOf(w)

	tickPlayerTimers(player, dt)
	sanitizePlayerState(player)

	handleWeaponSwitch(w, input, player)
	handleAttackInput(w, input, player, obj)
	handleMovementInput(input, player, physics)
	handleJumpInput(w, input, player, physics)

	// Airborne until platform collision says otherwise.
	physics.OnGround = false
	physics.VY += cfg.Player.Gravity * dt
	integrate(obj, physics, dt)

	bounds := boundsOf(w)
	if x := clamp(obj.X, 0, bounds.Width-obj.W); x != obj.X {
		obj.MoveTo(x, obj.Y)
		physics.VX = 0
	}

	if obj.Y > bounds.Height {
		killPlayer(w, playerEntry)
	}
}

func tickPlayerTimers(player *components.PlayerData, dt float64) {
	attack := &player.Attack
	attack.AttackTimer = tickTimer(attack.AttackTimer, dt)
	attack.CooldownTimer = tickTimer(attack.CooldownTimer, dt)
	attack.SwitchCooldown = tickTimer(attack.SwitchCooldown, dt)
	player.InvulnTimer = tickTimer(player.InvulnTimer, dt)

	if attack.AttackTimer <= 0 {
		attack.IsAttacking = false
	}
}

// tickTimer counts a timer down by dt, stopping at zero.
func tickTimer(t, dt float64) float64 {
	t -= dt
	if t < 0 {
		return 0
	}
	return t
}

// sanitizePlayerState falls back to safe values for any corrupt enum.
func sanitizePlayerState(player *components.PlayerData) {
	if !player.Anim.State.Valid() {
		player.Anim = components.AnimationData{State: cfg.AnimIdle}
	}
	if !player.Weapon.Valid() {
		player.Weapon = cfg.Weapons.Default
	}
	if player.Facing != cfg.DirectionLeft && player.Facing != cfg.DirectionRight {
		player.Facing = cfg.DirectionRight
	}
}

func handleWeaponSwitch(w donburi.World, input *components.InputData, player *components.PlayerData) {
	if !input.Action(cfg.ActionSwitchWeapon).JustPressed {
		return
	}
	if player.Attack.SwitchCooldown > 0 || player.Attack.IsAttacking {
		return
	}
	player.Weapon = player.Weapon.Next()
	player.Attack.SwitchCooldown = cfg.Weapons.SwitchCooldown
	PlaySFX(w, cfg.SoundMenuSelect)
}

func handleAttackInput(w donburi.World, input *components.InputData, player *components.PlayerData, obj *components.ObjectData) {
	if !input.Action(cfg.ActionAttack).JustPressed {
		return
	}
	attack := &player.Attack
	if attack.IsAttacking || attack.CooldownTimer > 0 {
		return
	}

	switch player.Weapon {
	case cfg.WeaponGun:
		gun := cfg.Weapons.Gun
		attack.IsAttacking = true
		attack.AttackTimer = gun.Duration
		attack.CooldownTimer = gun.Cooldown

		muzzleX := obj.X + obj.W
		if !player.FacingRight() {
			muzzleX = obj.X - gun.ProjectileWidth
		}
		factory.CreateProjectile(w, muzzleX, obj.Y+gun.MuzzleOffsetY, player.Facing)
		PlaySFX(w, cfg.SoundShoot)
	default:
		punch := cfg.Weapons.Punch
		attack.IsAttacking = true
		attack.AttackTimer = punch.Duration
		attack.CooldownTimer = punch.Cooldown
		PlaySFX(w, cfg.SoundPunch)
	}
}

// punchActive reports whether a punch currently locks movement and can hit.
func punchActive(player *components.PlayerData) bool {
	return player.Attack.IsAttacking && player.Weapon == cfg.WeaponPunch
}

func handleMovementInput(input *components.InputData, player *components.PlayerData, physics *components.PhysicsData) {
	dir := 0.0
	if input.Action(cfg.ActionMoveLeft).Pressed {
		dir--
	}
	if input.Action(cfg.ActionMoveRight).Pressed {
		dir++
	}

	if dir != 0 && !player.Attack.IsAttacking {
		player.Facing = dir
	}

	if punchActive(player) {
		physics.VX = 0
		return
	}
	physics.VX = dir * cfg.Player.Speed
}

func handleJumpInput(w donburi.World, input *components.InputData, player *components.PlayerData, physics *components.PhysicsData) {
	if !input.Action(cfg.ActionJump).JustPressed {
		return
	}
	if !physics.OnGround || physics.Jumping || player.Attack.IsAttacking {
		return
	}
	physics.VY = cfg.Player.JumpVelocity
	physics.Jumping = true
	physics.OnGround = false
	PlaySFX(w, cfg.SoundJump)
}

func updateRespawn(w donburi.World, playerEntry *donburi.Entry, dt float64) {
	death := components.Death.Get(playerEntry)
	death.Timer = tickTimer(death.Timer, dt)
	if death.Timer > 0 {
		return
	}
	if components.Lives.Get(playerEntry).Lives <= 0 {
		return
	}
	respawnPlayer(playerEntry)
}

// respawnPlayer puts the player back at the level start with full health and
// a short invulnerability window.
func respawnPlayer(playerEntry *donburi.Entry) {
	playerEntry.RemoveComponent(components.Death)

	player := components.Player.Get(playerEntry)
	player.Attack = components.AttackData{}
	player.Anim = components.AnimationData{State: cfg.AnimIdle}
	player.InvulnTimer = cfg.Player.RespawnInvulnSeconds

	health := components.Health.Get(playerEntry)
	health.Current = health.Max

	obj := components.Object.Get(playerEntry)
	obj.MoveTo(player.SpawnX, player.SpawnY)
	components.Physics.SetValue(playerEntry, components.PhysicsData{
		PrevX: player.SpawnX,
		PrevY: player.SpawnY,
	})
}
