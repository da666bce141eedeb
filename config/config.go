package config

import (
	"image/color"
	"time"
)

// PlayerConfig contains all player-related configuration values.
// Distances are pixels, speeds pixels per second, timers seconds.
type PlayerConfig struct {
	// Movement
	Speed        float64 `toml:"speed"`
	JumpVelocity float64 `toml:"jump_velocity"` // negative is up
	Gravity      float64 `toml:"gravity"`

	// Combat
	MaxHealth      int     `toml:"max_health"`
	InvulnDuration float64 `toml:"invuln_duration"`

	// Lives
	StartingLives        int     `toml:"starting_lives"`
	RespawnDelay         float64 `toml:"respawn_delay"`
	RespawnInvulnSeconds float64 `toml:"respawn_invuln"`

	// Dimensions
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// PunchConfig describes the melee weapon.
type PunchConfig struct {
	Duration     float64 `toml:"duration"`
	Cooldown     float64 `toml:"cooldown"`
	Reach        float64 `toml:"reach"`
	BandOffsetY  float64 `toml:"band_offset_y"` // from the top of the player
	BandHeight   float64 `toml:"band_height"`
	Damage       int     `toml:"damage"`
	Knockback    float64 `toml:"knockback"`
	StunDuration float64 `toml:"stun_duration"`
}

// GunConfig describes the ranged weapon and its projectile.
type GunConfig struct {
	Duration         float64 `toml:"duration"`
	Cooldown         float64 `toml:"cooldown"`
	ProjectileSpeed  float64 `toml:"projectile_speed"`
	ProjectileLife   float64 `toml:"projectile_lifetime"`
	ProjectileWidth  float64 `toml:"projectile_width"`
	ProjectileHeight float64 `toml:"projectile_height"`
	MuzzleOffsetY    float64 `toml:"muzzle_offset_y"`
	Damage           int     `toml:"damage"`
	Knockback        float64 `toml:"knockback"`
}

// WeaponsConfig groups both weapons and the switch cooldown.
type WeaponsConfig struct {
	Punch          PunchConfig `toml:"punch"`
	Gun            GunConfig   `toml:"gun"`
	SwitchCooldown float64     `toml:"switch_cooldown"`
	Default        WeaponID    `toml:"-"`
}

// EnemyTypeConfig contains configuration for a specific enemy type.
type EnemyTypeConfig struct {
	Name           string     `toml:"name"`
	Health         int        `toml:"health"`
	Speed          float64    `toml:"speed"`
	AggroRange     float64    `toml:"aggro_range"`
	AttackRange    float64    `toml:"attack_range"`
	AttackCooldown float64    `toml:"attack_cooldown"`
	PatrolRange    float64    `toml:"patrol_range"`
	ContactDamage  int        `toml:"contact_damage"`
	Width          float64    `toml:"width"`
	Height         float64    `toml:"height"`
	TintColor      color.RGBA `toml:"-"`
}

// EnemyConfig contains enemy system configuration.
type EnemyConfig struct {
	Car        EnemyTypeConfig `toml:"car"`
	Motorcycle EnemyTypeConfig `toml:"motorcycle"`

	// AI behavior constants
	HysteresisMultiplier       float64 `toml:"hysteresis"`        // chase demotes past aggro * this
	AttackHysteresisMultiplier float64 `toml:"attack_hysteresis"` // attack demotes past range * this
	PatrolSpeedFactor          float64 `toml:"patrol_speed_factor"`

	// Motorcycle rev burst
	RevDuration   float64 `toml:"rev_duration"`
	RevMultiplier float64 `toml:"rev_multiplier"`
}

// Type returns the tuning for an enemy kind. Unknown kinds fall back to the car.
func (c EnemyConfig) Type(kind EnemyKind) EnemyTypeConfig {
	switch kind {
	case EnemyMotorcycle:
		return c.Motorcycle
	default:
		return c.Car
	}
}

// CollectibleTypeConfig describes one pickup kind.
type CollectibleTypeConfig struct {
	Heal   int     `toml:"heal"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// CollectibleConfig contains pickup configuration.
type CollectibleConfig struct {
	Dumpling     CollectibleTypeConfig `toml:"dumpling"`
	NoodleSoup   CollectibleTypeConfig `toml:"noodle_soup"`
	BobAmplitude float64               `toml:"bob_amplitude"`
	BobPeriod    float64               `toml:"bob_period"` // seconds for a full up-down cycle
}

// Type returns the tuning for a collectible kind.
func (c CollectibleConfig) Type(kind CollectibleKind) CollectibleTypeConfig {
	if kind == CollectibleNoodleSoup {
		return c.NoodleSoup
	}
	return c.Dumpling
}

// SpawnerTuning is shared by the enemy and collectible spawners.
type SpawnerTuning struct {
	Interval      float64 `toml:"interval"`
	MaxPopulation int     `toml:"max_population"`
	MinDistance   float64 `toml:"min_distance"`
}

// SpawnerConfig holds both spawner instances.
type SpawnerConfig struct {
	Enemy       SpawnerTuning `toml:"enemy"`
	Collectible SpawnerTuning `toml:"collectible"`
}

// ScoreConfig contains score awards.
type ScoreConfig struct {
	MeleeKill  int `toml:"melee_kill"`
	RangedKill int `toml:"ranged_kill"`
	Pickup     int `toml:"pickup"`
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing         float64 `toml:"follow_smoothing"`     // fraction of the gap closed per tick (0.0-1.0)
	LookAheadDistanceX      float64 `toml:"look_ahead_distance"`  // max horizontal look-ahead offset in pixels
	LookAheadSmoothing      float64 `toml:"look_ahead_smoothing"` // how fast look-ahead offset changes (0.0-1.0)
	LookAheadSpeedThreshold float64 `toml:"look_ahead_threshold"` // minimum speed to update look-ahead
	DamageShakeIntensity    float64 `toml:"damage_shake_intensity"`
	DamageShakeDuration     float64 `toml:"damage_shake_duration"`
}

// AnimationConfig contains frame timing per animation state.
type AnimationConfig struct {
	FrameDuration float64
	FrameCounts   map[AnimState]int
}

// LoopConfig controls the tick scheduler.
type LoopConfig struct {
	TickRate      int           `toml:"tick_rate"`
	MaxDelta      float64       `toml:"max_delta"` // seconds
	FrameSkip     bool          `toml:"frame_skip"`
	SkipThreshold time.Duration `toml:"-"`
}

// Config holds general game configuration
type Config struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
	AppID  string `toml:"-"` // gdata application name
}

// WorldBounds is the playable area of a level. GroundY is the top of the
// ground surface that enemies are pinned to.
type WorldBounds struct {
	Width   float64
	Height  float64
	GroundY float64
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Weapons WeaponsConfig
var Enemy EnemyConfig
var Collectible CollectibleConfig
var Spawner SpawnerConfig
var Score ScoreConfig
var Camera CameraConfig
var Animation AnimationConfig
var Loop LoopConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	DarkGreen    = color.RGBA{R: 40, G: 120, B: 40, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	Brown        = color.RGBA{R: 110, G: 80, B: 50, A: 255}
	Gray         = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	Sky          = color.RGBA{R: 30, G: 30, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	Reset()
}

// Reset restores every tuning value to its default.
func Reset() {
	C = &Config{
		Width:  640,
		Height: 360,
		Title:  "Hedge Cop",
		AppID:  "hedgecop",
	}

	Player = PlayerConfig{
		Speed:        180,
		JumpVelocity: -480,
		Gravity:      1400,

		MaxHealth:      10,
		InvulnDuration: 1.0,

		StartingLives:        3,
		RespawnDelay:         1.5,
		RespawnInvulnSeconds: 2.0,

		Width:  24,
		Height: 40,
	}

	Weapons = WeaponsConfig{
		Punch: PunchConfig{
			Duration:     0.25,
			Cooldown:     0.4,
			Reach:        28,
			BandOffsetY:  8,
			BandHeight:   20,
			Damage:       1,
			Knockback:    12,
			StunDuration: 0.5,
		},
		Gun: GunConfig{
			Duration:         0.15,
			Cooldown:         0.35,
			ProjectileSpeed:  500,
			ProjectileLife:   2.0,
			ProjectileWidth:  8,
			ProjectileHeight: 4,
			MuzzleOffsetY:    14,
			Damage:           1,
			Knockback:        6,
		},
		SwitchCooldown: 0.25,
		Default:        WeaponPunch,
	}

	Enemy = EnemyConfig{
		Car: EnemyTypeConfig{
			Name:           "car",
			Health:         4,
			Speed:          110,
			AggroRange:     220,
			AttackRange:    40,
			AttackCooldown: 1.2,
			PatrolRange:    120,
			ContactDamage:  2,
			Width:          48,
			Height:         28,
			TintColor:      color.RGBA{R: 200, G: 40, B: 40, A: 255},
		},
		Motorcycle: EnemyTypeConfig{
			Name:           "motorcycle",
			Health:         2,
			Speed:          160,
			AggroRange:     280,
			AttackRange:    32,
			AttackCooldown: 0.8,
			PatrolRange:    160,
			ContactDamage:  1,
			Width:          36,
			Height:         30,
			TintColor:      color.RGBA{R: 230, G: 150, B: 30, A: 255},
		},
		HysteresisMultiplier:       1.5,
		AttackHysteresisMultiplier: 1.2,
		PatrolSpeedFactor:          0.5,
		RevDuration:                0.6,
		RevMultiplier:              1.5,
	}

	Collectible = CollectibleConfig{
		Dumpling:     CollectibleTypeConfig{Heal: 2, Width: 12, Height: 12},
		NoodleSoup:   CollectibleTypeConfig{Heal: 5, Width: 16, Height: 14},
		BobAmplitude: 4,
		BobPeriod:    1.2,
	}

	Spawner = SpawnerConfig{
		Enemy:       SpawnerTuning{Interval: 3.0, MaxPopulation: 4, MinDistance: 240},
		Collectible: SpawnerTuning{Interval: 5.0, MaxPopulation: 3, MinDistance: 160},
	}

	Score = ScoreConfig{
		MeleeKill:  100,
		RangedKill: 50,
		Pickup:     10,
	}

	Camera = CameraConfig{
		FollowSmoothing:         0.1,
		LookAheadDistanceX:      48,
		LookAheadSmoothing:      0.05,
		LookAheadSpeedThreshold: 10,
		DamageShakeIntensity:    4,
		DamageShakeDuration:     0.3,
	}

	Animation = AnimationConfig{
		FrameDuration: 0.1,
		FrameCounts: map[AnimState]int{
			AnimIdle:     4,
			AnimWalking:  6,
			AnimJumping:  2,
			AnimFalling:  2,
			AnimPunching: 3,
			AnimShooting: 2,
		},
	}

	Loop = LoopConfig{
		TickRate:      60,
		MaxDelta:      1.0 / 30.0,
		FrameSkip:     false,
		SkipThreshold: 50 * time.Millisecond,
	}

	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.6,
	}
}
