package factory

import (
	"github.com/automoto/hedgecop/archetypes"
	"github.com/automoto/hedgecop/components"
	cfg "github.com/automoto/hedgecop/config"
	"github.com/automoto/hedgecop/leveldata"
	"github.com/automoto/hedgecop/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateEnemy spawns the enemy a descriptor describes, standing on the ground.
func CreateEnemy(w donburi.World, desc leveldata.SpawnDescriptor, bounds cfg.WorldBounds) *donburi.Entry {
	kind, err := cfg.ParseEnemyKind(desc.Type)
	if err != nil {
		kind = cfg.EnemyCar
	}
	typeConfig := cfg.Enemy.Type(kind)

	enemy := archetypes.Enemy.Spawn(w)

	y := bounds.GroundY - typeConfig.Height
	obj := resolv.NewObject(desc.X, y, typeConfig.Width, typeConfig.Height)
	obj.AddTags("character", tags.ResolvEnemy)
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	addToSpace(w, obj)

	var variant components.EnemyVariant
	switch kind {
	case cfg.EnemyMotorcycle:
		variant = &components.Motorcycle{}
	default:
		variant = &components.Car{}
	}

	patrolRange := desc.PatrolRange
	if patrolRange <= 0 {
		patrolRange = typeConfig.PatrolRange
	}

	components.Enemy.SetValue(enemy, components.EnemyData{
		Variant:       variant,
		Speed:         typeConfig.Speed,
		Health:        typeConfig.Health,
		Facing:        cfg.DirectionLeft,
		AI:            cfg.AIPatrol,
		PatrolAnchorX: desc.X,
		PatrolDir:     cfg.DirectionLeft,
		PatrolRange:   patrolRange,
		AggroRange:    typeConfig.AggroRange,
		AttackRange:   typeConfig.AttackRange,
		Active:        true,
	})
	components.Physics.SetValue(enemy, components.PhysicsData{
		PrevX:    desc.X,
		PrevY:    y,
		OnGround: true,
	})

	return enemy
}
