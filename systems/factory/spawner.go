package factory

import (
	"github.com/automoto/hedgecop/archetypes"
	"github.com/automoto/hedgecop/components"
	cfg "github.com/automoto/hedgecop/config"
	"github.com/automoto/hedgecop/leveldata"
	"github.com/yohamta/donburi"
)

func CreateSpawner(w donburi.World, kind cfg.SpawnerKind, descriptors []leveldata.SpawnDescriptor, tuning cfg.SpawnerTuning) *donburi.Entry {
	spawner := archetypes.Spawner.Spawn(w)
	components.Spawner.SetValue(spawner, components.SpawnerData{
		Kind:          kind,
		Descriptors:   descriptors,
		Interval:      tuning.Interval,
		MaxPopulation: tuning.MaxPopulation,
		MinDistance:   tuning.MinDistance,
	})
	return spawner
}
