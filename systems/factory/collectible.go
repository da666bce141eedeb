package factory

import (
	"github.com/automoto/hedgecop/archetypes"
	"github.com/automoto/hedgecop/components"
	cfg "github.com/automoto/hedgecop/config"
	"github.com/automoto/hedgecop/leveldata"
	"github.com/automoto/hedgecop/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// CreateCollectible spawns the pickup a descriptor describes.
func CreateCollectible(w donburi.World, desc leveldata.SpawnDescriptor) *donburi.Entry {
	kind, err := cfg.ParseCollectibleKind(desc.Type)
	if err != nil {
		kind = cfg.CollectibleDumpling
	}
	typeConfig := cfg.Collectible.Type(kind)

	c := archetypes.Collectible.Spawn(w)

	obj := resolv.NewObject(desc.X, desc.Y, typeConfig.Width, typeConfig.Height, tags.ResolvCollectible)
	obj.Data = c
	components.Object.SetValue(c, components.ObjectData{Object: obj})
	addToSpace(w, obj)

	// The bob moves up and back down using a *gween.Sequence that restarts when done.
	amp := float32(cfg.Collectible.BobAmplitude)
	half := float32(cfg.Collectible.BobPeriod / 2)
	bob := gween.NewSequence()
	bob.Add(
		gween.New(0, -amp, half, ease.InOutSine),
		gween.New(-amp, 0, half, ease.InOutSine),
	)

	components.Collectible.SetValue(c, components.CollectibleData{
		Kind:   kind,
		Heal:   typeConfig.Heal,
		BaseY:  desc.Y,
		Bob:    bob,
		Active: true,
	})

	return c
}
