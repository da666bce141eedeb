package factory

import (
	"github.com/automoto/hedgecop/archetypes"
	"github.com/automoto/hedgecop/components"
	"github.com/automoto/hedgecop/leveldata"
	"github.com/automoto/hedgecop/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreatePlatform(w donburi.World, p leveldata.Platform, order int) *donburi.Entry {
	platform := archetypes.Platform.Spawn(w)

	obj := resolv.NewObject(p.Rect.X, p.Rect.Y, p.Rect.W, p.Rect.H, tags.ResolvSolid)
	obj.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: obj})
	addToSpace(w, obj)

	components.Platform.SetValue(platform, components.PlatformData{
		Kind:  p.Kind,
		Order: order,
	})

	return platform
}
