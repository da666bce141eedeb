package factory

import (
	"github.com/automoto/hedgecop/archetypes"
	"github.com/automoto/hedgecop/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CellSize is the spatial hash cell edge in pixels.
const CellSize = 32

func CreateSpace(w donburi.World, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	components.Space.SetValue(space, components.SpaceData{
		Space: resolv.NewSpace(width, height, cellWidth, cellHeight),
	})
	return space
}

// addToSpace registers obj with the world's spatial hash, if there is one.
func addToSpace(w donburi.World, obj *resolv.Object) {
	if e, ok := components.Space.First(w); ok {
		components.Space.Get(e).Add(obj)
	}
}
