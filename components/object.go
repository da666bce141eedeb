package components

import (
	"github.com/automoto/hedgecop/collision"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

// Bounds returns the object's rectangle.
func (o *ObjectData) Bounds() collision.Rect {
	return collision.BoundsOf(o.Object)
}

// MoveTo sets the object position and refreshes its spatial hash cells.
func (o *ObjectData) MoveTo(x, y float64) {
	o.X = x
	o.Y = y
	if o.Space != nil {
		o.Update()
	}
}

var Object = donburi.NewComponentType[ObjectData]()

// SpaceData wraps the level's spatial hash so its address stays stable.
type SpaceData struct {
	*resolv.Space
}

var Space = donburi.NewComponentType[SpaceData]()
