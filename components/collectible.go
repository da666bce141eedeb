package components

import (
	cfg "github.com/automoto/hedgecop/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// CollectibleData is a healing pickup that bobs around BaseY.
type CollectibleData struct {
	Kind   cfg.CollectibleKind
	Heal   int
	BaseY  float64
	Phase  float64 // current bob offset in pixels
	Bob    *gween.Sequence
	Active bool
}

var Collectible = donburi.NewComponentType[CollectibleData]()
