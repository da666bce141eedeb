package components

import (
	cfg "github.com/automoto/hedgecop/config"
	"github.com/yohamta/donburi"
)

// PlatformData is static level geometry. Order is its index in the level file.
type PlatformData struct {
	Kind  cfg.PlatformKind
	Order int
}

var Platform = donburi.NewComponentType[PlatformData]()
