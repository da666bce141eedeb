package components

import (
	cfg "github.com/automoto/hedgecop/config"
	"github.com/automoto/hedgecop/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Level     *leveldata.Level
	Bounds    cfg.WorldBounds
	Platforms []*donburi.Entry // level order
}

var Level = donburi.NewComponentType[LevelData]()
