// Package leveldata parses Tiled TMX levels into plain values. It has no
// dependencies on ebitengine, donburi, or resolv, so the simulation and its
// tests can load levels headlessly.
package leveldata

import (
	cfg "github.com/automoto/hedgecop/config"
	"github.com/automoto/hedgecop/collision"
)

// Level is one playable stage.
type Level struct {
	Number  int
	Name    string
	Width   float64
	Height  float64
	GroundY float64

	Platforms         []Platform // in file order
	EnemySpawns       []SpawnDescriptor
	CollectibleSpawns []SpawnDescriptor

	PlayerStartX, PlayerStartY float64
	Exit                       collision.Rect
	Victory                    cfg.VictoryCondition
}

// Bounds returns the world bounds the simulation runs in.
func (l *Level) Bounds() cfg.WorldBounds {
	return cfg.WorldBounds{Width: l.Width, Height: l.Height, GroundY: l.GroundY}
}

// Platform is a static rectangle of level geometry.
type Platform struct {
	Rect collision.Rect
	Kind cfg.PlatformKind
}

// SpawnDescriptor is a {position, type} tuple a spawner may instantiate.
// Type is an enemy or collectible type name depending on the list.
type SpawnDescriptor struct {
	X, Y        float64
	Type        string
	PatrolRange float64 // enemies only; 0 uses the type default
}
