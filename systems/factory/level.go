package factory

import (
	"math"

	"github.com/automoto/hedgecop/archetypes"
	"github.com/automoto/hedgecop/components"
	cfg "github.com/automoto/hedgecop/config"
	"github.com/automoto/hedgecop/leveldata"
	"github.com/yohamta/donburi"
)

// CreateLevel builds the whole simulation for a level into w: spatial hash,
// platforms in file order, the player, camera, session and both spawners.
// Enemies and collectibles only appear through the spawners.
func CreateLevel(w donburi.World, level *leveldata.Level) *donburi.Entry {
	bounds := level.Bounds()

	CreateSpace(w, int(math.Ceil(bounds.Width)), int(math.Ceil(bounds.Height)), CellSize, CellSize)

	entry := archetypes.Level.Spawn(w)
	levelData := &components.LevelData{
		Level:  level,
		Bounds: bounds,
	}
	for i, p := range level.Platforms {
		levelData.Platforms = append(levelData.Platforms, CreatePlatform(w, p, i))
	}
	components.Level.Set(entry, levelData)

	CreatePlayer(w, level.PlayerStartX, level.PlayerStartY)
	CreateSession(w)
	CreateSpawner(w, cfg.SpawnEnemies, level.EnemySpawns, cfg.Spawner.Enemy)
	CreateSpawner(w, cfg.SpawnCollectibles, level.CollectibleSpawns, cfg.Spawner.Collectible)

	camX := level.PlayerStartX + cfg.Player.Width/2 - float64(cfg.C.Width)/2
	camY := bounds.Height - float64(cfg.C.Height)
	CreateCamera(w,
		math.Max(0, math.Min(camX, bounds.Width-float64(cfg.C.Width))),
		math.Max(0, camY),
	)

	return entry
}
