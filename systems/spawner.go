package systems

import (
	"math"

	"github.com/automoto/hedgecop/components"
	cfg "github.com/automoto/hedgecop/config"
	"github.com/automoto/hedgecop/systems/factory"
	"github.com/automoto/hedgecop/tags"
	"github.com/yohamta/donburi"
)

// UpdateSpawners advances both spawners. A descriptor that is too close to
// the player is retried on the next tick without resetting the timer.
func UpdateSpawners(w donburi.World, dt float64) {
	playerX, hasPlayer := 0.0, false
	if playerEntry, ok := playerEntry(w); ok {
		playerX = components.Object.Get(playerEntry).Bounds().CenterX()
		hasPlayer = true
	}
	bounds := boundsOf(w)

	// Spawning creates entities, so walk a snapshot.
	for _, e := range entriesOf(w, tags.Spawner) {
		spawner := components.Spawner.Get(e)
		spawner.Elapsed += dt

		if spawner.Elapsed < spawner.Interval {
			continue
		}
		if LiveCount(w, spawner.Kind) >= spawner.MaxPopulation {
			continue
		}
		desc, ok := spawner.Next()
		if !ok {
			continue
		}
		if hasPlayer && math.Abs(desc.X-playerX) <= spawner.MinDistance {
			continue
		}

		switch spawner.Kind {
		case cfg.SpawnEnemies:
			factory.CreateEnemy(w, desc, bounds)
		case cfg.SpawnCollectibles:
			factory.CreateCollectible(w, desc)
		}
		// The factory may have grown the archetype storage.
		spawner = components.Spawner.Get(e)
		spawner.Elapsed = 0
		spawner.Advance()
	}
}

// LiveCount returns how many active entities a spawner of kind owns.
func LiveCount(w donburi.World, kind cfg.SpawnerKind) int {
	count := 0
	switch kind {
	case cfg.SpawnEnemies:
		tags.Enemy.Each(w, func(e *donburi.Entry) {
			if components.Enemy.Get(e).Active {
				count++
			}
		})
	case cfg.SpawnCollectibles:
		tags.Collectible.Each(w, func(e *donburi.Entry) {
			if components.Collectible.Get(e).Active {
				count++
			}
		})
	}
	return count
}
