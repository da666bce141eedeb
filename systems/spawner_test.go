package systems

import (
	"testing"

	"github.com/automoto/hedgecop/components"
	cfg "github.com/automoto/hedgecop/config"
	"github.com/automoto/hedgecop/leveldata"
	"github.com/automoto/hedgecop/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func spawnerOf(t *testing.T, w donburi.World, kind cfg.SpawnerKind) *components.SpawnerData {
	t.Helper()
	for _, e := range entriesOf(w, tags.Spawner) {
		if s := components.Spawner.Get(e); s.Kind == kind {
			return s
		}
	}
	require.FailNow(t, "no spawner", "kind %d", kind)
	return nil
}

func TestSpawnerDefersWhenPlayerIsClose(t *testing.T) {
	level := testLevel()
	level.CollectibleSpawns = []leveldata.SpawnDescriptor{
		{X: 150, Y: 300, Type: "dumpling"},
		{X: 1500, Y: 300, Type: "noodle_soup"},
	}
	w, player := newTestWorld(t, level)
	spawner := spawnerOf(t, w, cfg.SpawnCollectibles)
	interval := cfg.Spawner.Collectible.Interval

	// Player center is 112, well inside the minimum distance of x=150.
	UpdateSpawners(w, interval)
	assert.Equal(t, 0, countTagged(w, tags.Collectible))
	assert.Equal(t, interval, spawner.Elapsed, "timer keeps running")
	assert.Equal(t, 0, spawner.Cursor, "same descriptor is retried")

	UpdateSpawners(w, 0.5)
	assert.Equal(t, 0, countTagged(w, tags.Collectible))
	assert.Equal(t, interval+0.5, spawner.Elapsed)

	moveTo(player, 800, 290)
	UpdateSpawners(w, tick)
	require.Equal(t, 1, countTagged(w, tags.Collectible))
	assert.Equal(t, 0.0, spawner.Elapsed)
	assert.Equal(t, 1, spawner.Cursor)

	c, _ := tags.Collectible.First(w)
	assert.Equal(t, cfg.CollectibleDumpling, components.Collectible.Get(c).Kind)
	assert.Equal(t, 150.0, components.Object.Get(c).X)
}

func TestSpawnerWaitsForInterval(t *testing.T) {
	level := testLevel()
	level.EnemySpawns = []leveldata.SpawnDescriptor{{X: 1500, Type: "car"}}
	w, _ := newTestWorld(t, level)

	UpdateSpawners(w, cfg.Spawner.Enemy.Interval-0.01)
	assert.Equal(t, 0, countTagged(w, tags.Enemy))

	UpdateSpawners(w, 0.01)
	assert.Equal(t, 1, countTagged(w, tags.Enemy))
}

func TestSpawnerRespectsPopulationCap(t *testing.T) {
	level := testLevel()
	level.EnemySpawns = []leveldata.SpawnDescriptor{
		{X: 1500, Type: "car"},
		{X: 1700, Type: "motorcycle"},
		{X: 1900, Type: "car"},
	}
	w, _ := newTestWorld(t, level)
	spawner := spawnerOf(t, w, cfg.SpawnEnemies)
	spawner.MaxPopulation = 2
	spawner.Interval = 1

	for i := 0; i < 10; i++ {
		UpdateSpawners(w, 1)
		require.LessOrEqual(t, LiveCount(w, cfg.SpawnEnemies), 2)
	}
	assert.Equal(t, 2, LiveCount(w, cfg.SpawnEnemies))

	// A kill frees a slot for the next descriptor in order.
	first, _ := tags.Enemy.First(w)
	components.Enemy.Get(first).Active = false
	SweepInactive(w, 0)
	UpdateSpawners(w, 0)
	assert.Equal(t, 2, LiveCount(w, cfg.SpawnEnemies))
	assert.Equal(t, 0, spawner.Cursor, "three descriptors spawned, cursor wrapped")
}

func TestSpawnerWithNoDescriptorsIsIdle(t *testing.T) {
	w, _ := newTestWorld(t, testLevel())
	for i := 0; i < 5; i++ {
		UpdateSpawners(w, 10)
	}
	assert.Equal(t, 0, countTagged(w, tags.Enemy))
	assert.Equal(t, 0, countTagged(w, tags.Collectible))
}

func TestSweepRemovesOnlyInactive(t *testing.T) {
	w, _ := newTestWorld(t, testLevel())
	keep := spawnEnemy(t, w, "car", 600)
	drop := spawnEnemy(t, w, "car", 900)
	components.Enemy.Get(drop).Active = false

	SweepInactive(w, 0)

	assert.True(t, keep.Valid())
	assert.False(t, drop.Valid())
	assert.Equal(t, 1, countTagged(w, tags.Enemy))

	hits := overlappingEntries(w, components.Object.Get(keep).Bounds(), tags.ResolvEnemy)
	assert.Len(t, hits, 1)
}
