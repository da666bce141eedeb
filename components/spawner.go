package components

import (
	cfg "github.com/automoto/hedgecop/config"
	"github.com/automoto/hedgecop/leveldata"
	"github.com/yohamta/donburi"
)

// SpawnerData cycles through Descriptors, spawning one every Interval seconds
// while fewer than MaxPopulation of its kind are alive.
type SpawnerData struct {
	Kind          cfg.SpawnerKind
	Descriptors   []leveldata.SpawnDescriptor
	Cursor        int
	Elapsed       float64
	Interval      float64
	MaxPopulation int
	MinDistance   float64
}

// Next returns the descriptor under the cursor.
func (s *SpawnerData) Next() (leveldata.SpawnDescriptor, bool) {
	if len(s.Descriptors) == 0 {
		return leveldata.SpawnDescriptor{}, false
	}
	return s.Descriptors[s.Cursor%len(s.Descriptors)], true
}

// Advance moves the cursor to the following descriptor.
func (s *SpawnerData) Advance() {
	if len(s.Descriptors) == 0 {
		return
	}
	s.Cursor = (s.Cursor + 1) % len(s.Descriptors)
}

var Spawner = donburi.NewComponentType[SpawnerData]()
