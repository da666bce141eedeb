package systems

import (
	"testing"

	"github.com/automoto/hedgecop/collision"
	"github.com/automoto/hedgecop/components"
	cfg "github.com/automoto/hedgecop/config"
	"github.com/automoto/hedgecop/leveldata"
	"github.com/automoto/hedgecop/systems/factory"
	"github.com/automoto/hedgecop/tags"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

const tick = 1.0 / 60.0

// testLevel is a 2000px wide strip of ground with one ledge and an exit at
// the far end. It has no spawn descriptors unless a test adds them.
func testLevel() *leveldata.Level {
	return &leveldata.Level{
		Number:  1,
		Name:    "test strip",
		Width:   2000,
		Height:  360,
		GroundY: 330,
		Platforms: []leveldata.Platform{
			{Rect: collision.Rect{X: 0, Y: 330, W: 2000, H: 30}, Kind: cfg.PlatformGround},
			{Rect: collision.Rect{X: 400, Y: 250, W: 100, H: 16}, Kind: cfg.PlatformLedge},
		},
		PlayerStartX: 100,
		PlayerStartY: 290,
		Exit:         collision.Rect{X: 1900, Y: 250, W: 60, H: 80},
		Victory:      cfg.VictoryReachExit,
	}
}

func newTestWorld(t *testing.T, level *leveldata.Level) (donburi.World, *donburi.Entry) {
	t.Helper()
	t.Cleanup(cfg.Reset)

	w := donburi.NewWorld()
	factory.CreateLevel(w, level)
	player, ok := tags.Player.First(w)
	require.True(t, ok)
	return w, player
}

// press latches a fresh input tick where exactly the given actions are held.
func press(w donburi.World, actions ...cfg.ActionID) {
	in := *inputOf(w)
	in.Previous = in.Current
	in.Current = [cfg.ActionCount]bool{}
	for _, a := range actions {
		in.Current[a] = true
	}
	SetInput(w, in)
}

func spawnEnemy(t *testing.T, w donburi.World, kind string, x float64) *donburi.Entry {
	t.Helper()
	level, ok := levelData(w)
	require.True(t, ok)
	return factory.CreateEnemy(w, leveldata.SpawnDescriptor{X: x, Type: kind}, level.Bounds)
}

func moveTo(e *donburi.Entry, x, y float64) {
	obj := components.Object.Get(e)
	obj.MoveTo(x, y)
	physics := components.Physics.Get(e)
	physics.PrevX = x
	physics.PrevY = y
}

func countTagged(w donburi.World, tag *donburi.ComponentType[donburi.Tag]) int {
	return len(entriesOf(w, tag))
}

// step runs one player tick with the given actions held, including the
// platform pass that keeps the player on the ground.
func step(w donburi.World, actions ...cfg.ActionID) {
	press(w, actions...)
	UpdatePlayer(w, tick)
	UpdatePlatformCollisions(w, tick)
}

// settle runs a few ticks so the player is standing on the ground.
func settle(w donburi.World) {
	for i := 0; i < 3; i++ {
		step(w)
	}
}
