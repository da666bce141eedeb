package systems

import (
	"github.com/automoto/hedgecop/collision"
	"github.com/automoto/hedgecop/components"
	cfg "github.com/automoto/hedgecop/config"
	"github.com/yohamta/donburi"
)

// LevelComplete reports whether the level's victory condition holds.
func LevelComplete(w donburi.World) bool {
	level, ok := levelData(w)
	if !ok || level.Level == nil {
		return false
	}
	playerEntry, ok := livePlayer(w)
	if !ok {
		return false
	}
	body := components.Object.Get(playerEntry).Bounds()

	switch level.Level.Victory {
	case cfg.VictoryReachExit:
		return reachedExit(body, level.Level.Exit)
	case cfg.VictoryDefeatBoss:
		return bossDefeated(w)
	default:
		return false
	}
}

// reachedExit is true once the player's center crosses the exit's left edge
// while their body shares the exit's vertical band.
func reachedExit(body, exit collision.Rect) bool {
	if exit.W <= 0 && exit.H <= 0 {
		return false
	}
	return body.CenterX() >= exit.X && body.Y < exit.Bottom() && body.Bottom() > exit.Y
}

// bossDefeated always reports false until bosses exist as an enemy variant.
func bossDefeated(donburi.World) bool {
	return false
}
