package systems

import (
	"github.com/automoto/hedgecop/components"
	cfg "github.com/automoto/hedgecop/config"
	"github.com/automoto/hedgecop/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// entriesOf snapshots every entry carrying c so callers can add or remove
// components while walking the result.
func entriesOf[T any](w donburi.World, c *donburi.ComponentType[T]) []*donburi.Entry {
	var entries []*donburi.Entry
	c.Each(w, func(e *donburi.Entry) {
		entries = append(entries, e)
	})
	return entries
}

func playerEntry(w donburi.World) (*donburi.Entry, bool) {
	e, ok := tags.Player.First(w)
	if !ok || !e.Valid() {
		return nil, false
	}
	return e, true
}

// livePlayer returns the player only while it is alive.
func livePlayer(w donburi.World) (*donburi.Entry, bool) {
	e, ok := playerEntry(w)
	if !ok || e.HasComponent(components.Death) {
		return nil, false
	}
	return e, true
}

func levelData(w donburi.World) (*components.LevelData, bool) {
	e, ok := components.Level.First(w)
	if !ok {
		return nil, false
	}
	return components.Level.Get(e), true
}

// boundsOf returns the level bounds, or the screen size when no level is loaded.
func boundsOf(w donburi.World) cfg.WorldBounds {
	if level, ok := levelData(w); ok {
		return level.Bounds
	}
	h := float64(cfg.C.Height)
	return cfg.WorldBounds{Width: float64(cfg.C.Width), Height: h, GroundY: h}
}

func spaceOf(w donburi.World) *resolv.Space {
	e, ok := components.Space.First(w)
	if !ok {
		return nil
	}
	return components.Space.Get(e).Space
}

func sessionOf(w donburi.World) *components.SessionData {
	e, ok := components.Session.First(w)
	if !ok {
		return &components.SessionData{}
	}
	return components.Session.Get(e)
}

// Session returns the current run's score record.
func Session(w donburi.World) components.SessionData {
	return *sessionOf(w)
}

// addScore awards points to the running session.
func addScore(w donburi.World, points int) {
	sessionOf(w).Score += points
}
