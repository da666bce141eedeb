// Package game owns the screen state machine. It builds a fresh simulation
// world for every level attempt and only advances it while playing.
package game

import (
	"errors"
	"fmt"
	"log"

	"github.com/automoto/hedgecop/components"
	cfg "github.com/automoto/hedgecop/config"
	"github.com/automoto/hedgecop/leveldata"
	"github.com/automoto/hedgecop/progress"
	"github.com/automoto/hedgecop/systems"
	"github.com/automoto/hedgecop/systems/factory"
	"github.com/yohamta/donburi"
)

var (
	ErrLevelOutOfRange = errors.New("level out of range")
	ErrLevelLocked     = errors.New("level locked")
)

// SoundPlayer plays a named sound. Hosts treat it as fire-and-forget.
type SoundPlayer interface {
	PlaySound(name string)
}

// Result describes the most recently finished level.
type Result struct {
	Level     int
	Score     int
	Kills     int
	BestScore int
	NewBest   bool
	// Saved is false when the progress store refused the write. The unlock
	// still holds for this session.
	Saved bool
}

type Game struct {
	levels   []*leveldata.Level
	store    progress.Store
	progress progress.Progress

	state  State
	world  donburi.World
	level  int // number of the level in world
	result Result

	queue  *InputQueue
	input  components.InputData
	sounds SoundPlayer
}

// New starts at the title screen with progress loaded from store. A nil or
// failing store leaves only the first level unlocked.
func New(levels []*leveldata.Level, store progress.Store) *Game {
	return &Game{
		levels:   levels,
		store:    store,
		progress: progress.Load(store, len(levels)),
		state:    StateTitle,
		queue:    NewInputQueue(),
	}
}

// SetSoundPlayer routes sounds to p. Without one, sounds are dropped.
func (g *Game) SetSoundPlayer(p SoundPlayer) {
	g.sounds = p
}

func (g *Game) Input() *InputQueue { return g.queue }
func (g *Game) State() State { return g.state }
func (g *Game) World() donburi.World { return g.world }
func (g *Game) Levels() []*leveldata.Level { return g.levels }
func (g *Game) CurrentLevel() int { return g.level }
func (g *Game) LastResult() Result { return g.result }
func (g *Game) Progress() progress.Progress { return g.progress }

// IsUnlocked reports whether level n can be selected.
func (g *Game) IsUnlocked(n int) bool {
	return g.progress.IsUnlocked(n)
}

func (g *Game) pressed(action cfg.ActionID) bool {
	return g.input.Action(action).JustPressed
}

// Update runs one tick of the current screen. A tick that changes screens
// does nothing else, so a pause press never advances the simulation.
func (g *Game) Update(dt float64) {
	g.input.Previous = g.input.Current
	g.input.Current = g.queue.Drain()

	switch g.state {
	case StateTitle:
		g.updateTitle()
	case StateLevelSelect:
		g.updateLevelSelect()
	case StatePlaying:
		g.updatePlaying(dt)
	case StatePaused:
		g.updatePaused()
	case StateLevelComplete:
		g.updateLevelComplete()
	case StateGameOver:
		g.updateGameOver()
	}

	if g.world != nil {
		for _, id := range systems.DrainSounds(g.world) {
			g.play(id)
		}
	}
}

func (g *Game) updateTitle() {
	if g.pressed(cfg.ActionConfirm) || g.pressed(cfg.ActionAttack) {
		g.play(cfg.SoundMenuSelect)
		g.state = StateLevelSelect
	}
}

func (g *Game) updateLevelSelect() {
	if g.pressed(cfg.ActionBack) {
		g.play(cfg.SoundMenuBack)
		g.state = StateTitle
		return
	}
	for n := 1; n <= 9; n++ {
		action, _ := cfg.ActionForLevel(n)
		if !g.pressed(action) {
			continue
		}
		if err := g.SelectLevel(n); err != nil {
			log.Printf("Warning: %v", err)
		}
		return
	}
}

// SelectLevel starts level n from the level select or level complete screen.
// Unknown and locked levels are refused and leave the state unchanged.
func (g *Game) SelectLevel(n int) error {
	if g.state != StateLevelSelect && g.state != StateLevelComplete {
		return fmt.Errorf("select level %d from %s", n, g.state)
	}
	if n < 1 || n > len(g.levels) {
		return fmt.Errorf("select level %d: %w", n, ErrLevelOutOfRange)
	}
	if !g.progress.IsUnlocked(n) {
		return fmt.Errorf("select level %d: %w", n, ErrLevelLocked)
	}

	g.play(cfg.SoundMenuSelect)
	g.startLevel(n)
	return nil
}

func (g *Game) startLevel(n int) {
	g.world = donburi.NewWorld()
	factory.CreateLevel(g.world, g.levels[n-1])
	g.level = n
	g.state = StatePlaying
}

func (g *Game) updatePlaying(dt float64) {
	if g.pressed(cfg.ActionPause) || g.pressed(cfg.ActionBack) {
		g.state = StatePaused
		return
	}

	systems.SetInput(g.world, g.input)
	systems.Step(g.world, dt)

	session := systems.Session(g.world)
	if session.GameOver {
		g.result = Result{Level: g.level, Score: session.Score, Kills: session.Kills}
		g.state = StateGameOver
		return
	}
	if systems.LevelComplete(g.world) {
		g.completeLevel(session)
	}
}

func (g *Game) completeLevel(session components.SessionData) {
	previousBest := g.progress[g.level].BestScore
	g.progress.Complete(g.level, session.Score, len(g.levels))
	saved := true
	if err := progress.Save(g.store, g.progress); err != nil {
		saved = false
	}

	g.result = Result{
		Level:     g.level,
		Score:     session.Score,
		Kills:     session.Kills,
		BestScore: g.progress[g.level].BestScore,
		NewBest:   session.Score > previousBest,
		Saved:     saved,
	}
	g.play(cfg.SoundLevelComplete)
	g.state = StateLevelComplete
}

func (g *Game) updatePaused() {
	switch {
	case g.pressed(cfg.ActionPause):
		g.state = StatePlaying
	case g.pressed(cfg.ActionBack):
		g.play(cfg.SoundMenuBack)
		g.leaveLevel(StateLevelSelect)
	}
}

func (g *Game) updateLevelComplete() {
	switch {
	case g.pressed(cfg.ActionConfirm):
		next := g.level + 1
		if next <= len(g.levels) && g.progress.IsUnlocked(next) {
			if err := g.SelectLevel(next); err != nil {
				log.Printf("Warning: %v", err)
			}
			return
		}
		g.leaveLevel(StateLevelSelect)
	case g.pressed(cfg.ActionBack):
		g.play(cfg.SoundMenuBack)
		g.leaveLevel(StateLevelSelect)
	}
}

func (g *Game) updateGameOver() {
	if g.pressed(cfg.ActionConfirm) || g.pressed(cfg.ActionBack) {
		g.play(cfg.SoundMenuBack)
		g.leaveLevel(StateTitle)
	}
}

func (g *Game) leaveLevel(next State) {
	g.world = nil
	g.level = 0
	g.state = next
}

func (g *Game) play(id cfg.SoundID) {
	if g.sounds == nil || id == cfg.SoundNone {
		return
	}
	g.sounds.PlaySound(id.String())
}
