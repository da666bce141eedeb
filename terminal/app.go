package terminal

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	cfg "github.com/automoto/hedgecop/config"
	"github.com/automoto/hedgecop/game"
	"github.com/automoto/hedgecop/render"
	"github.com/gdamore/tcell/v2"
)

// ErrTickFailed is returned by Run when the game loop stopped on a panic.
var ErrTickFailed = errors.New("game loop stopped after a failed tick")

type updaterFunc func(dt float64)

func (f updaterFunc) Update(dt float64) { f(dt) }

// App owns the terminal screen while the game runs.
type App struct {
	game   *game.Game
	screen tcell.Screen
	keys   *KeyState
	render *CellRenderer
	audio  *Beeper
	debug  atomic.Bool

	// quit is set by the event goroutine and consumed by tick, which is the
	// only place the game state is read.
	quit atomic.Bool
}

// NewApp wires g to screen. The screen must already be initialized.
func NewApp(g *game.Game, screen tcell.Screen, audio *Beeper) *App {
	a := &App{
		game:   g,
		screen: screen,
		keys:   NewKeyState(g.Input()),
		render: NewCellRenderer(screen),
		audio:  audio,
	}
	if audio != nil {
		g.SetSoundPlayer(audio)
	}
	return a
}

// handleEvent applies one tcell event on the event goroutine. It returns
// false on Ctrl+C. It never touches the game itself.
func (a *App) handleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			a.quit.Store(true)
			return true
		case ev.Key() == tcell.KeyF1:
			a.debug.Store(!a.debug.Load())
			return true
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'm' || ev.Rune() == 'M'):
			if a.audio != nil {
				a.audio.ToggleMute()
			}
			return true
		}
		if action, ok := keyAction(ev); ok {
			a.keys.Key(action, now)
		}
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

// Run plays until ctx is done, the player quits or a tick fails.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			if !a.handleEvent(ev, time.Now()) {
				cancel()
				return
			}
		}
	}()

	loop := game.NewGameLoop(updaterFunc(func(dt float64) {
		if !a.tick(dt) {
			cancel()
		}
	}), cfg.Loop.TickRate)

	loop.Run(ctx, a.draw)

	if ctx.Err() == nil {
		return ErrTickFailed
	}
	return nil
}

// tick runs one game update. A pending quit key only counts on the title
// screen; it reports false when the game should exit.
func (a *App) tick(dt float64) bool {
	a.keys.Expire(time.Now())
	if a.quit.Swap(false) && a.game.State() == game.StateTitle {
		return false
	}
	a.game.Update(dt)
	return true
}

func (a *App) draw() {
	render.Draw(a.game, a.render, render.Options{Debug: a.debug.Load()})
	a.screen.Show()
}
