// Package desktop runs the game in an ebiten window.
package desktop

import (
	"log"
	"time"

	"github.com/automoto/hedgecop/assets"
	cfg "github.com/automoto/hedgecop/config"
	"github.com/automoto/hedgecop/game"
	"github.com/automoto/hedgecop/render"
	"github.com/automoto/hedgecop/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// App adapts a game.Game to ebiten.Game. ebiten's Update drives the loop one
// tick at a time.
type App struct {
	game     *game.Game
	loop     *game.GameLoop
	renderer *ScreenRenderer
	audio    *Audio
	levelUI  *ui.LevelSelectUI
	debug    bool
	last     time.Time
}

func NewApp(g *game.Game, settings SettingsStore) *App {
	a := &App{
		game:     g,
		loop:     game.NewGameLoop(g, cfg.Loop.TickRate),
		renderer: NewScreenRenderer(),
		audio:    NewAudio(settings),
		last:     time.Now(),
	}
	if err := a.renderer.LoadSprites(assets.FS(), "sprites"); err != nil {
		log.Printf("Warning: Could not load sprites: %v", err)
	}
	g.SetSoundPlayer(a.audio)

	a.levelUI = ui.NewLevelSelectUI(g.Levels(), a.tapLevel, func() {
		a.tap(cfg.ActionBack)
	})
	return a
}

// tap routes a UI click through the input queue like a key press.
func (a *App) tap(action cfg.ActionID) {
	a.game.Input().Press(action)
	a.game.Input().Release(action)
}

func (a *App) tapLevel(n int) {
	if action, ok := cfg.ActionForLevel(n); ok {
		a.tap(action)
	}
}

func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		a.debug = !a.debug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		a.audio.ToggleMute()
	}

	if a.game.State() == game.StateLevelSelect {
		a.levelUI.Refresh(a.game.Progress())
		a.levelUI.Update()
	}
	a.game.Input().Sync(pollHeld())

	now := time.Now()
	elapsed := now.Sub(a.last)
	a.last = now
	if !a.loop.Tick(elapsed) {
		return ebiten.Termination
	}
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	if a.game.State() == game.StateLevelSelect {
		a.levelUI.Draw(screen)
		return
	}
	a.renderer.Begin(screen)
	render.Draw(a.game, a.renderer, render.Options{Debug: a.debug})
}

func (a *App) Layout(width, height int) (int, int) {
	return cfg.C.Width, cfg.C.Height
}

// Run opens the window and blocks until it closes or a tick fails.
func Run(g *game.Game, settings SettingsStore) error {
	ebiten.SetWindowSize(cfg.C.Width*2, cfg.C.Height*2)
	ebiten.SetWindowTitle(cfg.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(cfg.Loop.TickRate)

	return ebiten.RunGame(NewApp(g, settings))
}
