package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/automoto/hedgecop/collision"
	"github.com/automoto/hedgecop/components"
	cfg "github.com/automoto/hedgecop/config"
	"github.com/automoto/hedgecop/game"
	"github.com/automoto/hedgecop/systems"
	"github.com/yohamta/donburi"
)

const (
	lineHeight = 16.0
	margin     = 10.0
)

// Draw renders one frame for the current state of g.
func Draw(g *game.Game, r Renderer, opts Options) {
	r.Clear(cfg.Sky)

	switch g.State() {
	case game.StateTitle:
		drawTitle(r)
	case game.StateLevelSelect:
		DrawLevelSelect(g, r)
	case game.StatePlaying:
		drawPlaying(g, r, opts)
	case game.StatePaused:
		drawPlaying(g, r, opts)
		drawBanner(r, "PAUSED", "P to resume, Esc to quit")
	case game.StateLevelComplete:
		drawPlaying(g, r, opts)
		res := g.LastResult()
		sub := fmt.Sprintf("Score %d  Best %d", res.Score, res.BestScore)
		if res.NewBest {
			sub += "  NEW BEST"
		}
		if !res.Saved {
			sub += "  (not saved)"
		}
		drawBanner(r, fmt.Sprintf("LEVEL %d COMPLETE", res.Level), sub)
	case game.StateGameOver:
		drawPlaying(g, r, opts)
		drawBanner(r, "GAME OVER", fmt.Sprintf("Score %d  Enter to continue", g.LastResult().Score))
	}
}

func drawTitle(r Renderer) {
	cx := float64(cfg.C.Width) / 2
	cy := float64(cfg.C.Height) / 2
	r.DrawText(cfg.C.Title, cx-float64(len(cfg.C.Title))*4, cy-lineHeight, cfg.Yellow)
	r.DrawText("Press Enter", cx-44, cy+lineHeight, cfg.White)
}

// DrawLevelSelect lists every level with its lock state and best score.
func DrawLevelSelect(g *game.Game, r Renderer) {
	r.DrawText("SELECT LEVEL", margin, margin, cfg.Yellow)
	progress := g.Progress()
	for i, level := range g.Levels() {
		n := i + 1
		rec := progress[n]
		line := fmt.Sprintf("%d  %s", n, level.Name)
		c := color.Color(cfg.White)
		switch {
		case !rec.Unlocked:
			line += "  [locked]"
			c = cfg.Gray
		case rec.Completed:
			line += fmt.Sprintf("  best %d", rec.BestScore)
			c = cfg.Green
		}
		r.DrawText(line, margin, margin+float64(n+1)*lineHeight, c)
	}
	r.DrawText("Esc back", margin, float64(cfg.C.Height)-margin-lineHeight, cfg.LightBlue)
}

func drawBanner(r Renderer, title, sub string) {
	w := float64(cfg.C.Width)
	h := float64(cfg.C.Height)
	r.FillRect(0, h/2-2*lineHeight, w, 4*lineHeight, cfg.BlackOverlay)
	r.DrawText(title, w/2-float64(len(title))*4, h/2-lineHeight, cfg.Yellow)
	r.DrawText(sub, w/2-float64(len(sub))*4, h/2+lineHeight/2, cfg.White)
}

func drawPlaying(g *game.Game, r Renderer, opts Options) {
	w := g.World()
	if w == nil {
		return
	}
	r.SetCamera(systems.CameraPosition(w))
	camX, camY := r.Camera()
	view := collision.Rect{X: camX, Y: camY, W: float64(cfg.C.Width), H: float64(cfg.C.Height)}

	drawLevel(w, r, view)
	drawCollectibles(w, r, view)
	drawEnemies(w, r, view)
	drawProjectiles(w, r, view)
	drawPlayer(w, r)
	DrawHUD(w, g.CurrentLevel(), r)
	if opts.Debug {
		DrawDebug(w, r)
	}
}

// visible reports whether rect is in view, with a margin so sprites do not
// pop at the edges.
func visible(rect, view collision.Rect) bool {
	const pad = 64
	return rect.Right() >= view.X-pad && rect.X <= view.Right()+pad &&
		rect.Bottom() >= view.Y-pad && rect.Y <= view.Bottom()+pad
}

func drawLevel(w donburi.World, r Renderer, view collision.Rect) {
	entry, ok := components.Level.First(w)
	if !ok {
		return
	}
	level := components.Level.Get(entry)
	for _, p := range level.Platforms {
		if !p.Valid() {
			continue
		}
		rect := components.Object.Get(p).Bounds()
		if !visible(rect, view) {
			continue
		}
		c := cfg.Brown
		if components.Platform.Get(p).Kind == cfg.PlatformLedge {
			c = cfg.DarkBlue
		}
		r.FillRect(rect.X-view.X, rect.Y-view.Y, rect.W, rect.H, c)
	}

	if level.Level != nil && level.Level.Victory == cfg.VictoryReachExit {
		exit := level.Level.Exit
		sprite(r, "exit", exit.X-view.X, exit.Y-view.Y, exit.W, exit.H, false, cfg.DarkGreen)
	}
}

func drawCollectibles(w donburi.World, r Renderer, view collision.Rect) {
	components.Collectible.Each(w, func(e *donburi.Entry) {
		c := components.Collectible.Get(e)
		rect := components.Object.Get(e).Bounds()
		if !c.Active || !visible(rect, view) {
			return
		}
		sprite(r, "collectible_"+c.Kind.String(), rect.X-view.X, rect.Y-view.Y, rect.W, rect.H, false, cfg.Orange)
	})
}

func drawEnemies(w donburi.World, r Renderer, view collision.Rect) {
	components.Enemy.Each(w, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		rect := components.Object.Get(e).Bounds()
		if !enemy.Active || !visible(rect, view) {
			return
		}
		fallback := color.Color(cfg.LightRed)
		if enemy.Stunned() {
			fallback = cfg.White
		}
		if m, ok := enemy.Variant.(*components.Motorcycle); ok && m.RevTimer > 0 {
			fallback = cfg.Red
		}
		sprite(r, "enemy_"+enemy.Kind().String(), rect.X-view.X, rect.Y-view.Y, rect.W, rect.H, enemy.Facing < 0, fallback)
	})
}

func drawProjectiles(w donburi.World, r Renderer, view collision.Rect) {
	components.Projectile.Each(w, func(e *donburi.Entry) {
		rect := components.Object.Get(e).Bounds()
		if !components.Projectile.Get(e).Active || !visible(rect, view) {
			return
		}
		r.FillRect(rect.X-view.X, rect.Y-view.Y, rect.W, rect.H, cfg.Yellow)
	})
}

func drawPlayer(w donburi.World, r Renderer) {
	entry, ok := components.Player.First(w)
	if !ok || entry.HasComponent(components.Death) {
		return
	}
	player := components.Player.Get(entry)
	// Flicker while invulnerable.
	if player.InvulnTimer > 0 && int(math.Floor(player.InvulnTimer*10))%2 == 0 {
		return
	}

	camX, camY := r.Camera()
	rect := components.Object.Get(entry).Bounds()
	x, y := rect.X-camX, rect.Y-camY
	sprite(r, "player_"+player.Anim.State.String(), x, y, rect.W, rect.H, !player.FacingRight(), cfg.Blue)

	if player.Weapon == cfg.WeaponPunch && player.Attack.IsAttacking {
		fist := systems.PunchRect(rect, player.Facing)
		r.FillRect(fist.X-camX, fist.Y-camY, fist.W, fist.H, cfg.LightBlue)
	}
}
