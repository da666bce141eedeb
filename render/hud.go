package render

import (
	"fmt"
	"image/color"

	"github.com/automoto/hedgecop/components"
	cfg "github.com/automoto/hedgecop/config"
	"github.com/automoto/hedgecop/systems"
	"github.com/yohamta/donburi"
)

const (
	hudBarWidth  = 130
	hudBarHeight = 13
	hudMargin    = 10
)

var (
	hudBarBack = color.RGBA{40, 40, 40, 255}
	hudBarFill = color.RGBA{40, 220, 40, 255}
)

// DrawHUD renders health, lives, score, weapon and level number in the
// top-left corner.
func DrawHUD(w donburi.World, level int, r Renderer) {
	entry, ok := components.Player.First(w)
	if !ok {
		return
	}
	hp := components.Health.Get(entry)
	lives := components.Lives.Get(entry)
	player := components.Player.Get(entry)

	r.FillRect(hudMargin, hudMargin, hudBarWidth, hudBarHeight, hudBarBack)
	if hp.Max > 0 {
		ratio := float64(hp.Current) / float64(hp.Max)
		r.FillRect(hudMargin, hudMargin, hudBarWidth*ratio, hudBarHeight, hudBarFill)
	}

	y := float64(hudMargin + hudBarHeight + 4)
	r.DrawText(fmt.Sprintf("LIVES %d", lives.Lives), hudMargin, y, cfg.White)
	r.DrawText(fmt.Sprintf("SCORE %d", systems.Session(w).Score), hudMargin, y+lineHeight, cfg.White)
	r.DrawText(fmt.Sprintf("WEAPON %s", player.Weapon), hudMargin, y+2*lineHeight, cfg.LightBlue)

	label := fmt.Sprintf("LEVEL %d", level)
	r.DrawText(label, float64(cfg.C.Width)-hudMargin-float64(len(label))*8, hudMargin, cfg.Yellow)
}
