// Package terminal runs the game in a text terminal with tcell.
package terminal

import (
	"image/color"
	"math"

	cfg "github.com/automoto/hedgecop/config"
	"github.com/automoto/hedgecop/render"
	"github.com/gdamore/tcell/v2"
)

// CellRenderer scales the game's pixel coordinates onto terminal cells.
type CellRenderer struct {
	screen tcell.Screen
	camX   float64
	camY   float64
	bg     tcell.Color
}

func NewCellRenderer(screen tcell.Screen) *CellRenderer {
	return &CellRenderer{screen: screen, bg: tcell.ColorBlack}
}

// cellSize is how many game pixels one cell covers on each axis.
func (r *CellRenderer) cellSize() (sx, sy float64) {
	cols, rows := r.screen.Size()
	if cols <= 0 || rows <= 0 {
		return 1, 1
	}
	return float64(cfg.C.Width) / float64(cols), float64(cfg.C.Height) / float64(rows)
}

// cells converts a pixel rect to an inclusive, clipped cell range.
func (r *CellRenderer) cells(x, y, w, h float64) (c0, r0, c1, r1 int, ok bool) {
	sx, sy := r.cellSize()
	cols, rows := r.screen.Size()
	c0 = max(int(math.Floor(x/sx)), 0)
	r0 = max(int(math.Floor(y/sy)), 0)
	c1 = min(int(math.Ceil((x+w)/sx))-1, cols-1)
	r1 = min(int(math.Ceil((y+h)/sy))-1, rows-1)
	return c0, r0, c1, r1, c0 <= c1 && r0 <= r1
}

func (r *CellRenderer) Clear(c color.Color) {
	r.bg = tcell.FromImageColor(c)
	r.screen.Fill(' ', tcell.StyleDefault.Background(r.bg))
}

func (r *CellRenderer) FillRect(x, y, w, h float64, c color.Color) {
	c0, r0, c1, r1, ok := r.cells(x, y, w, h)
	if !ok {
		return
	}
	style := tcell.StyleDefault.Foreground(tcell.FromImageColor(c)).Background(r.bg)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			r.screen.SetContent(col, row, '█', nil, style)
		}
	}
}

func (r *CellRenderer) StrokeRect(x, y, w, h float64, c color.Color) {
	c0, r0, c1, r1, ok := r.cells(x, y, w, h)
	if !ok {
		return
	}
	style := tcell.StyleDefault.Foreground(tcell.FromImageColor(c)).Background(r.bg)
	for col := c0; col <= c1; col++ {
		r.screen.SetContent(col, r0, '─', nil, style)
		r.screen.SetContent(col, r1, '─', nil, style)
	}
	for row := r0; row <= r1; row++ {
		r.screen.SetContent(c0, row, '│', nil, style)
		r.screen.SetContent(c1, row, '│', nil, style)
	}
}

// DrawImage always reports a missing image; the terminal draws sprites as
// colored blocks.
func (r *CellRenderer) DrawImage(string, float64, float64, float64, float64, bool) error {
	return render.ErrNoImage
}

func (r *CellRenderer) DrawText(s string, x, y float64, c color.Color) {
	sx, sy := r.cellSize()
	cols, rows := r.screen.Size()
	row := int(y / sy)
	if row < 0 || row >= rows {
		return
	}
	style := tcell.StyleDefault.Foreground(tcell.FromImageColor(c)).Background(r.bg)
	col := int(x / sx)
	for _, ch := range s {
		if col >= cols {
			return
		}
		if col >= 0 {
			r.screen.SetContent(col, row, ch, nil, style)
		}
		col++
	}
}

func (r *CellRenderer) SetCamera(x, y float64) { r.camX, r.camY = x, y }
func (r *CellRenderer) Camera() (float64, float64) { return r.camX, r.camY }
