package desktop

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"io/fs"
	"log"
	"path"
	"strings"

	"github.com/automoto/hedgecop/fonts"
	"github.com/automoto/hedgecop/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ScreenRenderer draws onto the ebiten screen for one frame at a time.
type ScreenRenderer struct {
	screen *ebiten.Image
	camX   float64
	camY   float64

	sprites map[string]*ebiten.Image
	face    text.Face
	drawOp  *ebiten.DrawImageOptions
	textOp  *text.DrawOptions
}

func NewScreenRenderer() *ScreenRenderer {
	return &ScreenRenderer{
		sprites: map[string]*ebiten.Image{},
		face:    text.NewGoXFace(fonts.HUD.Get()),
		drawOp:  &ebiten.DrawImageOptions{},
		textOp:  &text.DrawOptions{},
	}
}

// LoadSprites registers every PNG in dir under its base name. A missing
// directory leaves the renderer on placeholders.
func (s *ScreenRenderer) LoadSprites(fsys fs.FS, dir string) error {
	matches, err := fs.Glob(fsys, path.Join(dir, "*.png"))
	if err != nil {
		return fmt.Errorf("glob sprites: %w", err)
	}
	for _, m := range matches {
		f, err := fsys.Open(m)
		if err != nil {
			return fmt.Errorf("open sprite %s: %w", m, err)
		}
		img, _, err := image.Decode(f)
		f.Close()
		if err != nil {
			log.Printf("Warning: Could not decode sprite %s: %v", m, err)
			continue
		}
		s.sprites[strings.TrimSuffix(path.Base(m), ".png")] = ebiten.NewImageFromImage(img)
	}
	return nil
}

// Begin points the renderer at this frame's screen.
func (s *ScreenRenderer) Begin(screen *ebiten.Image) {
	s.screen = screen
}

func (s *ScreenRenderer) Clear(c color.Color) {
	s.screen.Fill(c)
}

func (s *ScreenRenderer) FillRect(x, y, w, h float64, c color.Color) {
	vector.FillRect(s.screen, float32(x), float32(y), float32(w), float32(h), c, false)
}

func (s *ScreenRenderer) StrokeRect(x, y, w, h float64, c color.Color) {
	vector.StrokeRect(s.screen, float32(x), float32(y), float32(w), float32(h), 1, c, false)
}

func (s *ScreenRenderer) DrawImage(name string, x, y, w, h float64, flipX bool) error {
	img, ok := s.sprites[name]
	if !ok {
		return render.ErrNoImage
	}
	b := img.Bounds()
	s.drawOp.GeoM.Reset()
	s.drawOp.ColorScale.Reset()
	if flipX {
		s.drawOp.GeoM.Scale(-1, 1)
		s.drawOp.GeoM.Translate(float64(b.Dx()), 0)
	}
	s.drawOp.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	s.drawOp.GeoM.Translate(x, y)
	s.screen.DrawImage(img, s.drawOp)
	return nil
}

func (s *ScreenRenderer) DrawText(str string, x, y float64, c color.Color) {
	s.textOp.GeoM.Reset()
	s.textOp.ColorScale.Reset()
	s.textOp.GeoM.Translate(x, y)
	s.textOp.ColorScale.ScaleWithColor(c)
	text.Draw(s.screen, str, s.face, s.textOp)
}

func (s *ScreenRenderer) SetCamera(x, y float64) { s.camX, s.camY = x, y }
func (s *ScreenRenderer) Camera() (float64, float64) { return s.camX, s.camY }
