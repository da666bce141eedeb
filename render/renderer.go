// Package render draws a game.Game through a host supplied Renderer. It only
// reads simulation state.
package render

import (
	"errors"
	"image/color"
	"log"
	"sync"
)

// ErrNoImage is returned by Renderer.DrawImage when a host has no image for a
// sprite name. The caller draws a placeholder instead.
var ErrNoImage = errors.New("no image for sprite")

// Renderer is the drawing surface of a host. Coordinates are screen pixels;
// Draw subtracts the camera before calling it.
type Renderer interface {
	Clear(c color.Color)
	FillRect(x, y, w, h float64, c color.Color)
	StrokeRect(x, y, w, h float64, c color.Color)
	DrawImage(name string, x, y, w, h float64, flipX bool) error
	DrawText(s string, x, y float64, c color.Color)
	SetCamera(x, y float64)
	Camera() (x, y float64)
}

// Options are per-frame drawing switches owned by the host.
type Options struct {
	Debug bool
}

var (
	placeholder = color.RGBA{R: 255, G: 0, B: 255, A: 255}

	missingMu sync.Mutex
	missing   = map[string]bool{}
)

// sprite draws name over the rect, or a placeholder box if the host cannot.
// Each missing name is logged once.
func sprite(r Renderer, name string, x, y, w, h float64, flipX bool, fallback color.Color) {
	err := r.DrawImage(name, x, y, w, h, flipX)
	if err == nil {
		return
	}
	if !errors.Is(err, ErrNoImage) {
		warnOnce(name, err)
	}
	if fallback == nil {
		fallback = placeholder
	}
	r.FillRect(x, y, w, h, fallback)
}

func warnOnce(name string, err error) {
	missingMu.Lock()
	defer missingMu.Unlock()
	if missing[name] {
		return
	}
	missing[name] = true
	log.Printf("Warning: sprite %s unavailable, drawing placeholder: %v", name, err)
}
