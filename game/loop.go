package game

import (
	"context"
	"log"
	"math"
	"sync"
	"sync/atomic"
	"time"

	cfg "github.com/automoto/hedgecop/config"
)

// Updater advances a simulation by dt seconds.
type Updater interface {
	Update(dt float64)
}

// GameLoop drives an Updater with clamped time steps. A panic inside a tick
// stops the loop instead of crashing the host.
type GameLoop struct {
	target   Updater
	tickRate int
	running  atomic.Bool
	stopOnce sync.Once
	stopChan chan struct{}

	lastCost time.Duration
	skipped  int
	now      func() time.Time
}

func NewGameLoop(target Updater, tickRate int) *GameLoop {
	if tickRate <= 0 {
		tickRate = cfg.Loop.TickRate
	}
	g := &GameLoop{
		target:   target,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
		now:      time.Now,
	}
	g.running.Store(true)
	return g
}

// ClampDelta bounds a frame delta to [0, cfg.Loop.MaxDelta] seconds.
func ClampDelta(dt float64) float64 {
	if math.IsNaN(dt) || dt < 0 {
		return 0
	}
	return math.Min(dt, cfg.Loop.MaxDelta)
}

// Tick runs one update for a frame that took elapsed. It reports whether the
// loop is still running afterwards.
func (g *GameLoop) Tick(elapsed time.Duration) (running bool) {
	if !g.running.Load() {
		return false
	}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("Error: tick failed, stopping loop: %v", r)
			g.running.Store(false)
			running = false
		}
	}()

	if cfg.Loop.FrameSkip && g.lastCost > cfg.Loop.SkipThreshold {
		g.lastCost = 0
		g.skipped++
		return true
	}

	start := g.now()
	g.target.Update(ClampDelta(elapsed.Seconds()))
	g.lastCost = g.now().Sub(start)
	return true
}

// Run ticks at the loop's rate until ctx is done, Stop is called or a tick
// fails. draw, if set, is called after every tick.
func (g *GameLoop) Run(ctx context.Context, draw func()) {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second", g.tickRate)
	last := g.now()
	for {
		select {
		case <-ctx.Done():
			g.running.Store(false)
			return
		case <-g.stopChan:
			g.running.Store(false)
			log.Println("Game loop stopped")
			return
		case <-ticker.C:
			now := g.now()
			ok := g.Tick(now.Sub(last))
			last = now
			if !ok {
				return
			}
			if draw != nil {
				draw()
			}
		}
	}
}

func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() {
		g.running.Store(false)
		close(g.stopChan)
	})
}

func (g *GameLoop) Running() bool { return g.running.Load() }

// Skipped returns how many ticks frame skipping has dropped.
func (g *GameLoop) Skipped() int { return g.skipped }
