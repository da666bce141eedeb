package game

import (
	"context"
	"math"
	"sync/atomic"
	"testing"
	"time"

	cfg "github.com/automoto/hedgecop/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingUpdater struct {
	calls  atomic.Int32
	last   float64
	panics bool
}

func (c *countingUpdater) Update(dt float64) {
	c.calls.Add(1)
	c.last = dt
	if c.panics {
		panic("boom")
	}
}

func TestClampDelta(t *testing.T) {
	t.Cleanup(cfg.Reset)

	assert.Equal(t, 0.0, ClampDelta(-1))
	assert.Equal(t, 0.0, ClampDelta(math.NaN()))
	assert.Equal(t, 0.01, ClampDelta(0.01))
	assert.Equal(t, cfg.Loop.MaxDelta, ClampDelta(5))
	assert.Equal(t, cfg.Loop.MaxDelta, ClampDelta(math.Inf(1)))
}

func TestTickPassesClampedDelta(t *testing.T) {
	t.Cleanup(cfg.Reset)
	u := &countingUpdater{}
	loop := NewGameLoop(u, 60)

	require.True(t, loop.Tick(2*time.Second))
	assert.Equal(t, cfg.Loop.MaxDelta, u.last)

	require.True(t, loop.Tick(10*time.Millisecond))
	assert.InDelta(t, 0.01, u.last, 1e-9)
}

func TestTickRecoversFromPanic(t *testing.T) {
	u := &countingUpdater{panics: true}
	loop := NewGameLoop(u, 60)

	assert.False(t, loop.Tick(time.Millisecond))
	assert.False(t, loop.Running())

	assert.False(t, loop.Tick(time.Millisecond))
	assert.Equal(t, int32(1), u.calls.Load(), "a stopped loop does not tick")
}

func TestFrameSkipDropsTickAfterSlowUpdate(t *testing.T) {
	t.Cleanup(cfg.Reset)
	cfg.Loop.FrameSkip = true
	cfg.Loop.SkipThreshold = time.Millisecond

	u := &countingUpdater{}
	loop := NewGameLoop(u, 60)
	clock := time.Unix(0, 0)
	loop.now = func() time.Time {
		clock = clock.Add(5 * time.Millisecond)
		return clock
	}

	for i := 0; i < 4; i++ {
		require.True(t, loop.Tick(16*time.Millisecond))
	}
	assert.Equal(t, int32(2), u.calls.Load())
	assert.Equal(t, 2, loop.Skipped())
}

func TestNoFrameSkipByDefault(t *testing.T) {
	t.Cleanup(cfg.Reset)
	u := &countingUpdater{}
	loop := NewGameLoop(u, 60)
	clock := time.Unix(0, 0)
	loop.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}

	for i := 0; i < 3; i++ {
		loop.Tick(16 * time.Millisecond)
	}
	assert.Equal(t, int32(3), u.calls.Load())
	assert.Zero(t, loop.Skipped())
}

func TestRunStopsWithContext(t *testing.T) {
	u := &countingUpdater{}
	loop := NewGameLoop(u, 200)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	var draws atomic.Int32
	loop.Run(ctx, func() { draws.Add(1) })

	assert.False(t, loop.Running())
	assert.Positive(t, u.calls.Load())
	assert.Equal(t, u.calls.Load(), draws.Load())
}

func TestStopEndsRun(t *testing.T) {
	loop := NewGameLoop(&countingUpdater{}, 200)

	done := make(chan struct{})
	go func() {
		loop.Run(context.Background(), nil)
		close(done)
	}()
	loop.Stop()
	loop.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after Stop")
	}
	assert.False(t, loop.Running())
}

func TestRunReturnsAfterPanic(t *testing.T) {
	loop := NewGameLoop(&countingUpdater{panics: true}, 200)

	done := make(chan struct{})
	go func() {
		loop.Run(context.Background(), nil)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run kept going after a panic")
	}
}
