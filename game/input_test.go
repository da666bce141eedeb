package game

import (
	"sync"
	"testing"

	cfg "github.com/automoto/hedgecop/config"
	"github.com/stretchr/testify/assert"
)

func TestDrainHoldsUntilRelease(t *testing.T) {
	q := NewInputQueue()
	q.Press(cfg.ActionMoveLeft)

	held := q.Drain()
	assert.True(t, held[cfg.ActionMoveLeft])
	assert.True(t, q.Drain()[cfg.ActionMoveLeft], "still held with no new events")

	q.Release(cfg.ActionMoveLeft)
	assert.False(t, q.Drain()[cfg.ActionMoveLeft])
}

func TestTapWithinOneDrainIsSeen(t *testing.T) {
	q := NewInputQueue()
	q.Press(cfg.ActionJump)
	q.Release(cfg.ActionJump)

	assert.True(t, q.Drain()[cfg.ActionJump])
	assert.False(t, q.Drain()[cfg.ActionJump])
}

func TestReleaseThenPressInOneDrain(t *testing.T) {
	q := NewInputQueue()
	q.Press(cfg.ActionAttack)
	q.Drain()

	q.Release(cfg.ActionAttack)
	q.Press(cfg.ActionAttack)
	assert.False(t, q.Drain()[cfg.ActionAttack], "the release lands first")
	assert.True(t, q.Drain()[cfg.ActionAttack], "then the new press")
	assert.True(t, q.Drain()[cfg.ActionAttack])
}

func TestTapsOnConsecutiveTicksAreSeparateEdges(t *testing.T) {
	q := NewInputQueue()
	var got []bool
	for i := 0; i < 2; i++ {
		q.Press(cfg.ActionPause)
		q.Release(cfg.ActionPause)
		got = append(got, q.Drain()[cfg.ActionPause])
	}
	got = append(got, q.Drain()[cfg.ActionPause], q.Drain()[cfg.ActionPause])

	assert.Equal(t, []bool{true, false, true, false}, got)
}

func TestPushIgnoresUnknownActions(t *testing.T) {
	q := NewInputQueue()
	q.Press(cfg.ActionNone)
	q.Press(cfg.ActionCount)
	q.Press(cfg.ActionID(-3))

	assert.Equal(t, [cfg.ActionCount]bool{}, q.Drain())
}

func TestSyncQueuesOnlyChanges(t *testing.T) {
	q := NewInputQueue()

	var held [cfg.ActionCount]bool
	held[cfg.ActionMoveRight] = true
	q.Sync(held)
	q.Sync(held)
	assert.Len(t, q.events, 1)
	assert.True(t, q.Drain()[cfg.ActionMoveRight])

	held[cfg.ActionMoveRight] = false
	held[cfg.ActionJump] = true
	q.Sync(held)
	got := q.Drain()
	assert.False(t, got[cfg.ActionMoveRight])
	assert.True(t, got[cfg.ActionJump])
}

func TestQueueAcceptsConcurrentProducers(t *testing.T) {
	q := NewInputQueue()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				q.Press(cfg.ActionMoveRight)
				q.Release(cfg.ActionMoveRight)
			}
		}()
	}
	for i := 0; i < 50; i++ {
		q.Drain()
	}
	wg.Wait()

	// Each drain advances an action by at most one edge.
	for i := 0; i < 2000 && len(q.events) > 0; i++ {
		q.Drain()
	}
	assert.Empty(t, q.events)
	assert.False(t, q.Drain()[cfg.ActionMoveRight], "every press was matched by a release")
}
