package game

import (
	"sync"

	cfg "github.com/automoto/hedgecop/config"
)

// InputEvent is one press or release reported by a host.
type InputEvent struct {
	Action  cfg.ActionID
	Pressed bool
}

// InputQueue collects input events from host callbacks, which may run on any
// goroutine, and hands them to the simulation once per tick.
type InputQueue struct {
	mu     sync.Mutex
	events []InputEvent
	held   [cfg.ActionCount]bool
	synced [cfg.ActionCount]bool
}

func NewInputQueue() *InputQueue {
	return &InputQueue{}
}

// Push queues a press or release.
func (q *InputQueue) Push(action cfg.ActionID, pressed bool) {
	if action <= cfg.ActionNone || action >= cfg.ActionCount {
		return
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	q.events = append(q.events, InputEvent{Action: action, Pressed: pressed})
}

func (q *InputQueue) Press(action cfg.ActionID)   { q.Push(action, true) }
func (q *InputQueue) Release(action cfg.ActionID) { q.Push(action, false) }

// Sync queues whatever changed between the previous snapshot and held. Hosts
// that poll key state every frame use this instead of Push.
func (q *InputQueue) Sync(held [cfg.ActionCount]bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for a := cfg.ActionNone + 1; a < cfg.ActionCount; a++ {
		if held[a] != q.synced[a] {
			q.events = append(q.events, InputEvent{Action: a, Pressed: held[a]})
		}
	}
	q.synced = held
}

// Drain applies the queued events and returns the actions held for this tick.
// A release that follows a press in the same drain is deferred to the next
// one, so a tap shorter than a tick is still seen. Likewise a press that
// follows an applied release waits a drain, so every press reads as a new edge.
func (q *InputQueue) Drain() [cfg.ActionCount]bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	var pressedNow, releasedNow, waiting [cfg.ActionCount]bool
	var deferred []InputEvent
	for _, ev := range q.events {
		a := ev.Action
		switch {
		case waiting[a]:
			deferred = append(deferred, ev)
		case ev.Pressed && releasedNow[a], !ev.Pressed && pressedNow[a]:
			waiting[a] = true
			deferred = append(deferred, ev)
		case ev.Pressed:
			q.held[a] = true
			pressedNow[a] = true
		default:
			q.held[a] = false
			releasedNow[a] = true
		}
	}
	q.events = deferred
	return q.held
}
