package terminal

import (
	"sync"
	"time"

	cfg "github.com/automoto/hedgecop/config"
	"github.com/gdamore/tcell/v2"
)

// Terminals report key presses and auto-repeats but never releases. A key
// counts as held until no event for it arrives within the hold window. For
// movement the first window covers the terminal's initial repeat delay.
// Everything else only acts on the press, so it gets the short tap window
// and quick repeated taps each register.
const (
	initialHold = 550 * time.Millisecond
	repeatHold  = 120 * time.Millisecond
	tapHold     = 90 * time.Millisecond
)

func holdWindow(action cfg.ActionID, repeating bool) time.Duration {
	switch {
	case repeating:
		return repeatHold
	case action == cfg.ActionMoveLeft || action == cfg.ActionMoveRight:
		return initialHold
	default:
		return tapHold
	}
}

// Queue is where key presses and releases are sent.
type Queue interface {
	Press(cfg.ActionID)
	Release(cfg.ActionID)
}

type heldKey struct {
	last      time.Time
	repeating bool
}

// KeyState turns tcell key events into press/release pairs.
type KeyState struct {
	mu    sync.Mutex
	queue Queue
	held  map[cfg.ActionID]*heldKey
}

func NewKeyState(q Queue) *KeyState {
	return &KeyState{queue: q, held: map[cfg.ActionID]*heldKey{}}
}

// Key records an event for action seen at now.
func (k *KeyState) Key(action cfg.ActionID, now time.Time) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if h, ok := k.held[action]; ok {
		h.last = now
		h.repeating = true
		return
	}
	k.held[action] = &heldKey{last: now}
	k.queue.Press(action)
}

// Expire releases every action whose hold window has passed.
func (k *KeyState) Expire(now time.Time) {
	k.mu.Lock()
	defer k.mu.Unlock()

	for action, h := range k.held {
		if now.Sub(h.last) > holdWindow(action, h.repeating) {
			delete(k.held, action)
			k.queue.Release(action)
		}
	}
}

// Held reports whether action is currently considered down.
func (k *KeyState) Held(action cfg.ActionID) bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	_, ok := k.held[action]
	return ok
}

// keyAction maps a tcell key event to a game action.
func keyAction(ev *tcell.EventKey) (cfg.ActionID, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return cfg.ActionMoveLeft, true
	case tcell.KeyRight:
		return cfg.ActionMoveRight, true
	case tcell.KeyUp:
		return cfg.ActionJump, true
	case tcell.KeyTab:
		return cfg.ActionSwitchWeapon, true
	case tcell.KeyEscape, tcell.KeyBackspace, tcell.KeyBackspace2:
		return cfg.ActionBack, true
	case tcell.KeyEnter:
		return cfg.ActionConfirm, true
	case tcell.KeyRune:
	default:
		return cfg.ActionNone, false
	}

	r := ev.Rune()
	if r >= '1' && r <= '9' {
		return cfg.ActionForLevel(int(r - '0'))
	}
	switch r {
	case 'a', 'A':
		return cfg.ActionMoveLeft, true
	case 'd', 'D':
		return cfg.ActionMoveRight, true
	case 'w', 'W', ' ':
		return cfg.ActionJump, true
	case 'j', 'J', 'x', 'X':
		return cfg.ActionAttack, true
	case 'k', 'K':
		return cfg.ActionSwitchWeapon, true
	case 'p', 'P':
		return cfg.ActionPause, true
	}
	return cfg.ActionNone, false
}
