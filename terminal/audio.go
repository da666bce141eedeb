package terminal

import (
	"sync"
	"time"

	cfg "github.com/automoto/hedgecop/config"
	"github.com/automoto/hedgecop/synth"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Beeper plays game sounds through the system speaker.
type Beeper struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

func NewBeeper() *Beeper {
	return &Beeper{
		rate:  beep.SampleRate(cfg.Audio.SampleRate),
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker. The game runs silently if it fails.
func (b *Beeper) Initialize() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized {
		return nil
	}
	if err := speaker.Init(b.rate, b.rate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(b.mixer)
	b.initialized = true
	return nil
}

func (b *Beeper) PlaySound(name string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.initialized || b.muted {
		return
	}
	tone, ok := cfg.ToneByName(name)
	if !ok {
		return
	}
	speaker.Lock()
	b.mixer.Add(synth.NewVoice(tone, int(b.rate)))
	speaker.Unlock()
}

func (b *Beeper) ToggleMute() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.muted = !b.muted
}

// Close stops all sounds and releases the speaker.
func (b *Beeper) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.initialized {
		return
	}
	speaker.Lock()
	b.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	b.initialized = false
}
