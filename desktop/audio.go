package desktop

import (
	"log"
	"sync"

	cfg "github.com/automoto/hedgecop/config"
	"github.com/automoto/hedgecop/progress"
	"github.com/automoto/hedgecop/synth"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SettingsStore persists audio preferences.
type SettingsStore interface {
	LoadSettings() (progress.Settings, bool, error)
	SaveSettings(progress.Settings) error
}

var (
	audioContext  *audio.Context
	audioInitOnce sync.Once
)

// Audio plays synthesized tones through ebiten's audio context.
type Audio struct {
	mu       sync.Mutex
	pcm      map[string][]byte
	volume   float64
	muted    bool
	settings SettingsStore
}

// NewAudio restores saved preferences from settings, which may be nil.
func NewAudio(settings SettingsStore) *Audio {
	audioInitOnce.Do(func() {
		audioContext = audio.NewContext(cfg.Audio.SampleRate)
	})

	a := &Audio{
		pcm:      map[string][]byte{},
		volume:   cfg.Audio.DefaultSFXVol,
		settings: settings,
	}
	if settings == nil {
		return a
	}
	saved, ok, err := settings.LoadSettings()
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return a
	}
	if ok {
		a.muted = saved.Muted
		if saved.SFXVolume > 0 {
			a.volume = saved.SFXVolume
		}
	}
	return a
}

// PlaySound starts the named tone. Unknown names are ignored.
func (a *Audio) PlaySound(name string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.muted || a.volume <= 0 {
		return
	}

	pcm, ok := a.pcm[name]
	if !ok {
		tone, found := cfg.ToneByName(name)
		if !found {
			return
		}
		pcm = synth.PCM16(tone, cfg.Audio.SampleRate)
		a.pcm[name] = pcm
	}

	player := audioContext.NewPlayerFromBytes(pcm)
	player.SetVolume(a.volume)
	player.Play()
}

// ToggleMute flips mute and saves the preference.
func (a *Audio) ToggleMute() {
	a.mu.Lock()
	a.muted = !a.muted
	s := progress.Settings{Muted: a.muted, SFXVolume: a.volume}
	a.mu.Unlock()

	if a.settings == nil {
		return
	}
	if err := a.settings.SaveSettings(s); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
	}
}

func (a *Audio) Muted() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.muted
}
