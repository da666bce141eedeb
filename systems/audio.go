package systems

import (
	"github.com/automoto/hedgecop/components"
	cfg "github.com/automoto/hedgecop/config"
	"github.com/yohamta/donburi"
)

// PlaySFX queues a sound effect. The host plays queued sounds after the tick,
// so the simulation never waits on audio.
func PlaySFX(w donburi.World, id cfg.SoundID) {
	if id == cfg.SoundNone {
		return
	}
	e, ok := components.Audio.First(w)
	if !ok {
		return
	}
	audio := components.Audio.Get(e)
	audio.PendingSFX = append(audio.PendingSFX, id)
}

// DrainSounds returns and clears the queued sound effects.
func DrainSounds(w donburi.World) []cfg.SoundID {
	e, ok := components.Audio.First(w)
	if !ok {
		return nil
	}
	audio := components.Audio.Get(e)
	pending := audio.PendingSFX
	audio.PendingSFX = nil
	return pending
}
