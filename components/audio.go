package components

import (
	cfg "github.com/automoto/hedgecop/config"
	"github.com/yohamta/donburi"
)

// AudioData queues sound effects raised during a tick for the host to play.
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
