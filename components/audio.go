package components

import (
	cfg "github.com/automoto/wee-archer/config"
	"github.com/yohamta/donburi"
)

// AudioData queues sound cues raised during a tick (singleton component)
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
