package components

import (
	"github.com/yohamta/donburi"
)

// AnimationData is the displayed tileset frame and its flip timer.
type AnimationData struct {
	Frame int
	Timer Timer
}

var Animation = donburi.NewComponentType[AnimationData]()
