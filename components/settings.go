package components

import "github.com/yohamta/donburi"

// SettingsData holds session toggles (singleton component)
type SettingsData struct {
	Debug bool
}

var Settings = donburi.NewComponentType[SettingsData]()
