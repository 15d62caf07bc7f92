package systems

import (
	"github.com/automoto/wee-archer/components"
	cfg "github.com/automoto/wee-archer/config"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateSettings handles session toggles in the arena. onBack runs when
// the back action is released.
func NewUpdateSettings(onBack func()) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)
		settings := GetOrCreateSettings(e)

		if GetAction(input, cfg.ActionDebug).JustPressed {
			settings.Debug = !settings.Debug
		}

		// Released rather than pressed so the key is up before the menu
		// scene starts reading it.
		if GetAction(input, cfg.ActionMenuBack).JustReleased && onBack != nil {
			onBack()
		}
	}
}

// GetOrCreateSettings returns the singleton Settings component, creating if needed
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			Debug: cfg.Debug.Overlay,
		})
	}
	return components.Settings.Get(entry)
}
