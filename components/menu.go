package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// MainMenuOption represents the available main menu selections
type MainMenuOption int

const (
	MainMenuPlay MainMenuOption = iota
	MainMenuCredits
	MainMenuExit
)

// MenuData stores the current state of the main menu
type MenuData struct {
	SelectedIndex int
	Options       []MainMenuOption
	TitlePulse    *gween.Sequence
	TitleAlpha    float32
	ShowCredits   bool
}

var Menu = donburi.NewComponentType[MenuData]()
