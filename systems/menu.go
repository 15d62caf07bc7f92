package systems

import (
	"image/color"

	"github.com/automoto/wee-archer/components"
	cfg "github.com/automoto/wee-archer/config"
	"github.com/automoto/wee-archer/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// NewUpdateMenu creates an UpdateMenu system. startArena runs when Play is
// chosen and quit when Exit is chosen or back is pressed on the main list.
// Selections fire on release so the key is up before the next scene reads it.
func NewUpdateMenu(startArena, quit func()) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e)
		input := getOrCreateInput(e)

		alpha, _, looped := menu.TitlePulse.Update(float32(cfg.TickDuration.Seconds()))
		if looped {
			menu.TitlePulse.Reset()
		}
		menu.TitleAlpha = alpha

		if menu.ShowCredits {
			if GetAction(input, cfg.ActionMenuSelect).JustReleased || GetAction(input, cfg.ActionMenuBack).JustReleased {
				PlaySFX(e, cfg.SoundMenuNavigate)
				menu.ShowCredits = false
			}
			return
		}

		numOptions := len(menu.Options)
		if GetAction(input, cfg.ActionUp).JustPressed {
			PlaySFX(e, cfg.SoundMenuNavigate)
			menu.SelectedIndex = (menu.SelectedIndex - 1 + numOptions) % numOptions
		}
		if GetAction(input, cfg.ActionDown).JustPressed {
			PlaySFX(e, cfg.SoundMenuNavigate)
			menu.SelectedIndex = (menu.SelectedIndex + 1) % numOptions
		}

		if GetAction(input, cfg.ActionMenuSelect).JustReleased || GetAction(input, cfg.ActionAttack).JustReleased {
			switch menu.Options[menu.SelectedIndex] {
			case components.MainMenuPlay:
				// This world stops updating once the scene changes, so the
				// cue can't wait for the queue.
				playSFX(cfg.SoundMenuSelect)
				startArena()
			case components.MainMenuCredits:
				PlaySFX(e, cfg.SoundMenuSelect)
				menu.ShowCredits = true
			case components.MainMenuExit:
				quit()
			}
			return
		}

		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			quit()
		}
	}
}

// DrawMenu renders the main menu screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Menu.BackgroundColor, false)

	tc := cfg.Menu.TitleColor
	titleColor := color.NRGBA{R: tc.R, G: tc.G, B: tc.B, A: uint8(255 * menu.TitleAlpha)}
	drawCentered(screen, cfg.Menu.Title, fonts.Title.Get(), int(cfg.Menu.TitleY), titleColor)

	for i, option := range menu.Options {
		y := cfg.Menu.MenuStartY + float64(i)*(cfg.Menu.MenuItemHeight+cfg.Menu.MenuItemGap)
		textColor := cfg.Menu.TextColorNormal
		if i == menu.SelectedIndex {
			textColor = cfg.Menu.TextColorSelected
		}
		drawCentered(screen, optionLabel(option), fonts.Bold.Get(), int(y+cfg.Menu.MenuItemHeight), textColor)
	}

	drawCentered(screen, "W/S: Navigate   Enter: Select   Space: Shoot", fonts.Small.Get(), int(height)-12, cfg.Menu.TextColorNormal)

	if menu.ShowCredits {
		drawCredits(screen)
	}
}

func drawCredits(screen *ebiten.Image) {
	w, h := float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, w, h, cfg.Menu.CreditsOverlay, false)

	lines := cfg.Menu.CreditsLines
	y := (float64(h) - float64(len(lines)-1)*cfg.Menu.CreditsLineGap) / 2
	for _, line := range lines {
		drawCentered(screen, line, fonts.Regular.Get(), int(y), cfg.Menu.CreditsColor)
		y += cfg.Menu.CreditsLineGap
	}
}

func drawCentered(screen *ebiten.Image, s string, face font.Face, y int, clr color.Color) {
	width := font.MeasureString(face, s).Ceil()
	x := (screen.Bounds().Dx() - width) / 2
	text.Draw(screen, s, face, x, y, clr)
}

// optionLabel returns the display text for a menu option
func optionLabel(option components.MainMenuOption) string {
	switch option {
	case components.MainMenuPlay:
		return "Play"
	case components.MainMenuCredits:
		return "Credits"
	case components.MainMenuExit:
		return "Exit"
	}
	return ""
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	if _, ok := components.Menu.First(e.World); !ok {
		half := cfg.Menu.TitlePulseSeconds / 2
		pulse := gween.NewSequence(
			gween.New(1, 0.45, half, ease.InOutSine),
			gween.New(0.45, 1, half, ease.InOutSine),
		)

		ent := e.World.Entry(e.World.Create(components.Menu))
		components.Menu.SetValue(ent, components.MenuData{
			SelectedIndex: 0,
			Options:       []components.MainMenuOption{components.MainMenuPlay, components.MainMenuCredits, components.MainMenuExit},
			TitlePulse:    pulse,
			TitleAlpha:    1,
		})
	}

	ent, _ := components.Menu.First(e.World)
	return components.Menu.Get(ent)
}
