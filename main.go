package main

import (
	"flag"
	"image"
	"log"
	"os"

	"github.com/automoto/wee-archer/config"
	"github.com/automoto/wee-archer/fonts"
	"github.com/automoto/wee-archer/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
	tuning *config.TuningWatcher
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(tuning *config.TuningWatcher) *Game {
	g := &Game{
		bounds: image.Rectangle{},
		tuning: tuning,
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewArenaScene(g)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.pollTuning()
	g.scene.Update()
	return nil
}

// pollTuning applies a changed tuning file between ticks, never mid-tick.
func (g *Game) pollTuning() {
	if g.tuning == nil {
		return
	}
	select {
	case path := <-g.tuning.Events:
		if err := loadTuning(path); err != nil {
			log.Printf("Warning: tuning not reloaded: %v", err)
			return
		}
		log.Printf("Reloaded tuning from %s", path)
	case err := <-g.tuning.Errors:
		log.Printf("Warning: tuning watcher: %v", err)
	default:
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func loadTuning(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return config.ApplyTuning(data)
}

func main() {
	skipMenu := flag.Bool("skip-menu", false, "start directly in the arena")
	debug := flag.Bool("debug", false, "show collider outlines and state overlay")
	tuningPath := flag.String("tuning", "", "YAML file overriding gameplay values, reloaded on change")
	flag.Parse()

	config.Debug.SkipMenu = *skipMenu
	config.Debug.Overlay = *debug

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	var watcher *config.TuningWatcher
	if *tuningPath != "" {
		if err := loadTuning(*tuningPath); err != nil {
			log.Printf("Warning: using default tuning: %v", err)
		}
		w, err := config.NewTuningWatcher(*tuningPath)
		if err != nil {
			log.Printf("Warning: tuning changes will not be picked up: %v", err)
		} else {
			watcher = w
			defer watcher.Close()
		}
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame(watcher)); err != nil {
		log.Fatal(err)
	}
}
