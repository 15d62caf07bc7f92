package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/wee-archer/assets"
	cfg "github.com/automoto/wee-archer/config"
	"github.com/automoto/wee-archer/systems"
	"github.com/automoto/wee-archer/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArenaScene is the single play area with one archer.
type ArenaScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

func NewArenaScene(sc SceneChanger) *ArenaScene {
	return &ArenaScene{sceneChanger: sc}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.ecs.Update()
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

func (as *ArenaScene) configure() {
	// Synthesize cues now so the first shot doesn't stall
	systems.PreloadAllSFX()

	arena, err := assets.LoadArena()
	if err != nil {
		panic("failed to load arena: " + err.Error())
	}
	log.Printf("Entering arena %q", arena.Name)

	backToMenu := func() {
		as.sceneChanger.ChangeScene(NewMenuScene(as.sceneChanger))
	}

	e := ecs.NewECS(donburi.NewWorld())
	ConfigureArena(e, arena, backToMenu)
	as.ecs = e
}

// ConfigureArena registers the arena pipeline on e and spawns the player.
// Projectiles move before characters, so an arrow spawned this tick first
// moves on the next one.
func ConfigureArena(e *ecs.ECS, arena *assets.Arena, onBack func()) {
	e.AddSystem(systems.UpdateAudio)
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.NewUpdateSettings(onBack))
	e.AddSystem(systems.UpdateProjectiles)
	e.AddSystem(systems.UpdateCharacters)
	e.AddSystem(systems.UpdateAnimations)
	e.AddSystem(systems.UpdateColliders)

	e.AddRenderer(cfg.Default, systems.DrawArena)
	e.AddRenderer(cfg.Default, systems.DrawCharacters)
	e.AddRenderer(cfg.Default, systems.DrawProjectiles)
	e.AddRenderer(cfg.Default, systems.DrawDebug)

	factory.CreateSpace(e)
	factory.CreatePlayer(e, arena.SpawnX, arena.SpawnY)

	// Every system after this assumes exactly one player exists.
	systems.MustPlayer(e)
}
