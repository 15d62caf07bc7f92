package config

import (
	"image/color"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer used by the scenes.
const Default ecs.LayerID = iota

// TickRate is the fixed simulation rate (ebiten's default TPS).
const TickRate = 60

// TickDuration is the simulated time advanced by one Update call.
const TickDuration = time.Second / TickRate

// ArenaConfig holds the world-space limits shared by the movement clamp and
// projectile despawn. World space is y-up with the origin at the arena center.
type ArenaConfig struct {
	Left  float64
	Right float64
	Up    float64
	Down  float64

	BackgroundColor color.RGBA
	BorderColor     color.RGBA
}

// ClampMargins offsets the arena bounds for the player clamp. Positive values
// push the clamp outward, negative values pull it in.
type ClampMargins struct {
	Left  float64
	Right float64
	Up    float64
	Down  float64
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	Speed float64 // world units per second
	Clamp ClampMargins

	// Combat
	AttackCooldown time.Duration // how long an attack state stays active

	// Dimensions
	FrameWidth      int
	FrameHeight     int
	Scale           float64
	CollisionWidth  float64
	CollisionHeight float64
}

// ProjectileConfig contains arrow configuration
type ProjectileConfig struct {
	Speed          float64 // world units per second
	LayerOffset    float64 // drawn this far above the owner
	CollisionSize  float64
	TextureLength  int
	TextureBreadth int
}

// AnimationConfig contains animation timing values
type AnimationConfig struct {
	IdleFrameDuration   time.Duration
	AttackFrameDuration time.Duration
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	Title             string
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	TitlePulseSeconds float32

	CreditsOverlay color.RGBA
	CreditsColor   color.RGBA
	CreditsLines   []string
	CreditsLineGap float64
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool // Skip menu and go directly to the arena
	Overlay  bool // Start with the debug overlay enabled
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// Global configuration instances
var C *Config
var Arena ArenaConfig
var Player PlayerConfig
var Projectile ProjectileConfig
var Animation AnimationConfig
var Menu MenuConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected menu items
)

func init() {
	C = &Config{
		Width:  480,
		Height: 384,
		Title:  "wee archer",
	}

	Arena = ArenaConfig{
		Left:  -210,
		Right: 210,
		Up:    120,
		Down:  -160,

		BackgroundColor: color.RGBA{R: 58, G: 46, B: 38, A: 255},
		BorderColor:     color.RGBA{R: 120, G: 96, B: 70, A: 255},
	}

	Player = PlayerConfig{
		Speed: 100,
		Clamp: ClampMargins{
			Left:  10,  // clamp at -220
			Right: -25, // clamp at 185, sprite is anchored bottom-left
			Up:    -20, // clamp at 100
			Down:  20,  // clamp at -180
		},

		AttackCooldown: 500 * time.Millisecond,

		FrameWidth:      10,
		FrameHeight:     10,
		Scale:           2,
		CollisionWidth:  20,
		CollisionHeight: 20,
	}

	Projectile = ProjectileConfig{
		Speed:          500,
		LayerOffset:    1,
		CollisionSize:  6,
		TextureLength:  9,
		TextureBreadth: 3,
	}

	Animation = AnimationConfig{
		IdleFrameDuration:   250 * time.Millisecond,
		AttackFrameDuration: 100 * time.Millisecond,
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 16, G: 12, B: 24, A: 255},
		TitleColor:        Yellow,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
		Title:             "WEE ARCHER",
		TitleY:            110,
		MenuStartY:        180,
		MenuItemHeight:    24,
		MenuItemGap:       12,
		TitlePulseSeconds: 1.2,

		CreditsOverlay: BlackOverlay,
		CreditsColor:   White,
		CreditsLines: []string{
			"WEE ARCHER",
			"Built on ebiten, donburi and resolv",
			"Go fonts by Bigelow & Holmes",
			"",
			"Enter to return",
		},
		CreditsLineGap: 20,
	}
}

// PlayerBounds returns the clamp rectangle for the player's anchor point.
func PlayerBounds() (left, right, up, down float64) {
	return playerBounds(Arena, Player)
}

func playerBounds(arena ArenaConfig, player PlayerConfig) (left, right, up, down float64) {
	return arena.Left - player.Clamp.Left,
		arena.Right + player.Clamp.Right,
		arena.Up + player.Clamp.Up,
		arena.Down - player.Clamp.Down
}
