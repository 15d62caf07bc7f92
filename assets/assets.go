package assets

import (
	"embed"
	"fmt"
	"image"
	"image/color"
	"sync"

	cfg "github.com/automoto/wee-archer/config"
	"github.com/automoto/wee-archer/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lafriks/go-tiled"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// ArenaPath is the embedded TMX file of the arena.
const ArenaPath = "levels/arena.tmx"

// Arena is the data read from the arena TMX, in world coordinates.
type Arena struct {
	Name   string
	SpawnX float64
	SpawnY float64
}

// LoadArena parses the embedded arena map.
func LoadArena() (*Arena, error) {
	return loadArena(ArenaPath)
}

func loadArena(path string) (*Arena, error) {
	m, err := tiled.LoadFile(path, tiled.WithFileSystem(assetFS))
	if err != nil {
		return nil, fmt.Errorf("load arena %s: %w", path, err)
	}

	// TMX is y-down from the top-left corner; world is y-up from the center.
	mapW, mapH := m.Width*m.TileWidth, m.Height*m.TileHeight

	arena := &Arena{Name: m.Properties.GetString("name")}
	for _, og := range m.ObjectGroups {
		if og.Name != "PlayerSpawn" {
			continue
		}
		for _, o := range og.Objects {
			arena.SpawnX, arena.SpawnY = gamemath.ScreenToWorld(o.X, o.Y, mapW, mapH)
			return arena, nil
		}
	}
	return nil, fmt.Errorf("arena %s has no player spawn", path)
}

var (
	tilesetOnce  sync.Once
	tileFrames   []*ebiten.Image
	arrowsOnce   sync.Once
	arrowImages  []*ebiten.Image
	archerBody   = color.RGBA{R: 70, G: 150, B: 70, A: 255}
	archerHead   = color.RGBA{R: 230, G: 190, B: 150, A: 255}
	archerBow    = color.RGBA{R: 150, G: 100, B: 40, A: 255}
	archerStrain = color.RGBA{R: 220, G: 60, B: 40, A: 255}
	arrowShaft   = color.RGBA{R: 200, G: 170, B: 120, A: 255}
	arrowTip     = color.RGBA{R: 220, G: 220, B: 230, A: 255}
)

// CharacterFrame returns tileset frame i, or nil if out of range.
func CharacterFrame(i int) *ebiten.Image {
	tilesetOnce.Do(func() {
		sheet := ebiten.NewImageFromImage(BuildTileset())
		fw, fh := cfg.Player.FrameWidth, cfg.Player.FrameHeight
		for f := 0; f < cfg.TilesetFrames; f++ {
			rect := image.Rect(f*fw, 0, (f+1)*fw, fh)
			tileFrames = append(tileFrames, sheet.SubImage(rect).(*ebiten.Image))
		}
	})
	if i < 0 || i >= len(tileFrames) {
		return nil
	}
	return tileFrames[i]
}

// ArrowTexture returns arrow texture i (0 horizontal, 1 diagonal, 2 vertical),
// or nil if out of range.
func ArrowTexture(i int) *ebiten.Image {
	arrowsOnce.Do(func() {
		for _, img := range BuildArrowTextures() {
			arrowImages = append(arrowImages, ebiten.NewImageFromImage(img))
		}
	})
	if i < 0 || i >= len(arrowImages) {
		return nil
	}
	return arrowImages[i]
}

// BuildTileset draws the archer sheet: one row of 10x10 frames in the order
// of the config frame constants.
func BuildTileset() *image.RGBA {
	fw, fh := cfg.Player.FrameWidth, cfg.Player.FrameHeight
	sheet := image.NewRGBA(image.Rect(0, 0, fw*cfg.TilesetFrames, fh))

	pose := func(frame int, facing cfg.Facing, attacking bool, bob int) {
		ox := frame * fw
		fill(sheet, ox+3, 4+bob, 4, 5, archerBody)
		fill(sheet, ox+3, 1+bob, 4, 3, archerHead)
		bow := archerBow
		if attacking {
			bow = archerStrain
		}
		switch facing {
		case cfg.FacingUp:
			fill(sheet, ox+2, 0, 6, 1, bow)
		case cfg.FacingDown:
			fill(sheet, ox+2, 9, 6, 1, bow)
		case cfg.FacingLeft:
			fill(sheet, ox+1, 2+bob, 1, 6, bow)
		case cfg.FacingRight:
			fill(sheet, ox+8, 2+bob, 1, 6, bow)
		}
	}

	for _, p := range []struct {
		first, second int
		facing        cfg.Facing
		attacking     bool
	}{
		{cfg.DownAttack0, cfg.DownAttack1, cfg.FacingDown, true},
		{cfg.LeftAttack0, cfg.LeftAttack1, cfg.FacingLeft, true},
		{cfg.RightAttack0, cfg.RightAttack1, cfg.FacingRight, true},
		{cfg.UpAttack0, cfg.UpAttack1, cfg.FacingUp, true},
		{cfg.DownIdle0, cfg.DownIdle1, cfg.FacingDown, false},
		{cfg.LeftIdle0, cfg.LeftIdle1, cfg.FacingLeft, false},
		{cfg.RightIdle0, cfg.RightIdle1, cfg.FacingRight, false},
		{cfg.UpIdle0, cfg.UpIdle1, cfg.FacingUp, false},
	} {
		pose(p.first, p.facing, p.attacking, 0)
		pose(p.second, p.facing, p.attacking, 1)
	}

	// Fallen archer
	fill(sheet, cfg.Dead0*fw+1, 6, 8, 3, archerBody)
	fill(sheet, cfg.Dead0*fw+1, 5, 2, 2, archerHead)

	return sheet
}

// BuildArrowTextures draws the three arrow textures. The horizontal arrow
// points right, the diagonal one up-left and the vertical one up.
func BuildArrowTextures() []*image.RGBA {
	n, b := cfg.Projectile.TextureLength, cfg.Projectile.TextureBreadth
	mid := b / 2

	horizontal := image.NewRGBA(image.Rect(0, 0, n, b))
	fill(horizontal, 0, mid, n-1, 1, arrowShaft)
	fill(horizontal, n-2, 0, 1, b, arrowTip)
	fill(horizontal, n-1, mid, 1, 1, arrowTip)

	diagonal := image.NewRGBA(image.Rect(0, 0, n, n))
	for i := 1; i < n; i++ {
		diagonal.Set(i, i, arrowShaft)
	}
	fill(diagonal, 0, 0, 2, 1, arrowTip)
	fill(diagonal, 0, 0, 1, 2, arrowTip)

	vertical := image.NewRGBA(image.Rect(0, 0, b, n))
	fill(vertical, mid, 1, 1, n-1, arrowShaft)
	fill(vertical, 0, 1, b, 1, arrowTip)
	fill(vertical, mid, 0, 1, 1, arrowTip)

	textures := make([]*image.RGBA, cfg.ArrowTextureCount)
	textures[cfg.ArrowHorizontal] = horizontal
	textures[cfg.ArrowDiagonal] = diagonal
	textures[cfg.ArrowVertical] = vertical
	return textures
}

func fill(img *image.RGBA, x, y, w, h int, c color.RGBA) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			img.SetRGBA(xx, yy, c)
		}
	}
}
