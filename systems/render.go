package systems

import (
	"github.com/automoto/wee-archer/assets"
	"github.com/automoto/wee-archer/components"
	cfg "github.com/automoto/wee-archer/config"
	"github.com/automoto/wee-archer/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// DrawArena fills the playfield inside the arena bounds.
func DrawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	x0, y0 := gamemath.WorldToScreen(cfg.Arena.Left, cfg.Arena.Up, w, h)
	x1, y1 := gamemath.WorldToScreen(cfg.Arena.Right, cfg.Arena.Down, w, h)

	vector.FillRect(screen, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), cfg.Arena.BackgroundColor, false)
	vector.StrokeRect(screen, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), 2, cfg.Arena.BorderColor, false)
}

// DrawCharacters renders each character's current tileset frame, anchored
// bottom-left at its position.
func DrawCharacters(ecs *ecs.ECS, screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()

	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)
		t := components.Transform.Get(e)

		img := assets.CharacterFrame(anim.Frame)
		if img == nil {
			return
		}

		sx, sy := gamemath.WorldToScreen(t.X, t.Y, w, h)
		scale := cfg.Player.Scale

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Scale(scale, scale)
		drawOp.GeoM.Translate(sx, sy-float64(cfg.Player.FrameHeight)*scale)
		screen.DrawImage(img, drawOp)
	})
}

// DrawProjectiles renders arrows centered on their position.
func DrawProjectiles(ecs *ecs.ECS, screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()

	components.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Projectile.Get(e)
		t := components.Transform.Get(e)

		img := assets.ArrowTexture(p.TextureIndex)
		if img == nil {
			return
		}
		iw, ih := img.Bounds().Dx(), img.Bounds().Dy()
		sx, sy := gamemath.WorldToScreen(t.X, t.Y, w, h)

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(-float64(iw)/2, -float64(ih)/2)
		if p.FlipHorizontal {
			drawOp.GeoM.Scale(-1, 1)
		}
		drawOp.GeoM.Scale(cfg.Player.Scale, cfg.Player.Scale)
		drawOp.GeoM.Translate(sx, sy)
		screen.DrawImage(img, drawOp)
	})
}
