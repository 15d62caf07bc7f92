package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/wee-archer/components"
	cfg "github.com/automoto/wee-archer/config"
	"github.com/automoto/wee-archer/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines colliders and prints the player's state when the debug
// overlay is on. Arrows overlapping a hostile collider are drawn red.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)

		c := cfg.Cyan
		switch {
		case obj.HasTags(tags.ResolvPlayer):
			c = cfg.Blue
		case obj.HasTags(tags.ResolvProjectile):
			c = cfg.Green
			if len(ProjectileTargets(e)) > 0 {
				c = cfg.Red
			}
		}
		strokeBox(screen, obj.X, obj.Y, obj.W, obj.H, c)
	})

	player, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	c := components.Character.Get(player)
	t := components.Transform.Get(player)
	anim := components.Animation.Get(player)
	arrows := 0
	components.Projectile.Each(ecs.World, func(*donburi.Entry) { arrows++ })

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
		"pos %.1f,%.1f\nmove %v\nattack %v\nfacing %v\nframe %d\narrows %d\nTPS %.0f",
		t.X, t.Y, c.Movement, c.Attack, c.Facing, anim.Frame, arrows, ebiten.ActualTPS(),
	), 4, 4)
}

func strokeBox(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, c, false)
}
