package factory

import (
	"github.com/automoto/wee-archer/archetypes"
	"github.com/automoto/wee-archer/components"
	cfg "github.com/automoto/wee-archer/config"
	"github.com/automoto/wee-archer/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpaceCellSize is the resolv cell size in screen pixels.
const SpaceCellSize = 16

// CreateSpace creates the collider space covering the whole screen.
func CreateSpace(ecs *ecs.ECS) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(cfg.C.Width, cfg.C.Height, SpaceCellSize, SpaceCellSize)
	components.Space.Set(space, spaceData)
	return space
}

// CharacterColliderOrigin returns the top-left screen position of a
// character collider whose bottom-left anchor sits at world (x, y).
func CharacterColliderOrigin(x, y float64) (float64, float64) {
	sx, sy := gamemath.WorldToScreen(x, y, cfg.C.Width, cfg.C.Height)
	return sx, sy - cfg.Player.CollisionHeight
}

// ProjectileColliderOrigin returns the top-left screen position of a
// projectile collider centered on world (x, y).
func ProjectileColliderOrigin(x, y float64) (float64, float64) {
	sx, sy := gamemath.WorldToScreen(x, y, cfg.C.Width, cfg.C.Height)
	half := cfg.Projectile.CollisionSize / 2
	return sx - half, sy - half
}

func addToSpace(ecs *ecs.ECS, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
