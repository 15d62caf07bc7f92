package systems

import (
	"github.com/automoto/wee-archer/components"
	cfg "github.com/automoto/wee-archer/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProjectiles moves every projectile by its velocity and despawns the
// ones that end the move on or past an arena bound, in the same tick.
func UpdateProjectiles(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry
	dt := cfg.TickDuration.Seconds()

	components.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Projectile.Get(e)
		t := components.Transform.Get(e)

		pos := t.XY().Add(p.Velocity.Scale(dt))
		t.X, t.Y = pos.X, pos.Y

		if OutOfBounds(t.X, t.Y) {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		destroyEntity(ecs, e)
	}
}

// OutOfBounds reports whether a world position is on or outside any arena
// bound. Positions strictly inside are never out of bounds.
func OutOfBounds(x, y float64) bool {
	return x >= cfg.Arena.Right || x <= cfg.Arena.Left ||
		y >= cfg.Arena.Up || y <= cfg.Arena.Down
}

// destroyEntity removes an entity and its collider from the world.
func destroyEntity(ecs *ecs.ECS, e *donburi.Entry) {
	if e.HasComponent(components.Object) {
		obj := components.Object.Get(e)
		if spaceEntry, ok := components.Space.First(ecs.World); ok && obj.Object != nil {
			components.Space.Get(spaceEntry).Remove(obj.Object)
		}
	}
	ecs.World.Remove(e.Entity())
}
