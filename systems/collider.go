package systems

import (
	"github.com/automoto/wee-archer/components"
	"github.com/automoto/wee-archer/systems/factory"
	"github.com/automoto/wee-archer/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateColliders moves each collider to its entity's current position.
func UpdateColliders(ecs *ecs.ECS) {
	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Transform) {
			return
		}
		syncCollider(e)
	})
}

func syncCollider(e *donburi.Entry) {
	obj := components.Object.Get(e)
	t := components.Transform.Get(e)
	if e.HasComponent(components.Projectile) {
		obj.X, obj.Y = factory.ProjectileColliderOrigin(t.X, t.Y)
	} else {
		obj.X, obj.Y = factory.CharacterColliderOrigin(t.X, t.Y)
	}
	obj.Update()
}

// ProjectileTargets returns the characters a projectile currently overlaps,
// skipping colliders on the projectile's own side.
func ProjectileTargets(e *donburi.Entry) []*donburi.Entry {
	obj := components.Object.Get(e)
	p := components.Projectile.Get(e)
	own := factory.MaskTag(p.Mask)

	check := obj.Check(0, 0, tags.ResolvCharacter)
	if check == nil {
		return nil
	}

	var targets []*donburi.Entry
	for _, other := range check.ObjectsByTags(tags.ResolvCharacter) {
		// Check is cell-based, so confirm the boxes really overlap.
		if other.HasTags(own) || !boxesOverlap(obj.Object, other) {
			continue
		}
		if entry, ok := other.Data.(*donburi.Entry); ok && entry.Valid() {
			targets = append(targets, entry)
		}
	}
	return targets
}

func boxesOverlap(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W &&
		a.Y < b.Y+b.H && b.Y < a.Y+a.H
}
