package archetypes

import (
	"github.com/automoto/wee-archer/components"
	cfg "github.com/automoto/wee-archer/config"
	"github.com/automoto/wee-archer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Character,
		components.Transform,
		components.Animation,
		components.Object,
	)
	Arrow = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Transform,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
