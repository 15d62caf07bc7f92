package systems

import (
	"testing"

	"github.com/automoto/wee-archer/components"
	cfg "github.com/automoto/wee-archer/config"
	"github.com/automoto/wee-archer/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func spawnArrow(e *ecs.ECS, x, y float64, dir cfg.Direction) *donburi.Entry {
	spec := factory.NewArrow(cfg.Projectile.Speed, components.TransformData{X: x, Y: y}, dir)
	return factory.CreateArrow(e, spec, components.MaskPlayer)
}

func TestArrowLeavingArenaDespawnsSameTick(t *testing.T) {
	e, _ := newTestArena(t)
	arrow := spawnArrow(e, 209, 0, cfg.DirectionRight)
	obj := components.Object.Get(arrow).Object

	UpdateProjectiles(e)

	assert.False(t, arrow.Valid())
	assert.Empty(t, arrows(e))
	space := components.Space.Get(components.Space.MustFirst(e.World))
	assert.NotContains(t, space.Objects(), obj)
}

func TestArrowInsideArenaMoves(t *testing.T) {
	e, _ := newTestArena(t)
	arrow := spawnArrow(e, 0, 0, cfg.DirectionUp)

	UpdateProjectiles(e)

	require.True(t, arrow.Valid())
	tr := components.Transform.Get(arrow)
	assert.InDelta(t, 0, tr.X, 1e-9)
	assert.InDelta(t, cfg.Projectile.Speed*cfg.TickDuration.Seconds(), tr.Y, 1e-9)
}

func TestArrowEventuallyDespawnsInEveryDirection(t *testing.T) {
	for _, d := range cfg.Directions {
		t.Run(d.String(), func(t *testing.T) {
			e, _ := newTestArena(t)
			arrow := spawnArrow(e, 0, 0, d)
			for i := 0; i < 120 && arrow.Valid(); i++ {
				UpdateProjectiles(e)
			}
			assert.False(t, arrow.Valid())
		})
	}
}

func TestOutOfBounds(t *testing.T) {
	assert.False(t, OutOfBounds(0, 0))
	assert.False(t, OutOfBounds(cfg.Arena.Right-0.01, cfg.Arena.Up-0.01))
	assert.True(t, OutOfBounds(cfg.Arena.Right, 0))
	assert.True(t, OutOfBounds(cfg.Arena.Left, 0))
	assert.True(t, OutOfBounds(0, cfg.Arena.Up))
	assert.True(t, OutOfBounds(0, cfg.Arena.Down))
	assert.True(t, OutOfBounds(cfg.Arena.Left-50, cfg.Arena.Down-50))
}

func TestUpdateCollidersFollowsTransform(t *testing.T) {
	e, player := newTestArena(t)
	components.Transform.Get(player).X = 40

	UpdateColliders(e)

	obj := components.Object.Get(player)
	wantX, wantY := factory.CharacterColliderOrigin(40, 0)
	assert.Equal(t, wantX, obj.X)
	assert.Equal(t, wantY, obj.Y)
}

func TestProjectileTargetsSkipsOwnSide(t *testing.T) {
	e, player := newTestArena(t)
	// Arrow centered inside the player's collider.
	x, y := 10.0, 10.0

	own := spawnArrow(e, x, y, cfg.DirectionUp)
	spec := factory.NewArrow(cfg.Projectile.Speed, components.TransformData{X: x, Y: y}, cfg.DirectionUp)
	hostile := factory.CreateArrow(e, spec, components.MaskEnemy)
	UpdateColliders(e)

	assert.Empty(t, ProjectileTargets(own))

	targets := ProjectileTargets(hostile)
	require.Len(t, targets, 1)
	assert.Equal(t, player.Entity(), targets[0].Entity())
}

func TestProjectileTargetsIgnoresDistantCharacters(t *testing.T) {
	e, _ := newTestArena(t)
	spec := factory.NewArrow(cfg.Projectile.Speed, components.TransformData{X: -150, Y: 80}, cfg.DirectionUp)
	hostile := factory.CreateArrow(e, spec, components.MaskEnemy)
	UpdateColliders(e)

	assert.Empty(t, ProjectileTargets(hostile))
}
