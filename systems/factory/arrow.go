package factory

import (
	"fmt"

	"github.com/automoto/wee-archer/archetypes"
	"github.com/automoto/wee-archer/components"
	cfg "github.com/automoto/wee-archer/config"
	"github.com/automoto/wee-archer/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArrowSpec is everything needed to spawn an arrow.
type ArrowSpec struct {
	Position       components.TransformData
	Velocity       components.Vector
	TextureIndex   int
	FlipHorizontal bool
}

type arrowShape struct {
	dir     components.Vector // pre-scale; diagonals are tuned, not normalized
	texture int
	flip    bool
}

var arrowShapes = [...]arrowShape{
	cfg.DirectionUp:        {components.Vector{X: 0, Y: 1}, cfg.ArrowVertical, false},
	cfg.DirectionUpRight:   {components.Vector{X: 0.66, Y: 0.66}, cfg.ArrowDiagonal, true},
	cfg.DirectionUpLeft:    {components.Vector{X: -0.66, Y: 0.66}, cfg.ArrowDiagonal, false},
	cfg.DirectionRight:     {components.Vector{X: 1, Y: 0}, cfg.ArrowHorizontal, false},
	cfg.DirectionDown:      {components.Vector{X: 0, Y: -1}, cfg.ArrowVertical, false},
	cfg.DirectionDownRight: {components.Vector{X: 0.6, Y: -0.6}, cfg.ArrowDiagonal, false},
	cfg.DirectionDownLeft:  {components.Vector{X: -0.6, Y: -0.6}, cfg.ArrowDiagonal, true},
	cfg.DirectionLeft:      {components.Vector{X: -1, Y: 0}, cfg.ArrowHorizontal, false},
}

// NewArrow builds the arrow fired from origin in direction dir. dir must be
// one of the 8 compass directions; DirectionNone is a caller bug and panics.
func NewArrow(speed float64, origin components.TransformData, dir cfg.Direction) ArrowSpec {
	if dir <= cfg.DirectionNone || int(dir) >= len(arrowShapes) {
		panic(fmt.Sprintf("arrow fired with invalid direction %v", dir))
	}
	shape := arrowShapes[dir]
	return ArrowSpec{
		Position: components.TransformData{
			X: origin.X,
			Y: origin.Y,
			Z: origin.Z + cfg.Projectile.LayerOffset,
		},
		Velocity:       shape.dir.Scale(speed),
		TextureIndex:   shape.texture,
		FlipHorizontal: shape.flip,
	}
}

// CreateArrow spawns an arrow entity from spec with a collider tagged by mask.
func CreateArrow(ecs *ecs.ECS, spec ArrowSpec, mask components.ProjectileMask) *donburi.Entry {
	arrow := archetypes.Arrow.Spawn(ecs)

	components.Transform.SetValue(arrow, spec.Position)
	components.Projectile.SetValue(arrow, components.ProjectileData{
		Velocity:       spec.Velocity,
		TextureIndex:   spec.TextureIndex,
		FlipHorizontal: spec.FlipHorizontal,
		Mask:           mask,
	})

	ox, oy := ProjectileColliderOrigin(spec.Position.X, spec.Position.Y)
	size := cfg.Projectile.CollisionSize
	obj := resolv.NewObject(ox, oy, size, size, tags.ResolvProjectile, MaskTag(mask))
	obj.Data = arrow
	components.Object.SetValue(arrow, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return arrow
}

// MaskTag returns the resolv tag carried by colliders on the mask's side.
func MaskTag(mask components.ProjectileMask) string {
	if mask == components.MaskEnemy {
		return tags.ResolvMaskEnemy
	}
	return tags.ResolvMaskPlayer
}
