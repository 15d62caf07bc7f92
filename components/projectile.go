package components

import (
	"github.com/yohamta/donburi"
)

// ProjectileMask names the side that fired a projectile, so a collision
// consumer can skip self hits.
type ProjectileMask int

const (
	MaskPlayer ProjectileMask = iota
	MaskEnemy
)

func (m ProjectileMask) String() string {
	if m == MaskEnemy {
		return "enemy"
	}
	return "player"
}

type ProjectileData struct {
	Velocity       Vector // world units per second, constant after spawn
	TextureIndex   int
	FlipHorizontal bool
	Mask           ProjectileMask
}

var Projectile = donburi.NewComponentType[ProjectileData]()
