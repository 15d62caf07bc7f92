package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Projectile = donburi.NewTag().SetName("Projectile")
)

// Resolv tags for collider tagging
const (
	ResolvCharacter  = "character"
	ResolvPlayer     = "Player"
	ResolvProjectile = "Projectile"

	// Mask tags: a projectile ignores colliders carrying its own mask tag.
	ResolvMaskPlayer = "mask_player"
	ResolvMaskEnemy  = "mask_enemy"
)
