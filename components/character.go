package components

import (
	cfg "github.com/automoto/wee-archer/config"
	"github.com/yohamta/donburi"
)

// CharacterData is the dual movement/attack state of a playable character.
// Attack overrides movement for animation while it is not AttackIdle;
// Movement keeps updating underneath.
type CharacterData struct {
	Movement       cfg.MovementState
	Attack         cfg.AttackState
	Facing         cfg.Facing
	AttackCooldown Timer
	Mask           ProjectileMask // mask given to arrows this character fires
}

// Attacking reports whether an attack is in flight.
func (c *CharacterData) Attacking() bool {
	return c.Attack != cfg.AttackIdle
}

var Character = donburi.NewComponentType[CharacterData]()
