package config

import "fmt"

// Facing is the 4-way direction the character sprite currently represents.
type Facing int

const (
	FacingUp Facing = iota
	FacingRight
	FacingDown
	FacingLeft
)

// Facings lists every facing, in declaration order.
var Facings = [...]Facing{FacingUp, FacingRight, FacingDown, FacingLeft}

func (f Facing) String() string {
	switch f {
	case FacingUp:
		return "up"
	case FacingRight:
		return "right"
	case FacingDown:
		return "down"
	case FacingLeft:
		return "left"
	}
	return fmt.Sprintf("Facing(%d)", int(f))
}

// Valid reports whether f is one of the four facings.
func (f Facing) Valid() bool {
	return f >= FacingUp && f <= FacingLeft
}

// MovementState is the walk state derived from held movement keys.
type MovementState int

const (
	MoveIdle MovementState = iota
	WalkUp
	WalkRight
	WalkDown
	WalkLeft
)

func (m MovementState) String() string {
	switch m {
	case MoveIdle:
		return "idle"
	case WalkUp:
		return "walk_up"
	case WalkRight:
		return "walk_right"
	case WalkDown:
		return "walk_down"
	case WalkLeft:
		return "walk_left"
	}
	return fmt.Sprintf("MovementState(%d)", int(m))
}

// Direction is an 8-way compass direction, or DirectionNone.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionUpRight
	DirectionUpLeft
	DirectionRight
	DirectionDown
	DirectionDownRight
	DirectionDownLeft
	DirectionLeft
)

// Directions lists the 8 compass directions, excluding DirectionNone.
var Directions = [...]Direction{
	DirectionUp, DirectionUpRight, DirectionUpLeft, DirectionRight,
	DirectionDown, DirectionDownRight, DirectionDownLeft, DirectionLeft,
}

func (d Direction) String() string {
	switch d {
	case DirectionNone:
		return "none"
	case DirectionUp:
		return "up"
	case DirectionUpRight:
		return "up_right"
	case DirectionUpLeft:
		return "up_left"
	case DirectionRight:
		return "right"
	case DirectionDown:
		return "down"
	case DirectionDownRight:
		return "down_right"
	case DirectionDownLeft:
		return "down_left"
	case DirectionLeft:
		return "left"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// AttackState is the attack half of a character's state. AttackIdle means no
// attack is in flight; every other value mirrors the Direction of the same
// ordinal.
type AttackState int

const (
	AttackIdle AttackState = iota
	AttackUp
	AttackUpRight
	AttackUpLeft
	AttackRight
	AttackDown
	AttackDownRight
	AttackDownLeft
	AttackLeft
)

// AttackStateFor returns the attack state that fires in direction d.
func AttackStateFor(d Direction) AttackState {
	if d < DirectionNone || d > DirectionLeft {
		panic(fmt.Sprintf("no attack state for %v", d))
	}
	return AttackState(d)
}

// Direction returns the compass direction of the attack.
func (a AttackState) Direction() Direction {
	return Direction(a)
}

func (a AttackState) String() string {
	if a == AttackIdle {
		return "idle"
	}
	return "attack_" + a.Direction().String()
}
