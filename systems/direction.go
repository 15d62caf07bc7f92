package systems

import (
	"fmt"

	"github.com/automoto/wee-archer/components"
	cfg "github.com/automoto/wee-archer/config"
)

// MoveVector is the per-axis movement intent, each axis in {-1, 0, 1}.
// Y points up.
type MoveVector struct {
	X, Y int
}

func (m MoveVector) IsZero() bool {
	return m.X == 0 && m.Y == 0
}

// ResolveMoveVector samples the held movement keys. When opposed keys are
// both held, Down wins over Up and Right wins over Left.
func ResolveMoveVector(input *components.InputData) MoveVector {
	var mv MoveVector
	if GetAction(input, cfg.ActionUp).Pressed {
		mv.Y = 1
	}
	if GetAction(input, cfg.ActionDown).Pressed {
		mv.Y = -1
	}
	if GetAction(input, cfg.ActionLeft).Pressed {
		mv.X = -1
	}
	if GetAction(input, cfg.ActionRight).Pressed {
		mv.X = 1
	}
	return mv
}

// moveDirections is indexed [Y+1][X+1]. The center cell is filled from the
// facing table instead.
var moveDirections = [3][3]cfg.Direction{
	{cfg.DirectionDownLeft, cfg.DirectionDown, cfg.DirectionDownRight},
	{cfg.DirectionLeft, cfg.DirectionNone, cfg.DirectionRight},
	{cfg.DirectionUpLeft, cfg.DirectionUp, cfg.DirectionUpRight},
}

var facingDirections = [...]cfg.Direction{
	cfg.FacingUp:    cfg.DirectionUp,
	cfg.FacingRight: cfg.DirectionRight,
	cfg.FacingDown:  cfg.DirectionDown,
	cfg.FacingLeft:  cfg.DirectionLeft,
}

// ResolveAttackDirection maps a move vector to the direction an attack
// fires in. A zero vector fires the way the character already faces.
func ResolveAttackDirection(mv MoveVector, facing cfg.Facing) cfg.Direction {
	mustAxis(mv)
	if mv.IsZero() {
		mustFacing(facing)
		return facingDirections[facing]
	}
	return moveDirections[mv.Y+1][mv.X+1]
}

// FacingFor returns the facing after moving by mv. Only single-axis movement
// turns the character; diagonal movement keeps the last cardinal facing.
func FacingFor(mv MoveVector, current cfg.Facing) cfg.Facing {
	mustAxis(mv)
	switch {
	case mv.X == 0 && mv.Y == 1:
		return cfg.FacingUp
	case mv.X == 0 && mv.Y == -1:
		return cfg.FacingDown
	case mv.Y == 0 && mv.X == 1:
		return cfg.FacingRight
	case mv.Y == 0 && mv.X == -1:
		return cfg.FacingLeft
	}
	return current
}

// MovementStateFor returns the walk state for mv. Diagonals walk sideways.
func MovementStateFor(mv MoveVector) cfg.MovementState {
	mustAxis(mv)
	switch {
	case mv.X > 0:
		return cfg.WalkRight
	case mv.X < 0:
		return cfg.WalkLeft
	case mv.Y > 0:
		return cfg.WalkUp
	case mv.Y < 0:
		return cfg.WalkDown
	}
	return cfg.MoveIdle
}

// AttackFacing is the sprite facing shown while attacking in d. Diagonals
// show the horizontal side.
func AttackFacing(d cfg.Direction) cfg.Facing {
	switch d {
	case cfg.DirectionUp:
		return cfg.FacingUp
	case cfg.DirectionDown:
		return cfg.FacingDown
	case cfg.DirectionRight, cfg.DirectionUpRight, cfg.DirectionDownRight:
		return cfg.FacingRight
	case cfg.DirectionLeft, cfg.DirectionUpLeft, cfg.DirectionDownLeft:
		return cfg.FacingLeft
	}
	panic(fmt.Sprintf("no facing for attack direction %v", d))
}

func mustAxis(mv MoveVector) {
	if mv.X < -1 || mv.X > 1 || mv.Y < -1 || mv.Y > 1 {
		panic(fmt.Sprintf("move vector out of range: %+v", mv))
	}
}

func mustFacing(f cfg.Facing) {
	if !f.Valid() {
		panic(fmt.Sprintf("invalid facing %v", f))
	}
}
