package systems

import (
	"fmt"
	"testing"

	"github.com/automoto/wee-archer/components"
	cfg "github.com/automoto/wee-archer/config"
	"github.com/stretchr/testify/assert"
)

func TestResolveAttackDirectionIsTotal(t *testing.T) {
	for y := -1; y <= 1; y++ {
		for x := -1; x <= 1; x++ {
			for _, f := range cfg.Facings {
				mv := MoveVector{X: x, Y: y}
				d := ResolveAttackDirection(mv, f)
				assert.NotEqual(t, cfg.DirectionNone, d, "%+v facing %v", mv, f)
			}
		}
	}
}

func TestResolveAttackDirectionTable(t *testing.T) {
	tests := []struct {
		mv     MoveVector
		facing cfg.Facing
		want   cfg.Direction
	}{
		{MoveVector{0, 1}, cfg.FacingDown, cfg.DirectionUp},
		{MoveVector{1, 1}, cfg.FacingDown, cfg.DirectionUpRight},
		{MoveVector{-1, 1}, cfg.FacingDown, cfg.DirectionUpLeft},
		{MoveVector{1, 0}, cfg.FacingLeft, cfg.DirectionRight},
		{MoveVector{0, -1}, cfg.FacingUp, cfg.DirectionDown},
		{MoveVector{1, -1}, cfg.FacingUp, cfg.DirectionDownRight},
		{MoveVector{-1, -1}, cfg.FacingUp, cfg.DirectionDownLeft},
		{MoveVector{-1, 0}, cfg.FacingRight, cfg.DirectionLeft},
		{MoveVector{0, 0}, cfg.FacingUp, cfg.DirectionUp},
		{MoveVector{0, 0}, cfg.FacingRight, cfg.DirectionRight},
		{MoveVector{0, 0}, cfg.FacingDown, cfg.DirectionDown},
		{MoveVector{0, 0}, cfg.FacingLeft, cfg.DirectionLeft},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%+v/%v", tt.mv, tt.facing), func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveAttackDirection(tt.mv, tt.facing))
		})
	}
}

func TestResolveAttackDirectionPanics(t *testing.T) {
	assert.Panics(t, func() { ResolveAttackDirection(MoveVector{X: 2}, cfg.FacingUp) })
	assert.Panics(t, func() { ResolveAttackDirection(MoveVector{}, cfg.Facing(9)) })
}

func TestResolveMoveVectorOpposedKeys(t *testing.T) {
	input := &components.InputData{}
	input.Current[cfg.ActionUp] = true
	input.Current[cfg.ActionDown] = true
	input.Current[cfg.ActionLeft] = true
	input.Current[cfg.ActionRight] = true

	assert.Equal(t, MoveVector{X: 1, Y: -1}, ResolveMoveVector(input))
	assert.True(t, ResolveMoveVector(&components.InputData{}).IsZero())
}

func TestFacingFor(t *testing.T) {
	assert.Equal(t, cfg.FacingUp, FacingFor(MoveVector{0, 1}, cfg.FacingLeft))
	assert.Equal(t, cfg.FacingDown, FacingFor(MoveVector{0, -1}, cfg.FacingLeft))
	assert.Equal(t, cfg.FacingRight, FacingFor(MoveVector{1, 0}, cfg.FacingLeft))
	assert.Equal(t, cfg.FacingLeft, FacingFor(MoveVector{-1, 0}, cfg.FacingUp))
	assert.Equal(t, cfg.FacingUp, FacingFor(MoveVector{1, 1}, cfg.FacingUp))
	assert.Equal(t, cfg.FacingDown, FacingFor(MoveVector{}, cfg.FacingDown))
}

func TestMovementStateFor(t *testing.T) {
	assert.Equal(t, cfg.MoveIdle, MovementStateFor(MoveVector{}))
	assert.Equal(t, cfg.WalkUp, MovementStateFor(MoveVector{0, 1}))
	assert.Equal(t, cfg.WalkDown, MovementStateFor(MoveVector{0, -1}))
	assert.Equal(t, cfg.WalkRight, MovementStateFor(MoveVector{1, 1}))
	assert.Equal(t, cfg.WalkLeft, MovementStateFor(MoveVector{-1, -1}))
}

func TestAttackFacing(t *testing.T) {
	want := map[cfg.Direction]cfg.Facing{
		cfg.DirectionUp:        cfg.FacingUp,
		cfg.DirectionUpRight:   cfg.FacingRight,
		cfg.DirectionUpLeft:    cfg.FacingLeft,
		cfg.DirectionRight:     cfg.FacingRight,
		cfg.DirectionDown:      cfg.FacingDown,
		cfg.DirectionDownRight: cfg.FacingRight,
		cfg.DirectionDownLeft:  cfg.FacingLeft,
		cfg.DirectionLeft:      cfg.FacingLeft,
	}
	for _, d := range cfg.Directions {
		assert.Equal(t, want[d], AttackFacing(d), d.String())
	}
	assert.Panics(t, func() { AttackFacing(cfg.DirectionNone) })
}
