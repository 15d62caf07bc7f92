package systems

import (
	"testing"
	"time"

	"github.com/automoto/wee-archer/components"
	cfg "github.com/automoto/wee-archer/config"
	"github.com/stretchr/testify/assert"
)

func TestSelectAnimationSet(t *testing.T) {
	tests := []struct {
		facing    cfg.Facing
		attacking bool
		want      AnimationSet
	}{
		{cfg.FacingUp, true, AnimationSet{cfg.UpAttack0, cfg.UpAttack1}},
		{cfg.FacingRight, true, AnimationSet{cfg.RightAttack0, cfg.RightAttack1}},
		{cfg.FacingDown, true, AnimationSet{cfg.DownAttack0, cfg.DownAttack1}},
		{cfg.FacingLeft, true, AnimationSet{cfg.LeftAttack0, cfg.LeftAttack1}},
		{cfg.FacingUp, false, AnimationSet{cfg.UpIdle0, cfg.UpIdle1}},
		{cfg.FacingRight, false, AnimationSet{cfg.RightIdle0, cfg.RightIdle1}},
		{cfg.FacingDown, false, AnimationSet{cfg.DownIdle0, cfg.DownIdle1}},
		{cfg.FacingLeft, false, AnimationSet{cfg.LeftIdle0, cfg.LeftIdle1}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SelectAnimationSet(tt.facing, tt.attacking))
	}
	assert.Panics(t, func() { SelectAnimationSet(cfg.Facing(-1), false) })
}

func TestStepAnimationSnapsToNewSet(t *testing.T) {
	anim := &components.AnimationData{
		Frame: cfg.DownIdle1,
		Timer: components.Timer{Elapsed: 200 * time.Millisecond, Duration: cfg.Animation.IdleFrameDuration},
	}

	StepAnimation(anim, cfg.FacingLeft, true, cfg.TickDuration)

	assert.Equal(t, cfg.LeftAttack0, anim.Frame)
	assert.Zero(t, anim.Timer.Elapsed)
	assert.Equal(t, cfg.Animation.AttackFrameDuration, anim.Timer.Duration)
}

func TestStepAnimationOscillates(t *testing.T) {
	anim := &components.AnimationData{
		Frame: cfg.UpIdle0,
		Timer: components.Timer{Duration: cfg.Animation.IdleFrameDuration},
	}

	var frames []int
	for i := 0; i < 4; i++ {
		StepAnimation(anim, cfg.FacingUp, false, cfg.Animation.IdleFrameDuration)
		frames = append(frames, anim.Frame)
	}
	assert.Equal(t, []int{cfg.UpIdle1, cfg.UpIdle0, cfg.UpIdle1, cfg.UpIdle0}, frames)

	// Short steps don't toggle.
	StepAnimation(anim, cfg.FacingUp, false, cfg.TickDuration)
	assert.Equal(t, cfg.UpIdle0, anim.Frame)
}

func TestStepAnimationCoarseTickAdvancesOnce(t *testing.T) {
	anim := &components.AnimationData{
		Frame: cfg.RightAttack0,
		Timer: components.Timer{Duration: cfg.Animation.AttackFrameDuration},
	}

	StepAnimation(anim, cfg.FacingRight, true, 3*cfg.Animation.AttackFrameDuration)
	assert.Equal(t, cfg.RightAttack1, anim.Frame)
	assert.Less(t, anim.Timer.Elapsed, anim.Timer.Duration)
}

func TestAttackAnimationOverridesMovement(t *testing.T) {
	e, player := newTestArena(t)

	hold(e, cfg.ActionAttack)
	UpdateCharacters(e)
	UpdateAnimations(e)

	for _, held := range [][]cfg.ActionID{{cfg.ActionUp}, {cfg.ActionLeft}, {cfg.ActionDown, cfg.ActionRight}, nil} {
		hold(e, held...)
		UpdateCharacters(e)
		UpdateAnimations(e)

		frame := components.Animation.Get(player).Frame
		assert.True(t, SelectAnimationSet(cfg.FacingDown, true).Contains(frame), "frame %d while moving %v", frame, held)
	}
}

func TestUpdateAnimationsReturnsToIdle(t *testing.T) {
	e, player := newTestArena(t)

	hold(e, cfg.ActionAttack)
	UpdateCharacters(e)
	UpdateAnimations(e)
	hold(e)
	for i := 0; i < 31; i++ {
		UpdateCharacters(e)
		UpdateAnimations(e)
	}

	anim := components.Animation.Get(player)
	assert.Equal(t, cfg.DownIdle0, anim.Frame)
	assert.Equal(t, cfg.Animation.IdleFrameDuration, anim.Timer.Duration)
}
