package systems

import (
	"fmt"
	"time"

	"github.com/automoto/wee-archer/components"
	cfg "github.com/automoto/wee-archer/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// AnimationSet is the pair of tileset frames an animation oscillates between.
type AnimationSet struct {
	First, Second int
}

func (s AnimationSet) Contains(frame int) bool {
	return frame == s.First || frame == s.Second
}

var (
	attackSets = [...]AnimationSet{
		cfg.FacingUp:    {cfg.UpAttack0, cfg.UpAttack1},
		cfg.FacingRight: {cfg.RightAttack0, cfg.RightAttack1},
		cfg.FacingDown:  {cfg.DownAttack0, cfg.DownAttack1},
		cfg.FacingLeft:  {cfg.LeftAttack0, cfg.LeftAttack1},
	}
	idleSets = [...]AnimationSet{
		cfg.FacingUp:    {cfg.UpIdle0, cfg.UpIdle1},
		cfg.FacingRight: {cfg.RightIdle0, cfg.RightIdle1},
		cfg.FacingDown:  {cfg.DownIdle0, cfg.DownIdle1},
		cfg.FacingLeft:  {cfg.LeftIdle0, cfg.LeftIdle1},
	}
)

// SelectAnimationSet returns the 2-frame set for a facing and mode.
func SelectAnimationSet(facing cfg.Facing, attacking bool) AnimationSet {
	if !facing.Valid() {
		panic(fmt.Sprintf("no animation set for facing %v", facing))
	}
	if attacking {
		return attackSets[facing]
	}
	return idleSets[facing]
}

// FrameDuration is how long each frame of the mode's set stays on screen.
func FrameDuration(attacking bool) time.Duration {
	if attacking {
		return cfg.Animation.AttackFrameDuration
	}
	return cfg.Animation.IdleFrameDuration
}

// UpdateAnimations advances every character's displayed frame. It must run
// after UpdateCharacters so it sees this tick's state.
func UpdateAnimations(ecs *ecs.ECS) {
	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Character) {
			return
		}
		c := components.Character.Get(e)
		StepAnimation(components.Animation.Get(e), c.Facing, c.Attacking(), cfg.TickDuration)
	})
}

// StepAnimation advances anim by dt. Switching to a set the current frame is
// not part of snaps to its first frame and restarts the timer with the mode's
// duration. Otherwise each timer finish toggles between the two frames.
//
// At most one toggle happens per call: a dt spanning several frame durations
// still advances a single frame and the extra whole periods are dropped.
func StepAnimation(anim *components.AnimationData, facing cfg.Facing, attacking bool, dt time.Duration) {
	finished := anim.Timer.Tick(dt)
	set := SelectAnimationSet(facing, attacking)

	switch {
	case !set.Contains(anim.Frame):
		anim.Frame = set.First
		anim.Timer.Reset()
		anim.Timer.SetDuration(FrameDuration(attacking))
	case finished && anim.Frame == set.First:
		anim.Frame = set.Second
	case finished:
		anim.Frame = set.First
	}
}
