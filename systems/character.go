package systems

import (
	"time"

	"github.com/automoto/wee-archer/components"
	cfg "github.com/automoto/wee-archer/config"
	"github.com/automoto/wee-archer/gamemath"
	"github.com/automoto/wee-archer/systems/factory"
	"github.com/automoto/wee-archer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// shot is an attack triggered this tick, spawned after iteration.
type shot struct {
	origin components.TransformData
	dir    cfg.Direction
	mask   components.ProjectileMask
}

// UpdateCharacters runs the character state machine for one tick: movement,
// attack cooldown, then attack trigger. Arrows are spawned and cues queued
// for every attack that triggers.
func UpdateCharacters(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	mv := ResolveMoveVector(input)
	attackHeld := GetAction(input, cfg.ActionAttack).Pressed

	var shots []shot
	components.Character.Each(ecs.World, func(e *donburi.Entry) {
		if s, ok := stepCharacter(e, mv, attackHeld, cfg.TickDuration); ok {
			shots = append(shots, s)
		}
	})

	for _, s := range shots {
		spec := factory.NewArrow(cfg.Projectile.Speed, s.origin, s.dir)
		factory.CreateArrow(ecs, spec, s.mask)
		PlaySFX(ecs, cfg.SoundArrow)
	}
}

func stepCharacter(e *donburi.Entry, mv MoveVector, attackHeld bool, dt time.Duration) (shot, bool) {
	c := components.Character.Get(e)
	t := components.Transform.Get(e)

	// 1. Movement. Facing is pinned to the attack while one is in flight.
	c.Movement = MovementStateFor(mv)
	if !c.Attacking() {
		c.Facing = FacingFor(mv, c.Facing)
	}
	step := cfg.Player.Speed * dt.Seconds()
	left, right, up, down := cfg.PlayerBounds()
	t.X = gamemath.Clamp(t.X+float64(mv.X)*step, left, right)
	t.Y = gamemath.Clamp(t.Y+float64(mv.Y)*step, down, up)

	// 2. Cooldown only runs while attacking.
	if c.Attacking() && c.AttackCooldown.Tick(dt) {
		c.Attack = cfg.AttackIdle
		c.AttackCooldown.Reset()
	}

	// 3. Trigger. Presses during an attack are dropped, not queued.
	if c.Attacking() || !attackHeld {
		return shot{}, false
	}
	dir := ResolveAttackDirection(mv, c.Facing)
	c.Attack = cfg.AttackStateFor(dir)
	c.Facing = AttackFacing(dir)
	c.AttackCooldown.Reset()
	c.AttackCooldown.SetDuration(cfg.Player.AttackCooldown)

	return shot{origin: *t, dir: dir, mask: c.Mask}, true
}

// MustPlayer returns the first player entity. A missing player is a setup
// error and panics.
func MustPlayer(ecs *ecs.ECS) *donburi.Entry {
	player, ok := tags.Player.First(ecs.World)
	if !ok {
		panic("no active player in world")
	}
	return player
}
