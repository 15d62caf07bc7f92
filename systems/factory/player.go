package factory

import (
	"github.com/automoto/wee-archer/archetypes"
	"github.com/automoto/wee-archer/components"
	cfg "github.com/automoto/wee-archer/config"
	"github.com/automoto/wee-archer/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlayerLayer is the draw layer of player characters.
const PlayerLayer = 10

// CreatePlayer spawns an idle archer facing down with its bottom-left corner
// at world (x, y).
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	components.Transform.SetValue(player, components.TransformData{X: x, Y: y, Z: PlayerLayer})
	components.Character.SetValue(player, components.CharacterData{
		Movement: cfg.MoveIdle,
		Attack:   cfg.AttackIdle,
		Facing:   cfg.FacingDown,
		AttackCooldown: components.Timer{
			Duration: cfg.Player.AttackCooldown,
		},
		Mask: components.MaskPlayer,
	})
	components.Animation.SetValue(player, components.AnimationData{
		Frame: cfg.DownIdle0,
		Timer: components.Timer{Duration: cfg.Animation.IdleFrameDuration},
	})

	ox, oy := CharacterColliderOrigin(x, y)
	obj := resolv.NewObject(ox, oy, cfg.Player.CollisionWidth, cfg.Player.CollisionHeight)
	obj.AddTags(tags.ResolvCharacter, tags.ResolvPlayer, tags.ResolvMaskPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return player
}
