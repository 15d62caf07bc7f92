package config

import (
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Tuning is the YAML overlay for gameplay values. Omitted fields keep their
// current value.
type Tuning struct {
	Arena *struct {
		Left  *float64 `yaml:"left"`
		Right *float64 `yaml:"right"`
		Up    *float64 `yaml:"up"`
		Down  *float64 `yaml:"down"`
	} `yaml:"arena"`

	Player *struct {
		Speed          *float64 `yaml:"speed"`
		AttackCooldown *float64 `yaml:"attack_cooldown"` // seconds
	} `yaml:"player"`

	Projectile *struct {
		Speed *float64 `yaml:"speed"`
	} `yaml:"projectile"`

	Animation *struct {
		IdleFrame   *float64 `yaml:"idle_frame"`   // seconds
		AttackFrame *float64 `yaml:"attack_frame"` // seconds
	} `yaml:"animation"`

	Audio *struct {
		SFXVolume *float64 `yaml:"sfx_volume"`
	} `yaml:"audio"`
}

// ApplyTuning parses a YAML tuning document and applies it to the global
// configuration. Nothing is applied if any value is invalid.
func ApplyTuning(data []byte) error {
	var t Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return fmt.Errorf("parse tuning: %w", err)
	}

	arena := Arena
	player := Player
	projectile := Projectile
	animation := Animation
	audio := Audio

	if t.Arena != nil {
		setFloat(&arena.Left, t.Arena.Left)
		setFloat(&arena.Right, t.Arena.Right)
		setFloat(&arena.Up, t.Arena.Up)
		setFloat(&arena.Down, t.Arena.Down)
	}
	if t.Player != nil {
		setFloat(&player.Speed, t.Player.Speed)
		setSeconds(&player.AttackCooldown, t.Player.AttackCooldown)
	}
	if t.Projectile != nil {
		setFloat(&projectile.Speed, t.Projectile.Speed)
	}
	if t.Animation != nil {
		setSeconds(&animation.IdleFrameDuration, t.Animation.IdleFrame)
		setSeconds(&animation.AttackFrameDuration, t.Animation.AttackFrame)
	}
	if t.Audio != nil {
		setFloat(&audio.DefaultSFXVol, t.Audio.SFXVolume)
	}

	if err := validate(arena, player, projectile, animation, audio); err != nil {
		return fmt.Errorf("invalid tuning: %w", err)
	}

	Arena = arena
	Player = player
	Projectile = projectile
	Animation = animation
	Audio = audio
	return nil
}

func validate(arena ArenaConfig, player PlayerConfig, projectile ProjectileConfig, animation AnimationConfig, audio AudioConfig) error {
	var errs []error
	if arena.Left >= arena.Right {
		errs = append(errs, fmt.Errorf("arena left %.1f must be below right %.1f", arena.Left, arena.Right))
	}
	if arena.Down >= arena.Up {
		errs = append(errs, fmt.Errorf("arena down %.1f must be below up %.1f", arena.Down, arena.Up))
	}
	if left, right, up, down := playerBounds(arena, player); left >= right || down >= up {
		errs = append(errs, fmt.Errorf("arena too small for the player clamp: x [%.1f, %.1f] y [%.1f, %.1f]", left, right, down, up))
	}
	if player.Speed < 0 {
		errs = append(errs, errors.New("player speed must not be negative"))
	}
	if player.AttackCooldown <= 0 {
		errs = append(errs, errors.New("attack cooldown must be positive"))
	}
	if projectile.Speed <= 0 {
		errs = append(errs, errors.New("projectile speed must be positive"))
	}
	if animation.IdleFrameDuration <= 0 || animation.AttackFrameDuration <= 0 {
		errs = append(errs, errors.New("animation frame durations must be positive"))
	}
	if audio.DefaultSFXVol < 0 || audio.DefaultSFXVol > 1 {
		errs = append(errs, errors.New("sfx volume must be within [0, 1]"))
	}
	return errors.Join(errs...)
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setSeconds(dst *time.Duration, v *float64) {
	if v != nil {
		*dst = time.Duration(*v * float64(time.Second))
	}
}
