package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Validate rejects configurations the simulation cannot run with.
func (c PlatformerConfig) Validate() error {
	checks := []struct {
		ok   bool
		what string
	}{
		{c.Scene.Width > 0 && c.Scene.Height > 0, "scene size must be positive"},
		{c.Scene.Gravity > 0, "scene.gravity must be positive"},
		{c.Player.Width > 0 && c.Player.Height > 0, "player size must be positive"},
		{c.Player.Width <= c.Scene.Width, "player must fit the scene width"},
		{c.Player.MoveSpeed > 0, "player.move_speed must be positive"},
		{c.Player.JumpVelocity < 0, "player.jump_velocity must be negative (upward)"},
		{c.Player.MaxFallSpeed > 0, "player.max_fall_speed must be positive"},
		{c.Player.MaxHealth > 0, "player.max_health must be positive"},
		{c.Player.AttackFrames >= 0, "player.attack_frames must not be negative"},
		{c.Player.FallDamage >= 0, "player.fall_damage must not be negative"},
		{c.Enemy.Width > 0 && c.Enemy.Height > 0, "enemy size must be positive"},
		{c.Enemy.Speed >= 0, "enemy.speed must not be negative"},
		{c.Enemy.PatrolDistance > 0, "enemy.patrol_distance must be positive"},
		{c.Enemy.ContactDamage >= 0, "enemy.contact_damage must not be negative"},
		{c.Sword.Width > 0 && c.Sword.Height > 0, "sword size must be positive"},
		{c.Sword.Lifetime > 0, "sword.lifetime must be positive"},
		{c.Sword.Cooldown >= 0, "sword.cooldown must not be negative"},
		{c.Coin.Size > 0, "coin.size must be positive"},
		{c.Session.Lives > 0, "session.lives must be positive"},
		{c.Input.HoldTicks > 0, "input.hold_ticks must be positive"},
	}

	for _, check := range checks {
		if !check.ok {
			return fmt.Errorf("%w: %s", ErrInvalidConfig, check.what)
		}
	}
	return nil
}
