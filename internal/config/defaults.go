package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the built-in configuration.
// It mirrors defaults/platformer.yaml and backs it up if the embed fails to parse.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Scene: SceneConfig{
			Width:   800,
			Height:  600,
			Gravity: 0.5,
		},
		Player: PlayerConfig{
			Width:        40,
			Height:       50,
			SpawnX:       50,
			SpawnY:       400,
			MoveSpeed:    5,
			JumpVelocity: -12,
			MaxFallSpeed: 15,
			MaxHealth:    100,
			AttackFrames: 10,
			FallDamage:   50,
		},
		Enemy: EnemyConfig{
			Width:          35,
			Height:         35,
			Speed:          2,
			PatrolDistance: 100,
			ContactDamage:  10,
			Knockback:      30,
		},
		Sword: SwordConfig{
			Width:    50,
			Height:   10,
			OffsetY:  20,
			Lifetime: 10,
			Cooldown: 20,
		},
		Coin: CoinConfig{
			Size: 20,
		},
		Scoring: ScoringConfig{
			Coin:  10,
			Enemy: 50,
		},
		Session: SessionConfig{
			Lives: 3,
		},
		Input: InputConfig{
			HoldTicks: 30,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPlatformerYAML
}
