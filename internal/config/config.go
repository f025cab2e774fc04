// Package config provides YAML-based configuration for the platformer:
// every physics, combat and scoring constant, plus difficulty presets.
package config

// PlatformerConfig contains all tunable constants of the game.
type PlatformerConfig struct {
	Scene   SceneConfig   `yaml:"scene"`
	Player  PlayerConfig  `yaml:"player"`
	Enemy   EnemyConfig   `yaml:"enemy"`
	Sword   SwordConfig   `yaml:"sword"`
	Coin    CoinConfig    `yaml:"coin"`
	Scoring ScoringConfig `yaml:"scoring"`
	Session SessionConfig `yaml:"session"`
	Input   InputConfig   `yaml:"input"`
}

// SceneConfig defines the playfield in scene units.
type SceneConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Gravity float64 `yaml:"gravity"` // Added to vertical velocity every frame
}

// PlayerConfig defines the player body and movement.
type PlayerConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	SpawnX       float64 `yaml:"spawn_x"`
	SpawnY       float64 `yaml:"spawn_y"`
	MoveSpeed    float64 `yaml:"move_speed"`     // Units per frame while a direction is held
	JumpVelocity float64 `yaml:"jump_velocity"`  // Negative = upward
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // Clamp for vertical velocity
	MaxHealth    int     `yaml:"max_health"`
	AttackFrames int     `yaml:"attack_frames"` // Length of the attack animation
	FallDamage   int     `yaml:"fall_damage"`   // Penalty for dropping out of the scene
}

// EnemyConfig defines the patrolling enemies.
type EnemyConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	Speed          float64 `yaml:"speed"`
	PatrolDistance float64 `yaml:"patrol_distance"`
	ContactDamage  int     `yaml:"contact_damage"`
	Knockback      float64 `yaml:"knockback"` // Horizontal push applied to the player on contact
}

// SwordConfig defines the melee hitbox.
type SwordConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	OffsetY  float64 `yaml:"offset_y"` // Below the player's top edge
	Lifetime int     `yaml:"lifetime"` // Frames the hitbox stays active
	Cooldown int     `yaml:"cooldown"` // Frames between attacks
}

// CoinConfig defines the collectible coins.
type CoinConfig struct {
	Size float64 `yaml:"size"` // Side of the square pickup box
}

// ScoringConfig defines points awarded per pickup and kill.
type ScoringConfig struct {
	Coin  int `yaml:"coin"`
	Enemy int `yaml:"enemy"`
}

// SessionConfig defines the run-level rules.
type SessionConfig struct {
	Lives int `yaml:"lives"`
}

// InputConfig defines terminal input emulation.
type InputConfig struct {
	// HoldTicks is how long one key press keeps a direction held.
	// Terminals report no key release, auto-repeat refreshes the hold.
	HoldTicks int `yaml:"hold_ticks"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
