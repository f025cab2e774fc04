package platformer

import "github.com/vovakirdan/tui-platformer/internal/core"

// Snapshot is a read-only copy of the scene for one frame.
// The renderer draws from snapshots only and never touches live entities.
type Snapshot struct {
	SceneW, SceneH float64
	Level          int
	LevelName      string
	LevelTicks     int

	Player PlayerView

	Platforms []core.Box
	Enemies   []EnemyView
	Coins     []core.Box
	Swords    []SwordView

	AttackCooldown int
}

// PlayerView is the player as seen by the renderer.
type PlayerView struct {
	Box        core.Box
	Health     int
	MaxHealth  int
	Tier       HealthTier
	Attacking  bool
	OnGround   bool
	FacingLeft bool
}

// EnemyView is an enemy as seen by the renderer.
type EnemyView struct {
	Box       core.Box
	Direction int
}

// SwordView is a sword hitbox as seen by the renderer.
type SwordView struct {
	Box         core.Box
	FacingRight bool
}

// Snapshot copies the current scene state.
func (s *Scene) Snapshot() Snapshot {
	snap := Snapshot{
		SceneW:     s.cfg.Scene.Width,
		SceneH:     s.cfg.Scene.Height,
		Level:      s.level,
		LevelName:  s.LevelName(),
		LevelTicks: s.levelTicks,
		Player: PlayerView{
			Box:        s.player.Box(),
			Health:     s.player.Health,
			MaxHealth:  s.cfg.Player.MaxHealth,
			Tier:       s.player.Tier(),
			Attacking:  s.player.Attacking,
			OnGround:   s.player.OnGround,
			FacingLeft: s.facingLeft,
		},
		Platforms:      make([]core.Box, 0, len(s.platforms)),
		Enemies:        make([]EnemyView, 0, len(s.enemies)),
		Coins:          make([]core.Box, 0, len(s.coins)),
		Swords:         make([]SwordView, 0, len(s.swords)),
		AttackCooldown: s.attackCooldown,
	}

	for _, p := range s.platforms {
		snap.Platforms = append(snap.Platforms, p.Box)
	}
	for _, e := range s.enemies {
		snap.Enemies = append(snap.Enemies, EnemyView{Box: e.Box(), Direction: e.Direction})
	}
	for _, c := range s.coins {
		snap.Coins = append(snap.Coins, c.Box)
	}
	for _, sw := range s.swords {
		snap.Swords = append(snap.Swords, SwordView{Box: sw.Box, FacingRight: sw.FacingRight})
	}
	return snap
}
