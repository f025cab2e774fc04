package platformer

import (
	"slices"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Scene owns every entity of the current level and runs the per-frame update.
// It is the only place where entities interact.
type Scene struct {
	cfg     config.PlatformerConfig
	layouts []Layout

	level      int
	levelTicks int

	player    *Player
	platforms []Platform
	enemies   []*Enemy
	coins     []Coin
	swords    []*Sword

	attackCooldown int
	facingLeft     bool

	events []Event
}

// NewScene creates a scene over the given layout table and loads level 1.
// An empty table falls back to the built-in layouts.
func NewScene(cfg config.PlatformerConfig, layouts []Layout) *Scene {
	if len(layouts) == 0 {
		layouts = BuiltinLayouts()
	}
	s := &Scene{
		cfg:     cfg,
		layouts: layouts,
		player:  NewPlayer(cfg.Player, cfg.Scene),
	}
	s.LoadLevel(1)
	return s
}

// LoadLevel replaces the current level with level n.
func (s *Scene) LoadLevel(n int) {
	s.level = max(n, 1)
	s.levelTicks = 0
	s.attackCooldown = 0

	s.player.Reset()
	s.enemies = s.enemies[:0]
	s.coins = s.coins[:0]
	s.swords = s.swords[:0]

	layout := LayoutFor(s.layouts, s.level)

	s.platforms = make([]Platform, 0, len(layout.Platforms))
	for _, b := range layout.Platforms {
		s.platforms = append(s.platforms, Platform{Box: b})
	}
	for _, p := range layout.Enemies {
		s.enemies = append(s.enemies, NewEnemy(p.X, p.Y, s.cfg.Enemy))
	}
	for _, p := range layout.Coins {
		s.coins = append(s.coins, Coin{Box: core.NewBox(p.X, p.Y, s.cfg.Coin.Size, s.cfg.Coin.Size)})
	}
}

// RestartLevel reports the death and reloads the current level.
func (s *Scene) RestartLevel() {
	s.emit(PlayerDied{Level: s.level})
	s.LoadLevel(s.level)
}

// Update advances the scene by one frame and returns what happened.
//
// Order: cooldowns, player input and physics, enemies, swords, coins and
// finally the win check. A death restarts the level and ends the frame.
func (s *Scene) Update(in core.InputFrame) []Event {
	s.events = nil
	s.levelTicks++

	if s.attackCooldown > 0 {
		s.attackCooldown--
	}

	if !s.updatePlayer(in) {
		return s.events
	}
	if !s.updateEnemies() {
		return s.events
	}
	s.updateSwords()
	s.collectCoins()

	if len(s.coins) == 0 && len(s.enemies) == 0 {
		s.emit(LevelComplete{Level: s.level, Ticks: s.levelTicks})
		s.LoadLevel(s.level + 1)
	}
	return s.events
}

// updatePlayer returns false when the player died this frame.
func (s *Scene) updatePlayer(in core.InputFrame) bool {
	p := s.player
	s.facingLeft = in.Held(core.ActionLeft)

	if in.Has(core.ActionJump) {
		p.Jump()
	}
	if in.Has(core.ActionAttack) {
		s.TriggerAttack(!s.facingLeft)
	}
	if in.Held(core.ActionLeft) {
		p.MoveLeft()
	}
	if in.Held(core.ActionRight) {
		p.MoveRight()
	}

	p.TickAttack()
	p.IntegratePhysics(s.cfg.Scene.Gravity)
	p.ResolveVertical(s.platforms)

	if p.OutOfBounds() {
		if s.hurtPlayer(s.cfg.Player.FallDamage) {
			return false
		}
		p.Respawn()
		s.emit(PlayerFell{})
	}
	return true
}

// updateEnemies returns false when an enemy killed the player.
func (s *Scene) updateEnemies() bool {
	for _, e := range s.enemies {
		e.Update(s.cfg.Scene.Gravity, s.platforms)

		if !s.player.Box().Overlaps(e.Box()) {
			continue
		}
		if s.hurtPlayer(s.cfg.Enemy.ContactDamage) {
			return false
		}
		if s.player.X < e.X {
			s.player.PushX(-s.cfg.Enemy.Knockback)
		} else {
			s.player.PushX(s.cfg.Enemy.Knockback)
		}
	}
	return true
}

func (s *Scene) updateSwords() {
	live := s.swords[:0]
	for _, sw := range s.swords {
		if !sw.Active() {
			continue
		}
		for i, e := range s.enemies {
			if sw.Box.Overlaps(e.Box()) {
				s.enemies = slices.Delete(s.enemies, i, i+1)
				s.emit(EnemyKilled{Points: s.cfg.Scoring.Enemy})
				break
			}
		}
		sw.Advance()
		live = append(live, sw)
	}
	clear(s.swords[len(live):])
	s.swords = live
}

func (s *Scene) collectCoins() {
	pb := s.player.Box()
	s.coins = slices.DeleteFunc(s.coins, func(c Coin) bool {
		if !pb.Overlaps(c.Box) {
			return false
		}
		s.emit(CoinCollected{Points: s.cfg.Scoring.Coin})
		return true
	})
}

// hurtPlayer applies damage and restarts the level on death.
// It returns true when the player died.
func (s *Scene) hurtPlayer(amount int) bool {
	died := s.player.TakeDamage(amount)
	s.emit(PlayerHurt{Damage: amount, Health: s.player.Health})
	if died {
		s.RestartLevel()
	}
	return died
}

// TriggerAttack spawns a sword if the cooldown allows it.
func (s *Scene) TriggerAttack(facingRight bool) bool {
	if s.attackCooldown > 0 {
		return false
	}
	s.swords = append(s.swords, NewSword(s.player.Box(), facingRight, s.cfg.Sword))
	s.player.StartAttack()
	s.attackCooldown = s.cfg.Sword.Cooldown
	return true
}

func (s *Scene) emit(ev Event) {
	s.events = append(s.events, ev)
}

// Level returns the current 1-based level number.
func (s *Scene) Level() int { return s.level }

// LevelTicks returns the frames spent on the current level.
func (s *Scene) LevelTicks() int { return s.levelTicks }

// LevelName returns the name of the current layout.
func (s *Scene) LevelName() string { return LayoutFor(s.layouts, s.level).Name }

// Player returns the player.
func (s *Scene) Player() *Player { return s.player }

// Enemies returns the live enemies.
func (s *Scene) Enemies() []*Enemy { return s.enemies }

// Coins returns the remaining coins.
func (s *Scene) Coins() []Coin { return s.coins }

// Swords returns the live sword hitboxes.
func (s *Scene) Swords() []*Sword { return s.swords }

// Platforms returns the level's platforms.
func (s *Scene) Platforms() []Platform { return s.platforms }

// AttackCooldown returns the frames left until the next attack.
func (s *Scene) AttackCooldown() int { return s.attackCooldown }
