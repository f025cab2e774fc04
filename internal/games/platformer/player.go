// Package platformer implements a side-scrolling platformer: a player who
// runs, jumps and swings a sword across static platforms, collecting coins
// and defeating patrolling enemies to clear each level.
package platformer

import (
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// HealthTier is the visual health band of the player.
type HealthTier int

const (
	TierHealthy  HealthTier = iota // Above half of max health
	TierWounded                    // Above a quarter
	TierCritical                   // Everything else
)

// String returns the tier name.
func (t HealthTier) String() string {
	switch t {
	case TierHealthy:
		return "healthy"
	case TierWounded:
		return "wounded"
	default:
		return "critical"
	}
}

// Player is the controllable character.
// Positions are the top-left corner in scene units.
type Player struct {
	X, Y      float64
	VY        float64 // Vertical velocity, positive = down
	OnGround  bool
	Health    int
	Attacking bool

	attackFrame int
	cfg         config.PlayerConfig
	sceneW      float64
	sceneH      float64
}

// NewPlayer creates a player at the configured spawn point.
func NewPlayer(cfg config.PlayerConfig, scene config.SceneConfig) *Player {
	p := &Player{
		cfg:    cfg,
		sceneW: scene.Width,
		sceneH: scene.Height,
	}
	p.Reset()
	return p
}

// Reset restores the player to the state it has at level start.
func (p *Player) Reset() {
	p.Respawn()
	p.Health = p.cfg.MaxHealth
	p.OnGround = false
	p.Attacking = false
	p.attackFrame = 0
}

// Respawn moves the player back to spawn without touching health.
func (p *Player) Respawn() {
	p.X = p.cfg.SpawnX
	p.Y = p.cfg.SpawnY
	p.VY = 0
}

// Box returns the player's bounding box.
func (p *Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.cfg.Width, p.cfg.Height)
}

// MoveLeft shifts the player one step left, clamped to the scene.
func (p *Player) MoveLeft() {
	p.PushX(-p.cfg.MoveSpeed)
}

// MoveRight shifts the player one step right, clamped to the scene.
func (p *Player) MoveRight() {
	p.PushX(p.cfg.MoveSpeed)
}

// PushX displaces the player horizontally, clamped to the scene.
func (p *Player) PushX(dx float64) {
	p.X = core.ClampF(p.X+dx, 0, p.sceneW-p.cfg.Width)
}

// Jump launches the player upward. It only works while standing on a platform.
func (p *Player) Jump() bool {
	if !p.OnGround {
		return false
	}
	p.VY = p.cfg.JumpVelocity
	p.OnGround = false
	return true
}

// StartAttack begins the attack animation.
func (p *Player) StartAttack() {
	p.Attacking = true
	p.attackFrame = 0
}

// TickAttack advances the attack animation by one frame.
func (p *Player) TickAttack() {
	if !p.Attacking {
		return
	}
	p.attackFrame++
	if p.attackFrame > p.cfg.AttackFrames {
		p.Attacking = false
		p.attackFrame = 0
	}
}

// IntegratePhysics applies gravity and moves the player vertically.
func (p *Player) IntegratePhysics(gravity float64) {
	p.VY += gravity
	if p.VY > p.cfg.MaxFallSpeed {
		p.VY = p.cfg.MaxFallSpeed
	}
	p.Y += p.VY
}

// ResolveVertical snaps the player out of overlapping platforms.
// A falling player lands on top of the platform, a rising one bumps its head
// on the underside. Platforms are checked in order, after the first snap the
// velocity is zero and later overlaps are ignored.
func (p *Player) ResolveVertical(platforms []Platform) {
	p.OnGround = false
	for _, pl := range platforms {
		if !p.Box().Overlaps(pl.Box) {
			continue
		}
		switch {
		case p.VY > 0:
			p.Y = pl.Box.Y - p.cfg.Height
			p.VY = 0
			p.OnGround = true
		case p.VY < 0:
			p.Y = pl.Box.Bottom()
			p.VY = 0
		}
	}
	p.X = core.ClampF(p.X, 0, p.sceneW-p.cfg.Width)
}

// OutOfBounds reports whether the player fell below the scene.
func (p *Player) OutOfBounds() bool {
	return p.Y > p.sceneH
}

// TakeDamage lowers health, never below zero.
// It returns true only on the hit that brings health to zero.
func (p *Player) TakeDamage(amount int) bool {
	if p.Health <= 0 {
		return false
	}
	p.Health -= amount
	if p.Health <= 0 {
		p.Health = 0
		return true
	}
	return false
}

// Alive reports whether the player has health left.
func (p *Player) Alive() bool {
	return p.Health > 0
}

// Tier returns the health band used for rendering.
func (p *Player) Tier() HealthTier {
	pct := p.Health * 100 / max(p.cfg.MaxHealth, 1)
	switch {
	case pct > 50:
		return TierHealthy
	case pct > 25:
		return TierWounded
	default:
		return TierCritical
	}
}
