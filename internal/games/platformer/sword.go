package platformer

import (
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Sword is a short-lived melee hitbox spawned beside the player.
type Sword struct {
	Box         core.Box
	FacingRight bool

	frames   int
	lifetime int
}

// NewSword places a hitbox next to the player box on the facing side.
func NewSword(player core.Box, facingRight bool, cfg config.SwordConfig) *Sword {
	x := player.Right()
	if !facingRight {
		x = player.X - cfg.Width
	}
	return &Sword{
		Box:         core.NewBox(x, player.Y+cfg.OffsetY, cfg.Width, cfg.Height),
		FacingRight: facingRight,
		lifetime:    cfg.Lifetime,
	}
}

// Active reports whether the hitbox can still hit.
func (s *Sword) Active() bool {
	return s.frames < s.lifetime
}

// Advance ages the hitbox by one frame.
func (s *Sword) Advance() {
	s.frames++
}
