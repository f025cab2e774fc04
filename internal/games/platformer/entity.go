package platformer

import (
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Platform is a static, solid surface.
type Platform struct {
	Box core.Box
}

// Coin is a pickup that awards points when touched.
type Coin struct {
	Box core.Box
}

// Enemy patrols back and forth around the x-coordinate it spawned at.
type Enemy struct {
	X, Y      float64
	OriginX   float64
	Direction int // +1 right, -1 left

	beyond bool // Was past the patrol bound last frame
	cfg    config.EnemyConfig
}

// NewEnemy creates an enemy at (x, y) heading right.
func NewEnemy(x, y float64, cfg config.EnemyConfig) *Enemy {
	return &Enemy{
		X:         x,
		Y:         y,
		OriginX:   x,
		Direction: 1,
		cfg:       cfg,
	}
}

// Box returns the enemy's bounding box.
func (e *Enemy) Box() core.Box {
	return core.NewBox(e.X, e.Y, e.cfg.Width, e.cfg.Height)
}

// Update moves the enemy one frame: patrol, then fall and land.
func (e *Enemy) Update(gravity float64, platforms []Platform) {
	e.Patrol()
	e.Fall(gravity, platforms)
}

// Patrol walks the enemy and turns it around at the patrol bound.
// The turn happens only on the frame the bound is reached, so an enemy that
// spawns or gets pushed outside its range walks back instead of jittering.
func (e *Enemy) Patrol() {
	e.X += e.cfg.Speed * float64(e.Direction)
	beyond := core.AbsF(e.X-e.OriginX) >= e.cfg.PatrolDistance
	if beyond && !e.beyond {
		e.Direction = -e.Direction
	}
	e.beyond = beyond
}

// Fall drops the enemy by a constant amount and rests it on the first
// platform it overlaps.
func (e *Enemy) Fall(gravity float64, platforms []Platform) {
	e.Y += gravity
	for _, pl := range platforms {
		if e.Box().Overlaps(pl.Box) {
			e.Y = pl.Box.Y - e.cfg.Height
			break
		}
	}
}
