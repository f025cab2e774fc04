package platformer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

func newTestPlayer() *Player {
	cfg := config.DefaultPlatformerConfig()
	return NewPlayer(cfg.Player, cfg.Scene)
}

var groundOnly = []Platform{{Box: core.NewBox(0, 550, 800, 50)}}

func TestPlayerSpawn(t *testing.T) {
	p := newTestPlayer()

	assert.Equal(t, 50.0, p.X)
	assert.Equal(t, 400.0, p.Y)
	assert.Equal(t, 0.0, p.VY)
	assert.Equal(t, 100, p.Health)
	assert.False(t, p.OnGround)
	assert.Equal(t, core.NewBox(50, 400, 40, 50), p.Box())
}

func TestPlayerLandsOnGround(t *testing.T) {
	p := newTestPlayer()

	for range 100 {
		p.IntegratePhysics(0.5)
		p.ResolveVertical(groundOnly)
	}

	assert.True(t, p.OnGround)
	assert.Equal(t, 500.0, p.Y, "bottom edge should rest on the ground top")
	assert.Equal(t, 0.0, p.VY)
}

func TestPlayerJumpOnlyFromGround(t *testing.T) {
	p := newTestPlayer()

	assert.False(t, p.Jump(), "cannot jump in mid-air")
	assert.Equal(t, 0.0, p.VY)

	p.Y = 500
	p.OnGround = true
	require.True(t, p.Jump())
	assert.Equal(t, -12.0, p.VY)
	assert.False(t, p.OnGround)

	p.IntegratePhysics(0.5)
	assert.Equal(t, -11.5, p.VY)
	assert.Equal(t, 488.5, p.Y)
}

func TestPlayerHeadBump(t *testing.T) {
	p := newTestPlayer()
	ceiling := []Platform{{Box: core.NewBox(0, 400, 800, 20)}}

	p.Y = 425
	p.VY = -12
	p.IntegratePhysics(0.5)
	p.ResolveVertical(ceiling)

	assert.Equal(t, 420.0, p.Y, "top edge should snap to the platform bottom")
	assert.Equal(t, 0.0, p.VY)
	assert.False(t, p.OnGround)
}

func TestPlayerMaxFallSpeed(t *testing.T) {
	p := newTestPlayer()
	p.VY = 14.8

	p.IntegratePhysics(0.5)
	assert.Equal(t, 15.0, p.VY)

	p.IntegratePhysics(0.5)
	assert.Equal(t, 15.0, p.VY)
}

func TestPlayerHorizontalClamp(t *testing.T) {
	p := newTestPlayer()

	p.X = 2
	p.MoveLeft()
	assert.Equal(t, 0.0, p.X)

	p.X = 758
	p.MoveRight()
	assert.Equal(t, 760.0, p.X, "right edge clamps to scene width minus player width")

	p.X = 100
	p.MoveRight()
	assert.Equal(t, 105.0, p.X)

	p.X = 10
	p.PushX(-30)
	assert.Equal(t, 0.0, p.X)
}

func TestPlayerTakeDamage(t *testing.T) {
	p := newTestPlayer()

	for range 3 {
		assert.False(t, p.TakeDamage(10))
	}
	assert.Equal(t, 70, p.Health)

	assert.True(t, p.TakeDamage(150), "the fatal hit reports death")
	assert.Equal(t, 0, p.Health, "health never goes negative")

	assert.False(t, p.TakeDamage(10), "death is reported only once")
	assert.Equal(t, 0, p.Health)
	assert.False(t, p.Alive())
}

func TestPlayerOutOfBounds(t *testing.T) {
	p := newTestPlayer()

	p.Y = 600
	assert.False(t, p.OutOfBounds())
	p.Y = 600.5
	assert.True(t, p.OutOfBounds())
}

func TestPlayerAttackAnimation(t *testing.T) {
	p := newTestPlayer()
	p.StartAttack()

	for i := range 10 {
		p.TickAttack()
		assert.True(t, p.Attacking, "frame %d should still be attacking", i+1)
	}
	p.TickAttack()
	assert.False(t, p.Attacking)
}

func TestPlayerTier(t *testing.T) {
	tests := []struct {
		health int
		want   HealthTier
	}{
		{100, TierHealthy},
		{51, TierHealthy},
		{50, TierWounded},
		{26, TierWounded},
		{25, TierCritical},
		{0, TierCritical},
	}

	p := newTestPlayer()
	for _, tc := range tests {
		p.Health = tc.health
		assert.Equal(t, tc.want, p.Tier(), "health %d", tc.health)
	}
}

func TestPlayerResetRestoresLevelStart(t *testing.T) {
	p := newTestPlayer()
	p.X, p.Y, p.VY = 300, 100, 7
	p.Health = 20
	p.StartAttack()

	p.Reset()

	assert.Equal(t, 50.0, p.X)
	assert.Equal(t, 400.0, p.Y)
	assert.Equal(t, 0.0, p.VY)
	assert.Equal(t, 100, p.Health)
	assert.False(t, p.Attacking)
}
