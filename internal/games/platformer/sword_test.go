package platformer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

func TestSwordPlacement(t *testing.T) {
	cfg := config.DefaultPlatformerConfig().Sword
	player := core.NewBox(100, 200, 40, 50)

	right := NewSword(player, true, cfg)
	assert.Equal(t, core.NewBox(140, 220, 50, 10), right.Box)
	assert.True(t, right.FacingRight)

	left := NewSword(player, false, cfg)
	assert.Equal(t, core.NewBox(50, 220, 50, 10), left.Box)
	assert.False(t, left.FacingRight)
}

func TestSwordLifetime(t *testing.T) {
	s := NewSword(core.NewBox(0, 0, 40, 50), true, config.DefaultPlatformerConfig().Sword)

	for i := range 10 {
		assert.True(t, s.Active(), "frame %d should be active", i)
		s.Advance()
	}
	assert.False(t, s.Active())
}
