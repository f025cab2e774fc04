package platformer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

func newTestEnemy(x, y float64) *Enemy {
	return NewEnemy(x, y, config.DefaultPlatformerConfig().Enemy)
}

func TestEnemyPatrolFlip(t *testing.T) {
	e := newTestEnemy(300, 330)

	for range 49 {
		e.Patrol()
	}
	assert.Equal(t, 398.0, e.X)
	assert.Equal(t, 1, e.Direction)

	e.Patrol()
	assert.Equal(t, 400.0, e.X)
	assert.Equal(t, -1, e.Direction, "should turn around at the patrol bound")

	for range 100 {
		e.Patrol()
	}
	assert.Equal(t, 200.0, e.X)
	assert.Equal(t, 1, e.Direction, "should turn around at the opposite bound")
}

func TestEnemyDoesNotOscillateOutsideRange(t *testing.T) {
	e := newTestEnemy(300, 330)
	e.X = 500

	e.Patrol()
	assert.Equal(t, -1, e.Direction)

	for range 9 {
		e.Patrol()
		assert.Equal(t, -1, e.Direction, "should keep walking back toward the origin")
	}
	assert.Equal(t, 484.0, e.X)
}

func TestEnemyFallsAndLands(t *testing.T) {
	e := newTestEnemy(300, 330)
	platforms := []Platform{{Box: core.NewBox(320, 380, 120, 20)}}

	e.Fall(0.5, platforms)
	assert.Equal(t, 330.5, e.Y)

	for range 40 {
		e.Fall(0.5, platforms)
	}
	assert.Equal(t, 345.0, e.Y, "bottom edge should rest on the platform top")
}

func TestEnemyLandsOnFirstPlatformOnly(t *testing.T) {
	e := newTestEnemy(0, 500)
	platforms := []Platform{
		{Box: core.NewBox(0, 520, 100, 20)},
		{Box: core.NewBox(0, 530, 100, 20)},
	}

	e.Fall(0.5, platforms)
	assert.Equal(t, 485.0, e.Y)
}

func TestEnemyBox(t *testing.T) {
	e := newTestEnemy(10, 20)
	assert.Equal(t, core.NewBox(10, 20, 35, 35), e.Box())
	assert.Equal(t, 10.0, e.OriginX)
}
