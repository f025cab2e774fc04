package platformer

import (
	"errors"
	"fmt"
	"slices"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// ErrInvalidLayout is returned when a layout cannot be played.
var ErrInvalidLayout = errors.New("invalid layout")

// Point is a spawn position in scene units (top-left of the entity).
type Point struct {
	X, Y float64
}

// Layout describes where everything sits in one level.
type Layout struct {
	Name      string
	Platforms []core.Box
	Enemies   []Point
	Coins     []Point
}

// Validate checks that the layout is playable: something to stand on and
// something to clear.
func (l Layout) Validate() error {
	if len(l.Platforms) == 0 {
		return fmt.Errorf("%w: %q has no platforms", ErrInvalidLayout, l.Name)
	}
	for i, p := range l.Platforms {
		if p.W <= 0 || p.H <= 0 {
			return fmt.Errorf("%w: %q platform %d has non-positive size", ErrInvalidLayout, l.Name, i)
		}
	}
	if len(l.Coins) == 0 && len(l.Enemies) == 0 {
		return fmt.Errorf("%w: %q has no coins or enemies", ErrInvalidLayout, l.Name)
	}
	return nil
}

// Clone returns a deep copy of the layout.
func (l Layout) Clone() Layout {
	return Layout{
		Name:      l.Name,
		Platforms: slices.Clone(l.Platforms),
		Enemies:   slices.Clone(l.Enemies),
		Coins:     slices.Clone(l.Coins),
	}
}

// LayoutFor picks the layout for a 1-based level number.
// Levels past the end of the table wrap around to the first layout.
func LayoutFor(layouts []Layout, level int) Layout {
	if len(layouts) == 0 {
		return Layout{}
	}
	idx := (level - 1) % len(layouts)
	if idx < 0 {
		idx += len(layouts)
	}
	return layouts[idx]
}

// BuiltinLayouts returns the levels shipped with the game.
func BuiltinLayouts() []Layout {
	out := make([]Layout, len(builtinLayouts))
	for i, l := range builtinLayouts {
		out[i] = l.Clone()
	}
	return out
}

var builtinLayouts = []Layout{
	{
		Name: "First Steps",
		Platforms: []core.Box{
			{X: 0, Y: 550, W: 800, H: 50},
			{X: 150, Y: 450, W: 120, H: 20},
			{X: 320, Y: 380, W: 120, H: 20},
			{X: 500, Y: 310, W: 120, H: 20},
			{X: 650, Y: 240, W: 120, H: 20},
			{X: 200, Y: 250, W: 100, H: 20},
			{X: 400, Y: 180, W: 150, H: 20},
		},
		Enemies: []Point{
			{X: 300, Y: 330},
			{X: 550, Y: 260},
			{X: 450, Y: 130},
		},
		Coins: []Point{
			{X: 180, Y: 400},
			{X: 350, Y: 330},
			{X: 530, Y: 260},
			{X: 680, Y: 190},
			{X: 230, Y: 200},
			{X: 430, Y: 130},
		},
	},
	{
		Name: "Stepping Stones",
		Platforms: []core.Box{
			{X: 0, Y: 550, W: 800, H: 50},
			{X: 100, Y: 470, W: 100, H: 20},
			{X: 260, Y: 400, W: 100, H: 20},
			{X: 420, Y: 330, W: 100, H: 20},
			{X: 580, Y: 260, W: 100, H: 20},
			{X: 420, Y: 190, W: 100, H: 20},
			{X: 240, Y: 130, W: 120, H: 20},
		},
		Enemies: []Point{
			{X: 620, Y: 515},
			{X: 440, Y: 295},
			{X: 260, Y: 95},
		},
		Coins: []Point{
			{X: 140, Y: 420},
			{X: 300, Y: 350},
			{X: 460, Y: 280},
			{X: 620, Y: 210},
			{X: 460, Y: 140},
			{X: 290, Y: 80},
			{X: 720, Y: 500},
		},
	},
	{
		Name: "Gauntlet",
		Platforms: []core.Box{
			{X: 0, Y: 550, W: 350, H: 50},
			{X: 470, Y: 550, W: 330, H: 50},
			{X: 380, Y: 440, W: 60, H: 20},
			{X: 120, Y: 420, W: 120, H: 20},
			{X: 560, Y: 420, W: 120, H: 20},
			{X: 300, Y: 320, W: 200, H: 20},
			{X: 80, Y: 250, W: 120, H: 20},
			{X: 600, Y: 250, W: 120, H: 20},
			{X: 330, Y: 160, W: 140, H: 20},
		},
		Enemies: []Point{
			{X: 150, Y: 515},
			{X: 650, Y: 515},
			{X: 350, Y: 285},
			{X: 620, Y: 215},
		},
		Coins: []Point{
			{X: 30, Y: 500},
			{X: 400, Y: 400},
			{X: 160, Y: 370},
			{X: 600, Y: 370},
			{X: 390, Y: 270},
			{X: 120, Y: 200},
			{X: 640, Y: 200},
			{X: 390, Y: 110},
		},
	},
}
