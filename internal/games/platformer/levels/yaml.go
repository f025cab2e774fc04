package levels

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID        string      `yaml:"id"`
	Name      string      `yaml:"name"`
	Platforms []YAMLRect  `yaml:"platforms"`
	Enemies   []YAMLPoint `yaml:"enemies,omitempty"`
	Coins     []YAMLPoint `yaml:"coins,omitempty"`
}

// YAMLRect is a platform in scene units.
type YAMLRect struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// YAMLPoint is a spawn position in scene units.
type YAMLPoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// ParseYAML parses and validates a level file.
func ParseYAML(data []byte) (YAMLLevel, platformer.Layout, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return YAMLLevel{}, platformer.Layout{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	layout := platformer.Layout{
		Name:      yl.Name,
		Platforms: make([]core.Box, 0, len(yl.Platforms)),
		Enemies:   make([]platformer.Point, 0, len(yl.Enemies)),
		Coins:     make([]platformer.Point, 0, len(yl.Coins)),
	}
	if layout.Name == "" {
		layout.Name = yl.ID
	}
	for _, r := range yl.Platforms {
		layout.Platforms = append(layout.Platforms, core.NewBox(r.X, r.Y, r.W, r.H))
	}
	for _, p := range yl.Enemies {
		layout.Enemies = append(layout.Enemies, platformer.Point{X: p.X, Y: p.Y})
	}
	for _, p := range yl.Coins {
		layout.Coins = append(layout.Coins, platformer.Point{X: p.X, Y: p.Y})
	}

	if err := layout.Validate(); err != nil {
		return YAMLLevel{}, platformer.Layout{}, err
	}
	return yl, layout, nil
}
