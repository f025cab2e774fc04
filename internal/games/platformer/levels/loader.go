// Package levels loads platformer layouts from YAML files.
// This package depends on platformer but platformer does not depend on levels.
package levels

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

// ErrNoLevels is returned when a directory holds no level files.
var ErrNoLevels = errors.New("levels: no level files found")

// Level is a layout together with where it came from.
type Level struct {
	ID       string
	Layout   platformer.Layout
	FilePath string
}

// Loader handles loading levels from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all level files.
// Levels are sorted by ID, then by path, which is the order they are played in.
// Any invalid file fails the whole load.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(filepath.Ext(path)) {
			return nil
		}

		level, err := l.LoadFile(path)
		if err != nil {
			return err
		}
		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("levels: loading %s: %w", l.Root, err)
	}
	if len(levels) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoLevels, l.Root)
	}

	sort.SliceStable(levels, func(i, j int) bool {
		if levels[i].ID != levels[j].ID {
			return levels[i].ID < levels[j].ID
		}
		return levels[i].FilePath < levels[j].FilePath
	})
	return levels, nil
}

// LoadLayouts loads all levels and returns just their layouts, in play order.
func (l *Loader) LoadLayouts() ([]platformer.Layout, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	layouts := make([]platformer.Layout, len(levels))
	for i, lvl := range levels {
		layouts[i] = lvl.Layout
	}
	return layouts, nil
}

// LoadFile loads a single level file.
// A file without an id uses its base name.
func (l *Loader) LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	yl, layout, err := ParseYAML(data)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", path, err)
	}

	id := yl.ID
	if id == "" {
		id = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if layout.Name == "" {
		layout.Name = id
	}

	return Level{ID: id, Layout: layout, FilePath: path}, nil
}

func isSupportedExtension(ext string) bool {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
