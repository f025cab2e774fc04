package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

func TestRenderScreenText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.DrawTextColored(2, 0, "cd", core.ColorBrown)
	s.DrawTextColored(0, 1, "xyz", core.ColorRed)

	lines := strings.Split(ansi.Strip(RenderScreen(s)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "abcd  ", lines[0])
	assert.Equal(t, "xyz   ", lines[1])
}

func TestEveryColorHasStyle(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorGray; c++ {
		_, ok := colorStyles[c]
		assert.True(t, ok, "color %d has no style", c)
	}
}
