package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                           { return g.id }
func (g stubGame) Title() string                        { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig)             {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen)                  {}
func (g stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub", func() Game { return stubGame{id: "zz_stub"} })

	assert.True(t, Exists("zz_stub"))
	assert.False(t, Exists("zz_missing"))

	g, err := Create("zz_stub")
	require.NoError(t, err)
	assert.Equal(t, "zz_stub", g.ID())

	_, err = Create("zz_missing")
	assert.Error(t, err)

	var found bool
	for _, info := range List() {
		if info.ID == "zz_stub" {
			found = true
			assert.Equal(t, "Stub zz_stub", info.Title)
		}
	}
	assert.True(t, found)
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", func() Game { return stubGame{id: "zz_dup"} })
	assert.Panics(t, func() {
		Register("zz_dup", func() Game { return stubGame{id: "zz_dup"} })
	})
}

func TestListSorted(t *testing.T) {
	Register("zz_b", func() Game { return stubGame{id: "zz_b"} })
	Register("zz_a", func() Game { return stubGame{id: "zz_a"} })

	games := List()
	for i := 1; i < len(games); i++ {
		assert.Less(t, games[i-1].ID, games[i].ID)
	}
}
