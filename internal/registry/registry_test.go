package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/mapcolor/internal/core"
)

type stubGame struct {
	id    string
	state core.GameState
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) { g.state = core.GameState{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return g.state }
func (g *stubGame) Step(core.InputFrame) core.StepResult {
	g.state.Moves++
	return core.StepResult{State: g.state}
}

func TestRegisterCreate(t *testing.T) {
	Register(GameInfo{ID: "test-zeta", Title: "Zeta"}, func() (Game, error) {
		return &stubGame{id: "test-zeta"}, nil
	})
	Register(GameInfo{ID: "test-alpha"}, func() (Game, error) {
		return &stubGame{id: "test-alpha"}, nil
	})

	assert.True(t, Exists("test-zeta"))
	assert.False(t, Exists("test-missing"))

	info, ok := Info("test-alpha")
	require.True(t, ok)
	assert.Equal(t, "test-alpha", info.Title, "title defaults to ID")

	var ids []string
	for _, gi := range List() {
		ids = append(ids, gi.ID)
	}
	assert.IsIncreasing(t, ids)
	assert.Contains(t, ids, "test-zeta")

	g, err := Create("test-zeta")
	require.NoError(t, err)
	assert.Equal(t, "test-zeta", g.ID())
	assert.Equal(t, 1, g.Step(core.NewInputFrame()).State.Moves)

	assert.Panics(t, func() {
		Register(GameInfo{ID: "test-zeta"}, nil)
	})
}

func TestCreateErrors(t *testing.T) {
	_, err := Create("test-nope")
	require.ErrorIs(t, err, ErrUnknownGame)

	boom := errors.New("boom")
	Register(GameInfo{ID: "test-broken"}, func() (Game, error) { return nil, boom })
	_, err = Create("test-broken")
	require.ErrorIs(t, err, boom)
}
