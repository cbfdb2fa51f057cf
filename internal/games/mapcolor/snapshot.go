package mapcolor

import (
	"github.com/vovakirdan/mapcolor/internal/core"
)

// GameStateType represents the current game phase.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateComputer    GameStateType = "computer"
	StateSolving     GameStateType = "solving"
	StateGameOver    GameStateType = "game_over"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Board    string // RenderASCII output
	Cursor   core.Coord
	Selected string
	Human    int
	Computer int
	Moves    int
	Status   string
	State    GameStateType
	Winner   string
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	case g.engine.IsGameOver():
		state = StateGameOver
	case g.solver != nil:
		state = StateSolving
	case g.pending > 0:
		state = StateComputer
	}

	s := g.engine.Scores()
	return Snapshot{
		Tick:     g.tick,
		Board:    RenderASCII(g.board, g.engine),
		Cursor:   g.cursor,
		Selected: g.SelectedColor().String(),
		Human:    s.Human,
		Computer: s.Computer,
		Moves:    g.moves,
		Status:   g.status,
		State:    state,
		Winner:   g.engine.Winner().String(),
	}
}
