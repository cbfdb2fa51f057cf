package coloring

import (
	"fmt"
	"maps"
)

// Snapshot captures the complete engine state for determinism tests and replay.
type Snapshot[R comparable] struct {
	Colors   map[R]Color
	Initial  map[R]Color
	Scores   Scores
	GameOver bool
	Solving  bool
	Winner   Outcome
}

// Snapshot returns a copy of the current state.
func (e *Engine[R]) Snapshot() Snapshot[R] {
	return Snapshot[R]{
		Colors:   maps.Clone(e.colors),
		Initial:  maps.Clone(e.initial),
		Scores:   e.Scores(),
		GameOver: e.gameOver,
		Solving:  e.solving,
		Winner:   e.Winner(),
	}
}

// Verify checks that no two bordering regions share a color and that every
// placed color belongs to the palette.
func (e *Engine[R]) Verify() error {
	for _, r := range e.g.Regions() {
		c, ok := e.colors[r]
		if !ok {
			continue
		}
		if !e.palette.Contains(c) {
			return fmt.Errorf("coloring: %v holds %s outside the palette", r, c)
		}
		var err error
		e.g.EachNeighbor(r, func(n R) bool {
			if e.colors[n] == c {
				err = fmt.Errorf("%w: %v and %v are both %s", ErrConflict, r, n, c)
				return false
			}
			return true
		})
		if err != nil {
			return err
		}
	}
	return nil
}
