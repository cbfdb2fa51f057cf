package coloring

import "fmt"

// Outcome is the result of a finished game.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeHuman
	OutcomeComputer
	OutcomeDraw
)

// String returns "human", "computer", "draw", or "" while undecided.
func (o Outcome) String() string {
	switch o {
	case OutcomeHuman:
		return "human"
	case OutcomeComputer:
		return "computer"
	case OutcomeDraw:
		return "draw"
	default:
		return ""
	}
}

// Reason explains why a move did not happen.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonGameOver
	ReasonSolving
	ReasonNotInPalette
	ReasonAlreadyColored
	ReasonConflict
	ReasonNoLegalColor
	ReasonBoardFull
)

// String returns a short description of the reason.
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "ok"
	case ReasonGameOver:
		return "game over"
	case ReasonSolving:
		return "auto-solve in progress"
	case ReasonNotInPalette:
		return "color not in palette"
	case ReasonAlreadyColored:
		return "region already colored"
	case ReasonConflict:
		return "neighbor has the same color"
	case ReasonNoLegalColor:
		return "no legal color"
	case ReasonBoardFull:
		return "board full"
	default:
		return "unknown"
	}
}

// Penalized reports whether a human move rejected for r costs a point.
func (r Reason) Penalized() bool {
	switch r {
	case ReasonNotInPalette, ReasonAlreadyColored, ReasonConflict:
		return true
	default:
		return false
	}
}

// Err maps the reason onto the package's sentinel errors, nil when nothing went wrong.
func (r Reason) Err() error {
	switch {
	case r.Penalized():
		return fmt.Errorf("%w: %s", ErrInvalidMove, r)
	case r == ReasonGameOver:
		return ErrGameOver
	case r == ReasonSolving:
		return ErrSolving
	case r == ReasonNoLegalColor:
		return ErrNoLegalColor
	default:
		return nil
	}
}
