package coloring

import "fmt"

// MoveResult describes the effect of a human move.
type MoveResult[R comparable] struct {
	Region   R
	Color    Color
	Accepted bool
	Reason   Reason // ReasonNone when accepted
	Delta    int    // +1 accepted, -1 penalized, 0 otherwise
	Scores   Scores // after the move
	GameOver bool
	Winner   Outcome

	// ComputerTurn is set when the computer should move next. The engine
	// does not schedule it; call ComputerMove when the UI is ready.
	ComputerTurn bool
}

// ComputerResult describes the effect of a computer turn.
type ComputerResult[R comparable] struct {
	Region   R     // region picked, zero if none
	Color    Color // color placed when Moved
	Moved    bool
	Reason   Reason
	Scores   Scores
	GameOver bool
	Winner   Outcome
}

// Err returns ErrNoLegalColor, ErrGameOver or ErrSolving when the computer did not move.
func (r ComputerResult[R]) Err() error {
	return r.Reason.Err()
}

func graphNotFound[R comparable](r R) error {
	return fmt.Errorf("%w: %v", ErrRegionNotFound, r)
}

// HumanMove colors r with c for the human player.
//
// A move during auto-solve or after the game ended is rejected without
// penalty. An already colored region, a color outside the palette, or a
// neighbor holding c is rejected, checked in that order, and costs one
// point; no color changes.
// An accepted move scores one point and may end the game.
//
// The only error is ErrRegionNotFound; rejections are reported in the result.
func (e *Engine[R]) HumanMove(r R, c Color) (MoveResult[R], error) {
	res := MoveResult[R]{Region: r, Color: c}
	if !e.g.Has(r) {
		return res, graphNotFound(r)
	}

	switch {
	case e.solving:
		res.Reason = ReasonSolving
	case e.gameOver:
		res.Reason = ReasonGameOver
	case e.colors[r] != NoColor:
		res.Reason = ReasonAlreadyColored
	case !e.palette.Contains(c):
		res.Reason = ReasonNotInPalette
	case !e.IsValidMove(r, c):
		res.Reason = ReasonConflict
	default:
		e.colors[r] = c
		e.human++
		res.Accepted = true
		res.Delta = 1
		e.checkComplete()
	}

	if res.Reason.Penalized() {
		e.human--
		res.Delta = -1
	}

	res.Scores = e.Scores()
	res.GameOver = e.gameOver
	res.Winner = e.Winner()
	res.ComputerTurn = res.Accepted && !e.gameOver
	return res, nil
}

// ComputerMove plays one greedy turn: the blank region with the most
// neighbors (first in enumeration order on ties) gets the first palette
// color that fits, and the computer scores a point.
//
// If that region accepts no color the computer passes (ReasonNoLegalColor)
// and the region stays blank. If no blank region is left the game ends
// without a move (ReasonBoardFull).
func (e *Engine[R]) ComputerMove() ComputerResult[R] {
	var res ComputerResult[R]

	switch {
	case e.gameOver:
		res.Reason = ReasonGameOver
	case e.solving:
		res.Reason = ReasonSolving
	default:
		r, ok := selectByDegree(e.g, e.Uncolored())
		if !ok {
			res.Reason = ReasonBoardFull
			break
		}
		res.Region = r
		c, ok := e.firstValidColor(r)
		if !ok {
			res.Reason = ReasonNoLegalColor
			break
		}
		e.colors[r] = c
		e.computer++
		res.Moved = true
		res.Color = c
	}

	e.checkComplete()
	res.Scores = e.Scores()
	res.GameOver = e.gameOver
	res.Winner = e.Winner()
	return res
}
