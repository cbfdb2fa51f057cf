package coloring

import (
	"iter"

	"github.com/vovakirdan/mapcolor/internal/graph"
)

// Step is one assignment made by AutoSolve.
type Step[R comparable] struct {
	Index     int // 0-based position in the sequence
	Region    R
	Color     Color
	Remaining int // blank regions left after this step
}

// Solver colors the board one greedy step at a time. Each Next colors the
// blank region with the most neighbors with the first fitting palette color.
// Regions that accept no color are skipped for the rest of the run, so Next
// reports false after at most one step per region, possibly leaving some
// regions blank.
//
// A Solver holds no goroutine; dropping it part way is fine.
type Solver[R comparable] struct {
	e      *Engine[R]
	failed map[R]bool
	index  int
	done   bool
}

// NewSolver puts the engine in solving mode: human and computer moves are
// refused until Restart. Scores are not touched. A board that ends up fully
// colored ends the game like any other move.
func (e *Engine[R]) NewSolver() *Solver[R] {
	e.solving = true
	return &Solver[R]{e: e, failed: make(map[R]bool)}
}

// Next makes one assignment. It returns false once no blank region accepts
// a color.
func (s *Solver[R]) Next() (Step[R], bool) {
	e := s.e
	for !s.done {
		var candidates []R
		for _, r := range e.Uncolored() {
			if !s.failed[r] {
				candidates = append(candidates, r)
			}
		}

		r, ok := selectByDegree(e.g, candidates)
		if !ok {
			s.done = true
			break
		}
		c, ok := e.firstValidColor(r)
		if !ok {
			s.failed[r] = true
			continue
		}

		e.colors[r] = c
		e.checkComplete()
		step := Step[R]{
			Index:     s.index,
			Region:    r,
			Color:     c,
			Remaining: e.g.Len() - len(e.colors),
		}
		s.index++
		return step, true
	}
	e.checkComplete()
	return Step[R]{}, false
}

// AutoSolve returns the Solver steps as a lazy sequence. Starting the
// iteration puts the engine in solving mode.
func (e *Engine[R]) AutoSolve() iter.Seq[Step[R]] {
	return func(yield func(Step[R]) bool) {
		s := e.NewSolver()
		for {
			st, ok := s.Next()
			if !ok || !yield(st) {
				return
			}
		}
	}
}

// SolveAll drains AutoSolve and returns every step.
func (e *Engine[R]) SolveAll() []Step[R] {
	var steps []Step[R]
	for st := range e.AutoSolve() {
		steps = append(steps, st)
	}
	return steps
}

// selectByDegree returns the candidate with the most neighbors. Only a
// strictly larger degree replaces the current pick, so ties go to the
// earliest candidate.
func selectByDegree[R comparable](g *graph.Graph[R], candidates []R) (R, bool) {
	var best R
	if len(candidates) == 0 {
		return best, false
	}
	best = candidates[0]
	bestDeg, _ := g.Degree(best)
	for _, r := range candidates[1:] {
		if d, _ := g.Degree(r); d > bestDeg {
			best, bestDeg = r, d
		}
	}
	return best, true
}

// OrderByDegree returns regions sorted by descending degree using a
// selection sort. Unknown regions count as degree zero. The head is the
// first region of maximal degree; swaps may reorder later ties.
func OrderByDegree[R comparable](g *graph.Graph[R], regions []R) []R {
	out := append([]R(nil), regions...)
	deg := func(r R) int {
		d, _ := g.Degree(r)
		return d
	}
	for i := range out {
		maxI := i
		for j := i + 1; j < len(out); j++ {
			if deg(out[j]) > deg(out[maxI]) {
				maxI = j
			}
		}
		out[i], out[maxI] = out[maxI], out[i]
	}
	return out
}
