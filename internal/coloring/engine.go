// Package coloring implements the map coloring game engine.
//
// An Engine owns the color assignment of one game played on a region graph:
// it validates and commits human moves, plays the greedy computer opponent,
// keeps score and detects the end of the game. Every mutation is validated
// before it is committed, so no two bordering regions ever share a color.
//
// The engine does no I/O and owns no timers; pacing between the human and
// the computer turn belongs to the caller. An Engine is not safe for
// concurrent use.
package coloring

import (
	"errors"
	"maps"
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/mapcolor/internal/graph"
)

// Sentinel errors for engine operations.
var (
	// ErrRegionNotFound is returned when a move or query names a region outside the graph.
	ErrRegionNotFound = graph.ErrRegionNotFound

	// ErrInvalidMove wraps every penalized human rejection.
	ErrInvalidMove = errors.New("coloring: invalid move")

	// ErrNoLegalColor reports that no palette color fits the selected region.
	ErrNoLegalColor = errors.New("coloring: no legal color")

	ErrGameOver = errors.New("coloring: game is over")
	ErrSolving  = errors.New("coloring: auto-solve in progress")

	// ErrConflict reports two bordering regions sharing a color.
	ErrConflict = errors.New("coloring: adjacent regions share a color")

	ErrUnknownColor   = errors.New("coloring: unknown color")
	ErrDuplicateColor = errors.New("coloring: duplicate color")
)

// Scores holds both players' points.
type Scores struct {
	Human    int
	Computer int
}

// Engine is the state of one map coloring game.
type Engine[R comparable] struct {
	g       *graph.Graph[R]
	palette Palette
	rng     *rand.Rand

	colors  map[R]Color // colored regions only
	initial map[R]Color // prefill snapshot used by Restart

	human    int
	computer int
	gameOver bool
	solving  bool
}

type options struct {
	palette    Palette
	rng        *rand.Rand
	prefill    int
	prefillSet bool
}

// Option configures a new Engine.
type Option func(*options)

// WithPalette sets the colors in play, in the order the computer tries them.
// An empty list keeps the default palette.
func WithPalette(colors ...Color) Option {
	return func(o *options) {
		if len(colors) > 0 {
			o.palette = append(Palette(nil), colors...)
		}
	}
}

// WithSeed seeds the prefill RNG.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand uses r for the prefill.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		o.rng = r
	}
}

// WithPrefill sets how many random regions are colored before play.
// Zero or a negative count disables the prefill.
func WithPrefill(n int) Option {
	return func(o *options) {
		o.prefill = n
		o.prefillSet = true
	}
}

// New starts a game on g. The graph is cloned, so later changes to g do not
// affect the game. Every region starts uncolored, both scores are zero, and
// then a safe prefill colors a few random regions. The prefill result is kept
// for Restart.
//
// Without WithPrefill the prefill count is the integer square root of the
// region count, which is the side length of a square grid.
func New[R comparable](g *graph.Graph[R], opts ...Option) *Engine[R] {
	o := options{palette: DefaultPalette()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if !o.prefillSet {
		o.prefill = int(math.Sqrt(float64(g.Len())))
	}

	e := &Engine[R]{
		g:       g.Clone(),
		palette: o.palette,
		rng:     o.rng,
		colors:  make(map[R]Color),
	}
	e.prefillBoard(o.prefill)
	e.initial = maps.Clone(e.colors)
	return e
}

// NewFromSpec builds the graph from an explicit adjacency description and starts a game on it.
func NewFromSpec[R comparable](spec graph.Spec[R], opts ...Option) *Engine[R] {
	return New(graph.FromSpec(spec), opts...)
}

// prefillBoard colors up to n distinct random regions, each with the first
// palette color that fits what is already on the board. Regions with no
// fitting color stay blank.
func (e *Engine[R]) prefillBoard(n int) {
	if n <= 0 {
		return
	}
	regions := e.g.Regions()
	e.rng.Shuffle(len(regions), func(i, j int) {
		regions[i], regions[j] = regions[j], regions[i]
	})
	if n > len(regions) {
		n = len(regions)
	}
	for _, r := range regions[:n] {
		if c, ok := e.firstValidColor(r); ok {
			e.colors[r] = c
		}
	}
}

// Restart rewinds to the prefilled board: scores zero, flags cleared, colors
// equal to the snapshot taken by New. The graph and prefill are not redone.
func (e *Engine[R]) Restart() {
	e.colors = maps.Clone(e.initial)
	e.human = 0
	e.computer = 0
	e.gameOver = false
	e.solving = false
}

// IsValidMove reports whether no neighbor of r currently holds c.
// The color of r itself is not inspected. Unknown regions and NoColor are never valid.
func (e *Engine[R]) IsValidMove(r R, c Color) bool {
	if c == NoColor || !e.g.Has(r) {
		return false
	}
	valid := true
	e.g.EachNeighbor(r, func(n R) bool {
		if e.colors[n] == c {
			valid = false
		}
		return valid
	})
	return valid
}

func (e *Engine[R]) firstValidColor(r R) (Color, bool) {
	for _, c := range e.palette {
		if e.IsValidMove(r, c) {
			return c, true
		}
	}
	return NoColor, false
}

// checkComplete ends the game once every region holds a color.
func (e *Engine[R]) checkComplete() {
	if len(e.colors) == e.g.Len() {
		e.gameOver = true
	}
}

// IsGameOver reports whether every region has been colored.
func (e *Engine[R]) IsGameOver() bool {
	return e.gameOver
}

// IsSolving reports whether AutoSolve has taken over the board.
func (e *Engine[R]) IsSolving() bool {
	return e.solving
}

// Winner returns the outcome once the game is over, OutcomeNone before that.
func (e *Engine[R]) Winner() Outcome {
	if !e.gameOver {
		return OutcomeNone
	}
	switch {
	case e.human > e.computer:
		return OutcomeHuman
	case e.computer > e.human:
		return OutcomeComputer
	default:
		return OutcomeDraw
	}
}

// Scores returns both players' current points.
func (e *Engine[R]) Scores() Scores {
	return Scores{Human: e.human, Computer: e.computer}
}

// ColorOf returns the color of r, NoColor if it is blank.
func (e *Engine[R]) ColorOf(r R) (Color, error) {
	if !e.g.Has(r) {
		return NoColor, graphNotFound(r)
	}
	return e.colors[r], nil
}

// DegreeOf returns the number of regions bordering r.
func (e *Engine[R]) DegreeOf(r R) (int, error) {
	return e.g.Degree(r)
}

// Palette returns a copy of the colors in play.
func (e *Engine[R]) Palette() Palette {
	return append(Palette(nil), e.palette...)
}

// Regions returns every region in enumeration order.
func (e *Engine[R]) Regions() []R {
	return e.g.Regions()
}

// Uncolored returns the blank regions in enumeration order.
func (e *Engine[R]) Uncolored() []R {
	var out []R
	for _, r := range e.g.Regions() {
		if _, ok := e.colors[r]; !ok {
			out = append(out, r)
		}
	}
	return out
}

// ColoredCount returns how many regions hold a color.
func (e *Engine[R]) ColoredCount() int {
	return len(e.colors)
}

// InitialColors returns a copy of the prefill snapshot.
func (e *Engine[R]) InitialColors() map[R]Color {
	return maps.Clone(e.initial)
}

// Stalled reports whether blank regions remain but none of them accepts any
// palette color. A stalled game is not over; only a fully colored board ends it.
func (e *Engine[R]) Stalled() bool {
	blank := e.Uncolored()
	if len(blank) == 0 {
		return false
	}
	for _, r := range blank {
		if _, ok := e.firstValidColor(r); ok {
			return false
		}
	}
	return true
}
