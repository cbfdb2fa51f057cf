// Package mapcolor adapts the coloring engine to the platform's tick loop:
// cursor and palette input, computer pacing, the animated auto-solve and
// the status line.
package mapcolor

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/mapcolor/internal/coloring"
	"github.com/vovakirdan/mapcolor/internal/config"
	"github.com/vovakirdan/mapcolor/internal/core"
	"github.com/vovakirdan/mapcolor/internal/maps"
)

// Status messages shown under the board.
const (
	StatusYourTurn     = "Your turn"
	StatusComputerTurn = "Computer's turn..."
	StatusWrongMove    = "Wrong move! (-1)"
	StatusSolving      = "Solving..."
	StatusRestarted    = "Board restored"
	StatusNoRegion     = "Nothing to color here"
	StatusStuck        = "Stuck! Press r or n"
	StatusHumanWins    = "HUMAN WINS!"
	StatusComputerWins = "COMPUTER WINS!"
	StatusDraw         = "DRAW!"
)

// Game plays map coloring on one board against the greedy computer.
type Game struct {
	id      string
	title   string
	board   *maps.Board
	cfg     config.MapColorConfig
	palette coloring.Palette
	prefill int // 0 = engine default, negative = none

	engine *coloring.Engine[core.Coord]
	rng    *rand.Rand
	tick   uint64

	screenW int
	screenH int

	computerDelay int // ticks
	solveDelay    int // ticks

	cursor   core.Coord
	selected int // palette index
	status   string
	detail   string

	pending   int                          // ticks until the computer answers, 0 when idle
	solver    *coloring.Solver[core.Coord] // nil unless auto-solving
	solveWait int
	assisted  bool
	match     uint64 // bumped by every fresh or restarted match

	lastComputer core.Coord
	hasLast      bool

	moves    int
	paused   bool
	tooSmall bool
}

// New creates a game on board. The palette comes from cfg; prefill follows
// config.BoardPreset semantics.
func New(board *maps.Board, cfg config.MapColorConfig, prefill int) (*Game, error) {
	palette, err := cfg.PaletteColors()
	if err != nil {
		return nil, fmt.Errorf("palette: %w", err)
	}
	if len(palette) > core.MaxPaletteActions {
		return nil, fmt.Errorf("palette: %d colors, keyboard reaches %d", len(palette), core.MaxPaletteActions)
	}
	return &Game{
		id:      board.ID,
		title:   board.Name,
		board:   board,
		cfg:     cfg,
		palette: palette,
		prefill: prefill,
	}, nil
}

// NewFromFile creates a game on a map file.
func NewFromFile(path string) (*Game, error) {
	board, err := maps.LoadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := config.LoadMapColor(configPath)
	if err != nil {
		return nil, err
	}
	return New(board, cfg, 0)
}

// ID returns the board identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Board returns the board being played.
func (g *Game) Board() *maps.Board {
	return g.board
}

// Engine returns the engine of the current match.
func (g *Game) Engine() *coloring.Engine[core.Coord] {
	return g.engine
}

// SetPrefill changes the prefill used by the next Reset or new game.
func (g *Game) SetPrefill(n int) {
	g.prefill = n
}

// Reset starts a new match with a fresh prefill.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.computerDelay = ticksFor(g.cfg.Pacing.ComputerDelay(), cfg.TickRate)
	g.solveDelay = ticksFor(g.cfg.Pacing.SolveStep(), cfg.TickRate)
	g.paused = false
	g.selected = 0
	g.newMatch()
	g.checkScreenSize()
}

// newMatch builds a fresh engine from the game RNG.
func (g *Game) newMatch() {
	g.stopSolve()

	opts := []coloring.Option{
		coloring.WithPalette(g.palette...),
		coloring.WithRand(g.rng),
	}
	switch {
	case g.prefill < 0:
		opts = append(opts, coloring.WithPrefill(0))
	case g.prefill > 0:
		opts = append(opts, coloring.WithPrefill(g.prefill))
	}
	g.engine = coloring.New(g.board.Graph(), opts...)

	g.clearTurn()
	if regions := g.board.Regions(); len(regions) > 0 {
		g.cursor = regions[0]
	}
}

// clearTurn drops per-match progress that Restart also discards.
func (g *Game) clearTurn() {
	g.match++
	g.pending = 0
	g.assisted = false
	g.hasLast = false
	g.moves = 0
	g.status = StatusYourTurn
	g.detail = ""
}

// ticksFor converts a delay to platform ticks, at least one for any positive delay.
func ticksFor(d time.Duration, tickRate int) int {
	if d <= 0 {
		return 0
	}
	if tickRate <= 0 {
		tickRate = 60
	}
	n := int((d*time.Duration(tickRate) + time.Second - 1) / time.Second)
	return max(n, 1)
}

// Resize adapts to a new screen size without touching the match.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	minW, minH := g.minSize()
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionNewGame):
		g.newMatch()
		return core.StepResult{State: g.State()}
	case in.Has(core.ActionRestart):
		g.restart()
		return core.StepResult{State: g.State()}
	case in.Has(core.ActionSolve):
		g.startSolve()
	}

	g.moveCursor(in)
	if i, ok := in.PickedColor(); ok && i < len(g.palette) {
		g.selected = i
	}

	switch {
	case g.solver != nil:
		g.stepSolve()
	case g.pending > 0:
		g.pending--
		if g.pending == 0 {
			g.computerTurn()
		}
	case in.Has(core.ActionConfirm) && !g.engine.IsGameOver():
		g.humanTurn()
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) moveCursor(in core.InputFrame) {
	next := g.cursor
	switch {
	case in.Has(core.ActionUp):
		next = next.Add(0, -1)
	case in.Has(core.ActionDown):
		next = next.Add(0, 1)
	case in.Has(core.ActionLeft):
		next = next.Add(-1, 0)
	case in.Has(core.ActionRight):
		next = next.Add(1, 0)
	}
	next.X = core.Clamp(next.X, 0, g.board.Width-1)
	next.Y = core.Clamp(next.Y, 0, g.board.Height-1)
	g.cursor = next
}

// humanTurn colors the region under the cursor with the selected color.
func (g *Game) humanTurn() {
	region, ok := g.board.RegionAt(g.cursor)
	if !ok {
		g.detail = StatusNoRegion
		return
	}

	res, err := g.engine.HumanMove(region, g.palette[g.selected])
	if err != nil {
		g.detail = err.Error()
		return
	}

	switch {
	case res.Accepted:
		g.moves++
		g.detail = ""
		if res.GameOver {
			g.finish()
			return
		}
		g.status = StatusComputerTurn
		if g.computerDelay == 0 {
			g.computerTurn()
			return
		}
		g.pending = g.computerDelay
	case res.Reason.Penalized():
		g.status = StatusWrongMove
		g.detail = res.Reason.String()
	}
}

// computerTurn plays the engine's greedy move.
func (g *Game) computerTurn() {
	res := g.engine.ComputerMove()
	if res.Moved {
		g.lastComputer, g.hasLast = res.Region, true
		g.detail = fmt.Sprintf("Computer colored %s %s", g.board.Label(res.Region), res.Color)
	} else if res.Reason == coloring.ReasonNoLegalColor {
		g.detail = fmt.Sprintf("Computer passes on %s", g.board.Label(res.Region))
	}

	if res.GameOver {
		g.finish()
		return
	}
	g.status = StatusYourTurn
	if g.engine.Stalled() {
		g.status = StatusStuck
	}
}

func (g *Game) restart() {
	g.stopSolve()
	g.engine.Restart()
	g.clearTurn()
	g.detail = StatusRestarted
}

func (g *Game) startSolve() {
	if g.solver != nil || g.engine.IsGameOver() {
		return
	}
	g.pending = 0
	g.solver = g.engine.NewSolver()
	g.solveWait = 0
	g.assisted = true
	g.status = StatusSolving
	g.detail = ""
}

// stepSolve takes one auto-solve step once the step delay has passed.
func (g *Game) stepSolve() {
	if g.solveWait > 0 {
		g.solveWait--
		return
	}

	st, ok := g.solver.Next()
	if !ok {
		g.stopSolve()
		if g.engine.IsGameOver() {
			g.finish()
			return
		}
		g.status = StatusStuck
		g.detail = fmt.Sprintf("No legal color for %d regions", len(g.engine.Uncolored()))
		return
	}

	g.lastComputer, g.hasLast = st.Region, true
	g.detail = fmt.Sprintf("Solver colored %s %s", g.board.Label(st.Region), st.Color)
	g.solveWait = g.solveDelay

	if g.engine.IsGameOver() {
		g.stopSolve()
		g.finish()
	}
}

func (g *Game) stopSolve() {
	g.solver = nil
}

// finish sets the winner banner.
func (g *Game) finish() {
	g.pending = 0
	switch g.engine.Winner() {
	case coloring.OutcomeHuman:
		g.status = StatusHumanWins
	case coloring.OutcomeComputer:
		g.status = StatusComputerWins
	default:
		g.status = StatusDraw
	}
}

// Status returns the status line and its detail.
func (g *Game) Status() (string, string) {
	return g.status, g.detail
}

// Cursor returns the cursor cell.
func (g *Game) Cursor() core.Coord {
	return g.cursor
}

// SelectedColor returns the palette color placed by Confirm.
func (g *Game) SelectedColor() coloring.Color {
	return g.palette[g.selected]
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	s := g.engine.Scores()
	return core.GameState{
		Score:         s.Human,
		OpponentScore: s.Computer,
		Moves:         g.moves,
		GameOver:      g.engine.IsGameOver(),
		Paused:        g.paused || g.tooSmall,
		Assisted:      g.assisted,
		Outcome:       g.engine.Winner().String(),
		Match:         g.match,
	}
}
