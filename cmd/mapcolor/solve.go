package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mapcolor/internal/games/mapcolor"
)

var flagNoPrefill bool

var solveCmd = &cobra.Command{
	Use:   "solve [board]",
	Short: "Auto-solve a board without the UI",
	Long: `Prefill a board, then let the computer color every remaining region
with the highest-degree-first strategy. Prints the starting and final board
and whether the coloring is complete. Each step is logged at debug level.

The strategy never backtracks, so some boards end with blank regions.
The command exits with status 2 when that happens.

Examples:
  mapcolor solve australia
  mapcolor solve --difficulty hard --seed 42
  mapcolor solve --map ./europe.yaml --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&flagMapFile, "map", "", "Solve a map file instead of a registered board")
	solveCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Grid preset: easy, normal, hard")
	solveCmd.Flags().BoolVar(&flagNoPrefill, "empty", false, "Clear the prefill and solve from a blank board")
}

func runSolve(_ *cobra.Command, args []string) {
	game, err := createGame(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	g, ok := game.(*mapcolor.Game)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: board %q cannot be solved headless\n", game.ID())
		os.Exit(1)
	}
	if flagNoPrefill {
		g.SetPrefill(-1)
	}

	cfg := runtimeConfig()
	g.Reset(cfg)
	board, engine := g.Board(), g.Engine()

	fmt.Printf("%s (%d regions, %d prefilled)\n\n", board.Name, board.RegionCount(), engine.ColoredCount())
	fmt.Println(mapcolor.RenderASCII(board, engine))
	fmt.Println()

	steps := 0
	for st := range engine.AutoSolve() {
		steps++
		logger.Debug("step",
			"n", st.Index+1,
			"region", board.Label(st.Region),
			"color", st.Color,
			"remaining", st.Remaining,
		)
	}

	fmt.Println(mapcolor.RenderASCII(board, engine))
	fmt.Println()

	if err := engine.Verify(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	blank := len(engine.Uncolored())
	logger.Info("solve finished", "board", board.ID, "steps", steps, "blank", blank)
	if blank == 0 {
		fmt.Printf("Complete: colored %d regions in %d steps\n", board.RegionCount(), steps)
		return
	}
	fmt.Printf("Incomplete: %d regions have no legal color\n", blank)
	for _, r := range engine.Uncolored() {
		fmt.Printf("  %s\n", board.Label(r))
	}
	os.Exit(2)
}
