package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mapcolor/internal/config"
	"github.com/vovakirdan/mapcolor/internal/core"
	"github.com/vovakirdan/mapcolor/internal/games/mapcolor"
	"github.com/vovakirdan/mapcolor/internal/platform/tui"
	"github.com/vovakirdan/mapcolor/internal/registry"
	"github.com/vovakirdan/mapcolor/internal/storage"
)

var (
	flagMapFile    string
	flagDifficulty string
	flagPlayer     string
)

var playCmd = &cobra.Command{
	Use:   "play [board]",
	Short: "Play a board",
	Long: `Start playing the specified board.

Without a board the grid for --difficulty is used.

Controls:
  Arrows/WASD  - Move cursor
  1-8          - Pick color
  Enter/Space  - Color the region under the cursor
  X            - Let the computer finish the board
  R            - Restore the starting board
  N            - New board
  P            - Pause
  ?            - All keys
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - 5x5 grid
  normal - 6x6 grid
  hard   - 7x7 grid

Examples:
  mapcolor play australia
  mapcolor play --difficulty hard
  mapcolor play --map ./europe.yaml
  mapcolor play wheel --config ./my-colors.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMapFile, "map", "", "Play a map file instead of a registered board")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Grid preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagPlayer, "player", os.Getenv("USER"), "Name recorded with finished matches")
}

// runtimeConfig sizes the screen from the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed(),
	}
}

// seed returns --seed, or a time-based seed when it is 0.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// createGame resolves the board from --map, the argument or --difficulty.
func createGame(args []string) (registry.Game, error) {
	if flagMapFile != "" {
		return mapcolor.NewFromFile(flagMapFile)
	}

	if len(args) == 1 {
		if !registry.Exists(args[0]) {
			return nil, fmt.Errorf("unknown board %q (run 'mapcolor list' to see available boards)", args[0])
		}
		return registry.Create(args[0])
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return nil, err
	}
	return registry.Create(string(preset))
}

func runPlay(cmd *cobra.Command, args []string) {
	game, err := createGame(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open match database, history is off", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, runtimeConfig(), tui.WithPlayer(flagPlayer), tui.WithLogger(logger))

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
