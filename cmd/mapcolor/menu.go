package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mapcolor/internal/core"
	"github.com/vovakirdan/mapcolor/internal/platform/tui"
	"github.com/vovakirdan/mapcolor/internal/registry"
	"github.com/vovakirdan/mapcolor/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick boards from an interactive menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a board.
Leaving a game with Esc returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select board
  Tab          - Match history
  Q            - Quit

Examples:
  mapcolor menu
  mapcolor menu --db ./matches.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open match database, history is off", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	cfg := runtimeConfig()
	for {
		res, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = res.Config // the menu may have been resized

		switch {
		case res.Quit:
			return
		case res.WantsScoreboard:
			back, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			if !back {
				return
			}
		default:
			playFromMenu(res.GameID, store, cfg)
		}
	}
}

// playFromMenu runs one board; errors are reported and the menu comes back.
func playFromMenu(id string, store *storage.Store, cfg core.RuntimeConfig) {
	game, err := registry.Create(id)
	if err != nil {
		logger.Error("cannot start game", "game", id, "error", err)
		return
	}
	cfg.Seed = seed() // fresh prefill per board unless --seed pins it
	if err := tui.Run(game, store, cfg, tui.WithPlayer(os.Getenv("USER")), tui.WithLogger(logger)); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
	}
}
