// mapcolor is a map coloring game for the terminal: color regions so that no
// two neighbors match, taking turns with a greedy computer opponent.
//
// Usage:
//
//	mapcolor list              - List available boards
//	mapcolor play [board]      - Play a board
//	mapcolor menu              - Pick boards interactively
//	mapcolor solve [board]     - Let the computer color a board headless
//	mapcolor scores [board]    - Show match history
//	mapcolor serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 30)
//	--seed <value>      - Set RNG seed for reproducible prefills
//	--db <path>         - Set database path (default: ~/.mapcolor/matches.db)
//	--config <path>     - Use a custom config file
//	--maps <dir>        - Load extra maps (default: ~/.mapcolor/maps)
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/mapcolor/internal/games/mapcolor"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagMapsDir  string
	flagLogLevel string

	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mapcolor",
	Short: "Map coloring - color a map against the computer",
	Long: `Map coloring is a turn-based puzzle for the terminal.

Pick a color and a region: if no neighbor has that color you score a point,
otherwise you lose one. The computer answers by coloring the most connected
blank region with the first legal color. Whoever has more points when the
map is full wins.

Available commands:
  list     - Show all available boards
  play     - Play a specific board directly
  menu     - Interactive board picker
  solve    - Auto-solve a board without the UI
  scores   - View match history
  serve    - Start SSH server for remote play

Examples:
  mapcolor list
  mapcolor play australia
  mapcolor play --difficulty hard
  mapcolor solve wheel --log-level debug
  mapcolor serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.mapcolor/matches.db", "Path to match database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagMapsDir, "maps", "~/.mapcolor/maps", "Directory with extra map files")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup builds the logger, points games at the config file and registers
// the user's maps.
func setup(cmd *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "mapcolor " + cmd.Name(),
		Level:           level,
	})

	mapcolor.SetConfigPath(flagConfig)

	n, err := mapcolor.RegisterDir(expandHome(flagMapsDir), func(path string, err error) {
		logger.Warn("skipping map", "path", path, "error", err)
	})
	if err != nil {
		logger.Warn("could not load maps", "dir", flagMapsDir, "error", err)
	} else if n > 0 {
		logger.Debug("loaded maps", "dir", flagMapsDir, "count", n)
	}
	return nil
}

// expandHome replaces a leading ~ with the home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
