package mapcolor

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/vovakirdan/mapcolor/internal/config"
	"github.com/vovakirdan/mapcolor/internal/maps"
	"github.com/vovakirdan/mapcolor/internal/registry"
)

// Package-level variables for config
var (
	configPath string
)

// SetConfigPath sets the config file used by registered games.
// Empty means the default search order.
func SetConfigPath(path string) {
	configPath = path
}

// GetConfigPath returns the config file used by registered games.
func GetConfigPath() string {
	return configPath
}

var gridTitles = map[config.DifficultyPreset]string{
	config.DifficultyEasy:   "Easy grid",
	config.DifficultyNormal: "Normal grid",
	config.DifficultyHard:   "Hard grid",
}

func init() {
	for _, p := range config.Presets() {
		registry.Register(registry.GameInfo{
			ID:          string(p),
			Title:       gridTitles[p],
			Description: fmt.Sprintf("Square grid, %s preset", p),
		}, func() (registry.Game, error) {
			return NewGrid(p)
		})
	}

	boards, err := maps.Builtins()
	if err != nil {
		panic(fmt.Sprintf("mapcolor: %v", err))
	}
	for _, b := range boards {
		registerMap(b)
	}
}

func registerMap(b *maps.Board) {
	registry.Register(registry.GameInfo{
		ID:          b.ID,
		Title:       b.Name,
		Description: fmt.Sprintf("Map with %d regions", b.RegionCount()),
	}, func() (registry.Game, error) {
		return NewMap(b)
	})
}

// RegisterDir registers every map file below root. A missing root is not an
// error. Maps whose ID is already taken and files that fail to parse are
// reported through onSkip and left out.
func RegisterDir(root string, onSkip func(path string, err error)) (int, error) {
	if _, err := os.Stat(root); errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}

	loader := maps.NewLoader(root)
	loader.OnSkip = onSkip
	boards, err := loader.LoadAll()
	if err != nil {
		return 0, err
	}

	n := 0
	for _, b := range boards {
		if registry.Exists(b.ID) {
			if onSkip != nil {
				onSkip(b.FilePath, fmt.Errorf("board id %q already registered", b.ID))
			}
			continue
		}
		registerMap(b)
		n++
	}
	return n, nil
}

// NewGrid creates a grid game sized by a difficulty preset.
func NewGrid(p config.DifficultyPreset) (*Game, error) {
	cfg, err := config.LoadMapColor(configPath)
	if err != nil {
		return nil, err
	}
	bp := cfg.Preset(p)
	board := maps.GridBoard(string(p), fmt.Sprintf("%s (%dx%d)", gridTitles[p], bp.Size, bp.Size), bp.Size)
	return New(board, cfg, bp.Prefill)
}

// NewMap creates a game on a parsed map with the default prefill.
func NewMap(b *maps.Board) (*Game, error) {
	cfg, err := config.LoadMapColor(configPath)
	if err != nil {
		return nil, err
	}
	return New(b, cfg, 0)
}
