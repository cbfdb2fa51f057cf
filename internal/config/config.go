// Package config provides YAML-based configuration loading for the map
// coloring game: palette, difficulty presets and turn pacing.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/mapcolor/internal/coloring"
)

// Limits enforced by Validate.
const (
	MinPaletteSize = 2
	MinBoardSize   = 2
	MaxBoardSize   = 16
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// MapColorConfig contains all configuration for the map coloring game.
type MapColorConfig struct {
	Palette    []string         `yaml:"palette"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Pacing     PacingConfig     `yaml:"pacing"`
}

// DifficultyConfig holds the board preset for each difficulty.
type DifficultyConfig struct {
	Easy   BoardPreset `yaml:"easy"`
	Normal BoardPreset `yaml:"normal"`
	Hard   BoardPreset `yaml:"hard"`
}

// BoardPreset sizes a square grid game.
type BoardPreset struct {
	Size    int `yaml:"size"`
	Prefill int `yaml:"prefill"` // 0 = side length, negative = none
}

// PacingConfig controls how fast the computer side of the game plays.
type PacingConfig struct {
	ComputerDelayMS int `yaml:"computer_delay_ms"` // pause before the computer answers
	SolveStepMS     int `yaml:"solve_step_ms"`     // pause between auto-solve steps
}

// ComputerDelay returns the computer answer delay.
func (p PacingConfig) ComputerDelay() time.Duration {
	return time.Duration(p.ComputerDelayMS) * time.Millisecond
}

// SolveStep returns the delay between auto-solve steps.
func (p PacingConfig) SolveStep() time.Duration {
	return time.Duration(p.SolveStepMS) * time.Millisecond
}

// PaletteColors parses the configured palette.
func (c MapColorConfig) PaletteColors() (coloring.Palette, error) {
	return coloring.ParsePalette(c.Palette)
}

// Preset returns the board preset for a difficulty. Unknown presets get Normal.
func (c MapColorConfig) Preset(p DifficultyPreset) BoardPreset {
	switch p {
	case DifficultyEasy:
		return c.Difficulty.Easy
	case DifficultyHard:
		return c.Difficulty.Hard
	default:
		return c.Difficulty.Normal
	}
}

// Validate reports the first problem with the config.
func (c MapColorConfig) Validate() error {
	n := len(c.Palette)
	if n < MinPaletteSize || n > len(coloring.AllColors()) {
		return fmt.Errorf("%w: palette needs %d to %d colors, got %d",
			ErrInvalidConfig, MinPaletteSize, len(coloring.AllColors()), n)
	}
	if _, err := c.PaletteColors(); err != nil {
		return fmt.Errorf("%w: palette: %w", ErrInvalidConfig, err)
	}

	for _, p := range Presets() {
		bp := c.Preset(p)
		if bp.Size < MinBoardSize || bp.Size > MaxBoardSize {
			return fmt.Errorf("%w: %s size %d outside %d..%d",
				ErrInvalidConfig, p, bp.Size, MinBoardSize, MaxBoardSize)
		}
		if bp.Prefill > bp.Size*bp.Size {
			return fmt.Errorf("%w: %s prefill %d exceeds %d cells",
				ErrInvalidConfig, p, bp.Prefill, bp.Size*bp.Size)
		}
	}

	if c.Pacing.ComputerDelayMS < 0 || c.Pacing.SolveStepMS < 0 {
		return fmt.Errorf("%w: pacing delays must not be negative", ErrInvalidConfig)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets returns every difficulty from easiest to hardest.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ParsePreset converts a difficulty name to a preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	case "":
		return DifficultyNormal, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}
