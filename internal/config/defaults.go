package config

import (
	_ "embed"
)

//go:embed defaults/mapcolor.yaml
var defaultMapColorYAML []byte

// DefaultMapColorConfig returns the default map coloring configuration.
func DefaultMapColorConfig() MapColorConfig {
	return MapColorConfig{
		Palette: []string{"red", "green", "blue", "yellow"},
		Difficulty: DifficultyConfig{
			Easy:   BoardPreset{Size: 5},
			Normal: BoardPreset{Size: 6},
			Hard:   BoardPreset{Size: 7},
		},
		Pacing: PacingConfig{
			ComputerDelayMS: 400,
			SolveStepMS:     150,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultMapColorYAML
}
