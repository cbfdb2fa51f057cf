package maps

import (
	"embed"
	"fmt"
	"path"
	"slices"
	"strings"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Builtins returns the maps shipped with the binary, sorted by ID.
func Builtins() ([]*Board, error) {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil, fmt.Errorf("reading builtin maps: %w", err)
	}

	var boards []*Board
	for _, e := range entries {
		data, err := builtinFS.ReadFile(path.Join("builtin", e.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading builtin map %s: %w", e.Name(), err)
		}
		b, err := ParseYAML(data)
		if err != nil {
			return nil, fmt.Errorf("parsing builtin map %s: %w", e.Name(), err)
		}
		boards = append(boards, b)
	}

	slices.SortFunc(boards, func(a, b *Board) int {
		return strings.Compare(a.ID, b.ID)
	})
	return boards, nil
}

// Builtin returns the built-in map with the given ID.
func Builtin(id string) (*Board, error) {
	boards, err := Builtins()
	if err != nil {
		return nil, err
	}
	for _, b := range boards {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, fmt.Errorf("map not found: %s", id)
}
