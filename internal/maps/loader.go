package maps

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// LoadFile reads and parses a single map file.
func LoadFile(path string) (*Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !isSupportedExtension(ext) {
		return nil, fmt.Errorf("unsupported extension: %s", ext)
	}

	b, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("parsing file %s: %w", path, err)
	}
	b.FilePath = path
	return b, nil
}

// Loader loads every map below a directory.
type Loader struct {
	Root string

	// OnSkip, if set, is called for each file that fails to load.
	OnSkip func(path string, err error)
}

// NewLoader creates a new map loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all map files.
// Returns boards sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]*Board, error) {
	var boards []*Board

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(strings.ToLower(filepath.Ext(path))) {
			return nil
		}

		b, err := LoadFile(path)
		if err != nil {
			if l.OnSkip != nil {
				l.OnSkip(path, err)
			}
			return nil
		}
		boards = append(boards, b)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	slices.SortFunc(boards, func(a, b *Board) int {
		return strings.Compare(a.ID, b.ID)
	})
	return boards, nil
}

// LoadByID loads a specific map by ID.
func (l *Loader) LoadByID(id string) (*Board, error) {
	boards, err := l.LoadAll()
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

func isSupportedExtension(ext string) bool {
	return slices.Contains(FormatExtensions(), ext)
}
