package maps

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/mapcolor/internal/core"
	"github.com/vovakirdan/mapcolor/internal/graph"
)

// Parse errors.
var (
	ErrMissingID     = errors.New("maps: missing id")
	ErrEmptyLayout   = errors.New("maps: layout has no regions")
	ErrRaggedLayout  = errors.New("maps: layout rows differ in width")
	ErrUnknownRegion = errors.New("maps: unknown region letter")
	ErrSplitRegion   = errors.New("maps: region cells are not connected")
)

// YAMLMap is the on-disk form of a map.
//
//	id: australia
//	name: Australia
//	layout:
//	  - "WWNQ"
//	  - "WSSQ"
//	legend:
//	  W: Western Australia
//	borders:
//	  - [T, V]
type YAMLMap struct {
	ID      string            `yaml:"id"`
	Name    string            `yaml:"name"`
	Layout  []string          `yaml:"layout"`
	Legend  map[string]string `yaml:"legend,omitempty"`
	Borders [][2]string       `yaml:"borders,omitempty"`
}

// isWater reports whether a layout rune is outside every region.
func isWater(ch rune) bool {
	return ch == '.' || ch == ' '
}

// ParseYAML parses a YAML map.
func ParseYAML(data []byte) (*Board, error) {
	var ym YAMLMap
	if err := yaml.Unmarshal(data, &ym); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return ym.Build()
}

// Build validates the layout and computes the region graph. Two regions
// border when any of their cells touch horizontally or vertically, or when
// the pair is listed under borders.
func (ym YAMLMap) Build() (*Board, error) {
	if strings.TrimSpace(ym.ID) == "" {
		return nil, ErrMissingID
	}
	if len(ym.Layout) == 0 {
		return nil, ErrEmptyLayout
	}

	rows := make([][]rune, len(ym.Layout))
	for i, line := range ym.Layout {
		rows[i] = []rune(line)
		if len(rows[i]) != len(rows[0]) {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d",
				ErrRaggedLayout, i, len(rows[i]), len(rows[0]))
		}
	}

	w, h := len(rows[0]), len(rows)
	b := &Board{
		ID:      ym.ID,
		Name:    ym.Name,
		Width:   w,
		Height:  h,
		cells:   make([]core.Coord, w*h),
		water:   make([]bool, w*h),
		letters: make(map[core.Coord]rune),
		labels:  make(map[core.Coord]string),
		graph:   graph.New[core.Coord](),
	}
	if b.Name == "" {
		b.Name = b.ID
	}

	anchors := make(map[rune]core.Coord)
	sizes := make(map[rune]int)
	for y, row := range rows {
		for x, ch := range row {
			i := y*w + x
			if isWater(ch) {
				b.water[i] = true
				continue
			}
			a, ok := anchors[ch]
			if !ok {
				a = core.C(x, y)
				anchors[ch] = a
				b.letters[a] = ch
				b.graph.AddRegion(a)
			}
			b.cells[i] = a
			sizes[ch]++
		}
	}
	if len(anchors) == 0 {
		return nil, ErrEmptyLayout
	}

	for ch, a := range anchors {
		if n := b.reach(a); n != sizes[ch] {
			return nil, fmt.Errorf("%w: %q reaches %d of %d cells", ErrSplitRegion, ch, n, sizes[ch])
		}
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := core.C(x, y)
			for _, n := range []core.Coord{c.Add(1, 0), c.Add(0, 1)} {
				ra, okA := b.RegionAt(c)
				rn, okN := b.RegionAt(n)
				if okA && okN && ra != rn {
					b.graph.AddBorder(ra, rn)
				}
			}
		}
	}

	lookup := func(s string) (core.Coord, error) {
		r := []rune(strings.TrimSpace(s))
		if len(r) != 1 {
			return core.Coord{}, fmt.Errorf("%w: %q", ErrUnknownRegion, s)
		}
		a, ok := anchors[r[0]]
		if !ok {
			return core.Coord{}, fmt.Errorf("%w: %q", ErrUnknownRegion, s)
		}
		return a, nil
	}

	for _, pair := range ym.Borders {
		a, err := lookup(pair[0])
		if err != nil {
			return nil, err
		}
		c, err := lookup(pair[1])
		if err != nil {
			return nil, err
		}
		b.graph.AddBorder(a, c)
	}

	for letter, name := range ym.Legend {
		a, err := lookup(letter)
		if err != nil {
			return nil, fmt.Errorf("legend: %w", err)
		}
		b.labels[a] = name
	}

	return b, nil
}

// reach counts the cells connected to anchor a through its own region.
func (b *Board) reach(a core.Coord) int {
	seen := map[core.Coord]bool{a: true}
	queue := []core.Coord{a}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, n := range []core.Coord{c.Add(0, 1), c.Add(0, -1), c.Add(1, 0), c.Add(-1, 0)} {
			if seen[n] {
				continue
			}
			if r, ok := b.RegionAt(n); ok && r == a {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}
	return len(seen)
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
