// Package maps provides the boards a coloring game is played on: square
// grids where every cell is a region, and hand-drawn maps loaded from YAML.
//
// A board region is identified by its anchor, the first cell of the region
// in row-major order. Grid cells are their own anchors.
package maps

import (
	"github.com/vovakirdan/mapcolor/internal/core"
	"github.com/vovakirdan/mapcolor/internal/graph"
)

// Board is a playable map: a rectangle of cells, each either water or part of a region.
type Board struct {
	ID       string
	Name     string
	Width    int
	Height   int
	FilePath string // empty for built-in and generated boards

	cells   []core.Coord // anchor per cell, row-major
	water   []bool
	letters map[core.Coord]rune
	labels  map[core.Coord]string
	graph   *graph.Graph[core.Coord]
}

// GridBoard returns an n x n board where every cell is its own region.
func GridBoard(id, name string, n int) *Board {
	if n < 0 {
		n = 0
	}
	b := &Board{
		ID:      id,
		Name:    name,
		Width:   n,
		Height:  n,
		cells:   make([]core.Coord, n*n),
		water:   make([]bool, n*n),
		letters: make(map[core.Coord]rune),
		labels:  make(map[core.Coord]string),
		graph:   graph.Grid(n),
	}
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			b.cells[y*n+x] = core.C(x, y)
		}
	}
	return b
}

// Graph returns the region adjacency graph. Engines clone it, so sharing is safe.
func (b *Board) Graph() *graph.Graph[core.Coord] {
	return b.graph
}

// Regions returns the region anchors in enumeration order.
func (b *Board) Regions() []core.Coord {
	return b.graph.Regions()
}

// RegionCount returns the number of regions.
func (b *Board) RegionCount() int {
	return b.graph.Len()
}

// IsGrid reports whether every cell is its own region.
func (b *Board) IsGrid() bool {
	return len(b.letters) == 0 && b.graph.Len() == b.Width*b.Height
}

// RegionAt returns the region covering cell c. Water and out-of-bounds
// cells report false.
func (b *Board) RegionAt(c core.Coord) (core.Coord, bool) {
	if !c.In(b.Width, b.Height) {
		return core.Coord{}, false
	}
	i := c.Y*b.Width + c.X
	if b.water[i] {
		return core.Coord{}, false
	}
	return b.cells[i], true
}

// Cells returns the cells of region r in row-major order.
func (b *Board) Cells(r core.Coord) []core.Coord {
	var out []core.Coord
	for i, a := range b.cells {
		if !b.water[i] && a == r {
			out = append(out, core.C(i%b.Width, i/b.Width))
		}
	}
	return out
}

// Letter returns the layout letter of r, or 0 for grid cells.
func (b *Board) Letter(r core.Coord) rune {
	return b.letters[r]
}

// Label returns the display name of r.
func (b *Board) Label(r core.Coord) string {
	if l, ok := b.labels[r]; ok && l != "" {
		return l
	}
	if ch, ok := b.letters[r]; ok {
		return string(ch)
	}
	return r.String()
}

// SameRegion reports whether cells a and b belong to the same region.
func (b *Board) SameRegion(a, c core.Coord) bool {
	ra, ok := b.RegionAt(a)
	if !ok {
		return false
	}
	rc, ok := b.RegionAt(c)
	return ok && ra == rc
}
