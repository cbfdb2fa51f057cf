package graph

import "github.com/vovakirdan/mapcolor/internal/core"

// gridSteps lists the 4-connected offsets in neighbor order: down, up, right, left.
var gridSteps = [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}

// Grid builds the n×n board graph: every cell borders its in-bounds
// up/down/left/right cells. No diagonals, no wraparound.
// Cells are enumerated row by row. n <= 0 yields an empty graph.
func Grid(n int) *Graph[core.Coord] {
	g := New[core.Coord]()
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			g.AddRegion(core.C(x, y))
		}
	}

	// Every cell lists its own neighbors in step order; since each pair is
	// seen from both sides the relation stays symmetric.
	for _, cell := range g.order {
		for _, st := range gridSteps {
			if next := cell.Add(st[0], st[1]); next.In(n, n) {
				g.adj[cell] = append(g.adj[cell], next)
			}
		}
	}
	return g
}
