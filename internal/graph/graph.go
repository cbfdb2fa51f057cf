// Package graph holds the region adjacency model used by the coloring engine.
//
// A Graph maps each region to the regions it borders. Adjacency is symmetric
// and regions keep the order in which they were first added; that order is
// the enumeration order every deterministic tie-break relies on.
//
// Graph is not safe for concurrent mutation. Build it once, then treat it as
// read-only.
package graph

import (
	"errors"
	"fmt"
)

// ErrRegionNotFound indicates an operation referenced a region that was never added.
var ErrRegionNotFound = errors.New("graph: region not found")

// Graph is an undirected region adjacency relation.
type Graph[R comparable] struct {
	order []R
	adj   map[R][]R
}

// New creates an empty graph.
func New[R comparable]() *Graph[R] {
	return &Graph[R]{
		adj: make(map[R][]R),
	}
}

// AddRegion ensures r exists. Adding an existing region is a no-op.
func (g *Graph[R]) AddRegion(r R) {
	if _, ok := g.adj[r]; ok {
		return
	}
	g.adj[r] = nil
	g.order = append(g.order, r)
}

// AddBorder makes r1 and r2 neighbors, adding either region if needed.
// A repeated pair leaves the neighbor lists unchanged; a region cannot border itself.
func (g *Graph[R]) AddBorder(r1, r2 R) {
	g.AddRegion(r1)
	g.AddRegion(r2)
	if r1 == r2 || g.borders(r1, r2) {
		return
	}
	g.adj[r1] = append(g.adj[r1], r2)
	g.adj[r2] = append(g.adj[r2], r1)
}

func (g *Graph[R]) borders(r1, r2 R) bool {
	for _, n := range g.adj[r1] {
		if n == r2 {
			return true
		}
	}
	return false
}

// Has reports whether r was added.
func (g *Graph[R]) Has(r R) bool {
	_, ok := g.adj[r]
	return ok
}

// Adjacent reports whether r1 and r2 share a border.
func (g *Graph[R]) Adjacent(r1, r2 R) bool {
	return g.borders(r1, r2)
}

// Neighbors returns a copy of the regions bordering r, in insertion order.
func (g *Graph[R]) Neighbors(r R) ([]R, error) {
	ns, ok := g.adj[r]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrRegionNotFound, r)
	}
	out := make([]R, len(ns))
	copy(out, ns)
	return out, nil
}

// EachNeighbor calls fn for every neighbor of r without copying.
// Unknown regions have no neighbors.
func (g *Graph[R]) EachNeighbor(r R, fn func(R) bool) {
	for _, n := range g.adj[r] {
		if !fn(n) {
			return
		}
	}
}

// Degree returns the number of neighbors of r.
func (g *Graph[R]) Degree(r R) (int, error) {
	ns, ok := g.adj[r]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrRegionNotFound, r)
	}
	return len(ns), nil
}

// Regions returns every region in enumeration order.
func (g *Graph[R]) Regions() []R {
	out := make([]R, len(g.order))
	copy(out, g.order)
	return out
}

// Len returns the number of regions.
func (g *Graph[R]) Len() int {
	return len(g.order)
}

// BorderCount returns the number of distinct borders.
func (g *Graph[R]) BorderCount() int {
	total := 0
	for _, ns := range g.adj {
		total += len(ns)
	}
	return total / 2
}

// MaxDegree returns the largest neighbor count in the graph.
func (g *Graph[R]) MaxDegree() int {
	maxDeg := 0
	for _, ns := range g.adj {
		if len(ns) > maxDeg {
			maxDeg = len(ns)
		}
	}
	return maxDeg
}

// Clone returns an independent copy with the same enumeration and neighbor order.
func (g *Graph[R]) Clone() *Graph[R] {
	c := &Graph[R]{
		order: make([]R, len(g.order)),
		adj:   make(map[R][]R, len(g.adj)),
	}
	copy(c.order, g.order)
	for r, ns := range g.adj {
		if ns == nil {
			c.adj[r] = nil
			continue
		}
		c.adj[r] = append([]R(nil), ns...)
	}
	return c
}
