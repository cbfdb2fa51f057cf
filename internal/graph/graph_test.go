package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/mapcolor/internal/core"
)

func TestAddRegionIdempotent(t *testing.T) {
	g := New[string]()
	g.AddRegion("A")
	g.AddRegion("A")

	assert.Equal(t, 1, g.Len())
	assert.True(t, g.Has("A"))

	deg, err := g.Degree("A")
	require.NoError(t, err)
	assert.Zero(t, deg, "isolated region has no neighbors")
}

func TestAddBorderSymmetric(t *testing.T) {
	g := New[string]()
	g.AddBorder("A", "B")
	g.AddBorder("B", "C")

	assert.Equal(t, []string{"A", "B", "C"}, g.Regions(), "regions keep insertion order")

	nb, err := g.Neighbors("B")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, nb)

	for _, r := range g.Regions() {
		ns, err := g.Neighbors(r)
		require.NoError(t, err)
		for _, n := range ns {
			assert.True(t, g.Adjacent(n, r), "%s borders %s but not the other way", r, n)
		}
	}
	assert.Equal(t, 2, g.BorderCount())
}

func TestAddBorderDuplicateAndSelf(t *testing.T) {
	g := New[int]()
	g.AddBorder(1, 2)
	g.AddBorder(2, 1)
	g.AddBorder(3, 3)

	deg, err := g.Degree(1)
	require.NoError(t, err)
	assert.Equal(t, 1, deg)

	assert.True(t, g.Has(3))
	deg, err = g.Degree(3)
	require.NoError(t, err)
	assert.Zero(t, deg)
}

func TestNeighborsNotFound(t *testing.T) {
	g := New[string]()
	g.AddRegion("A")

	_, err := g.Neighbors("Z")
	require.ErrorIs(t, err, ErrRegionNotFound)

	_, err = g.Degree("Z")
	require.ErrorIs(t, err, ErrRegionNotFound)
}

func TestNeighborsReturnsCopy(t *testing.T) {
	g := New[string]()
	g.AddBorder("A", "B")

	nb, err := g.Neighbors("A")
	require.NoError(t, err)
	nb[0] = "X"

	again, err := g.Neighbors("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, again)
}

func TestEachNeighborStops(t *testing.T) {
	g := New[int]()
	g.AddBorder(0, 1)
	g.AddBorder(0, 2)
	g.AddBorder(0, 3)

	var seen []int
	g.EachNeighbor(0, func(n int) bool {
		seen = append(seen, n)
		return len(seen) < 2
	})
	assert.Equal(t, []int{1, 2}, seen)

	g.EachNeighbor(99, func(int) bool {
		t.Fatal("unknown region should have no neighbors")
		return true
	})
}

func TestClone(t *testing.T) {
	g := New[string]()
	g.AddBorder("A", "B")
	g.AddRegion("C")

	c := g.Clone()
	g.AddBorder("A", "C")

	assert.Equal(t, []string{"A", "B", "C"}, c.Regions())
	assert.False(t, c.Adjacent("A", "C"), "clone must not see later borders")
	assert.Equal(t, 1, c.BorderCount())
}

func TestGrid(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		borders int
		maxDeg  int
	}{
		{"empty", 0, 0, 0},
		{"single cell", 1, 0, 0},
		{"2x2", 2, 4, 2},
		{"5x5", 5, 40, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := Grid(tc.n)
			assert.Equal(t, tc.n*tc.n, g.Len())
			assert.Equal(t, tc.borders, g.BorderCount())
			assert.Equal(t, tc.maxDeg, g.MaxDegree())
		})
	}
}

func TestGridOrderAndNeighbors(t *testing.T) {
	g := Grid(3)

	regions := g.Regions()
	require.Len(t, regions, 9)
	assert.Equal(t, core.C(0, 0), regions[0])
	assert.Equal(t, core.C(1, 0), regions[1], "cells are enumerated row by row")
	assert.Equal(t, core.C(0, 1), regions[3])

	// Center cell: down, up, right, left
	nb, err := g.Neighbors(core.C(1, 1))
	require.NoError(t, err)
	assert.Equal(t, []core.Coord{core.C(1, 2), core.C(1, 0), core.C(2, 1), core.C(0, 1)}, nb)

	corner, err := g.Degree(core.C(2, 2))
	require.NoError(t, err)
	assert.Equal(t, 2, corner)

	edge, err := g.Degree(core.C(1, 0))
	require.NoError(t, err)
	assert.Equal(t, 3, edge)

	assert.False(t, g.Adjacent(core.C(0, 0), core.C(1, 1)), "no diagonals")
	assert.False(t, g.Adjacent(core.C(0, 0), core.C(2, 0)), "no wraparound")
	assert.True(t, g.Adjacent(core.C(2, 1), core.C(1, 1)))
}

func TestFromSpec(t *testing.T) {
	g := FromSpec(Spec[string]{
		Regions: []string{"T", "WA"},
		Borders: [][2]string{{"WA", "NT"}, {"WA", "SA"}, {"NT", "SA"}},
	})

	assert.Equal(t, []string{"T", "WA", "NT", "SA"}, g.Regions())
	deg, err := g.Degree("T")
	require.NoError(t, err)
	assert.Zero(t, deg)

	deg, err = g.Degree("SA")
	require.NoError(t, err)
	assert.Equal(t, 2, deg)
}
