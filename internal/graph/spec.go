package graph

// Spec is an explicit adjacency description.
type Spec[R comparable] struct {
	// Regions are added first, fixing the enumeration order.
	Regions []R
	// Borders are added afterwards; unknown endpoints are appended lazily.
	Borders [][2]R
}

// FromSpec builds a graph from an explicit adjacency description.
func FromSpec[R comparable](s Spec[R]) *Graph[R] {
	g := New[R]()
	for _, r := range s.Regions {
		g.AddRegion(r)
	}
	for _, b := range s.Borders {
		g.AddBorder(b[0], b[1])
	}
	return g
}
