package fatgraph

// Corner is one step of a boundary cycle: the walk arrives at Vertex on
// the half-edge in slot In and leaves on the half-edge in slot Out (the
// next slot in the vertex's cyclic order).
type Corner struct {
	Vertex int
	In     int
	Out    int
}

// BoundaryCycle is the cyclic sequence of corners traced around one face
// of the ribbon embedding.
type BoundaryCycle []Corner

// traceBoundaryCycles walks every face of the embedding. Starting from an
// unvisited half-edge, the walk repeatedly crosses the edge and then
// advances one slot in the cyclic order of the vertex it lands in, until
// it returns to the start. Each half-edge is consumed by exactly one
// cycle, so the total length of all cycles is 2L.
func (g *Graph) traceBoundaryCycles() {
	total := g.NumCorners()
	g.cycleOf = make([]int, total)
	for i := range g.cycleOf {
		g.cycleOf[i] = -1
	}
	g.cycles = nil

	for start := 0; start < total; start++ {
		if g.cycleOf[start] >= 0 {
			continue
		}
		idx := len(g.cycles)
		var cycle []HalfEdge
		for h := HalfEdge(start); g.cycleOf[h] < 0; h = g.NextCorner(g.Paired(h)) {
			g.cycleOf[h] = idx
			cycle = append(cycle, h)
		}
		g.cycles = append(g.cycles, cycle)
	}
}

// BoundaryCycles returns the faces of the embedding as corner sequences,
// in a deterministic order (cycles sorted by their smallest half-edge).
// The number of cycles equals the puncture count n, and the combined
// length of all cycles equals 2L.
func (g *Graph) BoundaryCycles() []BoundaryCycle {
	result := make([]BoundaryCycle, len(g.cycles))
	for i, cycle := range g.cycles {
		corners := make(BoundaryCycle, len(cycle))
		for j, h := range cycle {
			v := g.VertexOf(h)
			leave := g.Slot(h)
			arrive := (leave - 1 + g.vertices[v].Valence()) % g.vertices[v].Valence()
			corners[j] = Corner{Vertex: v, In: arrive, Out: leave}
		}
		result[i] = corners
	}
	return result
}

// CycleOf returns the index of the boundary cycle that consumes half-edge
// h during face tracing. Cycle indices are stable for the lifetime of the
// Graph and index the slice returned by [Graph.BoundaryCycles].
func (g *Graph) CycleOf(h HalfEdge) int { return g.cycleOf[h] }

// CycleHalfEdges returns the half-edges of boundary cycle i in walk order.
// The returned slice must not be modified.
func (g *Graph) CycleHalfEdges(i int) []HalfEdge { return g.cycles[i] }
