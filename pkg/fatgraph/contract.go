package fatgraph

import (
	mgnerrors "github.com/matzehuels/mgn/pkg/errors"
)

// Contraction is the result of contracting a non-loop edge: the derived
// graph with one fewer edge, plus the bookkeeping needed to transport
// boundary-cycle data from the parent.
//
// CornerMap maps each half-edge of the parent to the half-edge of Result
// that carries the same edge end, or -1 for the two half-edges of the
// contracted edge. Edge labels above the contracted label shift down by
// one in Result, so parent edge l maps to l when l < e and l-1 when l > e.
type Contraction struct {
	Result    *Graph
	Edge      int
	CornerMap []HalfEdge
}

// Contract contracts the non-loop edge e: the two endpoint vertices merge
// into one, their cyclic sequences spliced at the contraction point, and
// e's half-edge pair disappears. The receiver is never mutated, so
// contractions of the same graph along different edges are independent.
//
// Returns ErrContractLoop (wrapped) for self-loops: contracting a loop
// would degenerate the graph, and loops are excluded from the boundary
// operator. Contracting a non-loop edge preserves genus and the number
// of boundary cycles.
func (g *Graph) Contract(e int) (*Contraction, error) {
	h1, h2, err := g.EdgeEndpoints(e)
	if err != nil {
		return nil, err
	}
	v1, v2 := g.VertexOf(h1), g.VertexOf(h2)
	if v1 == v2 {
		return nil, mgnerrors.Wrap(mgnerrors.ErrCodeInvalidInput, ErrContractLoop,
			"edge %d is a self-loop at vertex %d", e, v1)
	}
	if v1 > v2 {
		v1, v2 = v2, v1
		h1, h2 = h2, h1
	}

	relabel := func(l int) int {
		if l > e {
			return l - 1
		}
		return l
	}

	// Splice: around v1 starting after e, then around v2 starting after e.
	s1, s2 := g.Slot(h1), g.Slot(h2)
	val1, val2 := g.vertices[v1].Valence(), g.vertices[v2].Valence()
	merged := make(Vertex, 0, val1+val2-2)
	type origin struct{ vertex, slot int }
	origins := make([]origin, 0, val1+val2-2)
	for k := 1; k < val1; k++ {
		slot := (s1 + k) % val1
		merged = append(merged, relabel(g.vertices[v1][slot]))
		origins = append(origins, origin{v1, slot})
	}
	for k := 1; k < val2; k++ {
		slot := (s2 + k) % val2
		merged = append(merged, relabel(g.vertices[v2][slot]))
		origins = append(origins, origin{v2, slot})
	}

	// Vertex v1 becomes the merged vertex; v2 disappears and later
	// vertices shift down by one.
	newVertices := make([]Vertex, 0, len(g.vertices)-1)
	newIndex := make([]int, len(g.vertices))
	for i, v := range g.vertices {
		switch {
		case i == v1:
			newIndex[i] = len(newVertices)
			newVertices = append(newVertices, merged)
		case i == v2:
			newIndex[i] = -1
		default:
			newIndex[i] = len(newVertices)
			relabeled := make(Vertex, len(v))
			for j, l := range v {
				relabeled[j] = relabel(l)
			}
			newVertices = append(newVertices, relabeled)
		}
	}

	result, err := New(newVertices)
	if err != nil {
		// Contraction of a non-loop edge in a valid graph stays valid:
		// merged valence is val1+val2-2 >= 4 and connectivity persists.
		return nil, mgnerrors.Wrap(mgnerrors.ErrCodeInternal, err,
			"contraction of edge %d produced an invalid graph", e)
	}

	cornerMap := make([]HalfEdge, g.NumCorners())
	for c := range cornerMap {
		cornerMap[c] = -1
	}
	mergedVertex := newIndex[v1]
	for slot, o := range origins {
		cornerMap[int(g.Corner(o.vertex, o.slot))] = result.Corner(mergedVertex, slot)
	}
	for i := range g.vertices {
		if i == v1 || i == v2 {
			continue
		}
		for slot := range g.vertices[i] {
			cornerMap[int(g.Corner(i, slot))] = result.Corner(newIndex[i], slot)
		}
	}

	return &Contraction{Result: result, Edge: e, CornerMap: cornerMap}, nil
}

// ContractEdge is a convenience wrapper around [Graph.Contract] returning
// only the derived graph.
func (g *Graph) ContractEdge(e int) (*Graph, error) {
	c, err := g.Contract(e)
	if err != nil {
		return nil, err
	}
	return c.Result, nil
}
