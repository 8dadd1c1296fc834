package fatgraph

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	mgnerrors "github.com/matzehuels/mgn/pkg/errors"
)

var (
	// ErrValenceTooLow is returned by [New] when a vertex has fewer than
	// three slots. Lower valences never occur in the cell decomposition.
	ErrValenceTooLow = errors.New("vertex valence below 3")

	// ErrHalfEdgeCount is returned by [New] when an edge label is not used
	// exactly twice across the whole graph.
	ErrHalfEdgeCount = errors.New("edge label not used exactly twice")

	// ErrLabelOutOfRange is returned by [New] when an edge label falls
	// outside the contiguous range 0..L-1.
	ErrLabelOutOfRange = errors.New("edge label out of range")

	// ErrDisconnected is returned by [New] when the vertex set does not
	// form a single connected component.
	ErrDisconnected = errors.New("graph is not connected")

	// ErrContractLoop is returned by [Graph.ContractEdge] for self-loop
	// edges, which are never contracted.
	ErrContractLoop = errors.New("cannot contract a self-loop")

	// ErrEdgeOutOfRange is returned by edge-indexed accessors when the
	// edge label does not exist in the graph.
	ErrEdgeOutOfRange = errors.New("edge label does not exist")
)

// Vertex is the cyclic sequence of edge labels attached to a vertex, in
// ribbon (rotation-system) order. Two sequences that are rotations of one
// another describe the same vertex.
type Vertex []int

// Valence returns the number of edge ends attached to the vertex.
func (v Vertex) Valence() int { return len(v) }

// Rotated returns a copy of v rotated left by r slots, so that
// v.Rotated(r)[0] == v[r%len(v)].
func (v Vertex) Rotated(r int) Vertex {
	l := len(v)
	if l == 0 {
		return Vertex{}
	}
	r = ((r % l) + l) % l
	out := make(Vertex, 0, l)
	out = append(out, v[r:]...)
	out = append(out, v[:r]...)
	return out
}

// Reversed returns a copy of v with the cyclic order reversed, keeping
// v[0] first. Reversal models an orientation flip of the underlying
// surface at this vertex.
func (v Vertex) Reversed() Vertex {
	l := len(v)
	out := make(Vertex, l)
	for i := range v {
		out[i] = v[(l-i)%l]
	}
	return out
}

// CanonicalRotation returns the lexicographically smallest rotation of v.
// All rotation-invariant comparisons go through this form rather than
// relying on slice identity.
func (v Vertex) CanonicalRotation() Vertex {
	best := v.Rotated(0)
	for r := 1; r < len(v); r++ {
		if cand := v.Rotated(r); slices.Compare(cand, best) < 0 {
			best = cand
		}
	}
	return best
}

// EqualCyclic reports whether v and w describe the same vertex, i.e.
// whether w is a rotation of v.
func (v Vertex) EqualCyclic(w Vertex) bool {
	if len(v) != len(w) {
		return false
	}
	return slices.Equal(v.CanonicalRotation(), w.CanonicalRotation())
}

// HalfEdge addresses one endpoint occurrence of an edge: an index into the
// flattened corner arena of a Graph. Values are stable for the lifetime of
// the Graph they belong to.
type HalfEdge int

// Graph is an immutable fatgraph: an unordered set of vertices with the
// derived pairing of edge labels into edges. Construct with [New]; all
// mutating operations (contraction) return new Graph values.
type Graph struct {
	vertices []Vertex

	numEdges int
	offsets  []int // vertex index -> first corner index
	vertexOf []int // corner -> owning vertex
	label    []int // corner -> edge label
	pair     []int // corner -> corner carrying the same label

	cycles  [][]HalfEdge // boundary cycles as corner sequences
	cycleOf []int        // corner -> boundary cycle index

	genus int
}

// New constructs a Graph from vertex descriptions and validates the model
// invariants. It returns a MALFORMED_GRAPH coded error (wrapping one of
// the package sentinels) when an edge label is not used exactly twice, a
// vertex has valence below 3, or the graph is disconnected. Offending
// graphs are rejected, never silently accepted.
func New(vertices []Vertex) (*Graph, error) {
	totalSlots := 0
	for i, v := range vertices {
		if v.Valence() < 3 {
			return nil, mgnerrors.Wrap(mgnerrors.ErrCodeMalformedGraph, ErrValenceTooLow,
				"vertex %d has valence %d", i, v.Valence())
		}
		totalSlots += v.Valence()
	}
	if totalSlots%2 != 0 {
		return nil, mgnerrors.Wrap(mgnerrors.ErrCodeMalformedGraph, ErrHalfEdgeCount,
			"odd number of edge ends (%d)", totalSlots)
	}
	numEdges := totalSlots / 2

	g := &Graph{
		vertices: make([]Vertex, len(vertices)),
		numEdges: numEdges,
		offsets:  make([]int, len(vertices)+1),
		vertexOf: make([]int, totalSlots),
		label:    make([]int, totalSlots),
		pair:     make([]int, totalSlots),
	}

	// Flatten vertices into the corner arena and derive the pairing.
	occurrences := make([][]int, numEdges)
	corner := 0
	for i, v := range vertices {
		g.vertices[i] = slices.Clone(v)
		g.offsets[i] = corner
		for _, l := range v {
			if l < 0 || l >= numEdges {
				return nil, mgnerrors.Wrap(mgnerrors.ErrCodeMalformedGraph, ErrLabelOutOfRange,
					"edge label %d outside 0..%d", l, numEdges-1)
			}
			g.vertexOf[corner] = i
			g.label[corner] = l
			occurrences[l] = append(occurrences[l], corner)
			corner++
		}
	}
	g.offsets[len(vertices)] = corner

	for l, occ := range occurrences {
		if len(occ) != 2 {
			return nil, mgnerrors.Wrap(mgnerrors.ErrCodeMalformedGraph, ErrHalfEdgeCount,
				"edge label %d used %d times", l, len(occ))
		}
		g.pair[occ[0]] = occ[1]
		g.pair[occ[1]] = occ[0]
	}

	if err := g.checkConnected(); err != nil {
		return nil, err
	}

	g.traceBoundaryCycles()

	// Euler's formula with boundary cycles counted as punctures.
	n := len(g.cycles)
	g.genus = (g.numEdges - len(g.vertices) - n + 2) / 2

	return g, nil
}

// MustNew is like [New] but panics on invalid input. Intended for tests
// and literals known to be well formed.
func MustNew(vertices []Vertex) *Graph {
	g, err := New(vertices)
	if err != nil {
		panic(err)
	}
	return g
}

func (g *Graph) checkConnected() error {
	if len(g.vertices) == 0 {
		return mgnerrors.Wrap(mgnerrors.ErrCodeMalformedGraph, ErrDisconnected, "graph has no vertices")
	}
	seen := make([]bool, len(g.vertices))
	stack := []int{0}
	seen[0] = true
	count := 1
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for c := g.offsets[v]; c < g.offsets[v+1]; c++ {
			w := g.vertexOf[g.pair[c]]
			if !seen[w] {
				seen[w] = true
				count++
				stack = append(stack, w)
			}
		}
	}
	if count != len(g.vertices) {
		return mgnerrors.Wrap(mgnerrors.ErrCodeMalformedGraph, ErrDisconnected,
			"only %d of %d vertices reachable", count, len(g.vertices))
	}
	return nil
}

// NumVertices returns the number of vertices.
func (g *Graph) NumVertices() int { return len(g.vertices) }

// NumEdges returns the number of edges L.
func (g *Graph) NumEdges() int { return g.numEdges }

// NumBoundaryCycles returns the number of faces of the ribbon embedding
// (the puncture count n).
func (g *Graph) NumBoundaryCycles() int { return len(g.cycles) }

// Genus returns the genus of the surface the graph embeds into, derived
// from Euler's formula V - L + n = 2 - 2g.
func (g *Graph) Genus() int { return g.genus }

// Vertex returns the cyclic edge sequence of vertex i. The returned slice
// must not be modified.
func (g *Graph) Vertex(i int) Vertex { return g.vertices[i] }

// Vertices returns the vertex sequences. The returned slices must not be
// modified.
func (g *Graph) Vertices() []Vertex { return g.vertices }

// Valences returns the vertex valences sorted ascending.
func (g *Graph) Valences() []int {
	out := make([]int, len(g.vertices))
	for i, v := range g.vertices {
		out[i] = v.Valence()
	}
	slices.Sort(out)
	return out
}

// NumCorners returns the size of the corner arena, always 2L.
func (g *Graph) NumCorners() int { return 2 * g.numEdges }

// Corner returns the HalfEdge at the given vertex and slot.
func (g *Graph) Corner(vertex, slot int) HalfEdge {
	return HalfEdge(g.offsets[vertex] + slot)
}

// VertexOf returns the vertex owning half-edge h.
func (g *Graph) VertexOf(h HalfEdge) int { return g.vertexOf[h] }

// Slot returns the position of h within its vertex's cyclic sequence.
func (g *Graph) Slot(h HalfEdge) int { return int(h) - g.offsets[g.vertexOf[h]] }

// EdgeLabel returns the edge label carried by half-edge h.
func (g *Graph) EdgeLabel(h HalfEdge) int { return g.label[h] }

// Paired returns the half-edge across the edge from h: the other
// occurrence of the same edge label.
func (g *Graph) Paired(h HalfEdge) HalfEdge { return HalfEdge(g.pair[h]) }

// NextCorner returns the half-edge following h in the cyclic order of its
// vertex.
func (g *Graph) NextCorner(h HalfEdge) HalfEdge {
	v := g.vertexOf[h]
	slot := int(h) - g.offsets[v]
	return HalfEdge(g.offsets[v] + (slot+1)%g.vertices[v].Valence())
}

// EdgeEndpoints returns the two half-edges carrying edge label e, in
// corner order. For self-loops both lie in the same vertex.
func (g *Graph) EdgeEndpoints(e int) (HalfEdge, HalfEdge, error) {
	if e < 0 || e >= g.numEdges {
		return 0, 0, mgnerrors.Wrap(mgnerrors.ErrCodeInvalidInput, ErrEdgeOutOfRange, "edge %d", e)
	}
	for c := range g.label {
		if g.label[c] == e {
			return HalfEdge(c), HalfEdge(g.pair[c]), nil
		}
	}
	// Unreachable: construction guarantees every label occurs.
	return 0, 0, mgnerrors.Wrap(mgnerrors.ErrCodeInternal, ErrEdgeOutOfRange, "edge %d", e)
}

// IsLoop reports whether edge e has both endpoints at the same vertex.
func (g *Graph) IsLoop(e int) bool {
	h1, h2, err := g.EdgeEndpoints(e)
	if err != nil {
		return false
	}
	return g.vertexOf[h1] == g.vertexOf[h2]
}

// InvariantKey returns a cheap isomorphism invariant: the sorted valence
// sequence together with the boundary-cycle count and genus. Graphs with
// different keys are never isomorphic, so the key narrows candidate sets
// before full isomorphism search.
func (g *Graph) InvariantKey() string {
	var b strings.Builder
	fmt.Fprintf(&b, "g%d;n%d;v", g.genus, len(g.cycles))
	for i, val := range g.Valences() {
		if i > 0 {
			b.WriteByte('.')
		}
		fmt.Fprintf(&b, "%d", val)
	}
	return b.String()
}

// String renders the vertex sequences in canonical rotation, e.g.
// "(0 1 2)(0 2 1)". Suitable for logs and stable within a process.
func (g *Graph) String() string {
	var b strings.Builder
	for _, v := range g.vertices {
		canon := v.CanonicalRotation()
		b.WriteByte('(')
		for i, l := range canon {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%d", l)
		}
		b.WriteByte(')')
	}
	return b.String()
}
