package fatgraph

import (
	"slices"

	"github.com/matzehuels/mgn/pkg/combinatorics"
)

// Iso is a structure-preserving relabeling between two fatgraphs: a
// bijection on vertices together with per-vertex rotations and the
// induced bijection on edge labels.
//
// For every vertex i of the source graph, mapping the edge labels of the
// (optionally reversed, then rotated by Rot[i]) cyclic sequence through
// EdgeMap yields exactly the target vertex VertexMap[i]'s sequence.
//
// Reflected isomorphisms reverse every vertex's cyclic order and
// correspond to maps flipping the orientation of the underlying surface.
// They are only searched on request; the cell complex of the moduli space
// of oriented surfaces is built from rotation maps alone.
type Iso struct {
	VertexMap []int // source vertex -> target vertex
	Rot       []int // rotation applied to the source sequence
	EdgeMap   []int // source edge label -> target edge label
	Reflected bool  // cyclic orders reversed before matching
}

// EdgeSign returns the parity of the induced edge permutation: the action
// of the map on the orientation of the cell labeled by the graph. A sign
// of -1 means the map reverses the cell orientation.
func (iso *Iso) EdgeSign() int {
	return combinatorics.Sign(iso.EdgeMap)
}

// ReversesOrientation reports whether the map reverses the orientation of
// the cell (its edge permutation is odd). Meaningful for automorphisms,
// where it decides orientability of the quotient cell.
func (iso *Iso) ReversesOrientation() bool { return iso.EdgeSign() == -1 }

// IsIdentity reports whether the map fixes every vertex without rotation
// or reflection.
func (iso *Iso) IsIdentity() bool {
	if iso.Reflected {
		return false
	}
	for i, v := range iso.VertexMap {
		if v != i || iso.Rot[i] != 0 {
			return false
		}
	}
	return true
}

// MapCorner transports a half-edge of src through the isomorphism to the
// corresponding half-edge of dst.
func (iso *Iso) MapCorner(src, dst *Graph, h HalfEdge) HalfEdge {
	i := src.VertexOf(h)
	s := src.Slot(h)
	val := src.Vertex(i).Valence()
	var k int
	if iso.Reflected {
		k = ((((val - s) % val) - iso.Rot[i]) % val + val) % val
	} else {
		k = ((s-iso.Rot[i])%val + val) % val
	}
	return dst.Corner(iso.VertexMap[i], k)
}

// CycleMap returns the induced permutation on boundary cycles: source
// cycle i maps to target cycle CycleMap(...)[i]. Faces are preserved by
// any isomorphism, so transporting one corner of a cycle identifies its
// image.
func (iso *Iso) CycleMap(src, dst *Graph) []int {
	out := make([]int, src.NumBoundaryCycles())
	for i := range out {
		h := src.CycleHalfEdges(i)[0]
		out[i] = dst.CycleOf(iso.MapCorner(src, dst, h))
	}
	return out
}

// Compose returns the composite map applying first iso (src -> mid) and
// then next (mid -> dst). Both maps must be rotation maps (composition of
// reflected maps is outside what the engine needs).
func (iso *Iso) Compose(next *Iso) *Iso {
	out := &Iso{
		VertexMap: make([]int, len(iso.VertexMap)),
		Rot:       make([]int, len(iso.Rot)),
		EdgeMap:   make([]int, len(iso.EdgeMap)),
	}
	for i := range iso.VertexMap {
		out.VertexMap[i] = next.VertexMap[iso.VertexMap[i]]
	}
	for e := range iso.EdgeMap {
		out.EdgeMap[e] = next.EdgeMap[iso.EdgeMap[e]]
	}
	// Rotations compose per source vertex: rotating by r1 and then
	// applying a map that rotates the image by r2 rotates by r1+r2.
	// Consumers reduce rotations mod valence, so no normalization here.
	for i := range iso.Rot {
		out.Rot[i] = iso.Rot[i] + next.Rot[iso.VertexMap[i]]
	}
	return out
}

// SearchOption configures isomorphism search.
type SearchOption func(*searchConfig)

type searchConfig struct {
	reflections bool
	limit       int
}

// WithReflections also searches maps reversing every cyclic order
// (orientation flips of the underlying surface).
func WithReflections() SearchOption {
	return func(c *searchConfig) { c.reflections = true }
}

// WithLimit stops the search after at most limit maps have been found.
func WithLimit(limit int) SearchOption {
	return func(c *searchConfig) { c.limit = limit }
}

// Isomorphisms enumerates every relabeling mapping src onto dst, in a
// deterministic order. An empty result is the normal "not isomorphic"
// signal, not an error. The search is finite: it anchors each source
// vertex against valence-equal target vertices under all rotations and
// propagates the edge-label constraints, backtracking on conflict.
func Isomorphisms(src, dst *Graph, opts ...SearchOption) []*Iso {
	var cfg searchConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if src.NumVertices() != dst.NumVertices() ||
		src.NumEdges() != dst.NumEdges() ||
		src.NumBoundaryCycles() != dst.NumBoundaryCycles() ||
		!slices.Equal(src.Valences(), dst.Valences()) {
		return nil
	}

	s := &isoSearch{src: src, dst: dst, cfg: cfg}
	s.run(false)
	if cfg.reflections && !s.done() {
		s.run(true)
	}
	return s.found
}

// AreIsomorphic reports whether the two graphs are isomorphic as oriented
// fatgraphs.
func AreIsomorphic(a, b *Graph) bool {
	return len(Isomorphisms(a, b, WithLimit(1))) > 0
}

// Automorphisms returns all self-maps of g, always containing at least
// the identity (first in the result).
func Automorphisms(g *Graph) []*Iso {
	return Isomorphisms(g, g)
}

// IsOrientable reports whether the cell labeled by g carries a consistent
// orientation: no automorphism acts on the edge set with sign -1.
func IsOrientable(g *Graph) bool {
	for _, a := range Automorphisms(g) {
		if a.ReversesOrientation() {
			return false
		}
	}
	return true
}

type isoSearch struct {
	src, dst *Graph
	cfg      searchConfig
	found    []*Iso

	vertexMap  []int
	rot        []int
	usedTarget []bool
	edgeMap    []int
	edgeInv    []int
	reflected  bool
}

func (s *isoSearch) done() bool {
	return s.cfg.limit > 0 && len(s.found) >= s.cfg.limit
}

func (s *isoSearch) run(reflected bool) {
	nv := s.src.NumVertices()
	ne := s.src.NumEdges()
	s.vertexMap = make([]int, nv)
	s.rot = make([]int, nv)
	s.usedTarget = make([]bool, nv)
	s.edgeMap = make([]int, ne)
	s.edgeInv = make([]int, ne)
	for e := 0; e < ne; e++ {
		s.edgeMap[e] = -1
		s.edgeInv[e] = -1
	}
	s.reflected = reflected
	s.assign(0)
}

// sourceSeq returns the sequence used for matching source vertex i:
// reversed when searching reflections.
func (s *isoSearch) sourceSeq(i int) Vertex {
	if s.reflected {
		return s.src.Vertex(i).Reversed()
	}
	return s.src.Vertex(i)
}

func (s *isoSearch) assign(i int) {
	if s.done() {
		return
	}
	if i == s.src.NumVertices() {
		s.emit()
		return
	}
	seq := s.sourceSeq(i)
	val := seq.Valence()
	for target := 0; target < s.dst.NumVertices(); target++ {
		if s.usedTarget[target] || s.dst.Vertex(target).Valence() != val {
			continue
		}
		targetSeq := s.dst.Vertex(target)
		for r := 0; r < val; r++ {
			if assigned, ok := s.extendEdgeMap(seq, targetSeq, r); ok {
				s.vertexMap[i] = target
				s.rot[i] = r
				s.usedTarget[target] = true
				s.assign(i + 1)
				s.usedTarget[target] = false
				s.retract(assigned)
			}
			if s.done() {
				return
			}
		}
	}
}

// extendEdgeMap tries to extend the partial edge bijection by matching
// seq rotated by r against targetSeq slot by slot. On success it returns
// the labels newly bound (for backtracking); on conflict it undoes its
// own bindings and reports failure.
func (s *isoSearch) extendEdgeMap(seq, targetSeq Vertex, r int) ([]int, bool) {
	val := seq.Valence()
	var assigned []int
	for k := 0; k < val; k++ {
		a := seq[(r+k)%val]
		b := targetSeq[k]
		switch {
		case s.edgeMap[a] == -1 && s.edgeInv[b] == -1:
			s.edgeMap[a] = b
			s.edgeInv[b] = a
			assigned = append(assigned, a)
		case s.edgeMap[a] != b:
			s.retract(assigned)
			return nil, false
		}
	}
	return assigned, true
}

func (s *isoSearch) retract(assigned []int) {
	for _, a := range assigned {
		s.edgeInv[s.edgeMap[a]] = -1
		s.edgeMap[a] = -1
	}
}

func (s *isoSearch) emit() {
	iso := &Iso{
		VertexMap: slices.Clone(s.vertexMap),
		Rot:       slices.Clone(s.rot),
		EdgeMap:   slices.Clone(s.edgeMap),
		Reflected: s.reflected,
	}
	s.found = append(s.found, iso)
}
