package fatgraph

import (
	"errors"
	"slices"
	"testing"

	mgnerrors "github.com/matzehuels/mgn/pkg/errors"
)

// Reference graphs used across the package tests.
//
//   theta03:  two trivalent vertices joined by three parallel edges in
//             opposite cyclic order; genus 0, three boundary cycles.
//   theta11:  same underlying graph with equal cyclic orders; genus 1,
//             one boundary cycle.
//   dumbbell: two self-loops joined by a bridge; genus 0, three cycles.
//   quad03:   one 4-valent vertex with two nested self-loops (aabb);
//             genus 0, three cycles.
//   quad11:   one 4-valent vertex with two interleaved self-loops (abab);
//             genus 1, one cycle.
func theta03() *Graph  { return MustNew([]Vertex{{0, 1, 2}, {0, 2, 1}}) }
func theta11() *Graph  { return MustNew([]Vertex{{0, 1, 2}, {0, 1, 2}}) }
func dumbbell() *Graph { return MustNew([]Vertex{{0, 1, 1}, {0, 2, 2}}) }
func quad03() *Graph   { return MustNew([]Vertex{{0, 0, 1, 1}}) }
func quad11() *Graph   { return MustNew([]Vertex{{0, 1, 0, 1}}) }

func TestNewCounts(t *testing.T) {
	tests := []struct {
		name                string
		g                   *Graph
		vertices, edges     int
		cycles, genus       int
		valences            []int
	}{
		{"theta03", theta03(), 2, 3, 3, 0, []int{3, 3}},
		{"theta11", theta11(), 2, 3, 1, 1, []int{3, 3}},
		{"dumbbell", dumbbell(), 2, 3, 3, 0, []int{3, 3}},
		{"quad03", quad03(), 1, 2, 3, 0, []int{4}},
		{"quad11", quad11(), 1, 2, 1, 1, []int{4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.g.NumVertices(); got != tt.vertices {
				t.Errorf("NumVertices = %d, want %d", got, tt.vertices)
			}
			if got := tt.g.NumEdges(); got != tt.edges {
				t.Errorf("NumEdges = %d, want %d", got, tt.edges)
			}
			if got := tt.g.NumBoundaryCycles(); got != tt.cycles {
				t.Errorf("NumBoundaryCycles = %d, want %d", got, tt.cycles)
			}
			if got := tt.g.Genus(); got != tt.genus {
				t.Errorf("Genus = %d, want %d", got, tt.genus)
			}
			if got := tt.g.Valences(); !slices.Equal(got, tt.valences) {
				t.Errorf("Valences = %v, want %v", got, tt.valences)
			}
		})
	}
}

func TestNewRejectsMalformed(t *testing.T) {
	tests := []struct {
		name     string
		vertices []Vertex
		sentinel error
	}{
		{"valence below 3", []Vertex{{0, 1}, {0, 1, 2, 2}}, ErrValenceTooLow},
		{"label out of range", []Vertex{{0, 1, 2}, {0, 1, 3}}, ErrLabelOutOfRange},
		{"label used three times", []Vertex{{0, 0, 0}, {1, 1, 2}}, ErrHalfEdgeCount},
		{"disconnected", []Vertex{{0, 0, 1, 1}, {2, 2, 3, 3}}, ErrDisconnected},
		{"empty", nil, ErrDisconnected},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.vertices)
			if err == nil {
				t.Fatal("New accepted a malformed graph")
			}
			if !errors.Is(err, tt.sentinel) {
				t.Errorf("error %v does not wrap %v", err, tt.sentinel)
			}
			if code := mgnerrors.GetCode(err); code != mgnerrors.ErrCodeMalformedGraph {
				t.Errorf("error code = %v, want %v", code, mgnerrors.ErrCodeMalformedGraph)
			}
		})
	}
}

func TestHalfEdgeAdjacency(t *testing.T) {
	g := theta03()
	// Vertex 0 is (0 1 2), vertex 1 is (0 2 1).
	h := g.Corner(0, 0)
	if g.EdgeLabel(h) != 0 {
		t.Fatalf("EdgeLabel(corner 0,0) = %d, want 0", g.EdgeLabel(h))
	}
	if got := g.VertexOf(g.Paired(h)); got != 1 {
		t.Errorf("paired half-edge of edge 0 should sit at vertex 1, got %d", got)
	}
	if got := g.EdgeLabel(g.NextCorner(h)); got != 1 {
		t.Errorf("next corner label = %d, want 1", got)
	}
	// NextCorner wraps around the cyclic order.
	last := g.Corner(0, 2)
	if g.NextCorner(last) != g.Corner(0, 0) {
		t.Error("NextCorner should wrap to slot 0")
	}
}

func TestIsLoop(t *testing.T) {
	g := dumbbell()
	if g.IsLoop(0) {
		t.Error("bridge edge 0 reported as loop")
	}
	if !g.IsLoop(1) || !g.IsLoop(2) {
		t.Error("self-loop edges 1, 2 not reported as loops")
	}
}

func TestInvariantKey(t *testing.T) {
	if theta03().InvariantKey() == theta11().InvariantKey() {
		t.Error("graphs of different genus must have different keys")
	}
	if theta03().InvariantKey() != dumbbell().InvariantKey() {
		t.Error("theta03 and dumbbell share valences, n and genus; keys must match")
	}
}

func TestVertexCyclic(t *testing.T) {
	v := Vertex{2, 0, 1}
	if got := v.CanonicalRotation(); !slices.Equal(got, Vertex{0, 1, 2}) {
		t.Errorf("CanonicalRotation = %v", got)
	}
	if !v.EqualCyclic(Vertex{0, 1, 2}) {
		t.Error("rotations of the same sequence must compare equal")
	}
	if v.EqualCyclic(Vertex{0, 2, 1}) {
		t.Error("different cyclic orders must not compare equal")
	}
	if got := (Vertex{0, 1, 2, 3}).Reversed(); !slices.Equal(got, Vertex{0, 3, 2, 1}) {
		t.Errorf("Reversed = %v", got)
	}
}
