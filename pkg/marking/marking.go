// Package marking enumerates numberings of fatgraph boundary cycles up
// to automorphism.
//
// A marking assigns the puncture labels 0..n-1 bijectively to the n
// boundary cycles of a graph. Automorphisms permute boundary cycles and
// therefore act on markings; the cells of the marked cell decomposition
// are the orbits of that action. An orbit is orientable unless some
// automorphism fixes its markings while acting on the edge set with an
// odd permutation.
package marking

import (
	"strconv"
	"strings"

	"github.com/matzehuels/mgn/pkg/combinatorics"
	"github.com/matzehuels/mgn/pkg/fatgraph"
)

// Marking assigns puncture labels to boundary cycles: Marking[i] is the
// label carried by boundary cycle i.
type Marking []int

// Transport pushes the marking through a permutation of boundary cycles:
// if cycle c maps to cycleMap[c], the image marking gives cycle
// cycleMap[c] the label m[c].
func (m Marking) Transport(cycleMap []int) Marking {
	out := make(Marking, len(m))
	for c, label := range m {
		out[cycleMap[c]] = label
	}
	return out
}

// Key returns a stable map key for the marking.
func (m Marking) Key() string {
	var b strings.Builder
	for i, label := range m {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(label))
	}
	return b.String()
}

// Equal reports whether two markings agree on every cycle.
func (m Marking) Equal(other Marking) bool {
	if len(m) != len(other) {
		return false
	}
	for i, label := range m {
		if other[i] != label {
			return false
		}
	}
	return true
}

// MarkedGraph is one cell of the marked decomposition: a graph class
// representative together with the representative marking of one orbit.
type MarkedGraph struct {
	Graph   *fatgraph.Graph
	Marking Marking

	// Stabilizer holds the automorphisms whose cycle action fixes the
	// marking. It always contains the identity.
	Stabilizer []*fatgraph.Iso

	// OrbitSize is the number of markings in the orbit; it equals
	// |Aut| / |Stabilizer|.
	OrbitSize int
}

// IsOrientable reports whether the cell admits a consistent orientation:
// no stabilizer element acts on the edges with sign -1.
func (mg *MarkedGraph) IsOrientable() bool {
	for _, a := range mg.Stabilizer {
		if a.ReversesOrientation() {
			return false
		}
	}
	return true
}

// Orbits enumerates the marking orbits of g under its automorphism
// group, one MarkedGraph per orbit, in a deterministic order. The
// representative of each orbit is its lexicographically smallest
// marking.
func Orbits(g *fatgraph.Graph) []*MarkedGraph {
	return OrbitsWithAutomorphisms(g, fatgraph.Automorphisms(g))
}

// OrbitsWithAutomorphisms is like [Orbits] for callers that already hold
// the automorphism group of g.
func OrbitsWithAutomorphisms(g *fatgraph.Graph, auts []*fatgraph.Iso) []*MarkedGraph {
	n := g.NumBoundaryCycles()
	cycleMaps := make([][]int, len(auts))
	for i, a := range auts {
		cycleMaps[i] = a.CycleMap(g, g)
	}

	seen := make(map[string]bool)
	var out []*MarkedGraph

	// Heap-order permutation generation is not lexicographic, so orbit
	// representatives are minimized explicitly below.
	for _, perm := range combinatorics.Generate(n, 0) {
		m := Marking(perm)
		if seen[m.Key()] {
			continue
		}

		rep := m
		orbit := 0
		var stabilizer []*fatgraph.Iso
		for i, cm := range cycleMaps {
			img := m.Transport(cm)
			if img.Equal(m) {
				stabilizer = append(stabilizer, auts[i])
			}
			if !seen[img.Key()] {
				seen[img.Key()] = true
				orbit++
			}
			if lexLess(img, rep) {
				rep = img
			}
		}

		// The stabilizer of the representative is conjugate to the one
		// computed at m; orientability only depends on edge signs, which
		// are constant on conjugacy classes, so the computed stabilizer
		// serves as is.
		out = append(out, &MarkedGraph{
			Graph:      g,
			Marking:    rep,
			Stabilizer: stabilizer,
			OrbitSize:  orbit,
		})
	}
	return out
}

// OrientableOrbits returns only the orientable cells of [Orbits].
func OrientableOrbits(g *fatgraph.Graph) []*MarkedGraph {
	var out []*MarkedGraph
	for _, mg := range Orbits(g) {
		if mg.IsOrientable() {
			out = append(out, mg)
		}
	}
	return out
}

func lexLess(a, b Marking) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}
