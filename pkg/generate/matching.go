package generate

import (
	"context"

	"github.com/matzehuels/mgn/pkg/fatgraph"
)

// checkEvery bounds how many matchings are visited between context
// checks. Enumeration of (2L-1)!! matchings can run long for larger
// surface types, so cancellation has to be observed mid-partition.
const checkEvery = 4096

// matcher enumerates perfect matchings of a fixed even number of slots.
// The first unmatched slot is always paired against every later unmatched
// slot, so each matching is visited exactly once.
type matcher struct {
	pair    []int
	visited int
}

func (m *matcher) run(ctx context.Context, visit func(pair []int) error) error {
	m.visited++
	if m.visited%checkEvery == 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
	}

	first := -1
	for i, p := range m.pair {
		if p < 0 {
			first = i
			break
		}
	}
	if first < 0 {
		return visit(m.pair)
	}
	for j := first + 1; j < len(m.pair); j++ {
		if m.pair[j] >= 0 {
			continue
		}
		m.pair[first], m.pair[j] = j, first
		if err := m.run(ctx, visit); err != nil {
			return err
		}
		m.pair[first], m.pair[j] = -1, -1
	}
	return nil
}

// enumerateMatchings visits every perfect matching of slots half-edge
// positions. Returns the first error from visit, or the context error on
// cancellation.
func enumerateMatchings(ctx context.Context, slots int, visit func(pair []int) error) error {
	pair := make([]int, slots)
	for i := range pair {
		pair[i] = -1
	}
	m := &matcher{pair: pair}
	return m.run(ctx, visit)
}

// assembleVertices turns a slot matching into vertex cyclic sequences for
// the given valence sequence. Edges are labeled in order of their first
// slot, so matchings differing only by an edge relabeling produce the
// same vertices.
func assembleVertices(valences []int, pair []int) []fatgraph.Vertex {
	labels := make([]int, len(pair))
	for i := range labels {
		labels[i] = -1
	}
	next := 0
	for i, j := range pair {
		if labels[i] >= 0 {
			continue
		}
		labels[i] = next
		labels[j] = next
		next++
	}

	vertices := make([]fatgraph.Vertex, len(valences))
	slot := 0
	for v, val := range valences {
		seq := make(fatgraph.Vertex, val)
		for k := 0; k < val; k++ {
			seq[k] = labels[slot]
			slot++
		}
		vertices[v] = seq
	}
	return vertices
}
