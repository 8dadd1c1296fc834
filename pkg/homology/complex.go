package homology

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mgn/pkg/combinatorics"
	"github.com/matzehuels/mgn/pkg/errors"
	"github.com/matzehuels/mgn/pkg/fatgraph"
	"github.com/matzehuels/mgn/pkg/generate"
	"github.com/matzehuels/mgn/pkg/marking"
)

// Level is one chain group: the orientable marked cells with a fixed
// edge count, flattened across isomorphism classes in enumeration order.
type Level struct {
	Edges int
	Cells []*marking.MarkedGraph

	classes []*classInfo
}

// ClassGraphs returns the class representatives of the level in
// enumeration order.
func (l *Level) ClassGraphs() []*fatgraph.Graph {
	out := make([]*fatgraph.Graph, len(l.classes))
	for i, info := range l.classes {
		out[i] = info.graph
	}
	return out
}

// classInfo caches per-class data needed to resolve boundary terms: the
// automorphism group, its cycle actions, and the positions of the
// class's orientable cells inside the level.
type classInfo struct {
	graph     *fatgraph.Graph
	auts      []*fatgraph.Iso
	cycleMaps [][]int
	cellIdx   []int                  // aligned with cells
	cells     []*marking.MarkedGraph // orientable orbits of this class
}

// Complex is the marked fatgraph chain complex of M_{g,n}.
// Boundaries[i] is the matrix of the boundary operator from Levels[i]
// into Levels[i-1]; Boundaries[0] maps the bottom level to the trivial
// group and is always the 0xdim zero matrix.
type Complex struct {
	Genus     int
	Punctures int
	MinEdges  int
	MaxEdges  int

	Levels     []*Level
	Boundaries []*Matrix
}

// Builder constructs chain complexes. It is stateless apart from the
// logger.
type Builder struct {
	Logger *log.Logger
}

// NewBuilder creates a builder. A nil logger falls back to the package
// default.
func NewBuilder(logger *log.Logger) *Builder {
	if logger == nil {
		logger = log.Default()
	}
	return &Builder{Logger: logger}
}

// Build enumerates the cells for (g, n) and assembles every boundary
// matrix. The result is deterministic: cells are ordered by class
// enumeration order and orbit representative.
func (b *Builder) Build(ctx context.Context, g, n int) (*Complex, error) {
	classes, err := generate.NewGenerator(b.Logger).Graphs(ctx, g, n)
	if err != nil {
		return nil, err
	}
	return b.BuildFromClasses(ctx, g, n, classes)
}

// BuildFromClasses assembles the complex from already-enumerated classes,
// typically restored from a checkpoint. The class slice must cover the
// full level range of (g, n) in ascending order.
func (b *Builder) BuildFromClasses(ctx context.Context, g, n int, classes []generate.LevelClasses) (*Complex, error) {
	min, max, err := generate.LevelRange(g, n)
	if err != nil {
		return nil, err
	}
	if len(classes) != max-min+1 {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"got %d levels for (%d, %d), want %d", len(classes), g, n, max-min+1)
	}
	for i, lc := range classes {
		if lc.Edges != min+i {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"level %d has %d edges, want %d", i, lc.Edges, min+i)
		}
	}

	c := &Complex{Genus: g, Punctures: n, MinEdges: min, MaxEdges: max}
	for _, lc := range classes {
		level := &Level{Edges: lc.Edges}
		for _, cls := range lc.Classes {
			auts := fatgraph.Automorphisms(cls)
			info := &classInfo{graph: cls, auts: auts}
			for _, a := range auts {
				info.cycleMaps = append(info.cycleMaps, a.CycleMap(cls, cls))
			}
			for _, mg := range marking.OrbitsWithAutomorphisms(cls, auts) {
				if !mg.IsOrientable() {
					continue
				}
				info.cellIdx = append(info.cellIdx, len(level.Cells))
				info.cells = append(info.cells, mg)
				level.Cells = append(level.Cells, mg)
			}
			level.classes = append(level.classes, info)
		}
		c.Levels = append(c.Levels, level)
		b.Logger.Debug("assembled chain group",
			"edges", level.Edges,
			"classes", len(level.classes),
			"cells", len(level.Cells))
	}

	c.Boundaries = make([]*Matrix, len(c.Levels))
	c.Boundaries[0] = NewMatrix(0, len(c.Levels[0].Cells))
	for i := 1; i < len(c.Levels); i++ {
		start := time.Now()
		m, err := boundaryMatrix(ctx, c.Levels[i], c.Levels[i-1])
		if err != nil {
			return nil, err
		}
		c.Boundaries[i] = m
		b.Logger.Debug("assembled boundary operator",
			"from_edges", c.Levels[i].Edges,
			"shape", []int{m.Rows(), m.Cols()},
			"duration", time.Since(start))
	}
	return c, nil
}

// boundaryMatrix builds the boundary operator from src into dst, one
// column per source cell.
func boundaryMatrix(ctx context.Context, src, dst *Level) (*Matrix, error) {
	m := NewMatrix(len(dst.Cells), len(src.Cells))
	for col, cell := range src.Cells {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		g := cell.Graph
		for e := 0; e < g.NumEdges(); e++ {
			if g.IsLoop(e) {
				continue
			}
			contraction, err := g.Contract(e)
			if err != nil {
				return nil, err
			}
			transported := cell.Marking.Transport(contractionCycleMap(g, contraction))
			row, sign, ok := dst.resolve(contraction.Result, transported)
			if !ok {
				// The image lands in a non-orientable orbit and
				// contributes nothing.
				continue
			}
			m.Add(row, col, int64(combinatorics.MinusOneExp(e)*sign))
		}
	}
	return m, nil
}

// contractionCycleMap returns the bijection from boundary cycles of g to
// boundary cycles of the contraction result. Every cycle of g keeps at
// least one corner under a non-loop contraction, which pins its image.
func contractionCycleMap(g *fatgraph.Graph, c *fatgraph.Contraction) []int {
	out := make([]int, g.NumBoundaryCycles())
	for i := range out {
		out[i] = -1
		for _, h := range g.CycleHalfEdges(i) {
			if mapped := c.CornerMap[h]; mapped >= 0 {
				out[i] = c.Result.CycleOf(mapped)
				break
			}
		}
	}
	return out
}

// resolve locates the cell of the level matching graph h with marking m,
// returning its index and the sign of the identification (edge
// permutation of the isomorphism times that of the marking-aligning
// automorphism). ok is false when the orbit of m is non-orientable.
func (l *Level) resolve(h *fatgraph.Graph, m marking.Marking) (idx, sign int, ok bool) {
	key := h.InvariantKey()
	for _, info := range l.classes {
		if info.graph.InvariantKey() != key {
			continue
		}
		isos := fatgraph.Isomorphisms(h, info.graph, fatgraph.WithLimit(1))
		if len(isos) == 0 {
			continue
		}
		iso := isos[0]
		onRep := m.Transport(iso.CycleMap(h, info.graph))
		for ci, cell := range info.cells {
			for ai, cm := range info.cycleMaps {
				if onRep.Transport(cm).Equal(cell.Marking) {
					return info.cellIdx[ci], iso.EdgeSign() * info.auts[ai].EdgeSign(), true
				}
			}
		}
		// Classes within a level are pairwise non-isomorphic, so the
		// orbit of m must be one of the non-orientable ones.
		return 0, 0, false
	}
	// Contraction preserves genus and puncture count, so the class is
	// always present in the previous level.
	panic(errors.New(errors.ErrCodeInternal,
		"no class for contracted graph %v at level %d", h, l.Edges))
}

// Verify checks that consecutive boundary operators compose to zero.
func (c *Complex) Verify() error {
	for i := 2; i < len(c.Boundaries); i++ {
		if !c.Boundaries[i-1].Mul(c.Boundaries[i]).IsZero() {
			return errors.New(errors.ErrCodeInternal,
				"boundary operators at levels %d and %d do not compose to zero",
				c.Levels[i].Edges, c.Levels[i-1].Edges)
		}
	}
	return nil
}
