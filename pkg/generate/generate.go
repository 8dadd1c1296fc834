package generate

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mgn/pkg/fatgraph"
)

// LevelClasses holds the isomorphism-class representatives of one level:
// all classes of fatgraphs for the surface type with the given edge
// count. Representatives are the first member of their class in
// enumeration order, which makes the output deterministic.
type LevelClasses struct {
	Edges   int
	Classes []*fatgraph.Graph
}

// Generator enumerates fatgraph classes. It is stateless apart from the
// logger; a single Generator can serve concurrent enumerations.
type Generator struct {
	Logger *log.Logger
}

// NewGenerator creates a generator. A nil logger falls back to the
// package default.
func NewGenerator(logger *log.Logger) *Generator {
	if logger == nil {
		logger = log.Default()
	}
	return &Generator{Logger: logger}
}

// Graphs enumerates all isomorphism classes of fatgraphs for (g, n),
// level by level from fewest to most edges. Every returned level is
// present even when empty, so the slice always spans the full level
// range.
func (gen *Generator) Graphs(ctx context.Context, g, n int) ([]LevelClasses, error) {
	levels, err := ValenceSequences(g, n)
	if err != nil {
		return nil, err
	}

	out := make([]LevelClasses, 0, len(levels))
	for _, level := range levels {
		start := time.Now()
		classes, err := gen.levelClasses(ctx, g, n, level)
		if err != nil {
			return nil, err
		}
		gen.Logger.Info("enumerated level",
			"genus", g, "punctures", n,
			"edges", level.Edges,
			"classes", len(classes),
			"duration", time.Since(start))
		out = append(out, LevelClasses{Edges: level.Edges, Classes: classes})
	}
	return out, nil
}

// LevelGraphs enumerates the classes of a single level.
func (gen *Generator) LevelGraphs(ctx context.Context, g, n, edges int) (LevelClasses, error) {
	min, max, err := LevelRange(g, n)
	if err != nil {
		return LevelClasses{}, err
	}
	if edges < min || edges > max {
		return LevelClasses{Edges: edges}, nil
	}
	levels, err := ValenceSequences(g, n)
	if err != nil {
		return LevelClasses{}, err
	}
	level := levels[edges-min]
	classes, err := gen.levelClasses(ctx, g, n, level)
	if err != nil {
		return LevelClasses{}, err
	}
	return LevelClasses{Edges: edges, Classes: classes}, nil
}

func (gen *Generator) levelClasses(ctx context.Context, g, n int, level Level) ([]*fatgraph.Graph, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var classes []*fatgraph.Graph
	buckets := make(map[string][]*fatgraph.Graph)
	candidates, kept := 0, 0

	for _, valences := range level.Valences {
		slots := 2 * level.Edges
		err := enumerateMatchings(ctx, slots, func(pair []int) error {
			candidates++
			vertices := assembleVertices(valences, pair)
			cand, err := fatgraph.New(vertices)
			if err != nil {
				// Disconnected matchings are expected, not failures.
				return nil
			}
			if cand.NumBoundaryCycles() != n || cand.Genus() != g {
				return nil
			}
			key := cand.InvariantKey()
			for _, rep := range buckets[key] {
				if fatgraph.AreIsomorphic(cand, rep) {
					return nil
				}
			}
			buckets[key] = append(buckets[key], cand)
			classes = append(classes, cand)
			kept++
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	gen.Logger.Debug("level enumeration finished",
		"edges", level.Edges,
		"matchings", candidates,
		"classes", kept)
	return classes, nil
}

// Graphs enumerates fatgraph classes with the default generator.
func Graphs(ctx context.Context, g, n int) ([]LevelClasses, error) {
	return NewGenerator(nil).Graphs(ctx, g, n)
}
