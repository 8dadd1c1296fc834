package generate

import (
	"errors"

	"github.com/matzehuels/mgn/pkg/combinatorics"
	mgnerrors "github.com/matzehuels/mgn/pkg/errors"
)

// ErrInvalidSurface is returned when (g, n) does not describe a
// hyperbolic surface type: g must be non-negative, n positive, and the
// Euler characteristic 2-2g-n negative. The excluded cases (sphere with
// fewer than three punctures, torus without punctures) have no fatgraph
// cell decomposition.
var ErrInvalidSurface = errors.New("surface type is not hyperbolic")

// Level describes one chain-complex degree for a fixed surface type: the
// edge count shared by all graphs of the degree, the vertex count forced
// by Euler's formula, and the admissible valence sequences (partitions of
// 2*Edges into Vertices parts of size at least 3, each descending, in
// decreasing lexicographic order).
type Level struct {
	Edges    int
	Vertices int
	Valences [][]int
}

// ValidateSurface checks that (g, n) describes a hyperbolic surface type.
func ValidateSurface(g, n int) error {
	if g < 0 {
		return mgnerrors.Wrap(mgnerrors.ErrCodeInvalidGenus, ErrInvalidSurface,
			"genus %d is negative", g)
	}
	if n < 1 {
		return mgnerrors.Wrap(mgnerrors.ErrCodeInvalidInput, ErrInvalidSurface,
			"puncture count %d is not positive", n)
	}
	if 2-2*g-n >= 0 {
		return mgnerrors.Wrap(mgnerrors.ErrCodeInvalidInput, ErrInvalidSurface,
			"euler characteristic %d is not negative for g=%d n=%d", 2-2*g-n, g, n)
	}
	return nil
}

// LevelRange returns the smallest and largest edge counts occurring in
// the cell decomposition for (g, n): 2g+n-1 (one vertex) through 6g-6+3n
// (all vertices trivalent).
func LevelRange(g, n int) (min, max int, err error) {
	if err := ValidateSurface(g, n); err != nil {
		return 0, 0, err
	}
	return 2*g + n - 1, 6*g - 6 + 3*n, nil
}

// ValenceSequences returns every level of the cell decomposition for
// (g, n) with its valence sequences, ordered from fewest to most edges.
// Levels whose edge count admits no partition (which does not happen for
// hyperbolic (g, n)) would carry an empty Valences list.
func ValenceSequences(g, n int) ([]Level, error) {
	min, max, err := LevelRange(g, n)
	if err != nil {
		return nil, err
	}
	levels := make([]Level, 0, max-min+1)
	for edges := min; edges <= max; edges++ {
		vertices := edges - 2*g - n + 2
		levels = append(levels, Level{
			Edges:    edges,
			Vertices: vertices,
			Valences: combinatorics.Partitions(2*edges, vertices, 3),
		})
	}
	return levels, nil
}
