// Package combinatorics provides the counting primitives used throughout
// the fatgraph engine: integer partitions, permutation generation and
// parity, factorials, and rotation signs.
//
// Permutations are represented as []int slices mapping position i to p[i].
// Partitions are represented as descending []int slices.
//
// These helpers are deliberately allocation-simple: callers enumerate
// small symmetric groups (valences rarely exceed a dozen) and the
// dominant cost elsewhere is isomorphism search, not generation.
package combinatorics
