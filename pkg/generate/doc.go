// Package generate enumerates isomorphism classes of fatgraphs for a
// surface type (g, n): genus g with n punctures.
//
// The enumeration is organized by level, the common edge count L of the
// graphs in one chain-complex degree. For fixed (g, n) the admissible
// levels run from 2g+n-1 (a single vertex) to 6g-6+3n (all vertices
// trivalent); Euler's formula pins the vertex count at each level, and
// the valence sequences are the partitions of 2L with parts of size at
// least 3.
//
// Within a level, candidate graphs come from perfect matchings of the
// half-edge slots laid out by each valence sequence; candidates with the
// wrong puncture count or genus are discarded and the survivors are
// deduplicated up to fatgraph isomorphism, yielding one representative
// per class in a deterministic order.
package generate
