// Package fatgraph implements the combinatorial ribbon-graph model:
// graphs with a cyclic ordering of edge ends at every vertex, encoding an
// embedding into an oriented surface.
//
// # Representation
//
// A [Vertex] is the cyclic sequence of edge labels attached to it, in
// ribbon order. Edge labels run 0..L-1 and each label appears in exactly
// two vertex slots across the whole graph (twice in the same vertex for a
// self-loop). A slot occurrence is addressed by a [HalfEdge]: a stable
// integer index into the flattened corner arena, so derived graphs
// (contractions) never mutate their parent.
//
// A [Graph] is immutable after construction. [New] validates the model
// invariants (every label used exactly twice, valence >= 3, connectivity)
// and precomputes the half-edge adjacency tables and boundary cycles that
// isomorphism search, marking enumeration and edge contraction build on.
//
// # Boundary cycles
//
// Faces of the ribbon embedding are traced by alternating "next corner in
// cyclic order" and "cross the edge" steps; see [Graph.BoundaryCycles].
// For a graph of genus g the number of cycles n satisfies Euler's formula
// V - L + n = 2 - 2g.
//
// # Isomorphism
//
// Isomorphisms(g1, g2) enumerates the structure-preserving relabelings
// between two graphs; Automorphisms(g) the self-maps. An automorphism
// carries its action on vertices, half-edges and edges, and knows whether
// it reverses the orientation of the cell the graph labels (the sign of
// its edge permutation).
package fatgraph
