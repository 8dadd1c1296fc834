// Package pkg provides the core libraries for mgn, a combinatorial
// homology engine for moduli spaces of punctured Riemann surfaces.
//
// # Overview
//
// The moduli space M_{g,n} of genus-g surfaces with n punctures carries
// a cell decomposition indexed by fatgraphs: graphs with a cyclic order
// of the edges at every vertex. mgn enumerates those cells and computes
// the homology of the resulting chain complex. The pkg directory is
// organized along that pipeline:
//
//  1. [combinatorics] - Permutations, signs, integer partitions
//  2. [fatgraph] - The ribbon-graph model: validation, boundary cycles,
//     edge contraction, isomorphism and automorphism search
//  3. [generate] - Enumeration of isomorphism classes per (g, n)
//  4. [marking] - Orbits of boundary-cycle numberings under Aut
//  5. [homology] - Chain complex, boundary operators, exact ranks,
//     Euler characteristics
//  6. [checkpoint] - Persisted enumeration state (memory, file, redis)
//  7. [errors] - Coded errors shared by the engine and the CLI
//
// # Data flow
//
//	(g, n)
//	   ↓
//	[generate] valence sequences → matchings → class representatives
//	   ↓
//	[marking] Aut-orbits of boundary numberings, orientability
//	   ↓
//	[homology] boundary matrices → exact ranks → Betti numbers
//
// # Quick start
//
// Compute the Betti numbers of M_{1,1}:
//
//	res, err := homology.Compute(ctx, 1, 1, homology.Options{})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Betti) // [1 0 0]
//
// Enumerate the graph classes only:
//
//	levels, err := generate.Graphs(ctx, 0, 4)
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/fatgraph/... # Specific package
//
// [combinatorics]: https://pkg.go.dev/github.com/matzehuels/mgn/pkg/combinatorics
// [fatgraph]: https://pkg.go.dev/github.com/matzehuels/mgn/pkg/fatgraph
// [generate]: https://pkg.go.dev/github.com/matzehuels/mgn/pkg/generate
// [marking]: https://pkg.go.dev/github.com/matzehuels/mgn/pkg/marking
// [homology]: https://pkg.go.dev/github.com/matzehuels/mgn/pkg/homology
// [checkpoint]: https://pkg.go.dev/github.com/matzehuels/mgn/pkg/checkpoint
// [errors]: https://pkg.go.dev/github.com/matzehuels/mgn/pkg/errors
package pkg
