// Package homology assembles the marked fatgraph chain complex of a
// moduli space M_{g,n} and computes its homology ranks with exact
// integer arithmetic.
//
// The chain group of level L is spanned by the orientable marked
// isomorphism classes with L edges. The boundary operator contracts each
// non-loop edge, transports the marking into the representative of the
// resulting class, and accumulates the product of three signs: the
// position of the contracted edge, the edge permutation of the
// identification with the representative, and the edge permutation of
// the automorphism aligning the transported marking with the orbit
// representative.
//
// Ranks of the boundary matrices come from a [Ranker]; the default is
// fraction-free Gaussian elimination over the integers, so results are
// exact for any matrix size.
package homology
