package homology

import (
	"context"
	"math/big"

	"github.com/matzehuels/mgn/pkg/combinatorics"
	"github.com/matzehuels/mgn/pkg/errors"
	"github.com/matzehuels/mgn/pkg/fatgraph"
	"github.com/matzehuels/mgn/pkg/generate"
)

// bernoulli returns the Bernoulli number B_m (convention B_1 = -1/2),
// via the defining recurrence sum_{k=0}^{m} C(m+1,k) B_k = 0.
func bernoulli(m int) *big.Rat {
	b := make([]*big.Rat, m+1)
	b[0] = big.NewRat(1, 1)
	for j := 1; j <= m; j++ {
		sum := new(big.Rat)
		binom := big.NewInt(1)
		for k := 0; k < j; k++ {
			// binom = C(j+1, k), updated incrementally.
			if k > 0 {
				binom.Mul(binom, big.NewInt(int64(j+2-k)))
				binom.Quo(binom, big.NewInt(int64(k)))
			}
			term := new(big.Rat).SetInt(binom)
			sum.Add(sum, term.Mul(term, b[k]))
		}
		b[j] = sum.Quo(sum, new(big.Rat).SetInt64(int64(-(j + 1))))
	}
	return b[m]
}

// OrbifoldEuler returns the Harer-Zagier orbifold Euler characteristic
// of M_{g,n}: chi(M_{g,1}) = -B_{2g}/(2g) = zeta(1-2g) for g >= 1,
// chi(M_{0,3}) = 1, extended by chi(M_{g,n+1}) = (2-2g-n) chi(M_{g,n}).
func OrbifoldEuler(g, n int) (*big.Rat, error) {
	if err := generate.ValidateSurface(g, n); err != nil {
		return nil, err
	}
	var chi *big.Rat
	var base int
	if g == 0 {
		chi = big.NewRat(1, 1)
		base = 3
	} else {
		chi = bernoulli(2 * g)
		chi.Quo(chi, new(big.Rat).SetInt64(int64(-2*g)))
		base = 1
	}
	for k := base; k < n; k++ {
		chi.Mul(chi, new(big.Rat).SetInt64(int64(2-2*g-k)))
	}
	return chi, nil
}

// ComplexOrbifoldEuler recomputes the orbifold Euler characteristic from
// the cell decomposition: the sum over unmarked graph classes of
// (-1)^(E+n) n!/|Aut|. The (-1)^n accounts for the projectivization
// fibers of the decorated space, one per puncture. Comparing the result
// against [OrbifoldEuler] is a strong global consistency check on the
// generator and the automorphism engine.
func ComplexOrbifoldEuler(ctx context.Context, g, n int) (*big.Rat, error) {
	levels, err := generate.Graphs(ctx, g, n)
	if err != nil {
		return nil, err
	}
	factorial := int64(combinatorics.Factorial(n))
	chi := new(big.Rat)
	for _, lvl := range levels {
		sign := int64(combinatorics.MinusOneExp(lvl.Edges + n))
		for _, cls := range lvl.Classes {
			aut := int64(len(fatgraph.Automorphisms(cls)))
			chi.Add(chi, big.NewRat(sign*factorial, aut))
		}
	}
	return chi, nil
}

// IntegralEuler returns the Euler characteristic of M_{g,n} as a
// topological space, where it is known in closed form: genus zero has
// chi = (-1)^(n-3) (n-3)!, and small positive genus is tabulated. Other
// surface types return an UNKNOWN_EULER_CHARACTERISTICS error rather
// than a guess.
func IntegralEuler(g, n int) (int, error) {
	if err := generate.ValidateSurface(g, n); err != nil {
		return 0, err
	}
	if g == 0 {
		return combinatorics.MinusOneExp(n-3) * combinatorics.Factorial(n-3), nil
	}
	known := map[[2]int]int{
		{1, 1}: 1,
		{1, 2}: 1,
		{2, 1}: 2,
	}
	if chi, ok := known[[2]int{g, n}]; ok {
		return chi, nil
	}
	return 0, errors.New(errors.ErrCodeUnknownEuler,
		"no closed form for the Euler characteristic of M_{%d,%d}", g, n)
}
