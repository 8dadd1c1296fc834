package homology

import (
	"context"
	"math/big"
)

// Ranker computes the rank of an integer matrix. The chain complex only
// needs ranks, never kernels or images, so alternative backends (modular
// arithmetic, external solvers) can be plugged in behind this interface.
type Ranker interface {
	Rank(ctx context.Context, m *Matrix) (int, error)
}

// BareissRanker computes exact ranks by fraction-free Gaussian
// elimination (Bareiss). All intermediate values stay integral, so no
// rounding can occur; entries grow at most like minors of the input.
// The zero value is ready to use.
type BareissRanker struct{}

// Rank returns the rank of m over the rationals (equivalently, over the
// integers, since rank ignores torsion).
func (BareissRanker) Rank(ctx context.Context, m *Matrix) (int, error) {
	a := m.Clone()
	rows, cols := a.Rows(), a.Cols()
	prev := big.NewInt(1)
	tmp1, tmp2 := new(big.Int), new(big.Int)

	rank := 0
	for col := 0; col < cols && rank < rows; col++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		// Find a pivot in this column at or below the current rank row.
		pivot := -1
		for r := rank; r < rows; r++ {
			if a.At(r, col).Sign() != 0 {
				pivot = r
				break
			}
		}
		if pivot < 0 {
			continue
		}
		if pivot != rank {
			a.swapRows(pivot, rank)
		}

		p := a.At(rank, col)
		for r := rank + 1; r < rows; r++ {
			lead := new(big.Int).Set(a.At(r, col))
			for c := col; c < cols; c++ {
				tmp1.Mul(a.At(r, c), p)
				tmp2.Mul(a.At(rank, c), lead)
				tmp1.Sub(tmp1, tmp2)
				// Exact by the Bareiss identity: prev divides the
				// 2x2 minor.
				a.At(r, c).Quo(tmp1, prev)
			}
		}
		prev = new(big.Int).Set(p)
		rank++
	}
	return rank, nil
}

func (m *Matrix) swapRows(i, j int) {
	for c := 0; c < m.cols; c++ {
		m.entries[i*m.cols+c], m.entries[j*m.cols+c] = m.entries[j*m.cols+c], m.entries[i*m.cols+c]
	}
}
