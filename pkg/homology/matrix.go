package homology

import (
	"fmt"
	"math/big"
	"strings"
)

// Matrix is a dense integer matrix used for boundary operators. Entries
// default to zero; boundary matrices are sparse in practice but stay
// small enough per level that dense storage keeps elimination simple.
type Matrix struct {
	rows, cols int
	entries    []*big.Int
}

// NewMatrix returns the zero matrix of the given shape. Zero-dimensional
// shapes are valid and describe maps to or from the trivial group.
func NewMatrix(rows, cols int) *Matrix {
	m := &Matrix{rows: rows, cols: cols, entries: make([]*big.Int, rows*cols)}
	for i := range m.entries {
		m.entries[i] = new(big.Int)
	}
	return m
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// At returns the entry at (row, col). The returned value must not be
// modified; use [Matrix.Add] or [Matrix.Set].
func (m *Matrix) At(row, col int) *big.Int { return m.entries[row*m.cols+col] }

// Set assigns the entry at (row, col).
func (m *Matrix) Set(row, col int, v int64) {
	m.entries[row*m.cols+col].SetInt64(v)
}

// Add adds delta to the entry at (row, col).
func (m *Matrix) Add(row, col int, delta int64) {
	e := m.entries[row*m.cols+col]
	e.Add(e, big.NewInt(delta))
}

// IsZero reports whether every entry vanishes.
func (m *Matrix) IsZero() bool {
	for _, e := range m.entries {
		if e.Sign() != 0 {
			return false
		}
	}
	return true
}

// Mul returns the matrix product m * other. The column count of m must
// equal the row count of other.
func (m *Matrix) Mul(other *Matrix) *Matrix {
	if m.cols != other.rows {
		panic(fmt.Sprintf("shape mismatch: %dx%d * %dx%d", m.rows, m.cols, other.rows, other.cols))
	}
	out := NewMatrix(m.rows, other.cols)
	tmp := new(big.Int)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < other.cols; j++ {
			acc := out.entries[i*out.cols+j]
			for k := 0; k < m.cols; k++ {
				tmp.Mul(m.At(i, k), other.At(k, j))
				acc.Add(acc, tmp)
			}
		}
	}
	return out
}

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	out := &Matrix{rows: m.rows, cols: m.cols, entries: make([]*big.Int, len(m.entries))}
	for i, e := range m.entries {
		out.entries[i] = new(big.Int).Set(e)
	}
	return out
}

// String renders the matrix row by row, for logs and test failures.
func (m *Matrix) String() string {
	var b strings.Builder
	for i := 0; i < m.rows; i++ {
		b.WriteByte('[')
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(m.At(i, j).String())
		}
		b.WriteString("]\n")
	}
	return b.String()
}
