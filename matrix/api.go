// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks across the package.
//   - Each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//
// AI-Hints:
//   - Prefer passing *Dense to unlock fast-paths in kernels (flat-slice loops).
//   - Use NewIdentity/NewZeros to build matrices with explicit shape and neutral elements.

package matrix

import "math"

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// Thin alias of NewDense with an intention-revealing name.
// Complexity: O(r*c).
func NewZeros(rows, cols int, opts ...Option) (*Dense, error) {
	return NewDense(rows, cols, opts...)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// ToRows copies m into a freshly allocated [][]float64 (row-major).
// Complexity: O(r*c).
func ToRows(m Matrix) ([][]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ToRows", err)
	}
	rows, cols := m.Rows(), m.Cols()
	out := make([][]float64, rows)
	var err error
	for i := 0; i < rows; i++ {
		out[i] = make([]float64, cols)
		for j := 0; j < cols; j++ {
			if out[i][j], err = m.At(i, j); err != nil {
				return nil, matrixErrorf("ToRows", err)
			}
		}
	}

	return out, nil
}

// AllClose reports whether |a[i,j]-b[i,j]| ≤ atol + rtol·|b[i,j]| for every cell.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	var av, bv float64
	var err error
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf("AllClose", err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf("AllClose", err)
			}
			if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
				return false, nil
			}
		}
	}

	return true, nil
}

// Dot returns Σ x[i]·y[i]. Lengths must match.
// Errors: ErrDimensionMismatch.
// Complexity: O(n).
func Dot(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, matrixErrorf("Dot", ErrDimensionMismatch)
	}

	return dot(x, y), nil
}

// Norm2 returns the Euclidean norm of x.
// Complexity: O(n).
func Norm2(x []float64) float64 {
	return math.Sqrt(dot(x, x))
}

// dot is the unchecked inner product shared by the iterative kernels.
func dot(x, y []float64) float64 {
	s := ZeroSum
	for i := range x {
		s += x[i] * y[i]
	}

	return s
}
