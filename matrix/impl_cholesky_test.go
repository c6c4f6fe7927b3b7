// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/reservoir/matrix"
	"github.com/stretchr/testify/require"
)

func TestCholesky_Known2x2(t *testing.T) {
	// [[4, 2], [2, 3]] = L·Lᵀ with L = [[2, 0], [1, sqrt(2)]].
	a := MustRows(t, [][]float64{{4, 2}, {2, 3}})
	L, err := matrix.Cholesky(a)
	require.NoError(t, err)
	RequireClose(t, MustRows(t, [][]float64{{2, 0}, {1, math.Sqrt2}}), L, tolAbs)
}

func TestCholesky_Reconstruction(t *testing.T) {
	t.Parallel()
	a := SPD(t, 8, 99)
	L, err := matrix.Cholesky(hide{a})
	require.NoError(t, err)

	// upper triangle of L is zero
	L.Do(func(i, j int, v float64) bool {
		if j > i {
			require.Zero(t, v)
		}
		return true
	})

	lt, err := matrix.Transpose(L)
	require.NoError(t, err)
	llt, err := matrix.Mul(L, lt)
	require.NoError(t, err)
	RequireClose(t, a, llt, 1e-9)
}

func TestCholesky_Errors(t *testing.T) {
	_, err := matrix.Cholesky(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.Cholesky(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	// indefinite: eigenvalues 3 and -1
	_, err = matrix.Cholesky(MustRows(t, [][]float64{{1, 2}, {2, 1}}))
	require.ErrorIs(t, err, matrix.ErrNotPositiveDefinite)

	// singular: rank one
	_, err = matrix.Cholesky(MustRows(t, [][]float64{{1, 1}, {1, 1}}))
	require.ErrorIs(t, err, matrix.ErrNotPositiveDefinite)

	// zero matrix
	_, err = matrix.Cholesky(MustDense(t, 3, 3))
	require.ErrorIs(t, err, matrix.ErrNotPositiveDefinite)
}

func TestCholesky_EpsilonRaisesFloor(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 0}, {0, 1e-6}})
	_, err := matrix.Cholesky(a)
	require.NoError(t, err)

	_, err = matrix.Cholesky(a, matrix.WithEpsilon(1e-3))
	require.ErrorIs(t, err, matrix.ErrNotPositiveDefinite)
}

func TestSolveSPD_Residual(t *testing.T) {
	t.Parallel()
	a := SPD(t, 6, 5)
	b := MustDense(t, 6, 2)
	RandomFill(t, b, 6)

	x, err := matrix.SolveSPD(a, b)
	require.NoError(t, err)
	require.Equal(t, 6, x.Rows())
	require.Equal(t, 2, x.Cols())

	ax, err := matrix.Mul(a, x)
	require.NoError(t, err)
	RequireClose(t, b, ax, 1e-9)
}

func TestSolveCholesky_Errors(t *testing.T) {
	L := MustRows(t, [][]float64{{2, 0}, {1, 1}})
	_, err := matrix.SolveCholesky(L, MustDense(t, 3, 1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.SolveCholesky(L, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	singular := MustRows(t, [][]float64{{0, 0}, {1, 1}})
	_, err = matrix.SolveCholesky(singular, MustDense(t, 2, 1))
	require.ErrorIs(t, err, matrix.ErrNotPositiveDefinite)
}
