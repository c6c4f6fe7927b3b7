// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernel tests.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/reservoir/matrix"
	"github.com/stretchr/testify/require"
)

// Absolute tolerance for floating comparisons of small fixtures.
const tolAbs = 1e-12

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels onto their At/Set fallback path.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// MustRows builds a *Dense from literal rows or fails the test.
func MustRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// RandomFill fills m with uniform values in [-1,1) from a fixed seed.
func RandomFill(t testing.TB, m *matrix.Dense, seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	require.NoError(t, m.Apply(func(_, _ int, _ float64) float64 {
		return 2*rng.Float64() - 1
	}))
}

// RequireClose asserts a and b have the same shape and agree cell-wise within tol.
func RequireClose(t testing.TB, a, b matrix.Matrix, tol float64) {
	t.Helper()
	ok, err := matrix.AllClose(a, b, 0, tol)
	require.NoError(t, err)
	require.Truef(t, ok, "matrices differ beyond %g:\n%v\n%v", tol, a, b)
}

// SPD returns AᵀA + n·I for a seeded random A, which is symmetric positive-definite.
func SPD(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	a := MustDense(t, n, n)
	RandomFill(t, a, seed)
	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	g, err := matrix.Mul(at, a)
	require.NoError(t, err)
	s, err := matrix.AddDiagonal(g, float64(n))
	require.NoError(t, err)

	return s.(*matrix.Dense)
}
