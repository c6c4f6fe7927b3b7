// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/reservoir/matrix"
	"github.com/stretchr/testify/require"
)

func TestPanics_OptionConstructors(t *testing.T) {
	require.PanicsWithValue(t, "matrix: WithEpsilon: eps must be finite, non-negative", func() { matrix.WithEpsilon(-1) })
	require.Panics(t, func() { matrix.WithEpsilon(math.NaN()) })
	require.PanicsWithValue(t, "matrix: WithTolerance: tol must be finite, > 0", func() { matrix.WithTolerance(0) })
	require.Panics(t, func() { matrix.WithTolerance(math.Inf(1)) })
	require.PanicsWithValue(t, "matrix: WithMaxIterations: n must be > 0", func() { matrix.WithMaxIterations(0) })
	require.PanicsWithValue(t, "matrix: WithRand: rng must be non-nil", func() { matrix.WithRand(nil) })
}

// TestWithSeed_Reproducible checks that the seed alone decides the generated matrix.
func TestWithSeed_Reproducible(t *testing.T) {
	a, err := matrix.RandomUniform(4, 4, 1, 1, matrix.WithSeed(42))
	require.NoError(t, err)
	b, err := matrix.RandomUniform(4, 4, 1, 1, matrix.WithSeed(42))
	require.NoError(t, err)
	c, err := matrix.RandomUniform(4, 4, 1, 1, matrix.WithSeed(43))
	require.NoError(t, err)

	RequireClose(t, a, b, 0)
	same, err := matrix.AllClose(a, c, 0, 0)
	require.NoError(t, err)
	require.False(t, same)
}

// TestWithRand_SharedStream checks that a shared generator advances across calls.
func TestWithRand_SharedStream(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	first, err := matrix.RandomUniform(3, 3, 1, 1, matrix.WithRand(rng))
	require.NoError(t, err)
	second, err := matrix.RandomUniform(3, 3, 1, 1, matrix.WithRand(rng))
	require.NoError(t, err)

	same, err := matrix.AllClose(first, second, 0, 0)
	require.NoError(t, err)
	require.False(t, same)
}

// TestOptions_LastWriterWins ensures later options override earlier ones.
func TestOptions_LastWriterWins(t *testing.T) {
	a, err := matrix.RandomUniform(40, 40, 1, 1, matrix.WithSeed(8))
	require.NoError(t, err)

	_, err = matrix.SpectralRadius(a, matrix.WithMaxIterations(1), matrix.WithMaxIterations(matrix.DefaultMaxIterations))
	require.NoError(t, err)

	_, err = matrix.SpectralRadius(a, matrix.WithMaxIterations(matrix.DefaultMaxIterations), matrix.WithMaxIterations(1))
	require.ErrorIs(t, err, matrix.ErrNotConverged)
}

func TestRandomUniform(t *testing.T) {
	m, err := matrix.RandomUniform(20, 30, 0.5, 1, matrix.WithSeed(1))
	require.NoError(t, err)
	m.Do(func(_, _ int, v float64) bool {
		require.LessOrEqual(t, math.Abs(v), 0.5)
		return true
	})

	sparse, err := matrix.RandomUniform(50, 50, 1, 0.1, matrix.WithSeed(1))
	require.NoError(t, err)
	nonzero := 0
	sparse.Do(func(_, _ int, v float64) bool {
		if v != 0 {
			nonzero++
		}
		return true
	})
	// 2500 Bernoulli(0.1) trials: mean 250, sd 15.
	require.InDelta(t, 250, nonzero, 90)

	_, err = matrix.RandomUniform(0, 3, 1, 1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.RandomUniform(3, 3, -1, 1)
	require.ErrorIs(t, err, matrix.ErrInvalidParameter)
	_, err = matrix.RandomUniform(3, 3, 1, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidParameter)
	_, err = matrix.RandomUniform(3, 3, 1, 1.5)
	require.ErrorIs(t, err, matrix.ErrInvalidParameter)
}
