// SPDX-License-Identifier: MIT
package reservoir_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/reservoir/matrix"
	"github.com/katalvlaran/reservoir/reservoir"
	"github.com/stretchr/testify/require"
)

// smallConfig is a cheap scalar-in/scalar-out reservoir.
func smallConfig() reservoir.Config {
	return reservoir.Config{
		ReservoirSize:  20,
		InputDim:       1,
		OutputDim:      1,
		SpectralRadius: 0.9,
		LeakingRate:    0.3,
	}
}

// MustEngine constructs an engine or fails the test.
func MustEngine(t testing.TB, cfg reservoir.Config, opts ...reservoir.Option) *reservoir.Engine {
	t.Helper()
	e, err := reservoir.New(cfg, opts...)
	require.NoError(t, err)

	return e
}

// sineSet returns n samples of input sin(0.1·i)+noise and target sin(0.1·i+0.1).
func sineSet(n int, seed int64) (inputs, targets [][]float64) {
	rng := rand.New(rand.NewSource(seed))
	inputs = make([][]float64, n)
	targets = make([][]float64, n)
	for i := 0; i < n; i++ {
		x := 0.1 * float64(i)
		inputs[i] = []float64{math.Sin(x) + 0.1*rng.Float64()}
		targets[i] = []float64{math.Sin(x + 0.1)}
	}

	return inputs, targets
}

// readout extracts Wout as rows for exact comparisons.
func readout(t testing.TB, e *reservoir.Engine) [][]float64 {
	t.Helper()
	w, ok := e.Readout()
	require.True(t, ok, "engine is not trained")
	rows, err := matrix.ToRows(w)
	require.NoError(t, err)

	return rows
}

// weights extracts a weight matrix as rows.
func weights(t testing.TB, m matrix.Matrix) [][]float64 {
	t.Helper()
	rows, err := matrix.ToRows(m)
	require.NoError(t, err)

	return rows
}

// mse of scalar predictions collected by replaying inputs through Update.
func replayMSE(t testing.TB, e *reservoir.Engine, inputs, targets [][]float64) float64 {
	t.Helper()
	var sum float64
	for i := range inputs {
		y, err := e.Update(inputs[i])
		require.NoError(t, err)
		d := y[0] - targets[i][0]
		sum += d * d
	}

	return sum / float64(len(inputs))
}
