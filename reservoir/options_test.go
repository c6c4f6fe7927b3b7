// SPDX-License-Identifier: MIT
package reservoir_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/reservoir/reservoir"
	"github.com/stretchr/testify/require"
)

func TestOptionPanics(t *testing.T) {
	cases := []struct {
		name string
		msg  string
		fn   func()
	}{
		{"nil rand", "reservoir: WithRand(nil)", func() { reservoir.WithRand(nil) }},
		{"negative scaling", "reservoir: WithInputScaling(s<0 or non-finite)", func() { reservoir.WithInputScaling(-1) }},
		{"NaN scaling", "reservoir: WithInputScaling(s<0 or non-finite)", func() { reservoir.WithInputScaling(math.NaN()) }},
		{"Inf ridge", "reservoir: WithRidge(non-finite)", func() { reservoir.WithRidge(math.Inf(1)) }},
		{"zero connectivity", "reservoir: WithConnectivity(p not in (0,1])", func() { reservoir.WithConnectivity(0) }},
		{"connectivity above one", "reservoir: WithConnectivity(p not in (0,1])", func() { reservoir.WithConnectivity(1.5) }},
		{"negative washout", "reservoir: WithWashout(k<0)", func() { reservoir.WithWashout(-1) }},
		{"zero tolerance", "reservoir: WithSpectralTolerance(tol<=0 or non-finite)", func() { reservoir.WithSpectralTolerance(0) }},
		{"zero iterations", "reservoir: WithMaxIterations(n<=0)", func() { reservoir.WithMaxIterations(0) }},
		{"unknown method", "reservoir: WithSpectralMethod(unknown)", func() { reservoir.WithSpectralMethod(reservoir.SpectralMethod(9)) }},
		{"nil logger", "reservoir: WithLogger(nil)", func() { reservoir.WithLogger(nil) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.PanicsWithValue(t, tc.msg, tc.fn)
		})
	}
}

func TestWithRandMatchesWithSeed(t *testing.T) {
	a := MustEngine(t, smallConfig(), reservoir.WithSeed(21))
	b := MustEngine(t, smallConfig(), reservoir.WithRand(rand.New(rand.NewSource(21))))
	require.Equal(t, weights(t, a.RecurrentWeights()), weights(t, b.RecurrentWeights()))
	require.Equal(t, weights(t, a.InputWeights()), weights(t, b.InputWeights()))
}

func TestDefaultSeedIsStable(t *testing.T) {
	a := MustEngine(t, smallConfig())
	b := MustEngine(t, smallConfig(), reservoir.WithSeed(reservoir.DefaultSeed))
	require.Equal(t, weights(t, a.RecurrentWeights()), weights(t, b.RecurrentWeights()))
}

func TestLastOptionWins(t *testing.T) {
	a := MustEngine(t, smallConfig(), reservoir.WithSeed(1), reservoir.WithSeed(2))
	b := MustEngine(t, smallConfig(), reservoir.WithSeed(2))
	require.Equal(t, weights(t, a.RecurrentWeights()), weights(t, b.RecurrentWeights()))
}

func TestSpectralMethodString(t *testing.T) {
	require.Equal(t, "arnoldi", reservoir.MethodArnoldi.String())
	require.Equal(t, "eigen", reservoir.MethodEigen.String())
	require.Equal(t, "SpectralMethod(7)", reservoir.SpectralMethod(7).String())
}
