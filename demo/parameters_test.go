// SPDX-License-Identifier: MIT
package demo_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/reservoir/demo"
	"github.com/katalvlaran/reservoir/reservoir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultParameters(t *testing.T) {
	p := demo.DefaultParameters()
	all := p.All()
	require.Len(t, all, 4)

	want := []struct {
		id                   demo.ParameterID
		key, name            string
		value, min, max, stp float64
	}{
		{demo.ReservoirSize, "reservoir_size", "Reservoir Size", 100, 10, 1000, 10},
		{demo.SpectralRadius, "spectral_radius", "Spectral Radius", 0.9, 0, 2, 0.1},
		{demo.InputScaling, "input_scaling", "Input Scaling", 0.1, 0, 1, 0.01},
		{demo.LeakingRate, "leaking_rate", "Leaking Rate", 0.3, 0, 1, 0.01},
	}
	for i, w := range want {
		got := all[i]
		assert.Equal(t, w.id, got.ID)
		assert.Equal(t, w.key, got.Key)
		assert.Equal(t, w.name, got.Name)
		assert.Equal(t, w.value, got.Value)
		assert.Equal(t, w.min, got.Min)
		assert.Equal(t, w.max, got.Max)
		assert.Equal(t, w.stp, got.Step)
		assert.Equal(t, w.name, w.id.String())
		assert.Equal(t, w.key, w.id.Key())
	}

	assert.Equal(t, reservoir.Config{
		ReservoirSize: 100, InputDim: 1, OutputDim: 1, SpectralRadius: 0.9, LeakingRate: 0.3,
	}, p.Config())
	assert.Equal(t, 0.1, p.InputScaling())
}

func TestWithReturnsNewSet(t *testing.T) {
	p := demo.DefaultParameters()
	q, err := p.With(demo.SpectralRadius, 1.2)
	require.NoError(t, err)
	assert.Equal(t, 1.2, q.Value(demo.SpectralRadius))
	assert.Equal(t, 0.9, p.Value(demo.SpectralRadius))

	// Mutating the All() copy does not leak back.
	all := q.All()
	all[0].Value = 7
	assert.Equal(t, 100.0, q.Value(demo.ReservoirSize))

	// Bounds are inclusive.
	_, err = p.With(demo.LeakingRate, 1)
	require.NoError(t, err)
	_, err = p.With(demo.ReservoirSize, 10)
	require.NoError(t, err)
}

func TestWithRejects(t *testing.T) {
	p := demo.DefaultParameters()
	cases := []struct {
		name string
		id   demo.ParameterID
		v    float64
		err  error
	}{
		{"size below", demo.ReservoirSize, 9, demo.ErrParameterOutOfRange},
		{"size above", demo.ReservoirSize, 1010, demo.ErrParameterOutOfRange},
		{"size fractional", demo.ReservoirSize, 55.5, demo.ErrParameterOutOfRange},
		{"radius above", demo.SpectralRadius, 2.01, demo.ErrParameterOutOfRange},
		{"scaling negative", demo.InputScaling, -0.01, demo.ErrParameterOutOfRange},
		{"leak NaN", demo.LeakingRate, math.NaN(), demo.ErrParameterOutOfRange},
		{"unknown id", demo.ParameterID(4), 1, demo.ErrUnknownParameter},
		{"negative id", demo.ParameterID(-1), 1, demo.ErrUnknownParameter},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := p.With(tc.id, tc.v)
			require.ErrorIs(t, err, tc.err)
			require.Equal(t, p, q)
		})
	}
}

func TestParseParameterID(t *testing.T) {
	for _, s := range []string{"leaking_rate", "Leaking Rate", "LEAKING_RATE", " leaking rate "} {
		id, err := demo.ParseParameterID(s)
		require.NoError(t, err, s)
		require.Equal(t, demo.LeakingRate, id)
	}
	_, err := demo.ParseParameterID("ridge")
	require.ErrorIs(t, err, demo.ErrUnknownParameter)

	assert.Equal(t, "ParameterID(9)", demo.ParameterID(9).String())
	assert.Empty(t, demo.ParameterID(9).Key())
	assert.Equal(t, demo.Parameter{}, demo.DefaultParameters().Get(9))
}
