// SPDX-License-Identifier: MIT
// Package: reservoir
//
// impl_weights.go - random weight generation and spectral rescaling.
//
// Determinism:
//   • One generator feeds, in order: Win (row-major), W (row-major, with a
//     Bernoulli draw per cell when sparse), then the Arnoldi start vector
//     (drawn only when N > 32).

package reservoir

import (
	"fmt"

	"github.com/katalvlaran/reservoir/matrix"
)

const (
	opNew      = "New"
	opGenerate = "generateWeights"
	opMeasure  = "measureSpectralRadius"
)

// generateWeights draws Win and W and rescales W to cfg.SpectralRadius.
//
// Implementation:
//   - Stage 1: Win ~ U[-s, s]^(N×inputDim), s = input scaling.
//   - Stage 2: W ~ U[-1, 1]^(N×N), each entry kept with probability connectivity.
//   - Stage 3: target 0 ⇒ W is zeroed (no measurement). Otherwise ρ_raw is measured
//     and W is multiplied by target/ρ_raw; ρ_raw = 0 cannot be rescaled and fails.
//
// Returns Win, the rescaled W and ρ_raw.
// Errors: ErrSpectralRadiusEstimationFailed (Stage 3) wrapping the matrix cause.
// Complexity: O(N·inputDim + N²) generation + O(r·32·N²) Arnoldi or O(N³) eigen.
func generateWeights(cfg Config, o options) (win, w *matrix.Dense, rawRho float64, err error) {
	win, err = matrix.RandomUniform(cfg.ReservoirSize, cfg.InputDim, o.inputScaling, 1, matrix.WithRand(o.rng))
	if err != nil {
		return nil, nil, 0, engineErrorf(opGenerate, err)
	}

	if cfg.SpectralRadius == 0 {
		w, err = matrix.NewZeros(cfg.ReservoirSize, cfg.ReservoirSize)
		if err != nil {
			return nil, nil, 0, engineErrorf(opGenerate, err)
		}

		return win, w, 0, nil
	}

	w, err = matrix.RandomUniform(cfg.ReservoirSize, cfg.ReservoirSize, 1, o.connectivity, matrix.WithRand(o.rng))
	if err != nil {
		return nil, nil, 0, engineErrorf(opGenerate, err)
	}

	rawRho, err = measureSpectralRadius(w, o)
	if err != nil {
		return nil, nil, 0, err
	}
	if rawRho == 0 {
		return nil, nil, 0, fmt.Errorf("%s: raw radius is 0, cannot rescale to %g: %w",
			opMeasure, cfg.SpectralRadius, ErrSpectralRadiusEstimationFailed)
	}

	factor := cfg.SpectralRadius / rawRho
	if err = w.Apply(func(_, _ int, v float64) float64 { return v * factor }); err != nil {
		return nil, nil, 0, engineErrorf(opGenerate, err)
	}

	return win, w, rawRho, nil
}

// measureSpectralRadius dispatches on the configured method.
func measureSpectralRadius(w *matrix.Dense, o options) (float64, error) {
	var (
		rho float64
		err error
	)
	switch o.method {
	case MethodEigen:
		rho, err = matrix.SpectralRadiusEigen(w)
	default:
		rho, err = matrix.SpectralRadius(w,
			matrix.WithRand(o.rng),
			matrix.WithTolerance(o.spectralTol),
			matrix.WithMaxIterations(o.maxIter),
		)
	}
	if err != nil && o.method == MethodArnoldi {
		return 0, fmt.Errorf("%s(%s; %s is exact): %w: %w", opMeasure, o.method, MethodEigen, ErrSpectralRadiusEstimationFailed, err)
	}
	if err != nil {
		return 0, fmt.Errorf("%s(%s): %w: %w", opMeasure, o.method, ErrSpectralRadiusEstimationFailed, err)
	}

	return rho, nil
}
