// SPDX-License-Identifier: MIT
// Package matrix - seeded random matrix generation.
//
// Determinism:
//   - Cells are visited in row-major order (i asc, j asc).
//   - For density < 1 each cell consumes one Bernoulli draw before its value draw,
//     so a fixed seed always yields the same sparsity pattern and values.

package matrix

import (
	"fmt"
	"math"
)

const opRandomUniform = "RandomUniform"

// RandomUniform returns a rows×cols matrix whose entries are uniform in
// [-scale, scale], each kept independently with probability density.
//
// Implementation:
//   - Stage 1: validate rows, cols > 0, finite scale ≥ 0 and 0 < density ≤ 1.
//   - Stage 2: walk cells row-major; draw keep ~ Bernoulli(density) (skipped when density = 1),
//     then value = scale·(2u − 1) with u ~ U[0,1).
//
// Errors:
//   - ErrInvalidDimensions, ErrInvalidParameter.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - Pass WithSeed(s) for reproducible reservoirs; WithRand(rng) to share one stream
//     across several generated matrices.
func RandomUniform(rows, cols int, scale, density float64, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(opRandomUniform, ErrInvalidDimensions)
	}
	if scale < 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return nil, fmt.Errorf("%s: scale=%g: %w", opRandomUniform, scale, ErrInvalidParameter)
	}
	if !(density > 0 && density <= 1) {
		return nil, fmt.Errorf("%s: density=%g not in (0,1]: %w", opRandomUniform, density, ErrInvalidParameter)
	}
	o := gatherOptions(opts...)

	m, err := NewDense(rows, cols, opts...)
	if err != nil {
		return nil, matrixErrorf(opRandomUniform, err)
	}

	sparse := density < 1
	for idx := range m.data {
		if sparse && o.rng.Float64() >= density {
			continue // cell stays zero
		}
		m.data[idx] = scale * (2*o.rng.Float64() - 1)
	}

	return m, nil
}
