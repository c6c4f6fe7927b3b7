// SPDX-License-Identifier: MIT
// Package: signal
//
// impl_chirp.go - linear frequency sweep.
//
// Model over the n+1 clean samples (i = 0..n):
//   - fᵢ   = f0 + (f1 − f0)·i/n          (cycles/sample)
//   - θᵢ₊₁ = θᵢ + τ·fᵢ                    (phase accumulator, τ = 2π, θ₀ = 0)
//   - yᵢ   = A·sin(θᵢ₊₁)
//
// WithFrequency moves f0; f1 keeps the default f1/f0 ratio so the sweep shape
// is unchanged.

package signal

import (
	"fmt"
	"math"
)

const methodChirp = "Chirp"

// tau is 2π.
const tau = 2.0 * math.Pi

// Chirp returns n samples of a one-step-ahead linear chirp task.
// Errors: ErrTooFewSamples if n < MinSamples.
// Complexity: O(n).
func Chirp(n int, opts ...Option) (Dataset, error) {
	if n < MinSamples {
		return Dataset{}, signalErrorf(methodChirp, fmt.Errorf("n=%d: %w", n, ErrTooFewSamples))
	}
	c := newConfig(opts...)
	f0 := c.frequencyOr(DefaultChirpStart)
	f1 := f0 * DefaultChirpEnd / DefaultChirpStart

	clean := make([]float64, n+1)
	var theta float64
	for i := range clean {
		fi := f0 + (f1-f0)*float64(i)/float64(n)
		theta += tau * fi
		clean[i] = c.amplitude * math.Sin(theta)
	}

	return assemble(KindChirp, clean, c), nil
}
