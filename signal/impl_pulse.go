// SPDX-License-Identifier: MIT
// Package: signal
//
// impl_pulse.go - rectangular/triangular pulse train.
//
// Shape, with frac = (i·f) mod 1:
//   • Rectangular: A while frac < duty, 0 otherwise.
//   • Triangular:  A·(1 − |2·frac − 1|), no trig.

package signal

import (
	"fmt"
	"math"
)

const methodPulse = "Pulse"

// Pulse returns n samples of a one-step-ahead pulse task.
// Errors: ErrTooFewSamples if n < MinSamples.
// Complexity: O(n).
func Pulse(n int, opts ...Option) (Dataset, error) {
	if n < MinSamples {
		return Dataset{}, signalErrorf(methodPulse, fmt.Errorf("n=%d: %w", n, ErrTooFewSamples))
	}
	c := newConfig(opts...)
	f := c.frequencyOr(DefaultPulseFrequency)

	clean := make([]float64, n+1)
	for i := range clean {
		frac := math.Mod(float64(i)*f, 1)
		switch {
		case c.triangular:
			clean[i] = c.amplitude * (1 - math.Abs(2*frac-1))
		case frac < c.duty:
			clean[i] = c.amplitude
		}
	}

	return assemble(KindPulse, clean, c), nil
}
