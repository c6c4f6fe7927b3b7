// SPDX-License-Identifier: MIT

package signal

import (
	"fmt"
	"math"
)

const methodSine = "Sine"

// Sine returns n samples of the noisy sinusoid task
//
//	input[i]  = A·sin(ω·i) + noise
//	target[i] = A·sin(ω·(i+1))
//
// with ω = DefaultSineStep unless WithFrequency is given. With
// WithUniformNoise(0.1) and defaults this is the classic sin(0.1·i) demo series.
//
// Errors: ErrTooFewSamples if n < MinSamples.
// Complexity: O(n).
func Sine(n int, opts ...Option) (Dataset, error) {
	if n < MinSamples {
		return Dataset{}, signalErrorf(methodSine, fmt.Errorf("n=%d: %w", n, ErrTooFewSamples))
	}
	c := newConfig(opts...)
	omega := c.frequencyOr(DefaultSineStep)

	clean := make([]float64, n+1)
	for i := range clean {
		clean[i] = c.amplitude * math.Sin(omega*float64(i))
	}

	return assemble(KindSine, clean, c), nil
}
