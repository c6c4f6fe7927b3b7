// SPDX-License-Identifier: MIT
// Package: signal
//
// options.go - functional options for the dataset generators.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors validate and panic on meaningless inputs;
//     generators themselves never panic.
//   • Randomness flows only through WithSeed or WithRand.
//   • Later options override earlier ones.

package signal

import (
	"math"
	"math/rand"
)

// Deterministic defaults shared by all generators.
const (
	// DefaultSeed seeds the noise generator when neither WithSeed nor WithRand is given.
	DefaultSeed int64 = 1

	// DefaultAmplitude scales the clean waveform.
	DefaultAmplitude = 1.0

	// DefaultSineStep is the phase advance of Sine, in radians per sample.
	DefaultSineStep = 0.1

	// DefaultChirpStart and DefaultChirpEnd bound the linear sweep of Chirp (cycles/sample).
	DefaultChirpStart = 0.02
	DefaultChirpEnd   = 0.25

	// DefaultPulseFrequency is the base frequency of Pulse (cycles/sample, period 8).
	DefaultPulseFrequency = 0.125

	// DefaultDuty is the fraction of each Pulse period spent high.
	DefaultDuty = 0.5
)

// Option customizes a generator before any sample is produced.
type Option func(*config)

// config aggregates every generator knob. Zero frequency means "kind default".
type config struct {
	rng        *rand.Rand
	amplitude  float64
	frequency  float64
	sigma      float64 // Gaussian noise stdev
	uniform    float64 // uniform noise level, draws in [0, uniform)
	trend      float64
	duty       float64
	triangular bool
}

// WithSeed creates a fresh generator with the given seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand shares an explicit generator across calls. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("signal: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithAmplitude sets the waveform amplitude A. Panics unless A is finite and > 0.
func WithAmplitude(a float64) Option {
	if !(a > 0) || math.IsInf(a, 0) {
		panic("signal: WithAmplitude(A<=0 or non-finite)")
	}
	return func(c *config) { c.amplitude = a }
}

// WithFrequency sets the base rate of the waveform: radians per sample for Sine,
// the sweep start for Chirp (the end keeps the default ratio) and cycles per
// sample for Pulse. Panics unless f is finite and > 0.
func WithFrequency(f float64) Option {
	if !(f > 0) || math.IsInf(f, 0) {
		panic("signal: WithFrequency(f<=0 or non-finite)")
	}
	return func(c *config) { c.frequency = f }
}

// WithNoise adds zero-mean Gaussian noise with standard deviation sigma to the
// inputs. Targets stay clean. Panics if sigma < 0.
func WithNoise(sigma float64) Option {
	if !(sigma >= 0) || math.IsInf(sigma, 0) {
		panic("signal: WithNoise(sigma<0 or non-finite)")
	}
	return func(c *config) { c.sigma = sigma }
}

// WithUniformNoise adds noise drawn uniformly from [0, level) to the inputs.
// Panics if level < 0.
func WithUniformNoise(level float64) Option {
	if !(level >= 0) || math.IsInf(level, 0) {
		panic("signal: WithUniformNoise(level<0 or non-finite)")
	}
	return func(c *config) { c.uniform = level }
}

// WithTrend adds k·i to sample i of both inputs and targets. Any finite k is accepted.
func WithTrend(k float64) Option {
	if math.IsNaN(k) || math.IsInf(k, 0) {
		panic("signal: WithTrend(non-finite)")
	}
	return func(c *config) { c.trend = k }
}

// WithDuty sets the high fraction of a rectangular Pulse period. Panics outside [0,1].
func WithDuty(d float64) Option {
	if !(d >= 0 && d <= 1) {
		panic("signal: WithDuty(d not in [0,1])")
	}
	return func(c *config) { c.duty = d }
}

// WithTriangular switches Pulse to a triangular 0..A envelope.
func WithTriangular() Option {
	return func(c *config) { c.triangular = true }
}

// newConfig applies opts over the defaults and resolves the generator.
func newConfig(opts ...Option) config {
	c := config{
		amplitude: DefaultAmplitude,
		duty:      DefaultDuty,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(DefaultSeed))
	}

	return c
}

// frequencyOr returns the configured frequency, or def when none was set.
func (c config) frequencyOr(def float64) float64 {
	if c.frequency > 0 {
		return c.frequency
	}

	return def
}

// noise draws the additive input noise for one sample. Gaussian first, then
// uniform; a disabled source consumes no draws.
func (c config) noise() float64 {
	var v float64
	if c.sigma > 0 {
		v += c.sigma * c.rng.NormFloat64()
	}
	if c.uniform > 0 {
		v += c.uniform * c.rng.Float64()
	}

	return v
}
