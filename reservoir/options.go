// SPDX-License-Identifier: MIT
// Package: reservoir
//
// options.go - functional options for Engine construction.
//
// Contract:
//   • Options are functional (type Option func(*options)).
//   • Option constructors validate and PANIC on meaningless inputs;
//     engine methods never panic.
//   • Determinism is explicit: all randomness flows from WithSeed or WithRand.

package reservoir

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/reservoir/matrix"
	"github.com/sirupsen/logrus"
)

// Defaults (single source of truth).
const (
	// DefaultSeed seeds the weight generator when neither WithSeed nor WithRand is given.
	DefaultSeed int64 = 42

	// DefaultInputScaling multiplies the U[-1,1] entries of Win.
	DefaultInputScaling = 1.0

	// DefaultRidge is the Tikhonov regularization λ of the readout fit.
	DefaultRidge = 1e-6

	// DefaultConnectivity is the probability that an entry of W is non-zero (1 = dense).
	DefaultConnectivity = 1.0

	// DefaultWashout is the number of leading training steps excluded from the fit.
	DefaultWashout = 0

	// DefaultSpectralTolerance is the relative convergence threshold of the Arnoldi estimate.
	DefaultSpectralTolerance = matrix.DefaultTolerance

	// DefaultMaxIterations caps Arnoldi restarts.
	DefaultMaxIterations = matrix.DefaultMaxIterations
)

// Option customizes an Engine at construction.
// Complexity: applying N options costs O(N).
type Option func(*options)

type options struct {
	rng          *rand.Rand
	inputScaling float64
	ridge        float64
	connectivity float64
	washout      int
	spectralTol  float64
	maxIter      int
	method       SpectralMethod
	log          logrus.FieldLogger
}

// WithSeed creates a fresh generator with the given seed.
// Same Config and seed ⇒ identical weight matrices.
func WithSeed(seed int64) Option {
	return func(o *options) { o.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand provides an explicit generator. The engine consumes it only in New.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("reservoir: WithRand(nil)")
	}
	return func(o *options) { o.rng = r }
}

// WithInputScaling scales the entries of Win to U[-s, s]. Panics unless s is finite and ≥ 0.
func WithInputScaling(s float64) Option {
	if !(s >= 0) || math.IsInf(s, 0) {
		panic("reservoir: WithInputScaling(s<0 or non-finite)")
	}
	return func(o *options) { o.inputScaling = s }
}

// WithRidge sets the regularization λ added to the diagonal of SᵀS.
// Any finite value is accepted; λ ≤ 0 may make the system singular.
func WithRidge(lambda float64) Option {
	if math.IsNaN(lambda) || math.IsInf(lambda, 0) {
		panic("reservoir: WithRidge(non-finite)")
	}
	return func(o *options) { o.ridge = lambda }
}

// WithConnectivity keeps each entry of W with probability p. Panics unless 0 < p ≤ 1.
func WithConnectivity(p float64) Option {
	if !(p > 0 && p <= 1) {
		panic("reservoir: WithConnectivity(p not in (0,1])")
	}
	return func(o *options) { o.connectivity = p }
}

// WithWashout drops the first k re-driven states from the readout fit.
// The states still enter the history. Panics if k < 0.
func WithWashout(k int) Option {
	if k < 0 {
		panic("reservoir: WithWashout(k<0)")
	}
	return func(o *options) { o.washout = k }
}

// WithSpectralTolerance sets the relative convergence threshold of the Arnoldi estimate.
// Panics unless tol is finite and > 0.
func WithSpectralTolerance(tol float64) Option {
	if !(tol > 0) || math.IsInf(tol, 0) {
		panic("reservoir: WithSpectralTolerance(tol<=0 or non-finite)")
	}
	return func(o *options) { o.spectralTol = tol }
}

// WithMaxIterations caps Arnoldi restarts (32 matrix-vector products each). Panics if n <= 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic("reservoir: WithMaxIterations(n<=0)")
	}
	return func(o *options) { o.maxIter = n }
}

// WithSpectralMethod selects restarted Arnoldi (default) or a full eigendecomposition.
// Panics on an unknown method.
//
// Cost per New (and per demo slider change, which rebuilds the engine):
//   - MethodArnoldi: O(r·32·N²) for r restarts; r stays in the tens for dense
//     random W, so N = 1000 costs a few hundred million multiply-adds.
//   - MethodEigen: O(N³) with an N² copy; exact, and the better choice when the
//     spectrum of W is known to be hard to separate.
func WithSpectralMethod(m SpectralMethod) Option {
	if m != MethodArnoldi && m != MethodEigen {
		panic("reservoir: WithSpectralMethod(unknown)")
	}
	return func(o *options) { o.method = m }
}

// WithLogger routes engine diagnostics to l. Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("reservoir: WithLogger(nil)")
	}
	return func(o *options) { o.log = l }
}

// gatherOptions applies opts over the defaults and fills in the generator and logger.
func gatherOptions(opts ...Option) options {
	o := options{
		inputScaling: DefaultInputScaling,
		ridge:        DefaultRidge,
		connectivity: DefaultConnectivity,
		washout:      DefaultWashout,
		spectralTol:  DefaultSpectralTolerance,
		maxIter:      DefaultMaxIterations,
		method:       MethodArnoldi,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(DefaultSeed))
	}
	if o.log == nil {
		o.log = logrus.New()
	}

	return o
}
