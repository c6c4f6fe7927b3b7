// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for numeric kernels. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, randomness only through an explicit seed or *rand.Rand.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Epsilon is consumed by structural checks (ValidateSymmetric) and by the
//     Cholesky pivot floor when set above the machine-epsilon default.
//   - Tolerance / MaxIterations drive SpectralRadius (restarted Arnoldi); MaxIterations counts restarts.
//   - Rand drives SpectralRadius start vectors (drawn only for n > 32) and RandomUniform.
package matrix

import (
	"math"
	"math/rand"
)

// ---------- Defaults (single source of truth) ----------

// Numeric policy.
const (
	// DefaultEpsilon defines the non-negative tolerance used by structural checks.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true
)

// Iterative policy.
const (
	// DefaultTolerance is the relative convergence threshold of SpectralRadius.
	DefaultTolerance = 1e-10

	// DefaultMaxIterations caps SpectralRadius restarts (32 products each).
	DefaultMaxIterations = 1000

	// DefaultSeed seeds the internal generator when neither WithSeed nor WithRand is given.
	DefaultSeed int64 = 1
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid   = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicToleranceInvalid = "matrix: WithTolerance: tol must be finite, > 0"
	panicMaxIterInvalid   = "matrix: WithMaxIterations: n must be > 0"
	panicRandNil          = "matrix: WithRand: rng must be non-nil"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	eps            float64    // >= 0; DefaultEpsilon
	epsSet         bool       // true when WithEpsilon was applied
	validateNaNInf bool       // DefaultValidateNaNInf
	tol            float64    // > 0; DefaultTolerance
	maxIter        int        // > 0; DefaultMaxIterations
	rng            *rand.Rand // nil ⇒ rand.New(rand.NewSource(DefaultSeed))
}

// ---------- Constructors (WithX) ----------

// WithEpsilon sets the numeric tolerance eps used by structural checks.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Complexity: O(1).
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) {
		o.eps = eps
		o.epsSet = true
	}
}

// WithNoValidateNaNInf builds matrices (NewDense, NewDenseFromRows, NewZeros,
// RandomUniform) that accept NaN/Inf in FromRows, Set and Apply. The policy
// travels with the matrix through Clone.
// Complexity: O(1).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithTolerance sets the relative convergence tolerance of iterative kernels.
// Panics if tol is not a finite positive number.
// Complexity: O(1).
func WithTolerance(tol float64) Option {
	if tol <= 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithMaxIterations caps iterative kernels at n iterations. Panics if n <= 0.
// Complexity: O(1).
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithSeed installs a fresh generator seeded with seed.
// Two calls with the same seed produce identical random streams.
// Complexity: O(1).
func WithSeed(seed int64) Option {
	return func(o *Options) { o.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand installs a caller-owned generator. The generator is advanced by
// the kernel; it is not safe for concurrent use. Panics on nil.
// Complexity: O(1).
func WithRand(rng *rand.Rand) Option {
	if rng == nil {
		panic(panicRandNil)
	}

	return func(o *Options) { o.rng = rng }
}

// ---------- Internal resolution ----------

// defaultOptions returns the baseline configuration (no generator yet).
func defaultOptions() Options {
	return Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
		tol:            DefaultTolerance,
		maxIter:        DefaultMaxIterations,
	}
}

// gatherOptions applies opts in order over the defaults.
// A generator is materialized only when the caller did not supply one.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(DefaultSeed))
	}

	return o
}
