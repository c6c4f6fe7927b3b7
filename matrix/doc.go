// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear algebra used by the reservoir engine.
//
// The package offers:
//
//   - Dense, a row-major float64 matrix with error-returning At/Set and an
//     optional finite-only numeric policy.
//   - Kernels Add, Sub, Mul, Transpose, Scale, AddDiagonal, MatVec and MatTVec.
//     Each kernel validates its operands, allocates a fresh result and takes a
//     flat-slice fast path when every operand is a *Dense.
//   - Cholesky / SolveCholesky / SolveSPD for symmetric positive-definite systems
//     such as ridge-regularized normal equations.
//   - SpectralRadius, an iterative estimate of max |λ| that converges for
//     dominant complex pairs, and SpectralRadiusEigen, the exact value via gonum.
//   - RandomUniform, a seeded generator of dense or sparse uniform matrices.
//
// Errors are package sentinels (ErrDimensionMismatch, ErrNotPositiveDefinite,
// ErrNotConverged, ...) wrapped with the operation name; match them with errors.Is.
//
// Determinism: every loop runs in a fixed order and randomness only enters through
// WithSeed or WithRand, so identical inputs and seeds give bit-identical results.
package matrix
