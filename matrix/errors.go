// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels (optionally wrapped with
// an operation tag) and tests MUST check them via errors.Is. No kernel should
// panic on user-triggered error conditions; panics are reserved for option
// constructors fed nonsensical values.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap with fmt.Errorf("Op: %w", ErrX);
// callers still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index/NaN -> dimension mismatch -> numerical failure
// (not positive definite, not converged).

var (
	// ErrBadShape is returned when requested shape is invalid for a builder
	// (e.g., ragged rows, data length not equal to rows*cols).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated symmetry
	// within the configured numeric policy (epsilon).
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (ingestion, Set, etc.).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNotPositiveDefinite is returned by Cholesky when a pivot falls at or
	// below the positivity floor.
	ErrNotPositiveDefinite = errors.New("matrix: matrix is not positive definite")

	// ErrNotConverged indicates that an iterative estimate did not settle
	// within the configured tolerance before the iteration cap.
	ErrNotConverged = errors.New("matrix: iteration did not converge")

	// ErrEigenFailed indicates that a direct eigendecomposition failed.
	ErrEigenFailed = errors.New("matrix: eigen decomposition failed")

	// ErrInvalidParameter reports a generator argument outside its domain
	// (negative scale, density outside (0,1]).
	ErrInvalidParameter = errors.New("matrix: invalid parameter")
)
