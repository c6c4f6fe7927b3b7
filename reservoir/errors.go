// SPDX-License-Identifier: MIT
// Package: reservoir
//
// errors.go - sentinel errors for the reservoir package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w; lower-level causes from the
//     matrix package stay in the chain.
//   • Engine methods never panic; panics are confined to option constructors.

package reservoir

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration indicates bad constructor arguments: non-positive
// sizes, a negative or non-finite spectral radius, or a leaking rate outside (0,1].
var ErrInvalidConfiguration = errors.New("reservoir: invalid configuration")

// ErrDimensionMismatch indicates an input or target vector whose length does not
// match the configured InputDim / OutputDim.
var ErrDimensionMismatch = errors.New("reservoir: dimension mismatch")

// ErrInvalidTrainingSet indicates empty or length-mismatched training sequences,
// or a washout that leaves no samples to fit.
var ErrInvalidTrainingSet = errors.New("reservoir: invalid training set")

// ErrSpectralRadiusEstimationFailed indicates the recurrent matrix's spectral
// radius could not be measured (no convergence, failed decomposition, or a
// zero radius that cannot be rescaled to a positive target).
var ErrSpectralRadiusEstimationFailed = errors.New("reservoir: spectral radius estimation failed")

// ErrSingularSystem indicates the regularized normal equations SᵀS + λI are not
// positive-definite and the readout cannot be solved.
var ErrSingularSystem = errors.New("reservoir: singular system")

// ErrNonFiniteInput indicates a NaN or ±Inf value in an input or target vector.
var ErrNonFiniteInput = errors.New("reservoir: non-finite input")

// engineErrorf wraps err with an operation tag, preserving it for errors.Is.
func engineErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
