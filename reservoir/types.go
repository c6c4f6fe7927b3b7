// SPDX-License-Identifier: MIT

package reservoir

import (
	"fmt"
	"math"
)

// Config holds the immutable hyperparameters of an Engine.
type Config struct {
	// ReservoirSize is the number of recurrent units (N > 0).
	ReservoirSize int `json:"reservoir_size" yaml:"reservoir_size"`
	// InputDim is the length of every input vector (> 0).
	InputDim int `json:"input_dim" yaml:"input_dim"`
	// OutputDim is the length of every output and target vector (> 0).
	OutputDim int `json:"output_dim" yaml:"output_dim"`
	// SpectralRadius is the target largest-eigenvalue magnitude of W (≥ 0).
	SpectralRadius float64 `json:"spectral_radius" yaml:"spectral_radius"`
	// LeakingRate is the fraction of the state replaced per step, in (0,1].
	LeakingRate float64 `json:"leaking_rate" yaml:"leaking_rate"`
}

// Validate reports ErrInvalidConfiguration with the first offending field.
func (c Config) Validate() error {
	switch {
	case c.ReservoirSize <= 0:
		return fmt.Errorf("reservoir size %d must be > 0: %w", c.ReservoirSize, ErrInvalidConfiguration)
	case c.InputDim <= 0:
		return fmt.Errorf("input dim %d must be > 0: %w", c.InputDim, ErrInvalidConfiguration)
	case c.OutputDim <= 0:
		return fmt.Errorf("output dim %d must be > 0: %w", c.OutputDim, ErrInvalidConfiguration)
	case !(c.SpectralRadius >= 0) || math.IsInf(c.SpectralRadius, 0):
		return fmt.Errorf("spectral radius %g must be finite and >= 0: %w", c.SpectralRadius, ErrInvalidConfiguration)
	case !(c.LeakingRate > 0 && c.LeakingRate <= 1):
		return fmt.Errorf("leaking rate %g not in (0,1]: %w", c.LeakingRate, ErrInvalidConfiguration)
	}

	return nil
}

// SpectralMethod selects how ρ(W_raw) is measured at construction.
type SpectralMethod int

const (
	// MethodArnoldi estimates ρ by restarted Arnoldi: O(32·N²) per restart, a few
	// dozen restarts for dense random reservoirs. Reservoirs up to 32 nodes are
	// solved exactly.
	MethodArnoldi SpectralMethod = iota
	// MethodEigen computes ρ from a full eigendecomposition in O(N³).
	MethodEigen
)

// String implements fmt.Stringer.
func (m SpectralMethod) String() string {
	switch m {
	case MethodArnoldi:
		return "arnoldi"
	case MethodEigen:
		return "eigen"
	default:
		return fmt.Sprintf("SpectralMethod(%d)", int(m))
	}
}
