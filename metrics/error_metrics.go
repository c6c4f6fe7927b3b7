// SPDX-License-Identifier: MIT
// Package: metrics
//
// error_metrics.go - squared-error scores for predicted sequences.
//
// Conventions:
//   • Matrix-shaped inputs are row-major: one row per time step.
//   • Means are taken over every scalar entry (rows × columns).

package metrics

import (
	"fmt"
	"math"
)

const (
	metricMSE   = "MSE"
	metricNRMSE = "NRMSE"
	metricMC    = "MemoryCapacity"
)

// MSE returns the mean squared error between pred and target over all entries.
// Errors: ErrEmptyInput, ErrLengthMismatch (row count or any row width differs).
func MSE(pred, target [][]float64) (float64, error) {
	var acc Accumulator
	if len(pred) != len(target) {
		return 0, metricErrorf(metricMSE, fmt.Errorf("%d rows vs %d: %w", len(pred), len(target), ErrLengthMismatch))
	}
	for i := range pred {
		if err := acc.Add(pred[i], target[i]); err != nil {
			return 0, metricErrorf(metricMSE, fmt.Errorf("row %d: %w", i, err))
		}
	}
	mse, err := acc.MSE()
	if err != nil {
		return 0, metricErrorf(metricMSE, err)
	}

	return mse, nil
}

// RMSE is sqrt(MSE).
func RMSE(pred, target [][]float64) (float64, error) {
	mse, err := MSE(pred, target)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(mse), nil
}

// SeriesMSE is MSE for scalar series.
func SeriesMSE(pred, target []float64) (float64, error) {
	var acc Accumulator
	if err := acc.Add(pred, target); err != nil {
		return 0, metricErrorf(metricMSE, err)
	}
	mse, err := acc.MSE()
	if err != nil {
		return 0, metricErrorf(metricMSE, err)
	}

	return mse, nil
}

// NRMSE returns RMSE(pred, target) divided by the population standard
// deviation of target.
// Errors: ErrEmptyInput, ErrLengthMismatch, ErrZeroVariance.
func NRMSE(pred, target []float64) (float64, error) {
	mse, err := SeriesMSE(pred, target)
	if err != nil {
		return 0, metricErrorf(metricNRMSE, err)
	}

	var mean float64
	for _, y := range target {
		mean += y
	}
	mean /= float64(len(target))
	var variance float64
	for _, y := range target {
		d := y - mean
		variance += d * d
	}
	variance /= float64(len(target))
	if variance == 0 {
		return 0, metricErrorf(metricNRMSE, ErrZeroVariance)
	}

	return math.Sqrt(mse / variance), nil
}

// MemoryCapacity is the coarse ratio steps/total reported by the demo: the
// number of recorded reservoir states over the length of the driving series.
// Errors: ErrBadInput if total <= 0 or steps < 0.
func MemoryCapacity(steps, total int) (float64, error) {
	if total <= 0 || steps < 0 {
		return 0, metricErrorf(metricMC, fmt.Errorf("steps=%d total=%d: %w", steps, total, ErrBadInput))
	}

	return float64(steps) / float64(total), nil
}

// Accumulator is a running mean of squared errors. The zero value is ready to use.
type Accumulator struct {
	sum float64
	n   int
}

// Add folds one prediction/target pair into the running sum.
// Errors: ErrLengthMismatch; the accumulator is unchanged on error.
func (a *Accumulator) Add(pred, target []float64) error {
	if len(pred) != len(target) {
		return fmt.Errorf("%d vs %d values: %w", len(pred), len(target), ErrLengthMismatch)
	}
	for i := range pred {
		d := pred[i] - target[i]
		a.sum += d * d
	}
	a.n += len(pred)

	return nil
}

// Count returns the number of scalar entries folded so far.
func (a *Accumulator) Count() int { return a.n }

// MSE returns the mean squared error so far. Errors: ErrEmptyInput before any entry.
func (a *Accumulator) MSE() (float64, error) {
	if a.n == 0 {
		return 0, ErrEmptyInput
	}

	return a.sum / float64(a.n), nil
}
