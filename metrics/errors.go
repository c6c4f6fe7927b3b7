// SPDX-License-Identifier: MIT

package metrics

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput indicates an empty prediction, target or sequence.
	ErrEmptyInput = errors.New("metrics: input must be non-empty")

	// ErrLengthMismatch indicates predictions and targets of different shapes.
	ErrLengthMismatch = errors.New("metrics: prediction/target length mismatch")

	// ErrBadInput indicates an invalid option value (window < -1, negative or
	// non-finite slope penalty, non-positive total length).
	ErrBadInput = errors.New("metrics: invalid input")

	// ErrPathNeedsMatrix indicates ReturnPath without MemoryMode=FullMatrix.
	ErrPathNeedsMatrix = errors.New("metrics: ReturnPath requires MemoryMode=FullMatrix")

	// ErrZeroVariance indicates NRMSE against a constant target.
	ErrZeroVariance = errors.New("metrics: target has zero variance")
)

// metricErrorf prefixes err with the metric name.
func metricErrorf(metric string, err error) error {
	return fmt.Errorf("%s: %w", metric, err)
}
