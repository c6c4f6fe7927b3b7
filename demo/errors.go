// SPDX-License-Identifier: MIT

package demo

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownParameter indicates a parameter id or key outside the slider set.
	ErrUnknownParameter = errors.New("demo: unknown parameter")

	// ErrParameterOutOfRange indicates a slider value outside [Min, Max], NaN,
	// or a non-integral reservoir size.
	ErrParameterOutOfRange = errors.New("demo: parameter out of range")

	// ErrInvalidRunConfig indicates a RunConfig that fails Validate.
	ErrInvalidRunConfig = errors.New("demo: invalid run config")

	// ErrRunFailed wraps an engine or dataset error that aborted a run.
	ErrRunFailed = errors.New("demo: run failed")
)

// demoErrorf tags err with the operation name.
func demoErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
