// SPDX-License-Identifier: MIT
// Package: signal
//
// errors.go - sentinel errors for dataset generation.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached with %w via signalErrorf.
//   • Generators never panic at runtime; option constructors do (programmer error).

package signal

import (
	"errors"
	"fmt"
)

// ErrTooFewSamples indicates a requested length below the minimum, or a split
// that would leave one side empty.
var ErrTooFewSamples = errors.New("signal: too few samples")

// ErrInvalidFraction indicates a split fraction outside the open interval (0,1).
var ErrInvalidFraction = errors.New("signal: split fraction out of range")

// ErrUnknownKind indicates an unsupported dataset kind name or value.
var ErrUnknownKind = errors.New("signal: unknown dataset kind")

// signalErrorf prefixes err with the method name, preserving it for errors.Is.
func signalErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
