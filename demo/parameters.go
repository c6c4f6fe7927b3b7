// SPDX-License-Identifier: MIT
// Package: demo
//
// parameters.go - the four slider parameters and their value-replacement updates.
//
// Contract:
//   • Parameters is a value; With returns a new set and never mutates the receiver.
//   • Ranges are inclusive. Step is display metadata and is not enforced.

package demo

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/reservoir/reservoir"
)

const opWith = "Parameters.With"

// ParameterID indexes the slider set.
type ParameterID int

const (
	// ReservoirSize is the number of recurrent units.
	ReservoirSize ParameterID = iota
	// SpectralRadius is the target ρ(W).
	SpectralRadius
	// InputScaling scales the input weights.
	InputScaling
	// LeakingRate is the leaky-integration coefficient.
	LeakingRate

	numParameters
)

// Parameter is one slider: its current value and its range.
type Parameter struct {
	ID    ParameterID `json:"-" yaml:"-"`
	Key   string      `json:"key" yaml:"key"`
	Name  string      `json:"name" yaml:"name"`
	Value float64     `json:"value" yaml:"value"`
	Min   float64     `json:"min" yaml:"min"`
	Max   float64     `json:"max" yaml:"max"`
	Step  float64     `json:"step" yaml:"step"`
}

// defaults in slider order.
var defaults = [numParameters]Parameter{
	{ID: ReservoirSize, Key: "reservoir_size", Name: "Reservoir Size", Value: 100, Min: 10, Max: 1000, Step: 10},
	{ID: SpectralRadius, Key: "spectral_radius", Name: "Spectral Radius", Value: 0.9, Min: 0, Max: 2, Step: 0.1},
	{ID: InputScaling, Key: "input_scaling", Name: "Input Scaling", Value: 0.1, Min: 0, Max: 1, Step: 0.01},
	{ID: LeakingRate, Key: "leaking_rate", Name: "Leaking Rate", Value: 0.3, Min: 0, Max: 1, Step: 0.01},
}

// String returns the display name.
func (id ParameterID) String() string {
	if !id.valid() {
		return fmt.Sprintf("ParameterID(%d)", int(id))
	}

	return defaults[id].Name
}

// Key returns the snake_case key used by config files and flags.
func (id ParameterID) Key() string {
	if !id.valid() {
		return ""
	}

	return defaults[id].Key
}

func (id ParameterID) valid() bool { return id >= 0 && id < numParameters }

// ParseParameterID resolves a key ("leaking_rate") or display name
// ("Leaking Rate"), case-insensitively.
func ParseParameterID(s string) (ParameterID, error) {
	s = strings.TrimSpace(s)
	for _, p := range defaults {
		if strings.EqualFold(s, p.Key) || strings.EqualFold(s, p.Name) {
			return p.ID, nil
		}
	}

	return 0, fmt.Errorf("%q: %w", s, ErrUnknownParameter)
}

// Parameters is an immutable slider set.
type Parameters struct {
	items [numParameters]Parameter
}

// DefaultParameters returns the interactive slider defaults:
// size 100, spectral radius 0.9, input scaling 0.1, leaking rate 0.3.
func DefaultParameters() Parameters {
	return Parameters{items: defaults}
}

// All returns the sliders in display order.
func (p Parameters) All() []Parameter {
	out := make([]Parameter, numParameters)
	copy(out, p.items[:])

	return out
}

// Get returns one slider. Unknown ids yield the zero Parameter.
func (p Parameters) Get(id ParameterID) Parameter {
	if !id.valid() {
		return Parameter{}
	}

	return p.items[id]
}

// Value returns the current value of one slider.
func (p Parameters) Value(id ParameterID) float64 { return p.Get(id).Value }

// With returns a copy of p with slider id set to v.
//
// Errors:
//   - ErrUnknownParameter for an id outside the set.
//   - ErrParameterOutOfRange for NaN, values outside [Min, Max] and
//     non-integral reservoir sizes.
func (p Parameters) With(id ParameterID, v float64) (Parameters, error) {
	if !id.valid() {
		return p, demoErrorf(opWith, fmt.Errorf("id %d: %w", int(id), ErrUnknownParameter))
	}
	cur := p.items[id]
	if math.IsNaN(v) || v < cur.Min || v > cur.Max {
		return p, demoErrorf(opWith, fmt.Errorf("%s=%g not in [%g, %g]: %w", cur.Name, v, cur.Min, cur.Max, ErrParameterOutOfRange))
	}
	if id == ReservoirSize && v != math.Trunc(v) {
		return p, demoErrorf(opWith, fmt.Errorf("%s=%g is not an integer: %w", cur.Name, v, ErrParameterOutOfRange))
	}

	next := p
	next.items[id].Value = v

	return next, nil
}

// Config maps the sliders onto a scalar-in/scalar-out engine configuration.
// Input scaling is not part of reservoir.Config; see InputScaling.
func (p Parameters) Config() reservoir.Config {
	return reservoir.Config{
		ReservoirSize:  int(p.items[ReservoirSize].Value),
		InputDim:       1,
		OutputDim:      1,
		SpectralRadius: p.items[SpectralRadius].Value,
		LeakingRate:    p.items[LeakingRate].Value,
	}
}

// InputScaling returns the input-scaling slider value.
func (p Parameters) InputScaling() float64 { return p.items[InputScaling].Value }
