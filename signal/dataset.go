// SPDX-License-Identifier: MIT
// Package: signal
//
// dataset.go - the Dataset type, kinds and the shared one-step-ahead assembler.

package signal

import (
	"fmt"
	"math"
	"strings"
)

const (
	methodGenerate = "Generate"
	methodSplit    = "Split"
	methodParse    = "ParseKind"
)

// MinSamples is the shortest dataset any generator produces.
const MinSamples = 1

// Kind names a synthetic waveform.
type Kind int

const (
	// KindSine is A·sin(ω·i).
	KindSine Kind = iota
	// KindChirp is a linear frequency sweep.
	KindChirp
	// KindPulse is a rectangular or triangular pulse train.
	KindPulse
)

var kindNames = [...]string{"sine", "chirp", "pulse"}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// Kinds lists every supported kind in declaration order.
func Kinds() []Kind { return []Kind{KindSine, KindChirp, KindPulse} }

// ParseKind maps a case-insensitive name ("sine", "chirp", "pulse") to a Kind.
func ParseKind(name string) (Kind, error) {
	for i, n := range kindNames {
		if strings.EqualFold(strings.TrimSpace(name), n) {
			return Kind(i), nil
		}
	}

	return 0, signalErrorf(methodParse, fmt.Errorf("%q: %w", name, ErrUnknownKind))
}

// Dataset is a scalar one-step-ahead prediction task: Targets[i] is the clean
// waveform one sample after Inputs[i]. Every row has length 1.
type Dataset struct {
	Kind    Kind
	Inputs  [][]float64
	Targets [][]float64
}

// Len returns the number of samples.
func (d Dataset) Len() int { return len(d.Inputs) }

// Split cuts the dataset at floor(fraction·Len()) into a training prefix and a
// validation suffix. Both halves alias d's rows.
//
// Errors:
//   - ErrInvalidFraction unless 0 < fraction < 1.
//   - ErrTooFewSamples when either half would be empty.
func (d Dataset) Split(fraction float64) (train, valid Dataset, err error) {
	if !(fraction > 0 && fraction < 1) {
		return Dataset{}, Dataset{}, signalErrorf(methodSplit, fmt.Errorf("fraction=%g: %w", fraction, ErrInvalidFraction))
	}
	n := d.Len()
	cut := int(math.Floor(fraction * float64(n)))
	if cut < 1 || cut >= n {
		return Dataset{}, Dataset{}, signalErrorf(methodSplit, fmt.Errorf("cut %d of %d: %w", cut, n, ErrTooFewSamples))
	}

	train = Dataset{Kind: d.Kind, Inputs: d.Inputs[:cut:cut], Targets: d.Targets[:cut:cut]}
	valid = Dataset{Kind: d.Kind, Inputs: d.Inputs[cut:], Targets: d.Targets[cut:]}

	return train, valid, nil
}

// Generate dispatches to Sine, Chirp or Pulse.
func Generate(kind Kind, n int, opts ...Option) (Dataset, error) {
	switch kind {
	case KindSine:
		return Sine(n, opts...)
	case KindChirp:
		return Chirp(n, opts...)
	case KindPulse:
		return Pulse(n, opts...)
	default:
		return Dataset{}, signalErrorf(methodGenerate, fmt.Errorf("%v: %w", kind, ErrUnknownKind))
	}
}

// assemble turns a clean waveform of n+1 samples into a Dataset:
//
//	input[i]  = clean[i]   + trend·i     + noise
//	target[i] = clean[i+1] + trend·(i+1)
//
// Noise is drawn in index order, so a fixed seed fixes every input.
func assemble(kind Kind, clean []float64, c config) Dataset {
	n := len(clean) - 1
	d := Dataset{
		Kind:    kind,
		Inputs:  make([][]float64, n),
		Targets: make([][]float64, n),
	}
	for i := 0; i < n; i++ {
		d.Inputs[i] = []float64{clean[i] + c.trend*float64(i) + c.noise()}
		d.Targets[i] = []float64{clean[i+1] + c.trend*float64(i+1)}
	}

	return d
}

// Column extracts column j of row-major samples, e.g. the scalar series of a Dataset.
func Column(rows [][]float64, j int) []float64 {
	out := make([]float64, len(rows))
	for i, r := range rows {
		if j < len(r) {
			out[i] = r[j]
		}
	}

	return out
}
