// SPDX-License-Identifier: MIT

package demo

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/reservoir/signal"
)

// Run defaults, matching the interactive demo.
const (
	DefaultSamples        = 1000
	DefaultNoise          = 0.1
	DefaultSplit          = 0.8
	DefaultStride         = 10
	DefaultHighlightEvery = 50
	DefaultHighlightCount = 5
	DefaultPause          = 100 * time.Millisecond
	DefaultSignal         = "sine"
)

// DefaultDataSeed seeds the dataset noise and highlight draws.
const DefaultDataSeed int64 = 1

// RunConfig controls one simulation run.
type RunConfig struct {
	// Samples is the length of the synthetic series.
	Samples int `json:"samples" yaml:"samples"`
	// Signal names the waveform: sine, chirp or pulse.
	Signal string `json:"signal" yaml:"signal"`
	// Noise is the uniform input-noise level, draws in [0, Noise).
	Noise float64 `json:"noise" yaml:"noise"`
	// Split is the training fraction; the remainder is validation.
	Split float64 `json:"split" yaml:"split"`
	// Stride is the sample step of the animated drive.
	Stride int `json:"stride" yaml:"stride"`
	// HighlightEvery is the sample period of progress events during the drive.
	HighlightEvery int `json:"highlight_every" yaml:"highlight_every"`
	// HighlightCount is the number of active node indices per progress event.
	HighlightCount int `json:"highlight_count" yaml:"highlight_count"`
	// Pause is the sleep after each progress event during the drive.
	Pause time.Duration `json:"pause" yaml:"pause"`
	// Seed drives the dataset noise and the highlight draws.
	Seed int64 `json:"seed" yaml:"seed"`
}

// DefaultRunConfig returns the interactive demo's run: 1000 noisy sine
// samples, an 80 % split, stride 10, five highlights every 50 samples and a
// 100 ms pause.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Samples:        DefaultSamples,
		Signal:         DefaultSignal,
		Noise:          DefaultNoise,
		Split:          DefaultSplit,
		Stride:         DefaultStride,
		HighlightEvery: DefaultHighlightEvery,
		HighlightCount: DefaultHighlightCount,
		Pause:          DefaultPause,
		Seed:           DefaultDataSeed,
	}
}

// Validate reports ErrInvalidRunConfig with the first offending field.
func (c RunConfig) Validate() error {
	var err error
	switch {
	case c.Samples < 2:
		err = fmt.Errorf("samples=%d must be >= 2", c.Samples)
	case !(c.Noise >= 0) || math.IsInf(c.Noise, 0):
		err = fmt.Errorf("noise=%g must be finite and >= 0", c.Noise)
	case !(c.Split > 0 && c.Split < 1):
		err = fmt.Errorf("split=%g not in (0,1)", c.Split)
	case c.Stride <= 0:
		err = fmt.Errorf("stride=%d must be > 0", c.Stride)
	case c.HighlightEvery <= 0:
		err = fmt.Errorf("highlight_every=%d must be > 0", c.HighlightEvery)
	case c.HighlightCount < 0:
		err = fmt.Errorf("highlight_count=%d must be >= 0", c.HighlightCount)
	case c.Pause < 0:
		err = fmt.Errorf("pause=%s must be >= 0", c.Pause)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRunConfig, err)
	}
	if _, perr := signal.ParseKind(c.Signal); perr != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRunConfig, perr)
	}

	return nil
}
