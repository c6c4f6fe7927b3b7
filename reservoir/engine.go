// SPDX-License-Identifier: MIT
// Package: reservoir
//
// engine.go - Engine type, construction, the state update and accessors.
//
// Contract:
//   • Engine is not safe for concurrent use; callers synchronize externally.
//   • Every accessor returns a deep copy; callers never alias engine storage.
//   • A failed Update or Train leaves State, history and Wout untouched.

package reservoir

import (
	"fmt"
	"math"

	"github.com/katalvlaran/reservoir/matrix"
	"github.com/sirupsen/logrus"
)

const opUpdate = "Update"

// Engine is an Echo State Network: a fixed random recurrent reservoir and a
// trained linear readout.
type Engine struct {
	cfg  Config
	opts options
	log  logrus.FieldLogger

	win    *matrix.Dense // N × InputDim
	w      *matrix.Dense // N × N, spectral radius = cfg.SpectralRadius
	wout   *matrix.Dense // N × OutputDim; nil until Train succeeds
	rawRho float64       // ρ(W) before rescaling

	state   []float64   // length N
	history [][]float64 // one entry per update-equivalent step
}

// New validates cfg, draws the weights and returns an untrained engine with a zero state.
//
// Implementation:
//   - Stage 1: cfg.Validate (ErrInvalidConfiguration).
//   - Stage 2: resolve options (generator, scaling, connectivity, spectral method, logger).
//   - Stage 3: generate Win and W, rescale W to cfg.SpectralRadius.
//
// Errors:
//   - ErrInvalidConfiguration, ErrSpectralRadiusEstimationFailed.
//
// Determinism:
//   - Same cfg and seed ⇒ identical Win and W.
//
// Complexity:
//   - O(N²) generation plus the spectral measurement (see WithSpectralMethod).
func New(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, engineErrorf(opNew, err)
	}
	o := gatherOptions(opts...)

	win, w, rawRho, err := generateWeights(cfg, o)
	if err != nil {
		return nil, engineErrorf(opNew, err)
	}

	e := &Engine{
		cfg:    cfg,
		opts:   o,
		log:    o.log,
		win:    win,
		w:      w,
		rawRho: rawRho,
		state:  make([]float64, cfg.ReservoirSize),
	}
	e.log.WithFields(logrus.Fields{
		"reservoir_size":  cfg.ReservoirSize,
		"input_dim":       cfg.InputDim,
		"output_dim":      cfg.OutputDim,
		"spectral_radius": cfg.SpectralRadius,
		"raw_radius":      rawRho,
		"leaking_rate":    cfg.LeakingRate,
		"method":          o.method.String(),
	}).Debug("reservoir engine constructed")

	return e, nil
}

// Update feeds one input vector, advances the state and returns the readout.
//
// state ← (1−a)·state + a·tanh(Win·input + W·state)
//
// Returns Woutᵀ·state when trained, otherwise OutputDim zeros.
// Errors: ErrDimensionMismatch, ErrNonFiniteInput; the engine is unchanged on error.
// Complexity: O(N² + N·InputDim + N·OutputDim).
func (e *Engine) Update(input []float64) ([]float64, error) {
	if err := e.checkVector(input, e.cfg.InputDim, "input"); err != nil {
		return nil, engineErrorf(opUpdate, err)
	}
	next, err := e.nextState(input)
	if err != nil {
		return nil, engineErrorf(opUpdate, err)
	}
	e.commit(next)

	out, err := e.output()
	if err != nil {
		return nil, engineErrorf(opUpdate, err)
	}

	return out, nil
}

// nextState computes the leaky-integrated successor of the current state
// without mutating the engine.
func (e *Engine) nextState(input []float64) ([]float64, error) {
	drive, err := matrix.MatVec(e.win, input)
	if err != nil {
		return nil, err
	}
	rec, err := matrix.MatVec(e.w, e.state)
	if err != nil {
		return nil, err
	}

	a := e.cfg.LeakingRate
	next := make([]float64, len(e.state))
	for i := range next {
		next[i] = (1-a)*e.state[i] + a*math.Tanh(drive[i]+rec[i])
	}

	return next, nil
}

// commit installs next as the current state and appends a copy to the history.
func (e *Engine) commit(next []float64) {
	e.state = next
	e.history = append(e.history, cloneVec(next))
}

// output returns Woutᵀ·state, or zeros while untrained.
func (e *Engine) output() ([]float64, error) {
	if e.wout == nil {
		return make([]float64, e.cfg.OutputDim), nil
	}

	return matrix.MatTVec(e.wout, e.state)
}

// checkVector validates length and finiteness of a caller-supplied vector.
func (e *Engine) checkVector(v []float64, want int, what string) error {
	if len(v) != want {
		return fmt.Errorf("%s length %d, want %d: %w", what, len(v), want, ErrDimensionMismatch)
	}
	for i, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%s[%d]=%g: %w", what, i, x, ErrNonFiniteInput)
		}
	}

	return nil
}

// States returns a deep copy of the state history in chronological order.
func (e *Engine) States() [][]float64 {
	out := make([][]float64, len(e.history))
	for i, s := range e.history {
		out[i] = cloneVec(s)
	}

	return out
}

// Reset zeroes the state and clears the history. Weights and Wout are kept.
func (e *Engine) Reset() {
	e.state = make([]float64, e.cfg.ReservoirSize)
	e.history = nil
}

// State returns a copy of the current state vector.
func (e *Engine) State() []float64 { return cloneVec(e.state) }

// Steps returns the number of update-equivalent steps since construction or Reset.
func (e *Engine) Steps() int { return len(e.history) }

// Config returns the construction parameters.
func (e *Engine) Config() Config { return e.cfg }

// Trained reports whether a readout has been fitted.
func (e *Engine) Trained() bool { return e.wout != nil }

// Readout returns a copy of Wout (N × OutputDim) and true, or nil and false while untrained.
func (e *Engine) Readout() (matrix.Matrix, bool) {
	if e.wout == nil {
		return nil, false
	}

	return e.wout.Clone(), true
}

// InputWeights returns a copy of Win (N × InputDim).
func (e *Engine) InputWeights() matrix.Matrix { return e.win.Clone() }

// RecurrentWeights returns a copy of the rescaled W (N × N).
func (e *Engine) RecurrentWeights() matrix.Matrix { return e.w.Clone() }

// RawSpectralRadius returns ρ(W) measured before rescaling; 0 when the
// configured spectral radius is 0 and no measurement was made.
func (e *Engine) RawSpectralRadius() float64 { return e.rawRho }

func cloneVec(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)

	return out
}
