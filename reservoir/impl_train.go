// SPDX-License-Identifier: MIT
// Package: reservoir
//
// impl_train.go - batch ridge-regression readout.
//
//   Wout = (SᵀS + λI)⁻¹ · SᵀT
//
// S stacks the re-driven states (rows = time, cols = units) and T the targets.
// The system is solved by Cholesky factorization and two triangular solves;
// no inverse is formed.

package reservoir

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/reservoir/matrix"
	"github.com/sirupsen/logrus"
)

const opTrain = "Train"

// Train re-drives the reservoir through inputs and fits the readout to targets.
//
// Implementation:
//   - Stage 1: validate the pair of sequences (lengths, per-sample dimensions,
//     finiteness, washout < len).
//   - Stage 2: snapshot State and the history length.
//   - Stage 3: drive the reservoir from its current state, one Update-equivalent
//     step per input, collecting states after the washout.
//   - Stage 4: solve the ridge system; on success replace Wout.
//
// Behavior highlights:
//   - State and history advance exactly as len(inputs) Update calls would.
//   - Any failure rolls State, history and Wout back to their pre-call values.
//
// Errors:
//   - ErrInvalidTrainingSet, ErrDimensionMismatch, ErrNonFiniteInput (Stage 1).
//   - ErrSingularSystem when SᵀS + λI is not positive-definite (Stage 4).
//
// Complexity:
//   - Time O(T·N²) for the drive and the Gram matrix plus O(N³/3) for the factorization.
//   - Space O(T·N + N²).
func (e *Engine) Train(inputs, targets [][]float64) error {
	if err := e.checkTrainingSet(inputs, targets); err != nil {
		return engineErrorf(opTrain, err)
	}
	started := time.Now()

	savedState := cloneVec(e.state)
	savedSteps := len(e.history)
	rollback := func() {
		e.state = savedState
		e.history = e.history[:savedSteps]
	}

	washout := e.opts.washout
	collected := make([][]float64, 0, len(inputs)-washout)
	for t, u := range inputs {
		next, err := e.nextState(u)
		if err != nil {
			rollback()
			return engineErrorf(opTrain, err)
		}
		e.commit(next)
		if t >= washout {
			collected = append(collected, e.history[len(e.history)-1])
		}
	}

	wout, err := e.solveReadout(collected, targets[washout:])
	if err != nil {
		rollback()
		return engineErrorf(opTrain, err)
	}
	e.wout = wout

	e.log.WithFields(logrus.Fields{
		"samples":  len(inputs),
		"washout":  washout,
		"ridge":    e.opts.ridge,
		"steps":    len(e.history),
		"duration": time.Since(started),
	}).Debug("readout trained")

	return nil
}

// checkTrainingSet validates the sequence pair without touching the engine.
func (e *Engine) checkTrainingSet(inputs, targets [][]float64) error {
	if len(inputs) == 0 {
		return fmt.Errorf("empty input sequence: %w", ErrInvalidTrainingSet)
	}
	if len(inputs) != len(targets) {
		return fmt.Errorf("%d inputs vs %d targets: %w", len(inputs), len(targets), ErrInvalidTrainingSet)
	}
	if e.opts.washout >= len(inputs) {
		return fmt.Errorf("washout %d leaves no samples of %d: %w", e.opts.washout, len(inputs), ErrInvalidTrainingSet)
	}
	for t := range inputs {
		if err := e.checkVector(inputs[t], e.cfg.InputDim, fmt.Sprintf("inputs[%d]", t)); err != nil {
			return err
		}
		if err := e.checkVector(targets[t], e.cfg.OutputDim, fmt.Sprintf("targets[%d]", t)); err != nil {
			return err
		}
	}

	return nil
}

// solveReadout computes (SᵀS + λI)⁻¹SᵀT for row-stacked states and targets.
func (e *Engine) solveReadout(states, targets [][]float64) (*matrix.Dense, error) {
	S, err := matrix.NewDenseFromRows(states)
	if err != nil {
		return nil, err
	}
	T, err := matrix.NewDenseFromRows(targets)
	if err != nil {
		return nil, err
	}

	St, err := matrix.Transpose(S)
	if err != nil {
		return nil, err
	}
	gram, err := matrix.Mul(St, S)
	if err != nil {
		return nil, err
	}
	gram, err = matrix.AddDiagonal(gram, e.opts.ridge)
	if err != nil {
		return nil, err
	}
	rhs, err := matrix.Mul(St, T)
	if err != nil {
		return nil, err
	}

	wout, err := matrix.SolveSPD(gram, rhs)
	if errors.Is(err, matrix.ErrNotPositiveDefinite) {
		return nil, fmt.Errorf("ridge %g: %w: %w", e.opts.ridge, ErrSingularSystem, err)
	}
	if err != nil {
		return nil, err
	}

	return wout, nil
}
