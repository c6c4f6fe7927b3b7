// SPDX-License-Identifier: MIT
// Package: demo
//
// run.go - one animated simulation: drive, train, evaluate, report.
//
// Phases:
//   • Drive:    every Stride-th training sample is fed through Update; every
//     HighlightEvery samples a Progress event with random "active" node
//     indices is emitted and the run pauses. The indices are cosmetic.
//   • Train:    one Train call over the training prefix.
//   • Evaluate: prefix then suffix replayed through Update; MSE per half,
//     NRMSE and DTW on the validation half.
//
// The engine is not reset between phases, so Steps (and MemoryCapacity) count
// the drive, the training re-drive and the replay.

package demo

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/reservoir/metrics"
	"github.com/katalvlaran/reservoir/signal"
	"github.com/sirupsen/logrus"
)

const opRun = "Run"

// Phase names a stage of a run.
type Phase string

// Run phases in order.
const (
	PhaseDrive    Phase = "drive"
	PhaseTrain    Phase = "train"
	PhaseEvaluate Phase = "evaluate"
)

// Progress is emitted during a run.
type Progress struct {
	Phase Phase
	// Sample is the index of the next training sample (drive) or the split (later phases).
	Sample int
	// Split is the number of training samples.
	Split int
	// ActiveNodes are random reservoir indices to highlight; drive phase only.
	ActiveNodes []int
}

// ProgressFunc receives Progress events synchronously on the run goroutine.
type ProgressFunc func(Progress)

// RunOption customizes Run.
type RunOption func(*runOptions)

type runOptions struct {
	progress ProgressFunc
}

// WithProgress registers a progress callback. Panics on nil.
func WithProgress(fn ProgressFunc) RunOption {
	if fn == nil {
		panic("demo: WithProgress(nil)")
	}
	return func(o *runOptions) { o.progress = fn }
}

// Report summarizes a finished run.
type Report struct {
	RunID             string        `json:"run_id"`
	Signal            string        `json:"signal"`
	Parameters        []Parameter   `json:"parameters"`
	TrainingMSE       float64       `json:"training_mse"`
	ValidationMSE     float64       `json:"validation_mse"`
	ValidationNRMSE   float64       `json:"validation_nrmse"`
	ValidationDTW     float64       `json:"validation_dtw"`
	SpectralRadius    float64       `json:"spectral_radius"`
	RawSpectralRadius float64       `json:"raw_spectral_radius"`
	MemoryCapacity    float64       `json:"memory_capacity"`
	Steps             int           `json:"steps"`
	Samples           int           `json:"samples"`
	Split             int           `json:"split"`
	Elapsed           time.Duration `json:"elapsed"`
}

// Run executes one simulation on the session's current engine.
//
// Errors:
//   - ErrInvalidRunConfig when cfg fails Validate.
//   - ctx.Err() (wrapped) when the context ends during the drive.
//   - ErrRunFailed wrapping the cause for dataset, engine or metric failures.
func Run(ctx context.Context, s *Session, cfg RunConfig, opts ...RunOption) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, demoErrorf(opRun, err)
	}
	var o runOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	emit := func(p Progress) {
		if o.progress != nil {
			o.progress(p)
		}
	}
	fail := func(stage string, err error) (Report, error) {
		return Report{}, demoErrorf(opRun, fmt.Errorf("%s: %w: %w", stage, ErrRunFailed, err))
	}

	started := time.Now()
	id, err := uuid.NewV7()
	if err != nil {
		return fail("run id", err)
	}
	log := s.Logger().WithFields(logrus.Fields{"run_id": id.String(), "signal": cfg.Signal})

	kind, _ := signal.ParseKind(cfg.Signal)
	data, err := signal.Generate(kind, cfg.Samples, signal.WithSeed(cfg.Seed), signal.WithUniformNoise(cfg.Noise))
	if err != nil {
		return fail("dataset", err)
	}
	train, valid, err := data.Split(cfg.Split)
	if err != nil {
		return fail("dataset", err)
	}
	split := train.Len()

	e := s.Engine()
	size := e.Config().ReservoirSize
	rng := rand.New(rand.NewSource(cfg.Seed))

	log.WithFields(logrus.Fields{"samples": data.Len(), "split": split}).Debug("drive started")
	for i := 0; i < split; i += cfg.Stride {
		if err = ctx.Err(); err != nil {
			return Report{}, demoErrorf(opRun, err)
		}
		if i%cfg.HighlightEvery == 0 {
			active := make([]int, cfg.HighlightCount)
			for k := range active {
				active[k] = rng.Intn(size)
			}
			emit(Progress{Phase: PhaseDrive, Sample: i, Split: split, ActiveNodes: active})
			if err = sleep(ctx, cfg.Pause); err != nil {
				return Report{}, demoErrorf(opRun, err)
			}
		}
		if _, err = e.Update(train.Inputs[i]); err != nil {
			return fail("drive", err)
		}
	}

	emit(Progress{Phase: PhaseTrain, Sample: split, Split: split})
	if err = e.Train(train.Inputs, train.Targets); err != nil {
		return fail("train", err)
	}

	emit(Progress{Phase: PhaseEvaluate, Sample: split, Split: split})
	var trainAcc, validAcc metrics.Accumulator
	for i, u := range train.Inputs {
		y, uerr := e.Update(u)
		if uerr != nil {
			return fail("evaluate", uerr)
		}
		if err = trainAcc.Add(y, train.Targets[i]); err != nil {
			return fail("evaluate", err)
		}
	}
	pred := make([]float64, valid.Len())
	for i, u := range valid.Inputs {
		y, uerr := e.Update(u)
		if uerr != nil {
			return fail("evaluate", uerr)
		}
		if err = validAcc.Add(y, valid.Targets[i]); err != nil {
			return fail("evaluate", err)
		}
		pred[i] = y[0]
	}

	rep := Report{
		RunID:             id.String(),
		Signal:            kind.String(),
		Parameters:        s.Parameters().All(),
		SpectralRadius:    e.Config().SpectralRadius,
		RawSpectralRadius: e.RawSpectralRadius(),
		Steps:             e.Steps(),
		Samples:           data.Len(),
		Split:             split,
	}
	if rep.TrainingMSE, err = trainAcc.MSE(); err != nil {
		return fail("metrics", err)
	}
	if rep.ValidationMSE, err = validAcc.MSE(); err != nil {
		return fail("metrics", err)
	}
	truth := signal.Column(valid.Targets, 0)
	rep.ValidationNRMSE, err = metrics.NRMSE(pred, truth)
	switch {
	case errors.Is(err, metrics.ErrZeroVariance):
		log.Warn("constant validation target, NRMSE reported as 0")
		rep.ValidationNRMSE = 0
	case err != nil:
		return fail("metrics", err)
	}
	dtwOpts := metrics.DefaultDTWOptions()
	dtwOpts.MemoryMode = metrics.TwoRows
	if rep.ValidationDTW, _, err = metrics.DTW(pred, truth, &dtwOpts); err != nil {
		return fail("metrics", err)
	}
	if rep.MemoryCapacity, err = metrics.MemoryCapacity(e.Steps(), data.Len()); err != nil {
		return fail("metrics", err)
	}
	rep.Elapsed = time.Since(started)

	log.WithFields(logrus.Fields{
		"training_mse":    rep.TrainingMSE,
		"validation_mse":  rep.ValidationMSE,
		"memory_capacity": rep.MemoryCapacity,
		"steps":           rep.Steps,
		"elapsed":         rep.Elapsed,
	}).Info("run finished")

	return rep, nil
}

// sleep waits d or until ctx ends. d <= 0 only checks ctx.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
