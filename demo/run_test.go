// SPDX-License-Identifier: MIT
package demo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/reservoir/demo"
	"github.com/katalvlaran/reservoir/matrix"
	"github.com/katalvlaran/reservoir/reservoir"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// fastConfig is a 200-sample run without pauses: split 160, a drive of 16
// updates with highlights at samples 0, 50, 100 and 150.
func fastConfig() demo.RunConfig {
	cfg := demo.DefaultRunConfig()
	cfg.Samples = 200
	cfg.Pause = 0

	return cfg
}

type RunSuite struct {
	suite.Suite
	session *demo.Session
}

func (s *RunSuite) SetupTest() {
	s.session, _ = MustSession(s.T(), smallParams(s.T()))
}

func TestRunSuite(t *testing.T) {
	suite.Run(t, new(RunSuite))
}

func (s *RunSuite) TestReport() {
	rep, err := demo.Run(context.Background(), s.session, fastConfig())
	s.Require().NoError(err)

	id, err := uuid.Parse(rep.RunID)
	s.Require().NoError(err)
	s.Equal(uuid.Version(7), id.Version())

	s.Equal("sine", rep.Signal)
	s.Equal(200, rep.Samples)
	s.Equal(160, rep.Split)
	s.Equal(16+160+200, rep.Steps)
	s.InDelta(376.0/200, rep.MemoryCapacity, 1e-15)
	s.Equal(0.9, rep.SpectralRadius)
	s.Greater(rep.RawSpectralRadius, 0.0)
	s.Equal(s.session.Parameters().All(), rep.Parameters)

	s.GreaterOrEqual(rep.TrainingMSE, 0.0)
	s.GreaterOrEqual(rep.ValidationMSE, 0.0)
	s.Less(rep.TrainingMSE, 0.5, "one-step sine prediction should beat the zero predictor")
	s.Less(rep.ValidationNRMSE, 1.0)
	s.GreaterOrEqual(rep.ValidationDTW, 0.0)
	s.True(s.session.Engine().Trained())
}

func (s *RunSuite) TestProgressEvents() {
	var events []demo.Progress
	_, err := demo.Run(context.Background(), s.session, fastConfig(), demo.WithProgress(func(p demo.Progress) {
		events = append(events, p)
	}))
	s.Require().NoError(err)
	s.Require().Len(events, 6)

	for k, sample := range []int{0, 50, 100, 150} {
		s.Equal(demo.PhaseDrive, events[k].Phase)
		s.Equal(sample, events[k].Sample)
		s.Equal(160, events[k].Split)
		s.Len(events[k].ActiveNodes, demo.DefaultHighlightCount)
		for _, idx := range events[k].ActiveNodes {
			s.GreaterOrEqual(idx, 0)
			s.Less(idx, 20)
		}
	}
	s.Equal(demo.PhaseTrain, events[4].Phase)
	s.Equal(demo.PhaseEvaluate, events[5].Phase)
	s.Nil(events[5].ActiveNodes)
}

func (s *RunSuite) TestCancelDuringPause() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	cfg := fastConfig()
	cfg.Pause = time.Hour

	_, err := demo.Run(ctx, s.session, cfg, demo.WithProgress(func(p demo.Progress) {
		if p.Sample == 50 {
			cancel()
		}
	}))
	s.Require().ErrorIs(err, context.Canceled)
	// Samples 0..40 were driven; the pause at 50 was interrupted before its update.
	s.Equal(5, s.session.Engine().Steps())
	s.False(s.session.Engine().Trained())
}

func (s *RunSuite) TestDeadline() {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	cfg := demo.DefaultRunConfig()
	cfg.Pause = 10 * time.Millisecond

	_, err := demo.Run(ctx, s.session, cfg)
	s.Require().ErrorIs(err, context.DeadlineExceeded)
}

func (s *RunSuite) TestCancelledBeforeStart() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := demo.Run(ctx, s.session, fastConfig())
	s.Require().ErrorIs(err, context.Canceled)
	s.Equal(0, s.session.Engine().Steps())
}

func (s *RunSuite) TestInvalidConfig() {
	mutations := map[string]func(c *demo.RunConfig){
		"samples":   func(c *demo.RunConfig) { c.Samples = 1 },
		"noise":     func(c *demo.RunConfig) { c.Noise = -1 },
		"split":     func(c *demo.RunConfig) { c.Split = 1 },
		"stride":    func(c *demo.RunConfig) { c.Stride = 0 },
		"highlight": func(c *demo.RunConfig) { c.HighlightEvery = 0 },
		"count":     func(c *demo.RunConfig) { c.HighlightCount = -1 },
		"pause":     func(c *demo.RunConfig) { c.Pause = -time.Second },
		"signal":    func(c *demo.RunConfig) { c.Signal = "square" },
	}
	for name, mutate := range mutations {
		cfg := fastConfig()
		mutate(&cfg)
		_, err := demo.Run(context.Background(), s.session, cfg)
		s.ErrorIs(err, demo.ErrInvalidRunConfig, name)
	}
	s.Equal(0, s.session.Engine().Steps())
}

func (s *RunSuite) TestOtherSignals() {
	for _, name := range []string{"chirp", "pulse"} {
		cfg := fastConfig()
		cfg.Signal = name
		rep, err := demo.Run(context.Background(), s.session, cfg)
		s.Require().NoError(err, name)
		s.Equal(name, rep.Signal)
	}
}

// TestEngineFailureIsFatal forces a singular readout with a negative ridge.
func TestEngineFailureIsFatal(t *testing.T) {
	s, _ := MustSession(t, smallParams(t), demo.WithEngineOptions(reservoir.WithRidge(-1e6)))
	_, err := demo.Run(context.Background(), s, fastConfig())
	require.ErrorIs(t, err, demo.ErrRunFailed)
	require.ErrorIs(t, err, reservoir.ErrSingularSystem)
	require.ErrorIs(t, err, matrix.ErrNotPositiveDefinite)
}

// TestRunsAreReproducible compares two sessions with identical seeds.
func TestRunsAreReproducible(t *testing.T) {
	a, _ := MustSession(t, smallParams(t))
	b, _ := MustSession(t, smallParams(t))
	ra, err := demo.Run(context.Background(), a, fastConfig())
	require.NoError(t, err)
	rb, err := demo.Run(context.Background(), b, fastConfig())
	require.NoError(t, err)

	require.NotEqual(t, ra.RunID, rb.RunID)
	require.Equal(t, ra.TrainingMSE, rb.TrainingMSE)
	require.Equal(t, ra.ValidationMSE, rb.ValidationMSE)
	require.Equal(t, ra.ValidationDTW, rb.ValidationDTW)
}

func TestRunLogsSummary(t *testing.T) {
	s, hook := MustSession(t, smallParams(t))
	rep, err := demo.Run(context.Background(), s, fastConfig())
	require.NoError(t, err)

	entry := hook.LastEntry()
	require.Equal(t, "run finished", entry.Message)
	require.Equal(t, rep.RunID, entry.Data["run_id"])
	require.Equal(t, rep.Steps, entry.Data["steps"])
}
