// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/katalvlaran/reservoir/demo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// parameterFlags maps flag names onto sliders.
var parameterFlags = []struct {
	name string
	id   demo.ParameterID
}{
	{"reservoir-size", demo.ReservoirSize},
	{"spectral-radius", demo.SpectralRadius},
	{"input-scaling", demo.InputScaling},
	{"leaking-rate", demo.LeakingRate},
}

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	ConfigPath string
	Values     map[demo.ParameterID]*float64
	Seed       int64
	DataSeed   int64
	Samples    int
	Signal     string
	Noise      float64
	Pause      time.Duration
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts, Values: make(map[demo.ParameterID]*float64)}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Drive, train and evaluate one reservoir",
		Long: `Run one simulation: generate a noisy signal, drive the reservoir over
the training part, fit the ridge readout, replay both parts and report
the errors.

Flags override values from --config. Ctrl-C cancels the run.

Example:
  esn run --reservoir-size 200 --leaking-rate 0.5
  esn run --config run.yaml --pause 0 --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulation(opts, cmd)
		},
	}

	defaults := demo.DefaultParameters()
	runDefaults := demo.DefaultRunConfig()
	fl := cmd.Flags()
	fl.StringVarP(&opts.ConfigPath, "config", "c", "", "YAML run file")
	for _, pf := range parameterFlags {
		p := defaults.Get(pf.id)
		opts.Values[pf.id] = fl.Float64(pf.name, p.Value,
			fmt.Sprintf("%s in [%g, %g]", strings.ToLower(p.Name), p.Min, p.Max))
	}
	fl.Int64Var(&opts.Seed, "seed", demo.DefaultSeed, "weight seed")
	fl.Int64Var(&opts.DataSeed, "data-seed", runDefaults.Seed, "signal noise seed")
	fl.IntVar(&opts.Samples, "samples", runDefaults.Samples, "series length")
	fl.StringVar(&opts.Signal, "signal", runDefaults.Signal, "waveform (sine|chirp|pulse)")
	fl.Float64Var(&opts.Noise, "noise", runDefaults.Noise, "uniform input noise level")
	fl.DurationVar(&opts.Pause, "pause", runDefaults.Pause, "pause after each progress event")

	return cmd
}

// settings merges defaults, the config file and explicitly set flags.
func (o *RunOptions) settings(cmd *cobra.Command) (Settings, error) {
	s := DefaultSettings()
	if o.ConfigPath != "" {
		var err error
		if s, err = LoadConfigFile(o.ConfigPath, s); err != nil {
			return s, err
		}
	}

	fl := cmd.Flags()
	for _, pf := range parameterFlags {
		if !fl.Changed(pf.name) {
			continue
		}
		next, err := s.Parameters.With(pf.id, *o.Values[pf.id])
		if err != nil {
			return s, fmt.Errorf("--%s: %w", pf.name, err)
		}
		s.Parameters = next
	}
	if fl.Changed("seed") {
		s.Seed = o.Seed
	}
	if fl.Changed("data-seed") {
		s.Run.Seed = o.DataSeed
	}
	if fl.Changed("samples") {
		s.Run.Samples = o.Samples
	}
	if fl.Changed("signal") {
		s.Run.Signal = o.Signal
	}
	if fl.Changed("noise") {
		s.Run.Noise = o.Noise
	}
	if fl.Changed("pause") {
		s.Run.Pause = o.Pause
	}

	return s, s.Run.Validate()
}

func runSimulation(opts *RunOptions, cmd *cobra.Command) error {
	f := opts.formatter(cmd)
	logger := opts.NewLogger(cmd.ErrOrStderr())

	settings, err := opts.settings(cmd)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeConfig, "invalid run settings", err)
	}

	session, err := demo.NewSession(settings.Parameters,
		demo.WithSeed(settings.Seed), demo.WithLogger(logger))
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeParameter, "cannot build reservoir", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	progress := demo.WithProgress(func(p demo.Progress) {
		logger.WithFields(logrus.Fields{
			"phase":  p.Phase,
			"sample": p.Sample,
			"split":  p.Split,
			"active": p.ActiveNodes,
		}).Debug("progress")
	})
	rep, err := demo.Run(ctx, session, settings.Run, progress)
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return f.Fail(ExitFailure, ErrCodeCancelled, "run cancelled", err)
	case err != nil:
		return f.Fail(ExitFailure, ErrCodeRun, "run failed", err)
	}

	return f.Success(reportView(rep))
}

// reportView prints a Report as aligned text.
type reportView demo.Report

func (r reportView) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "run %s: %s, %d samples, split %d\n", r.RunID, r.Signal, r.Samples, r.Split)
	for _, p := range r.Parameters {
		fmt.Fprintf(&b, "  %-18s %10.4g\n", p.Name, p.Value)
	}
	fmt.Fprintf(&b, "  %-18s %10.6f\n", "training MSE", r.TrainingMSE)
	fmt.Fprintf(&b, "  %-18s %10.6f\n", "validation MSE", r.ValidationMSE)
	fmt.Fprintf(&b, "  %-18s %10.6f\n", "validation NRMSE", r.ValidationNRMSE)
	fmt.Fprintf(&b, "  %-18s %10.6f\n", "validation DTW", r.ValidationDTW)
	fmt.Fprintf(&b, "  %-18s %10.4f (raw %.4f)\n", "spectral radius", r.SpectralRadius, r.RawSpectralRadius)
	fmt.Fprintf(&b, "  %-18s %10.4f (%d steps)\n", "memory capacity", r.MemoryCapacity, r.Steps)
	fmt.Fprintf(&b, "  %-18s %10s\n", "elapsed", r.Elapsed.Round(time.Millisecond))

	return b.String()
}
