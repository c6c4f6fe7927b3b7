// SPDX-License-Identifier: MIT
package demo_test

import (
	"context"
	"fmt"
	"io"

	"github.com/katalvlaran/reservoir/demo"
	"github.com/sirupsen/logrus"
)

// ExampleRun drives, trains and evaluates a small reservoir on a noisy sine.
func ExampleRun() {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	params, _ := demo.DefaultParameters().With(demo.ReservoirSize, 30)
	s, err := demo.NewSession(params, demo.WithLogger(logger))
	if err != nil {
		fmt.Println(err)
		return
	}

	cfg := demo.DefaultRunConfig()
	cfg.Samples = 200
	cfg.Pause = 0

	rep, err := demo.Run(context.Background(), s, cfg)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("split=%d steps=%d memory=%.2f\n", rep.Split, rep.Steps, rep.MemoryCapacity)
	fmt.Println(rep.ValidationMSE < 0.5)
	// Output:
	// split=160 steps=376 memory=1.88
	// true
}

// ExampleSession_SetParameter shows that a slider change swaps the engine.
func ExampleSession_SetParameter() {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	s, _ := demo.NewSession(demo.DefaultParameters(), demo.WithLogger(logger))
	before := s.Engine()

	if err := s.SetParameter(demo.ReservoirSize, 50); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(s.Engine() != before, s.Engine().Config().ReservoirSize)

	err := s.SetParameter(demo.LeakingRate, 0)
	fmt.Println(err != nil, s.Parameters().Value(demo.LeakingRate))
	// Output:
	// true 50
	// true 0.3
}
