// SPDX-License-Identifier: MIT

// Package reservoir implements an Echo State Network (ESN) engine.
//
// An Engine owns three linear operators:
//
//   - Win (N × InputDim): random, entries uniform in [-s, s] for input scaling s;
//   - W (N × N): random, optionally sparse, rescaled so max |λ(W)| equals
//     Config.SpectralRadius;
//   - Wout (N × OutputDim): fitted by Train with ridge regression, absent before.
//
// Each Update advances the state with leaky integration
//
//	state ← (1−a)·state + a·tanh(Win·u + W·state)
//
// and returns Woutᵀ·state (zeros while untrained). Every state is appended to a
// history that States exposes and Reset clears.
//
// Train re-drives the reservoir from its current state through the training
// inputs and solves Wout = (SᵀS + λI)⁻¹SᵀT by Cholesky factorization. Training
// is transactional: on any error the engine is exactly as before the call.
//
// Randomness flows only from WithSeed or WithRand, so a Config and a seed fully
// determine the weights. The engine is single-threaded; callers that share one
// across goroutines must synchronize.
//
// Example:
//
//	e, err := reservoir.New(reservoir.Config{
//		ReservoirSize: 100, InputDim: 1, OutputDim: 1,
//		SpectralRadius: 0.9, LeakingRate: 0.3,
//	}, reservoir.WithSeed(7), reservoir.WithInputScaling(0.1))
//	if err != nil { ... }
//	if err := e.Train(inputs, targets); err != nil { ... }
//	y, err := e.Update([]float64{x})
package reservoir
