// Package reservoir is an in-memory playground for Echo State Networks:
// a fixed random recurrent reservoir, a leaky-tanh state update and a
// ridge-regression readout, plus everything needed to watch one learn.
//
// 🚀 What is inside?
//
//	• matrix/    - dense row-major kernels: Mul, MatVec, Cholesky, SolveSPD,
//	               spectral radius (restarted Arnoldi or gonum eigen), seeded fills
//	• reservoir/ - the Engine: New, Update, Train, Reset, States
//	• signal/    - seeded sine, chirp and pulse datasets for one-step prediction
//	• metrics/   - MSE, RMSE, NRMSE, DTW, memory-capacity ratio
//	• demo/      - the slider parameters, a Session and the animated Run
//	• cmd/esn    - the command line front end
//
// ✨ Guarantees
//
//   - Same Config, options and seed: bit-identical weights and outputs.
//   - Train is all-or-nothing: on error the readout, state and history are
//     exactly as before the call.
//   - The recurrent matrix is rescaled to the requested spectral radius;
//     estimation failures are reported, never silently ignored.
//
// Quick start:
//
//	e, _ := reservoir.New(reservoir.Config{
//		ReservoirSize: 100, InputDim: 1, OutputDim: 1,
//		SpectralRadius: 0.9, LeakingRate: 0.3,
//	})
//	_ = e.Train(inputs, targets)
//	y, _ := e.Update([]float64{0.5})
//
// Or from the shell:
//
//	go run ./cmd/esn run --reservoir-size 200 --pause 0
package reservoir
