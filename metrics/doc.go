// SPDX-License-Identifier: MIT

// Package metrics scores reservoir predictions against targets.
//
//   - MSE, RMSE, SeriesMSE and NRMSE: squared-error scores; Accumulator keeps a
//     running MSE while predictions stream out of Engine.Update.
//   - DTW: Dynamic Time Warping distance with a Sakoe–Chiba band, slope
//     penalty, three memory modes and optional path recovery. It tolerates
//     phase lag that a pointwise MSE punishes.
//   - MemoryCapacity: the coarse steps/total ratio reported by the demo.
//
// All functions are pure and safe for concurrent use. Errors are sentinels
// matched with errors.Is.
package metrics
