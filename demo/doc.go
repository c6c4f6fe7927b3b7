// SPDX-License-Identifier: MIT

// Package demo runs the interactive reservoir demonstration without a UI.
//
// A Session holds four sliders (reservoir size, spectral radius, input
// scaling, leaking rate) and the engine built from them. Every change builds a
// new engine; the old one is dropped.
//
// Run performs one simulation on the session's engine:
//
//  1. Generate a noisy synthetic series (package signal) and split it.
//  2. Drive the engine over every Stride-th training sample, emitting
//     Progress events with random "active" node indices and pausing.
//  3. Train the readout on the training prefix.
//  4. Replay both halves and report MSE, NRMSE, DTW and the memory-capacity
//     ratio (package metrics).
//
// Run honours context cancellation between drive steps and during pauses.
//
//	s, _ := demo.NewSession(demo.DefaultParameters())
//	rep, err := demo.Run(ctx, s, demo.DefaultRunConfig(), demo.WithProgress(draw))
package demo
