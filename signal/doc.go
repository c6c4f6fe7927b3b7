// SPDX-License-Identifier: MIT

// Package signal generates seeded synthetic time series for one-step-ahead
// prediction with a reservoir.
//
// Generators:
//
//   - Sine:  A·sin(ω·i), ω radians per sample (default 0.1).
//   - Chirp: linear frequency sweep, phase-accumulated.
//   - Pulse: rectangular (duty cycle) or triangular pulse train.
//
// Every generator returns a Dataset whose Inputs carry the optional trend and
// noise and whose Targets are the clean waveform one sample ahead. Split cuts a
// Dataset into a training prefix and a validation suffix.
//
// Determinism: noise is drawn from the generator given by WithSeed or WithRand
// (DefaultSeed otherwise), in sample order. A disabled noise source draws nothing,
// so noiseless datasets never touch the generator.
package signal
