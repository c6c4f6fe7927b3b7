// SPDX-License-Identifier: MIT
// Package: demo
//
// session.go - value-replacement holder of the current parameters and engine.
//
// Contract:
//   • Every successful parameter change builds a fresh engine and discards the
//     old one; engines are never reconfigured in place.
//   • A failed rebuild leaves both parameters and engine untouched.
//   • A Session is not safe for concurrent use.

package demo

import (
	"github.com/katalvlaran/reservoir/reservoir"
	"github.com/sirupsen/logrus"
)

const (
	opNewSession   = "NewSession"
	opSetParameter = "SetParameter"
	opReset        = "ResetParameters"
)

// DefaultSeed seeds every engine a Session builds unless WithSeed is given.
const DefaultSeed int64 = reservoir.DefaultSeed

// Session owns the slider parameters and the engine built from them.
type Session struct {
	params  Parameters
	engine  *reservoir.Engine
	seed    int64
	extra   []reservoir.Option
	log     logrus.FieldLogger
	rebuild int
}

// SessionOption customizes NewSession.
type SessionOption func(*Session)

// WithSeed fixes the weight seed used for every rebuild.
func WithSeed(seed int64) SessionOption {
	return func(s *Session) { s.seed = seed }
}

// WithLogger routes session, engine and run logs to l. Panics on nil.
func WithLogger(l logrus.FieldLogger) SessionOption {
	if l == nil {
		panic("demo: WithLogger(nil)")
	}
	return func(s *Session) { s.log = l }
}

// WithEngineOptions appends engine options (ridge, washout, spectral method, ...)
// applied on every rebuild after the session's own seed, scaling and logger.
func WithEngineOptions(opts ...reservoir.Option) SessionOption {
	return func(s *Session) { s.extra = append(s.extra, opts...) }
}

// NewSession builds the first engine from params.
// Errors: whatever reservoir.New reports (e.g. ErrInvalidConfiguration for a
// zero leaking rate).
func NewSession(params Parameters, opts ...SessionOption) (*Session, error) {
	s := &Session{seed: DefaultSeed}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.log == nil {
		s.log = logrus.New()
	}

	e, err := s.build(params)
	if err != nil {
		return nil, demoErrorf(opNewSession, err)
	}
	s.params, s.engine = params, e

	return s, nil
}

// build constructs an engine for params without touching the session.
func (s *Session) build(params Parameters) (*reservoir.Engine, error) {
	opts := append([]reservoir.Option{
		reservoir.WithSeed(s.seed),
		reservoir.WithInputScaling(params.InputScaling()),
		reservoir.WithLogger(s.log),
	}, s.extra...)

	return reservoir.New(params.Config(), opts...)
}

// replace installs params and a freshly built engine, or nothing on error.
func (s *Session) replace(op string, params Parameters) error {
	e, err := s.build(params)
	if err != nil {
		return demoErrorf(op, err)
	}
	s.params, s.engine = params, e
	s.rebuild++

	s.log.WithFields(logrus.Fields{
		"reservoir_size":  params.Value(ReservoirSize),
		"spectral_radius": params.Value(SpectralRadius),
		"input_scaling":   params.Value(InputScaling),
		"leaking_rate":    params.Value(LeakingRate),
		"rebuild":         s.rebuild,
	}).Debug("engine rebuilt")

	return nil
}

// SetParameter changes one slider and rebuilds the engine.
// Errors: ErrUnknownParameter, ErrParameterOutOfRange, or the engine
// construction error; on any error the session is unchanged.
func (s *Session) SetParameter(id ParameterID, v float64) error {
	next, err := s.params.With(id, v)
	if err != nil {
		return demoErrorf(opSetParameter, err)
	}

	return s.replace(opSetParameter, next)
}

// ResetParameters restores DefaultParameters and rebuilds the engine.
func (s *Session) ResetParameters() error {
	return s.replace(opReset, DefaultParameters())
}

// Parameters returns the current slider set.
func (s *Session) Parameters() Parameters { return s.params }

// Engine returns the current engine instance. It changes after every
// successful SetParameter or ResetParameters.
func (s *Session) Engine() *reservoir.Engine { return s.engine }

// Logger returns the session logger.
func (s *Session) Logger() logrus.FieldLogger { return s.log }
