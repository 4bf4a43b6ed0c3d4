// SPDX-License-Identifier: MIT
// Package: lvprep/split
//
// options.go — functional options and deterministic defaults.
//
// Contract:
//   • Options are functional (type Option func(*config)), applied in order,
//     last wins.
//   • Option constructors VALIDATE and PANIC on meaningless inputs; the
//     splitting path itself never panics.
//   • Randomness is never configured here: the seed is an input of the split
//     (random_state), not a property of the Splitter.

package split

import (
	"math"

	"go.uber.org/zap"
)

// Defaults (named, no magic numbers).
const (
	// DefaultRandomState seeds the shuffle when the caller gives no random_state.
	DefaultRandomState int64 = 69

	// DefaultTestFraction is the unsupervised default test share.
	DefaultTestFraction = 0.2

	// DefaultEpsilon is the tolerance for "fractions add up to 1".
	DefaultEpsilon = 1e-9
)

// Sizer returns the default test fraction when neither test_size nor
// train_size is given. features is the number of columns of X; supervised
// reports whether a target was supplied. The result must lie in [0,1].
type Sizer func(features int, supervised bool) float64

// HeuristicSizer is the default Sizer: 0.2 without a target, 1/√features
// with one. The held-out share shrinks as dimensionality grows; zero
// features give +Inf, which validation rejects.
func HeuristicSizer(features int, supervised bool) float64 {
	if !supervised {
		return DefaultTestFraction
	}

	return 1 / math.Sqrt(float64(features))
}

// Option customizes a Splitter.
type Option func(*config)

// config aggregates Splitter knobs.
type config struct {
	logger *zap.Logger // never nil after newConfig
	sizer  Sizer       // default test fraction policy
	eps    float64     // fraction-sum tolerance, >= 0
}

// WithLogger routes debug records (resolved plan, rejections) to l.
// Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("split: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithDefaultSizer replaces HeuristicSizer. Panics on nil.
func WithDefaultSizer(fn Sizer) Option {
	if fn == nil {
		panic("split: WithDefaultSizer(nil)")
	}
	return func(c *config) { c.sizer = fn }
}

// WithEpsilon sets the tolerance used when checking that two explicit
// fractions add up to 1. Panics unless eps is finite and non-negative.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic("split: WithEpsilon: eps must be finite, non-negative")
	}
	return func(c *config) { c.eps = eps }
}

// newConfig starts from the defaults and applies opts in order.
func newConfig(opts ...Option) config {
	cfg := config{
		logger: zap.NewNop(),
		sizer:  HeuristicSizer,
		eps:    DefaultEpsilon,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
