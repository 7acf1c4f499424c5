// Package subtraction defines the options, sampler abstraction, and sentinel
// errors shared by the subtraction-type recurrences.
package subtraction

import (
	"errors"
	"math/rand"
	"time"
)

// DefaultMaxDepth is the recursion budget applied when no WithMaxDepth option
// is given. It is also the largest input the recursive forms accept by default.
const DefaultMaxDepth = 1 << 20

// descentThreshold is the probability that a ProbabilisticDescent level
// resolves the problem instead of recursing.
const descentThreshold = 0.5

var (
	// ErrInvalidArgument is returned when an input lies outside the domain of
	// the recurrence (e.g. HanoiMoves with n ≤ 0).
	ErrInvalidArgument = errors.New("subtraction: invalid argument")

	// ErrDepthExceeded indicates that evaluating the recurrence would need
	// more stack frames than Options.MaxDepth allows.
	ErrDepthExceeded = errors.New("subtraction: recursion depth exceeded")

	// ErrOverflow indicates that the exact result does not fit in an int64.
	ErrOverflow = errors.New("subtraction: result overflows int64")
)

// UniformSampler provides independent samples uniformly distributed in [0,1).
// *math/rand.Rand satisfies it.
type UniformSampler interface {
	Float64() float64
}

// Option configures optional behavior of the recursive evaluations.
type Option func(*Options)

// Options holds the configurable parameters of a single evaluation.
type Options struct {
	// Sampler feeds ProbabilisticDescent. When nil a fresh, locally seeded
	// source is created for the call.
	Sampler UniformSampler

	// MaxDepth is the largest number of recursive frames an evaluation may use.
	MaxDepth int
}

// DefaultOptions returns Options with:
//   - no sampler (a fresh time-seeded source per call)
//   - MaxDepth = DefaultMaxDepth
func DefaultOptions() Options {
	return Options{
		Sampler:  nil,
		MaxDepth: DefaultMaxDepth,
	}
}

// WithSampler returns an Option that injects s as the random source.
// Panics on nil to surface programmer error early.
func WithSampler(s UniformSampler) Option {
	if s == nil {
		panic("subtraction: WithSampler(nil)")
	}
	return func(o *Options) {
		o.Sampler = s
	}
}

// WithSeed returns an Option that uses a new *rand.Rand seeded with seed.
// Use it in tests and examples to make ProbabilisticDescent reproducible.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Sampler = rand.New(rand.NewSource(seed)) // deterministic source
	}
}

// WithMaxDepth returns an Option that sets the recursion budget.
// Panics if limit < 1.
func WithMaxDepth(limit int) Option {
	if limit < 1 {
		panic("subtraction: WithMaxDepth(limit<1)")
	}
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// resolveOptions applies opts in order over DefaultOptions.
func resolveOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// sampler returns the configured sampler, creating a private source if none was set.
func (o *Options) sampler() UniformSampler {
	if o.Sampler == nil {
		o.Sampler = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return o.Sampler
}
