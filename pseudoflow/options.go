// SPDX-License-Identifier: MIT
// Package: hpf/pseudoflow
//
// options.go — functional options for the pseudoflow solver.
package pseudoflow

import "io"

// Option customizes a solve by mutating a config before the solver runs.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*config)

// config holds the resolved, private solver configuration.
type config struct {
	roundNegativeCapacity bool
	epsilon               float64
	trace                 io.Writer
	diagnostics           bool
}

// DefaultOptions returns the production-default Option set: no rounding of
// negative capacities (they are rejected), epsilon = 1e-9, no trace writer,
// no diagnostics.
func DefaultOptions() []Option {
	return nil // newConfig's built-in defaults already match these
}

// WithRoundNegativeCapacity controls whether a resolved negative capacity on
// a source- or sink-adjacent arc is clamped to 0 (true) or rejected with
// ErrNegativeResolvedCapacity (false, the default).
func WithRoundNegativeCapacity(round bool) Option {
	return func(c *config) { c.roundNegativeCapacity = round }
}

// WithEpsilon sets the numerical tolerance below which residuals and
// excesses are treated as zero. Panics on a non-positive value.
func WithEpsilon(eps float64) Option {
	if eps <= 0 {
		panic("pseudoflow: WithEpsilon(<=0)")
	}

	return func(c *config) { c.epsilon = eps }
}

// WithTrace attaches a writer that receives one line per relabel/merge/gap
// event. Nil (the default) disables tracing entirely; passing nil here is a
// no-op, not a panic, since it is the natural way to turn tracing back off.
func WithTrace(w io.Writer) Option {
	return func(c *config) { c.trace = w }
}

// WithDiagnostics enables Result.Diagnostics() population. Off by default
// to keep the common path allocation-free.
func WithDiagnostics(enabled bool) Option {
	return func(c *config) { c.diagnostics = enabled }
}

// newConfig applies opts over built-in defaults.
func newConfig(opts ...Option) *config {
	c := &config{
		roundNegativeCapacity: false,
		epsilon:               1e-9,
		trace:                 nil,
		diagnostics:           false,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}
