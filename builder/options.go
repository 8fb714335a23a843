// SPDX-License-Identifier: MIT
// Package: lvdawg/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Insertion and query methods never panic.
//   • No hidden globals; everything flows through config.

package builder

import "github.com/go-logr/logr"

// Option customizes a Dawg before the first insertion.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*config)

// WithLogger routes diagnostic output to log. Freeze statistics and rejected
// insertions are logged at V(1), per-minimization counts at V(2).
// The default is logr.Discard().
func WithLogger(log logr.Logger) Option {
	return func(c *config) {
		c.log = log
	}
}

// WithPathCompare overrides the order in which paths must be inserted.
// fn must have type func(a, b []S) int for the symbol type S of the Dawg it is
// passed to; New panics otherwise. Panics on nil.
//
// The default compares element-wise with the symbol comparator, then by length.
func WithPathCompare[S comparable](fn func(a, b []S) int) Option {
	if fn == nil {
		panic("builder: WithPathCompare(nil)")
	}
	return func(c *config) {
		c.pathCompare = fn
	}
}

// WithSizeHint pre-sizes the minimization registry for roughly n states.
// Panics on negative n.
func WithSizeHint(n int) Option {
	if n < 0 {
		panic("builder: WithSizeHint(n<0)")
	}
	return func(c *config) {
		c.sizeHint = n
	}
}
