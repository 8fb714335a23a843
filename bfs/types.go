// Package bfs provides tunable options and error definitions
// for breadth-first enumeration over an acyclic automaton.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartNil is returned if a nil start state is passed.
	ErrStartNil = errors.New("bfs: start state is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called for every dequeued path prefix with the ID of the
	// state it ends in and its depth below the start. If it returns an
	// error, BFS aborts and propagates that error.
	OnVisit func(id uint64, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// Limit, if > 0, stops after this many accepted values.
	Limit int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no result limit (Limit == 0)
//   - no-op OnVisit hook
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:     context.Background(),
		OnVisit: func(uint64, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(id uint64, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: values at most d symbols below the start
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithLimit stops the search once n values have been produced.
// n == 0 means no limit; n < 0 is an ErrOptionViolation.
func WithLimit(n int) Option {
	return func(o *BFSOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Limit cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Limit = n
	}
}

// BFSResult holds the outcome of a BFS enumeration:
//   - Values: accepted values, shortest first.
//   - Depth: Depth[i] is the number of symbols Values[i] adds below the start.
//   - Visited: number of path prefixes dequeued.
type BFSResult[A any] struct {
	Values  []A
	Depth   []int
	Visited int
}
