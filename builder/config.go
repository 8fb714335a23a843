// SPDX-License-Identifier: MIT
// Package: lvdawg/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Defaults:
//   • log         = logr.Discard()
//   • pathCompare = nil  (element-wise symbol order, then length)
//   • sizeHint    = 64

package builder

import (
	"fmt"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/lvdawg/core"
)

// defaultSizeHint is the initial registry capacity when none is given.
const defaultSizeHint = 64

// config aggregates all knobs used by New.
type config struct {
	log logr.Logger
	// pathCompare holds a func(a, b []S) int; typed lazily because Option is
	// not generic over the symbol type.
	pathCompare any
	sizeHint    int
}

// newConfig applies options over the defaults, later options winning.
func newConfig(opts ...Option) config {
	cfg := config{
		log:      logr.Discard(),
		sizeHint: defaultSizeHint,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// resolvePathCompare returns the configured path comparator for S or the
// element-wise default built on cmp.
func resolvePathCompare[S comparable](cfg config, cmp core.CompareFunc[S]) func(a, b []S) int {
	if cfg.pathCompare == nil {
		return elementWise(cmp)
	}
	fn, ok := cfg.pathCompare.(func(a, b []S) int)
	if !ok {
		panic(fmt.Sprintf("builder: WithPathCompare: %T does not match symbol type %T", cfg.pathCompare, *new(S)))
	}

	return fn
}

// elementWise orders paths by their first differing symbol; when one path is
// a prefix of the other the shorter one sorts first.
// Complexity: O(min(|a|,|b|)).
func elementWise[S comparable](cmp core.CompareFunc[S]) func(a, b []S) int {
	return func(a, b []S) int {
		n := min(len(a), len(b))
		for i := 0; i < n; i++ {
			if r := cmp(a[i], b[i]); r != 0 {
				return r
			}
		}

		return len(a) - len(b)
	}
}
