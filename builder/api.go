// SPDX-License-Identifier: MIT
// Package: lvdawg/builder
//
// api.go - public entry points: the Dawg type, constructors, lifecycle and accessors.
//
// Design contract:
//   - Insertion (impl_add.go) and minimization (impl_minimize.go) mutate; everything else reads.
//   - Construction state (frontier, registry, signer) lives only until Finalize.
//   - After Finalize the graph is immutable and safe for concurrent readers.

package builder

import (
	"fmt"

	"github.com/go-logr/logr"
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvdawg/core"
)

// pending is one frontier entry: the edge parent --symbol--> child whose
// child has not been proven canonical yet.
type pending[S comparable] struct {
	parent *core.Node[S]
	symbol S
	child  *core.Node[S]
}

// Dawg incrementally builds a minimal acyclic automaton (directed acyclic word
// graph) from paths supplied in ascending order, and answers membership,
// longest-prefix and enumeration queries over it.
//
// IMPORTANT: Dawg is NOT safe for concurrent use while it is being built.
// All Add calls must come from one goroutine. Once Finalize has returned, the
// graph never changes and any number of goroutines may query it.
type Dawg[S comparable] struct {
	cmp     core.CompareFunc[S]
	pathCmp func(a, b []S) int
	log     logr.Logger

	alloc core.Alloc[S]
	root  *core.Node[S]
	count int

	previous    []S
	hasPrevious bool

	// construction state, dropped by Finalize
	frontier []pending[S]
	registry map[core.Key]*core.Node[S]
	signer   *core.Signer[S]
	frozen   bool
}

// New returns an empty Dawg over symbols ordered by cmp. The root has no
// edges and is not final. Panics on nil cmp.
// Complexity: O(len(opts)).
func New[S comparable](cmp core.CompareFunc[S], opts ...Option) *Dawg[S] {
	if cmp == nil {
		panic(core.ErrNilCompare)
	}
	cfg := newConfig(opts...)

	d := &Dawg[S]{
		cmp:      cmp,
		pathCmp:  resolvePathCompare(cfg, cmp),
		log:      cfg.log.WithName("dawg"),
		registry: make(map[core.Key]*core.Node[S], cfg.sizeHint),
		signer:   core.NewSigner[S](cfg.sizeHint),
	}
	d.root = d.alloc.NewNode()

	return d
}

// NewOrdered returns an empty Dawg whose symbols use their natural < order.
func NewOrdered[S constraints.Ordered](opts ...Option) *Dawg[S] {
	return New[S](Compare[S], opts...)
}

// Compare is the natural ordering of an ordered symbol type.
func Compare[S constraints.Ordered](a, b S) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// From builds a Dawg from paths already in ascending order and finalizes it.
// On failure the partially built automaton is discarded.
func From[S comparable](cmp core.CompareFunc[S], paths [][]S, opts ...Option) (*Dawg[S], error) {
	d := New(cmp, opts...)
	if err := d.AddAll(paths); err != nil {
		return nil, fmt.Errorf("From: %w", err)
	}
	d.Finalize()

	return d, nil
}

// FromOrdered is From with the natural symbol order.
func FromOrdered[S constraints.Ordered](paths [][]S, opts ...Option) (*Dawg[S], error) {
	return From[S](Compare[S], paths, opts...)
}

// Count returns the number of distinct non-empty paths inserted.
// Complexity: O(1).
func (d *Dawg[S]) Count() int {
	return d.count
}

// Frozen reports whether Finalize has been called.
func (d *Dawg[S]) Frozen() bool {
	return d.frozen
}

// Root returns the entry state for read-only inspection.
//
// WARNING: Do not modify the returned graph. Use Add to grow the automaton.
func (d *Dawg[S]) Root() *core.Node[S] {
	return d.root
}

// CompareSymbols exposes the symbol ordering the automaton was built with.
func (d *Dawg[S]) CompareSymbols() core.CompareFunc[S] {
	return d.cmp
}

// Finalize minimizes the remaining frontier (including the path from the root),
// drops all construction state and makes the automaton immutable.
// Idempotent: later calls do nothing.
// Complexity: O(F · d) where F is the frontier length.
func (d *Dawg[S]) Finalize() {
	if d.frozen {
		return
	}
	d.minimize(0)

	if l := d.log.V(1); l.Enabled() {
		st := core.Collect(d.root)
		l.Info("finalized",
			"entries", d.count,
			"nodes", st.Nodes,
			"edges", st.Edges,
			"allocated", d.alloc.Allocated(),
			"symbols", d.signer.Symbols(),
		)
	}

	d.frontier = nil
	d.registry = nil
	d.signer = nil
	d.previous = nil
	d.frozen = true
}

// Stats is a snapshot of the automaton's shape and construction state.
type Stats struct {
	core.Stats

	// Count mirrors Dawg.Count.
	Count int

	// Allocated is the number of states ever created, merged ones included.
	Allocated uint64

	// Pending is the frontier length (0 once frozen).
	Pending int

	// Registered is the number of canonical states in the registry (0 once frozen).
	Registered int

	// Frozen mirrors Dawg.Frozen.
	Frozen bool
}

// Stats returns a snapshot of the reachable graph and construction state.
// Complexity: O(V log V + E).
func (d *Dawg[S]) Stats() Stats {
	return Stats{
		Stats:      core.Collect(d.root),
		Count:      d.count,
		Allocated:  d.alloc.Allocated(),
		Pending:    len(d.frontier),
		Registered: len(d.registry),
		Frozen:     d.frozen,
	}
}
