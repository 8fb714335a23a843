// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Automaton state (Node), transitions (Edge), symbol ordering and the id source.
// Determinism:
//   - Edges of a node are always kept sorted ascending by symbol.
//   - Node ids are assigned in strictly increasing order by one Alloc.
// Concurrency:
//   - No internal locking. A graph is owned by exactly one writer while it is
//     built; once nobody mutates it any number of readers may share it.

package core

import "errors"

// ErrNilCompare indicates a nil CompareFunc was supplied.
var ErrNilCompare = errors.New("core: compare function is nil")

// CompareFunc orders two symbols: negative if a < b, zero if equal, positive if a > b.
// It must be a strict weak ordering consistent with ==.
type CompareFunc[S any] func(a, b S) int

// Edge is a labelled transition to a child state.
//
// To may be shared by several parents once suffixes have been merged.
type Edge[S comparable] struct {
	// Symbol labels the transition.
	Symbol S

	// To is the target state.
	To *Node[S]
}

// Node is a state of the acyclic automaton.
//
// ID distinguishes physical nodes while signatures are computed; it carries no
// meaning for lookups. Final reports whether some inserted path ends here.
type Node[S comparable] struct {
	// ID is unique per Alloc and assigned at creation.
	ID uint64

	// Final is true iff an accepted path terminates at this state.
	Final bool

	// edges is sorted ascending by Symbol under the owning CompareFunc.
	edges []Edge[S]
}

// Alloc hands out nodes with monotonically increasing ids.
// The zero value is ready to use; the first node receives id 0.
type Alloc[S comparable] struct {
	next uint64
}

// NewNode allocates a node with a fresh id, no edges and Final == false.
// Complexity: O(1).
func (a *Alloc[S]) NewNode() *Node[S] {
	n := &Node[S]{ID: a.next}
	a.next++

	return n
}

// Allocated reports how many nodes this Alloc has created so far,
// including nodes later discarded by minimization.
func (a *Alloc[S]) Allocated() uint64 {
	return a.next
}

// Stats is a read-only summary of the graph reachable from a root.
type Stats struct {
	// Nodes is the number of distinct reachable states (root included).
	Nodes int

	// Edges is the number of transitions between reachable states.
	Edges int

	// Finals is the number of reachable states with Final == true.
	Finals int
}
