// SPDX-License-Identifier: MIT
// Package: lvdawg/builder
//
// impl_add.go - ordered insertion.
//
// Invariants kept by Add:
//   • frontier holds exactly one entry per symbol of previous, root outward.
//   • Every state off the frontier is canonical and registered.
//   • A rejected call changes nothing.

package builder

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Add inserts path. Paths must arrive in ascending order under the path
// comparator; re-inserting the most recent path is a no-op.
//
// Steps:
//  1. Reject if frozen (ErrFrozen) or path < previous (ErrOrderViolation).
//  2. Reject a path that would add to an already minimized branch; this only
//     happens under a custom path comparator (ErrOrderViolation).
//  3. Minimize the frontier beyond the prefix shared with previous.
//  4. Append one new state per remaining symbol, each pushed on the frontier.
//  5. Mark the last state final, remember path, bump the count.
//
// The empty path marks the root final without creating states and without
// changing Count. Under the default order it can only be the first insertion;
// a custom path comparator may place it later, in which case the whole
// frontier is minimized and every later path is ordered against it.
//
// Complexity: O(|path| · log d) amortized, plus minimization of the abandoned suffix.
func (d *Dawg[S]) Add(path []S) error {
	if d.frozen {
		return builderErrorf("Add", ErrFrozen, "cannot insert a %d-symbol path", len(path))
	}

	if d.hasPrevious {
		order := d.pathCmp(path, d.previous)
		if order < 0 {
			d.log.V(1).Info("rejected out-of-order path", "length", len(path), "previousLength", len(d.previous))
			return builderErrorf("Add", ErrOrderViolation, "path of length %d sorts before the previous one", len(path))
		}
		if order == 0 {
			return nil
		}
	}

	if len(path) == 0 {
		d.minimize(0)
		d.root.Final = true
		d.previous = d.previous[:0]
		d.hasPrevious = true
		return nil
	}

	// node is the frontier state where path leaves previous; it survives
	// minimize(common) untouched.
	common := commonPrefix(path, d.previous)
	node := d.root
	if common > 0 {
		node = d.frontier[common-1].child
	}
	if common == len(path) {
		if node.Final {
			return nil
		}
	} else if node.Child(path[common], d.cmp) != nil {
		d.log.V(1).Info("rejected path re-entering a completed branch", "length", len(path), "depth", common)
		return builderErrorf("Add", ErrOrderViolation, "symbol %d re-enters a completed branch", common)
	}

	d.minimize(common)
	for _, sym := range path[common:] {
		child := d.alloc.NewNode()
		node.SetChild(sym, child, d.cmp)
		d.frontier = append(d.frontier, pending[S]{parent: node, symbol: sym, child: child})
		node = child
	}

	node.Final = true
	d.previous = slices.Clone(path)
	d.hasPrevious = true
	d.count++

	return nil
}

// AddAll inserts paths in order and stops at the first failure, reporting the
// index of the offending entry. Entries before it remain inserted.
func (d *Dawg[S]) AddAll(paths [][]S) error {
	for i, p := range paths {
		if err := d.Add(p); err != nil {
			return fmt.Errorf("AddAll: entry %d: %w", i, err)
		}
	}

	return nil
}

// commonPrefix returns the length of the shared leading run of a and b.
func commonPrefix[S comparable](a, b []S) int {
	n := min(len(a), len(b))
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}

	return i
}
