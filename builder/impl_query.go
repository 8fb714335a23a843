// SPDX-License-Identifier: MIT
// Package: lvdawg/builder
//
// impl_query.go - membership and longest-prefix lookups.
//
// Queries never fail: absence is reported as false, 0 or an empty path.
// They are valid both during construction and after Finalize.

package builder

import "golang.org/x/exp/slices"

// Has reports whether path was inserted.
// Complexity: O(|path| · log d).
func (d *Dawg[S]) Has(path []S) bool {
	n := d.root.Walk(path, d.cmp)

	return n != nil && n.Final
}

// Longest returns the length of the longest prefix of path that is an
// accepted entry, or 0 if there is none.
// Complexity: O(|path| · log d).
func (d *Dawg[S]) Longest(path []S) int {
	best := 0
	node := d.root
	for i, sym := range path {
		if node = node.Child(sym, d.cmp); node == nil {
			break
		}
		if node.Final {
			best = i + 1
		}
	}

	return best
}

// Match returns the longest accepted prefix of path (possibly empty).
// The result never aliases path.
func (d *Dawg[S]) Match(path []S) []S {
	return slices.Clone(path[:d.Longest(path)])
}

// HasPrefix reports whether some accepted entry starts with prefix.
// Complexity: O(|prefix| · log d).
func (d *Dawg[S]) HasPrefix(prefix []S) bool {
	n := d.root.Walk(prefix, d.cmp)

	return n != nil && (n.Final || n.Degree() > 0)
}
