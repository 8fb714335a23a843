// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for lvdawg/core.
//
// Purpose:
//   - Provide small, deterministic hand-built automata.
//   - Keep construction explicit so each test shows the exact shape it checks.

package core_test

import (
	"github.com/katalvlaran/lvdawg/core"
)

// cmpRune is the natural rune order.
func cmpRune(a, b rune) int {
	return int(a) - int(b)
}

// cmpString is the natural string order.
func cmpString(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// chain links a fresh path of states for word below from and marks the last final.
// It returns the last state.
func chain(alloc *core.Alloc[rune], from *core.Node[rune], word string) *core.Node[rune] {
	cur := from
	for _, r := range word {
		next := cur.Child(r, cmpRune)
		if next == nil {
			next = alloc.NewNode()
			cur.SetChild(r, next, cmpRune)
		}
		cur = next
	}
	cur.Final = true

	return cur
}

// sharedSuffix builds {"abcd","bcd"} by hand with the "bcd" suffix states
// shared: root -a-> x -b-> y, root -b-> y, y -c-> z -d-> leaf.
func sharedSuffix() (root, x, y, leaf *core.Node[rune]) {
	var alloc core.Alloc[rune]
	root = alloc.NewNode()
	x = alloc.NewNode()
	y = alloc.NewNode()
	z := alloc.NewNode()
	leaf = alloc.NewNode()
	leaf.Final = true

	root.SetChild('a', x, cmpRune)
	root.SetChild('b', y, cmpRune)
	x.SetChild('b', y, cmpRune)
	y.SetChild('c', z, cmpRune)
	z.SetChild('d', leaf, cmpRune)

	return root, x, y, leaf
}
