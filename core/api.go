// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only whole-graph helpers: reachable state catalog and Stats snapshot.
// Policy:
//   - Nothing here mutates a node.
//   - Shared children are reported once, no matter how many parents point at them.

package core

import "golang.org/x/exp/slices"

// Reachable returns every distinct state reachable from root (root included),
// sorted by ascending ID. A nil root yields nil.
//
// Implementation:
//   - Stage 1: Explicit-stack walk with a visited set keyed by node pointer.
//   - Stage 2: Sort the catalog by ID for deterministic output.
//
// Complexity:
//   - Time O(V log V + E), Space O(V).
func Reachable[S comparable](root *Node[S]) []*Node[S] {
	if root == nil {
		return nil
	}

	seen := map[*Node[S]]struct{}{root: {}}
	out := []*Node[S]{root}
	stack := []*Node[S]{root}
	var n *Node[S]
	for len(stack) > 0 {
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range n.edges {
			if _, ok := seen[e.To]; ok {
				continue
			}
			seen[e.To] = struct{}{}
			out = append(out, e.To)
			stack = append(stack, e.To)
		}
	}

	slices.SortFunc(out, func(a, b *Node[S]) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		default:
			return 0
		}
	})

	return out
}

// Collect produces a Stats snapshot of the graph reachable from root.
// A nil root yields the zero Stats.
//
// Complexity:
//   - Time O(V log V + E), Space O(V).
func Collect[S comparable](root *Node[S]) Stats {
	var st Stats
	for _, n := range Reachable(root) {
		st.Nodes++
		st.Edges += len(n.edges)
		if n.Final {
			st.Finals++
		}
	}

	return st
}
