// File: methods_edges.go
// Role: Transition lookup and mutation on a single Node.
// Determinism:
//   - Edges() returns transitions sorted ascending by symbol.
// Concurrency:
//   - SetChild mutates; callers must hold exclusive ownership of the node.
//   - Child, Edges and Degree are safe for concurrent readers of an unchanging node.

package core

import "golang.org/x/exp/slices"

// find locates sym in the sorted edge list.
// It returns the insertion index and whether sym is present.
func (n *Node[S]) find(sym S, cmp CompareFunc[S]) (int, bool) {
	return slices.BinarySearchFunc(n.edges, sym, func(e Edge[S], target S) int {
		return cmp(e.Symbol, target)
	})
}

// Child returns the state reached from n over sym, or nil if no such edge exists.
// Complexity: O(log d) where d is the out-degree of n.
func (n *Node[S]) Child(sym S, cmp CompareFunc[S]) *Node[S] {
	i, ok := n.find(sym, cmp)
	if !ok {
		return nil
	}

	return n.edges[i].To
}

// SetChild points the edge labelled sym at child, creating the edge if missing
// and rewiring it otherwise. Sorted order is preserved.
//
// Incremental construction appends edges in ascending order, so the common case
// is an append at the tail.
// Complexity: O(log d) lookup, O(d) worst case insert.
func (n *Node[S]) SetChild(sym S, child *Node[S], cmp CompareFunc[S]) {
	// fast path: strictly greater than the current last symbol
	if last := len(n.edges) - 1; last < 0 || cmp(n.edges[last].Symbol, sym) < 0 {
		n.edges = append(n.edges, Edge[S]{Symbol: sym, To: child})
		return
	}

	i, ok := n.find(sym, cmp)
	if ok {
		n.edges[i].To = child
		return
	}
	n.edges = slices.Insert(n.edges, i, Edge[S]{Symbol: sym, To: child})
}

// Edges returns the transitions of n in ascending symbol order.
// The returned slice is a copy; mutating it does not affect n.
func (n *Node[S]) Edges() []Edge[S] {
	return slices.Clone(n.edges)
}

// EdgeAt returns the i-th transition in ascending symbol order.
// It panics if i is out of range, like a slice index.
func (n *Node[S]) EdgeAt(i int) Edge[S] {
	return n.edges[i]
}

// Degree returns the number of outgoing transitions.
func (n *Node[S]) Degree() int {
	return len(n.edges)
}

// Walk follows path from n one symbol at a time and returns the state reached,
// or nil as soon as a symbol has no transition. An empty path returns n itself.
// Complexity: O(|path| · log d).
func (n *Node[S]) Walk(path []S, cmp CompareFunc[S]) *Node[S] {
	cur := n
	for _, sym := range path {
		if cur = cur.Child(sym, cmp); cur == nil {
			return nil
		}
	}

	return cur
}
