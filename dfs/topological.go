// Package dfs provides a post-order (children before parents) listing of the
// states reachable from a root.
//
// PostOrder emits every reachable node exactly once, after all of its
// descendants. This is the order in which structural signatures can be
// computed bottom-up. If the graph contains a cycle, ErrCycleDetected is
// returned.
//
// Complexity:
//
//   - Time:   O(V + E) (each node and edge visited once)
//   - Memory: O(V)     (explicit stack and state map)
package dfs

import (
	"fmt"

	"github.com/katalvlaran/lvdawg/core"
)

// visit is one explicit-stack entry: a node and the index of its next edge.
type visit[S comparable] struct {
	node *core.Node[S]
	edge int
}

// PostOrder returns the nodes reachable from root, each listed after all of
// its children. A nil root yields (nil, nil).
func PostOrder[S comparable](root *core.Node[S]) ([]*core.Node[S], error) {
	// 1. Nil root is an empty graph
	if root == nil {
		return nil, nil
	}

	// 2. Color map: absent = White
	state := make(map[*core.Node[S]]int)
	order := make([]*core.Node[S], 0)
	stack := []visit[S]{{node: root}}
	state[root] = Gray

	// 3. Iterative descent; a node finishes when its edge cursor runs out
	var top *visit[S]
	var child *core.Node[S]
	for len(stack) > 0 {
		top = &stack[len(stack)-1]
		if top.edge == top.node.Degree() {
			state[top.node] = Black
			order = append(order, top.node)
			stack = stack[:len(stack)-1]
			continue
		}

		child = top.node.EdgeAt(top.edge).To
		top.edge++
		switch state[child] {
		case Gray:
			return nil, fmt.Errorf("%w: back-edge into node %d", ErrCycleDetected, child.ID)
		case Black:
			continue
		}
		state[child] = Gray
		stack = append(stack, visit[S]{node: child})
	}

	return order, nil
}
