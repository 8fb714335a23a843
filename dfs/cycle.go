// Package dfs implements cycle detection below a root node using three-color
// marking. An automaton built by incremental construction is acyclic by
// construction; DetectCycle exists to verify that invariant on graphs that
// were assembled or modified by hand.
package dfs

import (
	"errors"

	"github.com/katalvlaran/lvdawg/core"
)

// DetectCycle reports whether any cycle is reachable from root.
// A nil root is treated as cycle-free.
// Complexity: O(V + E).
func DetectCycle[S comparable](root *core.Node[S]) bool {
	_, err := PostOrder(root)

	return errors.Is(err, ErrCycleDetected)
}

// CountPaths returns, for every node reachable from root, the number of
// accepted paths starting at that node (its own Final flag included).
// It fails with ErrCycleDetected on cyclic input, where the count is unbounded.
// Complexity: O(V + E).
func CountPaths[S comparable](root *core.Node[S]) (map[*core.Node[S]]int, error) {
	order, err := PostOrder(root)
	if err != nil {
		return nil, err
	}

	counts := make(map[*core.Node[S]]int, len(order))
	var total int
	for _, n := range order {
		total = 0
		if n.Final {
			total = 1
		}
		for i := 0; i < n.Degree(); i++ {
			total += counts[n.EdgeAt(i).To]
		}
		counts[n] = total
	}

	return counts, nil
}
