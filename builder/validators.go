// Package builder provides structural verification of a Dawg.
//
// Verify re-derives every invariant from the reachable graph rather than from
// construction state, so it also catches graphs modified through Root().
package builder

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/katalvlaran/lvdawg/core"
	"github.com/katalvlaran/lvdawg/dfs"
)

// Verify checks the automaton and returns every violation found, combined
// with multierr (use multierr.Errors to split them), or nil.
//
// Checks:
//   - acyclicity (dfs.ErrCycleDetected); later checks are skipped on a cycle
//   - edges strictly ascending by symbol (ErrUnsortedEdges)
//   - accepted non-empty paths == Count (ErrCountMismatch)
//   - once frozen, no two reachable states share a signature (ErrNotMinimal)
//
// Complexity: O(V log V + E).
func (d *Dawg[S]) Verify() error {
	counts, err := dfs.CountPaths(d.root)
	if err != nil {
		return fmt.Errorf("Verify: %w", err)
	}

	var errs error
	nodes := core.Reachable(d.root)
	for _, n := range nodes {
		errs = multierr.Append(errs, validateEdgeOrder(n, d.cmp))
	}

	accepted := counts[d.root]
	if d.root.Final {
		accepted--
	}
	if accepted != d.count {
		errs = multierr.Append(errs, builderErrorf("Verify", ErrCountMismatch, "graph accepts %d paths, count is %d", accepted, d.count))
	}

	if d.frozen {
		errs = multierr.Append(errs, validateMinimal(nodes))
	}

	return errs
}

// validateEdgeOrder reports a node whose transitions are not strictly ascending.
func validateEdgeOrder[S comparable](n *core.Node[S], cmp core.CompareFunc[S]) error {
	for i := 1; i < n.Degree(); i++ {
		if cmp(n.EdgeAt(i-1).Symbol, n.EdgeAt(i).Symbol) >= 0 {
			return builderErrorf("Verify", ErrUnsortedEdges, "node %d, edge %d", n.ID, i)
		}
	}

	return nil
}

// validateMinimal reports every pair of distinct states with equal signatures.
// On an acyclic graph this is exact: the lowest pair of language-equivalent
// states would have identical children, hence equal keys.
func validateMinimal[S comparable](nodes []*core.Node[S]) error {
	signer := core.NewSigner[S](len(nodes))
	seen := make(map[core.Key]*core.Node[S], len(nodes))

	var errs error
	for _, n := range nodes {
		key := signer.Sign(n)
		if first, ok := seen[key]; ok {
			errs = multierr.Append(errs, builderErrorf("Verify", ErrNotMinimal, "nodes %d and %d are equivalent", first.ID, n.ID))
			continue
		}
		seen[key] = n
	}

	return errs
}
