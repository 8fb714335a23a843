// Package bfs provides breadth-first enumeration over a core.Node automaton,
// producing accepted values shortest first.
//
// What
//
//   - Explore path prefixes in non-decreasing length from a start state.
//   - Returns a BFSResult containing:
//   - Values: accepted values, shortest first, ties in symbol order
//   - Depth: symbols added below the start for each value
//   - Visited: number of prefixes dequeued
//   - Supports an OnVisit hook that may abort with an error.
//   - Honors MaxDepth (d>0), Limit (n>0) and context cancellation.
//
// Why
//
//   - Autocompletion: the first n completions of a prefix are its n shortest.
//   - Complements dfs.Cursor, which yields in plain lexicographic order.
//
// Determinism
//
//	Edges are stored in ascending symbol order and enqueued in that order,
//	so the output sequence is fully reproducible.
//
// Complexity (P = prefixes below start within MaxDepth)
//
//   - Time:   O(P) plus the cost of the join function
//   - Memory: O(P) in the worst case (the widest level)
//
// Errors
//
//   - ErrStartNil         if the start state is nil.
//   - ErrOptionViolation  if MaxDepth or Limit is negative.
//   - ctx.Err()           on cancellation.
//   - any error returned by OnVisit.
package bfs
