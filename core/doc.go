// Package core provides the state model of an acyclic, deterministic
// finite-state automaton over arbitrary comparable symbols.
//
// The graph G = (V,E) is made of:
//
//   - Node[S]: a state with a unique ID, a Final flag and outgoing edges
//     kept sorted by symbol (binary-search lookup, deterministic iteration)
//   - Edge[S]: a labelled transition; the target may be shared by several
//     parents once equivalent suffixes have been merged
//   - Alloc[S]: a monotonic id source, one per automaton
//   - Signer[S]: exact structural keys used to detect interchangeable states
//
// Signatures:
//
//	key(n) = final ‖ (symbol₁, child₁.ID) ‖ … ‖ (symbolₖ, childₖ.ID)
//
// Symbols are interned to dense integers so keys are compact byte strings and
// never collide. Two nodes with equal keys accept the same suffix language,
// provided their children were already canonical when the keys were built.
//
// Concurrency:
//
// core does no locking. Mutation (SetChild, setting Final) belongs to a single
// owner; once the graph stops changing it may be read from any number of
// goroutines.
//
// Complexity:
//
//   - Child / SetChild: O(log d) lookup (d = out-degree)
//   - Sign: O(d)
//   - Reachable / Collect: O(V log V + E)
package core
