// Package dfs implements lazy depth-first enumeration over an acyclic
// automaton built from core.Node states, plus the structural checks that the
// automaton is still a DAG.
//
// What:
//
//   - Cursor: an explicit state machine over a persistent, singly-linked
//     stack of visit frames {node, accumulated value}. Next pops a frame,
//     pushes its children and yields the value if the node is final.
//     Frames are never mutated, so Fork is O(1) and forks advance
//     independently. No recursion: deep graphs cannot exhaust the call stack.
//   - Join strategies: Concat (value mode, no separator), Separator,
//     Left (arbitrary left fold), Append (path mode), Fold (pre-seeding).
//   - PostOrder: children-before-parents listing using White/Gray/Black
//     marking; the order in which signatures can be computed bottom-up.
//   - DetectCycle, CountPaths: acyclicity check and accepted-path counting.
//
// Ordering:
//
// Children are pushed last-symbol-first, so a cursor yields paths in ascending
// order with every prefix before its extensions: a, ab, b, ba, baa, …
//
// Complexity:
//
//   - Cursor:     O(P·L) to exhaust (P = accepted paths, L = path length)
//   - PostOrder:  Time O(V+E), Memory O(V)
//   - CountPaths: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrCycleDetected  back-edge discovered by PostOrder / CountPaths
package dfs
