// Package lvdawg builds and queries minimal acyclic finite-state automata,
// directed acyclic word graphs (DAWGs), over sequences of arbitrary
// comparable symbols: characters of a word, segments of a path, tokens.
//
// What is a DAWG?
//
//	A trie whose equivalent suffixes are merged. {"abcd", "bcd"} stores the
//	states for "bcd" once:
//
//	    root ─a─▶ • ─b─▶ ┐
//	    root ─b─────────▶ • ─c─▶ • ─d─▶ ((final))
//
// Under the hood, everything is organized under four subpackages:
//
//	core/    Node, Edge, id allocation and exact structural signatures
//	dfs/     lazy depth-first Cursor over a persistent frame stack,
//	         join strategies, post-order and cycle checks
//	bfs/     shortest-first enumeration with limits and cancellation
//	builder/ the incremental Dawg: ordered Add, Finalize, Has, Longest,
//	         Match, enumeration, Verify, plus the string-keyed Lexicon
//
// Input must already be sorted; there is no deletion and no fuzzy lookup.
// Exact membership, longest-prefix match and (prefix-restricted) enumeration
// are supported.
//
//	go get github.com/katalvlaran/lvdawg
package lvdawg
