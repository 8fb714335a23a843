// Package builder constructs a minimal acyclic finite-state automaton, a
// directed acyclic word graph (DAWG), from paths supplied in ascending order,
// and answers queries over it.
//
// The package offers the following key components:
//
//   - Construction:
//     – New / NewOrdered:   empty automaton over a symbol ordering.
//     – Add / AddAll:       ordered insertion with on-the-fly minimization.
//     – Finalize:           idempotent freeze; drops all construction state.
//     – From / FromOrdered: build from a sorted slice and freeze.
//   - Queries (valid during construction and after Finalize):
//     – Has, Longest, Match, HasPrefix, Count.
//   - Enumeration (lazy, via dfs.Cursor):
//     – Paths, PathsStartingWith:     symbol sequences (path mode).
//     – Values, ValuesStartingWith:   any left fold (value mode).
//     – Strings, StringsStartingWith: text symbols joined by a separator.
//     – Shortest:                     breadth-first, shortest entries first.
//   - Lexicon: a string-keyed Dawg[rune] for character-level word lists,
//     with Complete for shortest-first autocompletion.
//   - Diagnostics: Stats, Verify.
//
// Algorithm:
//
// Each new path shares a prefix with the previous one. Frontier states beyond
// that prefix can never gain another edge, so they are popped deepest first
// and looked up in a registry keyed by structural signature: an equivalent
// registered state replaces the fresh one, otherwise the fresh one becomes
// canonical. Finalize drains the whole frontier, after which no two reachable
// states are equivalent.
//
// Example:
//
//	d := builder.NewOrdered[rune]()
//	for _, w := range []string{"abcd", "bcd"} {
//	    if err := d.Add([]rune(w)); err != nil {
//	        return err
//	    }
//	}
//	d.Finalize()
//	d.Has([]rune("bcd")) // true
//
// Guarantees:
//
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Insertion reports ErrOrderViolation / ErrFrozen and leaves state untouched.
//   - Queries never fail; absence is false, 0 or an empty result.
//   - Deterministic: equal inputs produce identical graphs and enumeration order.
//
// Thread Safety:
//
// A Dawg is NOT safe for concurrent use while it is being built. After
// Finalize the graph is immutable and any number of goroutines may query or
// enumerate it.
package builder
