// SPDX-License-Identifier: MIT
// Package: lvdawg/builder
//
// impl_traverse.go - enumeration entry points over the automaton.
//
// Every cursor reads the graph only. Cursors created after Finalize may run
// concurrently; cursors created during construction see a graph that must not
// change while they are advanced.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvdawg/bfs"
	"github.com/katalvlaran/lvdawg/dfs"
)

// Paths enumerates every accepted path as its symbol sequence (path mode),
// in ascending order.
func (d *Dawg[S]) Paths(opts ...dfs.Option) *dfs.Cursor[S, []S] {
	return dfs.NewCursor(d.root, []S{}, 0, dfs.Append[S](), opts...)
}

// PathsStartingWith enumerates the accepted paths that begin with prefix.
// A prefix with no matching state yields an empty cursor.
func (d *Dawg[S]) PathsStartingWith(prefix []S, opts ...dfs.Option) *dfs.Cursor[S, []S] {
	return ValuesStartingWith(d, prefix, []S{}, dfs.Append[S](), opts...)
}

// Values enumerates every accepted path folded through join (value mode),
// starting from init.
func Values[S comparable, A any](d *Dawg[S], init A, join dfs.JoinFunc[S, A], opts ...dfs.Option) *dfs.Cursor[S, A] {
	return dfs.NewCursor(d.root, init, 0, join, opts...)
}

// ValuesStartingWith enumerates the accepted paths that begin with prefix.
// The accumulator is pre-seeded by folding join over prefix, so every value
// includes the prefix. A prefix with no matching state yields an empty cursor.
// Complexity: O(|prefix| · log d) to position the cursor.
func ValuesStartingWith[S comparable, A any](
	d *Dawg[S],
	prefix []S,
	init A,
	join dfs.JoinFunc[S, A],
	opts ...dfs.Option,
) *dfs.Cursor[S, A] {
	start := d.root.Walk(prefix, d.cmp)
	if start == nil {
		return dfs.NewCursor[S, A](nil, init, 0, join, opts...)
	}

	return dfs.NewCursor(start, dfs.Fold(join, init, prefix), len(prefix), join, opts...)
}

// Strings enumerates text-symbol entries as strings, with sep between
// symbols ("" concatenates).
func Strings[S dfs.Text](d *Dawg[S], sep string, opts ...dfs.Option) *dfs.Cursor[S, string] {
	return Values(d, "", dfs.Separator[S](sep), opts...)
}

// StringsStartingWith is Strings restricted to entries beginning with prefix.
func StringsStartingWith[S dfs.Text](d *Dawg[S], prefix []S, sep string, opts ...dfs.Option) *dfs.Cursor[S, string] {
	return ValuesStartingWith(d, prefix, "", dfs.Separator[S](sep), opts...)
}

// Shortest enumerates the accepted paths beginning with prefix breadth-first:
// shorter entries first, entries of equal length in symbol order. Use
// bfs.WithLimit to keep only the first n. A prefix with no matching state
// yields no values and no error.
// Complexity: O(P) over the prefixes explored.
func Shortest[S comparable, A any](
	d *Dawg[S],
	prefix []S,
	init A,
	join dfs.JoinFunc[S, A],
	opts ...bfs.Option,
) ([]A, error) {
	start := d.root.Walk(prefix, d.cmp)
	if start == nil {
		return nil, nil
	}
	res, err := bfs.BFS(start, dfs.Fold(join, init, prefix), len(prefix), join, opts...)
	if err != nil {
		return nil, fmt.Errorf("Shortest: %w", err)
	}

	return res.Values, nil
}
