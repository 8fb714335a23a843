// Package dfs implements lazy depth-first enumeration of the paths accepted by
// an acyclic automaton rooted at a core.Node.
//
// Key features:
//   - NewCursor(start, init, startPos, join, opts...): explicit state machine
//     producing one accepted value per Next call
//   - Persistent frame stack: no recursion, forked cursors share structure
//   - Ascending path order: children are pushed in reverse symbol order
//   - Limits: WithMaxDepth
//
// Complexity:
//
//   - Time:   O(P · L) to exhaust, P = accepted paths below start, L = their length,
//     plus the cost of the join function.
//   - Memory: O(D · d) live frames, D = depth, d = max out-degree.
package dfs

import (
	"iter"

	"github.com/katalvlaran/lvdawg/core"
)

// Cursor yields the values of every accepted path below a start node.
//
// A Cursor only reads the graph, so any number of cursors may advance
// independently over the same unchanging graph. It is not restartable: once
// exhausted, build a new one.
type Cursor[S comparable, A any] struct {
	top      *frame[S, A]
	join     JoinFunc[S, A]
	startPos int
	opts     Options
}

// NewCursor returns a cursor positioned before the first value below start.
// init is the value already accumulated on the way to start and startPos the
// number of symbols it represents. A nil start yields an empty cursor.
func NewCursor[S comparable, A any](
	start *core.Node[S],
	init A,
	startPos int,
	join JoinFunc[S, A],
	opts ...Option,
) *Cursor[S, A] {
	c := &Cursor[S, A]{join: join, startPos: startPos, opts: DefaultOptions()}
	for _, opt := range opts {
		opt(&c.opts)
	}
	if start != nil {
		c.top = &frame[S, A]{node: start, acc: init, pos: startPos}
	}

	return c
}

// Next pops frames until it reaches a final node and returns that node's
// accumulated value. The boolean is false once the cursor is exhausted.
//
// Steps:
//  1. Pop the top frame.
//  2. Push one frame per outgoing edge, last symbol first, so the smallest
//     symbol is visited next.
//  3. If the popped node is final, yield its value; otherwise loop.
func (c *Cursor[S, A]) Next() (A, bool) {
	var f *frame[S, A]
	var e core.Edge[S]
	for c.top != nil {
		f = c.top
		c.top = f.next

		if c.opts.MaxDepth < 0 || f.pos-c.startPos < c.opts.MaxDepth {
			for i := f.node.Degree() - 1; i >= 0; i-- {
				e = f.node.EdgeAt(i)
				c.top = &frame[S, A]{
					node: e.To,
					acc:  c.join(f.acc, e.Symbol, f.pos),
					pos:  f.pos + 1,
					next: c.top,
				}
			}
		}

		if f.node.Final {
			return f.acc, true
		}
	}

	var zero A
	return zero, false
}

// Done reports whether the cursor has no pending frames left.
func (c *Cursor[S, A]) Done() bool {
	return c.top == nil
}

// Fork returns an independent cursor at the same position. The two share
// their pending frames; advancing one never affects the other.
// Complexity: O(1).
func (c *Cursor[S, A]) Fork() *Cursor[S, A] {
	cp := *c

	return &cp
}

// All adapts the cursor to a range-over-func sequence. Ranging consumes the cursor.
func (c *Cursor[S, A]) All() iter.Seq[A] {
	return func(yield func(A) bool) {
		for {
			v, ok := c.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Collect drains the cursor into a slice.
func (c *Cursor[S, A]) Collect() []A {
	var out []A
	for v, ok := c.Next(); ok; v, ok = c.Next() {
		out = append(out, v)
	}

	return out
}
