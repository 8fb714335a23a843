// Package bfs provides breadth-first enumeration of the paths accepted by an
// acyclic automaton, shortest paths first.
//
// BFS explores path prefixes in increasing length from a start state,
// with an optional visit hook, depth limit, result limit and cancellation.
package bfs

import (
	"context"

	"github.com/katalvlaran/lvdawg/core"
	"github.com/katalvlaran/lvdawg/dfs"
)

// queueItem pairs a state with the value accumulated on the way to it and
// its depth below the start.
type queueItem[S comparable, A any] struct {
	node  *core.Node[S]
	acc   A
	depth int
}

// walker encapsulates mutable BFS state.
type walker[S comparable, A any] struct {
	opts     BFSOptions
	ctx      context.Context
	join     dfs.JoinFunc[S, A]
	startPos int
	queue    []queueItem[S, A]
	res      *BFSResult[A]
}

// BFS enumerates the accepted paths below start breadth-first: shorter paths
// first, paths of equal length in ascending symbol order. init and startPos
// describe the value already accumulated on the way to start, as in
// dfs.NewCursor.
//
// States are not deduplicated: a state shared by several prefixes is
// visited once per prefix, so every accepted path is produced exactly once.
//
// Returns ErrStartNil for a nil start, ErrOptionViolation for bad options,
// the context error on cancellation, or any OnVisit error; the partial
// result gathered so far is returned alongside.
func BFS[S comparable, A any](
	start *core.Node[S],
	init A,
	startPos int,
	join dfs.JoinFunc[S, A],
	opts ...Option,
) (*BFSResult[A], error) {
	if start == nil {
		return nil, ErrStartNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[S, A]{
		opts:     o,
		ctx:      o.Ctx,
		join:     join,
		startPos: startPos,
		queue:    make([]queueItem[S, A], 0, start.Degree()+1),
		res:      &BFSResult[A]{},
	}
	w.queue = append(w.queue, queueItem[S, A]{node: start, acc: init})

	return w.res, w.loop()
}

// loop processes the queue until empty, limit, error, or cancellation.
func (w *walker[S, A]) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if w.opts.Limit > 0 && len(w.res.Values) >= w.opts.Limit {
			return nil
		}
		w.enqueueChildren(item)
	}

	return nil
}

// dequeue pops the first item.
func (w *walker[S, A]) dequeue() queueItem[S, A] {
	item := w.queue[0]
	w.queue = w.queue[1:]

	return item
}

// visit counts the prefix, calls OnVisit and records the value if the state is final.
func (w *walker[S, A]) visit(item queueItem[S, A]) error {
	w.res.Visited++
	if err := w.opts.OnVisit(item.node.ID, item.depth); err != nil {
		return err
	}
	if item.node.Final {
		w.res.Values = append(w.res.Values, item.acc)
		w.res.Depth = append(w.res.Depth, item.depth)
	}

	return nil
}

// enqueueChildren appends one item per outgoing edge in symbol order,
// unless MaxDepth has been reached.
func (w *walker[S, A]) enqueueChildren(item queueItem[S, A]) {
	if w.opts.MaxDepth > 0 && item.depth >= w.opts.MaxDepth {
		return
	}
	var e core.Edge[S]
	for i := 0; i < item.node.Degree(); i++ {
		e = item.node.EdgeAt(i)
		w.queue = append(w.queue, queueItem[S, A]{
			node:  e.To,
			acc:   w.join(item.acc, e.Symbol, w.startPos+item.depth),
			depth: item.depth + 1,
		})
	}
}
