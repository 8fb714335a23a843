// Package dfs defines the persistent frame stack, join strategies and options
// used by lazy depth-first enumeration of an acyclic automaton.
package dfs

import (
	"errors"

	"github.com/katalvlaran/lvdawg/core"
)

// VertexState represents the DFS visitation state of a node.
const (
	White = iota // White: the node has not been visited yet.
	Gray         // Gray: the node is on the current descent path.
	Black        // Black: the node and all its descendants have been fully explored.
)

var (
	// ErrCycleDetected indicates that a back-edge was found below the start node.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// Text is the set of symbol types with a built-in string rendering.
type Text interface {
	~string | ~rune
}

// JoinFunc folds one symbol into an accumulated value.
// pos is the zero-based position of sym within the whole path, so a join can
// treat the first symbol specially (e.g. no leading separator).
type JoinFunc[S any, A any] func(acc A, sym S, pos int) A

// frame is one pending visit: a node plus the value accumulated on the way there.
// Frames are immutable once linked; cursors forked from one another share tails.
type frame[S comparable, A any] struct {
	node *core.Node[S]
	acc  A
	pos  int // symbols consumed from the root to reach node
	next *frame[S, A]
}

// Option configures optional behavior of a Cursor.
type Option func(*Options)

// Options holds configurable parameters for enumeration.
type Options struct {
	// MaxDepth, if non-negative, limits how many symbols below the start node
	// are explored. A depth of 0 yields at most the start node's own value.
	// Default is -1 (no limit).
	MaxDepth int
}

// DefaultOptions returns Options with no depth limit.
func DefaultOptions() Options {
	return Options{MaxDepth: -1}
}

// WithMaxDepth returns an Option that limits enumeration depth to limit.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}
