// File: signature.go
// Role: Structural-equality keys for states ("is this subtree interchangeable with another").
// Determinism:
//   - A key depends only on Final and the ordered (symbol, child id) pairs.
// Concurrency:
//   - A Signer owns a mutable symbol table; use one Signer per builder.

package core

import "encoding/binary"

// Key is a canonical structural signature of a node. Two nodes with equal keys
// under the same Signer have the same finality and the same transitions to the
// same physical children.
type Key string

// Signer computes Keys. Every distinct symbol is interned to a dense integer the
// first time it is seen, so keys are exact byte strings rather than hashes and
// can never collide for structurally different nodes.
type Signer[S comparable] struct {
	symbols map[S]uint64
	buf     []byte
}

// NewSigner returns an empty Signer. sizeHint pre-sizes the symbol table.
func NewSigner[S comparable](sizeHint int) *Signer[S] {
	if sizeHint < 0 {
		sizeHint = 0
	}

	return &Signer[S]{symbols: make(map[S]uint64, sizeHint)}
}

// intern returns the dense integer assigned to sym, assigning one if needed.
func (s *Signer[S]) intern(sym S) uint64 {
	id, ok := s.symbols[sym]
	if !ok {
		id = uint64(len(s.symbols))
		s.symbols[sym] = id
	}

	return id
}

// Symbols reports how many distinct symbols have been interned.
func (s *Signer[S]) Symbols() int {
	return len(s.symbols)
}

// Sign builds the key of n: one byte for Final followed by a uvarint pair
// (symbol, child id) for every edge in ascending symbol order.
//
// Correctness requires every child of n to already be canonical, i.e. keys must
// be computed bottom-up. The incremental builder guarantees that order.
// Complexity: O(d) where d is the out-degree of n.
func (s *Signer[S]) Sign(n *Node[S]) Key {
	b := s.buf[:0]
	if n.Final {
		b = append(b, 1)
	} else {
		b = append(b, 0)
	}
	for _, e := range n.edges {
		b = binary.AppendUvarint(b, s.intern(e.Symbol))
		b = binary.AppendUvarint(b, e.To.ID)
	}
	s.buf = b

	return Key(b)
}
