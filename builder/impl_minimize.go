// SPDX-License-Identifier: MIT
// Package: lvdawg/builder
//
// impl_minimize.go - on-the-fly suffix merging.
//
// Frontier entries are popped deepest first, so every child is canonical
// before its parent's signature is computed.

package builder

// minimize pops frontier entries down to (not including) index downTo. Each
// popped child is either replaced by an equivalent registered state, which
// orphans the fresh one, or registered as the canonical state for its key.
// Complexity: O(Σ d) over popped states.
func (d *Dawg[S]) minimize(downTo int) {
	var merged, registered int
	var p pending[S]
	for len(d.frontier) > downTo {
		p = d.frontier[len(d.frontier)-1]
		d.frontier = d.frontier[:len(d.frontier)-1]

		key := d.signer.Sign(p.child)
		if existing, ok := d.registry[key]; ok {
			p.parent.SetChild(p.symbol, existing, d.cmp)
			merged++
			continue
		}
		d.registry[key] = p.child
		registered++
	}

	if merged+registered > 0 {
		d.log.V(2).Info("minimized frontier", "downTo", downTo, "merged", merged, "registered", registered)
	}
}
