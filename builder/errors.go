// SPDX-License-Identifier: MIT
// Package: lvdawg/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Context is attached with %w at the call site, never baked into the sentinel.
//   • ErrOrderViolation and ErrFrozen are caller errors: the failing call
//     leaves the automaton exactly as it was.

package builder

import (
	"errors"
	"fmt"
)

// ErrOrderViolation indicates an insertion that does not compare >= the
// previously inserted path under the active path comparator.
// Usage: if errors.Is(err, ErrOrderViolation) { /* sort input and retry */ }.
var ErrOrderViolation = errors.New("builder: paths must be inserted in ascending order")

// ErrFrozen indicates an insertion after Finalize.
var ErrFrozen = errors.New("builder: automaton is finalized")

// ErrNotMinimal is reported by Verify when two distinct reachable states of a
// finalized automaton are structurally equivalent.
var ErrNotMinimal = errors.New("builder: automaton is not minimal")

// ErrCountMismatch is reported by Verify when the number of accepted paths
// differs from Count.
var ErrCountMismatch = errors.New("builder: accepted path count mismatch")

// ErrUnsortedEdges is reported by Verify when a state's transitions are not
// strictly ascending by symbol.
var ErrUnsortedEdges = errors.New("builder: edges out of order")

// ErrInvalidUTF8 indicates a Lexicon word that is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("builder: word is not valid UTF-8")

// builderErrorf attaches method context to a sentinel.
// It returns an error of the form "<method>: <sentinel>: <formatted detail>".
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w: %s", method, sentinel, fmt.Sprintf(format, args...))
}
