// SPDX-License-Identifier: MIT
// Package: lvdawg/builder
//
// impl_strings.go - character-level convenience layer.
//
// A Lexicon is a Dawg[rune] addressed with Go strings. Rune order equals
// byte order for valid UTF-8, so valid input sorted with sort.Strings is
// already in insertion order. Words that are not valid UTF-8 are rejected
// with ErrInvalidUTF8; queries never match past an invalid byte.

package builder

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/katalvlaran/lvdawg/bfs"
	"github.com/katalvlaran/lvdawg/dfs"
)

// Lexicon is a string-keyed Dawg over runes.
// It shares the Dawg's concurrency contract.
type Lexicon struct {
	d *Dawg[rune]
}

// NewLexicon returns an empty Lexicon.
func NewLexicon(opts ...Option) *Lexicon {
	return &Lexicon{d: NewOrdered[rune](opts...)}
}

// LexiconFrom builds a finalized Lexicon from words sorted ascending.
func LexiconFrom(words []string, opts ...Option) (*Lexicon, error) {
	l := NewLexicon(opts...)
	if err := l.AddAll(words); err != nil {
		return nil, err
	}
	l.Finalize()

	return l, nil
}

// Add inserts word. See Dawg.Add.
func (l *Lexicon) Add(word string) error {
	if !utf8.ValidString(word) {
		return builderErrorf("Add", ErrInvalidUTF8, "%q", word)
	}

	return l.d.Add([]rune(word))
}

// AddAll inserts words in order, stopping at the first failure.
func (l *Lexicon) AddAll(words []string) error {
	for i, w := range words {
		if err := l.Add(w); err != nil {
			return fmt.Errorf("AddAll: entry %d (%q): %w", i, w, err)
		}
	}

	return nil
}

// Has reports whether word was inserted.
func (l *Lexicon) Has(word string) bool {
	return utf8.ValidString(word) && l.d.Has([]rune(word))
}

// Longest returns the rune length of the longest accepted prefix of word.
func (l *Lexicon) Longest(word string) int {
	return l.d.Longest([]rune(validPrefix(word)))
}

// Match returns the longest accepted prefix of word, or "" if none.
func (l *Lexicon) Match(word string) string {
	return string(l.d.Match([]rune(validPrefix(word))))
}

// Count returns the number of distinct non-empty words inserted.
func (l *Lexicon) Count() int {
	return l.d.Count()
}

// Finalize freezes the Lexicon. Idempotent.
func (l *Lexicon) Finalize() {
	l.d.Finalize()
}

// Frozen reports whether Finalize has been called.
func (l *Lexicon) Frozen() bool {
	return l.d.Frozen()
}

// Values enumerates all words in ascending order, joining runes with sep
// ("" yields the words themselves).
func (l *Lexicon) Values(sep string, opts ...dfs.Option) *dfs.Cursor[rune, string] {
	return Strings(l.d, sep, opts...)
}

// ValuesStartingWith enumerates the words beginning with prefix.
func (l *Lexicon) ValuesStartingWith(prefix, sep string, opts ...dfs.Option) *dfs.Cursor[rune, string] {
	if !utf8.ValidString(prefix) {
		return dfs.NewCursor[rune, string](nil, "", 0, dfs.Separator[rune](sep), opts...)
	}

	return StringsStartingWith(l.d, []rune(prefix), sep, opts...)
}

// Words returns all words in ascending order.
func (l *Lexicon) Words() []string {
	return l.Values("").Collect()
}

// Complete returns up to limit words beginning with prefix, shortest first
// (limit 0 means all). It stops early when ctx is canceled.
func (l *Lexicon) Complete(ctx context.Context, prefix string, limit int) ([]string, error) {
	if !utf8.ValidString(prefix) {
		return nil, nil
	}

	return Shortest(l.d, []rune(prefix), "", dfs.Concat[rune](), bfs.WithContext(ctx), bfs.WithLimit(limit))
}

// Dawg exposes the underlying rune automaton.
func (l *Lexicon) Dawg() *Dawg[rune] {
	return l.d
}

// validPrefix returns s up to its first invalid UTF-8 byte.
func validPrefix(s string) string {
	for i, r := range s {
		if r != utf8.RuneError {
			continue
		}
		if _, size := utf8.DecodeRuneInString(s[i:]); size == 1 {
			return s[:i]
		}
	}

	return s
}
