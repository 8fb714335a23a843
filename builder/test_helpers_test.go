// SPDX-License-Identifier: MIT
// Package builder_test contains fixtures shared by the builder tests.

package builder_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvdawg/builder"
)

// runes converts words into rune paths.
func runes(words ...string) [][]rune {
	out := make([][]rune, 0, len(words))
	for _, w := range words {
		out = append(out, []rune(w))
	}

	return out
}

// mustLexicon builds a finalized Lexicon or fails the test.
func mustLexicon(t *testing.T, words ...string) *builder.Lexicon {
	t.Helper()
	l, err := builder.LexiconFrom(words)
	require.NoError(t, err)

	return l
}

// mustRunes builds a finalized Dawg[rune] or fails the test.
func mustRunes(t *testing.T, words ...string) *builder.Dawg[rune] {
	t.Helper()
	d, err := builder.FromOrdered(runes(words...))
	require.NoError(t, err)

	return d
}

// allStrings drains the default concatenating enumeration of d.
func allStrings(d *builder.Dawg[rune]) []string {
	return builder.Strings(d, "").Collect()
}

// prefixSuffixWords returns "a", "ab", …, "a…z" plus "z", "yz", …, "b…z",
// sorted; many entries share long suffixes.
func prefixSuffixWords() []string {
	var words []string
	prefix, suffix := "", ""
	for c := 'a'; c <= 'z'; c++ {
		prefix += string(c)
		suffix = string('z'-(c-'a')) + suffix
		words = append(words, prefix)
		if prefix != suffix {
			words = append(words, suffix)
		}
	}
	sort.Strings(words)

	return dedupe(words)
}

// syntheticWords returns a deterministic, sorted, duplicate-free word list
// built from a small alphabet with recurring endings.
func syntheticWords() []string {
	stems := []string{"bat", "cat", "hat", "mat", "rat", "sat", "ban", "can", "fan", "man"}
	endings := []string{"", "s", "ed", "ing", "ter", "ters"}
	var words []string
	for _, s := range stems {
		for _, e := range endings {
			words = append(words, s+e)
		}
	}
	sort.Strings(words)

	return dedupe(words)
}

// dedupe removes adjacent duplicates from a sorted slice.
func dedupe(words []string) []string {
	out := words[:0]
	for i, w := range words {
		if i == 0 || w != words[i-1] {
			out = append(out, w)
		}
	}

	return out
}
