package builder_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvdawg/bfs"
	"github.com/katalvlaran/lvdawg/builder"
	"github.com/katalvlaran/lvdawg/dfs"
)

func TestStrings_Separator(t *testing.T) {
	d := mustRunes(t, "abc", "bca", "cab")

	assert.Equal(t, []string{"axbxc", "bxcxa", "cxaxb"}, builder.Strings(d, "x").Collect())
	assert.Equal(t, []string{"abc", "bca", "cab"}, builder.Strings(d, "").Collect())
}

func TestStrings_MultiCharacterSymbols(t *testing.T) {
	d, err := builder.FromOrdered([][]string{{"a", "b", "c"}, {"bc", "a"}, {"cab"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"axbxc", "bcxa", "cab"}, builder.Strings(d, "x").Collect())
	assert.True(t, d.Has([]string{"bc", "a"}))
	assert.False(t, d.Has([]string{"b", "c", "a"}))
}

func TestValues_CustomJoin(t *testing.T) {
	d := mustRunes(t, "abc")

	double := dfs.Left(func(acc string, r rune) string { return acc + string(r) + string(r) })
	assert.Equal(t, []string{"aabbcc"}, builder.Values(d, "", double).Collect())
}

func TestValues_NonStringAccumulator(t *testing.T) {
	d := mustRunes(t, "ab", "abc", "b")

	length := dfs.Left(func(acc int, _ rune) int { return acc + 1 })
	assert.Equal(t, []int{2, 3, 1}, builder.Values(d, 0, length).Collect())
}

func TestPaths(t *testing.T) {
	d := mustRunes(t, "ab", "b", "c")

	got := d.Paths().Collect()
	assert.Equal(t, [][]rune{[]rune("ab"), []rune("b"), []rune("c")}, got)

	got[0][0] = 'z'
	assert.Equal(t, [][]rune{[]rune("ab"), []rune("b"), []rune("c")}, d.Paths().Collect(),
		"yielded paths must not share storage with the graph")
}

func TestPathsStartingWith(t *testing.T) {
	d := mustRunes(t, "car", "cars", "cat", "dog")

	assert.Equal(t, [][]rune{[]rune("car"), []rune("cars")}, d.PathsStartingWith([]rune("car")).Collect())
	assert.Empty(t, d.PathsStartingWith([]rune("cow")).Collect())
}

func TestValuesStartingWith(t *testing.T) {
	d := mustRunes(t, "a", "abc", "abcd", "d", "da")

	cases := []struct {
		prefix string
		want   []string
	}{
		{"ab", []string{"abc", "abcd"}},
		{"abcde", nil},
		{"da", []string{"da"}},
		{"a", []string{"a", "abc", "abcd"}},
		{"", []string{"a", "abc", "abcd", "d", "da"}},
		{"x", nil},
	}
	for _, tc := range cases {
		t.Run("prefix="+tc.prefix, func(t *testing.T) {
			got := builder.StringsStartingWith(d, []rune(tc.prefix), "").Collect()
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestValuesStartingWith_SeparatorCoversPrefix(t *testing.T) {
	d := mustRunes(t, "abc", "abcd", "b")

	assert.Equal(t, []string{"a-b-c", "a-b-c-d"}, builder.StringsStartingWith(d, []rune("ab"), "-").Collect())
}

func TestWordLevel(t *testing.T) {
	d, err := builder.FromOrdered([][]string{
		{"bull", "dog"},
		{"bull", "terrier"},
		{"cat"},
		{"pit", "bull", "terrier"},
	})
	require.NoError(t, err)

	assert.Equal(t,
		[]string{"bull|dog", "bull|terrier", "cat", "pit|bull|terrier"},
		builder.Strings(d, "|").Collect())
	assert.Equal(t,
		[]string{"bull|dog", "bull|terrier"},
		builder.StringsStartingWith(d, []string{"bull"}, "|").Collect())
	assert.Equal(t, []string{"bull", "dog"}, d.Match([]string{"bull", "dog", "show"}))
	assert.Empty(t, d.Match([]string{"pit", "bull", "mastiff"}), "\"pit bull\" alone is not an entry")
	assert.NoError(t, d.Verify())
}

func TestTraversal_MaxDepth(t *testing.T) {
	d := mustRunes(t, "a", "ab", "abc", "b")

	got := builder.Strings(d, "", dfs.WithMaxDepth(2)).Collect()
	assert.Equal(t, []string{"a", "ab", "b"}, got)

	got = builder.StringsStartingWith(d, []rune("a"), "", dfs.WithMaxDepth(1)).Collect()
	assert.Equal(t, []string{"a", "ab"}, got, "depth counts from the prefix state")
}

func TestTraversal_CursorIsLazy(t *testing.T) {
	d := mustRunes(t, "a", "b", "c", "d")

	c := builder.Strings(d, "")
	first, ok := c.Next()
	require.True(t, ok)
	assert.Equal(t, "a", first)

	rest := c.Fork()
	assert.Equal(t, []string{"b", "c", "d"}, rest.Collect())
	assert.Equal(t, []string{"b", "c", "d"}, c.Collect(), "forking leaves the source cursor in place")
	assert.True(t, c.Done())
}

func TestEmptyPath(t *testing.T) {
	t.Run("first insertion", func(t *testing.T) {
		d := builder.NewOrdered[rune]()
		require.NoError(t, d.Add(nil))
		require.NoError(t, d.Add([]rune{}), "repeat is a duplicate")
		require.NoError(t, d.Add([]rune("a")))

		assert.True(t, d.Has(nil))
		assert.Equal(t, 1, d.Count(), "the empty path is not counted")
		assert.Equal(t, []string{"", "a"}, allStrings(d))
		assert.Empty(t, d.Match([]rune("b")))
		assert.NoError(t, d.Verify())

		d.Finalize()
		assert.True(t, d.Has(nil))
		assert.NoError(t, d.Verify())
	})

	t.Run("after a non-empty path", func(t *testing.T) {
		d := builder.NewOrdered[rune]()
		require.NoError(t, d.Add([]rune("a")))

		err := d.Add(nil)
		assert.ErrorIs(t, err, builder.ErrOrderViolation)
		assert.False(t, d.Has(nil))
	})

	t.Run("placed last by a custom order", func(t *testing.T) {
		desc := func(a, b []rune) int { return strings.Compare(string(b), string(a)) }
		d := builder.NewOrdered[rune](builder.WithPathCompare(desc))
		require.NoError(t, d.Add([]rune("b")))
		require.NoError(t, d.Add(nil))
		require.NoError(t, d.Add([]rune{}), "repeat is a duplicate")
		before := d.Stats()

		err := d.Add([]rune("a"))
		assert.ErrorIs(t, err, builder.ErrOrderViolation, "\"a\" sorts before the empty path")
		assert.Equal(t, before, d.Stats())
		assert.False(t, d.Has([]rune("a")))
		assert.Zero(t, before.Pending, "the frontier is minimized")

		d.Finalize()
		assert.True(t, d.Has(nil))
		assert.Equal(t, 1, d.Count())
		assert.Equal(t, []string{"", "b"}, allStrings(d))
		assert.NoError(t, d.Verify())
	})
}

func TestRejectedAddLeavesStateUnchanged(t *testing.T) {
	d := builder.NewOrdered[rune]()
	require.NoError(t, d.AddAll(runes("ba", "bb")))
	before := d.Stats()

	require.Error(t, d.Add([]rune("b")))
	require.Error(t, d.Add([]rune("az")))
	assert.Equal(t, before, d.Stats())

	require.NoError(t, d.Add([]rune("c")))
	d.Finalize()
	assert.Equal(t, []string{"ba", "bb", "c"}, allStrings(d))
	assert.NoError(t, d.Verify())
}

func TestAddAll_StopsAtFirstFailure(t *testing.T) {
	d := builder.NewOrdered[rune]()

	err := d.AddAll(runes("a", "b", "a", "c"))
	require.ErrorIs(t, err, builder.ErrOrderViolation)
	assert.Contains(t, err.Error(), "entry 2")
	assert.Equal(t, 2, d.Count(), "entries before the failure stay inserted")
	assert.False(t, d.Has([]rune("c")))
}

func TestShortest(t *testing.T) {
	d := mustRunes(t, "car", "cardigan", "care", "cart", "cat", "dog")

	got, err := builder.Shortest(d, []rune("car"), "", dfs.Concat[rune]())
	require.NoError(t, err)
	assert.Equal(t, []string{"car", "care", "cart", "cardigan"}, got)

	got, err = builder.Shortest(d, []rune("ca"), "", dfs.Concat[rune](), bfs.WithLimit(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"car", "cat"}, got)

	got, err = builder.Shortest(d, []rune("x"), "", dfs.Concat[rune]())
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = builder.Shortest(d, nil, "", dfs.Concat[rune](), bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}
