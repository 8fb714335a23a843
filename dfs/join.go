// File: join.go
// Role: Accumulation strategies for enumeration (value mode and path mode).

package dfs

// Concat joins symbols with no separator: "a","b","c" -> "abc".
func Concat[S Text]() JoinFunc[S, string] {
	return func(acc string, sym S, _ int) string {
		return acc + string(sym)
	}
}

// Separator joins symbols with sep between elements, never before the first:
// "bull","dog" with "|" -> "bull|dog".
func Separator[S Text](sep string) JoinFunc[S, string] {
	return func(acc string, sym S, pos int) string {
		if pos == 0 {
			return acc + string(sym)
		}
		return acc + sep + string(sym)
	}
}

// Left adapts a plain left fold (acc, sym) -> acc, ignoring positions.
func Left[S any, A any](fn func(acc A, sym S) A) JoinFunc[S, A] {
	return func(acc A, sym S, _ int) A {
		return fn(acc, sym)
	}
}

// Append is the path-mode strategy: the accumulator is the symbol sequence itself.
// Every call returns a fresh slice, so sibling frames never alias each other.
func Append[S any]() JoinFunc[S, []S] {
	return func(acc []S, sym S, _ int) []S {
		out := make([]S, len(acc)+1)
		copy(out, acc)
		out[len(acc)] = sym

		return out
	}
}

// Fold applies join to every symbol of path in order, starting from init.
// It is used to pre-seed a cursor that starts below the root.
// Complexity: O(|path|) join calls.
func Fold[S any, A any](join JoinFunc[S, A], init A, path []S) A {
	acc := init
	for i, sym := range path {
		acc = join(acc, sym, i)
	}

	return acc
}
