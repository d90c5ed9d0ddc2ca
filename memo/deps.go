package memo

// Deps is an ordered dependency list. Call sites are expected to rebuild it
// with the same arity on every call; a cell treats an arity change as
// changed rather than guessing an alignment.
type Deps []any

// Comparator decides whether one dependency pair is unchanged.
// It must be pure: no state, no identity beyond its behavior.
type Comparator func(a, b any) bool

// changedFrom walks the two lists pairwise and reports whether any pair
// differs under cmp. The walk lives here, not in the comparator: comparators
// only ever see a single pair, and the walk short-circuits on the first
// mismatch.
func changedFrom(prev, next Deps, cmp Comparator) bool {
	if len(prev) != len(next) {
		return true
	}
	for i := range next {
		if !cmp(prev[i], next[i]) {
			return true
		}
	}
	return false
}
