// Package memo provides caller-owned memoization cells: caches of one that
// re-run a factory only when its dependency list changes.
//
// A memo cell is not just a cache. A memo cell is a tool that *forces the
// developer to ask*:
//
//	→ "What does this value actually depend on?"
//	→ "When no dependency changed, is recomputing it pure waste?"
//
// Each call site constructs a Cell once and keeps it for its own lifetime.
// Every render/iteration it hands the cell a factory and the current
// dependency list; the cell compares the list pairwise against the one that
// produced the stored value and either returns the stored value untouched or
// runs the factory exactly once and replaces both.
//
// Features:
//   - Cell[T]: the cache-of-one, with a pluggable per-dependency Comparator.
//   - NewDeep: a Cell that compares dependencies with equality.Deep, so two
//     freshly built but structurally equal lists do not recompute.
//   - CallbackI0O1 to CallbackI3O1: typed cells whose product is a function
//     with a stable identity, forwarding to whichever function is currently
//     memoized.
//   - Table[T]: one cell per string key for call sites that only exist
//     dynamically, with idle-TTL eviction.
//   - Optional zap debug logging and a non-blocking RecomputeEvent sink for
//     observing Empty→Populated and recompute transitions.
//
// By default dependencies are compared with equality.Identical — a freshly
// allocated map or slice counts as changed even when its contents did not.
// That is the contract callers rely on when they reuse references to signal
// "nothing happened"; reach for NewDeep (or WithComparator) when dependency
// lists are rebuilt by value on every call.
//
// A Cell belongs to exactly one logical thread of execution. Distinct cells
// never interact, so concurrent call sites need no locking; sharing one cell
// across goroutines is a caller bug.
package memo
