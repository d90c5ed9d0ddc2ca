// Package equality provides the structural equality relations that gate
// memoization: identity, one-level shallow equality, and recursive deep
// equality.
//
// The three relations form a ladder:
//
//	Identical(a, b) ⇒ Shallow(a, b) ⇒ Deep(a, b)
//
// Each one answers a different question:
//
//	→ Identical: "is this the same value or the same reference?"
//	→ Shallow:   "do these hold identical contents, one level down?"
//	→ Deep:      "are these structurally the same, all the way down?"
//
// All three operate over a small value model: primitives (compared with ==,
// except that NaN equals NaN), sequences (slices and arrays), keyed mappings
// (maps and structs over their exported fields), and opaque references
// (channels and functions — identity only). Shallow and Deep follow non-nil
// pointers to their pointees, so *T compares like T; Identical never does.
// Anything outside the model compares unequal unless identical.
//
// Deep does not detect cycles. Comparing cyclic structures recurses without
// bound; callers own that precondition.
package equality
