package memo

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/on-the-ground/memo_ize_go/shared/helper"
)

// Table owns one memo cell per string key, for call sites that only exist
// dynamically (one per list row, one per connection). Cells idle past the
// TTL are evicted and simply recompute on next use; nothing is lost but the
// shortcut.
//
// A Table is for disjoint call sites. Concurrent use of distinct keys is
// fine; concurrent use of the same key is a caller bug, same as sharing a
// Cell.
type Table[T any] struct {
	cells *gocache.Cache
	opts  []Option
}

// NewTable returns a Table whose cells expire after sitting unused for
// defaultTTL, swept every cleanupInterval. Pass gocache.NoExpiration to keep
// cells forever. opts apply to every cell the table creates.
func NewTable[T any](defaultTTL, cleanupInterval time.Duration, opts ...Option) *Table[T] {
	return &Table[T]{
		cells: gocache.New(defaultTTL, cleanupInterval),
		opts:  opts,
	}
}

// Memoize dispatches to the cell for key, creating it on first sight.
// Each access re-arms the cell's TTL, so a live call site never loses its
// cell mid-conversation.
func (t *Table[T]) Memoize(key string, factory func() T, deps Deps) T {
	cell, ok := helper.AssertTyped[*Cell[T]](func() (any, bool) {
		return t.cells.Get(key)
	})
	if !ok {
		cell = New[T](t.opts...)
	}
	t.cells.SetDefault(key, cell)
	return cell.Memoize(factory, deps)
}

// Forget drops the cell for key; the next Memoize for that key starts Empty.
func (t *Table[T]) Forget(key string) {
	t.cells.Delete(key)
}

// Flush drops every cell.
func (t *Table[T]) Flush() {
	t.cells.Flush()
}

// Len reports the number of live cells, expired ones included until swept.
func (t *Table[T]) Len() int {
	return t.cells.ItemCount()
}
