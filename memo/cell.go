package memo

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/on-the-ground/memo_ize_go/equality"
)

// Cell is a cache of one. It starts Empty; the first Memoize populates it
// and it stays Populated for the rest of its life, holding exactly the value
// the factory produced for the dependency list most recently judged changed.
//
// A Cell belongs to one call site and one logical thread of execution.
type Cell[T any] struct {
	id     string
	cmp    Comparator
	logger *zap.Logger
	sink   chan<- RecomputeEvent

	populated bool
	deps      Deps
	value     T
}

// New returns an Empty cell comparing dependencies with equality.Identical,
// unless WithComparator says otherwise.
func New[T any](opts ...Option) *Cell[T] {
	cfg := newCellConfig(opts...)
	return &Cell[T]{
		id:     uuid.New().String(),
		cmp:    cfg.cmp,
		logger: cfg.logger,
		sink:   cfg.sink,
	}
}

// NewDeep returns a cell comparing dependencies with equality.Deep, so a
// dependency list rebuilt by value on every call does not recompute.
// A WithComparator among opts is overridden.
func NewDeep[T any](opts ...Option) *Cell[T] {
	return New[T](append(opts, WithComparator(equality.Deep))...)
}

// Memoize returns the stored value when deps matches the list that produced
// it, without running factory. Otherwise it runs factory exactly once,
// stores the result together with its own copy of deps, and returns it.
// The copy means callers may reuse one Deps buffer across calls; mutating
// it in place still registers as a change. A panic inside factory
// propagates unchanged and leaves the cell as it was.
func (c *Cell[T]) Memoize(factory func() T, deps Deps) T {
	if c.populated && !changedFrom(c.deps, deps, c.cmp) {
		return c.value
	}
	value := factory()
	first := !c.populated
	c.value = value
	c.deps = append(Deps(nil), deps...)
	c.populated = true
	c.observe(first, deps)
	return value
}

// Populated reports whether the cell has ever run its factory.
func (c *Cell[T]) Populated() bool { return c.populated }

// ID returns the cell's identity as it appears in events and log entries.
func (c *Cell[T]) ID() string { return c.id }

func (c *Cell[T]) observe(first bool, deps Deps) {
	debugging := c.logger.Core().Enabled(zap.DebugLevel)
	if c.sink == nil && !debugging {
		return
	}
	ev := RecomputeEvent{
		CellID:   c.id,
		Digest:   Digest(deps),
		First:    first,
		TimeSpan: now(),
	}
	if c.sink != nil {
		select {
		case c.sink <- ev:
		default:
		}
	}
	if debugging {
		c.logger.Debug("memo cell recompute",
			zap.String("cell_id", ev.CellID),
			zap.Uint64("deps_digest", ev.Digest),
			zap.Bool("first", ev.First),
		)
	}
}
