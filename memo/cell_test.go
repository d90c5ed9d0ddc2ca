package memo_test

import (
	"testing"

	"github.com/on-the-ground/memo_ize_go/equality"
	"github.com/on-the-ground/memo_ize_go/memo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCell_MemoizesUntilDepsChange(t *testing.T) {
	count := 0
	cell := memo.New[int]()
	factory := func() int {
		count++
		return count * 10
	}

	assert.Equal(t, 10, cell.Memoize(factory, memo.Deps{1, 2}))
	assert.Equal(t, 10, cell.Memoize(factory, memo.Deps{1, 2})) // cached
	assert.Equal(t, 1, count)

	assert.Equal(t, 20, cell.Memoize(factory, memo.Deps{1, 3}))
	assert.Equal(t, 2, count)
}

func TestCell_FirstCallPopulates(t *testing.T) {
	cell := memo.New[string]()
	assert.False(t, cell.Populated())

	got := cell.Memoize(func() string { return "v" }, memo.Deps{"k"})
	assert.Equal(t, "v", got)
	assert.True(t, cell.Populated())
}

func TestCell_EmptyDepsNeverRecompute(t *testing.T) {
	count := 0
	cell := memo.New[int]()
	factory := func() int {
		count++
		return count
	}

	cell.Memoize(factory, memo.Deps{})
	cell.Memoize(factory, memo.Deps{})
	cell.Memoize(factory, nil) // nil and empty have the same arity
	assert.Equal(t, 1, count)
}

func TestCell_ArityChangeRecomputes(t *testing.T) {
	count := 0
	cell := memo.New[int]()
	factory := func() int {
		count++
		return count
	}

	cell.Memoize(factory, memo.Deps{1, 2})
	cell.Memoize(factory, memo.Deps{1})
	assert.Equal(t, 2, count)
}

func TestCell_ReusedDepsBufferStillRegistersChange(t *testing.T) {
	count := 0
	cell := memo.New[int]()
	factory := func() int {
		count++
		return count
	}

	// one buffer, mutated in place between calls
	buf := memo.Deps{1, 2}
	cell.Memoize(factory, buf)
	buf[1] = 3
	cell.Memoize(factory, buf)
	assert.Equal(t, 2, count)

	// resubmitting the same values through the same buffer is a match
	cell.Memoize(factory, buf)
	assert.Equal(t, 2, count)
}

func TestCell_DefaultComparatorIsIdentity(t *testing.T) {
	count := 0
	cell := memo.New[int]()
	factory := func() int {
		count++
		return count
	}

	// two distinct instances holding the same contents
	cell.Memoize(factory, memo.Deps{map[string]int{"a": 1}})
	cell.Memoize(factory, memo.Deps{map[string]int{"a": 1}})
	assert.Equal(t, 2, count)
}

func TestCellDeep_StructurallyEqualDepsDoNotRecompute(t *testing.T) {
	count := 0
	cell := memo.NewDeep[int]()
	factory := func() int {
		count++
		return count
	}

	cell.Memoize(factory, memo.Deps{map[string]int{"a": 1}})
	cell.Memoize(factory, memo.Deps{map[string]int{"a": 1}})
	assert.Equal(t, 1, count)

	cell.Memoize(factory, memo.Deps{map[string]int{"a": 2}})
	assert.Equal(t, 2, count)
}

func TestCell_ComparatorShortCircuits(t *testing.T) {
	pairs := 0
	cell := memo.New[int](memo.WithComparator(func(a, b any) bool {
		pairs++
		return equality.Identical(a, b)
	}))
	factory := func() int { return 0 }

	cell.Memoize(factory, memo.Deps{1, 2, 3})
	cell.Memoize(factory, memo.Deps{9, 2, 3}) // first pair differs
	assert.Equal(t, 1, pairs)
}

func TestCell_ShallowComparatorOptIn(t *testing.T) {
	count := 0
	cell := memo.New[int](memo.WithComparator(equality.Shallow))
	factory := func() int {
		count++
		return count
	}

	// one-level contents match, so shallow accepts distinct instances
	cell.Memoize(factory, memo.Deps{map[string]int{"a": 1}})
	cell.Memoize(factory, memo.Deps{map[string]int{"a": 1}})
	assert.Equal(t, 1, count)

	// but nesting defeats it
	cell.Memoize(factory, memo.Deps{map[string]any{"a": map[string]int{"b": 1}}})
	cell.Memoize(factory, memo.Deps{map[string]any{"a": map[string]int{"b": 1}}})
	assert.Equal(t, 3, count)
}

func TestCell_FactoryPanicLeavesCellIntact(t *testing.T) {
	cell := memo.New[int]()
	cell.Memoize(func() int { return 42 }, memo.Deps{1})

	require.Panics(t, func() {
		cell.Memoize(func() int { panic("factory blew up") }, memo.Deps{2})
	})

	// the stored value and deps survived the failed transition
	got := cell.Memoize(func() int {
		t.Fatal("factory should not run for the original deps")
		return 0
	}, memo.Deps{1})
	assert.Equal(t, 42, got)
}

func TestCell_SinkReceivesRecomputeEvents(t *testing.T) {
	sink := make(chan memo.RecomputeEvent, 4)
	cell := memo.New[int](memo.WithSink(sink))

	cell.Memoize(func() int { return 1 }, memo.Deps{1})
	cell.Memoize(func() int { return 1 }, memo.Deps{1}) // match, no event
	cell.Memoize(func() int { return 2 }, memo.Deps{2})

	require.Len(t, sink, 2)
	first := <-sink
	second := <-sink
	assert.True(t, first.First)
	assert.False(t, second.First)
	assert.Equal(t, cell.ID(), first.CellID)
	assert.Equal(t, cell.ID(), second.CellID)
	assert.Equal(t, memo.Digest(memo.Deps{1}), first.Digest)
	assert.Equal(t, memo.Digest(memo.Deps{2}), second.Digest)
}

func TestCell_FullSinkDoesNotBlock(t *testing.T) {
	sink := make(chan memo.RecomputeEvent) // unbuffered, nobody reading
	cell := memo.New[int](memo.WithSink(sink))

	// returns instead of blocking; the event is dropped
	got := cell.Memoize(func() int { return 1 }, memo.Deps{1})
	assert.Equal(t, 1, got)
}

func TestWithComparator_NilPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic on nil comparator, but didn't panic")
		}
	}()
	memo.New[int](memo.WithComparator(nil))
}
