package memo

import (
	"go.uber.org/zap"

	"github.com/on-the-ground/memo_ize_go/equality"
)

// Option configures a Cell, a callback cell, or every cell of a Table.
type Option func(*cellConfig)

type cellConfig struct {
	cmp    Comparator
	logger *zap.Logger
	sink   chan<- RecomputeEvent
}

func newCellConfig(opts ...Option) cellConfig {
	cfg := cellConfig{
		cmp:    equality.Identical,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithComparator replaces the per-dependency comparator.
// The default is equality.Identical.
func WithComparator(cmp Comparator) Option {
	if cmp == nil {
		panic("comparator should not be nil")
	}
	return func(cfg *cellConfig) {
		cfg.cmp = cmp
	}
}

// WithLogger attaches a zap logger; the cell emits a debug entry per
// recompute. The default logger is a no-op.
func WithLogger(logger *zap.Logger) Option {
	if logger == nil {
		panic("logger should not be nil")
	}
	return func(cfg *cellConfig) {
		cfg.logger = logger
	}
}

// WithSink attaches a channel receiving one RecomputeEvent per factory run.
// Sends never block: when the sink is full the event is dropped.
func WithSink(sink chan<- RecomputeEvent) Option {
	return func(cfg *cellConfig) {
		cfg.sink = sink
	}
}
