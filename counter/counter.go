package counter

import (
	"context"

	"go.uber.org/atomic"
)

type Counter interface {
	// Up increments the counter and returns the new value.
	Up(ctx context.Context) (uint64, error)
	Get(ctx context.Context) (uint64, error)
}

var _ Counter = (*LocalCounter)(nil)

// LocalCounter is an in-memory counter owned by a single process. The value wraps to zero
// after math.MaxUint64 increments.
type LocalCounter struct {
	value atomic.Uint64
}

func NewLocalCounter() *LocalCounter {
	return &LocalCounter{}
}

func (c *LocalCounter) Up(_ context.Context) (uint64, error) {
	return c.value.Inc(), nil
}

func (c *LocalCounter) Get(_ context.Context) (uint64, error) {
	return c.value.Load(), nil
}
