package counter

import (
	"context"
	"sort"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"golang.org/x/sync/errgroup"
)

type test = func(t *testing.T)

func startsAtZero() test {
	return func(t *testing.T) {
		counter := NewLocalCounter()

		value, err := counter.Get(context.TODO())

		assert.NoError(t, err)
		assert.Equal(t, uint64(0), value)
	}
}

func incrementsSequentially() test {
	return func(t *testing.T) {
		ctx := context.TODO()
		counter := NewLocalCounter()

		first, err := counter.Up(ctx)
		assert.NoError(t, err)
		second, err := counter.Up(ctx)
		assert.NoError(t, err)

		assert.Equal(t, uint64(1), first)
		assert.Equal(t, uint64(2), second)
	}
}

func incrementsConcurrently(n int) test {
	return func(t *testing.T) {
		ctx := context.TODO()
		counter := NewLocalCounter()

		var mu sync.Mutex
		observed := make([]uint64, 0, n)

		var g errgroup.Group
		for i := 0; i < n; i++ {
			g.Go(func() error {
				value, err := counter.Up(ctx)
				if err != nil {
					return err
				}

				mu.Lock()
				observed = append(observed, value)
				mu.Unlock()
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			t.Fatalf("unexpected failure %+v", err)
		}

		expected := make([]uint64, n)
		for i := range expected {
			expected[i] = uint64(i + 1)
		}

		sort.Slice(observed, func(i, j int) bool { return observed[i] < observed[j] })
		if diff := cmp.Diff(expected, observed); diff != "" {
			t.Errorf("observed values mismatch (-want +got):\n%s", diff)
		}

		final, _ := counter.Get(ctx)
		assert.Equal(t, uint64(n), final)
	}
}

func isolatesInstances() test {
	return func(t *testing.T) {
		ctx := context.TODO()
		a := NewLocalCounter()
		b := NewLocalCounter()

		_, _ = a.Up(ctx)
		_, _ = a.Up(ctx)
		value, _ := b.Up(ctx)

		assert.Equal(t, uint64(1), value)
	}
}

func TestLocalCounter(t *testing.T) {
	t.Run("starts at zero", startsAtZero())
	t.Run("increments sequentially", incrementsSequentially())
	t.Run("increments concurrently without gaps or duplicates", incrementsConcurrently(1000))
	t.Run("isolates instances", isolatesInstances())
}
