package message

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/jaswdr/faker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/weegigs/wee-webapp-go/counter"
	"github.com/weegigs/wee-webapp-go/we"
)

type test = func(t *testing.T)

func fixedClock(t time.Time) we.Clock {
	return we.ClockFunc(func() time.Time { return t })
}

func countsFromOne() test {
	return func(t *testing.T) {
		ctx := context.TODO()
		service := NewService(counter.NewLocalCounter())

		first, err := service.Handle(ctx)
		require.NoError(t, err)
		second, err := service.Handle(ctx)
		require.NoError(t, err)

		assert.Equal(t, uint64(1), first.Counter)
		assert.Equal(t, uint64(2), second.Counter)
	}
}

func usesConfiguredGreeting() test {
	return func(t *testing.T) {
		greeting := Greeting(faker.New().Lorem().Sentence(6))
		service := NewService(counter.NewLocalCounter(), WithGreeting(greeting))

		msg, err := service.Handle(context.TODO())
		require.NoError(t, err)

		assert.Equal(t, string(greeting), msg.Message)
		assert.Equal(t, greeting, service.Greeting())
	}
}

func defaultsGreeting() test {
	return func(t *testing.T) {
		msg, err := NewService(counter.NewLocalCounter()).Handle(context.TODO())
		require.NoError(t, err)

		assert.Equal(t, string(DefaultGreeting), msg.Message)
	}
}

func stampsInUTC() test {
	return func(t *testing.T) {
		now := time.Date(2024, 11, 2, 23, 30, 0, 500000000, time.FixedZone("PDT", -7*60*60))
		service := NewService(counter.NewLocalCounter(), WithClock(fixedClock(now)))

		msg, err := service.Handle(context.TODO())
		require.NoError(t, err)

		assert.Equal(t, we.Timestamp("2024-11-03T06:30:00.5Z"), msg.Timestamp)
	}
}

func timestampsAreNonDecreasing() test {
	return func(t *testing.T) {
		ctx := context.TODO()
		service := NewService(counter.NewLocalCounter())

		first, err := service.Handle(ctx)
		require.NoError(t, err)
		second, err := service.Handle(ctx)
		require.NoError(t, err)

		a, err := first.Timestamp.Time()
		require.NoError(t, err)
		b, err := second.Timestamp.Time()
		require.NoError(t, err)

		assert.False(t, b.Before(a))
	}
}

func clockFailureStillAdvancesCounter() test {
	return func(t *testing.T) {
		ctx := context.TODO()
		c := counter.NewLocalCounter()
		service := NewService(c, WithClock(fixedClock(time.Date(10000, 1, 1, 0, 0, 0, 0, time.UTC))))

		_, err := service.Handle(ctx)

		var internal *we.InternalError
		assert.ErrorAs(t, err, &internal)

		value, _ := c.Get(ctx)
		assert.Equal(t, uint64(1), value)
	}
}

func uniqueUnderConcurrency(n int) test {
	return func(t *testing.T) {
		ctx := context.TODO()
		service := NewService(counter.NewLocalCounter())

		var mu sync.Mutex
		seen := make([]uint64, 0, n)

		g, ctx := errgroup.WithContext(ctx)
		for i := 0; i < n; i++ {
			g.Go(func() error {
				msg, err := service.Handle(ctx)
				if err != nil {
					return err
				}
				mu.Lock()
				seen = append(seen, msg.Counter)
				mu.Unlock()
				return nil
			})
		}
		require.NoError(t, g.Wait())

		sort.Slice(seen, func(i, j int) bool { return seen[i] < seen[j] })
		for i, value := range seen {
			assert.Equal(t, uint64(i+1), value)
		}
	}
}

func TestMessageService(t *testing.T) {
	t.Run("counts from one", countsFromOne())
	t.Run("uses configured greeting", usesConfiguredGreeting())
	t.Run("defaults greeting", defaultsGreeting())
	t.Run("stamps in UTC", stampsInUTC())
	t.Run("timestamps are non-decreasing", timestampsAreNonDecreasing())
	t.Run("clock failure still advances counter", clockFailureStillAdvancesCounter())
	t.Run("values are unique under concurrency", uniqueUnderConcurrency(100))
}
