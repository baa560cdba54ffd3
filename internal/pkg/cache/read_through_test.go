package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type exampleStruct struct {
	ID int
}

func newTestCache() *InMemory[[]exampleStruct] {
	return NewInMemory[[]exampleStruct]("test", time.Minute, time.Minute, zerolog.Nop())
}

func TestInMemory_GetSetDelete(t *testing.T) {
	ctx := context.Background()
	c := newTestCache()

	_, ok := c.Get(ctx, "key")
	require.False(t, ok)

	c.Set(ctx, "key", []exampleStruct{{ID: 1}}, time.Minute)
	got, ok := c.Get(ctx, "key")
	require.True(t, ok)
	assert.Equal(t, []exampleStruct{{ID: 1}}, got)

	c.Delete(ctx, "key")
	_, ok = c.Get(ctx, "key")
	assert.False(t, ok)
}

func TestInMemory_Flush(t *testing.T) {
	ctx := context.Background()
	c := newTestCache()
	c.Set(ctx, "a", nil, time.Minute)
	c.Set(ctx, "b", nil, time.Minute)

	c.Flush(ctx)

	_, ok := c.Get(ctx, "a")
	assert.False(t, ok)
}

func TestReadThrough_LoadsOnceWithinTTL(t *testing.T) {
	ctx := context.Background()
	var calls int32
	rt := NewReadThrough[[]exampleStruct](newTestCache(), func(ctx context.Context, key string) ([]exampleStruct, error) {
		atomic.AddInt32(&calls, 1)
		return []exampleStruct{{ID: 7}}, nil
	}, time.Minute)

	for i := 0; i < 3; i++ {
		got, err := rt.Get(ctx, "catalogue")
		require.NoError(t, err)
		assert.Equal(t, []exampleStruct{{ID: 7}}, got)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestReadThrough_ErrorIsNotCached(t *testing.T) {
	ctx := context.Background()
	var calls int32
	rt := NewReadThrough[[]exampleStruct](newTestCache(), func(ctx context.Context, key string) ([]exampleStruct, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			return nil, errors.New("disk on fire")
		}
		return []exampleStruct{{ID: 2}}, nil
	}, time.Minute)

	_, err := rt.Get(ctx, "catalogue")
	require.Error(t, err)

	got, err := rt.Get(ctx, "catalogue")
	require.NoError(t, err)
	assert.Equal(t, []exampleStruct{{ID: 2}}, got)
}

func TestReadThrough_InvalidateForcesReload(t *testing.T) {
	ctx := context.Background()
	var calls int32
	rt := NewReadThrough[[]exampleStruct](newTestCache(), func(ctx context.Context, key string) ([]exampleStruct, error) {
		n := atomic.AddInt32(&calls, 1)
		return []exampleStruct{{ID: int(n)}}, nil
	}, time.Minute)

	_, err := rt.Get(ctx, "catalogue")
	require.NoError(t, err)
	rt.Invalidate(ctx, "catalogue")

	got, err := rt.Get(ctx, "catalogue")
	require.NoError(t, err)
	assert.Equal(t, []exampleStruct{{ID: 2}}, got)
}

func TestReadThrough_ConcurrentMissesReturnSameValue(t *testing.T) {
	ctx := context.Background()
	rt := NewReadThrough[[]exampleStruct](newTestCache(), func(ctx context.Context, key string) ([]exampleStruct, error) {
		time.Sleep(5 * time.Millisecond)
		return []exampleStruct{{ID: 9}}, nil
	}, time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := rt.Get(ctx, "catalogue")
			assert.NoError(t, err)
			assert.Equal(t, []exampleStruct{{ID: 9}}, got)
		}()
	}
	wg.Wait()
}
