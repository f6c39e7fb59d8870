package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_GetOrLoad_SharesConcurrentLoads(t *testing.T) {
	t.Parallel()

	store := NewStore[string](time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (string, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "directory", nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), "same-key", loader)
			if err != nil {
				errCh <- err
				return
			}
			if v != "directory" {
				errCh <- errUnexpectedValue
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		require.NoError(t, err)
	}

	assert.Equal(t, int32(1), calls.Load())
}

func TestStore_GetOrLoad_UsesCachedValueAfterFirstLoad(t *testing.T) {
	t.Parallel()

	store := NewStore[int](time.Minute)
	var calls atomic.Int32
	loader := func(context.Context) (int, error) {
		calls.Add(1)
		return 7, nil
	}

	for i := 0; i < 2; i++ {
		v, err := store.GetOrLoad(context.Background(), "k", loader)
		require.NoError(t, err)
		assert.Equal(t, 7, v)
	}
	assert.Equal(t, int32(1), calls.Load())
}

func TestStore_GetOrLoad_DoesNotCacheErrors(t *testing.T) {
	t.Parallel()

	store := NewStore[int](time.Minute)
	boom := errors.New("boom")

	_, err := store.GetOrLoad(context.Background(), "k", func(context.Context) (int, error) { return 0, boom })
	require.ErrorIs(t, err, boom)

	_, ok := store.Get(context.Background(), "k")
	assert.False(t, ok)

	_, err = store.GetOrLoad(context.Background(), "k", nil)
	assert.Error(t, err)
}

func TestStore_ExpiresEntries(t *testing.T) {
	t.Parallel()

	store := NewStore[string](time.Minute)
	now := time.Date(2025, 9, 7, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	store.Set(context.Background(), "k", "v")
	_, ok := store.Get(context.Background(), "k")
	require.True(t, ok)

	now = now.Add(2 * time.Minute)
	_, ok = store.Get(context.Background(), "k")
	assert.False(t, ok)
}

func TestStore_DeletePrefix(t *testing.T) {
	t.Parallel()

	store := NewStore[string](0)
	ctx := context.Background()
	store.Set(ctx, "directory:nfl", "a")
	store.Set(ctx, "directory:ncaa", "b")
	store.Set(ctx, "league:1", "c")

	store.DeletePrefix(ctx, "directory:")
	store.Delete(ctx, "missing")

	_, ok := store.Get(ctx, "directory:nfl")
	assert.False(t, ok)
	_, ok = store.Get(ctx, "league:1")
	assert.True(t, ok)
}

var errUnexpectedValue = errors.New("unexpected loaded value")
