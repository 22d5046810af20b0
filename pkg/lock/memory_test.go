package lock

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLock_AcquireAndRelease(t *testing.T) {
	ctx := context.Background()
	l := NewMemoryLock(time.Minute)

	token, ok, err := l.TryAcquire(ctx, "payment:42")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NotEmpty(t, token)

	// Second acquire on the same key fails immediately.
	_, ok, err = l.TryAcquire(ctx, "payment:42")
	require.NoError(t, err)
	assert.False(t, ok)

	// Other keys are independent.
	_, ok, err = l.TryAcquire(ctx, "payment:43")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, l.Release(ctx, "payment:42", token))

	_, ok, err = l.TryAcquire(ctx, "payment:42")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryLock_ReleaseUnheldIsNoop(t *testing.T) {
	l := NewMemoryLock(time.Minute)
	assert.NoError(t, l.Release(context.Background(), "never-held", "whatever"))
}

func TestMemoryLock_ExpiredEntryCanBeReacquired(t *testing.T) {
	ctx := context.Background()
	l := NewMemoryLock(50 * time.Millisecond)

	base := time.Now()
	l.now = func() time.Time { return base }

	_, ok, err := l.TryAcquire(ctx, "payment:42")
	require.NoError(t, err)
	require.True(t, ok)

	// Holder crashed; after the hold TTL the key is free again.
	l.now = func() time.Time { return base.Add(100 * time.Millisecond) }

	_, ok, err = l.TryAcquire(ctx, "payment:42")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryLock_StaleReleaseDoesNotFreeNewHolder(t *testing.T) {
	ctx := context.Background()
	l := NewMemoryLock(50 * time.Millisecond)

	base := time.Now()
	l.now = func() time.Time { return base }

	// First holder outlives its TTL.
	staleToken, ok, err := l.TryAcquire(ctx, "payment:42")
	require.NoError(t, err)
	require.True(t, ok)

	l.now = func() time.Time { return base.Add(100 * time.Millisecond) }

	// A second delivery re-acquires the expired key.
	newToken, ok, err := l.TryAcquire(ctx, "payment:42")
	require.NoError(t, err)
	require.True(t, ok)

	// The slow first holder finally releases. Its token no longer matches,
	// so the second holder keeps mutual exclusion.
	require.NoError(t, l.Release(ctx, "payment:42", staleToken))

	_, ok, err = l.TryAcquire(ctx, "payment:42")
	require.NoError(t, err)
	assert.False(t, ok, "stale release must not free the current holder's lock")

	// The current holder's own token still releases normally.
	require.NoError(t, l.Release(ctx, "payment:42", newToken))

	_, ok, err = l.TryAcquire(ctx, "payment:42")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryLock_ConcurrentAcquireExactlyOneWins(t *testing.T) {
	ctx := context.Background()
	l := NewMemoryLock(time.Minute)

	const workers = 32
	var acquired int32
	var wg sync.WaitGroup
	start := make(chan struct{})
	errs := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, ok, err := l.TryAcquire(ctx, "payment:42")
			if err != nil {
				errs <- err
				return
			}
			if ok {
				atomic.AddInt32(&acquired, 1)
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	assert.Equal(t, int32(1), acquired)
}
