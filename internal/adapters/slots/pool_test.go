package slots

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bnema/twmj/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestNewPoolRejectsNonPositiveCapacity(t *testing.T) {
	t.Parallel()

	_, err := NewPool(0, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 1")
}

func TestPoolBoundsConcurrentHolders(t *testing.T) {
	t.Parallel()

	for _, capacity := range []int{1, 2, 4} {
		pool, err := NewPool(capacity, nil)
		require.NoError(t, err)

		var (
			current atomic.Int64
			peak    atomic.Int64
			wg      sync.WaitGroup
		)
		for range 16 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				release, err := pool.Acquire(context.Background())
				if !assert.NoError(t, err) {
					return
				}
				defer release()

				n := current.Add(1)
				for {
					seen := peak.Load()
					if n <= seen || peak.CompareAndSwap(seen, n) {
						break
					}
				}
				time.Sleep(5 * time.Millisecond)
				current.Add(-1)
			}()
		}
		wg.Wait()

		assert.LessOrEqual(t, peak.Load(), int64(capacity), "capacity %d", capacity)
		assert.Equal(t, 0, pool.InUse())
		pool.Close()
	}
}

func TestPoolAcquireBlocksUntilRelease(t *testing.T) {
	t.Parallel()

	pool, err := NewPool(1, nil)
	require.NoError(t, err)
	defer pool.Close()

	release, err := pool.Acquire(context.Background())
	require.NoError(t, err)

	acquired := make(chan func(), 1)
	go func() {
		next, err := pool.Acquire(context.Background())
		if assert.NoError(t, err) {
			acquired <- next
		}
	}()

	select {
	case <-acquired:
		t.Fatal("second acquire succeeded while the only slot was held")
	case <-time.After(30 * time.Millisecond):
	}

	release()
	select {
	case next := <-acquired:
		next()
	case <-time.After(2 * time.Second):
		t.Fatal("second acquire did not proceed after release")
	}
}

func TestPoolReleaseIsIdempotent(t *testing.T) {
	t.Parallel()

	pool, err := NewPool(1, nil)
	require.NoError(t, err)
	defer pool.Close()

	release, err := pool.Acquire(context.Background())
	require.NoError(t, err)
	release()
	release()

	assert.Equal(t, 0, pool.InUse())
	second, err := pool.Acquire(context.Background())
	require.NoError(t, err)
	second()
}

func TestPoolAcquireHonoursCancellation(t *testing.T) {
	t.Parallel()

	pool, err := NewPool(1, nil)
	require.NoError(t, err)
	defer pool.Close()

	release, err := pool.Acquire(context.Background())
	require.NoError(t, err)
	defer release()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = pool.Acquire(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestPoolCloseFailsWaitersAndNewCallers(t *testing.T) {
	t.Parallel()

	pool, err := NewPool(1, nil)
	require.NoError(t, err)

	release, err := pool.Acquire(context.Background())
	require.NoError(t, err)

	waitErr := make(chan error, 1)
	go func() {
		_, err := pool.Acquire(context.Background())
		waitErr <- err
	}()
	time.Sleep(10 * time.Millisecond)

	pool.Close()

	select {
	case err := <-waitErr:
		require.ErrorIs(t, err, domain.ErrServiceUnavailable)
	case <-time.After(2 * time.Second):
		t.Fatal("waiter was not woken by Close")
	}

	_, err = pool.Acquire(context.Background())
	require.ErrorIs(t, err, domain.ErrServiceUnavailable)

	release()
}
