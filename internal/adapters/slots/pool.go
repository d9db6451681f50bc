package slots

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bnema/twmj/internal/adapters/metrics"
	"github.com/bnema/twmj/internal/domain"
	"github.com/bnema/twmj/internal/ports"
	"golang.org/x/sync/semaphore"
)

// Pool admits at most Capacity concurrent holders. Waiters block in Acquire
// until a slot frees, their context ends, or the pool is closed.
type Pool struct {
	capacity int64
	sem      *semaphore.Weighted
	inUse    atomic.Int64
	metrics  *metrics.Recorder

	closing context.Context
	close   context.CancelFunc
}

var _ ports.SlotPool = (*Pool)(nil)

func NewPool(capacity int, recorder *metrics.Recorder) (*Pool, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("slot pool capacity must be at least 1, got %d", capacity)
	}

	closing, cancel := context.WithCancel(context.Background())
	return &Pool{
		capacity: int64(capacity),
		sem:      semaphore.NewWeighted(int64(capacity)),
		metrics:  recorder,
		closing:  closing,
		close:    cancel,
	}, nil
}

func (p *Pool) Acquire(ctx context.Context) (func(), error) {
	if p.closing.Err() != nil {
		return nil, fmt.Errorf("%w: inference slot pool closed", domain.ErrServiceUnavailable)
	}

	acquireCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(p.closing, cancel)
	defer stop()

	started := time.Now()
	p.metrics.SlotWaiting(1)
	err := p.sem.Acquire(acquireCtx, 1)
	p.metrics.SlotWaiting(-1)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: inference slot pool closed", domain.ErrServiceUnavailable)
	}
	if p.closing.Err() != nil {
		p.sem.Release(1)
		return nil, fmt.Errorf("%w: inference slot pool closed", domain.ErrServiceUnavailable)
	}

	p.inUse.Add(1)
	p.metrics.SlotAcquired(time.Since(started))

	return sync.OnceFunc(func() {
		p.inUse.Add(-1)
		p.metrics.SlotReleased()
		p.sem.Release(1)
	}), nil
}

// Close fails pending and future acquisitions with domain.ErrServiceUnavailable.
// Slots already held stay valid until released.
func (p *Pool) Close() {
	p.close()
}

func (p *Pool) Capacity() int {
	return int(p.capacity)
}

func (p *Pool) InUse() int {
	return int(p.inUse.Load())
}
