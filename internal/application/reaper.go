package application

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/twmj/internal/ports"
	"go.uber.org/zap"
)

var ErrReaperStarted = errors.New("reaper already started")

// Reaper sweeps the template store on a fixed interval for the lifetime of the
// service and wipes it once when stopped.
type Reaper struct {
	store    ports.TemplateStore
	interval time.Duration
	logger   *zap.Logger

	mu      sync.Mutex
	started bool
	stopped bool
	cancel  context.CancelFunc
	done    chan struct{}
}

func NewReaper(store ports.TemplateStore, interval time.Duration, logger *zap.Logger) (*Reaper, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("reap interval must be positive, got %s", interval)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Reaper{store: store, interval: interval, logger: logger}, nil
}

func (r *Reaper) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.started || r.stopped {
		return ErrReaperStarted
	}

	runCtx, cancel := context.WithCancel(ctx)
	r.started = true
	r.cancel = cancel
	r.done = make(chan struct{})

	go r.run(runCtx)
	r.logger.Debug("reaper started", zap.Duration("interval", r.interval))

	return nil
}

func (r *Reaper) run(ctx context.Context) {
	defer close(r.done)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if ctx.Err() != nil {
				return
			}
			r.sweep(ctx)
		}
	}
}

// sweep runs to completion even if ctx is cancelled mid-way so Stop observes
// a finished pass.
func (r *Reaper) sweep(ctx context.Context) {
	removed, err := r.store.Sweep(context.WithoutCancel(ctx))
	if err != nil {
		r.logger.Warn("template sweep failed", zap.Int("removed", removed), zap.Error(err))
		return
	}
	r.logger.Debug("template sweep finished", zap.Int("removed", removed))
}

// Stop cancels the sweep loop, waits for it to return and then wipes the store.
// Only the first call does anything. The wipe is attempted even when ctx ends
// before the loop returns.
func (r *Reaper) Stop(ctx context.Context) error {
	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		return nil
	}
	r.stopped = true
	cancel, done := r.cancel, r.done
	r.mu.Unlock()

	var errs []error
	if cancel != nil {
		cancel()
		select {
		case <-done:
		case <-ctx.Done():
			errs = append(errs, fmt.Errorf("wait for reaper: %w", ctx.Err()))
		}
	}

	if err := r.store.WipeAll(context.WithoutCancel(ctx)); err != nil {
		errs = append(errs, fmt.Errorf("wipe templates: %w", err))
	} else {
		r.logger.Info("template store wiped")
	}

	return errors.Join(errs...)
}
