package sonar

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/semaphore"
)

// gate bounds how many inbound requests are processed concurrently. Waiters
// are admitted in FIFO order; each one gives up after the admission timeout.
type gate struct {
	sem       *semaphore.Weighted
	maxQueued int64
	admission time.Duration

	queued atomic.Int64
}

func newGate(concurrency, maxQueued int, admission time.Duration) *gate {
	return &gate{
		sem:       semaphore.NewWeighted(int64(concurrency)),
		maxQueued: int64(maxQueued),
		admission: admission,
	}
}

func (g *gate) Acquire(ctx context.Context) error {
	if g.sem.TryAcquire(1) {
		return nil
	}

	if g.queued.Add(1) > g.maxQueued {
		g.queued.Add(-1)
		return errors.WithStack(ErrGateBusy)
	}
	defer g.queued.Add(-1)

	ctx, cancel := context.WithTimeout(ctx, g.admission)
	defer cancel()

	if err := g.sem.Acquire(ctx, 1); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return errors.WithStack(ErrGateBusy)
		}
		return errors.WithStack(err)
	}
	return nil
}

func (g *gate) Release() {
	g.sem.Release(1)
}
