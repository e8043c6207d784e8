package sonar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGateAdmitsUpToBound(t *testing.T) {
	requireT := require.New(t)

	g := newGate(2, 4, 100*time.Millisecond)
	ctx := context.Background()

	requireT.NoError(g.Acquire(ctx))
	requireT.NoError(g.Acquire(ctx))

	requireT.ErrorIs(g.Acquire(ctx), ErrGateBusy)
}

func TestGateRejectsImmediatelyWhenQueueIsFull(t *testing.T) {
	requireT := require.New(t)

	g := newGate(1, 0, time.Minute)
	ctx := context.Background()

	requireT.NoError(g.Acquire(ctx))

	started := time.Now()
	requireT.ErrorIs(g.Acquire(ctx), ErrGateBusy)
	requireT.Less(time.Since(started), time.Second)
}

func TestGateAdmitsWaiterAfterRelease(t *testing.T) {
	requireT := require.New(t)

	g := newGate(1, 1, time.Minute)
	ctx := context.Background()

	requireT.NoError(g.Acquire(ctx))

	go func() {
		time.Sleep(50 * time.Millisecond)
		g.Release()
	}()

	requireT.NoError(g.Acquire(ctx))
}

func TestGateReportsContextCancellation(t *testing.T) {
	requireT := require.New(t)

	g := newGate(1, 1, time.Minute)
	requireT.NoError(g.Acquire(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := g.Acquire(ctx)
	requireT.Error(err)
	requireT.NotErrorIs(err, ErrGateBusy)
	requireT.ErrorIs(err, context.Canceled)
}
