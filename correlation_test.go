package sonar

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestCorrelationRoutesAreDistinctAndInBand(t *testing.T) {
	requireT := require.New(t)

	c := newCorrelations(16)
	defer c.failAll(errors.WithStack(ErrDisconnected))

	seen := map[uint64]struct{}{}
	for range 16 {
		route, _, err := c.add(time.Minute)
		requireT.NoError(err)
		requireT.GreaterOrEqual(route, minRequestRoute)
		requireT.LessOrEqual(route, maxRequestRoute)

		_, exists := seen[route]
		requireT.False(exists)
		seen[route] = struct{}{}
	}
}

func TestCorrelationWrapsAroundBand(t *testing.T) {
	requireT := require.New(t)

	c := newCorrelations(4)
	defer c.failAll(errors.WithStack(ErrDisconnected))

	c.nextRoute = maxRequestRoute

	route1, _, err := c.add(time.Minute)
	requireT.NoError(err)
	requireT.Equal(maxRequestRoute, route1)

	route2, _, err := c.add(time.Minute)
	requireT.NoError(err)
	requireT.Equal(minRequestRoute, route2)
}

func TestCorrelationSkipsPendingRoutes(t *testing.T) {
	requireT := require.New(t)

	c := newCorrelations(4)
	defer c.failAll(errors.WithStack(ErrDisconnected))

	route1, _, err := c.add(time.Minute)
	requireT.NoError(err)

	c.nextRoute = route1

	route2, _, err := c.add(time.Minute)
	requireT.NoError(err)
	requireT.NotEqual(route1, route2)
}

func TestCorrelationRouteIsReusableAfterRelease(t *testing.T) {
	requireT := require.New(t)

	c := newCorrelations(4)

	route1, _, err := c.add(time.Minute)
	requireT.NoError(err)
	requireT.True(c.resolve(route1, nil, nil))

	c.nextRoute = route1

	route2, _, err := c.add(time.Minute)
	requireT.NoError(err)
	requireT.Equal(route1, route2)

	c.failAll(errors.WithStack(ErrDisconnected))
}

func TestCorrelationBoundsOutstandingRequests(t *testing.T) {
	requireT := require.New(t)

	c := newCorrelations(1)
	defer c.failAll(errors.WithStack(ErrDisconnected))

	_, _, err := c.add(time.Minute)
	requireT.NoError(err)

	_, _, err = c.add(time.Minute)
	requireT.ErrorIs(err, ErrTooManyRequests)
}

func TestCorrelationTimeout(t *testing.T) {
	requireT := require.New(t)

	c := newCorrelations(4)

	deadline := 50 * time.Millisecond
	started := time.Now()
	_, resultCh, err := c.add(deadline)
	requireT.NoError(err)

	select {
	case res := <-resultCh:
		requireT.ErrorIs(res.Err, ErrTimeout)
		requireT.GreaterOrEqual(time.Since(started), deadline)
	case <-time.After(5 * time.Second):
		requireT.Fail("timeout")
	}

	c.mu.Lock()
	requireT.Empty(c.pending)
	c.mu.Unlock()
}

func TestCorrelationCompletesOnce(t *testing.T) {
	requireT := require.New(t)

	c := newCorrelations(4)

	route, resultCh, err := c.add(time.Minute)
	requireT.NoError(err)

	requireT.True(c.resolve(route, "reply", []byte{0x01}))
	requireT.False(c.resolve(route, "reply", []byte{0x01}))
	c.fail(route, errors.WithStack(ErrDisconnected))

	res := <-resultCh
	requireT.NoError(res.Err)
	requireT.Equal("reply", res.Message)

	select {
	case <-resultCh:
		requireT.Fail("second completion")
	default:
	}
}

func TestCorrelationFailAll(t *testing.T) {
	requireT := require.New(t)

	c := newCorrelations(4)

	chs := make([]<-chan outcome, 0, 3)
	for range 3 {
		_, resultCh, err := c.add(time.Minute)
		requireT.NoError(err)
		chs = append(chs, resultCh)
	}

	c.failAll(errors.WithStack(ErrDisconnected))

	for _, resultCh := range chs {
		res := <-resultCh
		requireT.ErrorIs(res.Err, ErrDisconnected)
	}

	c.mu.Lock()
	requireT.Empty(c.pending)
	c.mu.Unlock()
}
