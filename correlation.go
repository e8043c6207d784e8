package sonar

import (
	"sync"
	"time"

	"github.com/pkg/errors"
)

// Routes tag frames. Requests carry a fresh route from the high band below,
// replies repeat the route of the request they answer, and broadcastRoute
// marks unsolicited replies. Everything between broadcastRoute and the band
// is left to the application.
const (
	broadcastRoute uint64 = 0

	minRequestRoute uint64 = 1 << 16
	maxRequestRoute uint64 = 1<<17 - 1
)

type outcome struct {
	Message any
	Payload []byte
	Err     error
}

type pendingRequest struct {
	resultCh chan outcome
	timer    *time.Timer
}

// correlations maps routes of outstanding outbound requests to their pending
// completions. Owned by one session; all mutations go through the mutex.
type correlations struct {
	mu         sync.Mutex
	nextRoute  uint64
	maxPending int
	pending    map[uint64]*pendingRequest
}

func newCorrelations(maxPending int) *correlations {
	return &correlations{
		nextRoute:  minRequestRoute,
		maxPending: maxPending,
		pending:    map[uint64]*pendingRequest{},
	}
}

// add registers a new pending request under a fresh route and arms its
// deadline timer.
func (c *correlations) add(deadline time.Duration) (uint64, <-chan outcome, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Keeping the outstanding count far below the band width guarantees the
	// wrapping counter never reissues a route which is still pending.
	if len(c.pending) >= c.maxPending {
		return 0, nil, errors.WithStack(ErrTooManyRequests)
	}

	route := c.allocate()
	p := &pendingRequest{
		resultCh: make(chan outcome, 1),
	}
	p.timer = time.AfterFunc(deadline, func() {
		c.fail(route, errors.WithStack(ErrTimeout))
	})
	c.pending[route] = p

	return route, p.resultCh, nil
}

func (c *correlations) allocate() uint64 {
	for {
		route := c.nextRoute
		if c.nextRoute == maxRequestRoute {
			c.nextRoute = minRequestRoute
		} else {
			c.nextRoute++
		}
		if _, exists := c.pending[route]; !exists {
			return route
		}
	}
}

// take removes the entry and stops its timer. Whoever takes the entry is the
// only one allowed to complete it.
func (c *correlations) take(route uint64) *pendingRequest {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, exists := c.pending[route]
	if !exists {
		return nil
	}
	delete(c.pending, route)
	p.timer.Stop()
	return p
}

// resolve completes the entry with a reply. It reports whether a pending
// request was waiting on the route.
func (c *correlations) resolve(route uint64, msg any, payload []byte) bool {
	p := c.take(route)
	if p == nil {
		return false
	}
	p.resultCh <- outcome{Message: msg, Payload: payload}
	return true
}

// fail rejects the entry if it is still pending.
func (c *correlations) fail(route uint64, err error) {
	if p := c.take(route); p != nil {
		p.resultCh <- outcome{Err: err}
	}
}

// failAll rejects every pending entry and leaves the table empty.
func (c *correlations) failAll(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for route, p := range c.pending {
		delete(c.pending, route)
		p.timer.Stop()
		p.resultCh <- outcome{Err: err}
	}
}
