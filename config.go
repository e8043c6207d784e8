package sonar

import (
	"time"

	"github.com/outofforest/sonar/wire"
)

// Timeouts maps message kind classes to reply deadlines. Liveness checks must
// fail fast, bulk transfers need headroom, everything else gets the default.
type Timeouts struct {
	Light   time.Duration
	Default time.Duration
	Bulk    time.Duration
}

func (t Timeouts) forClass(class wire.Class) time.Duration {
	switch class {
	case wire.ClassLight:
		return t.Light
	case wire.ClassBulk:
		return t.Bulk
	default:
		return t.Default
	}
}

// Config is the config of a session.
type Config struct {
	// MaxMessageSize limits the size of a single frame.
	MaxMessageSize uint64

	// Handler answers inbound requests. Sessions without a handler drop
	// every inbound request.
	Handler Handler

	// OnBroadcast, if set, observes broadcast-capable messages arriving
	// unsolicited on the broadcast route.
	OnBroadcast func(msg any)

	// MaxConcurrentHandlers bounds how many inbound requests are processed
	// at the same time.
	MaxConcurrentHandlers int

	// MaxQueuedHandlers bounds how many inbound requests may wait for
	// admission. Requests over the limit are dropped immediately.
	MaxQueuedHandlers int

	// AdmissionTimeout bounds how long an inbound request may wait for
	// admission before being dropped.
	AdmissionTimeout time.Duration

	// MaxPendingRequests bounds outstanding outbound requests. It must stay
	// well below the width of the correlation route band.
	MaxPendingRequests int

	// Timeouts are the reply deadlines per kind class.
	Timeouts Timeouts
}

func (c Config) withDefaults() Config {
	if c.MaxMessageSize == 0 {
		c.MaxMessageSize = 1 << 22
	}
	if c.MaxConcurrentHandlers == 0 {
		c.MaxConcurrentHandlers = 4
	}
	if c.MaxQueuedHandlers == 0 {
		c.MaxQueuedHandlers = 16
	}
	if c.AdmissionTimeout == 0 {
		c.AdmissionTimeout = 30 * time.Second
	}
	if c.MaxPendingRequests == 0 {
		c.MaxPendingRequests = 1024
	}
	if c.Timeouts.Light == 0 {
		c.Timeouts.Light = 4 * time.Second
	}
	if c.Timeouts.Default == 0 {
		c.Timeouts.Default = 30 * time.Second
	}
	if c.Timeouts.Bulk == 0 {
		c.Timeouts.Bulk = 120 * time.Second
	}
	return c
}
