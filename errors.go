package sonar

import "github.com/pkg/errors"

var (
	// ErrTimeout is reported when a reply does not arrive before the deadline
	// configured for the request's kind.
	ErrTimeout = errors.New("request timed out")

	// ErrDisconnected is reported for every request still pending when the
	// connection goes away.
	ErrDisconnected = errors.New("peer disconnected")

	// ErrGateBusy means an inbound request could not be admitted before its
	// admission deadline and was dropped.
	ErrGateBusy = errors.New("gate busy")

	// ErrTooManyRequests means the outstanding request limit has been reached.
	ErrTooManyRequests = errors.New("too many pending requests")
)
