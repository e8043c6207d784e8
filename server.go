package sonar

import (
	"context"
	"net"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/outofforest/logger"
	"github.com/outofforest/resonance"
)

// RunClient keeps a session to the server at addr, reconnecting after
// failures. fn is invoked once per established connection; RunClient returns
// nil once fn completes without an error.
func RunClient(
	ctx context.Context,
	addr string,
	config Config,
	fn func(ctx context.Context, s *Session) error,
) error {
	log := logger.Get(ctx)
	connConfig := resonance.Config{
		MaxMessageSize: config.withDefaults().MaxMessageSize,
	}

	for {
		var completed bool
		sessionFn := fn
		if fn != nil {
			sessionFn = func(ctx context.Context, s *Session) error {
				if err := fn(ctx, s); err != nil {
					return err
				}
				completed = true
				return nil
			}
		}

		err := resonance.RunClient(ctx, addr, connConfig,
			func(ctx context.Context, c *resonance.Connection) error {
				return Run(ctx, c, config, sessionFn)
			})

		if ctx.Err() != nil {
			return errors.WithStack(ctx.Err())
		}
		if completed {
			// The session function finished its work.
			return nil
		}

		log.Error("Session failed", zap.String("server", addr), zap.Error(err))
		select {
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		case <-time.After(time.Second):
		}
	}
}

// RunServer runs a session for every connection accepted on the listener.
// fn, if not nil, is invoked once per established connection.
func RunServer(
	ctx context.Context,
	ls net.Listener,
	config Config,
	fn func(ctx context.Context, s *Session) error,
) error {
	connConfig := resonance.Config{
		MaxMessageSize: config.withDefaults().MaxMessageSize,
	}

	return resonance.RunServer(ctx, ls, connConfig,
		func(ctx context.Context, c *resonance.Connection) error {
			return Run(ctx, c, config, fn)
		})
}
