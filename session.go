package sonar

import (
	"context"
	"reflect"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/outofforest/logger"
	"github.com/outofforest/parallel"
	"github.com/outofforest/resonance"
	"github.com/outofforest/sonar/wire"
)

// Handler answers one inbound request. It must eventually send a reply on the
// request's route, typically through Request.Respond. Errors are logged and
// the request is dropped without a reply; the connection stays up.
type Handler func(ctx context.Context, req *Request) error

// Request is one inbound request delivered to the handler.
type Request struct {
	Route   uint64
	Message any
	Payload []byte

	session *Session
}

// Respond sends the reply paired with the request's kind on its route.
func (r *Request) Respond(msg any) error {
	paired := wire.ReplyTo(r.Message)
	if paired == nil || reflect.TypeOf(msg) != reflect.TypeOf(paired) {
		return errors.Errorf("message %T does not answer request %T", msg, r.Message)
	}
	return r.session.send(r.Route, msg)
}

// Session multiplexes correlated requests, replies and broadcasts over one
// connection. Either side may issue requests; inbound requests are answered
// by the configured handler.
type Session struct {
	config       Config
	conn         *resonance.Connection
	marshaller   wire.Marshaller
	correlations *correlations
	gate         *gate

	mu sync.Mutex
}

func newSession(config Config, conn *resonance.Connection) *Session {
	return &Session{
		config:       config,
		conn:         conn,
		marshaller:   wire.NewMarshaller(),
		correlations: newCorrelations(config.MaxPendingRequests),
		gate:         newGate(config.MaxConcurrentHandlers, config.MaxQueuedHandlers, config.AdmissionTimeout),
	}
}

// Run drives a session over an established connection. fn, if not nil, runs
// concurrently with the dispatch loop and may issue outbound requests; the
// connection is closed and the session ends when fn returns.
func Run(
	ctx context.Context,
	conn *resonance.Connection,
	config Config,
	fn func(ctx context.Context, s *Session) error,
) error {
	s := newSession(config.withDefaults(), conn)
	defer s.correlations.failAll(errors.WithStack(ErrDisconnected))

	return parallel.Run(ctx, func(ctx context.Context, spawn parallel.SpawnFn) error {
		spawn("receiver", parallel.Fail, func(ctx context.Context) error {
			return s.receive(ctx, spawn)
		})
		if fn != nil {
			spawn("session", parallel.Exit, func(ctx context.Context) error {
				defer s.conn.Close()

				return fn(ctx, s)
			})
		}

		return nil
	})
}

// Request sends a request to the peer and blocks until the matching reply
// arrives, the deadline of the request's kind elapses, the send fails or the
// connection goes away. It returns the decoded reply and its raw payload.
// There is no retry; a rejected request is reported to the caller as is.
func (s *Session) Request(ctx context.Context, msg any) (any, []byte, error) {
	if !wire.IsRequest(msg) {
		return nil, nil, errors.Errorf("message %T is not a request", msg)
	}

	payload, err := s.encode(ctx, msg)
	if err != nil {
		return nil, nil, err
	}

	route, resultCh, err := s.correlations.add(s.config.Timeouts.forClass(wire.ClassOf(msg)))
	if err != nil {
		return nil, nil, err
	}

	if err := s.sendFrame(route, payload); err != nil {
		s.correlations.take(route)
		return nil, nil, err
	}

	select {
	case <-ctx.Done():
		s.correlations.take(route)
		return nil, nil, errors.WithStack(ctx.Err())
	case res := <-resultCh:
		if res.Err != nil {
			return nil, nil, res.Err
		}
		return res.Message, res.Payload, nil
	}
}

// Broadcast sends an unsolicited reply-kind message on the broadcast route.
func (s *Session) Broadcast(msg any) error {
	if !wire.Broadcastable(msg) {
		return errors.Errorf("message %T is not broadcastable", msg)
	}
	return s.send(broadcastRoute, msg)
}

func (s *Session) receive(ctx context.Context, spawn parallel.SpawnFn) error {
	log := logger.Get(ctx)

	for {
		raw, err := s.conn.ReceiveRawBytes()
		if err != nil {
			if ctx.Err() != nil {
				return errors.WithStack(ctx.Err())
			}
			return err
		}

		route, payload, err := decodeFrame(raw)
		if err != nil {
			return err
		}

		msg, err := decodeMessage(s.marshaller, payload)
		switch {
		case errors.Is(err, errUnknownMessage):
			log.Debug("Unsupported message received", zap.Uint64("route", route), zap.Error(err))
			continue
		case err != nil:
			return err
		}

		switch {
		case wire.IsRequest(msg):
			req := &Request{
				Route:   route,
				Message: msg,
				Payload: payload,
				session: s,
			}
			spawn("request", parallel.Continue, func(ctx context.Context) error {
				s.handle(ctx, req)
				return nil
			})
		default:
			// Every known kind which is not a request is a reply.
			if s.correlations.resolve(route, msg, payload) {
				continue
			}
			log.Debug("Broadcast received", zap.Uint64("route", route), zap.Any("message", msg))
			if s.config.OnBroadcast != nil && wire.Broadcastable(msg) {
				s.config.OnBroadcast(msg)
			}
		}
	}
}

func (s *Session) handle(ctx context.Context, req *Request) {
	log := logger.Get(ctx)

	if s.config.Handler == nil {
		log.Debug("Inbound request dropped", zap.Uint64("route", req.Route), zap.Any("message", req.Message))
		return
	}

	if err := s.gate.Acquire(ctx); err != nil {
		log.Debug("Inbound request dropped", zap.Uint64("route", req.Route), zap.Error(err))
		return
	}
	defer s.gate.Release()

	if err := s.config.Handler(ctx, req); err != nil {
		log.Error("Request handler failed", zap.Uint64("route", req.Route), zap.Error(err))
	}
}

// encode marshals an outbound request and immediately decodes the bytes back
// to catch codec regressions before they reach the peer. A mismatch is
// diagnosed loudly but the encoded bytes are still sent.
func (s *Session) encode(ctx context.Context, msg any) ([]byte, error) {
	payload, err := encodeMessage(s.marshaller, msg)
	if err != nil {
		return nil, err
	}

	decoded, err := decodeMessage(s.marshaller, payload)
	if err != nil || !reflect.DeepEqual(decoded, msg) {
		logger.Get(ctx).DPanic("Codec does not round-trip", zap.Any("message", msg), zap.Error(err))
	}

	return payload, nil
}

func (s *Session) send(route uint64, msg any) error {
	payload, err := encodeMessage(s.marshaller, msg)
	if err != nil {
		return err
	}
	return s.sendFrame(route, payload)
}

func (s *Session) sendFrame(route uint64, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.conn.SendRawBytes(encodeFrame(route, payload))
}
