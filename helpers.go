package sonar

import (
	"github.com/pkg/errors"

	"github.com/outofforest/proton"
	"github.com/outofforest/sonar/wire"
	"github.com/outofforest/varuint64"
)

var errUnknownMessage = errors.New("unknown message kind")

// encodeFrame builds a raw frame: length prefix required by the transport,
// followed by the route and the payload. The length covers everything after
// the prefix.
func encodeFrame(route uint64, payload []byte) []byte {
	size := varuint64.Size(route) + uint64(len(payload))
	b := make([]byte, varuint64.Size(size)+size)
	n := varuint64.Put(b, size)
	n += varuint64.Put(b[n:], route)
	copy(b[n:], payload)
	return b
}

// decodeFrame splits a raw frame, as returned by the transport with its
// length prefix still attached, into route and payload.
func decodeFrame(b []byte) (uint64, []byte, error) {
	if !varuint64.Contains(b) {
		return 0, nil, errors.New("frame truncated inside length prefix")
	}
	size, n := varuint64.Parse(b)
	b = b[n:]
	if uint64(len(b)) != size {
		return 0, nil, errors.Errorf("frame length mismatch: declared %d, received %d", size, len(b))
	}
	if !varuint64.Contains(b) {
		return 0, nil, errors.New("frame truncated inside route")
	}
	route, n := varuint64.Parse(b)
	return route, b[n:], nil
}

// encodeMessage turns a message into payload bytes: kind id followed by the
// marshalled body.
func encodeMessage(m proton.Marshaller, msg any) ([]byte, error) {
	id, err := m.ID(msg)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	size, err := m.Size(msg)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	b := make([]byte, varuint64.Size(id)+size)
	n := varuint64.Put(b, id)
	_, msgSize, err := m.Marshal(msg, b[n:])
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return b[:n+msgSize], nil
}

// decodeMessage decodes payload bytes into a message. A payload tagged with
// an id outside the protocol's kind set fails with errUnknownMessage so the
// caller may drop it without treating the frame as malformed.
func decodeMessage(m proton.Marshaller, b []byte) (any, error) {
	if !varuint64.Contains(b) {
		return nil, errors.New("payload truncated inside kind id")
	}
	id, n := varuint64.Parse(b)
	if !wire.KnownID(id) {
		return nil, errors.Wrapf(errUnknownMessage, "id %d", id)
	}
	msg, _, err := m.Unmarshal(id, b[n:])
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return msg, nil
}
