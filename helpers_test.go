package sonar

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/outofforest/sonar/wire"
	"github.com/outofforest/varuint64"
)

func TestFrameRoundTrip(t *testing.T) {
	requireT := require.New(t)

	b := encodeFrame(minRequestRoute, []byte{0x01, 0x02, 0x03})

	route, payload, err := decodeFrame(b)
	requireT.NoError(err)
	requireT.Equal(minRequestRoute, route)
	requireT.Equal([]byte{0x01, 0x02, 0x03}, payload)
}

func TestFrameCarriesLengthPrefix(t *testing.T) {
	requireT := require.New(t)

	b := encodeFrame(broadcastRoute, []byte{0x05})

	// The leading varint declares the size of everything after itself.
	size, n := varuint64.Parse(b)
	requireT.Equal(uint64(len(b))-n, size)
}

func TestDecodeFrameFailsOnEmptyInput(t *testing.T) {
	requireT := require.New(t)

	_, _, err := decodeFrame(nil)
	requireT.Error(err)
}

func TestDecodeFrameFailsOnLengthMismatch(t *testing.T) {
	requireT := require.New(t)

	b := encodeFrame(minRequestRoute, []byte{0x01, 0x02, 0x03})

	_, _, err := decodeFrame(b[:len(b)-1])
	requireT.Error(err)
}

func TestDecodeFrameFailsOnTruncatedRoute(t *testing.T) {
	requireT := require.New(t)

	// Length declares one content byte, which is an unterminated varint.
	_, _, err := decodeFrame([]byte{0x01, 0x80})
	requireT.Error(err)
}

func TestMessageRoundTrip(t *testing.T) {
	requireT := require.New(t)

	m := wire.NewMarshaller()
	msg := &wire.Status{
		Version:     1,
		NetworkID:   7,
		GenesisHash: wire.Hash{0xAA},
		TipHash:     wire.Hash{0xBB},
		TipHeight:   100,
	}

	payload, err := encodeMessage(m, msg)
	requireT.NoError(err)

	decoded, err := decodeMessage(m, payload)
	requireT.NoError(err)
	requireT.Equal(msg, decoded)
}

func TestDecodeMessageFailsOnUnknownKind(t *testing.T) {
	requireT := require.New(t)

	b := make([]byte, varuint64.Size(99))
	varuint64.Put(b, 99)

	_, err := decodeMessage(wire.NewMarshaller(), b)
	requireT.ErrorIs(err, errUnknownMessage)
}

func TestDecodeMessageFailsOnEmptyPayload(t *testing.T) {
	requireT := require.New(t)

	_, err := decodeMessage(wire.NewMarshaller(), nil)
	requireT.Error(err)
}

func TestDecodeMessageFailsOnTruncatedKind(t *testing.T) {
	requireT := require.New(t)

	_, err := decodeMessage(wire.NewMarshaller(), []byte{0x80})
	requireT.Error(err)
}
