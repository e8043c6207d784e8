package wire_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/outofforest/sonar/wire"
)

func requests() []any {
	return []any{
		&wire.Status{},
		&wire.Ping{},
		&wire.GetTip{},
		&wire.GetHash{},
		&wire.GetHeadersByRange{},
		&wire.GetBlocksByRange{},
		&wire.GetTransactions{},
	}
}

func replies() []any {
	return []any{
		&wire.StatusResult{},
		&wire.Pong{},
		&wire.TipResult{},
		&wire.HashResult{},
		&wire.HeadersResult{},
		&wire.BlocksResult{},
		&wire.TransactionsResult{},
	}
}

func TestEveryRequestPairsWithReply(t *testing.T) {
	requireT := require.New(t)

	for _, msg := range requests() {
		requireT.True(wire.IsRequest(msg))
		requireT.False(wire.IsReply(msg))

		paired := wire.ReplyTo(msg)
		requireT.NotNil(paired)
		requireT.True(wire.IsReply(paired))
		requireT.False(wire.IsRequest(paired))
	}
}

func TestRepliesAreNotRequests(t *testing.T) {
	requireT := require.New(t)

	for _, msg := range replies() {
		requireT.True(wire.IsReply(msg))
		requireT.False(wire.IsRequest(msg))
		requireT.Nil(wire.ReplyTo(msg))
	}
}

func TestBroadcastableKinds(t *testing.T) {
	requireT := require.New(t)

	requireT.True(wire.Broadcastable(&wire.StatusResult{}))
	requireT.True(wire.Broadcastable(&wire.TransactionsResult{}))

	requireT.False(wire.Broadcastable(&wire.Pong{}))
	requireT.False(wire.Broadcastable(&wire.TipResult{}))
	requireT.False(wire.Broadcastable(&wire.Ping{}))
}

func TestKindClasses(t *testing.T) {
	requireT := require.New(t)

	requireT.Equal(wire.ClassLight, wire.ClassOf(&wire.Ping{}))
	requireT.Equal(wire.ClassLight, wire.ClassOf(&wire.Status{}))
	requireT.Equal(wire.ClassLight, wire.ClassOf(&wire.GetTip{}))
	requireT.Equal(wire.ClassLight, wire.ClassOf(&wire.GetHash{}))

	requireT.Equal(wire.ClassBulk, wire.ClassOf(&wire.GetHeadersByRange{}))
	requireT.Equal(wire.ClassBulk, wire.ClassOf(&wire.GetBlocksByRange{}))
	requireT.Equal(wire.ClassBulk, wire.ClassOf(&wire.GetTransactions{}))

	requireT.Equal(wire.ClassDefault, wire.ClassOf(&wire.Pong{}))
}

func TestKnownIDsCoverAllKinds(t *testing.T) {
	requireT := require.New(t)

	m := wire.NewMarshaller()
	for _, msg := range append(requests(), replies()...) {
		id, err := m.ID(msg)
		requireT.NoError(err)
		requireT.True(wire.KnownID(id))
	}

	requireT.False(wire.KnownID(0))
	requireT.False(wire.KnownID(15))
}
