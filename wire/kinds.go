package wire

// Class groups message kinds by their expected response cost. It selects the
// deadline applied to an outbound request of that kind.
type Class int

const (
	// ClassDefault covers every verb without a more specific class.
	ClassDefault Class = iota

	// ClassLight covers cheap liveness and lookup verbs which must fail fast.
	ClassLight

	// ClassBulk covers range transfers which need headroom.
	ClassBulk
)

// KnownID reports whether id identifies a message kind of this protocol.
func KnownID(id uint64) bool {
	return id >= id3 && id <= id16
}

// IsRequest reports whether msg is a request kind expecting a paired reply.
func IsRequest(msg any) bool {
	switch msg.(type) {
	case *Status, *Ping, *GetTip, *GetHash, *GetHeadersByRange, *GetBlocksByRange, *GetTransactions:
		return true
	default:
		return false
	}
}

// IsReply reports whether msg is a reply kind.
func IsReply(msg any) bool {
	switch msg.(type) {
	case *StatusResult, *Pong, *TipResult, *HashResult, *HeadersResult, *BlocksResult, *TransactionsResult:
		return true
	default:
		return false
	}
}

// ReplyTo returns a fresh instance of the reply kind paired with the request,
// or nil if msg is not a request kind.
func ReplyTo(msg any) any {
	switch msg.(type) {
	case *Status:
		return &StatusResult{}
	case *Ping:
		return &Pong{}
	case *GetTip:
		return &TipResult{}
	case *GetHash:
		return &HashResult{}
	case *GetHeadersByRange:
		return &HeadersResult{}
	case *GetBlocksByRange:
		return &BlocksResult{}
	case *GetTransactions:
		return &TransactionsResult{}
	default:
		return nil
	}
}

// Broadcastable reports whether msg is a reply kind which may also arrive
// unsolicited on the broadcast route.
func Broadcastable(msg any) bool {
	switch msg.(type) {
	case *StatusResult, *TransactionsResult:
		return true
	default:
		return false
	}
}

// ClassOf returns the class of a request kind. Replies have no class of
// their own, they inherit the deadline of the request they answer.
func ClassOf(msg any) Class {
	switch msg.(type) {
	case *Status, *Ping, *GetTip, *GetHash:
		return ClassLight
	case *GetHeadersByRange, *GetBlocksByRange, *GetTransactions:
		return ClassBulk
	default:
		return ClassDefault
	}
}
