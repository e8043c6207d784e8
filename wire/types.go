package wire

type (
	// Hash is a 32-byte block or transaction hash.
	Hash [32]byte

	// Address identifies an account.
	Address [20]byte
)

// BlockHeader describes a block without its transactions.
type BlockHeader struct {
	ParentHash Hash
	Height     uint64
	StateRoot  Hash
	TxRoot     Hash
	Timestamp  uint64
}

// Transaction is a single signed transfer.
type Transaction struct {
	From      Address
	To        Address
	Amount    uint64
	Nonce     uint64
	Signature [64]byte
}

// Block is a full block including its transactions.
type Block struct {
	Header       BlockHeader
	Transactions []Transaction
}

// Status asks the peer for its chain state.
type Status struct {
	Version     uint64
	NetworkID   uint64
	GenesisHash Hash
	TipHash     Hash
	TipHeight   uint64
}

// StatusResult reports the responder's chain state. Peers may also announce
// a new tip by sending it unsolicited on the broadcast route.
type StatusResult struct {
	Version     uint64
	NetworkID   uint64
	GenesisHash Hash
	TipHash     Hash
	TipHeight   uint64
}

// Ping checks that the peer is alive.
type Ping struct {
	Nonce uint64
}

// Pong answers a ping with the same nonce.
type Pong struct {
	Nonce uint64
}

// GetTip asks for the peer's best block.
type GetTip struct {
	KnownHeight uint64
}

// TipResult carries the responder's best block.
type TipResult struct {
	Hash   Hash
	Height uint64
}

// GetHash asks for the hash of the block at the given height.
type GetHash struct {
	Height uint64
}

// HashResult carries the hash of the requested block, if known.
type HashResult struct {
	Hash  Hash
	Found bool
}

// GetHeadersByRange asks for up to Count headers starting at From.
type GetHeadersByRange struct {
	From    uint64
	Count   uint64
	Reverse bool
}

// HeadersResult carries the requested headers.
type HeadersResult struct {
	Headers []BlockHeader
}

// GetBlocksByRange asks for up to Count full blocks starting at From.
type GetBlocksByRange struct {
	From  uint64
	Count uint64
}

// BlocksResult carries the requested blocks.
type BlocksResult struct {
	Blocks []Block
}

// GetTransactions asks for the transactions of the block at the given height.
type GetTransactions struct {
	Height uint64
}

// TransactionsResult carries transactions. Peers may also relay fresh
// transactions by sending it unsolicited on the broadcast route.
type TransactionsResult struct {
	Transactions []Transaction
}
