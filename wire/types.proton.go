package wire

import (
	"reflect"
	"unsafe"

	"github.com/outofforest/proton"
	"github.com/outofforest/proton/helpers"
	"github.com/pkg/errors"
)

const (
	id3 uint64 = iota + 1
	id4
	id5
	id6
	id7
	id8
	id9
	id10
	id11
	id12
	id13
	id14
	id15
	id16
)

var _ proton.Marshaller = Marshaller{}

// NewMarshaller creates marshaller.
func NewMarshaller() Marshaller {
	return Marshaller{}
}

// Marshaller marshals and unmarshals messages.
type Marshaller struct {
}

// Messages returns list of the message types supported by marshaller.
func (m Marshaller) Messages() []any {
	return []any {
		Status{},
		StatusResult{},
		Ping{},
		Pong{},
		GetTip{},
		TipResult{},
		GetHash{},
		HashResult{},
		GetHeadersByRange{},
		HeadersResult{},
		GetBlocksByRange{},
		BlocksResult{},
		GetTransactions{},
		TransactionsResult{},
	}
}

// ID returns ID of message type.
func (m Marshaller) ID(msg any) (uint64, error) {
	switch msg.(type) {
	case *Status:
		return id3, nil
	case *StatusResult:
		return id4, nil
	case *Ping:
		return id5, nil
	case *Pong:
		return id6, nil
	case *GetTip:
		return id7, nil
	case *TipResult:
		return id8, nil
	case *GetHash:
		return id9, nil
	case *HashResult:
		return id10, nil
	case *GetHeadersByRange:
		return id11, nil
	case *HeadersResult:
		return id12, nil
	case *GetBlocksByRange:
		return id13, nil
	case *BlocksResult:
		return id14, nil
	case *GetTransactions:
		return id15, nil
	case *TransactionsResult:
		return id16, nil
	default:
		return 0, errors.Errorf("unknown message type %T", msg)
	}
}

// Size computes the size of marshalled message.
func (m Marshaller) Size(msg any) (uint64, error) {
	switch msg2 := msg.(type) {
	case *Status:
		return size3(msg2), nil
	case *StatusResult:
		return size4(msg2), nil
	case *Ping:
		return size5(msg2), nil
	case *Pong:
		return size6(msg2), nil
	case *GetTip:
		return size7(msg2), nil
	case *TipResult:
		return size8(msg2), nil
	case *GetHash:
		return size9(msg2), nil
	case *HashResult:
		return size10(msg2), nil
	case *GetHeadersByRange:
		return size11(msg2), nil
	case *HeadersResult:
		return size12(msg2), nil
	case *GetBlocksByRange:
		return size13(msg2), nil
	case *BlocksResult:
		return size14(msg2), nil
	case *GetTransactions:
		return size15(msg2), nil
	case *TransactionsResult:
		return size16(msg2), nil
	default:
		return 0, errors.Errorf("unknown message type %T", msg)
	}
}

// Marshal marshals message.
func (m Marshaller) Marshal(msg any, buf []byte) (retID, retSize uint64, retErr error) {
	defer helpers.RecoverMarshal(&retErr)

	switch msg2 := msg.(type) {
	case *Status:
		return id3, marshal3(msg2, buf), nil
	case *StatusResult:
		return id4, marshal4(msg2, buf), nil
	case *Ping:
		return id5, marshal5(msg2, buf), nil
	case *Pong:
		return id6, marshal6(msg2, buf), nil
	case *GetTip:
		return id7, marshal7(msg2, buf), nil
	case *TipResult:
		return id8, marshal8(msg2, buf), nil
	case *GetHash:
		return id9, marshal9(msg2, buf), nil
	case *HashResult:
		return id10, marshal10(msg2, buf), nil
	case *GetHeadersByRange:
		return id11, marshal11(msg2, buf), nil
	case *HeadersResult:
		return id12, marshal12(msg2, buf), nil
	case *GetBlocksByRange:
		return id13, marshal13(msg2, buf), nil
	case *BlocksResult:
		return id14, marshal14(msg2, buf), nil
	case *GetTransactions:
		return id15, marshal15(msg2, buf), nil
	case *TransactionsResult:
		return id16, marshal16(msg2, buf), nil
	default:
		return 0, 0, errors.Errorf("unknown message type %T", msg)
	}
}

// Unmarshal unmarshals message.
func (m Marshaller) Unmarshal(id uint64, buf []byte) (retMsg any, retSize uint64, retErr error) {
	defer helpers.RecoverUnmarshal(&retErr)

	switch id {
	case id3:
		msg := &Status{}
		return msg, unmarshal3(msg, buf), nil
	case id4:
		msg := &StatusResult{}
		return msg, unmarshal4(msg, buf), nil
	case id5:
		msg := &Ping{}
		return msg, unmarshal5(msg, buf), nil
	case id6:
		msg := &Pong{}
		return msg, unmarshal6(msg, buf), nil
	case id7:
		msg := &GetTip{}
		return msg, unmarshal7(msg, buf), nil
	case id8:
		msg := &TipResult{}
		return msg, unmarshal8(msg, buf), nil
	case id9:
		msg := &GetHash{}
		return msg, unmarshal9(msg, buf), nil
	case id10:
		msg := &HashResult{}
		return msg, unmarshal10(msg, buf), nil
	case id11:
		msg := &GetHeadersByRange{}
		return msg, unmarshal11(msg, buf), nil
	case id12:
		msg := &HeadersResult{}
		return msg, unmarshal12(msg, buf), nil
	case id13:
		msg := &GetBlocksByRange{}
		return msg, unmarshal13(msg, buf), nil
	case id14:
		msg := &BlocksResult{}
		return msg, unmarshal14(msg, buf), nil
	case id15:
		msg := &GetTransactions{}
		return msg, unmarshal15(msg, buf), nil
	case id16:
		msg := &TransactionsResult{}
		return msg, unmarshal16(msg, buf), nil
	default:
		return nil, 0, errors.Errorf("unknown ID %d", id)
	}
}

// MakePatch creates a patch.
func (m Marshaller) MakePatch(msgDst, msgSrc any, buf []byte) (retID, retSize uint64, retErr error) {
	defer helpers.RecoverMakePatch(&retErr)

	switch msg2 := msgDst.(type) {
	case *Status:
		return id3, makePatch3(msg2, msgSrc.(*Status), buf), nil
	case *StatusResult:
		return id4, makePatch4(msg2, msgSrc.(*StatusResult), buf), nil
	case *Ping:
		return id5, makePatch5(msg2, msgSrc.(*Ping), buf), nil
	case *Pong:
		return id6, makePatch6(msg2, msgSrc.(*Pong), buf), nil
	case *GetTip:
		return id7, makePatch7(msg2, msgSrc.(*GetTip), buf), nil
	case *TipResult:
		return id8, makePatch8(msg2, msgSrc.(*TipResult), buf), nil
	case *GetHash:
		return id9, makePatch9(msg2, msgSrc.(*GetHash), buf), nil
	case *HashResult:
		return id10, makePatch10(msg2, msgSrc.(*HashResult), buf), nil
	case *GetHeadersByRange:
		return id11, makePatch11(msg2, msgSrc.(*GetHeadersByRange), buf), nil
	case *HeadersResult:
		return id12, makePatch12(msg2, msgSrc.(*HeadersResult), buf), nil
	case *GetBlocksByRange:
		return id13, makePatch13(msg2, msgSrc.(*GetBlocksByRange), buf), nil
	case *BlocksResult:
		return id14, makePatch14(msg2, msgSrc.(*BlocksResult), buf), nil
	case *GetTransactions:
		return id15, makePatch15(msg2, msgSrc.(*GetTransactions), buf), nil
	case *TransactionsResult:
		return id16, makePatch16(msg2, msgSrc.(*TransactionsResult), buf), nil
	default:
		return 0, 0, errors.Errorf("unknown message type %T", msgDst)
	}
}

// ApplyPatch applies patch.
func (m Marshaller) ApplyPatch(msg any, buf []byte) (retSize uint64, retErr error) {
	defer helpers.RecoverApplyPatch(&retErr)

	switch msg2 := msg.(type) {
	case *Status:
		return applyPatch3(msg2, buf), nil
	case *StatusResult:
		return applyPatch4(msg2, buf), nil
	case *Ping:
		return applyPatch5(msg2, buf), nil
	case *Pong:
		return applyPatch6(msg2, buf), nil
	case *GetTip:
		return applyPatch7(msg2, buf), nil
	case *TipResult:
		return applyPatch8(msg2, buf), nil
	case *GetHash:
		return applyPatch9(msg2, buf), nil
	case *HashResult:
		return applyPatch10(msg2, buf), nil
	case *GetHeadersByRange:
		return applyPatch11(msg2, buf), nil
	case *HeadersResult:
		return applyPatch12(msg2, buf), nil
	case *GetBlocksByRange:
		return applyPatch13(msg2, buf), nil
	case *BlocksResult:
		return applyPatch14(msg2, buf), nil
	case *GetTransactions:
		return applyPatch15(msg2, buf), nil
	case *TransactionsResult:
		return applyPatch16(msg2, buf), nil
	default:
		return 0, errors.Errorf("unknown message type %T", msg)
	}
}

func size0(m *BlockHeader) uint64 {
	var n uint64 = 98
	{
		// Height

		helpers.UInt64Size(m.Height, &n)
	}
	{
		// Timestamp

		helpers.UInt64Size(m.Timestamp, &n)
	}
	return n
}

func marshal0(m *BlockHeader, b []byte) uint64 {
	var o uint64
	{
		// ParentHash

		copy(b[o:o+32], unsafe.Slice(&m.ParentHash[0], 32))
		o += 32
	}
	{
		// Height

		helpers.UInt64Marshal(m.Height, b, &o)
	}
	{
		// StateRoot

		copy(b[o:o+32], unsafe.Slice(&m.StateRoot[0], 32))
		o += 32
	}
	{
		// TxRoot

		copy(b[o:o+32], unsafe.Slice(&m.TxRoot[0], 32))
		o += 32
	}
	{
		// Timestamp

		helpers.UInt64Marshal(m.Timestamp, b, &o)
	}

	return o
}

func unmarshal0(m *BlockHeader, b []byte) uint64 {
	var o uint64
	{
		// ParentHash

		copy(unsafe.Slice(&m.ParentHash[0], 32), b[o:o+32])
		o += 32
	}
	{
		// Height

		helpers.UInt64Unmarshal(&m.Height, b, &o)
	}
	{
		// StateRoot

		copy(unsafe.Slice(&m.StateRoot[0], 32), b[o:o+32])
		o += 32
	}
	{
		// TxRoot

		copy(unsafe.Slice(&m.TxRoot[0], 32), b[o:o+32])
		o += 32
	}
	{
		// Timestamp

		helpers.UInt64Unmarshal(&m.Timestamp, b, &o)
	}

	return o
}

func size1(m *Transaction) uint64 {
	var n uint64 = 106
	{
		// Amount

		helpers.UInt64Size(m.Amount, &n)
	}
	{
		// Nonce

		helpers.UInt64Size(m.Nonce, &n)
	}
	return n
}

func marshal1(m *Transaction, b []byte) uint64 {
	var o uint64
	{
		// From

		copy(b[o:o+20], unsafe.Slice(&m.From[0], 20))
		o += 20
	}
	{
		// To

		copy(b[o:o+20], unsafe.Slice(&m.To[0], 20))
		o += 20
	}
	{
		// Amount

		helpers.UInt64Marshal(m.Amount, b, &o)
	}
	{
		// Nonce

		helpers.UInt64Marshal(m.Nonce, b, &o)
	}
	{
		// Signature

		copy(b[o:o+64], unsafe.Slice(&m.Signature[0], 64))
		o += 64
	}

	return o
}

func unmarshal1(m *Transaction, b []byte) uint64 {
	var o uint64
	{
		// From

		copy(unsafe.Slice(&m.From[0], 20), b[o:o+20])
		o += 20
	}
	{
		// To

		copy(unsafe.Slice(&m.To[0], 20), b[o:o+20])
		o += 20
	}
	{
		// Amount

		helpers.UInt64Unmarshal(&m.Amount, b, &o)
	}
	{
		// Nonce

		helpers.UInt64Unmarshal(&m.Nonce, b, &o)
	}
	{
		// Signature

		copy(unsafe.Slice(&m.Signature[0], 64), b[o:o+64])
		o += 64
	}

	return o
}

func size2(m *Block) uint64 {
	var n uint64 = 1
	{
		// Header

		n += size0(&m.Header)
	}
	{
		// Transactions

		l := uint64(len(m.Transactions))
		helpers.UInt64Size(l, &n)
		for _, sv1 := range m.Transactions {
			n += size1(&sv1)
		}
	}
	return n
}

func marshal2(m *Block, b []byte) uint64 {
	var o uint64
	{
		// Header

		o += marshal0(&m.Header, b[o:])
	}
	{
		// Transactions

		helpers.UInt64Marshal(uint64(len(m.Transactions)), b, &o)
		for _, sv1 := range m.Transactions {
			o += marshal1(&sv1, b[o:])
		}
	}

	return o
}

func unmarshal2(m *Block, b []byte) uint64 {
	var o uint64
	{
		// Header

		o += unmarshal0(&m.Header, b[o:])
	}
	{
		// Transactions

		var l uint64
		helpers.UInt64Unmarshal(&l, b, &o)
		if l > 0 {
			m.Transactions = make([]Transaction, l)
			for i1 := range l {
				o += unmarshal1(&m.Transactions[i1], b[o:])
			}
		}
	}

	return o
}

func size3(m *Status) uint64 {
	var n uint64 = 67
	{
		// Version

		helpers.UInt64Size(m.Version, &n)
	}
	{
		// NetworkID

		helpers.UInt64Size(m.NetworkID, &n)
	}
	{
		// TipHeight

		helpers.UInt64Size(m.TipHeight, &n)
	}
	return n
}

func marshal3(m *Status, b []byte) uint64 {
	var o uint64
	{
		// Version

		helpers.UInt64Marshal(m.Version, b, &o)
	}
	{
		// NetworkID

		helpers.UInt64Marshal(m.NetworkID, b, &o)
	}
	{
		// GenesisHash

		copy(b[o:o+32], unsafe.Slice(&m.GenesisHash[0], 32))
		o += 32
	}
	{
		// TipHash

		copy(b[o:o+32], unsafe.Slice(&m.TipHash[0], 32))
		o += 32
	}
	{
		// TipHeight

		helpers.UInt64Marshal(m.TipHeight, b, &o)
	}

	return o
}

func unmarshal3(m *Status, b []byte) uint64 {
	var o uint64
	{
		// Version

		helpers.UInt64Unmarshal(&m.Version, b, &o)
	}
	{
		// NetworkID

		helpers.UInt64Unmarshal(&m.NetworkID, b, &o)
	}
	{
		// GenesisHash

		copy(unsafe.Slice(&m.GenesisHash[0], 32), b[o:o+32])
		o += 32
	}
	{
		// TipHash

		copy(unsafe.Slice(&m.TipHash[0], 32), b[o:o+32])
		o += 32
	}
	{
		// TipHeight

		helpers.UInt64Unmarshal(&m.TipHeight, b, &o)
	}

	return o
}

func makePatch3(m, mSrc *Status, b []byte) uint64 {
	var o uint64 = 1
	{
		// Version

		if reflect.DeepEqual(m.Version, mSrc.Version) {
			b[0] &= 0xFE
		} else {
			b[0] |= 0x01
			helpers.UInt64Marshal(m.Version, b, &o)
		}
	}
	{
		// NetworkID

		if reflect.DeepEqual(m.NetworkID, mSrc.NetworkID) {
			b[0] &= 0xFD
		} else {
			b[0] |= 0x02
			helpers.UInt64Marshal(m.NetworkID, b, &o)
		}
	}
	{
		// GenesisHash

		if reflect.DeepEqual(m.GenesisHash, mSrc.GenesisHash) {
			b[0] &= 0xFB
		} else {
			b[0] |= 0x04
			copy(b[o:o+32], unsafe.Slice(&m.GenesisHash[0], 32))
			o += 32
		}
	}
	{
		// TipHash

		if reflect.DeepEqual(m.TipHash, mSrc.TipHash) {
			b[0] &= 0xF7
		} else {
			b[0] |= 0x08
			copy(b[o:o+32], unsafe.Slice(&m.TipHash[0], 32))
			o += 32
		}
	}
	{
		// TipHeight

		if reflect.DeepEqual(m.TipHeight, mSrc.TipHeight) {
			b[0] &= 0xEF
		} else {
			b[0] |= 0x10
			helpers.UInt64Marshal(m.TipHeight, b, &o)
		}
	}

	return o
}

func applyPatch3(m *Status, b []byte) uint64 {
	var o uint64 = 1
	{
		// Version

		if b[0]&0x01 != 0 {
			helpers.UInt64Unmarshal(&m.Version, b, &o)
		}
	}
	{
		// NetworkID

		if b[0]&0x02 != 0 {
			helpers.UInt64Unmarshal(&m.NetworkID, b, &o)
		}
	}
	{
		// GenesisHash

		if b[0]&0x04 != 0 {
			copy(unsafe.Slice(&m.GenesisHash[0], 32), b[o:o+32])
			o += 32
		}
	}
	{
		// TipHash

		if b[0]&0x08 != 0 {
			copy(unsafe.Slice(&m.TipHash[0], 32), b[o:o+32])
			o += 32
		}
	}
	{
		// TipHeight

		if b[0]&0x10 != 0 {
			helpers.UInt64Unmarshal(&m.TipHeight, b, &o)
		}
	}

	return o
}

func size4(m *StatusResult) uint64 {
	var n uint64 = 67
	{
		// Version

		helpers.UInt64Size(m.Version, &n)
	}
	{
		// NetworkID

		helpers.UInt64Size(m.NetworkID, &n)
	}
	{
		// TipHeight

		helpers.UInt64Size(m.TipHeight, &n)
	}
	return n
}

func marshal4(m *StatusResult, b []byte) uint64 {
	var o uint64
	{
		// Version

		helpers.UInt64Marshal(m.Version, b, &o)
	}
	{
		// NetworkID

		helpers.UInt64Marshal(m.NetworkID, b, &o)
	}
	{
		// GenesisHash

		copy(b[o:o+32], unsafe.Slice(&m.GenesisHash[0], 32))
		o += 32
	}
	{
		// TipHash

		copy(b[o:o+32], unsafe.Slice(&m.TipHash[0], 32))
		o += 32
	}
	{
		// TipHeight

		helpers.UInt64Marshal(m.TipHeight, b, &o)
	}

	return o
}

func unmarshal4(m *StatusResult, b []byte) uint64 {
	var o uint64
	{
		// Version

		helpers.UInt64Unmarshal(&m.Version, b, &o)
	}
	{
		// NetworkID

		helpers.UInt64Unmarshal(&m.NetworkID, b, &o)
	}
	{
		// GenesisHash

		copy(unsafe.Slice(&m.GenesisHash[0], 32), b[o:o+32])
		o += 32
	}
	{
		// TipHash

		copy(unsafe.Slice(&m.TipHash[0], 32), b[o:o+32])
		o += 32
	}
	{
		// TipHeight

		helpers.UInt64Unmarshal(&m.TipHeight, b, &o)
	}

	return o
}

func makePatch4(m, mSrc *StatusResult, b []byte) uint64 {
	var o uint64 = 1
	{
		// Version

		if reflect.DeepEqual(m.Version, mSrc.Version) {
			b[0] &= 0xFE
		} else {
			b[0] |= 0x01
			helpers.UInt64Marshal(m.Version, b, &o)
		}
	}
	{
		// NetworkID

		if reflect.DeepEqual(m.NetworkID, mSrc.NetworkID) {
			b[0] &= 0xFD
		} else {
			b[0] |= 0x02
			helpers.UInt64Marshal(m.NetworkID, b, &o)
		}
	}
	{
		// GenesisHash

		if reflect.DeepEqual(m.GenesisHash, mSrc.GenesisHash) {
			b[0] &= 0xFB
		} else {
			b[0] |= 0x04
			copy(b[o:o+32], unsafe.Slice(&m.GenesisHash[0], 32))
			o += 32
		}
	}
	{
		// TipHash

		if reflect.DeepEqual(m.TipHash, mSrc.TipHash) {
			b[0] &= 0xF7
		} else {
			b[0] |= 0x08
			copy(b[o:o+32], unsafe.Slice(&m.TipHash[0], 32))
			o += 32
		}
	}
	{
		// TipHeight

		if reflect.DeepEqual(m.TipHeight, mSrc.TipHeight) {
			b[0] &= 0xEF
		} else {
			b[0] |= 0x10
			helpers.UInt64Marshal(m.TipHeight, b, &o)
		}
	}

	return o
}

func applyPatch4(m *StatusResult, b []byte) uint64 {
	var o uint64 = 1
	{
		// Version

		if b[0]&0x01 != 0 {
			helpers.UInt64Unmarshal(&m.Version, b, &o)
		}
	}
	{
		// NetworkID

		if b[0]&0x02 != 0 {
			helpers.UInt64Unmarshal(&m.NetworkID, b, &o)
		}
	}
	{
		// GenesisHash

		if b[0]&0x04 != 0 {
			copy(unsafe.Slice(&m.GenesisHash[0], 32), b[o:o+32])
			o += 32
		}
	}
	{
		// TipHash

		if b[0]&0x08 != 0 {
			copy(unsafe.Slice(&m.TipHash[0], 32), b[o:o+32])
			o += 32
		}
	}
	{
		// TipHeight

		if b[0]&0x10 != 0 {
			helpers.UInt64Unmarshal(&m.TipHeight, b, &o)
		}
	}

	return o
}

func size5(m *Ping) uint64 {
	var n uint64 = 1
	{
		// Nonce

		helpers.UInt64Size(m.Nonce, &n)
	}
	return n
}

func marshal5(m *Ping, b []byte) uint64 {
	var o uint64
	{
		// Nonce

		helpers.UInt64Marshal(m.Nonce, b, &o)
	}

	return o
}

func unmarshal5(m *Ping, b []byte) uint64 {
	var o uint64
	{
		// Nonce

		helpers.UInt64Unmarshal(&m.Nonce, b, &o)
	}

	return o
}

func makePatch5(m, mSrc *Ping, b []byte) uint64 {
	var o uint64 = 1
	{
		// Nonce

		if reflect.DeepEqual(m.Nonce, mSrc.Nonce) {
			b[0] &= 0xFE
		} else {
			b[0] |= 0x01
			helpers.UInt64Marshal(m.Nonce, b, &o)
		}
	}

	return o
}

func applyPatch5(m *Ping, b []byte) uint64 {
	var o uint64 = 1
	{
		// Nonce

		if b[0]&0x01 != 0 {
			helpers.UInt64Unmarshal(&m.Nonce, b, &o)
		}
	}

	return o
}

func size6(m *Pong) uint64 {
	var n uint64 = 1
	{
		// Nonce

		helpers.UInt64Size(m.Nonce, &n)
	}
	return n
}

func marshal6(m *Pong, b []byte) uint64 {
	var o uint64
	{
		// Nonce

		helpers.UInt64Marshal(m.Nonce, b, &o)
	}

	return o
}

func unmarshal6(m *Pong, b []byte) uint64 {
	var o uint64
	{
		// Nonce

		helpers.UInt64Unmarshal(&m.Nonce, b, &o)
	}

	return o
}

func makePatch6(m, mSrc *Pong, b []byte) uint64 {
	var o uint64 = 1
	{
		// Nonce

		if reflect.DeepEqual(m.Nonce, mSrc.Nonce) {
			b[0] &= 0xFE
		} else {
			b[0] |= 0x01
			helpers.UInt64Marshal(m.Nonce, b, &o)
		}
	}

	return o
}

func applyPatch6(m *Pong, b []byte) uint64 {
	var o uint64 = 1
	{
		// Nonce

		if b[0]&0x01 != 0 {
			helpers.UInt64Unmarshal(&m.Nonce, b, &o)
		}
	}

	return o
}

func size7(m *GetTip) uint64 {
	var n uint64 = 1
	{
		// KnownHeight

		helpers.UInt64Size(m.KnownHeight, &n)
	}
	return n
}

func marshal7(m *GetTip, b []byte) uint64 {
	var o uint64
	{
		// KnownHeight

		helpers.UInt64Marshal(m.KnownHeight, b, &o)
	}

	return o
}

func unmarshal7(m *GetTip, b []byte) uint64 {
	var o uint64
	{
		// KnownHeight

		helpers.UInt64Unmarshal(&m.KnownHeight, b, &o)
	}

	return o
}

func makePatch7(m, mSrc *GetTip, b []byte) uint64 {
	var o uint64 = 1
	{
		// KnownHeight

		if reflect.DeepEqual(m.KnownHeight, mSrc.KnownHeight) {
			b[0] &= 0xFE
		} else {
			b[0] |= 0x01
			helpers.UInt64Marshal(m.KnownHeight, b, &o)
		}
	}

	return o
}

func applyPatch7(m *GetTip, b []byte) uint64 {
	var o uint64 = 1
	{
		// KnownHeight

		if b[0]&0x01 != 0 {
			helpers.UInt64Unmarshal(&m.KnownHeight, b, &o)
		}
	}

	return o
}

func size8(m *TipResult) uint64 {
	var n uint64 = 33
	{
		// Height

		helpers.UInt64Size(m.Height, &n)
	}
	return n
}

func marshal8(m *TipResult, b []byte) uint64 {
	var o uint64
	{
		// Hash

		copy(b[o:o+32], unsafe.Slice(&m.Hash[0], 32))
		o += 32
	}
	{
		// Height

		helpers.UInt64Marshal(m.Height, b, &o)
	}

	return o
}

func unmarshal8(m *TipResult, b []byte) uint64 {
	var o uint64
	{
		// Hash

		copy(unsafe.Slice(&m.Hash[0], 32), b[o:o+32])
		o += 32
	}
	{
		// Height

		helpers.UInt64Unmarshal(&m.Height, b, &o)
	}

	return o
}

func makePatch8(m, mSrc *TipResult, b []byte) uint64 {
	var o uint64 = 1
	{
		// Hash

		if reflect.DeepEqual(m.Hash, mSrc.Hash) {
			b[0] &= 0xFE
		} else {
			b[0] |= 0x01
			copy(b[o:o+32], unsafe.Slice(&m.Hash[0], 32))
			o += 32
		}
	}
	{
		// Height

		if reflect.DeepEqual(m.Height, mSrc.Height) {
			b[0] &= 0xFD
		} else {
			b[0] |= 0x02
			helpers.UInt64Marshal(m.Height, b, &o)
		}
	}

	return o
}

func applyPatch8(m *TipResult, b []byte) uint64 {
	var o uint64 = 1
	{
		// Hash

		if b[0]&0x01 != 0 {
			copy(unsafe.Slice(&m.Hash[0], 32), b[o:o+32])
			o += 32
		}
	}
	{
		// Height

		if b[0]&0x02 != 0 {
			helpers.UInt64Unmarshal(&m.Height, b, &o)
		}
	}

	return o
}

func size9(m *GetHash) uint64 {
	var n uint64 = 1
	{
		// Height

		helpers.UInt64Size(m.Height, &n)
	}
	return n
}

func marshal9(m *GetHash, b []byte) uint64 {
	var o uint64
	{
		// Height

		helpers.UInt64Marshal(m.Height, b, &o)
	}

	return o
}

func unmarshal9(m *GetHash, b []byte) uint64 {
	var o uint64
	{
		// Height

		helpers.UInt64Unmarshal(&m.Height, b, &o)
	}

	return o
}

func makePatch9(m, mSrc *GetHash, b []byte) uint64 {
	var o uint64 = 1
	{
		// Height

		if reflect.DeepEqual(m.Height, mSrc.Height) {
			b[0] &= 0xFE
		} else {
			b[0] |= 0x01
			helpers.UInt64Marshal(m.Height, b, &o)
		}
	}

	return o
}

func applyPatch9(m *GetHash, b []byte) uint64 {
	var o uint64 = 1
	{
		// Height

		if b[0]&0x01 != 0 {
			helpers.UInt64Unmarshal(&m.Height, b, &o)
		}
	}

	return o
}

func size10(m *HashResult) uint64 {
	var n uint64 = 33
	return n
}

func marshal10(m *HashResult, b []byte) uint64 {
	var o uint64 = 1
	{
		// Hash

		copy(b[o:o+32], unsafe.Slice(&m.Hash[0], 32))
		o += 32
	}
	{
		// Found

		if m.Found {
			b[0] |= 0x01
		} else {
			b[0] &= 0xFE
		}
	}

	return o
}

func unmarshal10(m *HashResult, b []byte) uint64 {
	var o uint64 = 1
	{
		// Hash

		copy(unsafe.Slice(&m.Hash[0], 32), b[o:o+32])
		o += 32
	}
	{
		// Found

		m.Found = b[0]&0x01 != 0
	}

	return o
}

func makePatch10(m, mSrc *HashResult, b []byte) uint64 {
	var o uint64 = 2
	{
		// Hash

		if reflect.DeepEqual(m.Hash, mSrc.Hash) {
			b[0] &= 0xFE
		} else {
			b[0] |= 0x01
			copy(b[o:o+32], unsafe.Slice(&m.Hash[0], 32))
			o += 32
		}
	}
	{
		// Found

		if m.Found == mSrc.Found {
			b[1] &= 0xFE
		} else {
			b[1] |= 0x01
		}
	}

	return o
}

func applyPatch10(m *HashResult, b []byte) uint64 {
	var o uint64 = 2
	{
		// Hash

		if b[0]&0x01 != 0 {
			copy(unsafe.Slice(&m.Hash[0], 32), b[o:o+32])
			o += 32
		}
	}
	{
		// Found

		if b[1]&0x01 != 0 {
			m.Found = !m.Found
		}
	}

	return o
}

func size11(m *GetHeadersByRange) uint64 {
	var n uint64 = 3
	{
		// From

		helpers.UInt64Size(m.From, &n)
	}
	{
		// Count

		helpers.UInt64Size(m.Count, &n)
	}
	return n
}

func marshal11(m *GetHeadersByRange, b []byte) uint64 {
	var o uint64 = 1
	{
		// From

		helpers.UInt64Marshal(m.From, b, &o)
	}
	{
		// Count

		helpers.UInt64Marshal(m.Count, b, &o)
	}
	{
		// Reverse

		if m.Reverse {
			b[0] |= 0x01
		} else {
			b[0] &= 0xFE
		}
	}

	return o
}

func unmarshal11(m *GetHeadersByRange, b []byte) uint64 {
	var o uint64 = 1
	{
		// From

		helpers.UInt64Unmarshal(&m.From, b, &o)
	}
	{
		// Count

		helpers.UInt64Unmarshal(&m.Count, b, &o)
	}
	{
		// Reverse

		m.Reverse = b[0]&0x01 != 0
	}

	return o
}

func makePatch11(m, mSrc *GetHeadersByRange, b []byte) uint64 {
	var o uint64 = 2
	{
		// From

		if reflect.DeepEqual(m.From, mSrc.From) {
			b[0] &= 0xFE
		} else {
			b[0] |= 0x01
			helpers.UInt64Marshal(m.From, b, &o)
		}
	}
	{
		// Count

		if reflect.DeepEqual(m.Count, mSrc.Count) {
			b[0] &= 0xFD
		} else {
			b[0] |= 0x02
			helpers.UInt64Marshal(m.Count, b, &o)
		}
	}
	{
		// Reverse

		if m.Reverse == mSrc.Reverse {
			b[1] &= 0xFE
		} else {
			b[1] |= 0x01
		}
	}

	return o
}

func applyPatch11(m *GetHeadersByRange, b []byte) uint64 {
	var o uint64 = 2
	{
		// From

		if b[0]&0x01 != 0 {
			helpers.UInt64Unmarshal(&m.From, b, &o)
		}
	}
	{
		// Count

		if b[0]&0x02 != 0 {
			helpers.UInt64Unmarshal(&m.Count, b, &o)
		}
	}
	{
		// Reverse

		if b[1]&0x01 != 0 {
			m.Reverse = !m.Reverse
		}
	}

	return o
}

func size12(m *HeadersResult) uint64 {
	var n uint64 = 1
	{
		// Headers

		l := uint64(len(m.Headers))
		helpers.UInt64Size(l, &n)
		for _, sv1 := range m.Headers {
			n += size0(&sv1)
		}
	}
	return n
}

func marshal12(m *HeadersResult, b []byte) uint64 {
	var o uint64
	{
		// Headers

		helpers.UInt64Marshal(uint64(len(m.Headers)), b, &o)
		for _, sv1 := range m.Headers {
			o += marshal0(&sv1, b[o:])
		}
	}

	return o
}

func unmarshal12(m *HeadersResult, b []byte) uint64 {
	var o uint64
	{
		// Headers

		var l uint64
		helpers.UInt64Unmarshal(&l, b, &o)
		if l > 0 {
			m.Headers = make([]BlockHeader, l)
			for i1 := range l {
				o += unmarshal0(&m.Headers[i1], b[o:])
			}
		}
	}

	return o
}

func makePatch12(m, mSrc *HeadersResult, b []byte) uint64 {
	var o uint64 = 1
	{
		// Headers

		if reflect.DeepEqual(m.Headers, mSrc.Headers) {
			b[0] &= 0xFE
		} else {
			b[0] |= 0x01
			helpers.UInt64Marshal(uint64(len(m.Headers)), b, &o)
			for _, sv1 := range m.Headers {
				o += marshal0(&sv1, b[o:])
			}
		}
	}

	return o
}

func applyPatch12(m *HeadersResult, b []byte) uint64 {
	var o uint64 = 1
	{
		// Headers

		if b[0]&0x01 != 0 {
			var l uint64
			helpers.UInt64Unmarshal(&l, b, &o)
			if l > 0 {
				m.Headers = make([]BlockHeader, l)
				for i1 := range l {
					o += unmarshal0(&m.Headers[i1], b[o:])
				}
			}
		}
	}

	return o
}

func size13(m *GetBlocksByRange) uint64 {
	var n uint64 = 2
	{
		// From

		helpers.UInt64Size(m.From, &n)
	}
	{
		// Count

		helpers.UInt64Size(m.Count, &n)
	}
	return n
}

func marshal13(m *GetBlocksByRange, b []byte) uint64 {
	var o uint64
	{
		// From

		helpers.UInt64Marshal(m.From, b, &o)
	}
	{
		// Count

		helpers.UInt64Marshal(m.Count, b, &o)
	}

	return o
}

func unmarshal13(m *GetBlocksByRange, b []byte) uint64 {
	var o uint64
	{
		// From

		helpers.UInt64Unmarshal(&m.From, b, &o)
	}
	{
		// Count

		helpers.UInt64Unmarshal(&m.Count, b, &o)
	}

	return o
}

func makePatch13(m, mSrc *GetBlocksByRange, b []byte) uint64 {
	var o uint64 = 1
	{
		// From

		if reflect.DeepEqual(m.From, mSrc.From) {
			b[0] &= 0xFE
		} else {
			b[0] |= 0x01
			helpers.UInt64Marshal(m.From, b, &o)
		}
	}
	{
		// Count

		if reflect.DeepEqual(m.Count, mSrc.Count) {
			b[0] &= 0xFD
		} else {
			b[0] |= 0x02
			helpers.UInt64Marshal(m.Count, b, &o)
		}
	}

	return o
}

func applyPatch13(m *GetBlocksByRange, b []byte) uint64 {
	var o uint64 = 1
	{
		// From

		if b[0]&0x01 != 0 {
			helpers.UInt64Unmarshal(&m.From, b, &o)
		}
	}
	{
		// Count

		if b[0]&0x02 != 0 {
			helpers.UInt64Unmarshal(&m.Count, b, &o)
		}
	}

	return o
}

func size14(m *BlocksResult) uint64 {
	var n uint64 = 1
	{
		// Blocks

		l := uint64(len(m.Blocks))
		helpers.UInt64Size(l, &n)
		for _, sv1 := range m.Blocks {
			n += size2(&sv1)
		}
	}
	return n
}

func marshal14(m *BlocksResult, b []byte) uint64 {
	var o uint64
	{
		// Blocks

		helpers.UInt64Marshal(uint64(len(m.Blocks)), b, &o)
		for _, sv1 := range m.Blocks {
			o += marshal2(&sv1, b[o:])
		}
	}

	return o
}

func unmarshal14(m *BlocksResult, b []byte) uint64 {
	var o uint64
	{
		// Blocks

		var l uint64
		helpers.UInt64Unmarshal(&l, b, &o)
		if l > 0 {
			m.Blocks = make([]Block, l)
			for i1 := range l {
				o += unmarshal2(&m.Blocks[i1], b[o:])
			}
		}
	}

	return o
}

func makePatch14(m, mSrc *BlocksResult, b []byte) uint64 {
	var o uint64 = 1
	{
		// Blocks

		if reflect.DeepEqual(m.Blocks, mSrc.Blocks) {
			b[0] &= 0xFE
		} else {
			b[0] |= 0x01
			helpers.UInt64Marshal(uint64(len(m.Blocks)), b, &o)
			for _, sv1 := range m.Blocks {
				o += marshal2(&sv1, b[o:])
			}
		}
	}

	return o
}

func applyPatch14(m *BlocksResult, b []byte) uint64 {
	var o uint64 = 1
	{
		// Blocks

		if b[0]&0x01 != 0 {
			var l uint64
			helpers.UInt64Unmarshal(&l, b, &o)
			if l > 0 {
				m.Blocks = make([]Block, l)
				for i1 := range l {
					o += unmarshal2(&m.Blocks[i1], b[o:])
				}
			}
		}
	}

	return o
}

func size15(m *GetTransactions) uint64 {
	var n uint64 = 1
	{
		// Height

		helpers.UInt64Size(m.Height, &n)
	}
	return n
}

func marshal15(m *GetTransactions, b []byte) uint64 {
	var o uint64
	{
		// Height

		helpers.UInt64Marshal(m.Height, b, &o)
	}

	return o
}

func unmarshal15(m *GetTransactions, b []byte) uint64 {
	var o uint64
	{
		// Height

		helpers.UInt64Unmarshal(&m.Height, b, &o)
	}

	return o
}

func makePatch15(m, mSrc *GetTransactions, b []byte) uint64 {
	var o uint64 = 1
	{
		// Height

		if reflect.DeepEqual(m.Height, mSrc.Height) {
			b[0] &= 0xFE
		} else {
			b[0] |= 0x01
			helpers.UInt64Marshal(m.Height, b, &o)
		}
	}

	return o
}

func applyPatch15(m *GetTransactions, b []byte) uint64 {
	var o uint64 = 1
	{
		// Height

		if b[0]&0x01 != 0 {
			helpers.UInt64Unmarshal(&m.Height, b, &o)
		}
	}

	return o
}

func size16(m *TransactionsResult) uint64 {
	var n uint64 = 1
	{
		// Transactions

		l := uint64(len(m.Transactions))
		helpers.UInt64Size(l, &n)
		for _, sv1 := range m.Transactions {
			n += size1(&sv1)
		}
	}
	return n
}

func marshal16(m *TransactionsResult, b []byte) uint64 {
	var o uint64
	{
		// Transactions

		helpers.UInt64Marshal(uint64(len(m.Transactions)), b, &o)
		for _, sv1 := range m.Transactions {
			o += marshal1(&sv1, b[o:])
		}
	}

	return o
}

func unmarshal16(m *TransactionsResult, b []byte) uint64 {
	var o uint64
	{
		// Transactions

		var l uint64
		helpers.UInt64Unmarshal(&l, b, &o)
		if l > 0 {
			m.Transactions = make([]Transaction, l)
			for i1 := range l {
				o += unmarshal1(&m.Transactions[i1], b[o:])
			}
		}
	}

	return o
}

func makePatch16(m, mSrc *TransactionsResult, b []byte) uint64 {
	var o uint64 = 1
	{
		// Transactions

		if reflect.DeepEqual(m.Transactions, mSrc.Transactions) {
			b[0] &= 0xFE
		} else {
			b[0] |= 0x01
			helpers.UInt64Marshal(uint64(len(m.Transactions)), b, &o)
			for _, sv1 := range m.Transactions {
				o += marshal1(&sv1, b[o:])
			}
		}
	}

	return o
}

func applyPatch16(m *TransactionsResult, b []byte) uint64 {
	var o uint64 = 1
	{
		// Transactions

		if b[0]&0x01 != 0 {
			var l uint64
			helpers.UInt64Unmarshal(&l, b, &o)
			if l > 0 {
				m.Transactions = make([]Transaction, l)
				for i1 := range l {
					o += unmarshal1(&m.Transactions[i1], b[o:])
				}
			}
		}
	}

	return o
}
