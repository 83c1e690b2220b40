package chain

import (
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// ErrInvalidInput marks a caller contract violation: the transaction either
// does not exist on the requested chain or required fields are missing.
var ErrInvalidInput = errors.New("chain: invalid input")

// Envelope is the wire-format generation of a transaction.
type Envelope string

const (
	EnvelopeLegacy     Envelope = "legacy"
	EnvelopeAccessList Envelope = "access_list"
	EnvelopeDynamicFee Envelope = "dynamic_fee"
	EnvelopeBlob       Envelope = "blob"
)

// Transaction is the normalized view of a confirmed transaction. Optional
// fee fields are nil when the envelope generation does not carry them, which
// is what the envelope decoder keys off.
type Transaction struct {
	Hash  string
	From  string
	To    *string // nil for contract creation
	Value *big.Int
	Input []byte

	Nonce    uint64
	GasLimit uint64

	GasPrice   *big.Int
	GasFeeCap  *big.Int // EIP-1559 max fee per gas
	GasTipCap  *big.Int // EIP-1559 priority fee
	BlobFeeCap *big.Int // EIP-4844 max fee per blob gas

	BlobHashes    []common.Hash
	HasAccessList bool
}

// Log is a single receipt log entry.
type Log struct {
	Address common.Address
	Topics  []common.Hash
	Data    []byte
}

// Receipt carries the execution outcome of a confirmed transaction together
// with the block context needed for pricing.
type Receipt struct {
	Status            uint64 // 1 = success, 0 = reverted
	GasUsed           uint64
	EffectiveGasPrice *big.Int
	BlockNumber       uint64
	BlockTimestamp    uint64
	Logs              []Log
}

// hasTopic reports whether any log in the receipt carries the given topic
// as its event signature.
func (r *Receipt) hasTopic(topic common.Hash) bool {
	for _, l := range r.Logs {
		if len(l.Topics) > 0 && l.Topics[0] == topic {
			return true
		}
	}
	return false
}

// selector returns the 4-byte call-data selector, or false when the call
// data is too short to carry one.
func (t *Transaction) selector() ([4]byte, bool) {
	var sel [4]byte
	if len(t.Input) < 4 {
		return sel, false
	}
	copy(sel[:], t.Input[:4])
	return sel, true
}
