package mempool

import (
	"context"

	"github.com/cryptonote-go/txpool/chainhash"
)

// BlockInfo identifies a block by height and id. The zero value is the
// sentinel meaning "no block" — used by PoolEntry.LastFailedBlock to mean
// "validation has never failed for this entry".
type BlockInfo struct {
	Height uint64
	ID     chainhash.Hash
}

// NoBlock is the sentinel BlockInfo meaning "unset".
var NoBlock = BlockInfo{}

// IsNone reports whether b is the "unset" sentinel.
func (b BlockInfo) IsNone() bool {
	return b == NoBlock
}

// GlobalOutputRef identifies a single output ever produced on the chain by
// the (amount, global index) pair consensus rules use to enforce spend
// uniqueness.
type GlobalOutputRef struct {
	Amount uint64
	Index  uint64
}

// TxInput is one input of a pooled transaction: the key image that
// prevents the real spend from being repeated, and every global output
// reference the input's ring touches (real spend and decoys alike — the
// pool conservatively tracks all of them as conflict candidates, exactly
// as the source consensus code does).
type TxInput struct {
	KeyImage chainhash.Hash
	Outputs  []GlobalOutputRef
}

// Tx is the opaque transaction body the pool stores, passed through to
// the validator and to the block assembler untouched. The pool itself
// never inspects anything about a Tx beyond what this interface exposes.
type Tx interface {
	// Inputs returns every input of the transaction.
	Inputs() []TxInput

	// BlobSize returns the serialized size of the transaction in bytes.
	BlobSize() int

	// Fee returns the transaction's fee in atomic currency units.
	Fee() uint64

	// PaymentID returns the payment identifier carried in the
	// transaction's extra field, if any.
	PaymentID() (chainhash.Hash, bool)

	// Marshal serializes the transaction body for persistence.
	Marshal() ([]byte, error)
}

// TxDecoder reconstructs a Tx from its serialized form, the inverse of
// Tx.Marshal. It is supplied by the caller because the pool has no
// knowledge of the wire format of a transaction body.
type TxDecoder interface {
	DecodeTx(blob []byte) (Tx, error)
}

// Validator is the external capability that reports whether a
// transaction's inputs are structurally valid. The pool never performs
// cryptographic checks itself; it only consumes this port's verdict.
type Validator interface {
	// CheckTransactionInputs reports whether tx's inputs check out
	// against the chain at tip. maxUsedBlock is the highest block height
	// referenced by any of the transaction's mixins. When ok is false,
	// failedBlock identifies the block at which validation failed;
	// otherwise failedBlock is NoBlock.
	CheckTransactionInputs(ctx context.Context, tx Tx, tip BlockInfo) (ok bool, maxUsedBlock BlockInfo, failedBlock BlockInfo)
}

// Chain is the external capability describing the current state of the
// ledger the pool reconciles against.
type Chain interface {
	// Tip returns the height and id of the current chain tip.
	Tip() BlockInfo

	// HashAtHeight returns the block id at height, and whether that
	// height is known to the chain.
	HashAtHeight(height uint64) (chainhash.Hash, bool)
}

// RewardPolicy is the external capability that knows the currency's
// block reward rules. fill_block_template consults it to decide whether
// adding the next candidate transaction would still leave the block
// reward sane (e.g. not driven below the minimum by accumulated fees and
// penalty for exceeding the median block size).
type RewardPolicy interface {
	// Fits reports whether a block candidate of cumulativeSize bytes
	// carrying cumulativeFee in total fees remains valid, given
	// medianSize (the current median block size) and
	// alreadyGeneratedCoins (total coins emitted so far).
	Fits(medianSize, alreadyGeneratedCoins, cumulativeSize, cumulativeFee uint64) bool
}

// Clock supplies wall-clock readings used for receipt timestamps and
// expiration sweeps. Injected so tests can control time deterministically.
type Clock interface {
	// Now returns the current time as seconds since the Unix epoch.
	Now() int64
}
